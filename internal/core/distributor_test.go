package core_test

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"loopdrop/internal/core"
	"loopdrop/internal/core/fake"
	"loopdrop/internal/csvingest"
	"loopdrop/internal/db"
	"loopdrop/internal/ethereum"
	"loopdrop/internal/repository"
	"loopdrop/internal/safe"
	"loopdrop/internal/validator"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

const (
	tokenAddress       = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	distributorAddress = "0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb"
	safeTxHash         = "0x54e90a21b5b8059daca758ba966056235a59aac88e3aae917fe1a1bcc9ab3b7c"
	executedTxHash     = "0x9f1c1b3b0c6d3f3e1d5c7a0e2b4a6c8d0e2f4a6b8c0d2e4f6a8b0c2d4e6f8a0b"
)

var _ = Describe("Distributor", func() {
	var (
		repo         *repository.DistributionRepository
		fakeGateway  *fake.MultisigGateway
		fakeReceipts *fake.ReceiptFetcher
		ctx          context.Context
		distributor  *core.Distributor
		fakeErr      error
		request      core.CreateRequest
	)

	BeforeEach(func() {
		ctx = context.Background()
		fakeErr = errors.New("fake error")
		repo = repository.NewDistributionRepository(db.NewMemoryDB())

		fakeGateway = new(fake.MultisigGateway)
		fakeGateway.TotalAmountStub = func(transfers []safe.TransferRequest) (*big.Int, error) {
			amounts := make([]string, len(transfers))
			for i, t := range transfers {
				amounts[i] = t.Amount
			}
			return validator.SumAmounts(amounts)
		}
		fakeGateway.EncodeBatchTransferReturns([]byte{0xde, 0xad, 0xbe, 0xef}, nil)
		fakeGateway.CreateAndSignTransactionReturns(safe.SignedTransaction{Hash: safeTxHash}, nil)
		fakeGateway.ExecuteReturns(safe.ExecutionResult{TxHash: executedTxHash}, nil)

		fakeReceipts = new(fake.ReceiptFetcher)

		distributor = core.NewDistributor(zap.NewNop().Sugar(), repo, fakeGateway, fakeReceipts, distributorAddress)

		request = core.CreateRequest{
			Name:         "October rewards",
			Type:         validator.TypeLoopDrop,
			TokenAddress: strings.ToLower(tokenAddress),
			TokenSymbol:  "LOOP",
			Entries: []validator.EntryCandidate{
				{Address: "0x742d35cc6634c0532925a3b844bc9e7595f0beb0", Amount: "1000000000000000000"},
				{Address: "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359", Amount: "0002000000000000000000"},
			},
		}
	})

	create := func() repository.Distribution {
		d, err := distributor.Create(ctx, request)
		Expect(err).NotTo(HaveOccurred())
		return d
	}

	propose := func(id string) {
		_, err := distributor.Propose(ctx, id, "bob")
		Expect(err).NotTo(HaveOccurred())
	}

	auditActions := func(id string) []string {
		logs, err := repo.ListAuditLog(ctx, id)
		Expect(err).NotTo(HaveOccurred())
		actions := make([]string, len(logs))
		for i, l := range logs {
			actions[i] = l.Action
		}
		return actions
	}

	Describe("Create", func() {
		var (
			distribution repository.Distribution
			err          error
		)

		JustBeforeEach(func() {
			distribution, err = distributor.Create(ctx, request)
		})

		When("the request is valid", func() {
			It("stores a pending distribution with the exact total", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(distribution.ID).NotTo(BeEmpty())
				Expect(distribution.Status).To(Equal(core.StatusPending))
				Expect(distribution.TotalRecipients).To(Equal(2))
				Expect(distribution.TotalAmount).To(Equal("3000000000000000000"))
				Expect(distribution.TokenAddress).To(Equal(tokenAddress))
				Expect(distribution.CreatedBy).To(Equal(repository.SystemUser))

				details, err := distributor.Get(ctx, distribution.ID)
				Expect(err).NotTo(HaveOccurred())
				Expect(details.Entries).To(HaveLen(2))
				Expect(details.Entries[0].RecipientAddress).To(Equal("0x742D35CC6634c0532925A3b844BC9E7595F0BEb0"))
				Expect(details.Entries[1].Amount).To(Equal("2000000000000000000"))
				Expect(details.AuditLog).To(HaveLen(1))
				Expect(details.AuditLog[0].Action).To(Equal(core.ActionCreated))
				Expect(details.AuditLog[0].Details).To(Equal("Distribution created: 2 recipients"))
			})
		})

		When("amounts exceed 2^200", func() {
			BeforeEach(func() {
				request.Entries[0].Amount = "1606938044258990275541962092341162602522202993782792835301376"
				request.Entries[1].Amount = "1606938044258990275541962092341162602522202993782792835301376"
				request.CreatedBy = "alice"
			})

			It("sums them without precision loss", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(distribution.TotalAmount).To(Equal("3213876088517980551083924184682325205044405987565585670602752"))
				Expect(distribution.CreatedBy).To(Equal("alice"))
			})
		})

		When("the request is invalid", func() {
			BeforeEach(func() {
				request.Name = "ab"
				request.Entries[1].Amount = "-5"
			})

			It("returns every field error and stores nothing", func() {
				var validationErr *core.ValidationError
				Expect(errors.As(err, &validationErr)).To(BeTrue())
				Expect(validationErr.Errors).To(HaveLen(2))
				Expect(validationErr.Errors[0].Field).To(Equal("name"))
				Expect(validationErr.Errors[1].Field).To(Equal("entries.1.amount"))

				_, total, err := distributor.List(ctx, 20, 0)
				Expect(err).NotTo(HaveOccurred())
				Expect(total).To(BeZero())
			})
		})

		When("a recipient is listed twice", func() {
			BeforeEach(func() {
				request.Entries[1].Address = "0x742D35CC6634C0532925A3B844BC9E7595F0BEB0"
			})

			It("reports the duplicate", func() {
				var validationErr *core.ValidationError
				Expect(errors.As(err, &validationErr)).To(BeTrue())
				Expect(validationErr.Errors).To(HaveLen(1))
				Expect(validationErr.Errors[0].Code).To(Equal(validator.CodeDuplicate))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeRepo := new(fake.Repository)
				fakeRepo.CreateDistributionReturns(nil, fakeErr)
				distributor = core.NewDistributor(zap.NewNop().Sugar(), fakeRepo, fakeGateway, fakeReceipts, distributorAddress)
			})

			It("returns the wrapped error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err.Error()).To(HavePrefix("create distribution: "))
			})
		})
	})

	Describe("CreateFromCSV", func() {
		var meta core.Metadata

		BeforeEach(func() {
			meta = core.Metadata{
				Name:         "CSV drop",
				Type:         validator.TypeLoyalty,
				TokenAddress: tokenAddress,
				TokenSymbol:  "LOOP",
				CreatedBy:    "carol",
			}
		})

		It("creates the distribution from the template", func() {
			d, err := distributor.CreateFromCSV(ctx, strings.NewReader(csvingest.Template()), meta)
			Expect(err).NotTo(HaveOccurred())
			Expect(d.TotalRecipients).To(Equal(3))
			Expect(d.TotalAmount).To(Equal("4500000000000000000"))
			Expect(d.Type).To(Equal(validator.TypeLoyalty))

			logs, err := repo.ListAuditLog(ctx, d.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(logs[0].Details).To(Equal("Distribution created from CSV upload: 3 recipients"))
			Expect(logs[0].UserAddress).To(Equal("carol"))
		})

		It("rejects a malformed file", func() {
			_, err := distributor.CreateFromCSV(ctx, strings.NewReader("address,amount\n0x1234,5\n"), meta)
			var ingestErr *csvingest.Error
			Expect(errors.As(err, &ingestErr)).To(BeTrue())
			Expect(ingestErr.Errors).To(HaveLen(1))
		})

		It("validates the parsed entries", func() {
			_, err := distributor.CreateFromCSV(ctx, strings.NewReader("address,amount\n"), meta)
			var validationErr *core.ValidationError
			Expect(errors.As(err, &validationErr)).To(BeTrue())
			Expect(validationErr.Errors[0].Code).To(Equal("array.min"))
		})
	})

	Describe("Propose", func() {
		var (
			id     string
			result core.ProposalResult
			err    error
		)

		BeforeEach(func() {
			id = create().ID
		})

		JustBeforeEach(func() {
			result, err = distributor.Propose(ctx, id, "bob")
		})

		When("the distribution is pending", func() {
			It("creates the Safe transaction and moves to proposed", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.SafeTxHash).To(Equal(safeTxHash))
				Expect(result.Status).To(Equal(core.StatusProposed))

				token, transfers, distributionType := fakeGateway.EncodeBatchTransferArgsForCall(0)
				Expect(token).To(Equal(tokenAddress))
				Expect(distributionType).To(Equal(validator.TypeLoopDrop))
				Expect(transfers).To(Equal([]safe.TransferRequest{
					{Recipient: "0x742D35CC6634c0532925A3b844BC9E7595F0BEb0", Amount: "1000000000000000000"},
					{Recipient: "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359", Amount: "2000000000000000000"},
				}))

				_, data, target := fakeGateway.CreateAndSignTransactionArgsForCall(0)
				Expect(data).To(Equal([]byte{0xde, 0xad, 0xbe, 0xef}))
				Expect(target).To(Equal(distributorAddress))

				d, err := repo.GetDistribution(ctx, id)
				Expect(err).NotTo(HaveOccurred())
				Expect(d.Status).To(Equal(core.StatusProposed))
				Expect(*d.SafeTxHash).To(Equal(safeTxHash))

				logs, err := repo.ListAuditLog(ctx, id)
				Expect(err).NotTo(HaveOccurred())
				Expect(logs[0].Action).To(Equal(core.ActionProposed))
				Expect(logs[0].Details).To(Equal("Safe transaction created: " + safeTxHash))
				Expect(logs[0].UserAddress).To(Equal("bob"))
				Expect(fakeGateway.DiscardCallCount()).To(Equal(0))
			})
		})

		When("the distribution does not exist", func() {
			BeforeEach(func() {
				id = "missing"
			})

			It("returns ErrNotFound", func() {
				Expect(err).To(MatchError(core.ErrNotFound))
				Expect(fakeGateway.CreateAndSignTransactionCallCount()).To(Equal(0))
			})
		})

		When("the distribution was already executed", func() {
			BeforeEach(func() {
				propose(id)
				_, err := distributor.Execute(ctx, id, "")
				Expect(err).NotTo(HaveOccurred())
				fakeReceipts.FetchReceiptsReturns([]*ethereum.Receipt{
					{TransactionHash: executedTxHash, Status: ethereum.ReceiptStatusSuccessful, BlockNumber: 12},
				}, nil)
				_, err = distributor.Reconcile(ctx)
				Expect(err).NotTo(HaveOccurred())
			})

			It("fails with the current status in the message", func() {
				var stateErr *core.InvalidStateError
				Expect(errors.As(err, &stateErr)).To(BeTrue())
				Expect(stateErr.Status).To(Equal(core.StatusExecuted))
				Expect(err.Error()).To(Equal("cannot propose distribution with status: executed"))
			})
		})

		When("the gateway fails", func() {
			BeforeEach(func() {
				fakeGateway.CreateAndSignTransactionReturns(safe.SignedTransaction{}, fakeErr)
			})

			It("returns a GatewayError and leaves the distribution pending", func() {
				var gatewayErr *core.GatewayError
				Expect(errors.As(err, &gatewayErr)).To(BeTrue())
				Expect(err).To(MatchError(fakeErr))
				Expect(err.Error()).To(ContainSubstring("fake error"))

				d, err := repo.GetDistribution(ctx, id)
				Expect(err).NotTo(HaveOccurred())
				Expect(d.Status).To(Equal(core.StatusPending))
				Expect(auditActions(id)).To(Equal([]string{core.ActionCreated}))
			})
		})

		When("another caller changes the status while signing", func() {
			BeforeEach(func() {
				fakeGateway.CreateAndSignTransactionStub = func(ctx context.Context, _ []byte, _ string) (safe.SignedTransaction, error) {
					_, err := repo.UpdateStatus(ctx, repository.StatusUpdate{ID: id, From: core.StatusPending, To: core.StatusFailed})
					Expect(err).NotTo(HaveOccurred())
					return safe.SignedTransaction{Hash: safeTxHash}, nil
				}
			})

			It("loses the race with an InvalidStateError", func() {
				var stateErr *core.InvalidStateError
				Expect(errors.As(err, &stateErr)).To(BeTrue())
				Expect(stateErr.Status).To(Equal(core.StatusFailed))

				d, err := repo.GetDistribution(ctx, id)
				Expect(err).NotTo(HaveOccurred())
				Expect(d.SafeTxHash).To(BeNil())
			})

			It("discards the signed Safe transaction", func() {
				Expect(fakeGateway.DiscardCallCount()).To(Equal(1))
				Expect(fakeGateway.DiscardArgsForCall(0)).To(Equal(safeTxHash))
			})
		})

		When("the stored total does not match the entries", func() {
			BeforeEach(func() {
				fakeGateway.TotalAmountStub = nil
				fakeGateway.TotalAmountReturns(big.NewInt(1), nil)
			})

			It("refuses to propose", func() {
				Expect(err).To(MatchError(core.ErrTotalMismatch))
				Expect(fakeGateway.EncodeBatchTransferCallCount()).To(Equal(0))
			})
		})
	})

	Describe("Execute", func() {
		var id string

		BeforeEach(func() {
			id = create().ID
		})

		When("the distribution is proposed", func() {
			BeforeEach(func() {
				propose(id)
			})

			It("submits the transaction and records its hash", func() {
				result, err := distributor.Execute(ctx, id, "dave")
				Expect(err).NotTo(HaveOccurred())
				Expect(result.TxHash).To(Equal(executedTxHash))
				Expect(result.Status).To(Equal(core.StatusExecuting))

				Expect(fakeGateway.ExecuteCallCount()).To(Equal(1))
				_, hash := fakeGateway.ExecuteArgsForCall(0)
				Expect(hash).To(Equal(safeTxHash))

				d, err := repo.GetDistribution(ctx, id)
				Expect(err).NotTo(HaveOccurred())
				Expect(d.Status).To(Equal(core.StatusExecuting))
				Expect(*d.ExecutedTxHash).To(Equal(executedTxHash))

				Expect(auditActions(id)).To(Equal([]string{
					core.ActionSubmitted, core.ActionExecuting, core.ActionProposed, core.ActionCreated,
				}))
			})

			It("can be addressed by the Safe transaction hash", func() {
				result, err := distributor.ExecuteBySafeTxHash(ctx, strings.ToUpper(safeTxHash), "")
				Expect(err).NotTo(HaveOccurred())
				Expect(result.DistributionID).To(Equal(id))
			})

			It("fails for an unknown Safe transaction hash", func() {
				_, err := distributor.ExecuteBySafeTxHash(ctx, executedTxHash, "")
				Expect(err).To(MatchError(core.ErrNotFound))
			})

			When("the threshold is not met yet", func() {
				BeforeEach(func() {
					fakeGateway.ExecuteReturnsOnCall(0, safe.ExecutionResult{},
						fmt.Errorf("%w: %w: 1 of 2", safe.ErrNotSubmitted, safe.ErrThresholdNotMet))
					fakeGateway.ExecuteReturnsOnCall(1, safe.ExecutionResult{TxHash: executedTxHash}, nil)
					fakeGateway.ConfirmReturns(safe.Confirmation{SafeTxHash: safeTxHash, Owner: "0xOwner", Confirmations: 2}, nil)
				})

				It("keeps the distribution proposed for a later confirmation", func() {
					_, err := distributor.Execute(ctx, id, "dave")
					var gatewayErr *core.GatewayError
					Expect(errors.As(err, &gatewayErr)).To(BeTrue())
					Expect(err).To(MatchError(safe.ErrThresholdNotMet))

					d, err := repo.GetDistribution(ctx, id)
					Expect(err).NotTo(HaveOccurred())
					Expect(d.Status).To(Equal(core.StatusProposed))
					Expect(d.ExecutedTxHash).To(BeNil())
					Expect(auditActions(id)[:2]).To(Equal([]string{core.ActionExecutionDeferred, core.ActionExecuting}))

					_, err = distributor.ConfirmSafeTransaction(ctx, safeTxHash, []byte{1})
					Expect(err).NotTo(HaveOccurred())

					result, err := distributor.Execute(ctx, id, "dave")
					Expect(err).NotTo(HaveOccurred())
					Expect(result.TxHash).To(Equal(executedTxHash))
					Expect(result.Status).To(Equal(core.StatusExecuting))
					Expect(fakeGateway.ExecuteCallCount()).To(Equal(2))
				})
			})

			It("marks the distribution failed when submitting fails", func() {
				fakeGateway.ExecuteReturns(safe.ExecutionResult{}, fakeErr)

				_, err := distributor.Execute(ctx, id, "dave")
				var gatewayErr *core.GatewayError
				Expect(errors.As(err, &gatewayErr)).To(BeTrue())
				Expect(err).To(MatchError(fakeErr))

				d, err := repo.GetDistribution(ctx, id)
				Expect(err).NotTo(HaveOccurred())
				Expect(d.Status).To(Equal(core.StatusFailed))
				Expect(auditActions(id)[0]).To(Equal(core.ActionExecutionFailed))
			})
		})

		When("the distribution is still pending", func() {
			It("returns an InvalidStateError", func() {
				_, err := distributor.Execute(ctx, id, "")
				Expect(err).To(MatchError(ContainSubstring("cannot execute distribution with status: pending")))
				Expect(fakeGateway.ExecuteCallCount()).To(Equal(0))
			})
		})
	})

	Describe("Fail", func() {
		var id string

		BeforeEach(func() {
			id = create().ID
		})

		It("moves a pending distribution to failed", func() {
			d, err := distributor.Fail(ctx, id, "wrong token", "erin")
			Expect(err).NotTo(HaveOccurred())
			Expect(d.Status).To(Equal(core.StatusFailed))

			logs, err := repo.ListAuditLog(ctx, id)
			Expect(err).NotTo(HaveOccurred())
			Expect(logs[0].Action).To(Equal(core.ActionFailed))
			Expect(logs[0].Details).To(Equal("wrong token"))
			Expect(logs[0].UserAddress).To(Equal("erin"))
		})

		It("requires a reason", func() {
			_, err := distributor.Fail(ctx, id, "  ", "erin")
			var validationErr *core.ValidationError
			Expect(errors.As(err, &validationErr)).To(BeTrue())
			Expect(validationErr.Errors[0].Field).To(Equal("reason"))
		})

		It("does not leave a terminal status", func() {
			_, err := distributor.Fail(ctx, id, "first", "")
			Expect(err).NotTo(HaveOccurred())

			_, err = distributor.Fail(ctx, id, "second", "")
			Expect(err).To(MatchError("cannot fail distribution with status: failed"))
		})
	})

	Describe("Reconcile", func() {
		var (
			ids    []string
			result core.ReconcileResult
			err    error
		)

		BeforeEach(func() {
			ids = nil
			for i := range 3 {
				id := create().ID
				hash := fmt.Sprintf("0x%064x", i+1)
				tx := fmt.Sprintf("0x%064x", i+100)
				fakeGateway.CreateAndSignTransactionReturns(safe.SignedTransaction{Hash: hash}, nil)
				fakeGateway.ExecuteReturns(safe.ExecutionResult{TxHash: tx}, nil)
				propose(id)
				_, err := distributor.Execute(ctx, id, "")
				Expect(err).NotTo(HaveOccurred())
				ids = append(ids, id)
			}

			fakeReceipts.FetchReceiptsReturns([]*ethereum.Receipt{
				{TransactionHash: fmt.Sprintf("0x%064x", 100), Status: ethereum.ReceiptStatusSuccessful, BlockNumber: 50},
				{TransactionHash: fmt.Sprintf("0x%064x", 101), Status: ethereum.ReceiptStatusFailed, BlockNumber: 51},
			}, nil)
		})

		JustBeforeEach(func() {
			result, err = distributor.Reconcile(ctx)
		})

		It("settles mined transactions and leaves the rest executing", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(core.ReconcileResult{Checked: 3, Executed: 1, Reverted: 1}))

			_, hashes := fakeReceipts.FetchReceiptsArgsForCall(0)
			Expect(hashes).To(HaveLen(3))

			statuses := make([]string, len(ids))
			for i, id := range ids {
				d, err := repo.GetDistribution(ctx, id)
				Expect(err).NotTo(HaveOccurred())
				statuses[i] = d.Status
			}
			Expect(statuses).To(Equal([]string{core.StatusExecuted, core.StatusFailed, core.StatusExecuting}))
			Expect(auditActions(ids[0])[0]).To(Equal(core.ActionExecuted))
			Expect(auditActions(ids[1])[0]).To(Equal(core.ActionExecutionReverted))
		})

		When("some receipts cannot be fetched", func() {
			BeforeEach(func() {
				fakeReceipts.FetchReceiptsReturns([]*ethereum.Receipt{
					{TransactionHash: fmt.Sprintf("0x%064x", 100), Status: ethereum.ReceiptStatusSuccessful, BlockNumber: 50},
				}, fakeErr)
			})

			It("settles what it could and reports the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(result.Executed).To(Equal(1))
			})
		})
	})

	Describe("Stats", func() {
		It("counts distributions by status and type", func() {
			first := create()
			create()
			request.Type = validator.TypeLoyalty
			create()
			_, err := distributor.Fail(ctx, first.ID, "cancelled", "")
			Expect(err).NotTo(HaveOccurred())

			stats, err := distributor.Stats(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(stats.TotalDistributions).To(Equal(3))
			Expect(stats.TotalRecipients).To(Equal(6))
			Expect(stats.ByStatus[core.StatusPending]).To(Equal(2))
			Expect(stats.ByStatus[core.StatusFailed]).To(Equal(1))
			Expect(stats.ByStatus[core.StatusExecuted]).To(BeZero())
			Expect(stats.ByType[validator.TypeLoopDrop]).To(Equal(2))
			Expect(stats.ByType[validator.TypeLoyalty]).To(Equal(1))
		})
	})

	Describe("ConfirmSafeTransaction", func() {
		var id string

		BeforeEach(func() {
			id = create().ID
			fakeGateway.ConfirmReturns(safe.Confirmation{SafeTxHash: safeTxHash, Owner: "0xOwner", Confirmations: 2}, nil)
		})

		It("records the confirmation", func() {
			propose(id)
			confirmation, err := distributor.ConfirmSafeTransaction(ctx, safeTxHash, []byte{1})
			Expect(err).NotTo(HaveOccurred())
			Expect(confirmation.Confirmations).To(Equal(2))

			logs, err := repo.ListAuditLog(ctx, id)
			Expect(err).NotTo(HaveOccurred())
			Expect(logs[0].Action).To(Equal(core.ActionConfirmed))
			Expect(logs[0].UserAddress).To(Equal("0xOwner"))
		})

		It("maps a signature from a non owner to a validation error", func() {
			propose(id)
			fakeGateway.ConfirmReturns(safe.Confirmation{}, fmt.Errorf("%w: 0xabc", safe.ErrNotOwner))

			_, err := distributor.ConfirmSafeTransaction(ctx, safeTxHash, []byte{1})
			var validationErr *core.ValidationError
			Expect(errors.As(err, &validationErr)).To(BeTrue())
			Expect(validationErr.Errors[0].Field).To(Equal("signature"))
		})

		It("fails for an unknown Safe transaction", func() {
			_, err := distributor.ConfirmSafeTransaction(ctx, safeTxHash, []byte{1})
			Expect(err).To(MatchError(core.ErrNotFound))
		})
	})

	Describe("SafeInfo", func() {
		It("wraps gateway errors", func() {
			fakeGateway.GetInfoReturns(safe.Info{}, fakeErr)
			_, err := distributor.SafeInfo(ctx)
			var gatewayErr *core.GatewayError
			Expect(errors.As(err, &gatewayErr)).To(BeTrue())
			Expect(gatewayErr.Op).To(Equal("safe info"))
		})
	})

	Describe("List and AuditLogs", func() {
		It("pages newest first", func() {
			for range 3 {
				create()
			}
			page, total, err := distributor.List(ctx, 2, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(3))
			Expect(page).To(HaveLen(2))

			logs, total, err := distributor.AuditLogs(ctx, 50, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(3))
			Expect(logs).To(HaveLen(3))
			Expect(logs[0].ID).To(Equal(uint64(3)))
		})
	})
})
