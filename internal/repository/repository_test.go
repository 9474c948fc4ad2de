package repository_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"loopdrop/internal/db"
	"loopdrop/internal/repository"
	"loopdrop/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DistributionRepository", func() {
	var (
		repo    *repository.DistributionRepository
		ctx     context.Context
		clock   time.Time
		baseDay time.Time
	)

	newDistribution := func(id string, createdAt time.Time) repository.Distribution {
		return repository.Distribution{
			ID:              id,
			Name:            "dist " + id,
			Type:            "LOOPDROP",
			TokenAddress:    "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
			TokenSymbol:     "LOOP",
			TotalRecipients: 2,
			TotalAmount:     "3",
			Status:          "pending",
			CreatedAt:       createdAt,
			CreatedBy:       "alice",
		}
	}

	newEntries := func() []repository.Entry {
		return []repository.Entry{
			{RecipientAddress: "0x742D35CC6634c0532925A3b844BC9E7595F0BEb0", Amount: "1"},
			{RecipientAddress: "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359", Amount: "2"},
		}
	}

	BeforeEach(func() {
		ctx = context.Background()
		baseDay = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
		clock = baseDay
		repo = repository.NewDistributionRepository(db.NewMemoryDB()).WithClock(func() time.Time {
			clock = clock.Add(time.Second)
			return clock
		})
	})

	Describe("CreateDistribution", func() {
		var (
			entries []repository.Entry
			err     error
			input   []repository.Entry
		)

		BeforeEach(func() {
			input = newEntries()
		})

		JustBeforeEach(func() {
			entries, err = repo.CreateDistribution(ctx, newDistribution("d1", baseDay), input, &repository.AuditLog{
				Action:  "CREATED",
				Details: "Distribution created: 2 recipients",
			})
		})

		When("the aggregate is consistent", func() {
			It("stores the distribution, entries and audit record together", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(entries).To(HaveLen(2))
				Expect(entries[0].ID).To(Equal(uint64(1)))
				Expect(entries[1].ID).To(Equal(uint64(2)))
				Expect(entries[0].Status).To(Equal(repository.EntryStatusPending))
				Expect(entries[0].DistributionID).To(Equal("d1"))

				d, err := repo.GetDistribution(ctx, "d1")
				Expect(err).NotTo(HaveOccurred())
				Expect(d.Name).To(Equal("dist d1"))

				stored, err := repo.ListEntries(ctx, "d1")
				Expect(err).NotTo(HaveOccurred())
				Expect(stored).To(Equal(entries))

				logs, err := repo.ListAuditLog(ctx, "d1")
				Expect(err).NotTo(HaveOccurred())
				Expect(logs).To(HaveLen(1))
				Expect(logs[0].Action).To(Equal("CREATED"))
				Expect(logs[0].UserAddress).To(Equal(repository.SystemUser))
				Expect(*logs[0].DistributionID).To(Equal("d1"))
			})
		})

		When("two entries share a recipient in different casing", func() {
			BeforeEach(func() {
				input[1].RecipientAddress = "0x742d35cc6634c0532925a3b844bc9e7595f0beb0"
			})

			It("rejects the whole aggregate", func() {
				Expect(err).To(MatchError(repository.ErrDuplicateRecipient))
				Expect(entries).To(BeNil())

				_, getErr := repo.GetDistribution(ctx, "d1")
				Expect(getErr).To(MatchError(repository.ErrNotFound))

				logs, _, listErr := repo.ListAllAuditLogs(ctx, 50, 0)
				Expect(listErr).NotTo(HaveOccurred())
				Expect(logs).To(BeEmpty())
			})
		})

		When("the id is already taken", func() {
			BeforeEach(func() {
				Expect(repo.InsertDistribution(ctx, newDistribution("d1", baseDay))).To(Succeed())
			})

			It("fails with ErrAlreadyExists", func() {
				Expect(err).To(MatchError(repository.ErrAlreadyExists))
			})
		})
	})

	Describe("InsertEntry", func() {
		It("numbers entries across the whole store", func() {
			_, err := repo.CreateDistribution(ctx, newDistribution("d1", baseDay), newEntries(), nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(repo.InsertDistribution(ctx, newDistribution("d2", baseDay.Add(time.Hour)))).To(Succeed())

			e, err := repo.InsertEntry(ctx, repository.Entry{
				DistributionID:   "d2",
				RecipientAddress: "0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
				Amount:           "10",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(e.ID).To(Equal(uint64(3)))
		})

		It("requires an existing distribution", func() {
			_, err := repo.InsertEntry(ctx, repository.Entry{DistributionID: "nope", RecipientAddress: "0x1", Amount: "1"})
			Expect(err).To(MatchError(repository.ErrNotFound))
		})
	})

	Describe("InsertAuditLog", func() {
		It("accepts global entries and defaults the user", func() {
			a, err := repo.InsertAuditLog(ctx, repository.AuditLog{Action: "STARTED", Details: "service started"})
			Expect(err).NotTo(HaveOccurred())
			Expect(a.ID).To(Equal(uint64(1)))
			Expect(a.UserAddress).To(Equal(repository.SystemUser))
			Expect(a.Timestamp).To(BeTemporally("==", baseDay.Add(time.Second)))
		})

		It("starts numbering at 1 from pre-seeded counters", func() {
			storage := db.NewMemoryDB()
			err := storage.Update(ctx, func(txn db.Txn) error {
				for _, key := range repository.Counters() {
					if err := txn.Put(key, []byte("0")); err != nil {
						return err
					}
				}
				return nil
			})
			Expect(err).NotTo(HaveOccurred())
			seeded := repository.NewDistributionRepository(storage)

			first, err := seeded.InsertAuditLog(ctx, repository.AuditLog{Action: "STARTED"})
			Expect(err).NotTo(HaveOccurred())
			second, err := seeded.InsertAuditLog(ctx, repository.AuditLog{Action: "STOPPED"})
			Expect(err).NotTo(HaveOccurred())
			Expect([]uint64{first.ID, second.ID}).To(Equal([]uint64{1, 2}))

			logs, total, err := seeded.ListAllAuditLogs(ctx, 10, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(2))
			Expect(logs[0].Action).To(Equal("STOPPED"))
			Expect(logs[1].Action).To(Equal("STARTED"))
		})

		It("rejects a dangling distribution reference", func() {
			missing := "missing"
			_, err := repo.InsertAuditLog(ctx, repository.AuditLog{DistributionID: &missing, Action: "X"})
			Expect(err).To(MatchError(repository.ErrNotFound))
		})
	})

	Describe("UpdateStatus", func() {
		var hash string

		BeforeEach(func() {
			hash = "0xAB12"
			_, err := repo.CreateDistribution(ctx, newDistribution("d1", baseDay), newEntries(), nil)
			Expect(err).NotTo(HaveOccurred())
		})

		It("moves the status, sets the hash and writes the audit record", func() {
			d, err := repo.UpdateStatus(ctx, repository.StatusUpdate{
				ID:         "d1",
				From:       "pending",
				To:         "proposed",
				SafeTxHash: &hash,
				Audit:      &repository.AuditLog{Action: "PROPOSED", UserAddress: "bob"},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(d.Status).To(Equal("proposed"))
			Expect(d.Version).To(Equal(uint64(1)))
			Expect(*d.SafeTxHash).To(Equal(hash))

			byHash, err := repo.GetDistributionBySafeTxHash(ctx, "0xab12")
			Expect(err).NotTo(HaveOccurred())
			Expect(byHash.ID).To(Equal("d1"))

			proposed, err := repo.ListDistributionsByStatus(ctx, "proposed")
			Expect(err).NotTo(HaveOccurred())
			Expect(proposed).To(HaveLen(1))

			pending, err := repo.ListDistributionsByStatus(ctx, "pending")
			Expect(err).NotTo(HaveOccurred())
			Expect(pending).To(BeEmpty())

			logs, err := repo.ListAuditLog(ctx, "d1")
			Expect(err).NotTo(HaveOccurred())
			Expect(logs[0].Action).To(Equal("PROPOSED"))
			Expect(logs[0].UserAddress).To(Equal("bob"))
		})

		It("rejects a stale transition", func() {
			_, err := repo.UpdateStatus(ctx, repository.StatusUpdate{ID: "d1", From: "pending", To: "proposed"})
			Expect(err).NotTo(HaveOccurred())

			_, err = repo.UpdateStatus(ctx, repository.StatusUpdate{
				ID:    "d1",
				From:  "pending",
				To:    "proposed",
				Audit: &repository.AuditLog{Action: "PROPOSED"},
			})
			var conflict *repository.StatusConflictError
			Expect(errors.As(err, &conflict)).To(BeTrue())
			Expect(conflict.Actual).To(Equal("proposed"))
			Expect(conflict.Expected).To(Equal("pending"))

			logs, err := repo.ListAuditLog(ctx, "d1")
			Expect(err).NotTo(HaveOccurred())
			Expect(logs).To(BeEmpty())
		})

		It("never replaces a stored hash", func() {
			_, err := repo.UpdateStatus(ctx, repository.StatusUpdate{ID: "d1", From: "pending", To: "proposed", SafeTxHash: &hash})
			Expect(err).NotTo(HaveOccurred())

			other := "0xCD34"
			_, err = repo.UpdateStatus(ctx, repository.StatusUpdate{ID: "d1", From: "proposed", To: "proposed", SafeTxHash: &other})
			Expect(err).To(MatchError(repository.ErrImmutableField))

			d, err := repo.UpdateStatus(ctx, repository.StatusUpdate{ID: "d1", From: "proposed", To: "executing"})
			Expect(err).NotTo(HaveOccurred())
			Expect(*d.SafeTxHash).To(Equal(hash))
		})

		It("keeps safe transaction hashes unique", func() {
			_, err := repo.CreateDistribution(ctx, newDistribution("d2", baseDay.Add(time.Minute)), newEntries(), nil)
			Expect(err).NotTo(HaveOccurred())

			_, err = repo.UpdateStatus(ctx, repository.StatusUpdate{ID: "d1", From: "pending", To: "proposed", SafeTxHash: &hash})
			Expect(err).NotTo(HaveOccurred())

			_, err = repo.UpdateStatus(ctx, repository.StatusUpdate{ID: "d2", From: "pending", To: "proposed", SafeTxHash: &hash})
			Expect(err).To(MatchError(repository.ErrAlreadyExists))
		})

		It("fails for an unknown distribution", func() {
			_, err := repo.UpdateStatus(ctx, repository.StatusUpdate{ID: "nope", From: "pending", To: "proposed"})
			Expect(err).To(MatchError(repository.ErrNotFound))
		})
	})

	Describe("ListDistributions", func() {
		BeforeEach(func() {
			for i := 1; i <= 5; i++ {
				id := fmt.Sprintf("d%d", i)
				Expect(repo.InsertDistribution(ctx, newDistribution(id, baseDay.Add(time.Duration(i)*time.Hour)))).To(Succeed())
			}
		})

		It("returns the most recent first", func() {
			page, total, err := repo.ListDistributions(ctx, 2, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(5))
			Expect(page).To(HaveLen(2))
			Expect(page[0].ID).To(Equal("d5"))
			Expect(page[1].ID).To(Equal("d4"))
		})

		It("applies the offset after sorting", func() {
			page, _, err := repo.ListDistributions(ctx, 2, 3)
			Expect(err).NotTo(HaveOccurred())
			Expect(page).To(HaveLen(2))
			Expect(page[0].ID).To(Equal("d2"))
			Expect(page[1].ID).To(Equal("d1"))
		})

		It("returns nothing past the end", func() {
			page, total, err := repo.ListDistributions(ctx, 20, 10)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(5))
			Expect(page).To(BeEmpty())
		})

		It("lists everything", func() {
			all, err := repo.AllDistributions(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(5))
		})
	})

	Describe("ListAllAuditLogs", func() {
		BeforeEach(func() {
			for i := 0; i < 3; i++ {
				_, err := repo.InsertAuditLog(ctx, repository.AuditLog{Action: fmt.Sprintf("A%d", i)})
				Expect(err).NotTo(HaveOccurred())
			}
		})

		It("pages newest first", func() {
			logs, total, err := repo.ListAllAuditLogs(ctx, 2, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(3))
			Expect(logs[0].Action).To(Equal("A2"))
			Expect(logs[1].Action).To(Equal("A1"))
		})
	})

	When("the storage backend fails", func() {
		var (
			fakeStorage *fake.Storage
			fakeErr     error
		)

		BeforeEach(func() {
			fakeErr = errors.New("fake error")
			fakeStorage = new(fake.Storage)
			fakeStorage.UpdateReturns(fakeErr)
			fakeStorage.ViewReturns(fakeErr)
			repo = repository.NewDistributionRepository(fakeStorage)
		})

		It("wraps write errors", func() {
			err := repo.InsertDistribution(ctx, newDistribution("d1", baseDay))
			Expect(err).To(MatchError(fakeErr))
			Expect(err.Error()).To(HavePrefix("insert distribution: "))
			Expect(fakeStorage.UpdateCallCount()).To(Equal(1))
		})

		It("wraps read errors", func() {
			_, err := repo.GetDistribution(ctx, "d1")
			Expect(err).To(MatchError(fakeErr))
			Expect(fakeStorage.ViewCallCount()).To(Equal(1))
		})
	})
})
