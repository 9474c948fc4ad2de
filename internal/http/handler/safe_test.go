package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"

	"loopdrop/internal/core"
	"loopdrop/internal/http/handler"
	"loopdrop/internal/http/handler/fake"
	"loopdrop/internal/http/payload"
	"loopdrop/internal/safe"
	"loopdrop/internal/validator"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("SafeHandler", func() {
	const safeTxHash = "0x54e90a21b5b8059daca758ba966056235a59aac88e3aae917fe1a1bcc9ab3b7c"

	var (
		sh          *handler.SafeHandler
		fakeService *fake.SafeService
		fakeDecoder *fake.RequestDecoder
		w           *httptest.ResponseRecorder
		req         *http.Request
	)

	BeforeEach(func() {
		fakeService = new(fake.SafeService)
		fakeDecoder = new(fake.RequestDecoder)
		fakeDecoder.DecodeJSONPayloadStub = payload.Decoder{}.DecodeJSONPayload

		w = httptest.NewRecorder()
		sh = handler.NewSafeHandler(zap.NewNop().Sugar(), fakeDecoder, fakeService)
	})

	Describe("HandleInfo", func() {
		It("returns the safe state", func() {
			fakeService.SafeInfoReturns(safe.Info{
				Address:   "0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
				Owners:    []string{"0x742D35CC6634c0532925A3b844BC9E7595F0BEb0"},
				Threshold: 1,
				Nonce:     7,
			}, nil)

			sh.HandleInfo(w, httptest.NewRequest(http.MethodGet, "/api/safe/info", nil))

			Expect(w.Code).To(Equal(http.StatusOK))
			data := string(decodeEnvelope(w).Data)
			Expect(data).To(ContainSubstring(`"threshold":1`))
			Expect(data).To(ContainSubstring(`"nonce":7`))
		})

		It("maps gateway failures to 502", func() {
			fakeService.SafeInfoReturns(safe.Info{}, &core.GatewayError{Op: "safe info", Err: errors.New("rpc down")})
			sh.HandleInfo(w, httptest.NewRequest(http.MethodGet, "/api/safe/info", nil))

			Expect(w.Code).To(Equal(http.StatusBadGateway))
		})
	})

	Describe("HandleConfirm", func() {
		var signature string

		BeforeEach(func() {
			signature = "0x" + strings.Repeat("1b", 65)
			fakeService.ConfirmSafeTransactionReturns(safe.Confirmation{SafeTxHash: safeTxHash, Owner: "0xabc", Confirmations: 2}, nil)
		})

		JustBeforeEach(func() {
			req = httptest.NewRequest(http.MethodPost, "/api/safe/confirm/"+safeTxHash, strings.NewReader(`{"signature":"`+signature+`"}`))
			req.SetPathValue("safeTxHash", safeTxHash)
			sh.HandleConfirm(w, req)
		})

		It("passes the decoded signature", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			_, hash, sig := fakeService.ConfirmSafeTransactionArgsForCall(0)
			Expect(hash).To(Equal(safeTxHash))
			Expect(sig).To(HaveLen(65))
			Expect(sig[64]).To(Equal(byte(0x1b)))
		})

		When("the signature is malformed", func() {
			BeforeEach(func() {
				signature = "0x1234"
			})

			It("returns 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				env := decodeEnvelope(w)
				Expect(env.Errors).To(HaveLen(1))
				Expect(env.Errors[0].Field).To(Equal("signature"))
				Expect(fakeService.ConfirmSafeTransactionCallCount()).To(Equal(0))
			})
		})

		When("the signer is not an owner", func() {
			BeforeEach(func() {
				fakeService.ConfirmSafeTransactionReturns(safe.Confirmation{}, &core.ValidationError{Errors: []validator.FieldError{
					{Field: "signature", Code: validator.CodeInvalid, Message: safe.ErrNotOwner.Error()},
				}})
			})

			It("returns 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
			})
		})

		When("no distribution uses the hash", func() {
			BeforeEach(func() {
				fakeService.ConfirmSafeTransactionReturns(safe.Confirmation{}, core.ErrNotFound)
			})

			It("returns 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})
	})

	Describe("HandleExecute", func() {
		It("executes by safe transaction hash", func() {
			fakeService.ExecuteBySafeTxHashReturns(core.ExecutionResult{SafeTxHash: safeTxHash, TxHash: "0xfeed", Status: core.StatusExecuting}, nil)

			req = httptest.NewRequest(http.MethodPost, "/api/safe/execute/"+safeTxHash, strings.NewReader(`{"executedBy":"erin"}`))
			req.SetPathValue("safeTxHash", safeTxHash)
			sh.HandleExecute(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			_, hash, executor := fakeService.ExecuteBySafeTxHashArgsForCall(0)
			Expect(hash).To(Equal(safeTxHash))
			Expect(executor).To(Equal("erin"))
		})

		It("maps a lost race to 409", func() {
			fakeService.ExecuteBySafeTxHashReturns(core.ExecutionResult{}, &core.InvalidStateError{Operation: "execute", Status: core.StatusExecuting})

			req = httptest.NewRequest(http.MethodPost, "/api/safe/execute/"+safeTxHash, nil)
			req.SetPathValue("safeTxHash", safeTxHash)
			sh.HandleExecute(w, req)

			Expect(w.Code).To(Equal(http.StatusConflict))
		})
	})
})

var _ = Describe("HealthHandler", func() {
	It("reports ok", func() {
		w := httptest.NewRecorder()
		handler.NewHealthHandler(zap.NewNop().Sugar()).HandleHealth(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(ContainSubstring(`"status":"ok"`))
		Expect(w.Body.String()).To(ContainSubstring("LoopDrop Distribution API"))
	})
})
