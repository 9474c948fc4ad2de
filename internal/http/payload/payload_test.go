package payload_test

import (
	"net/http/httptest"
	"net/url"
	"strings"

	"loopdrop/internal/http/payload"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Decoder", func() {
	var decoder payload.Decoder

	It("decodes a create request", func() {
		req := httptest.NewRequest("POST", "/api/distributions/create", strings.NewReader(
			`{"name":"Week 1","type":"LOOPDROP","tokenAddress":"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed","tokenSymbol":"LOOP",
			  "entries":[{"address":"0x742D35CC6634c0532925A3b844BC9E7595F0BEb0","amount":"10"}],"createdBy":"bob"}`))

		var body payload.CreateDistributionRequest
		Expect(decoder.DecodeJSONPayload(req, &body)).To(Succeed())
		Expect(body.Entries).To(HaveLen(1))

		coreReq := body.ToCore("")
		Expect(coreReq.CreatedBy).To(Equal("bob"))
		Expect(coreReq.Entries[0].Amount).To(Equal("10"))
		Expect(body.ToCore("alice").CreatedBy).To(Equal("alice"))
	})

	It("rejects unknown fields", func() {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"proposedBy":"bob","extra":1}`))
		var body payload.ProposeRequest
		Expect(decoder.DecodeJSONPayload(req, &body)).To(MatchError(ContainSubstring("unknown field")))
	})

	It("accepts an empty body", func() {
		req := httptest.NewRequest("POST", "/", nil)
		var body payload.ProposeRequest
		Expect(decoder.DecodeJSONPayload(req, &body)).To(Succeed())
		Expect(body.Actor("")).To(BeEmpty())
	})

	It("validates the decoded payload", func() {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"failedBy":"bob"}`))
		var body payload.FailRequest
		err := decoder.DecodeJSONPayload(req, &body)
		Expect(err).To(HaveOccurred())

		fieldErrs := payload.FieldErrors(err)
		Expect(fieldErrs).To(HaveLen(1))
		Expect(fieldErrs[0].Field).To(Equal("reason"))
		Expect(fieldErrs[0].Message).To(Equal("reason is required"))
	})

	It("reports malformed json", func() {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{"reason":`))
		var body payload.FailRequest
		err := decoder.DecodeJSONPayload(req, &body)
		Expect(err).To(MatchError(ContainSubstring("decoding json payload")))
		Expect(payload.FieldErrors(err)).To(BeNil())
	})
})

var _ = Describe("ConfirmRequest", func() {
	It("accepts a 65 byte signature", func() {
		sig := "0x" + strings.Repeat("ab", 65)
		req := payload.ConfirmRequest{Signature: sig}
		Expect(req.Validate()).To(Succeed())

		raw, err := req.SignatureBytes()
		Expect(err).NotTo(HaveOccurred())
		Expect(raw).To(HaveLen(65))
	})

	DescribeTable("rejects",
		func(sig string) {
			Expect(payload.ConfirmRequest{Signature: sig}.Validate()).To(HaveOccurred())
		},
		Entry("empty", ""),
		Entry("no prefix", strings.Repeat("ab", 65)),
		Entry("short", "0x"+strings.Repeat("ab", 64)),
		Entry("non hex", "0x"+strings.Repeat("zz", 65)),
	)
})

var _ = Describe("UploadMetadata", func() {
	It("lists missing fields in order", func() {
		meta := payload.UploadMetadata{Type: "LOYALTY", TokenSymbol: "  "}
		Expect(meta.MissingFields()).To(Equal([]string{"name", "tokenAddress", "tokenSymbol"}))
	})

	It("prefers the authenticated identity", func() {
		meta := payload.UploadMetadata{Name: "n", CreatedBy: "form-user"}
		Expect(meta.ToCore("").CreatedBy).To(Equal("form-user"))
		Expect(meta.ToCore("token-user").CreatedBy).To(Equal("token-user"))
	})
})

var _ = Describe("ParsePagination", func() {
	DescribeTable("valid input",
		func(query string, expected payload.Pagination) {
			values, err := url.ParseQuery(query)
			Expect(err).NotTo(HaveOccurred())

			p, err := payload.ParsePagination(values, payload.DefaultDistributionsLimit)
			Expect(err).NotTo(HaveOccurred())
			Expect(p).To(Equal(expected))
		},
		Entry("defaults", "", payload.Pagination{Limit: 20, Offset: 0}),
		Entry("explicit", "limit=5&offset=10", payload.Pagination{Limit: 5, Offset: 10}),
		Entry("zero limit", "limit=0", payload.Pagination{Limit: 20}),
		Entry("capped", "limit=100000", payload.Pagination{Limit: payload.MaxLimit}),
	)

	DescribeTable("invalid input",
		func(query string) {
			values, _ := url.ParseQuery(query)
			_, err := payload.ParsePagination(values, payload.DefaultAuditLogsLimit)
			Expect(err).To(MatchError(payload.ErrInvalidPagination))
		},
		Entry("negative limit", "limit=-1"),
		Entry("negative offset", "offset=-5"),
		Entry("not a number", "limit=ten"),
	)
})
