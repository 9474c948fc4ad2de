package csvingest_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"loopdrop/internal/csvingest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Parse", func() {
	var (
		input   string
		entries []csvingest.Entry
		err     error
	)

	JustBeforeEach(func() {
		entries, err = csvingest.Parse(strings.NewReader(input))
	})

	When("every row is valid", func() {
		BeforeEach(func() {
			input = " Amount , ADDRESS \n" +
				"1000,0x742d35cc6634c0532925a3b844bc9e7595f0beb0\n" +
				" 0002 , 0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359 \n"
		})

		It("returns normalized entries in file order", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(Equal([]csvingest.Entry{
				{Address: "0x742D35CC6634c0532925A3b844BC9E7595F0BEb0", Amount: "1000"},
				{Address: "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359", Amount: "2"},
			}))
		})

		It("returns the same sequence when parsed again", func() {
			again, againErr := csvingest.Parse(strings.NewReader(input))
			Expect(againErr).NotTo(HaveOccurred())
			Expect(again).To(Equal(entries))
		})
	})

	When("the header starts with a byte order mark", func() {
		BeforeEach(func() {
			input = "\ufeffaddress,amount\n0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed,7\n"
		})

		It("still matches the address column", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(1))
		})
	})

	When("three of ten rows are malformed", func() {
		BeforeEach(func() {
			rows := []string{
				"address,amount",
				"0x0000000000000000000000000000000000000001,1",
				"0x0000000000000000000000000000000000000002,2",
				",3",
				"0x0000000000000000000000000000000000000004,4",
				"0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb0,5",
				"0x0000000000000000000000000000000000000006,6",
				"0x0000000000000000000000000000000000000007,-7",
				"0x0000000000000000000000000000000000000008,8",
				"0x0000000000000000000000000000000000000009,9",
				"0x000000000000000000000000000000000000000a,10",
			}
			input = strings.Join(rows, "\n") + "\n"
		})

		It("rejects the whole file with one error per bad row", func() {
			Expect(entries).To(BeNil())

			var ingestErr *csvingest.Error
			Expect(errors.As(err, &ingestErr)).To(BeTrue())
			Expect(ingestErr.Message).To(Equal("CSV parsing failed with errors"))
			Expect(ingestErr.ParsedEntries).To(Equal(7))
			Expect(ingestErr.Errors).To(HaveLen(3))

			Expect(ingestErr.Errors[0]).To(Equal(csvingest.RowError{
				Line: 4, Field: "address", Value: "", Reason: "Address is required",
			}))
			Expect(ingestErr.Errors[1]).To(Equal(csvingest.RowError{
				Line: 6, Field: "address", Value: "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb0", Reason: "Invalid Ethereum address",
			}))
			Expect(ingestErr.Errors[2].Line).To(Equal(8))
			Expect(ingestErr.Errors[2].Field).To(Equal("amount"))
			Expect(ingestErr.Errors[2].Reason).To(HavePrefix("Invalid amount: "))
			Expect(ingestErr.Errors[2].Reason).To(ContainSubstring("greater than zero"))
		})
	})

	When("an amount is missing or not a number", func() {
		BeforeEach(func() {
			input = "address,amount\n" +
				"0x0000000000000000000000000000000000000001\n" +
				"0x0000000000000000000000000000000000000002,1.5\n"
		})

		It("reports both rows", func() {
			var ingestErr *csvingest.Error
			Expect(errors.As(err, &ingestErr)).To(BeTrue())
			Expect(ingestErr.Errors).To(HaveLen(2))
			Expect(ingestErr.Errors[0].Reason).To(Equal("Amount is required"))
			Expect(ingestErr.Errors[1].Reason).To(HavePrefix("Invalid amount: invalid integer"))
		})
	})

	When("the input is empty", func() {
		BeforeEach(func() {
			input = ""
		})

		It("returns no entries", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(BeEmpty())
		})
	})
})

var _ = Describe("ParseFile", func() {
	It("reads the template back without errors", func() {
		path := filepath.Join(GinkgoT().TempDir(), "template.csv")
		Expect(os.WriteFile(path, []byte(csvingest.Template()), 0o600)).To(Succeed())

		entries, err := csvingest.ParseFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(HaveLen(3))
		Expect(entries[0].Amount).To(Equal("1000000000000000000"))
		Expect(entries[1].Amount).To(Equal("2000000000000000000"))
		Expect(entries[2].Amount).To(Equal("1500000000000000000"))
		for _, e := range entries {
			Expect(csvingest.Template()).To(ContainSubstring(e.Address))
		}
	})

	It("fails with a read error for a missing file", func() {
		_, err := csvingest.ParseFile(filepath.Join(GinkgoT().TempDir(), "missing.csv"))

		var ingestErr *csvingest.Error
		Expect(errors.As(err, &ingestErr)).To(BeTrue())
		Expect(ingestErr.Message).To(Equal("Failed to read CSV file"))
		Expect(ingestErr.Cause).NotTo(BeEmpty())
		Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
	})
})
