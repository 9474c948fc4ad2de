package csvingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"loopdrop/internal/validator"
)

const (
	msgParseFailed = "CSV parsing failed with errors"
	msgReadFailed  = "Failed to read CSV file"

	columnAddress = "address"
	columnAmount  = "amount"
)

const template = `address,amount
0x742D35CC6634c0532925A3b844BC9E7595F0BEb0,1000000000000000000
0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed,2000000000000000000
0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359,1500000000000000000
`

type Entry struct {
	Address string `json:"address"`
	Amount  string `json:"amount"`
}

type RowError struct {
	Line   int    `json:"line"`
	Field  string `json:"field"`
	Value  string `json:"value"`
	Reason string `json:"error"`
}

// Error rejects a whole file. Either Errors lists every bad row, or Cause
// describes why the file could not be read.
type Error struct {
	Message       string     `json:"message"`
	Errors        []RowError `json:"errors,omitempty"`
	ParsedEntries int        `json:"parsedEntries"`
	Cause         string     `json:"error,omitempty"`

	err error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.err)
	}
	return fmt.Sprintf("%s: %d row error(s)", e.Message, len(e.Errors))
}

func (e *Error) Unwrap() error {
	return e.err
}

// Template returns a sample file with the expected header.
func Template() string {
	return template
}

func ParseFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, readFailure(err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads address,amount rows in file order. Every bad row is reported,
// and a single bad row rejects the whole file.
func Parse(r io.Reader) ([]Entry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return []Entry{}, nil
	}
	if err != nil {
		return nil, readFailure(err)
	}

	colIndex := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		colIndex[strings.ToLower(strings.TrimSpace(name))] = i
	}

	entries := []Entry{}
	var rowErrs []RowError
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, readFailure(err)
		}

		line, _ := reader.FieldPos(0)
		entry, rowErr := parseRow(record, colIndex)
		if rowErr != nil {
			rowErr.Line = line
			rowErrs = append(rowErrs, *rowErr)
			continue
		}
		entries = append(entries, entry)
	}

	if len(rowErrs) > 0 {
		return nil, &Error{
			Message:       msgParseFailed,
			Errors:        rowErrs,
			ParsedEntries: len(entries),
		}
	}

	return entries, nil
}

func parseRow(record []string, colIndex map[string]int) (Entry, *RowError) {
	address := column(record, colIndex, columnAddress)
	amount := column(record, colIndex, columnAmount)

	if address == "" {
		return Entry{}, &RowError{Field: columnAddress, Value: address, Reason: "Address is required"}
	}

	normalized, err := validator.NormalizeAddress(address)
	if err != nil {
		return Entry{}, &RowError{Field: columnAddress, Value: address, Reason: "Invalid Ethereum address"}
	}

	if amount == "" {
		return Entry{}, &RowError{Field: columnAmount, Value: amount, Reason: "Amount is required"}
	}

	n, err := validator.ParseAmount(amount)
	if err != nil {
		return Entry{}, &RowError{Field: columnAmount, Value: amount, Reason: fmt.Sprintf("Invalid amount: %s", err)}
	}

	return Entry{Address: normalized, Amount: n.String()}, nil
}

func column(record []string, colIndex map[string]int, name string) string {
	i, ok := colIndex[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func readFailure(err error) *Error {
	return &Error{
		Message: msgReadFailed,
		Cause:   err.Error(),
		err:     err,
	}
}
