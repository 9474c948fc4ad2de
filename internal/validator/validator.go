package validator

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jellydator/validation"
)

const (
	TypeLoopDrop = "LOOPDROP"
	TypeLoyalty  = "LOYALTY"

	MinEntries = 1
	MaxEntries = 500

	CodeInvalid   = "any.invalid"
	CodeDuplicate = "duplicate"
)

var distributionTypes = []string{TypeLoopDrop, TypeLoyalty}

type EntryCandidate struct {
	Address string `json:"address"`
	Amount  string `json:"amount"`
}

// Candidate is an unvalidated distribution list.
type Candidate struct {
	Name         string           `json:"name"`
	Type         string           `json:"type"`
	TokenAddress string           `json:"tokenAddress"`
	TokenSymbol  string           `json:"tokenSymbol"`
	Entries      []EntryCandidate `json:"entries"`
}

type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Result struct {
	Valid      bool
	Normalized Candidate
	Errors     []FieldError
}

// Validate checks every field of the candidate in one pass and reports all
// schema errors. Duplicate recipients are only looked for once the schema passes.
func Validate(c Candidate) Result {
	fieldErrs := validateSchema(c)
	if len(fieldErrs) > 0 {
		return Result{Errors: fieldErrs}
	}

	if dups := findDuplicates(c.Entries); len(dups) > 0 {
		return Result{Errors: dups}
	}

	return Result{
		Valid:      true,
		Normalized: normalize(c),
	}
}

func validateSchema(c Candidate) []FieldError {
	var fieldErrs []FieldError

	err := validation.ValidateStruct(&c,
		validation.Field(&c.Name, stringLength("name", 3, 100)),
		validation.Field(&c.Type, oneOf("type", distributionTypes)),
		validation.Field(&c.TokenAddress, address("tokenAddress")),
		validation.Field(&c.TokenSymbol, stringLength("tokenSymbol", 1, 10)),
		validation.Field(&c.Entries, entryCount("entries")),
	)
	fieldErrs = appendFieldErrors(fieldErrs, "", err,
		"name", "type", "tokenAddress", "tokenSymbol", "entries")

	for i := range c.Entries {
		entry := c.Entries[i]
		prefix := fmt.Sprintf("entries.%d.", i)
		err := validation.ValidateStruct(&entry,
			validation.Field(&entry.Address, address(prefix+"address")),
			validation.Field(&entry.Amount, amount(prefix+"amount")),
		)
		fieldErrs = appendFieldErrors(fieldErrs, prefix, err, "address", "amount")
	}

	return fieldErrs
}

func findDuplicates(entries []EntryCandidate) []FieldError {
	var dups []FieldError
	seen := make(map[string]struct{}, len(entries))
	for i, e := range entries {
		key := strings.ToLower(strings.TrimPrefix(e.Address, "0x"))
		if _, ok := seen[key]; ok {
			dups = append(dups, FieldError{
				Field:   fmt.Sprintf("entries.%d.address", i),
				Code:    CodeDuplicate,
				Message: fmt.Sprintf("Duplicate address: %s", e.Address),
			})
			continue
		}
		seen[key] = struct{}{}
	}
	return dups
}

// normalize must only be called on a candidate that passed the schema.
func normalize(c Candidate) Candidate {
	out := Candidate{
		Name:        c.Name,
		Type:        c.Type,
		TokenSymbol: c.TokenSymbol,
		Entries:     make([]EntryCandidate, len(c.Entries)),
	}
	out.TokenAddress, _ = NormalizeAddress(c.TokenAddress)

	for i, e := range c.Entries {
		addr, _ := NormalizeAddress(e.Address)
		amt, _ := ParseAmount(e.Amount)
		out.Entries[i] = EntryCandidate{
			Address: addr,
			Amount:  amt.String(),
		}
	}
	return out
}

func appendFieldErrors(dst []FieldError, prefix string, err error, order ...string) []FieldError {
	if err == nil {
		return dst
	}

	var errs validation.Errors
	if !errors.As(err, &errs) {
		return append(dst, FieldError{Field: strings.TrimSuffix(prefix, "."), Code: "any.unknown", Message: err.Error()})
	}

	for _, key := range order {
		fieldErr, ok := errs[key]
		if !ok || fieldErr == nil {
			continue
		}

		fe := FieldError{Field: prefix + key, Code: CodeInvalid, Message: fieldErr.Error()}
		var verr validation.Error
		if errors.As(fieldErr, &verr) {
			fe.Code = verr.Code()
			fe.Message = verr.Message()
		}
		dst = append(dst, fe)
	}
	return dst
}

func stringLength(label string, min, max int) validation.Rule {
	return validation.By(func(value any) error {
		s, _ := value.(string)
		n := utf8.RuneCountInString(s)
		switch {
		case s == "":
			return validation.NewError("string.empty", fmt.Sprintf("%q is not allowed to be empty", label))
		case n < min:
			return validation.NewError("string.min", fmt.Sprintf("%q length must be at least %d characters long", label, min))
		case n > max:
			return validation.NewError("string.max", fmt.Sprintf("%q length must be less than or equal to %d characters long", label, max))
		}
		return nil
	})
}

func oneOf(label string, allowed []string) validation.Rule {
	return validation.By(func(value any) error {
		s, _ := value.(string)
		if s == "" {
			return validation.NewError("string.empty", fmt.Sprintf("%q is not allowed to be empty", label))
		}
		for _, a := range allowed {
			if s == a {
				return nil
			}
		}
		return validation.NewError("any.only", fmt.Sprintf("%q must be one of [%s]", label, strings.Join(allowed, ", ")))
	})
}

func address(label string) validation.Rule {
	return validation.By(func(value any) error {
		s, _ := value.(string)
		if s == "" {
			return validation.NewError("string.empty", fmt.Sprintf("%q is not allowed to be empty", label))
		}
		if !IsValidAddress(s) {
			return validation.NewError(CodeInvalid, fmt.Sprintf("%q contains an invalid value", label))
		}
		return nil
	})
}

func amount(label string) validation.Rule {
	return validation.By(func(value any) error {
		s, _ := value.(string)
		if s == "" {
			return validation.NewError("string.empty", fmt.Sprintf("%q is not allowed to be empty", label))
		}
		if _, err := ParseAmount(s); err != nil {
			return validation.NewError(CodeInvalid, fmt.Sprintf("%q contains an invalid value", label))
		}
		return nil
	})
}

func entryCount(label string) validation.Rule {
	return validation.By(func(value any) error {
		entries, _ := value.([]EntryCandidate)
		switch {
		case len(entries) < MinEntries:
			return validation.NewError("array.min", fmt.Sprintf("%q must contain at least %d items", label, MinEntries))
		case len(entries) > MaxEntries:
			return validation.NewError("array.max", fmt.Sprintf("%q must contain less than or equal to %d items", label, MaxEntries))
		}
		return nil
	})
}
