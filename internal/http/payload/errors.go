package payload

import (
	"errors"
	"sort"

	"loopdrop/internal/validator"

	"github.com/jellydator/validation"
)

// FieldErrors flattens the validation errors wrapped in err. It returns nil
// when err carries no validation.Errors.
func FieldErrors(err error) []validator.FieldError {
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return nil
	}

	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	out := make([]validator.FieldError, 0, len(errs))
	for _, field := range fields {
		fe := validator.FieldError{Field: field, Code: validator.CodeInvalid, Message: errs[field].Error()}
		var verr validation.Error
		if errors.As(errs[field], &verr) {
			fe.Code = verr.Code()
			fe.Message = verr.Message()
		}
		out = append(out, fe)
	}
	return out
}
