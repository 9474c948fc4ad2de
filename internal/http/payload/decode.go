package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/jellydator/validation"
)

const maxJSONBody = 1 << 20

type Decoder struct{}

// DecodeJSONPayload decodes the request body into object and validates it
// when object implements validation.Validatable. An empty body leaves object
// untouched.
func (d Decoder) DecodeJSONPayload(r *http.Request, object any) (err error) {
	body := http.MaxBytesReader(nil, r.Body, maxJSONBody)
	defer func() {
		errClose := body.Close()
		if err == nil {
			err = errClose
		}
	}()

	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(object); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	return validatePayload(object)
}

func validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}
