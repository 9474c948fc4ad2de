package payload

import (
	"regexp"
	"strings"

	"loopdrop/internal/core"
	"loopdrop/internal/validator"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/jellydator/validation"
)

var signatureRegex = regexp.MustCompile(`^0x[0-9a-fA-F]{130}$`)

type CreateDistributionRequest struct {
	Name         string                     `json:"name"`
	Type         string                     `json:"type"`
	TokenAddress string                     `json:"tokenAddress"`
	TokenSymbol  string                     `json:"tokenSymbol"`
	Entries      []validator.EntryCandidate `json:"entries"`
	CreatedBy    string                     `json:"createdBy"`
}

// ToCore builds the create request. A non-empty identity takes precedence
// over the createdBy field of the body.
func (c CreateDistributionRequest) ToCore(identity string) core.CreateRequest {
	return core.CreateRequest{
		Name:         c.Name,
		Type:         c.Type,
		TokenAddress: c.TokenAddress,
		TokenSymbol:  c.TokenSymbol,
		Entries:      c.Entries,
		CreatedBy:    firstNonEmpty(identity, c.CreatedBy),
	}
}

type ProposeRequest struct {
	ProposedBy string `json:"proposedBy"`
}

func (p ProposeRequest) Actor(identity string) string {
	return firstNonEmpty(identity, p.ProposedBy)
}

type ExecuteRequest struct {
	ExecutedBy string `json:"executedBy"`
}

func (e ExecuteRequest) Actor(identity string) string {
	return firstNonEmpty(identity, e.ExecutedBy)
}

type FailRequest struct {
	Reason   string `json:"reason"`
	FailedBy string `json:"failedBy"`
}

func (f FailRequest) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Reason, validation.Required.Error("reason is required"), validation.Length(1, 1000)),
	)
}

func (f FailRequest) Actor(identity string) string {
	return firstNonEmpty(identity, f.FailedBy)
}

type ConfirmRequest struct {
	Signature string `json:"signature"`
}

func (c ConfirmRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Signature,
			validation.Required,
			validation.Match(signatureRegex).Error("must be a 65 byte hex signature")),
	)
}

// SignatureBytes must only be called after Validate succeeded.
func (c ConfirmRequest) SignatureBytes() ([]byte, error) {
	return hexutil.Decode(c.Signature)
}

// UploadMetadata holds the form fields sent along a CSV upload.
type UploadMetadata struct {
	Name         string
	Type         string
	TokenAddress string
	TokenSymbol  string
	CreatedBy    string
}

// MissingFields lists the required form fields that were left empty.
func (u UploadMetadata) MissingFields() []string {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"name", u.Name},
		{"type", u.Type},
		{"tokenAddress", u.TokenAddress},
		{"tokenSymbol", u.TokenSymbol},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

func (u UploadMetadata) ToCore(identity string) core.Metadata {
	return core.Metadata{
		Name:         u.Name,
		Type:         u.Type,
		TokenAddress: u.TokenAddress,
		TokenSymbol:  u.TokenSymbol,
		CreatedBy:    firstNonEmpty(identity, u.CreatedBy),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
