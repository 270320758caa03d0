package shared

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// payloadValidator is the process-wide validator instance. It caches struct
// metadata and is safe for concurrent use.
var payloadValidator = validator.New()

// DecodeJSON decodes the request body into v. Decode failures come back
// unwrapped so callers can inspect them (json.UnmarshalTypeError carries
// the offending field).
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// ValidateRequest checks v against its validate tags. A type providing its
// own Validate method takes precedence over tag validation.
//
// A returned validator.ValidationErrors lists violations in field
// declaration order, so callers that report a single message take the
// first entry.
func ValidateRequest(v interface{}) error {
	if sv, ok := v.(interface{ Validate() error }); ok {
		return sv.Validate()
	}
	return payloadValidator.Struct(v)
}
