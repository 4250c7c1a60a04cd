package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// MaxBodyBytes caps request bodies read by DecodeJSON and the form handlers.
const MaxBodyBytes = 64 << 10

// ErrBodyTooLarge is returned by DecodeJSON when the body exceeds MaxBodyBytes.
var ErrBodyTooLarge = errors.New("request body too large")

// Global validator instance for reuse
var validate = validator.New()

// DecodeJSON decodes a single JSON value from the request body into v.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return ErrBodyTooLarge
		}
		return fmt.Errorf("invalid JSON body: %w", err)
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("invalid JSON body: unexpected data after the first value")
	}
	return nil
}

// ValidateRequest validates v with its own Validate method when it has one,
// and with struct tags otherwise.
func ValidateRequest(v any) error {
	if validator, ok := v.(interface{ Validate() error }); ok {
		return validator.Validate()
	}

	return validate.Struct(v)
}
