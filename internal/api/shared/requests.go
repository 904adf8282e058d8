package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/aircnc-api/internal/domain"
)

// MaxBodyBytes caps the size of a request body.
const MaxBodyBytes = 1 << 20

// Global validator instance for reuse
var validate = validator.New()

// ErrNotObject is returned when a body that must be a JSON object is not one.
var ErrNotObject = fmt.Errorf("%w: request body must be a JSON object", domain.ErrValidation)

// ErrTrailingData is returned when a body holds more than one JSON value.
var ErrTrailingData = fmt.Errorf("%w: request body must contain a single JSON value", domain.ErrValidation)

// DecodeJSON decodes the request body into the given struct. The body must
// hold exactly one JSON value.
func DecodeJSON(r *http.Request, v interface{}) error {
	body := http.MaxBytesReader(nil, r.Body, MaxBodyBytes)
	dec := json.NewDecoder(body)
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return err
		}
		return ErrTrailingData
	}
	return nil
}

// DecodeDocument decodes a request body that must be a JSON object into a
// schema-less document.
func DecodeDocument(r *http.Request) (domain.Document, error) {
	var doc domain.Document
	if err := DecodeJSON(r, &doc); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, ErrNotObject
		}
		return nil, err
	}
	if doc == nil {
		return nil, ErrNotObject
	}
	return doc, nil
}

// ValidateRequest validates the given struct using the validator package.
func ValidateRequest(v interface{}) error {
	// Check if the object implements the Validate interface
	if validator, ok := v.(interface{ Validate() error }); ok {
		return validator.Validate()
	}

	// Otherwise, use the struct validator
	return validate.Struct(v)
}
