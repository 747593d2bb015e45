package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"rescueops/pkg/e"
	"rescueops/pkg/validator"
)

const maxBodyBytes = 1 << 20

// DecodeJSON reads a single JSON object into target, rejecting unknown fields,
// and runs the struct's validate tags. The error is a validation *e.Error.
func DecodeJSON(w http.ResponseWriter, r *http.Request, target any) error {
	if err := ReadJSON(w, r, target); err != nil {
		return err
	}
	return Validate(target)
}

// ReadJSON is DecodeJSON without validation, for inputs that are normalized
// first.
func ReadJSON(w http.ResponseWriter, r *http.Request, target any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			return e.Validation(e.CodeValidation, "", "request body is empty")
		}
		return e.Validation(e.CodeValidation, "", fmt.Sprintf("invalid JSON: %v", err))
	}
	if dec.More() {
		return e.Validation(e.CodeValidation, "", "request body must contain a single JSON object")
	}
	return nil
}

func Validate(target any) error {
	if err := validator.ValidateStruct(target); err != nil {
		if fe, ok := validator.FirstError(err); ok {
			return e.Validation(e.CodeValidation, fe.Field, fe.Message)
		}
		return e.Validation(e.CodeValidation, "", err.Error())
	}
	return nil
}
