package utils

import (
	"net/http"
	"skinbloom-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// DecodeAndValidateJSONBody decodes a JSON request body into dst and runs
// struct validation on it.
func DecodeAndValidateJSONBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	if err := ValidateStruct(dst); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
