package utils

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("session_type", validateSessionType)
	validate.RegisterValidation("consultation_type", validateSessionType)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateSessionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "photo_review", "video_call", "follow_up":
		return true
	}
	return false
}
