package models

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

const msgDateOfBirthRequired = "Date of birth is required."

// fieldMessages maps a struct field and failed tag to the message shown on the form
var fieldMessages = map[string]map[string]string{
	"ID": {
		"gt": "A user ID is required.",
	},
	"Forename": {
		"required": "First name is required.",
		"min":      "First name must be between 2 and 50 characters.",
		"max":      "First name must be between 2 and 50 characters.",
	},
	"Surname": {
		"required": "Last name is required.",
		"min":      "Last name must be between 2 and 50 characters.",
		"max":      "Last name must be between 2 and 50 characters.",
	},
	"Email": {
		"required": "Email address is required.",
		"email":    "Please enter a valid email address.",
		"max":      "Email address cannot exceed 100 characters.",
	},
}

// validationMessages runs the struct-tag rules and returns form-friendly messages
func validationMessages(model interface{}) []string {
	err := validate.Struct(model)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		if msg, ok := fieldMessages[fe.Field()][fe.Tag()]; ok {
			messages = append(messages, msg)
			continue
		}
		messages = append(messages, fe.Error())
	}
	return messages
}

// IsValidEmail reports whether the string is syntactically an email address
func IsValidEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}
