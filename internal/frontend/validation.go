// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package frontend

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateInput checks the validate tags of payload and returns one message
// per failing field, keyed by its JSON name. It returns nil when payload is
// valid.
func ValidateInput(payload any) map[string]string {
	err := structValidator.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return map[string]string{"": err.Error()}
	}

	messages := make(map[string]string, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		if _, seen := messages[fieldErr.Field()]; !seen {
			messages[fieldErr.Field()] = ruleMessage(fieldErr)
		}
	}
	return messages
}

func ruleMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "This field is required"
	case "max":
		return fmt.Sprintf("Maximum %s characters", fieldErr.Param())
	case "min":
		return fmt.Sprintf("Minimum %s characters", fieldErr.Param())
	case "email":
		return "Must be a valid email address"
	case "http_url", "url":
		return "Must be a valid http or https URL"
	case "oneof":
		return "Must be one of " + strings.ReplaceAll(fieldErr.Param(), " ", ", ")
	default:
		return "Is invalid"
	}
}
