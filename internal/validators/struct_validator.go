// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// StructValidator validates models by their `validate` struct tags. Field
// names in messages are the json names.
type StructValidator struct {
	validate *validator.Validate
}

// NewStructValidator returns a Validator backed by go-playground/validator.
func NewStructValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &StructValidator{validate: v}
}

// Validate checks obj, which must be a struct or pointer to struct. When
// fields are given only those struct fields (Go names) are checked.
func (s *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	t := reflect.TypeOf(obj)
	if t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return ErrUnsupportedType
	}

	for _, f := range fields {
		if _, ok := t.FieldByName(f); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	var err error
	if len(fields) > 0 {
		err = s.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = s.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err
	}
	return toFieldError(validationErrs[0])
}

func toFieldError(e validator.FieldError) *FieldError {
	field := e.Field()

	var msg string
	switch e.Tag() {
	case "required":
		msg = fmt.Sprintf("%s is required", field)
	case "min":
		msg = fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		msg = fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "alphanum":
		msg = fmt.Sprintf("%s must contain only letters and digits", field)
	default:
		msg = fmt.Sprintf("%s failed validation: %s", field, e.Tag())
	}

	return &FieldError{Field: field, Tag: e.Tag(), Message: msg}
}
