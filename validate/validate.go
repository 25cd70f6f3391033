// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validate

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var global *validator.Validate

const (
	ErrFieldRequired     = "Missing required field"
	ErrFieldBelowMinVal  = "Field is below minimum value"
	ErrFieldExceedsMax   = "Field exceeds maximum value"
	ErrUnknownValidation = "Invalid field"
)

func init() {
	global = New()
}

// New returns a validator that reports fields by their JSON names
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct validates s and returns the first failure as a readable error
func Struct(ctx context.Context, s any) error {
	return parseValidationErrors(global.StructCtx(ctx, s))
}

func parseValidationErrors(err error) error {
	if err == nil {
		return nil
	}
	var vErrors validator.ValidationErrors
	if !errors.As(err, &vErrors) || len(vErrors) == 0 {
		return err
	}
	ve := vErrors[0]
	var msg string
	switch ve.Tag() {
	case "required":
		msg = ErrFieldRequired
	case "gt", "gte", "min":
		msg = ErrFieldBelowMinVal
	case "lt", "lte", "max":
		msg = ErrFieldExceedsMax
	default:
		msg = ErrUnknownValidation
	}
	return errors.New(msg + ": " + fieldPath(ve.Namespace()))
}

// fieldPath strips the Go struct name from a validator namespace
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
