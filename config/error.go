package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/golang-numeric/commonerrors"
	"github.com/ARM-software/golang-numeric/value"
)

// IValidationError describes why a configuration is invalid and which entry is at fault.
// It wraps commonerrors.ErrInvalid.
type IValidationError interface {
	error
	fmt.Stringer
	// GetMapStructurePath returns the environment variable of the invalid entry e.g. NUMERIC_GRAIN_SIZE.
	GetMapStructurePath() string
	// GetTreePath returns the path to the invalid field in the configuration structure e.g. Policy->GrainSize.
	GetTreePath() string
	GetReason() string
	Unwrap() error
	// RecordField records that the error happened within field fieldName, tagged mapStructureFieldName.
	RecordField(fieldName string, mapStructureFieldName *string, mapStructurePrefix *string)
	RecordPrefix(mapStructurePrefix string)
}

// WrapFieldValidationError converts err, raised when validating field fieldName, into a validation error.
func WrapFieldValidationError(fieldName string, mapStructure, prefix *string, err error) IValidationError {
	vErr := toValidationError(err)
	if vErr == nil {
		return nil
	}
	vErr.RecordField(fieldName, mapStructure, prefix)
	return vErr
}

// WrapValidationError converts err, raised when validating a configuration loaded from variables starting with prefix, into a validation error.
func WrapValidationError(prefix *string, err error) IValidationError {
	vErr := toValidationError(err)
	if vErr == nil {
		return nil
	}
	if !value.IsEmpty(prefix) {
		vErr.RecordPrefix(*prefix)
	}
	return vErr
}

type validationError struct {
	fields    []string
	keys      []string
	keyPrefix string
	reason    string
}

func (v *validationError) RecordField(fieldName string, mapStructureFieldName *string, mapStructurePrefix *string) {
	v.fields = slices.Insert(v.fields, 0, strings.TrimSpace(fieldName))
	if mapStructureFieldName != nil {
		v.keys = slices.Insert(v.keys, 0, strings.TrimSpace(*mapStructureFieldName))
	}
	if mapStructurePrefix != nil {
		v.RecordPrefix(*mapStructurePrefix)
	}
}

func (v *validationError) RecordPrefix(mapStructurePrefix string) {
	v.keyPrefix = strings.TrimSpace(mapStructurePrefix)
}

func (v *validationError) GetMapStructurePath() string {
	if len(v.keys) == 0 {
		return ""
	}
	parts := v.keys
	if v.keyPrefix != "" {
		parts = append([]string{v.keyPrefix}, parts...)
	}
	path := strings.Join(parts, EnvVarSeparator)
	return strings.ToUpper(strings.ReplaceAll(path, "-", EnvVarSeparator))
}

func (v *validationError) GetTreePath() string {
	return strings.Join(v.fields, "->")
}

func (v *validationError) GetReason() string {
	return v.reason
}

func (v *validationError) Unwrap() error {
	return commonerrors.ErrInvalid
}

func (v *validationError) Error() string {
	var b strings.Builder
	b.WriteString("structure failed validation:")
	if tree := v.GetTreePath(); tree != "" {
		_, _ = fmt.Fprintf(&b, " (%v)", tree)
	}
	if path := v.GetMapStructurePath(); path != "" {
		_, _ = fmt.Fprintf(&b, " [%v]", path)
	}
	if v.reason != "" {
		_, _ = fmt.Fprintf(&b, " %v", v.reason)
	}
	return commonerrors.New(v.Unwrap(), b.String()).Error()
}

func (v *validationError) String() string {
	return v.Error()
}

func toValidationError(err error) *validationError {
	if err == nil {
		return nil
	}
	var vErr *validationError
	if errors.As(err, &vErr) {
		return vErr
	}
	var ozzoErr validation.Error
	if errors.As(err, &ozzoErr) {
		return &validationError{reason: ozzoErr.Message()}
	}
	var ozzoErrs validation.Errors
	if errors.As(err, &ozzoErrs) && len(ozzoErrs) > 0 {
		// Only the first invalid key in alphabetical order is reported.
		key := slices.Sorted(maps.Keys(ozzoErrs))[0]
		vErr = toValidationError(ozzoErrs[key])
		if vErr == nil {
			vErr = &validationError{reason: ozzoErrs.Error()}
		}
		vErr.RecordField(key, &key, nil)
		return vErr
	}
	return &validationError{reason: err.Error()}
}
