/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package commonerrors defines the sentinel errors returned across the module and helpers to wrap them.
package commonerrors

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrNoLogger       = errors.New("missing logger")
	ErrNoLoggerSource = errors.New("missing logger source")
	ErrNoLogSource    = errors.New("missing log source")
	ErrUndefined      = errors.New("undefined")
	ErrTimeout        = errors.New("timeout")
	ErrNotFound       = errors.New("not found")
	ErrUnsupported    = errors.New("unsupported")
	ErrUnknown        = errors.New("unknown")
	ErrInvalid        = errors.New("invalid")
	ErrCondition      = errors.New("failed condition")
	ErrOutOfRange     = errors.New("out of range")
	ErrUnexpected     = errors.New("unexpected error")
	ErrMarshalling    = errors.New("unserialisable")
	ErrCancelled      = errors.New("cancelled")
	ErrEOF            = errors.New("end of file")
)

var commonErrors = []error{
	ErrNotImplemented,
	ErrNoLogger,
	ErrNoLoggerSource,
	ErrNoLogSource,
	ErrUndefined,
	ErrTimeout,
	ErrNotFound,
	ErrUnsupported,
	ErrUnknown,
	ErrInvalid,
	ErrCondition,
	ErrOutOfRange,
	ErrUnexpected,
	ErrMarshalling,
	ErrCancelled,
	ErrEOF,
}

// Any determines whether the target error is of the same type as any of the errors `err`
func Any(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return true
		}
	}
	return false
}

// None determines whether the target error is of none of the types of the errors `err`
func None(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return false
		}
	}
	return true
}

// CorrespondTo determines whether a `target` error corresponds to a specific error described by `description`
// It will check whether the error contains the string in its description. It is not case-sensitive.
func CorrespondTo(target error, description ...string) bool {
	if target == nil {
		return false
	}
	desc := strings.ToLower(target.Error())
	for i := range description {
		if strings.Contains(desc, strings.ToLower(description[i])) {
			return true
		}
	}
	return false
}

// IsCommonError returns whether an error is a commonerror
func IsCommonError(target error) bool {
	return Any(target, commonErrors...)
}

// New creates a new error of type `targetErr` with the message `msg`.
func New(targetErr error, msg string) error {
	if targetErr == nil {
		return errors.New(msg)
	}
	if strings.TrimSpace(msg) == "" {
		return targetErr
	}
	return fmt.Errorf("%w: %v", targetErr, msg)
}

// Newf is similar to New but allows formatting of messages.
func Newf(targetErr error, format string, args ...any) error {
	return New(targetErr, fmt.Sprintf(format, args...))
}

// WrapError wraps an error `originalErr` into a commonerror `targetErr` with additional context `msg`.
// If originalErr is already of type targetErr, it is returned with the message added.
func WrapError(targetErr, originalErr error, msg string) error {
	if originalErr == nil {
		return New(targetErr, msg)
	}
	if targetErr == nil || Any(originalErr, targetErr) {
		if strings.TrimSpace(msg) == "" {
			return originalErr
		}
		return fmt.Errorf("%v: %w", msg, originalErr)
	}
	if strings.TrimSpace(msg) == "" {
		return fmt.Errorf("%w: %w", targetErr, originalErr)
	}
	return fmt.Errorf("%w: %v: %w", targetErr, msg, originalErr)
}

// WrapErrorf is similar to WrapError but allows formatting of messages.
func WrapErrorf(targetErr, originalErr error, format string, args ...any) error {
	return WrapError(targetErr, originalErr, fmt.Sprintf(format, args...))
}

// UndefinedVariable returns an undefined error for a variable `variableName`.
func UndefinedVariable(variableName string) error {
	return Newf(ErrUndefined, "undefined variable '%v'", variableName)
}

// UndefinedParameter returns an undefined error for a parameter described by `description`.
func UndefinedParameter(description string) error {
	return Newf(ErrUndefined, "undefined parameter: %v", description)
}

// Join returns an error that wraps the given errors. Any nil error values are discarded.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Ignore returns nil if `target` is of any of the types of `ignore`.
func Ignore(target error, ignore ...error) error {
	if Any(target, ignore...) {
		return nil
	}
	return target
}

// ConvertContextError converts a context error into a commonerror.
func ConvertContextError(err error) error {
	if err == nil {
		return nil
	}
	if Any(err, ErrTimeout, ErrCancelled) {
		return err
	}
	if Any(err, context.DeadlineExceeded) {
		return WrapError(ErrTimeout, err, "")
	}
	if Any(err, context.Canceled) {
		return WrapError(ErrCancelled, err, "")
	}
	return err
}

// ErrFromContext returns the commonerror corresponding to the state of the context if any.
func ErrFromContext(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	return ConvertContextError(ctx.Err())
}
