/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package commonerrors defines the errors returned by the packages of this module.
package commonerrors

import (
	"errors"
	"fmt"
)

var (
	ErrUndefined   = errors.New("undefined")
	ErrInvalid     = errors.New("invalid")
	ErrNotFound    = errors.New("not found")
	ErrUnsupported = errors.New("unsupported")
	ErrUnsatisfied = errors.New("unsatisfied constraint")
	ErrUnknown     = errors.New("unknown")
)

// Any determines whether any of the errors `err` matches the `target` error.
func Any(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return true
		}
	}
	return false
}

// None determines whether none of the errors `err` matches the `target` error.
func None(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return false
		}
	}
	return true
}

// WrapError wraps `cause` under the `target` error type so that errors.Is(result, target) holds.
// If `cause` is nil, only the message is attached to the target.
func WrapError(target, cause error, msg string) error {
	if target == nil {
		target = ErrUnknown
	}
	switch {
	case cause == nil && msg == "":
		return target
	case cause == nil:
		return fmt.Errorf("%w: %v", target, msg)
	case msg == "":
		return fmt.Errorf("%w: %w", target, cause)
	default:
		return fmt.Errorf("%w: %v: %w", target, msg, cause)
	}
}

// WrapErrorf is similar to WrapError but accepts a format specifier for the message.
func WrapErrorf(target, cause error, format string, args ...any) error {
	return WrapError(target, cause, fmt.Sprintf(format, args...))
}
