/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package commonerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAny(t *testing.T) {
	assert.True(t, Any(ErrUnsatisfied, ErrInvalid, ErrUnsatisfied, ErrUnknown))
	assert.False(t, Any(ErrUnsatisfied, ErrInvalid, ErrUnknown))
	assert.True(t, Any(fmt.Errorf("an error %w", ErrUnsatisfied), ErrInvalid, ErrUnsatisfied, ErrUnknown))
	assert.False(t, Any(fmt.Errorf("an error %w", ErrUnsatisfied), ErrInvalid, ErrUnknown))
}

func TestNone(t *testing.T) {
	assert.False(t, None(ErrNotFound, ErrInvalid, ErrNotFound, ErrUnknown))
	assert.True(t, None(ErrNotFound, ErrInvalid, ErrUnknown))
	assert.False(t, None(fmt.Errorf("an error %w", ErrNotFound), ErrInvalid, ErrNotFound, ErrUnknown))
	assert.True(t, None(fmt.Errorf("an error %w", ErrNotFound), ErrInvalid, ErrUnknown))
}

func TestWrapError(t *testing.T) {
	cause := errors.New("float64 does not satisfy IInteger")
	tests := []struct {
		name     string
		target   error
		cause    error
		msg      string
		expected string
	}{
		{
			name:     "target only",
			target:   ErrNotFound,
			expected: "not found",
		},
		{
			name:     "message only",
			target:   ErrNotFound,
			msg:      "missing constraint",
			expected: "not found: missing constraint",
		},
		{
			name:     "cause only",
			target:   ErrUnsatisfied,
			cause:    cause,
			expected: "unsatisfied constraint: float64 does not satisfy IInteger",
		},
		{
			name:     "cause and message",
			target:   ErrUnsatisfied,
			cause:    cause,
			msg:      "snippet",
			expected: "unsatisfied constraint: snippet: float64 does not satisfy IInteger",
		},
		{
			name:     "no target",
			msg:      "something",
			expected: "unknown: something",
		},
	}
	for i := range tests {
		test := tests[i]
		t.Run(test.name, func(t *testing.T) {
			err := WrapError(test.target, test.cause, test.msg)
			assert.EqualError(t, err, test.expected)
			if test.target != nil {
				assert.True(t, errors.Is(err, test.target))
			}
			if test.cause != nil {
				assert.True(t, errors.Is(err, test.cause))
			}
		})
	}
}

func TestWrapErrorf(t *testing.T) {
	err := WrapErrorf(ErrNotFound, nil, "constraint %q", "IFloat")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.EqualError(t, err, `not found: constraint "IFloat"`)
}
