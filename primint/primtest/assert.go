/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package primtest

import (
	"fmt"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertAccepts asserts that `typ` satisfies the constraint called `constraint`.
func AssertAccepts(t *testing.T, inspector *Inspector, constraint string, typ types.Type) bool {
	t.Helper()
	ok, err := inspector.Satisfies(typ, constraint)
	if !assert.NoError(t, err) {
		return false
	}
	if ok {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("%v does not satisfy %v", typ, constraint))
}

// AssertRejects asserts that `typ` does not satisfy the constraint called `constraint`.
func AssertRejects(t *testing.T, inspector *Inspector, constraint string, typ types.Type) bool {
	t.Helper()
	ok, err := inspector.Satisfies(typ, constraint)
	if !assert.NoError(t, err) {
		return false
	}
	if !ok {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("%v unexpectedly satisfies %v", typ, constraint))
}

// NewDefinedType returns a type defined as `type <name> <underlying>` in a throwaway package.
func NewDefinedType(name string, underlying types.Type) types.Type {
	pkg := types.NewPackage("example.com/primtest/defined", "defined")
	return types.NewNamed(types.NewTypeName(0, pkg, name, nil), underlying, nil)
}
