/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package primint defines closed type constraints over the primitive integer types.
//
// Unlike golang.org/x/exp/constraints, the constraints of this package only admit the exact
// listed types: a type defined as `type MyInt int` is not an integer as far as this package is concerned.
// The members are the 8, 16, 32, 64 and 128-bit integers plus the pointer-sized int and uint,
// both signed and unsigned.
package primint
