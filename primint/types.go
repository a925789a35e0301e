/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package primint

import (
	"lukechampine.com/uint128"
	"modernc.org/mathutil"
)

// Int128 is the 128-bit signed integer member of ISignedInteger.
type Int128 = mathutil.Int128

// Uint128 is the 128-bit unsigned integer member of IUnsignedInteger.
type Uint128 = uint128.Uint128
