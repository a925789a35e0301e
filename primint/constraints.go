/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package primint

// Terms are deliberately written without `~` so that defined types cannot become members.

// ISignedInteger is satisfied by the signed primitive integers only: int, int8, int16, int32, int64 and Int128.
type ISignedInteger interface {
	int | int8 | int16 | int32 | int64 | Int128
}

// IUnsignedInteger is satisfied by the unsigned primitive integers only: uint, uint8, uint16, uint32, uint64 and Uint128.
type IUnsignedInteger interface {
	uint | uint8 | uint16 | uint32 | uint64 | Uint128
}

// IInteger is satisfied by any signed or unsigned primitive integer.
type IInteger interface {
	ISignedInteger | IUnsignedInteger
}
