/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package primint

import "unsafe"

const bitsPerByte = 8

const (
	// MinSize is the size in bytes of the narrowest primitive integer (8-bit integers).
	MinSize = int(min(
		unsafe.Sizeof(uint8(0)), unsafe.Sizeof(uint16(0)), unsafe.Sizeof(uint32(0)),
		unsafe.Sizeof(uint64(0)), unsafe.Sizeof(Uint128{}), unsafe.Sizeof(uint(0)),
		unsafe.Sizeof(int8(0)), unsafe.Sizeof(int16(0)), unsafe.Sizeof(int32(0)),
		unsafe.Sizeof(int64(0)), unsafe.Sizeof(Int128{}), unsafe.Sizeof(int(0)),
	))
	// MaxSize is the size in bytes of the widest primitive integer (128-bit integers).
	MaxSize = int(max(
		unsafe.Sizeof(uint8(0)), unsafe.Sizeof(uint16(0)), unsafe.Sizeof(uint32(0)),
		unsafe.Sizeof(uint64(0)), unsafe.Sizeof(Uint128{}), unsafe.Sizeof(uint(0)),
		unsafe.Sizeof(int8(0)), unsafe.Sizeof(int16(0)), unsafe.Sizeof(int32(0)),
		unsafe.Sizeof(int64(0)), unsafe.Sizeof(Int128{}), unsafe.Sizeof(int(0)),
	))
)

// SizeOf returns the size in bytes of the integer type T.
// The result is always within [MinSize, MaxSize].
func SizeOf[T IInteger]() int {
	var v T
	return int(unsafe.Sizeof(v))
}

// BitSizeOf returns the size in bits of the integer type T.
func BitSizeOf[T IInteger]() int {
	return SizeOf[T]() * bitsPerByte
}
