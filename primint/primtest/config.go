/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package primtest

import (
	"github.com/go-logr/logr"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/just-prim-int/commonerrors"
	"github.com/ARM-software/just-prim-int/logs"
)

// DefaultPackage is the import path of the package defining the primitive integer constraints.
const DefaultPackage = "github.com/ARM-software/just-prim-int/primint"

// Config describes which package to load and how.
type Config struct {
	// Package is the import path of the package to inspect.
	Package string
	// Dir is the directory in which the go tool is run. Defaults to the current directory.
	Dir string
	// BuildFlags are passed to the go tool e.g. `-tags=...`.
	BuildFlags []string
	Logger     logr.Logger
}

// DefaultConfig returns a configuration inspecting DefaultPackage.
func DefaultConfig() *Config {
	return &Config{
		Package: DefaultPackage,
		Logger:  logs.NewNoopLogger(),
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return commonerrors.WrapError(commonerrors.ErrUndefined, nil, "missing configuration")
	}
	err := validation.ValidateStruct(c,
		validation.Field(&c.Package, validation.Required),
		validation.Field(&c.BuildFlags, validation.Each(validation.Required)),
	)
	if err != nil {
		return commonerrors.WrapError(commonerrors.ErrInvalid, err, "invalid configuration")
	}
	return nil
}
