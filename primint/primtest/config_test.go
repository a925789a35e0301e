/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package primtest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ARM-software/just-prim-int/commonerrors"
	"github.com/ARM-software/just-prim-int/commonerrors/errortest"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		cfg         *Config
		expectedErr error
	}{
		{
			name:        "missing configuration",
			cfg:         nil,
			expectedErr: commonerrors.ErrUndefined,
		},
		{
			name:        "missing package",
			cfg:         &Config{},
			expectedErr: commonerrors.ErrInvalid,
		},
		{
			name:        "empty build flag",
			cfg:         &Config{Package: DefaultPackage, BuildFlags: []string{"-tags=integration", ""}},
			expectedErr: commonerrors.ErrInvalid,
		},
		{
			name: "default",
			cfg:  DefaultConfig(),
		},
		{
			name: "with build flags",
			cfg:  &Config{Package: DefaultPackage, BuildFlags: []string{"-tags=integration"}},
		},
	}
	for i := range tests {
		test := tests[i]
		t.Run(test.name, func(t *testing.T) {
			err := test.cfg.Validate()
			if test.expectedErr == nil {
				assert.NoError(t, err)
			} else {
				errortest.AssertError(t, err, test.expectedErr)
			}
		})
	}
}
