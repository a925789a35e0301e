/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package primtest_test

import (
	"context"
	"fmt"

	"github.com/ARM-software/just-prim-int/logs"
	"github.com/ARM-software/just-prim-int/primint/primtest"
)

// Loading with a verbose logger prints the go/packages trace and the computed type sets.
func ExampleLoad() {
	cfg := primtest.DefaultConfig()
	cfg.Logger = logs.NewStdOutLogger(1).WithName("primtest")
	inspector, err := primtest.Load(context.Background(), cfg)
	if err != nil {
		fmt.Println(err)
		return
	}
	members, err := inspector.Members("IInteger")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(members), "members")
}
