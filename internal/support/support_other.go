// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

//go:build !linux

package support

import (
	"fmt"
	"runtime"

	"github.com/DataDog/go-seccomplink/linkerrors"
)

func kernelSupport() error {
	return linkerrors.UnsupportedKernelError{Err: fmt.Errorf("seccomp does not exist on %s", runtime.GOOS)}
}
