// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Build when the target OS or architecture cannot run the purego probe
//go:build !linux || (!amd64 && !arm64)

package support

import (
	"runtime"

	"github.com/DataDog/go-seccomplink/linkerrors"
)

func init() {
	probeSupportErrors = append(probeSupportErrors, linkerrors.UnsupportedOSArchError{OS: runtime.GOOS, Arch: runtime.GOARCH})
}
