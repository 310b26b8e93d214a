// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Build when the target OS or architecture are not supported
//go:build !linux || (!amd64 && !arm64)

package bindings

import (
	"runtime"

	"github.com/DataDog/go-seccomplink/linkerrors"
)

type SeccompLib struct{}

func OpenLib(string) (*SeccompLib, error) {
	return nil, linkerrors.UnsupportedOSArchError{OS: runtime.GOOS, Arch: runtime.GOARCH}
}

func (*SeccompLib) Version() (ScmpVersion, error) {
	return ScmpVersion{}, linkerrors.UnsupportedOSArchError{OS: runtime.GOOS, Arch: runtime.GOARCH}
}

func (*SeccompLib) Close() error {
	return nil
}
