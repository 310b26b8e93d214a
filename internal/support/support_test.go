// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package support

import (
	"errors"
	"runtime"
	"testing"

	"github.com/DataDog/go-seccomplink/linkerrors"
	"github.com/stretchr/testify/require"
)

func TestProbeSupportErrors(t *testing.T) {
	supported := runtime.GOOS == "linux" && (runtime.GOARCH == "amd64" || runtime.GOARCH == "arm64")
	if supported {
		require.Empty(t, ProbeSupportErrors())
		return
	}

	require.Len(t, ProbeSupportErrors(), 1)
	var archErr linkerrors.UnsupportedOSArchError
	require.True(t, errors.As(ProbeSupportErrors()[0], &archErr))
	require.Equal(t, runtime.GOOS, archErr.OS)
	require.Equal(t, runtime.GOARCH, archErr.Arch)
}

func TestKernelSupportNeverPanics(t *testing.T) {
	err := KernelSupport()
	if err != nil {
		var kernelErr linkerrors.UnsupportedKernelError
		require.True(t, errors.As(err, &kernelErr))
	}
}
