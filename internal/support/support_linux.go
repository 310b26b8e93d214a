// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

//go:build linux

package support

import (
	"errors"

	"github.com/DataDog/go-seccomplink/linkerrors"
	"golang.org/x/sys/unix"
)

var prctl = unix.Prctl

func kernelSupport() error {
	// CONFIG_SECCOMP
	if err := prctl(unix.PR_GET_SECCOMP, 0, 0, 0, 0); errors.Is(err, unix.EINVAL) {
		return linkerrors.UnsupportedKernelError{Err: err}
	}
	// CONFIG_SECCOMP_FILTER: a NULL filter yields EFAULT when filters exist.
	if err := prctl(unix.PR_SET_SECCOMP, unix.SECCOMP_MODE_FILTER, 0, 0, 0); errors.Is(err, unix.EINVAL) {
		return linkerrors.UnsupportedKernelError{Err: err}
	}
	return nil
}
