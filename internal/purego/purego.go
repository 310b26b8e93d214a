// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

//go:build linux && (amd64 || arm64)

// Package purego wraps the purego entry points used by the version probe so
// every dynamic-loader interaction can be traced when LIBSECCOMP_PUREGO_DEBUG
// is set.
package purego

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/ebitengine/purego"
)

// EnvDebug names the environment variable enabling the trace. Its value is
// either a file path or "1"/"stderr" to trace on standard error.
const EnvDebug = "LIBSECCOMP_PUREGO_DEBUG"

const (
	RTLD_NOW   = purego.RTLD_NOW
	RTLD_LOCAL = purego.RTLD_LOCAL
)

func Dlopen(path string, flags int) (uintptr, error) {
	DebugLogSlow("Dlopen(%q, 0x%x)", path, flags)
	handle, err := purego.Dlopen(path, flags)
	DebugLogSlow("Dlopen(%q, 0x%x) = 0x%x, %v", path, flags, handle, err)
	return handle, err
}

func Dlsym(handle uintptr, name string) (uintptr, error) {
	DebugLogSlow("Dlsym(0x%x, %q)", handle, name)
	ptr, err := purego.Dlsym(handle, name)
	DebugLogSlow("Dlsym(0x%x, %q) = 0x%x, %v", handle, name, ptr, err)
	return ptr, err
}

func Dlclose(handle uintptr) error {
	DebugLogSlow("Dlclose(0x%x)", handle)
	err := purego.Dlclose(handle)
	DebugLogSlow("Dlclose(0x%x) = %v", handle, err)
	return err
}

func SyscallN(fn uintptr, args ...uintptr) (uintptr, uintptr, uintptr) {
	var argsStr string
	for _, arg := range args {
		argsStr += fmt.Sprintf(", 0x%x", arg)
	}

	DebugLogSlow("SyscallN(0x%x%s)", fn, argsStr)
	ret, f, e := purego.SyscallN(fn, args...)
	DebugLogSlow("SyscallN(0x%x%s) = 0x%x, 0x%x, 0x%x", fn, argsStr, ret, f, e)
	return ret, f, e
}

var (
	once  sync.Once
	file  *os.File
	start time.Time
)

func DebugLogSlow(format string, args ...any) {
	once.Do(func() {
		start = time.Now()
		switch target := os.Getenv(EnvDebug); target {
		case "", "0", "false":
			return
		case "1", "true", "stderr":
			file = os.Stderr
		default:
			var err error
			if file, err = os.Create(target); err != nil {
				fmt.Fprintf(os.Stderr, "failed to create debug log file %q: %v\n", target, err)
				file = os.Stderr
			}
		}
	})

	if file == nil {
		return
	}

	if !strings.HasSuffix(format, "\n") {
		format += "\n"
	}
	_, _ = fmt.Fprintf(file, "[+%5dms] ", time.Since(start).Milliseconds())
	_, _ = fmt.Fprintf(file, format, args...)
	// Try to ensure this isn't in OS I/O buffer if we panic...
	_ = file.Sync()
}
