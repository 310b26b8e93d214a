// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package linkerrors

import (
	"errors"
	"fmt"
)

// Link type parsing errors
var (
	ErrFrameworkLinkType = errors.New("seccomp is a Linux specific technology, the framework link type does not apply")
	ErrUnknownLinkType   = errors.New("unknown link type")
)

// Discovery errors
var (
	ErrSharedObjectNotFound = errors.New("shared object not listed by the package")
	ErrInvalidOutput        = errors.New("package query output is not valid UTF-8")
	ErrNoPackageManager     = errors.New("no supported package manager found")
)

// ConfigError is returned when an explicit configuration input cannot be
// used. It always aborts the resolution.
type ConfigError struct {
	// Var is the name of the configuration input, e.g. LIBSECCOMP_LINK_TYPE.
	Var   string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid value %q for %s: %v", e.Value, e.Var, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// DiscoveryError is returned when the package database could not tell where
// the library lives. Callers are expected to downgrade it to a warning.
type DiscoveryError struct {
	Manager string
	Package string
	Err     error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("%s: package %s: %v", e.Manager, e.Package, e.Err)
}

func (e *DiscoveryError) Unwrap() error {
	return e.Err
}

// CommandError reports a package query command that could not be started or
// exited with a non-zero status.
type CommandError struct {
	Command  string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *CommandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("error running %s: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("error running %s (exit status %d): %s", e.Command, e.ExitCode, e.Stderr)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// VerificationError is returned when the located shared object could not be
// loaded or did not expose a usable version entry point.
type VerificationError struct {
	Path string
	Err  error
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("cannot read the libseccomp version from %s: %v", e.Path, e.Err)
}

func (e *VerificationError) Unwrap() error {
	return e.Err
}

// UnsupportedOSArchError is returned when the version probe cannot run on the
// current target.
type UnsupportedOSArchError struct {
	OS   string
	Arch string
}

func (e UnsupportedOSArchError) Error() string {
	return fmt.Sprintf("unsupported OS/Arch: %s/%s", e.OS, e.Arch)
}

// UnsupportedKernelError is returned when the running kernel does not offer
// seccomp filtering.
type UnsupportedKernelError struct {
	Err error
}

func (e UnsupportedKernelError) Error() string {
	return fmt.Sprintf("kernel does not support seccomp filters: %v", e.Err)
}

func (e UnsupportedKernelError) Unwrap() error {
	return e.Err
}
