// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package seccomplink

import (
	"errors"
	"fmt"

	"github.com/DataDog/go-seccomplink/internal/bindings"
	"github.com/DataDog/go-seccomplink/internal/lib"
	"github.com/DataDog/go-seccomplink/internal/log"
	"github.com/DataDog/go-seccomplink/internal/support"
	"github.com/DataDog/go-seccomplink/linkerrors"
)

// VersionRecord is the version libseccomp reports about itself.
type VersionRecord struct {
	Major uint32 `json:"major"`
	Minor uint32 `json:"minor"`
	Micro uint32 `json:"micro"`
}

func (v VersionRecord) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Micro)
}

// VersionProbe reads the version out of a libseccomp shared object.
type VersionProbe interface {
	Probe(path string) (VersionRecord, error)
}

// DynamicProbe loads the shared object in-process with purego and calls
// seccomp_version(). The library handle is closed before Probe returns.
type DynamicProbe struct {
	// SkipELFCheck disables the ELF header sanity check done before dlopen.
	SkipELFCheck bool
}

// Probe implements VersionProbe. Errors are *linkerrors.VerificationError.
func (p DynamicProbe) Probe(path string) (VersionRecord, error) {
	if errs := support.ProbeSupportErrors(); len(errs) > 0 {
		return VersionRecord{}, &linkerrors.VerificationError{Path: path, Err: errors.Join(errs...)}
	}

	if !p.SkipELFCheck {
		if err := lib.CheckELF(path); err != nil {
			return VersionRecord{}, &linkerrors.VerificationError{Path: path, Err: err}
		}
	}

	seccomp, err := bindings.OpenLib(path)
	if err != nil {
		return VersionRecord{}, &linkerrors.VerificationError{Path: path, Err: err}
	}
	defer func() {
		if err := seccomp.Close(); err != nil {
			log.Debug("closing %s: %v", path, err)
		}
	}()

	version, err := seccomp.Version()
	if err != nil {
		return VersionRecord{}, &linkerrors.VerificationError{Path: path, Err: err}
	}

	return VersionRecord{Major: version.Major, Minor: version.Minor, Micro: version.Micro}, nil
}
