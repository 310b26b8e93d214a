// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Package lib describes the native libseccomp artifact the resolver looks for.
package lib

import (
	"debug/elf"
	"fmt"
	"runtime"
)

const (
	// Name is the library name handed to the linker (-lseccomp).
	Name = "seccomp"
	// SharedObject is the major-version-qualified shared object file name.
	SharedObject = "libseccomp.so.2"
	// VersionSymbol is the exported entry point returning a
	// `const struct scmp_version *`.
	VersionSymbol = "seccomp_version"
)

var elfMachines = map[string]elf.Machine{
	"amd64":   elf.EM_X86_64,
	"arm64":   elf.EM_AARCH64,
	"386":     elf.EM_386,
	"arm":     elf.EM_ARM,
	"ppc64le": elf.EM_PPC64,
	"riscv64": elf.EM_RISCV,
	"s390x":   elf.EM_S390,
}

// CheckELF makes sure path is a shared object built for the running
// architecture, so that it can be handed to dlopen without surprises.
func CheckELF(path string) error {
	file, err := elf.Open(path)
	if err != nil {
		return fmt.Errorf("not an ELF file: %w", err)
	}
	defer file.Close()

	if file.Type != elf.ET_DYN {
		return fmt.Errorf("is not a shared library (ELF type %s)", file.Type)
	}

	if expected, ok := elfMachines[runtime.GOARCH]; ok && file.Machine != expected {
		return fmt.Errorf("wrong architecture: %s, expected %s", file.Machine, expected)
	}

	return nil
}
