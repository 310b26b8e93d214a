// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Purego only works on linux with amd64 and arm64 here
//go:build linux && (amd64 || arm64)

package bindings

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/DataDog/go-seccomplink/internal/lib"
	"github.com/DataDog/go-seccomplink/internal/purego"
)

// libDl wraps the dlopen handle of the library.
type libDl struct {
	handle uintptr
}

// SeccompLib is the type wrapper for all C calls to libseccomp the probe
// needs. All calls must go though one liners to be type safe since purego
// calls are not.
type SeccompLib struct {
	libDl

	Seccomp_version uintptr `dlsym:"seccomp_version"`
}

// OpenLib dlopens the shared object at path and resolves every symbol tagged
// on SeccompLib. The handle is released before returning an error.
func OpenLib(path string) (*SeccompLib, error) {
	var seccomp SeccompLib
	dl, err := dlOpen(path, &seccomp)
	if err != nil {
		return nil, err
	}
	seccomp.libDl = dl
	return &seccomp, nil
}

// dlOpen opens a handle for the shared library `name` and fills `loader`
// with the symbols named by its `dlsym:<symbol_name>` struct tags. The
// returned libDl owns the handle.
func dlOpen(name string, loader any) (_ libDl, err error) {
	handle, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_LOCAL)
	if err != nil {
		return libDl{}, fmt.Errorf("error opening shared library '%s'. Reason: %w", name, err)
	}

	defer func() {
		if err != nil {
			if closeErr := purego.Dlclose(handle); closeErr != nil {
				err = errors.Join(err, fmt.Errorf("error closing shared library: %w", closeErr))
			}
		}
	}()

	libValue := reflect.ValueOf(loader).Elem()
	libType := reflect.TypeOf(loader).Elem()

	for i := 0; i < libValue.NumField(); i++ {
		fieldType := libType.Field(i)

		symbolName, ok := fieldType.Tag.Lookup("dlsym")
		if !ok {
			continue
		}

		symbol, err := purego.Dlsym(handle, symbolName)
		if err != nil {
			return libDl{}, fmt.Errorf("cannot load symbol '%s' from library '%s'. Reason: %w", symbolName, name, err)
		}

		libValue.Field(i).Set(reflect.ValueOf(symbol))
	}

	return libDl{handle: handle}, nil
}

// syscall is the only way to make C calls with this interface.
// purego implementation limits the number of arguments to 9, it will panic if more are provided
func (dl *libDl) syscall(fn uintptr, args ...uintptr) uintptr {
	ret, _, _ := purego.SyscallN(fn, args...)
	return ret
}

// Close releases the dlopen handle.
func (dl *libDl) Close() error {
	return purego.Dlclose(dl.handle)
}

// Version calls seccomp_version() and copies the record it points to.
func (seccomp *SeccompLib) Version() (version ScmpVersion, err error) {
	err = tryCall(func() error {
		var ok bool
		version, ok = castVersion(seccomp.syscall(seccomp.Seccomp_version))
		if !ok {
			return fmt.Errorf("%s returned NULL", lib.VersionSymbol)
		}
		return nil
	})
	return version, err
}
