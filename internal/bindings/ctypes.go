// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package bindings

import (
	"fmt"
	"structs"
	"unsafe"
)

// ScmpVersion mirrors `struct scmp_version` from seccomp.h:
//
//	struct scmp_version {
//		unsigned int major;
//		unsigned int minor;
//		unsigned int micro;
//	};
type ScmpVersion struct {
	_     structs.HostLayout
	Major uint32
	Minor uint32
	Micro uint32
}

func (v ScmpVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Micro)
}

// castVersion copies the record pointed to by ptr. A zero ptr yields false.
func castVersion(ptr uintptr) (ScmpVersion, bool) {
	// We take the address and then dereference it to trick go vet from creating a possible misuse of unsafe.Pointer
	p := *(*unsafe.Pointer)(unsafe.Pointer(&ptr))
	if p == nil {
		return ScmpVersion{}, false
	}
	src := (*ScmpVersion)(p)
	return ScmpVersion{Major: src.Major, Minor: src.Minor, Micro: src.Micro}, true
}
