// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package seccomplink

import (
	"fmt"
	"strings"
)

// DirectiveKind classifies what a Directive asks of the build toolchain.
type DirectiveKind int

const (
	// RerunIfEnvChanged asks for the resolution to be redone when the named
	// input changes.
	RerunIfEnvChanged DirectiveKind = iota
	// LinkSearch adds a native library search directory.
	LinkSearch
	// LinkLib links against a library, with an optional mode.
	LinkLib
	// Warning is a non-fatal diagnostic.
	Warning
	// Info is an informational diagnostic.
	Info
	// RerunIfChanged asks for the resolution to be redone when the named
	// file changes.
	RerunIfChanged
)

func (k DirectiveKind) String() string {
	switch k {
	case RerunIfEnvChanged:
		return "rerun-if-env-changed"
	case LinkSearch:
		return "link-search"
	case LinkLib:
		return "link-lib"
	case Warning:
		return "warning"
	case Info:
		return "info"
	case RerunIfChanged:
		return "rerun-if-changed"
	default:
		return fmt.Sprintf("DirectiveKind(%d)", int(k))
	}
}

// MarshalText encodes the kind as its directive name.
func (k DirectiveKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Directive is one instruction to the build toolchain.
type Directive struct {
	Kind  DirectiveKind `json:"kind"`
	Value string        `json:"value"`
	// Mode is only meaningful for LinkLib; nil leaves the choice to the
	// toolchain default.
	Mode *LinkMode `json:"mode,omitempty"`
}

// String renders the directive in the line-oriented text vocabulary, e.g.
// "link-search=native=/opt/lib" or "link-lib=static=seccomp".
func (d Directive) String() string {
	switch d.Kind {
	case LinkSearch:
		return "link-search=native=" + d.Value
	case LinkLib:
		if d.Mode != nil {
			return "link-lib=" + d.Mode.String() + "=" + d.Value
		}
		return "link-lib=" + d.Value
	default:
		return d.Kind.String() + "=" + singleLine.Replace(d.Value)
	}
}

// Diagnostic text must not break the one-directive-per-line stream.
var singleLine = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")
