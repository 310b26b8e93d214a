// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package seccomplink

import (
	"fmt"

	"github.com/DataDog/go-seccomplink/internal/config"
	"github.com/DataDog/go-seccomplink/linkerrors"
)

// LinkMode is how the consuming build binds libseccomp.
type LinkMode int

const (
	// LinkStatic binds the library at build time.
	LinkStatic LinkMode = iota
	// LinkDynamic defers binding to program load time.
	LinkDynamic
)

// String returns the token used in link-lib directives.
func (m LinkMode) String() string {
	switch m {
	case LinkStatic:
		return "static"
	case LinkDynamic:
		return "dylib"
	default:
		return fmt.Sprintf("LinkMode(%d)", int(m))
	}
}

// MarshalText encodes the mode as its link type token.
func (m LinkMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// ParseLinkMode maps a link type token to a LinkMode. Tokens are matched
// exactly, case included. "dylib" is accepted along with an Info directive
// since it is already the default. "framework" is rejected with
// linkerrors.ErrFrameworkLinkType and any other token with
// linkerrors.ErrUnknownLinkType.
func ParseLinkMode(token string) (LinkMode, []Directive, error) {
	switch token {
	case "static":
		return LinkStatic, nil, nil
	case "dylib":
		return LinkDynamic, []Directive{{
			Kind:  Info,
			Value: fmt.Sprintf("dylib link type specified in env var '%s', dylib is the default", config.EnvLinkType),
		}}, nil
	case "framework":
		return 0, nil, linkerrors.ErrFrameworkLinkType
	default:
		return 0, nil, linkerrors.ErrUnknownLinkType
	}
}
