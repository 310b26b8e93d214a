// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package seccomplink

import (
	"testing"

	"github.com/DataDog/go-seccomplink/linkerrors"
	"github.com/stretchr/testify/require"
)

func TestParseLinkMode(t *testing.T) {
	t.Run("static", func(t *testing.T) {
		mode, diagnostics, err := ParseLinkMode("static")
		require.NoError(t, err)
		require.Equal(t, LinkStatic, mode)
		require.Empty(t, diagnostics)
		require.Equal(t, "static", mode.String())
	})

	t.Run("dylib", func(t *testing.T) {
		mode, diagnostics, err := ParseLinkMode("dylib")
		require.NoError(t, err)
		require.Equal(t, LinkDynamic, mode)
		require.Equal(t, "dylib", mode.String())
		require.Len(t, diagnostics, 1)
		require.Equal(t, Info, diagnostics[0].Kind)
		require.Contains(t, diagnostics[0].Value, "dylib is the default")
		require.Contains(t, diagnostics[0].Value, "LIBSECCOMP_LINK_TYPE")
	})

	t.Run("framework", func(t *testing.T) {
		// Matching is case-sensitive: only the exact token gets the
		// platform-specific message.
		_, _, err := ParseLinkMode("framework")
		require.ErrorIs(t, err, linkerrors.ErrFrameworkLinkType)
		require.ErrorContains(t, err, "Linux specific")

		_, _, err = ParseLinkMode("Framework")
		require.ErrorIs(t, err, linkerrors.ErrUnknownLinkType)
	})

	t.Run("unknown", func(t *testing.T) {
		for _, token := range []string{"", "STATIC", "dynamic", "static ", "dylib=seccomp", "shared"} {
			_, diagnostics, err := ParseLinkMode(token)
			require.ErrorIs(t, err, linkerrors.ErrUnknownLinkType, token)
			require.EqualError(t, err, "unknown link type")
			require.Empty(t, diagnostics)
		}
	})
}

func TestLinkModeRoundTrip(t *testing.T) {
	for _, token := range []string{"static", "dylib"} {
		mode, _, err := ParseLinkMode(token)
		require.NoError(t, err)
		require.Equal(t, token, mode.String())

		text, err := mode.MarshalText()
		require.NoError(t, err)
		require.Equal(t, token, string(text))
	}

	require.Equal(t, "LinkMode(7)", LinkMode(7).String())
}
