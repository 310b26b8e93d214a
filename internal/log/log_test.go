// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelNamed(t *testing.T) {
	for name, expected := range map[string]Level{
		"trace":   LevelTrace,
		"DEBUG":   LevelDebug,
		" info ":  LevelInfo,
		"warn":    LevelWarning,
		"warning": LevelWarning,
		"error":   LevelError,
		"off":     LevelOff,
		"":        LevelWarning,
		"bogus":   LevelWarning,
	} {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, expected, LevelNamed(name))
		})
	}
}

func TestLevelString(t *testing.T) {
	require.Equal(t, "WARN", LevelWarning.String())
	require.Equal(t, "0x2A", Level(42).String())
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(New(&buf, LevelInfo))

	Debug("hidden %d", 1)
	Warn("visible %d", 2)

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "visible 2")

	buf.Reset()
	SetLevel(LevelOff)
	Error("silenced")
	require.Empty(t, buf.String())
}
