// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package lib

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSharedObjectName(t *testing.T) {
	require.True(t, strings.HasPrefix(SharedObject, "lib"+Name+".so."))
}

func TestCheckELF(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		err := CheckELF(filepath.Join(t.TempDir(), "libseccomp.so.2"))
		require.Error(t, err)
	})

	t.Run("not-elf", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "libseccomp.so.2")
		require.NoError(t, os.WriteFile(path, []byte("INPUT(-lseccomp)\n"), 0o644))

		err := CheckELF(path)
		require.ErrorContains(t, err, "not an ELF file")
	})
}
