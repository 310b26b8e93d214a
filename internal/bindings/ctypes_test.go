// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package bindings

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestScmpVersionLayout(t *testing.T) {
	var v ScmpVersion
	require.EqualValues(t, 12, unsafe.Sizeof(v))
	require.EqualValues(t, 0, unsafe.Offsetof(v.Major))
	require.EqualValues(t, 4, unsafe.Offsetof(v.Minor))
	require.EqualValues(t, 8, unsafe.Offsetof(v.Micro))
}

func TestCastVersion(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		_, ok := castVersion(0)
		require.False(t, ok)
	})

	t.Run("copy", func(t *testing.T) {
		native := [3]uint32{2, 5, 4}
		v, ok := castVersion(uintptr(unsafe.Pointer(&native)))
		require.True(t, ok)
		require.Equal(t, "2.5.4", v.String())

		native[0] = 9
		require.EqualValues(t, 2, v.Major)
	})
}
