// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package bindings

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTryCallPassthrough(t *testing.T) {
	closed := errors.New("handle closed")
	require.Equal(t, closed, tryCall(func() error { return closed }))
	require.NoError(t, tryCall(func() error { return nil }))
}

func TestTryCallPanicValues(t *testing.T) {
	cause := errors.New("bad record")

	err := tryCall(func() error { panic(cause) })
	var panicErr *PanicError
	require.ErrorAs(t, err, &panicErr)
	require.ErrorIs(t, err, cause)

	err = tryCall(func() error { panic(uint32(12)) })
	require.ErrorAs(t, err, &panicErr)
	require.ErrorContains(t, panicErr.Err, "12")
}
