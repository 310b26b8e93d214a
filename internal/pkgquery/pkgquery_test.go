// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package pkgquery

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/DataDog/go-seccomplink/linkerrors"
	"github.com/stretchr/testify/require"
)

type fakeRunner struct {
	out  Output
	err  error
	name string
	args []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) (Output, error) {
	f.name = name
	f.args = args
	return f.out, f.err
}

const dpkgListing = `/.
/usr
/usr/lib
/usr/lib/x86_64-linux-gnu
/usr/lib/x86_64-linux-gnu/libseccomp.so.2.5.4
/usr/share/doc/libseccomp2
/usr/lib/x86_64-linux-gnu/libseccomp.so.2
`

const dpkgNotInstalled = "dpkg-query: package 'libseccomp2' is not installed\nUse dpkg --contents (= dpkg-deb --contents) to list archive files contents.\n"

func TestBackendListFiles(t *testing.T) {
	t.Run("dpkg", func(t *testing.T) {
		runner := &fakeRunner{out: Output{Stdout: []byte(dpkgListing)}}
		backend := NewDpkg()
		backend.Runner = runner

		files, err := backend.ListFiles(context.Background(), backend.Package())
		require.NoError(t, err)
		require.Equal(t, "dpkg-query", runner.name)
		require.Equal(t, []string{"-L", "libseccomp2"}, runner.args)
		require.Len(t, files, 7)
		require.Equal(t, "/.", files[0])
	})

	t.Run("crlf", func(t *testing.T) {
		backend := NewRPM()
		backend.Runner = &fakeRunner{out: Output{Stdout: []byte("/usr/lib64/libseccomp.so.2\r\n")}}

		files, err := backend.ListFiles(context.Background(), backend.Package())
		require.NoError(t, err)
		require.Equal(t, []string{"/usr/lib64/libseccomp.so.2"}, files)
	})

	t.Run("pacman", func(t *testing.T) {
		backend := NewPacman()
		backend.Runner = &fakeRunner{out: Output{Stdout: []byte("libseccomp /usr/\nlibseccomp /usr/lib/libseccomp.so.2\nbogus\n")}}

		files, err := backend.ListFiles(context.Background(), backend.Package())
		require.NoError(t, err)
		require.Equal(t, []string{"/usr/", "/usr/lib/libseccomp.so.2"}, files)
	})

	t.Run("non-zero-exit", func(t *testing.T) {
		backend := NewDpkg()
		backend.Runner = &fakeRunner{out: Output{
			Stderr:   []byte("dpkg-query: no packages found matching libseccomp2\n"),
			ExitCode: 1,
		}}

		_, err := backend.ListFiles(context.Background(), backend.Package())
		var cmdErr *linkerrors.CommandError
		require.ErrorAs(t, err, &cmdErr)
		require.Equal(t, 1, cmdErr.ExitCode)
		require.ErrorContains(t, err, "dpkg-query: no packages found matching libseccomp2")
	})

	t.Run("multi-line-stderr", func(t *testing.T) {
		backend := NewDpkg()
		backend.Runner = &fakeRunner{out: Output{
			Stderr:   []byte(dpkgNotInstalled),
			ExitCode: 1,
		}}

		_, err := backend.ListFiles(context.Background(), backend.Package())
		var cmdErr *linkerrors.CommandError
		require.ErrorAs(t, err, &cmdErr)
		require.Equal(t, "dpkg-query: package 'libseccomp2' is not installed Use dpkg --contents (= dpkg-deb --contents) to list archive files contents.", cmdErr.Stderr)
		require.NotContains(t, err.Error(), "\n")
	})

	t.Run("start-failure", func(t *testing.T) {
		backend := NewDpkg()
		backend.Runner = &fakeRunner{err: exec.ErrNotFound}

		_, err := backend.ListFiles(context.Background(), backend.Package())
		require.ErrorIs(t, err, exec.ErrNotFound)
	})

	t.Run("invalid-utf8", func(t *testing.T) {
		backend := NewDpkg()
		backend.Runner = &fakeRunner{out: Output{Stdout: []byte{'/', 0xff, 0xfe, '\n'}}}

		_, err := backend.ListFiles(context.Background(), backend.Package())
		require.ErrorIs(t, err, linkerrors.ErrInvalidOutput)
	})
}

type staticLister struct {
	files []string
	err   error
}

func (staticLister) Name() string { return "static" }

func (l staticLister) ListFiles(context.Context, string) ([]string, error) {
	return l.files, l.err
}

func TestFindSharedObject(t *testing.T) {
	ctx := context.Background()

	t.Run("match", func(t *testing.T) {
		path, err := FindSharedObject(ctx, staticLister{files: []string{
			"/usr/lib/x86_64-linux-gnu/libseccomp.so.2.5.4",
			"/usr/lib/x86_64-linux-gnu/libseccomp.so.2",
		}}, "libseccomp2", "libseccomp.so.2")
		require.NoError(t, err)
		require.Equal(t, "/usr/lib/x86_64-linux-gnu/libseccomp.so.2", path)
	})

	t.Run("first-match-wins", func(t *testing.T) {
		path, err := FindSharedObject(ctx, staticLister{files: []string{
			"/a/libseccomp.so.2",
			"/b/libseccomp.so.2",
		}}, "libseccomp2", "libseccomp.so.2")
		require.NoError(t, err)
		require.Equal(t, "/a/libseccomp.so.2", path)
	})

	t.Run("no-match", func(t *testing.T) {
		_, err := FindSharedObject(ctx, staticLister{files: []string{"/usr/share/doc/libseccomp2"}}, "libseccomp2", "libseccomp.so.2")
		var discoveryErr *linkerrors.DiscoveryError
		require.ErrorAs(t, err, &discoveryErr)
		require.ErrorIs(t, err, linkerrors.ErrSharedObjectNotFound)
		require.ErrorContains(t, err, "unable to find libseccomp.so.2")
	})

	t.Run("lister-error", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := FindSharedObject(ctx, staticLister{err: boom}, "libseccomp2", "libseccomp.so.2")
		require.ErrorIs(t, err, boom)
		require.ErrorAs(t, err, new(*linkerrors.DiscoveryError))
	})

	t.Run("nil-lister", func(t *testing.T) {
		_, err := FindSharedObject(ctx, nil, "libseccomp2", "libseccomp.so.2")
		require.ErrorIs(t, err, linkerrors.ErrNoPackageManager)
	})
}

func TestLookupAndDetect(t *testing.T) {
	for _, name := range Names() {
		backend, err := Lookup(name)
		require.NoError(t, err)
		require.Equal(t, name, backend.Name())
	}

	_, err := Lookup("apk")
	require.ErrorContains(t, err, "unknown package manager")

	backend, err := detect(func(cmd string) (string, error) {
		if cmd == "rpm" {
			return "/usr/bin/rpm", nil
		}
		return "", exec.ErrNotFound
	})
	require.NoError(t, err)
	require.Equal(t, "rpm", backend.Name())
	require.Equal(t, []string{"rpm", "-ql", "libseccomp"}, backend.Command(backend.Package()))

	_, err = detect(func(string) (string, error) { return "", exec.ErrNotFound })
	require.ErrorIs(t, err, linkerrors.ErrNoPackageManager)
}
