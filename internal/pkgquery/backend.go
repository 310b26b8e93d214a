// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package pkgquery

import (
	"context"
	"fmt"
	"os/exec"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/DataDog/go-seccomplink/linkerrors"
)

// Lister lists the files owned by an installed package, in the order the
// package database reports them.
type Lister interface {
	Name() string
	ListFiles(ctx context.Context, pkg string) ([]string, error)
}

// Backend is a Lister built on a package manager's "list files owned by
// package" command.
type Backend struct {
	name    string
	command string
	args    []string
	// pkg is the package shipping libseccomp.so.2 on this distribution family.
	pkg string
	// path extracts the file path from one output line.
	path func(line string) (string, bool)

	Runner Runner
}

// Name returns the backend name (e.g. "dpkg").
func (b *Backend) Name() string {
	return b.name
}

// Package returns the package providing libseccomp for this backend.
func (b *Backend) Package() string {
	return b.pkg
}

// Command returns the command line used to list the files of pkg.
func (b *Backend) Command(pkg string) []string {
	cmd := make([]string, 0, len(b.args)+2)
	cmd = append(cmd, b.command)
	cmd = append(cmd, b.args...)
	return append(cmd, pkg)
}

// ListFiles runs the package query and returns one path per output line.
func (b *Backend) ListFiles(ctx context.Context, pkg string) ([]string, error) {
	runner := b.Runner
	if runner == nil {
		runner = ExecRunner{}
	}

	cmd := b.Command(pkg)
	out, err := runner.Run(ctx, cmd[0], cmd[1:]...)
	if err != nil {
		return nil, &linkerrors.CommandError{Command: b.command, Err: err}
	}

	if out.ExitCode != 0 {
		return nil, &linkerrors.CommandError{
			Command:  b.command,
			ExitCode: out.ExitCode,
			Stderr:   joinLines(strings.ToValidUTF8(string(out.Stderr), "�")),
		}
	}

	if !utf8.Valid(out.Stdout) {
		return nil, linkerrors.ErrInvalidOutput
	}

	var files []string
	for _, line := range strings.Split(string(out.Stdout), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		if path, ok := b.path(line); ok {
			files = append(files, path)
		}
	}

	return files, nil
}

func wholeLine(line string) (string, bool) {
	return line, true
}

// pacmanPath reduces a `pacman -Ql` line ("libseccomp /usr/lib/libseccomp.so.2")
// to its path.
func pacmanPath(line string) (string, bool) {
	_, path, ok := strings.Cut(line, " ")
	return path, ok && path != ""
}

// NewDpkg returns the Debian backend: `dpkg-query -L libseccomp2`.
func NewDpkg() *Backend {
	return &Backend{name: "dpkg", command: "dpkg-query", args: []string{"-L"}, pkg: "libseccomp2", path: wholeLine}
}

// NewRPM returns the RPM backend: `rpm -ql libseccomp`.
func NewRPM() *Backend {
	return &Backend{name: "rpm", command: "rpm", args: []string{"-ql"}, pkg: "libseccomp", path: wholeLine}
}

// NewPacman returns the Arch Linux backend: `pacman -Ql libseccomp`.
func NewPacman() *Backend {
	return &Backend{name: "pacman", command: "pacman", args: []string{"-Ql"}, pkg: "libseccomp", path: pacmanPath}
}

var backends = map[string]func() *Backend{
	"dpkg":   NewDpkg,
	"rpm":    NewRPM,
	"pacman": NewPacman,
}

// detectionOrder is the order Detect probes backends in.
var detectionOrder = []string{"dpkg", "rpm", "pacman"}

// Names lists the known backend names.
func Names() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the backend registered under name.
func Lookup(name string) (*Backend, error) {
	newBackend, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown package manager %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	return newBackend(), nil
}

// Detect returns the first backend whose command is available in PATH.
func Detect() (*Backend, error) {
	return detect(exec.LookPath)
}

func detect(lookPath func(string) (string, error)) (*Backend, error) {
	for _, name := range detectionOrder {
		backend := backends[name]()
		if _, err := lookPath(backend.command); err == nil {
			return backend, nil
		}
	}
	return nil, linkerrors.ErrNoPackageManager
}

// joinLines folds multi-line stderr into a single line.
func joinLines(s string) string {
	var parts []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}
