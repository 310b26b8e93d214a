// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package seccomplink

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/DataDog/go-seccomplink/internal/lib"
)

// Format selects how a Resolution is rendered.
type Format string

const (
	// FormatText writes one directive per line.
	FormatText Format = "text"
	// FormatCgo writes a shell-quoted CGO_LDFLAGS assignment suitable for
	// `eval`.
	FormatCgo Format = "cgo"
	// FormatGoFile writes a generated Go file carrying #cgo LDFLAGS lines.
	FormatGoFile Format = "gofile"
	// FormatJSON writes the whole Resolution as JSON.
	FormatJSON Format = "json"
)

// Formats lists every supported Format.
var Formats = []Format{FormatText, FormatCgo, FormatGoFile, FormatJSON}

// RenderOptions tunes Render.
type RenderOptions struct {
	// GoPackage is the package clause of FormatGoFile output.
	GoPackage string
	// Generator names the tool in the FormatGoFile header.
	Generator string
}

// Render writes res to w in the given format.
func Render(w io.Writer, res *Resolution, f Format, opts RenderOptions) error {
	switch f {
	case FormatText, "":
		return renderText(w, res)
	case FormatCgo:
		_, err := fmt.Fprintf(w, "CGO_LDFLAGS=%s\n", cgoEnvValue(res.LDFlags()))
		return err
	case FormatGoFile:
		return renderGoFile(w, res, opts)
	case FormatJSON:
		return renderJSON(w, res)
	default:
		return fmt.Errorf("unknown output format %q", f)
	}
}

func renderText(w io.Writer, res *Resolution) error {
	for _, d := range res.Directives {
		if _, err := fmt.Fprintln(w, d.String()); err != nil {
			return err
		}
	}
	return nil
}

// LDFlags translates the link directives into linker flags. A search path
// naming the shared object file itself is reduced to its directory.
func (r *Resolution) LDFlags() []string {
	var (
		dirs []string
		libs []Directive
	)
	for _, d := range r.Directives {
		switch d.Kind {
		case LinkSearch:
			dirs = append(dirs, searchDir(d.Value))
		case LinkLib:
			libs = append(libs, d)
		}
	}

	var flags []string
	for _, dir := range dirs {
		flags = append(flags, "-L"+dir)
	}

	for _, l := range libs {
		switch {
		case l.Mode != nil && *l.Mode == LinkStatic:
			flags = append(flags, "-Wl,-Bstatic", "-l"+l.Value, "-Wl,-Bdynamic")
		case l.Mode != nil && *l.Mode == LinkDynamic:
			for _, dir := range dirs {
				flags = append(flags, "-Wl,-rpath,"+dir)
			}
			flags = append(flags, "-l"+l.Value)
		default:
			flags = append(flags, "-l"+l.Value)
		}
	}

	return flags
}

func searchDir(path string) string {
	if strings.HasSuffix(path, lib.SharedObject) {
		return filepath.Dir(path)
	}
	return path
}

func quoteFlag(flag string) string {
	if strings.ContainsAny(flag, " \t'\"\\") {
		return "'" + strings.ReplaceAll(flag, "'", `'\''`) + "'"
	}
	return flag
}

// cgoEnvValue quotes each flag the way the go command splits CGO_LDFLAGS
// (a field wrapped in single or double quotes, no escapes) and then quotes
// the whole value for a POSIX shell.
func cgoEnvValue(flags []string) string {
	quoted := make([]string, len(flags))
	for i, flag := range flags {
		switch {
		case !strings.ContainsAny(flag, " \t\n\r'\""):
			quoted[i] = flag
		case !strings.Contains(flag, `"`):
			quoted[i] = `"` + flag + `"`
		default:
			quoted[i] = "'" + flag + "'"
		}
	}
	return "'" + strings.ReplaceAll(strings.Join(quoted, " "), "'", `'\''`) + "'"
}

func renderGoFile(w io.Writer, res *Resolution, opts RenderOptions) error {
	pkg := opts.GoPackage
	if pkg == "" {
		pkg = "seccomp"
	}
	generator := opts.Generator
	if generator == "" {
		generator = "seccomp-link"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by %s. DO NOT EDIT.\n\n", generator)
	buf.WriteString("//go:build linux && cgo\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	for _, d := range res.Directives {
		switch d.Kind {
		case Warning, Info, RerunIfChanged:
			fmt.Fprintf(&buf, "// %s: %s\n", d.Kind, singleLine.Replace(d.Value))
		}
	}

	flags := res.LDFlags()
	quoted := make([]string, len(flags))
	for i, flag := range flags {
		quoted[i] = quoteFlag(flag)
	}
	fmt.Fprintf(&buf, "\n// #cgo LDFLAGS: %s\nimport \"C\"\n", strings.Join(quoted, " "))

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("formatting generated file: %w", err)
	}
	_, err = w.Write(src)
	return err
}

func renderJSON(w io.Writer, res *Resolution) error {
	doc := struct {
		*Resolution
		LDFlags []string `json:"ldflags"`
	}{res, res.LDFlags()}

	b, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}
