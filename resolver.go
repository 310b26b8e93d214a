// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package seccomplink

import (
	"context"

	"github.com/DataDog/go-seccomplink/internal/config"
	"github.com/DataDog/go-seccomplink/internal/lib"
	"github.com/DataDog/go-seccomplink/internal/log"
	"github.com/DataDog/go-seccomplink/internal/pkgquery"
	"github.com/DataDog/go-seccomplink/linkerrors"
)

// LibraryName is the name libseccomp is linked under.
const LibraryName = lib.Name

// DefaultPackage is the package queried when neither the Resolver nor its
// Lister name one.
const DefaultPackage = "libseccomp2"

// PackageLister lists the files owned by an installed package.
type PackageLister interface {
	Name() string
	ListFiles(ctx context.Context, pkg string) ([]string, error)
}

// Location is where libseccomp was found and how it is linked. A nil Mode
// leaves the choice to the toolchain default.
type Location struct {
	Path string    `json:"path"`
	Mode *LinkMode `json:"mode,omitempty"`
}

// Resolution is the outcome of a Resolver run.
type Resolution struct {
	// Directives in emission order.
	Directives []Directive `json:"directives"`
	// Location is nil when the library could not be located.
	Location *Location `json:"location,omitempty"`
	// Version is set when the version probe ran and succeeded.
	Version *VersionRecord `json:"version,omitempty"`
}

func (r *Resolution) emit(directives ...Directive) {
	for _, d := range directives {
		switch d.Kind {
		case Warning:
			log.Warn("%s", d.Value)
		case Info:
			log.Info("%s", d.Value)
		default:
			log.Debug("%s", d)
		}
	}
	r.Directives = append(r.Directives, directives...)
}

// Warnings returns the values of every Warning directive.
func (r *Resolution) Warnings() []string {
	var warnings []string
	for _, d := range r.Directives {
		if d.Kind == Warning {
			warnings = append(warnings, d.Value)
		}
	}
	return warnings
}

// Resolver decides where libseccomp lives and how it is linked.
//
// An explicit LibPath always wins. Without it the package database is
// queried through Lister, and a located shared object is linked dynamically
// and handed to Probe.
type Resolver struct {
	// LibPath is the LIBSECCOMP_LIB_PATH override, nil when unset.
	LibPath *string
	// LinkType is the LIBSECCOMP_LINK_TYPE override, nil when unset.
	LinkType *string

	// Lister is the package database used when LibPath is unset. A nil
	// Lister makes discovery fail with a warning.
	Lister PackageLister
	// Package overrides the package handed to Lister.
	Package string
	// Probe reads the version of a discovered shared object. Nil disables
	// the version check.
	Probe VersionProbe
	// ConfigFile is the file LibPath and LinkType were loaded from, if any.
	// A RerunIfChanged directive names it.
	ConfigFile string
}

// Resolve runs the resolution. The only error it returns is a
// *linkerrors.ConfigError; discovery and verification failures end up as
// Warning directives.
func (r *Resolver) Resolve(ctx context.Context) (*Resolution, error) {
	res := &Resolution{}
	res.emit(
		Directive{Kind: RerunIfEnvChanged, Value: config.EnvLibPath},
		Directive{Kind: RerunIfEnvChanged, Value: config.EnvLinkType},
	)
	if r.ConfigFile != "" {
		res.emit(Directive{Kind: RerunIfChanged, Value: r.ConfigFile})
	}

	var mode *LinkMode
	if r.LinkType != nil {
		m, diagnostics, err := ParseLinkMode(*r.LinkType)
		if err != nil {
			return nil, &linkerrors.ConfigError{Var: config.EnvLinkType, Value: *r.LinkType, Err: err}
		}
		mode = &m
		res.emit(diagnostics...)
	}

	if r.LibPath != nil {
		res.Location = &Location{Path: *r.LibPath, Mode: mode}
		res.emit(
			Directive{Kind: LinkSearch, Value: *r.LibPath},
			Directive{Kind: LinkLib, Value: LibraryName, Mode: mode},
		)
		return res, nil
	}

	path, err := pkgquery.FindSharedObject(ctx, r.Lister, r.packageName(), lib.SharedObject)
	if err != nil {
		res.emit(
			Directive{Kind: Warning, Value: "unable to find libseccomp: " + err.Error()},
			Directive{Kind: LinkLib, Value: LibraryName, Mode: mode},
		)
		return res, nil
	}

	// Package-installed libraries are always linked dynamically.
	if mode != nil && *mode != LinkDynamic {
		res.emit(Directive{Kind: Warning, Value: "link type '" + mode.String() + "' from env var '" + config.EnvLinkType + "' ignored, packaged libseccomp is linked as dylib"})
	}
	dynamic := LinkDynamic
	mode = &dynamic
	res.Location = &Location{Path: path, Mode: mode}
	res.emit(
		Directive{Kind: LinkSearch, Value: path},
		Directive{Kind: LinkLib, Value: LibraryName, Mode: mode},
	)

	if r.Probe != nil {
		version, err := r.Probe.Probe(path)
		if err != nil {
			res.emit(Directive{Kind: Warning, Value: err.Error()})
			return res, nil
		}
		res.Version = &version
		res.emit(Directive{Kind: Info, Value: "SCVER: " + version.String()})
	}

	return res, nil
}

func (r *Resolver) packageName() string {
	if r.Package != "" {
		return r.Package
	}
	if p, ok := r.Lister.(interface{ Package() string }); ok {
		return p.Package()
	}
	return DefaultPackage
}
