// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	seccomplink "github.com/DataDog/go-seccomplink"
	"github.com/DataDog/go-seccomplink/internal/config"
	"github.com/DataDog/go-seccomplink/internal/log"
	"github.com/DataDog/go-seccomplink/internal/pkgquery"
	"github.com/DataDog/go-seccomplink/internal/support"
)

// Version of the seccomp-link tool.
const Version = "0.1.0"

// Env carries the process collaborators so tests can swap them.
type Env struct {
	LookupEnv func(string) (string, bool)
	Stdout    io.Writer
	Stderr    io.Writer
	// NewLister returns the package lister for a backend name, or the
	// detected one when name is empty.
	NewLister func(name string) (seccomplink.PackageLister, error)
	Probe     seccomplink.VersionProbe
}

// DefaultEnv wires the real process environment.
func DefaultEnv() Env {
	return Env{
		LookupEnv: os.LookupEnv,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		NewLister: newLister,
		Probe:     seccomplink.DynamicProbe{},
	}
}

func newLister(name string) (seccomplink.PackageLister, error) {
	var (
		backend *pkgquery.Backend
		err     error
	)
	if name != "" {
		backend, err = pkgquery.Lookup(name)
	} else {
		backend, err = pkgquery.Detect()
	}
	if err != nil {
		return nil, err
	}
	return backend, nil
}

type rootFlags struct {
	cfgFile        string
	format         string
	output         string
	goPackage      string
	packageManager string
	pkg            string
	logLevel       string
	noVerify       bool
}

// NewRootCommand builds the seccomp-link command tree.
func NewRootCommand(env Env) *cobra.Command {
	var flags rootFlags

	rootCmd := &cobra.Command{
		Use:   "seccomp-link",
		Short: "Locate libseccomp and emit its link directives",
		Long: `seccomp-link locates the native libseccomp library before a cgo build.

LIBSECCOMP_LIB_PATH names the directory to search and short-circuits the
package database query. LIBSECCOMP_LINK_TYPE selects "static" or "dylib".
Without LIBSECCOMP_LIB_PATH the host package manager is asked which file
provides libseccomp.so.2, and the located library's version is read.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log.SetLogger(log.New(env.Stderr, log.LevelNamed(levelName(flags.logLevel, env))))
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResolve(cmd, env, flags)
		},
	}

	rootCmd.SetOut(env.Stdout)
	rootCmd.SetErr(env.Stderr)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.logLevel, "log-level", "", "log level (trace, debug, info, warn, error, off); defaults to $"+log.EnvLevel)

	f := rootCmd.Flags()
	f.StringVar(&flags.cfgFile, "config", "", "optional configuration file (.toml, .yaml, .json); environment variables take precedence")
	f.StringVarP(&flags.format, "format", "f", string(seccomplink.FormatText), "output format: "+formatNames())
	f.StringVarP(&flags.output, "output", "o", "", "write the output to this file instead of stdout")
	f.StringVar(&flags.goPackage, "go-package", "seccomp", "package clause of the generated file (gofile format)")
	f.StringVar(&flags.packageManager, "package-manager", "", "package manager to query ("+strings.Join(pkgquery.Names(), ", ")+"); detected when empty")
	f.StringVar(&flags.pkg, "package", "", "package providing libseccomp; the package manager's default when empty")
	f.BoolVar(&flags.noVerify, "no-verify", false, "do not load the discovered library to read its version")

	rootCmd.AddCommand(newProbeCommand(env), newVersionCommand())

	return rootCmd
}

// Execute runs the command tree against the real process environment.
func Execute() error {
	return NewRootCommand(DefaultEnv()).Execute()
}

func levelName(flag string, env Env) string {
	if flag != "" {
		return flag
	}
	if v, ok := env.LookupEnv(log.EnvLevel); ok {
		return v
	}
	return ""
}

func formatNames() string {
	names := make([]string, len(seccomplink.Formats))
	for i, f := range seccomplink.Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

func runResolve(cmd *cobra.Command, env Env, flags rootFlags) (err error) {
	cfg, err := config.Resolve(flags.cfgFile, env.LookupEnv)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if flags.logLevel == "" && cfg.LogLevel != "" {
		if _, ok := env.LookupEnv(log.EnvLevel); !ok {
			log.SetLevel(log.LevelNamed(cfg.LogLevel))
		}
	}
	if flags.packageManager != "" {
		cfg.PackageManager = flags.packageManager
	}

	if err := support.KernelSupport(); err != nil {
		log.Warn("%v", err)
	}

	resolver := seccomplink.Resolver{
		LibPath:    cfg.LibPath,
		LinkType:   cfg.LinkType,
		Package:    flags.pkg,
		ConfigFile: flags.cfgFile,
	}

	if cfg.LibPath == nil {
		lister, err := env.NewLister(cfg.PackageManager)
		if err != nil {
			log.Debug("package database unavailable: %v", err)
		} else {
			resolver.Lister = lister
		}
		if !flags.noVerify {
			resolver.Probe = env.Probe
		}
	}

	res, err := resolver.Resolve(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flags.output != "" {
		file, err := os.Create(flags.output)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := file.Close(); closeErr != nil && err == nil {
				err = closeErr
			}
		}()
		out = file
	}

	return seccomplink.Render(out, res, seccomplink.Format(flags.format), seccomplink.RenderOptions{
		GoPackage: flags.goPackage,
		Generator: "seccomp-link",
	})
}
