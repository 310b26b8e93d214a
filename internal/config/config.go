// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Environment variables read by the resolver.
const (
	EnvLibPath  = "LIBSECCOMP_LIB_PATH"
	EnvLinkType = "LIBSECCOMP_LINK_TYPE"
)

// Config holds the resolver inputs. A nil pointer means "not set", which is
// different from an empty value.
type Config struct {
	LibPath        *string `json:"lib_path,omitempty" yaml:"lib_path,omitempty" toml:"lib_path,omitempty"`
	LinkType       *string `json:"link_type,omitempty" yaml:"link_type,omitempty" toml:"link_type,omitempty"`
	PackageManager string  `json:"package_manager,omitempty" yaml:"package_manager,omitempty" toml:"package_manager,omitempty"`
	LogLevel       string  `json:"log_level,omitempty" yaml:"log_level,omitempty" toml:"log_level,omitempty"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	case ".json":
		err = jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(b, &cfg)
	case ".toml":
		err = toml.Unmarshal(b, &cfg)
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// FromEnv reads the resolver inputs from the environment through lookup,
// typically os.LookupEnv. A variable set to the empty string counts as set.
func FromEnv(lookup func(string) (string, bool)) Config {
	var cfg Config
	if v, ok := lookup(EnvLibPath); ok {
		cfg.LibPath = &v
	}
	if v, ok := lookup(EnvLinkType); ok {
		cfg.LinkType = &v
	}
	return cfg
}

// Merge returns base with every field set in override replacing it.
func Merge(base, override Config) Config {
	if override.LibPath != nil {
		base.LibPath = override.LibPath
	}
	if override.LinkType != nil {
		base.LinkType = override.LinkType
	}
	if override.PackageManager != "" {
		base.PackageManager = override.PackageManager
	}
	if override.LogLevel != "" {
		base.LogLevel = override.LogLevel
	}
	return base
}

// Resolve loads the optional file at path and layers the environment on top.
func Resolve(path string, lookup func(string) (string, bool)) (Config, error) {
	var file Config
	if path != "" {
		var err error
		if file, err = Load(path); err != nil {
			return Config{}, err
		}
	}
	return Merge(file, FromEnv(lookup)), nil
}
