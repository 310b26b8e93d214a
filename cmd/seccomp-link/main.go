// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

// Command seccomp-link locates libseccomp and prints the directives a cgo
// build needs to link against it, e.g. from a go:generate line:
//
//	//go:generate go run github.com/DataDog/go-seccomplink/cmd/seccomp-link -f gofile -o zz_seccomp_link.go
package main

import (
	"fmt"
	"os"

	"github.com/DataDog/go-seccomplink/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
