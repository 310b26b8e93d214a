// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newProbeCommand(env Env) *cobra.Command {
	return &cobra.Command{
		Use:   "probe PATH",
		Short: "Load a libseccomp shared object and print the version it reports",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			version, err := env.Probe.Probe(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), version)
			return err
		},
	}
}
