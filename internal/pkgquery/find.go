// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package pkgquery

import (
	"context"
	"fmt"
	"strings"

	"github.com/DataDog/go-seccomplink/linkerrors"
)

// FindSharedObject asks lister for the files of pkg and returns the first one
// whose path ends with suffix. The line is returned verbatim. Every failure
// is a *linkerrors.DiscoveryError.
func FindSharedObject(ctx context.Context, lister Lister, pkg, suffix string) (string, error) {
	if lister == nil {
		return "", &linkerrors.DiscoveryError{Manager: "none", Package: pkg, Err: linkerrors.ErrNoPackageManager}
	}

	files, err := lister.ListFiles(ctx, pkg)
	if err != nil {
		return "", &linkerrors.DiscoveryError{Manager: lister.Name(), Package: pkg, Err: err}
	}

	for _, file := range files {
		if strings.HasSuffix(file, suffix) {
			return file, nil
		}
	}

	return "", &linkerrors.DiscoveryError{
		Manager: lister.Name(),
		Package: pkg,
		Err:     fmt.Errorf("unable to find %s: %w", suffix, linkerrors.ErrSharedObjectNotFound),
	}
}
