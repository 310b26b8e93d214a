// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2016-present Datadog, Inc.

package support

// Store all the errors related to why the version probe is unavailable for
// the current target at runtime.
var probeSupportErrors []error

// ProbeSupportErrors returns all the errors related to why the version probe
// cannot run on the current target.
func ProbeSupportErrors() []error {
	return probeSupportErrors
}

// KernelSupport reports whether the running kernel offers seccomp filtering.
// A nil error means it does.
func KernelSupport() error {
	return kernelSupport()
}
