// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package version

var (
	// Version is the tty-select release, overridden with -ldflags at build time
	Version = "0.1.0"

	// GitSHA is the commit SHA value set during build
	GitSHA = "Not provided (use ./scripts/build.sh)"
)
