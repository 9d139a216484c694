// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package cliui

import (
	"fmt"
	"os"
	"runtime"
)

// OpenTTY opens path for reading, or the controlling terminal when path
// is empty. Reading from the terminal device instead of stdin keeps the
// selector working when stdin is piped or redirected.
func OpenTTY(path string) (*os.File, error) {
	if path == "" {
		path = "/dev/tty"
		if runtime.GOOS == "windows" {
			path = "CONIN$"
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open terminal %s: %w", path, err)
	}
	return f, nil
}
