// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package commands

import (
	"log"
	"os"
)

var logger = log.New(os.Stderr, cliName+": ", log.LstdFlags)

// printLog logs to stderr when --verbose is set.
func printLog(format string, v ...any) {
	if verbose {
		logger.Printf(format, v...)
	}
}
