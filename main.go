// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package main

import (
	"errors"
	"log"
	"os"

	"github.com/vmware/tty-select/commands"
)

const (
	exitError = 1
)

func main() {
	log.SetFlags(0)

	rootCmd := commands.RootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Usage has already been printed for a bare invocation.
		if !errors.Is(err, commands.ErrNoCommand) {
			log.Printf("Error: %v\n", err)
		}
		os.Exit(exitError)
	}
}
