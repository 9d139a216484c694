// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package cliui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Selector asks for a numbered selection. Input is read line by line from
// in and everything the user sees is written to out.
type Selector struct {
	in       *bufio.Reader
	out      io.Writer
	renderer Renderer
}

func NewSelector(in io.Reader, out io.Writer, renderer Renderer) *Selector {
	if renderer == nil {
		renderer = &PlainRenderer{}
	}
	return &Selector{
		in:       bufio.NewReader(in),
		out:      out,
		renderer: renderer,
	}
}

// Select displays a numbered menu with the options of the given request
// and blocks until the user enters a valid option number, or accepts the
// default with an empty line.
//
// Invalid requests fail with ErrEmptyOptions or ErrInvalidDefault before
// anything is written. Invalid answers are reported and asked again.
// ErrInputClosed is returned when the input reaches EOF.
//
// Example usage:
//
//	req := cliui.NewRequest("Please choose one VM:", []string{"etcd-vm1", "etcd-vm2", "etcd-vm3"})
//	req.Default = cliui.Position(1)
//	res, err := cliui.NewSelector(tty, os.Stderr, cliui.NewRenderer(os.Stderr)).Select(req)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("You selected option %d: %s\n", res.Index, res.Value)
func (s *Selector) Select(req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	count, def := len(req.Options), req.defaultPos()
	if err := s.renderer.RenderOptions(s.out, req.Options, def, req.label()); err != nil {
		return Result{}, err
	}
	if err := s.renderer.ReserveLines(s.out, req.spacing()); err != nil {
		return Result{}, err
	}

	for {
		if err := s.renderer.RenderPrompt(s.out, req.Prompt, count, def); err != nil {
			return Result{}, err
		}

		line, err := s.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return Result{}, fmt.Errorf("failed to read selection: %w", err)
		}
		if err != nil && line == "" {
			return Result{}, ErrInputClosed
		}

		index, msg := parseSelection(strings.TrimSpace(line), count, def)
		if msg == "" {
			return req.result(index), nil
		}
		if err := s.renderer.RenderError(s.out, msg); err != nil {
			return Result{}, err
		}
	}
}

// parseSelection returns the selected position, or a message explaining
// why the answer was rejected.
func parseSelection(answer string, count, def int) (int, string) {
	if answer == "" {
		if def > 0 {
			return def, ""
		}
		return 0, fmt.Sprintf("Please enter a number between 1 and %d.", count)
	}

	for _, c := range answer {
		if c < '0' || c > '9' {
			return 0, fmt.Sprintf("Invalid input %q: please enter a number between 1 and %d.", answer, count)
		}
	}

	// Digits only, so a parse error can only mean the value overflowed.
	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > count {
		return 0, fmt.Sprintf("Option %s is out of range: please enter a number between 1 and %d.", answer, count)
	}
	return n, ""
}

// Select asks for a selection on the controlling terminal. The menu and
// prompts go to stderr, so stdout stays free for the caller's own output.
func Select(req Request) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	tty, err := OpenTTY("")
	if err != nil {
		return Result{}, err
	}
	defer tty.Close()

	return NewSelector(tty, os.Stderr, NewRenderer(os.Stderr)).Select(req)
}
