// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package cliui

import (
	"errors"
	"fmt"
)

const (
	DefaultLabel         = "(default)"
	DefaultBottomSpacing = 5
)

var (
	ErrEmptyOptions   = errors.New("no options provided")
	ErrInvalidDefault = errors.New("invalid default position")
	ErrInputClosed    = errors.New("terminal input closed")
	ErrCancelled      = errors.New("user cancelled")
)

// Request describes a single selection.
type Request struct {
	Prompt  string
	Options []string
	// Default is the 1-based position chosen on empty input, nil for none.
	Default      *int
	DefaultLabel string
	// BottomSpacing is the number of blank lines kept below the prompt.
	// Negative values are treated as zero.
	BottomSpacing int
}

// Result is the outcome of a selection. Index is 1-based.
type Result struct {
	Index int
	Value string
}

// NewRequest returns a request with the default label and bottom spacing set.
func NewRequest(prompt string, options []string) Request {
	return Request{
		Prompt:        prompt,
		Options:       options,
		DefaultLabel:  DefaultLabel,
		BottomSpacing: DefaultBottomSpacing,
	}
}

// Position returns a pointer to n, for use as Request.Default.
func Position(n int) *int {
	return &n
}

// Validate checks the request without any terminal I/O.
func (r Request) Validate() error {
	if len(r.Options) == 0 {
		return ErrEmptyOptions
	}
	if r.Default != nil && (*r.Default < 1 || *r.Default > len(r.Options)) {
		return fmt.Errorf("%w: %d is not between 1 and %d", ErrInvalidDefault, *r.Default, len(r.Options))
	}
	return nil
}

// defaultPos returns the default position, or 0 when none is set.
func (r Request) defaultPos() int {
	if r.Default == nil {
		return 0
	}
	return *r.Default
}

func (r Request) label() string {
	if r.DefaultLabel == "" {
		return DefaultLabel
	}
	return r.DefaultLabel
}

func (r Request) spacing() int {
	return max(r.BottomSpacing, 0)
}

func (r Request) result(index int) Result {
	return Result{Index: index, Value: r.Options[index-1]}
}
