// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package cliui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

var colors = []string{"Red", "Green", "Blue"}

func runSelect(t *testing.T, req Request, input string) (Result, string, error) {
	t.Helper()
	var out bytes.Buffer
	res, err := NewSelector(strings.NewReader(input), &out, &PlainRenderer{}).Select(req)
	return res, out.String(), err
}

func TestSelect_Scenarios(t *testing.T) {
	tests := []struct {
		name      string
		def       *int
		input     string
		want      Result
		rejected  int
		errorText string
	}{
		{name: "empty input takes default", def: Position(2), input: "\n", want: Result{Index: 2, Value: "Green"}},
		{name: "number without default", input: "3\n", want: Result{Index: 3, Value: "Blue"}},
		{name: "number overrides default", def: Position(1), input: "3\n", want: Result{Index: 3, Value: "Blue"}},
		{name: "retries after invalid input", input: "abc\n7\n2\n", want: Result{Index: 2, Value: "Green"}, rejected: 2},
		{name: "zero is out of range", input: "0\n1\n", want: Result{Index: 1, Value: "Red"}, rejected: 1, errorText: "out of range"},
		{name: "negative is not a number", input: "-1\n1\n", want: Result{Index: 1, Value: "Red"}, rejected: 1, errorText: "Invalid input"},
		{name: "overflow is out of range", input: "99999999999999999999999\n2\n", want: Result{Index: 2, Value: "Green"}, rejected: 1, errorText: "out of range"},
		{name: "empty without default re-prompts", input: "\n1\n", want: Result{Index: 1, Value: "Red"}, rejected: 1, errorText: "between 1 and 3"},
		{name: "surrounding whitespace is ignored", input: "  2 \r\n", want: Result{Index: 2, Value: "Green"}},
		{name: "leading zeros", input: "03\n", want: Result{Index: 3, Value: "Blue"}},
		{name: "last line without newline", input: "2", want: Result{Index: 2, Value: "Green"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := NewRequest("Pick a color", colors)
			req.Default = tt.def

			res, out, err := runSelect(t, req, tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, res)
			require.Equal(t, tt.rejected+1, strings.Count(out, "Pick a color ["))
			if tt.errorText != "" {
				require.Contains(t, out, tt.errorText)
			}
		})
	}
}

func TestSelect_EveryPosition(t *testing.T) {
	options := []string{"a", "b", "c", "d", "e"}
	for k := 1; k <= len(options); k++ {
		req := NewRequest("", options)
		res, _, err := runSelect(t, req, strings.Repeat(" ", k)+string(rune('0'+k))+"\n")
		require.NoError(t, err)
		require.Equal(t, Result{Index: k, Value: options[k-1]}, res)

		req.Default = Position(k)
		res, _, err = runSelect(t, req, "\n")
		require.NoError(t, err)
		require.Equal(t, Result{Index: k, Value: options[k-1]}, res)
	}
}

func TestSelect_InvalidRequest(t *testing.T) {
	tests := []struct {
		name    string
		options []string
		def     *int
		wantErr error
	}{
		{name: "no options", wantErr: ErrEmptyOptions},
		{name: "no options with default", options: []string{}, def: Position(1), wantErr: ErrEmptyOptions},
		{name: "default zero", options: colors, def: Position(0), wantErr: ErrInvalidDefault},
		{name: "default past end", options: colors, def: Position(4), wantErr: ErrInvalidDefault},
		{name: "negative default", options: colors, def: Position(-1), wantErr: ErrInvalidDefault},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := NewRequest("Pick", tt.options)
			req.Default = tt.def

			_, out, err := runSelect(t, req, "1\n")
			require.ErrorIs(t, err, tt.wantErr)
			require.Empty(t, out)
		})
	}
}

func TestSelect_InputClosed(t *testing.T) {
	_, _, err := runSelect(t, NewRequest("Pick", colors), "")
	require.ErrorIs(t, err, ErrInputClosed)

	_, out, err := runSelect(t, NewRequest("Pick", colors), "abc\n\n")
	require.ErrorIs(t, err, ErrInputClosed)
	require.Contains(t, out, `Invalid input "abc"`)

	_, _, err = runSelect(t, NewRequest("Pick", colors), "9")
	require.ErrorIs(t, err, ErrInputClosed)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("device gone") }

func TestSelect_ReadError(t *testing.T) {
	var out bytes.Buffer
	_, err := NewSelector(failingReader{}, &out, nil).Select(NewRequest("Pick", colors))
	require.ErrorContains(t, err, "device gone")
	require.NotErrorIs(t, err, ErrInputClosed)
}

func TestSelect_Rendering(t *testing.T) {
	req := NewRequest("Pick a color", colors)
	req.Default = Position(2)

	_, out, err := runSelect(t, req, "\n")
	require.NoError(t, err)
	require.Equal(t, "1) Red\n2) Green (default)\n3) Blue\nPick a color [1-3, default 2]: ", out)

	req.DefaultLabel = ""
	req.Default = nil
	_, out, err = runSelect(t, req, "1\n")
	require.NoError(t, err)
	require.Equal(t, "1) Red\n2) Green\n3) Blue\nPick a color [1-3]: ", out)
}

func TestTerminalRenderer_Spacing(t *testing.T) {
	for _, tt := range []struct {
		spacing int
		want    string
	}{
		{spacing: 5, want: "\n\n\n\n\n" + ansi.CursorUp(5)},
		{spacing: 1, want: "\n" + ansi.CursorUp(1)},
		{spacing: 0, want: ""},
		{spacing: -3, want: ""},
	} {
		var out bytes.Buffer
		r := &TerminalRenderer{Theme: NewTheme(&out)}

		req := NewRequest("Pick", colors)
		req.Default = Position(3)
		req.DefaultLabel = "(usual)"
		req.BottomSpacing = tt.spacing

		res, err := NewSelector(strings.NewReader("\n"), &out, r).Select(req)
		require.NoError(t, err)
		require.Equal(t, Result{Index: 3, Value: "Blue"}, res)

		// A buffer is not a terminal, so the theme renders without color.
		prefix := "1) Red\n2) Green\n3) Blue (usual)\n"
		require.Equal(t, prefix+tt.want+"Pick [1-3, default 3]: ", out.String())
	}
}

func TestPlainRenderer_NoCursorMovement(t *testing.T) {
	req := NewRequest("Pick", colors)
	req.BottomSpacing = 10

	_, out, err := runSelect(t, req, "1\n")
	require.NoError(t, err)
	require.NotContains(t, out, "\x1b")
	require.NotContains(t, out, "\n\n")
}
