// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package commands

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vmware/tty-select/pkg/cliui"
	"github.com/vmware/tty-select/pkg/config"
)

var validOutputs = []string{"value", "index", "both"}

type selectOptions struct {
	prompt       string
	def          string
	defaultLabel string
	spacing      int
	file         string
	tty          string
	list         bool
	output       string
}

// NewCommandSelect asks the user to pick one of the given options and
// prints the answer on stdout.
func NewCommandSelect() *cobra.Command {
	o := &selectOptions{}
	cmd := &cobra.Command{
		Use:   "select [OPTION...]",
		Short: "Select one option from a numbered list",
		Long: `Select one option from a numbered list.

Options are taken from the arguments, appended after the options of the
menu file given with --file. Flags set explicitly override the menu file.

Output formats:
  - value: the selected option (default)
  - index: the 1-based position of the selected option
  - both: the position and the option separated by a tab
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelect(cmd, args, o)
		},
	}

	cmd.Flags().StringVarP(&o.prompt, "prompt", "p", "Select an option", "prompt text")
	cmd.Flags().StringVarP(&o.def, "default", "d", "", "1-based position selected on empty input")
	cmd.Flags().StringVarP(&o.defaultLabel, "default-label", "l", cliui.DefaultLabel, "annotation shown next to the default option")
	cmd.Flags().IntVarP(&o.spacing, "spacing", "s", cliui.DefaultBottomSpacing, "blank lines kept below the prompt")
	cmd.Flags().StringVarP(&o.file, "file", "f", "", "YAML or JSON menu file")
	cmd.Flags().StringVar(&o.tty, "tty", "", "device to read the answer from (default: controlling terminal)")
	cmd.Flags().BoolVar(&o.list, "list", false, "use an arrow-key list instead of a numbered prompt")
	cmd.Flags().StringVarP(&o.output, "output", "o", "value", fmt.Sprintf("output format, valid formats are: %v", validOutputs))

	return cmd
}

func runSelect(cmd *cobra.Command, args []string, o *selectOptions) error {
	if err := validateOutput(o.output); err != nil {
		return err
	}

	req, err := o.request(cmd, args)
	if err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return err
	}

	printLog("Selecting from %d options: %v", len(req.Options), req.Options)

	var res cliui.Result
	if o.list {
		res, err = cliui.ListSelect(req, o.tty)
	} else {
		res, err = promptSelect(cmd.ErrOrStderr(), req, o.tty)
	}
	if err != nil {
		return err
	}

	printLog("Selected %d: %s", res.Index, res.Value)

	switch o.output {
	case "index":
		fmt.Fprintln(cmd.OutOrStdout(), res.Index)
	case "both":
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", res.Index, res.Value)
	default:
		fmt.Fprintln(cmd.OutOrStdout(), res.Value)
	}
	return nil
}

func promptSelect(diag io.Writer, req cliui.Request, ttyPath string) (cliui.Result, error) {
	tty, err := cliui.OpenTTY(ttyPath)
	if err != nil {
		return cliui.Result{}, err
	}
	defer tty.Close()

	return cliui.NewSelector(tty, diag, newRenderer(diag)).Select(req)
}

func newRenderer(w io.Writer) cliui.Renderer {
	if f, ok := w.(*os.File); ok {
		return cliui.NewRenderer(f)
	}
	return &cliui.PlainRenderer{}
}

// request merges the menu file, the flags and the positional options.
func (o *selectOptions) request(cmd *cobra.Command, args []string) (cliui.Request, error) {
	req := cliui.NewRequest(o.prompt, nil)
	req.DefaultLabel = o.defaultLabel
	req.BottomSpacing = o.spacing

	if o.file != "" {
		menu, err := config.ParseMenuFromFile(o.file)
		if err != nil {
			return cliui.Request{}, fmt.Errorf("failed to parse menu file: %w", err)
		}
		printLog("Loaded menu from %s", o.file)

		fileReq := menu.Request()
		flags := cmd.Flags()
		if !flags.Changed("prompt") {
			req.Prompt = fileReq.Prompt
		}
		if !flags.Changed("default-label") {
			req.DefaultLabel = fileReq.DefaultLabel
		}
		if !flags.Changed("spacing") {
			req.BottomSpacing = fileReq.BottomSpacing
		}
		req.Default = fileReq.Default
		req.Options = append(req.Options, fileReq.Options...)
	}

	req.Options = append(req.Options, args...)

	if o.def != "" {
		n, err := strconv.Atoi(o.def)
		if err != nil {
			return cliui.Request{}, fmt.Errorf("%w: %q is not a number", cliui.ErrInvalidDefault, o.def)
		}
		req.Default = cliui.Position(n)
	}

	return req, nil
}

func validateOutput(output string) error {
	if slices.Contains(validOutputs, output) {
		return nil
	}
	return fmt.Errorf("invalid output format: %s, valid formats are %v", output, validOutputs)
}
