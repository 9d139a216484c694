// Copyright (c) 2025 Broadcom. All Rights Reserved.
// Broadcom Confidential. The term "Broadcom" refers to Broadcom Inc.
// and/or its subsidiaries.

package config

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/vmware/tty-select/pkg/cliui"
)

// Menu is a selection request stored in a YAML or JSON file.
type Menu struct {
	Prompt        string   `json:"prompt,omitempty"`
	Options       []string `json:"options"`
	Default       *int     `json:"default,omitempty"`
	DefaultLabel  string   `json:"default_label,omitempty"`
	BottomSpacing *int     `json:"bottom_spacing,omitempty"`
}

func ParseMenuFromFile(path string) (*Menu, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file failed: %w", err)
	}

	var menu Menu
	if err := yaml.UnmarshalStrict(data, &menu); err != nil {
		return nil, fmt.Errorf("unmarshal menu failed: %w", err)
	}

	return &menu, nil
}

// Request converts the menu to a selection request. Fields missing from
// the file keep the values of cliui.NewRequest.
func (m *Menu) Request() cliui.Request {
	req := cliui.NewRequest(m.Prompt, m.Options)
	req.Default = m.Default
	if m.DefaultLabel != "" {
		req.DefaultLabel = m.DefaultLabel
	}
	if m.BottomSpacing != nil {
		req.BottomSpacing = *m.BottomSpacing
	}
	return req
}
