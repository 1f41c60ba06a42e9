package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/conn-castle/systemd-pixi-generator/internal/messages"
)

// Mode selects between synthesizing units and installing the generator links.
type Mode string

const (
	ModeRun  Mode = "run"
	ModeInit Mode = "init"
)

var _ pflag.Value = (*Mode)(nil)

// String implements pflag.Value.
func (m *Mode) String() string {
	return string(*m)
}

// Set implements pflag.Value.
func (m *Mode) Set(value string) error {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case ModeRun:
		*m = ModeRun
	case ModeInit:
		*m = ModeInit
	default:
		return fmt.Errorf(messages.ModeInvalidFmt, value, strings.Join([]string{string(ModeRun), string(ModeInit)}, ", "))
	}
	return nil
}

// Type implements pflag.Value.
func (m *Mode) Type() string {
	return "mode"
}
