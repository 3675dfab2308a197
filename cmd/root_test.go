package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootShowsHelp(t *testing.T) {
	for _, args := range [][]string{{}, {"--help"}} {
		cmd := NewRootCmd()
		buf := new(bytes.Buffer)
		cmd.SetOut(buf)
		cmd.SetErr(buf)
		cmd.SetArgs(args)

		if err := cmd.Execute(); err != nil {
			t.Fatalf("Execute(%v) returned error: %v", args, err)
		}

		output := buf.String()
		for _, want := range []string{"Scene Timeline API", "timeline-api", "Available Commands:"} {
			if !strings.Contains(output, want) {
				t.Errorf("Help output for %v missing %q", args, want)
			}
		}
	}
}

func TestRootRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown flag", []string{"--no-such-flag"}},
		{"unknown subcommand", []string{"rewind"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewRootCmd()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs(tt.args)

			if err := cmd.Execute(); err == nil {
				t.Errorf("Execute(%v) should fail, output: %q", tt.args, buf.String())
			}
		})
	}
}

func TestRootRegistersSubcommands(t *testing.T) {
	cmd := NewRootCmd()

	registered := make(map[string]bool)
	for _, child := range cmd.Commands() {
		registered[child.Name()] = true
	}

	for _, want := range []string{"serve", "migrate", "version"} {
		if !registered[want] {
			t.Errorf("Expected %q to be registered on the root command", want)
		}
	}
}

func TestLoggingFlagDefaults(t *testing.T) {
	cmd := NewRootCmd()

	tests := []struct {
		flag       string
		defaultVal string
	}{
		{"log-level", "info"},
		{"json-logs", "false"},
	}

	for _, tt := range tests {
		f := cmd.PersistentFlags().Lookup(tt.flag)
		if f == nil {
			t.Errorf("Expected --%s flag to be registered", tt.flag)
			continue
		}
		if f.DefValue != tt.defaultVal {
			t.Errorf("Expected --%s default %q, got %q", tt.flag, tt.defaultVal, f.DefValue)
		}
	}
}
