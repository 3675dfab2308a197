package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func runCapture(t *testing.T, args ...string) string {
	t.Helper()
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute(%v) returned error: %v", args, err)
	}
	return buf.String()
}

func TestVersionOutput(t *testing.T) {
	output := runCapture(t, "version")

	for _, want := range []string{
		"Scene Timeline API v" + Version,
		"Git Commit:",
		"Build Time:",
		"Go Version:",
		"Platform:",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Version output missing %q, got:\n%s", want, output)
		}
	}
}

func TestVersionShortOutput(t *testing.T) {
	for _, flag := range []string{"--short", "-s"} {
		output := strings.TrimSpace(runCapture(t, "version", flag))
		if output != "v"+Version {
			t.Errorf("Expected %q with %s, got %q", "v"+Version, flag, output)
		}
	}
}
