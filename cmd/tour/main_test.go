// Package main provides tests for the tour CLI.
package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/leapstack-labs/tour/internal/cli"
)

func TestVersionCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"version"})

	err := cmd.Execute()
	if err != nil {
		t.Errorf("version command error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "tour v") {
		t.Errorf("version output should contain 'tour v', got: %s", output)
	}
}

func TestHelpCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	if err != nil {
		t.Errorf("help command error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"run", "list", "banner", "interactive", "browse"} {
		if !strings.Contains(output, want) {
			t.Errorf("help output should mention %q, got: %s", want, output)
		}
	}
}

func TestRunHelloWorld(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"run", "hello-world", "--output", "plain"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("run command error = %v", err)
	}

	want := "\n\t/**************************\\\n\t|  Example 1: Hello World  |\n\t\\**************************/\n\n"
	if !strings.HasPrefix(buf.String(), want) {
		t.Errorf("output should start with the example banner, got: %q", buf.String()[:min(len(buf.String()), 120)])
	}
}
