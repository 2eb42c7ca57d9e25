package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestRun_MissingCommand(t *testing.T) {
	err := run([]string{"lumen"}, &bytes.Buffer{})
	if !errors.Is(err, errMissingCommand) {
		t.Fatalf("err = %v, want errMissingCommand", err)
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	err := run([]string{"lumen", "deploy"}, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "deploy") {
		t.Fatalf("err = %v, want unknown-command error naming it", err)
	}
}

func TestRun_Build(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"lumen", "build"}, &out); err != nil {
		t.Fatalf("build: %v", err)
	}
	got := out.String()
	if !strings.HasPrefix(got, "Running Lumen build pipeline...") {
		t.Fatalf("output = %q", got)
	}
	if !strings.Contains(got, "Done! Lumen is ready.") {
		t.Fatalf("output = %q", got)
	}
}

func TestRun_Help(t *testing.T) {
	for _, alias := range []string{"help", "--help", "-h"} {
		var out bytes.Buffer
		if err := run([]string{"lumen", alias}, &out); err != nil {
			t.Fatalf("%s: %v", alias, err)
		}
		if !strings.Contains(out.String(), "Available commands:") {
			t.Fatalf("%s output = %q", alias, out.String())
		}
	}
}
