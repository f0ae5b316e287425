package oscommand

import (
	"strings"
	"testing"
)

func TestRunner_Run(t *testing.T) {
	r := NewRunner()

	t.Run("captures stdout", func(t *testing.T) {
		stdout, stderr, err := r.Run([]string{"sh", "-c", "printf out"}, "")
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if stdout != "out" {
			t.Errorf("stdout = %q, want %q", stdout, "out")
		}
		if stderr != "" {
			t.Errorf("stderr = %q, want empty", stderr)
		}
	})

	t.Run("feeds stdin", func(t *testing.T) {
		stdout, _, err := r.Run([]string{"sh", "-c", "cat"}, "piped data")
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if stdout != "piped data" {
			t.Errorf("stdout = %q, want %q", stdout, "piped data")
		}
	})

	t.Run("captures stderr and reports failure", func(t *testing.T) {
		stdout, stderr, err := r.Run([]string{"sh", "-c", "printf oops >&2; exit 3"}, "")
		if err == nil {
			t.Fatal("Run() error = nil, want exit failure")
		}
		if stdout != "" {
			t.Errorf("stdout = %q, want empty", stdout)
		}
		if stderr != "oops" {
			t.Errorf("stderr = %q, want %q", stderr, "oops")
		}
	})

	t.Run("rejects empty argv", func(t *testing.T) {
		if _, _, err := r.Run(nil, ""); err == nil {
			t.Error("Run(nil) error = nil, want an error")
		}
	})

	t.Run("missing binary", func(t *testing.T) {
		if _, _, err := r.Run([]string{"definitely-not-a-binary-9f2c"}, ""); err == nil {
			t.Error("Run() error = nil, want an error for a missing binary")
		}
	})
}

func TestRunner_RunShell(t *testing.T) {
	r := NewRunner()

	t.Run("uses SHELL when set", func(t *testing.T) {
		t.Setenv("SHELL", "/bin/sh")
		stdout, _, err := r.RunShell("printf shelled")
		if err != nil {
			t.Fatalf("RunShell() error = %v", err)
		}
		if stdout != "shelled" {
			t.Errorf("stdout = %q, want %q", stdout, "shelled")
		}
	})

	t.Run("falls back to /bin/sh", func(t *testing.T) {
		t.Setenv("SHELL", "")
		stdout, _, err := r.RunShell("printf fallback")
		if err != nil {
			t.Fatalf("RunShell() error = %v", err)
		}
		if stdout != "fallback" {
			t.Errorf("stdout = %q, want %q", stdout, "fallback")
		}
	})

	t.Run("failure includes the shell", func(t *testing.T) {
		t.Setenv("SHELL", "/bin/sh")
		_, _, err := r.RunShell("exit 9")
		if err == nil {
			t.Fatal("RunShell() error = nil, want exit failure")
		}
		if !strings.Contains(err.Error(), "/bin/sh") {
			t.Errorf("error = %v, want it to name the shell", err)
		}
	})
}
