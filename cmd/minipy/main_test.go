package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunCLIHelp(t *testing.T) {
	if err := runCLI([]string{"minipy", "help"}); err != nil {
		t.Fatalf("runCLI help failed: %v", err)
	}
}

func TestRunCLIVersion(t *testing.T) {
	for _, arg := range []string{"version", "-v", "--version"} {
		out, err := captureStdout(t, func() error {
			return runCLI([]string{"minipy", arg})
		})
		if err != nil {
			t.Fatalf("runCLI %s failed: %v", arg, err)
		}
		if strings.TrimSpace(out) != "minipy v"+version {
			t.Fatalf("unexpected version output for %s: %q", arg, out)
		}
	}
}

func TestRunCLIInvalidCommand(t *testing.T) {
	err := runCLI([]string{"minipy", "unknown"})
	if err == nil {
		t.Fatalf("expected invalid command error")
	}
	if !strings.Contains(err.Error(), "invalid command") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunCommandExecutesScript(t *testing.T) {
	scriptPath := writeScript(t, `x: int = 40
print(x + 2)
`)

	out, err := captureStdout(t, func() error {
		return runCommand([]string{scriptPath})
	})
	if err != nil {
		t.Fatalf("runCommand failed: %v", err)
	}
	if got := strings.TrimSpace(out); got != "42" {
		t.Fatalf("unexpected stdout: %q", got)
	}
}

func TestRunCommandCheckOnly(t *testing.T) {
	scriptPath := writeScript(t, `def f() -> int:
    return 1
`)

	out, err := captureStdout(t, func() error {
		return runCommand([]string{"-check", scriptPath})
	})
	if err != nil {
		t.Fatalf("runCommand check failed: %v", err)
	}
	if out != "" {
		t.Fatalf("check must not execute the script, got output %q", out)
	}
}

func TestRunCommandCheckReportsSyntaxError(t *testing.T) {
	scriptPath := writeScript(t, "if x\n    print(1)\n")

	err := runCommand([]string{"-check", scriptPath})
	if err == nil {
		t.Fatalf("expected syntax error")
	}
	if !strings.Contains(err.Error(), "syntax error") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunCommandReportsRuntimeError(t *testing.T) {
	scriptPath := writeScript(t, "print(1 / 0)\n")

	err := runCommand([]string{scriptPath})
	if err == nil {
		t.Fatalf("expected division by zero error")
	}
	if !strings.Contains(err.Error(), "division by zero") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunCommandRequiresScriptPath(t *testing.T) {
	err := runCommand(nil)
	if err == nil {
		t.Fatalf("expected script path error")
	}
	if !strings.Contains(err.Error(), "script path required") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func writeScript(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.mpy")
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w

	runErr := fn()
	_ = w.Close()
	os.Stdout = orig

	var buf bytes.Buffer
	if _, copyErr := io.Copy(&buf, r); copyErr != nil {
		t.Fatalf("read stdout: %v", copyErr)
	}
	_ = r.Close()
	return buf.String(), runErr
}
