package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const doc = `{\rtf1\ansi{\info{\title Minutes}{\author Sam}}` +
	`\pard Hello {\b world}.\par}`

func createTestFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.rtf")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	return path
}

func runCLI(t *testing.T, cli CLI, stdin string) (string, string, error) {
	t.Helper()
	if cli.CodePage == 0 {
		cli.CodePage = 1252
	}
	if cli.LogLevel == "" {
		cli.LogLevel = "warn"
	}
	var stdout, stderr bytes.Buffer
	err := cli.run(&stdout, &stderr, strings.NewReader(stdin))
	return stdout.String(), stderr.String(), err
}

func TestRunFormats(t *testing.T) {
	path := createTestFile(t, doc)

	tests := []struct {
		output string
		want   string
	}{
		{"text", "Hello world."},
		{"markdown", "Hello **world**."},
		{"html", "<strong>world</strong>"},
		{"events", "world"},
	}

	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			out, _, err := runCLI(t, CLI{File: path, Output: tt.output}, "")
			if err != nil {
				t.Fatalf("run() error = %v", err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output %q does not contain %q", out, tt.want)
			}
		})
	}
}

func TestRunStdin(t *testing.T) {
	out, _, err := runCLI(t, CLI{File: "-", Output: "text"}, doc)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(out, "Hello world.") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestRunInfo(t *testing.T) {
	out, _, err := runCLI(t, CLI{File: "-", Output: "text", Info: true, Objects: true}, doc)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	for _, want := range []string{"=== Properties ===", "Title: Minutes", "Author: Sam", "=== Objects ==="} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunWarningsLogged(t *testing.T) {
	_, stderr, err := runCLI(t, CLI{File: "-", Output: "text"}, doc+"}")
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(stderr, "import warning") {
		t.Errorf("expected a logged warning, got %q", stderr)
	}
}

func TestRunErrors(t *testing.T) {
	if _, _, err := runCLI(t, CLI{File: filepath.Join(t.TempDir(), "missing.rtf")}, ""); err == nil {
		t.Error("expected error for missing file")
	}
	if _, _, err := runCLI(t, CLI{File: "-"}, "not rtf"); err == nil {
		t.Error("expected error for non-RTF input")
	}
}

func TestLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	cli := CLI{LogLevel: "debug", LogFormat: "json"}
	cli.logger(&buf).Debug("hello")
	if !strings.HasPrefix(buf.String(), "{") {
		t.Errorf("expected JSON log line, got %q", buf.String())
	}
}
