//go:build integration

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/condgate/condgate/internal/testutil"
)

// Integration tests - require a built binary
// Run with: go test -tags=integration ./cmd/condgate

func TestEvalCommandExitCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		args         []string
		wantExitCode int
		wantSubstrs  []string
	}{
		{
			name:         "satisfied condition",
			args:         []string{"eval", "number", ">=", "5", "5"},
			wantExitCode: ExitSuccess,
			wantSubstrs:  []string{"MATCH"},
		},
		{
			name:         "unsatisfied condition",
			args:         []string{"eval", "number", ">", "5", "5"},
			wantExitCode: ExitUnmatched,
			wantSubstrs:  []string{"NO MATCH"},
		},
		{
			name:         "json output",
			args:         []string{"eval", "-j", "version", ">", "1.2.0", "1.3.0"},
			wantExitCode: ExitSuccess,
			wantSubstrs:  []string{`"all_matched": true`},
		},
		{
			name:         "unknown kind",
			args:         []string{"eval", "regex", "==", "a", "a"},
			wantExitCode: ExitInputError,
			wantSubstrs:  nil,
		},
		{
			name:         "unknown operator",
			args:         []string{"eval", "number", "~=", "1", "1"},
			wantExitCode: ExitInputError,
			wantSubstrs:  nil,
		},
		{
			name:         "missing arguments",
			args:         []string{"eval", "number", ">="},
			wantExitCode: ExitInputError,
			wantSubstrs:  nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := testutil.RunCLI(t, tt.args...)

			if result.ExitCode != tt.wantExitCode {
				t.Errorf("exit code = %d, want %d\nstderr:\n%s",
					result.ExitCode, tt.wantExitCode, result.Stderr)
			}
			for _, substr := range tt.wantSubstrs {
				if !strings.Contains(result.Stdout, substr) {
					t.Errorf("stdout should contain %q, got:\n%s", substr, result.Stdout)
				}
			}
		})
	}
}

func TestBatchCommand(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "conditions.jsonl")
	lines := `{"kind":"number","op":">=","left":5,"right":3}
{"kind":"string","op":"contains","left":"ell","right":"hello"}
{"kind":"ip","op":"<","left":"10.0.0.1","right":"10.0.0.2"}
`
	if err := os.WriteFile(file, []byte(lines), 0o600); err != nil {
		t.Fatal(err)
	}

	result := testutil.RunCLI(t, "batch", file)
	if result.ExitCode != ExitSuccess {
		t.Errorf("exit code = %d, want %d\nstderr:\n%s", result.ExitCode, ExitSuccess, result.Stderr)
	}
	if !strings.Contains(result.Stdout, "MATCH") {
		t.Errorf("stdout should contain MATCH, got:\n%s", result.Stdout)
	}
}

func TestBatchCommandUnmatched(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "conditions.jsonl")
	lines := `{"kind":"number","op":">=","left":5,"right":3}
{"kind":"number","op":">","left":3,"right":5}
`
	if err := os.WriteFile(file, []byte(lines), 0o600); err != nil {
		t.Fatal(err)
	}

	result := testutil.RunCLI(t, "batch", file)
	if result.ExitCode != ExitUnmatched {
		t.Errorf("exit code = %d, want %d", result.ExitCode, ExitUnmatched)
	}
	if !strings.Contains(result.Stdout, "NO MATCH") {
		t.Errorf("stdout should contain NO MATCH, got:\n%s", result.Stdout)
	}
}

func TestBatchCommandMissingFile(t *testing.T) {
	t.Parallel()

	result := testutil.RunCLI(t, "batch", "no-such-file.jsonl")
	if result.ExitCode != ExitInputError {
		t.Errorf("exit code = %d, want %d", result.ExitCode, ExitInputError)
	}
}

func TestSpanCommand(t *testing.T) {
	t.Parallel()

	result := testutil.RunCLI(t, "span", "7days", "2024-01-05")
	if result.ExitCode != ExitSuccess {
		t.Errorf("exit code = %d, want %d\nstderr:\n%s", result.ExitCode, ExitSuccess, result.Stderr)
	}
	for _, substr := range []string{"REFERENCE", "COMPARE", "1704412800"} {
		if !strings.Contains(result.Stdout, substr) {
			t.Errorf("stdout should contain %q, got:\n%s", substr, result.Stdout)
		}
	}

	// Degenerate token resolves both sides to zero
	result = testutil.RunCLI(t, "span", "-j", "abc", "2024-01-05")
	if result.ExitCode != ExitSuccess {
		t.Errorf("exit code = %d, want %d", result.ExitCode, ExitSuccess)
	}
	if !strings.Contains(result.Stdout, `"compare_timestamp": 0`) {
		t.Errorf("stdout should report zero compare timestamp, got:\n%s", result.Stdout)
	}
}
