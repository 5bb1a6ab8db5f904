package main

// Notes:
// - runMain is driven with a captured Environment; no test passes --pdf, so
//   no browser is ever started.
// - The plain "htxt <input> [output]" form reports a missing input on stdout
//   with exit code 1, unlike the convert command.

import (
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRunMain - Dispatch, help and exit codes
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout []string
		wantStderr []string
	}{
		{
			name:       "no args shows usage",
			args:       []string{"htxt"},
			wantCode:   ExitUsage,
			wantStderr: []string{"Usage: htxt <input> [output]"},
		},
		{
			name:       "version",
			args:       []string{"htxt", "version"},
			wantCode:   ExitSuccess,
			wantStdout: []string{"htxt " + Version},
		},
		{
			name:       "help",
			args:       []string{"htxt", "help"},
			wantCode:   ExitSuccess,
			wantStdout: []string{"Commands:", "convert", "preview", "tree"},
		},
		{
			name:       "help convert",
			args:       []string{"htxt", "help", "convert"},
			wantCode:   ExitSuccess,
			wantStdout: []string{"Usage: htxt convert", "--strict", "HTXT_STYLE"},
		},
		{
			name:       "help tree",
			args:       []string{"htxt", "help", "tree"},
			wantCode:   ExitSuccess,
			wantStdout: []string{"Usage: htxt tree"},
		},
		{
			name:       "help doctor",
			args:       []string{"htxt", "help", "doctor"},
			wantCode:   ExitSuccess,
			wantStdout: []string{"Usage: htxt doctor"},
		},
		{
			name:       "help unknown topic",
			args:       []string{"htxt", "help", "bogus"},
			wantCode:   ExitUsage,
			wantStderr: []string{"unknown command: bogus"},
		},
		{
			name:       "unknown flag",
			args:       []string{"htxt", "--bogus"},
			wantCode:   ExitUsage,
			wantStderr: []string{"unknown flag: --bogus"},
		},
		{
			name:       "convert flag error",
			args:       []string{"htxt", "convert", "--workers", "many"},
			wantCode:   ExitUsage,
			wantStderr: []string{"Error:"},
		},
		{
			name:     "convert --help",
			args:     []string{"htxt", "convert", "--help"},
			wantCode: ExitSuccess,
		},
		{
			name:       "missing input in plain form",
			args:       []string{"htxt", "does-not-exist.htxt"},
			wantCode:   ExitGeneral,
			wantStdout: []string{`input file "does-not-exist.htxt" not found`},
		},
		{
			name:       "plain form with too many args",
			args:       []string{"htxt", "a.htxt", "b.html", "c"},
			wantCode:   ExitUsage,
			wantStderr: []string{"Usage: htxt <input> [output]"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv(nil)
			if code := runMain(tt.args, env); code != tt.wantCode {
				t.Errorf("runMain() = %d, want %d\nstderr: %s", code, tt.wantCode, stderr)
			}
			for _, want := range tt.wantStdout {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout %q missing %q", stdout, want)
				}
			}
			for _, want := range tt.wantStderr {
				if !strings.Contains(stderr.String(), want) {
					t.Errorf("stderr %q missing %q", stderr, want)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunCompile - htxt <input> [output]
// ---------------------------------------------------------------------------

func TestRunCompile_DefaultOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writeSource(t, dir, "index.htxt", pageSource)

	env, stdout, _ := testEnv(nil)
	if code := runMain([]string{"htxt", in}, env); code != ExitSuccess {
		t.Fatalf("runMain() = %d", code)
	}

	out := filepath.Join(dir, "index.html")
	if got := readFile(t, out); got != pageHTML {
		t.Errorf("output:\n%s\nwant:\n%s", got, pageHTML)
	}
	if got := stdout.String(); got != "Wrote "+out+"\n" {
		t.Errorf("stdout = %q", got)
	}
}

func TestRunCompile_ExplicitOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writeSource(t, dir, "notes.txt", "p: a & b\n")
	out := filepath.Join(dir, "nested", "out.htm")

	env, stdout, _ := testEnv(nil)
	if code := runMain([]string{"htxt", in, out}, env); code != ExitSuccess {
		t.Fatalf("runMain() = %d", code)
	}
	if got := readFile(t, out); got != "<p>a &amp; b</p>\n" {
		t.Errorf("output = %q", got)
	}
	if !strings.Contains(stdout.String(), "Wrote "+out) {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestRunCompile_InvalidEncoding(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writeSource(t, dir, "bad.htxt", "p: \xff\xfe\xfd")

	env, _, stderr := testEnv(nil)
	if code := runMain([]string{"htxt", in}, env); code != ExitIO {
		t.Errorf("runMain() = %d, want ExitIO", code)
	}
	if !strings.Contains(stderr.String(), "cannot decode source") {
		t.Errorf("stderr = %q", stderr)
	}
}
