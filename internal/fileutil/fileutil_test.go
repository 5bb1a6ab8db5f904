package fileutil

// Notes:
// - WriteTempFile tests touch the real temp dir; each test removes what it creates.
// - IsFilePath and IsCSS are heuristics; the tables document the accepted shapes.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestValidateExtension - Extension safety checks
// ---------------------------------------------------------------------------

func TestValidateExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ext     string
		wantErr error
	}{
		{"html", "html", nil},
		{"pdf", "pdf", nil},
		{"empty", "", ErrExtensionEmpty},
		{"forward slash", "../x", ErrExtensionPathTraversal},
		{"backslash", `..\x`, ErrExtensionPathTraversal},
		{"null byte", "ht\x00ml", ErrExtensionPathTraversal},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateExtension(tt.ext)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateExtension(%q) = %v, want %v", tt.ext, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWriteTempFile - Content round trip and cleanup
// ---------------------------------------------------------------------------

func TestWriteTempFile(t *testing.T) {
	t.Parallel()

	content := "<html>\n  <body></body>\n</html>\n"
	path, cleanup, err := WriteTempFile(content, "html")
	if err != nil {
		t.Fatalf("WriteTempFile() error = %v", err)
	}

	if !strings.HasPrefix(filepath.Base(path), "htxt-") {
		t.Errorf("temp file %q missing htxt- prefix", path)
	}
	if filepath.Ext(path) != ".html" {
		t.Errorf("temp file %q extension = %q, want .html", path, filepath.Ext(path))
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading temp file: %v", err)
	}
	if string(got) != content {
		t.Errorf("temp file content = %q, want %q", got, content)
	}

	cleanup()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("temp file still exists after cleanup: %v", err)
	}
}

func TestWriteTempFile_InvalidExtension(t *testing.T) {
	t.Parallel()

	path, cleanup, err := WriteTempFile("x", "../evil")
	if !errors.Is(err, ErrExtensionPathTraversal) {
		t.Fatalf("WriteTempFile() error = %v, want ErrExtensionPathTraversal", err)
	}
	if path != "" || cleanup != nil {
		t.Errorf("WriteTempFile() = (%q, %v), want zero values on error", path, cleanup != nil)
	}
}

// ---------------------------------------------------------------------------
// TestFileExists - Regular files only
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "page.htxt")
	if err := os.WriteFile(file, []byte("html\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{"existing file", file, true},
		{"directory", dir, false},
		{"missing", filepath.Join(dir, "nope.htxt"), false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath / TestIsCSS - Style argument classification
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"default", false},
		{"minimal", false},
		{"./custom.css", true},
		{"/abs/site.css", true},
		{`C:\styles\site.css`, true},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsFilePath(tt.in); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"body { margin: 0 }", true},
		{"h1{color:red}", true},
		{"default", false},
		{"./style.css", false},
	}

	for _, tt := range tests {
		if got := IsCSS(tt.in); got != tt.want {
			t.Errorf("IsCSS(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestReplaceExt - Output path derivation
// ---------------------------------------------------------------------------

func TestReplaceExt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"page.htxt", "page.html"},
		{"docs/page.htxt", "docs/page.html"},
		{"archive.tar.htxt", "archive.tar.html"},
		{"noext", "noext.html"},
		{".htxt", ".htxt.html"},
		{"dir.d/file", "dir.d/file.html"},
	}

	for _, tt := range tests {
		if got := ReplaceExt(tt.path, ".html"); got != tt.want {
			t.Errorf("ReplaceExt(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
