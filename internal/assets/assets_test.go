package assets

// Notes:
// - Filesystem tests build their own styles/ tree under t.TempDir().
// - The symlink escape case is skipped where symlinks cannot be created.

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeStyle(t *testing.T, base, name, css string) {
	t.Helper()
	dir := filepath.Join(base, "styles")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name+".css"), []byte(css), 0o644); err != nil {
		t.Fatal(err)
	}
}

// ---------------------------------------------------------------------------
// TestValidateAssetName - Name safety
// ---------------------------------------------------------------------------

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"plain", "default", false},
		{"dashes", "dark-mode", false},
		{"underscore", "my_style", false},
		{"empty", "", true},
		{"slash", "../etc/passwd", true},
		{"backslash", `..\x`, true},
		{"dot", "style.css", true},
		{"null", "a\x00b", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAssetName(tt.in)
			if tt.wantErr != (err != nil) {
				t.Fatalf("ValidateAssetName(%q) = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidAssetName) {
				t.Errorf("error = %v, want ErrInvalidAssetName", err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestEmbeddedLoader - Built-in styles
// ---------------------------------------------------------------------------

func TestEmbeddedLoader(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	for _, name := range []string{DefaultStyle, "minimal"} {
		css, err := loader.LoadStyle(name)
		if err != nil {
			t.Fatalf("LoadStyle(%q) error = %v", name, err)
		}
		if !strings.Contains(css, "body") {
			t.Errorf("LoadStyle(%q) has no body rule", name)
		}
	}

	if _, err := loader.LoadStyle("nonexistent"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle(nonexistent) error = %v, want ErrStyleNotFound", err)
	}
	if _, err := loader.LoadStyle("../default"); !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("LoadStyle(traversal) error = %v, want ErrInvalidAssetName", err)
	}

	if diff := cmp.Diff([]string{"default", "minimal"}, loader.Styles()); diff != "" {
		t.Errorf("Styles() mismatch (-want +got):\n%s", diff)
	}
}

// ---------------------------------------------------------------------------
// TestFilesystemLoader - Custom style directories
// ---------------------------------------------------------------------------

func TestNewFilesystemLoader(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"valid directory", dir, false},
		{"empty", "", true},
		{"missing", filepath.Join(dir, "missing"), true},
		{"regular file", file, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewFilesystemLoader(tt.path)
			if tt.wantErr != (err != nil) {
				t.Fatalf("NewFilesystemLoader(%q) = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidBasePath) {
				t.Errorf("error = %v, want ErrInvalidBasePath", err)
			}
		})
	}
}

func TestFilesystemLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeStyle(t, base, "brand", "body { color: teal }")

	loader, err := NewFilesystemLoader(base)
	if err != nil {
		t.Fatal(err)
	}

	css, err := loader.LoadStyle("brand")
	if err != nil || css != "body { color: teal }" {
		t.Errorf("LoadStyle(brand) = (%q, %v)", css, err)
	}
	if _, err := loader.LoadStyle("absent"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle(absent) error = %v, want ErrStyleNotFound", err)
	}
	if got := loader.Styles(); !cmp.Equal(got, []string{"brand"}) {
		t.Errorf("Styles() = %v, want [brand]", got)
	}
}

func TestFilesystemLoader_SymlinkEscape(t *testing.T) {
	t.Parallel()

	outside := t.TempDir()
	secret := filepath.Join(outside, "secret.css")
	if err := os.WriteFile(secret, []byte("secret"), 0o644); err != nil {
		t.Fatal(err)
	}

	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "styles"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(secret, filepath.Join(base, "styles", "leak.css")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	loader, err := NewFilesystemLoader(base)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := loader.LoadStyle("leak"); !errors.Is(err, ErrPathTraversal) {
		t.Errorf("LoadStyle(leak) error = %v, want ErrPathTraversal", err)
	}
}

// ---------------------------------------------------------------------------
// TestStyleResolver - Custom-first lookup with embedded fallback
// ---------------------------------------------------------------------------

func TestStyleResolver(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	writeStyle(t, base, "default", "body { color: red }")
	writeStyle(t, base, "brand", "body { color: teal }")

	r, err := NewStyleResolver(base)
	if err != nil {
		t.Fatal(err)
	}
	if !r.HasCustomLoader() {
		t.Fatal("HasCustomLoader() = false")
	}

	tests := []struct {
		name    string
		style   string
		want    string
		wantErr error
	}{
		{"custom overrides embedded", "default", "body { color: red }", nil},
		{"custom only", "brand", "body { color: teal }", nil},
		{"falls back to embedded", "minimal", "Georgia", nil},
		{"missing everywhere", "absent", "", ErrStyleNotFound},
		{"invalid name not retried", "a.b", "", ErrInvalidAssetName},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			css, err := r.LoadStyle(tt.style)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("LoadStyle(%q) error = %v, want %v", tt.style, err, tt.wantErr)
			}
			if !strings.Contains(css, tt.want) {
				t.Errorf("LoadStyle(%q) = %q, want it to contain %q", tt.style, css, tt.want)
			}
		})
	}

	if diff := cmp.Diff([]string{"brand", "default", "minimal"}, r.Styles()); diff != "" {
		t.Errorf("Styles() mismatch (-want +got):\n%s", diff)
	}
}

func TestStyleResolver_EmbeddedOnly(t *testing.T) {
	t.Parallel()

	r, err := NewStyleResolver("")
	if err != nil {
		t.Fatal(err)
	}
	if r.HasCustomLoader() {
		t.Error("HasCustomLoader() = true without base path")
	}
	if _, err := r.LoadStyle(DefaultStyle); err != nil {
		t.Errorf("LoadStyle(default) error = %v", err)
	}

	if _, err := NewStyleResolver(filepath.Join(t.TempDir(), "missing")); !errors.Is(err, ErrInvalidBasePath) {
		t.Errorf("NewStyleResolver(missing) error = %v, want ErrInvalidBasePath", err)
	}
}
