package errors

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "A.java")
	if err := os.WriteFile(file, []byte("package a;"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"existing directory", dir, false},
		{"empty path", "", true},
		{"missing path", filepath.Join(dir, "missing"), true},
		{"regular file", file, true},
		{"control character", "src\x00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSourceRoot(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateSourceRoot(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("code = %q, want %q", GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}

func TestValidateExtension(t *testing.T) {
	tests := []struct {
		ext     string
		wantErr bool
	}{
		{".java", false},
		{".kt", false},
		{"java", true},
		{".", true},
		{"", true},
		{"./x", true},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			err := ValidateExtension(tt.ext)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateExtension(%q) error = %v, wantErr %v", tt.ext, err, tt.wantErr)
			}
		})
	}
}
