package errors

import (
	"os"
	"strings"
	"unicode"
)

// ValidateDirectory checks that path names an existing directory.
// The code is used for every failure so callers can report which
// argument was wrong.
func ValidateDirectory(code Code, path string) error {
	if path == "" {
		return New(code, "path cannot be empty")
	}
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(code, "path contains invalid characters")
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return Wrap(code, err, "cannot access %s", path)
	}
	if !info.IsDir() {
		return New(code, "not a directory: %s", path)
	}
	return nil
}

// ValidateSourceRoot validates the directory that will be scanned.
func ValidateSourceRoot(path string) error {
	return ValidateDirectory(ErrCodeInvalidPath, path)
}

// ValidateOutputDir validates the directory that receives the image artifact.
func ValidateOutputDir(path string) error {
	return ValidateDirectory(ErrCodeInvalidPath, path)
}

// ValidateExtension validates a source-file extension such as ".java".
func ValidateExtension(ext string) error {
	if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
		return New(ErrCodeInvalidConfig, "extension must start with '.': %q", ext)
	}
	if strings.ContainsAny(ext, "/\\") {
		return New(ErrCodeInvalidConfig, "extension cannot contain path separators: %q", ext)
	}
	return nil
}
