package circular

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/dvholsteijn/couplingviz/pkg/errors"
)

// FilePrefix starts the name of every written image.
const FilePrefix = "graph_circular_layout_"

// SanitizeTitle makes title safe for a file name. It decomposes accented
// characters, drops everything outside ASCII, and replaces each run of
// characters other than letters, digits, '-', '_' and '.' with one '_'.
func SanitizeTitle(title string) string {
	var b strings.Builder
	inRun := false
	for _, r := range norm.NFD.String(title) {
		if r >= utf8.RuneSelf {
			continue
		}
		if isFileNameRune(r) {
			b.WriteRune(r)
			inRun = false
			continue
		}
		if !inRun {
			b.WriteByte('_')
			inRun = true
		}
	}
	return b.String()
}

func isFileNameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-', r == '_', r == '.':
		return true
	}
	return false
}

// FileName returns the image file name for a run at now.
// A title that sanitizes to nothing is left out.
func FileName(title string, now time.Time) string {
	if t := SanitizeTitle(title); t != "" {
		return fmt.Sprintf("%s%s_%d.svg", FilePrefix, t, now.UnixMilli())
	}
	return fmt.Sprintf("%s%d.svg", FilePrefix, now.UnixMilli())
}

// WriteFile writes data to dir under [FileName] and returns the full path.
func WriteFile(dir, title string, data []byte, now time.Time) (string, error) {
	path := filepath.Join(dir, FileName(title, now))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", path)
	}
	return path, nil
}
