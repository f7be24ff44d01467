package source

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Walk returns every regular file under root whose name ends in ext, in
// lexical order. A symbolic link counts when its target is a regular file;
// linked directories are not descended. Entries that cannot be read,
// including dangling links, are passed to onErr (if not nil) and skipped;
// only a failure to read root itself is returned.
func Walk(root, ext string, onErr func(path string, err error)) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			if onErr != nil {
				onErr(path, err)
			}
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), ext) {
			return nil
		}
		mode := d.Type()
		if mode&fs.ModeSymlink != 0 {
			info, err := os.Stat(path)
			if err != nil {
				if onErr != nil {
					onErr(path, err)
				}
				return nil
			}
			mode = info.Mode()
		}
		if mode.IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}
