package source

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestWalk(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"b/B.java":             "package b;",
		"a/A.java":             "package a;",
		"a/deep/nested/C.java": "package a.deep.nested;",
		"README.md":            "# readme",
		"a/A.java.bak":         "package a;",
		"a/Notes.txt":          "x",
	})

	got, err := Walk(root, ".java", nil)
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	want := []string{
		filepath.Join(root, "a", "A.java"),
		filepath.Join(root, "a", "deep", "nested", "C.java"),
		filepath.Join(root, "b", "B.java"),
	}
	if !slices.Equal(got, want) {
		t.Errorf("Walk() = %v, want %v", got, want)
	}
}

func TestWalkEmptyTree(t *testing.T) {
	got, err := Walk(t.TempDir(), ".java", nil)
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Walk() = %v, want empty", got)
	}
}

func TestWalkMissingRoot(t *testing.T) {
	_, err := Walk(filepath.Join(t.TempDir(), "missing"), ".java", nil)
	if err == nil {
		t.Fatal("Walk() on missing root should fail")
	}
}

func TestWalkSkipsDirectoryNamedLikeSource(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "weird.java"), 0o755); err != nil {
		t.Fatal(err)
	}
	got, err := Walk(root, ".java", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("Walk() = %v, want no directories", got)
	}
}

func TestWalkFollowsSymlinkedFiles(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()
	writeTree(t, root, map[string]string{"a/A.java": "package a;"})
	writeTree(t, outside, map[string]string{"Shared.java": "package shared;"})

	link := filepath.Join(root, "a", "Shared.java")
	if err := os.Symlink(filepath.Join(outside, "Shared.java"), link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	dangling := filepath.Join(root, "a", "Gone.java")
	if err := os.Symlink(filepath.Join(outside, "Gone.java"), dangling); err != nil {
		t.Fatal(err)
	}

	var failed []string
	got, err := Walk(root, ".java", func(path string, err error) {
		failed = append(failed, path)
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	want := []string{filepath.Join(root, "a", "A.java"), link}
	if !slices.Equal(got, want) {
		t.Errorf("Walk() = %v, want %v", got, want)
	}
	if !slices.Equal(failed, []string{dangling}) {
		t.Errorf("onErr paths = %v, want [%s]", failed, dangling)
	}
}

func TestFilePackageName(t *testing.T) {
	tests := []struct {
		name string
		file File
		want string
	}{
		{"declared", File{Package: "com.acme", HasPackage: true}, "com.acme"},
		{"absent", File{}, "default"},
		{"declared but empty", File{HasPackage: true}, "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.file.PackageName(); got != tt.want {
				t.Errorf("PackageName() = %q, want %q", got, tt.want)
			}
		})
	}
}
