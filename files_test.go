// Copyright © 2020, 2026 Yoshiki Shibata. All rights reserved.

package lazy

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileLines(t *testing.T) {
	path := writeTempFile(t, "one\ntwo\nthree\n")

	seq, err := FileLines(path)
	if err != nil {
		t.Fatalf("FileLines() err = %v, want nil", err)
	}

	got := ToArray[string](seq)
	want := []string{"one", "two", "three"}
	if !equalStrings(got, want) {
		t.Errorf("FileLines() = %v, want %v", got, want)
	}
}

func TestFileLinesMissingFile(t *testing.T) {
	if _, err := FileLines(filepath.Join(t.TempDir(), "does-not-exist")); err == nil {
		t.Errorf("FileLines() on a missing file returned nil error, want an error")
	}
}

func TestFileLinesIsReiterable(t *testing.T) {
	path := writeTempFile(t, "a\nb\n")

	seq, err := FileLines(path)
	if err != nil {
		t.Fatalf("FileLines() err = %v, want nil", err)
	}

	first := ToArray[string](seq)
	second := ToArray[string](seq)
	if !equalStrings(first, second) {
		t.Errorf("FileLines() pass 1 = %v, pass 2 = %v, want equal (re-iterable)", first, second)
	}
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lines.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() err = %v", err)
	}
	return path
}
