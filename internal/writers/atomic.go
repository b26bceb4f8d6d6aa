package writers

import (
	"io"
	"os"
	"path/filepath"
)

// stageFile renders into a temp file beside path and returns its name. The
// caller renames it into place or removes it.
func stageFile(path string, render func(io.Writer) error) (tmpName string, err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()
	if err = render(tmp); err != nil {
		return "", err
	}
	if err = tmp.Close(); err != nil {
		return "", err
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return "", err
	}
	return tmp.Name(), nil
}

// writeFileAtomic renders path via a temp file and a rename, so readers
// never observe a half-written artifact.
func writeFileAtomic(path string, render func(io.Writer) error) error {
	return writeFilesAtomic([]string{path}, []func(io.Writer) error{render})
}

// writeFilesAtomic stages every file before renaming any of them. If a render
// or rename fails, no file of the set is left at its final path.
func writeFilesAtomic(paths []string, renders []func(io.Writer) error) error {
	tmps := make([]string, 0, len(paths))
	cleanup := func(from int) {
		for _, t := range tmps[from:] {
			_ = os.Remove(t)
		}
	}
	for i, p := range paths {
		t, err := stageFile(p, renders[i])
		if err != nil {
			cleanup(0)
			return err
		}
		tmps = append(tmps, t)
	}
	for i, t := range tmps {
		if err := os.Rename(t, paths[i]); err != nil {
			for _, done := range paths[:i] {
				_ = os.Remove(done)
			}
			cleanup(i)
			return err
		}
	}
	return nil
}
