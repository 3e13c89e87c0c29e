package iofs

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

var (
	errDestIsDir  = errors.New("destination is a directory")
	errParentFile = errors.New("parent is not a directory")
)

// CommitAll commits stages as a group. Destinations are checked before
// any of them changes. If a commit fails, destinations committed before
// it get their previous content back, or are removed if they did not
// exist. Uncommitted stages are discarded.
func CommitAll(stages ...*Stage) error {
	defer func() {
		for _, st := range stages {
			st.Discard()
		}
	}()

	for _, st := range stages {
		if err := CheckDest(st.dest); err != nil {
			return err
		}
	}

	var done []backup
	defer func() {
		for _, b := range done {
			b.release()
		}
	}()

	for _, st := range stages {
		b, err := newBackup(st.dest)
		if err != nil {
			rollback(done)
			return CommitFileError(st.dest, err)
		}
		if err = st.Commit(); err != nil {
			b.release()
			rollback(done)
			return err
		}
		done = append(done, b)
	}
	return nil
}

// CheckDest verifies that a file can be written to dest: its directory
// exists and accepts new files, and dest is not a directory.
func CheckDest(dest string) error {
	dir, base := filepath.Split(dest)
	if dir == "" {
		dir = "."
	}
	fi, err := os.Stat(dir)
	if err != nil {
		return CommitFileError(dest, err)
	}
	if !fi.IsDir() {
		return CommitFileError(dest, errParentFile)
	}

	fi, err = os.Stat(dest)
	if err == nil && fi.IsDir() {
		return CommitFileError(dest, errDestIsDir)
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return CommitFileError(dest, err)
	}

	f, err := os.CreateTemp(dir, "."+base+".check.*")
	if err != nil {
		return CommitFileError(dest, err)
	}
	_ = f.Close()
	_ = os.Remove(f.Name())
	return nil
}

// backup keeps the content of a destination until a group commit is
// over. An empty path means the destination did not exist.
type backup struct {
	dest string
	path string
}

// newBackup hard-links dest to a hidden file beside it, or copies it
// when links are not supported.
func newBackup(dest string) (backup, error) {
	res := backup{dest: dest}
	if _, err := os.Lstat(dest); errors.Is(err, os.ErrNotExist) {
		return res, nil
	}

	dir, base := filepath.Split(dest)
	if dir == "" {
		dir = "."
	}
	f, err := os.CreateTemp(dir, "."+base+".bak.*")
	if err != nil {
		return res, err
	}
	path := f.Name()
	_ = f.Close()
	_ = os.Remove(path)

	if err = os.Link(dest, path); err != nil {
		if err = copyFile(dest, path); err != nil {
			_ = os.Remove(path)
			return res, err
		}
	}
	res.path = path
	return res, nil
}

// restore puts the backed up content back to the destination.
func (b backup) restore() error {
	if b.path == "" {
		return os.Remove(b.dest)
	}
	return os.Rename(b.path, b.dest)
}

func (b backup) release() {
	if b.path == "" {
		return
	}
	if err := os.Remove(b.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("Cannot remove backup file", "file", b.path, "error", err)
	}
}

func rollback(done []backup) {
	for i := len(done) - 1; i >= 0; i-- {
		if err := done[i].restore(); err != nil {
			slog.Error("Cannot restore destination",
				"file", done[i].dest, "error", err)
		}
	}
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	_, err = io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}
