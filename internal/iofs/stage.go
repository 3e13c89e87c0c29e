package iofs

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	"github.com/gnames/gnsys"
	"github.com/gnames/gnuuid"
)

// Stage is an output file under construction. Data go to a scratch file
// that belongs to this Stage only. Commit moves the finished file over
// the destination, Discard removes it. The destination is not touched
// before Commit.
type Stage struct {
	dest string
	file *os.File
	done bool
}

// NewStage creates a scratch file for dest inside scratchDir. The
// scratch name starts with a UUIDv5 of the absolute destination, so
// leftovers of interrupted runs can be traced to their outputs.
func NewStage(scratchDir, dest string) (*Stage, error) {
	if err := gnsys.MakeDir(scratchDir); err != nil {
		return nil, CreateDirError(scratchDir, err)
	}
	abs, err := filepath.Abs(dest)
	if err != nil {
		return nil, StageFileError(dest, err)
	}
	prefix := gnuuid.New(abs).String() + "-"
	f, err := os.CreateTemp(scratchDir, prefix+"*")
	if err != nil {
		return nil, StageFileError(dest, err)
	}
	return &Stage{dest: dest, file: f}, nil
}

// Write appends data to the scratch file.
func (s *Stage) Write(p []byte) (int, error) {
	return s.file.Write(p)
}

// Dest returns the destination path.
func (s *Stage) Dest() string {
	return s.dest
}

// Commit closes the scratch file and renames it over the destination.
// If scratch and destination are on different file systems, the data
// are copied next to the destination first and renamed from there.
func (s *Stage) Commit() error {
	if s.done {
		return nil
	}
	defer s.Discard()

	err := s.file.Chmod(0644)
	if err == nil {
		err = s.file.Sync()
	}
	if cerr := s.file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return StageFileError(s.dest, err)
	}

	err = os.Rename(s.file.Name(), s.dest)
	if errors.Is(err, syscall.EXDEV) {
		slog.Debug("Scratch and destination are on different devices",
			"scratch", s.file.Name(), "dest", s.dest)
		err = commitAcross(s.file.Name(), s.dest)
		if err == nil {
			_ = os.Remove(s.file.Name())
		}
	}
	if err != nil {
		return CommitFileError(s.dest, err)
	}
	s.done = true
	return nil
}

// Discard removes the scratch file of an uncommitted Stage. It is safe
// to call more than once and after Commit.
func (s *Stage) Discard() {
	if s.done {
		return
	}
	s.done = true
	_ = s.file.Close()
	if err := os.Remove(s.file.Name()); err != nil &&
		!errors.Is(err, os.ErrNotExist) {
		slog.Warn("Cannot remove scratch file",
			"file", s.file.Name(), "error", err)
	}
}

// commitAcross copies src to a temporary file in the directory of dest
// and renames it to dest. The temporary file is removed on failure.
func commitAcross(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	dir, base := filepath.Split(dest)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	_, err = io.Copy(tmp, in)
	if err == nil {
		err = tmp.Chmod(0644)
	}
	if err == nil {
		err = tmp.Sync()
	}
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(tmpPath, dest)
	}
	if err != nil {
		_ = os.Remove(tmpPath)
		return CopyFileError(dest, err)
	}
	return nil
}

// WriteFile stages dest, lets write fill it through a buffered writer
// and commits the result if write succeeds. On any error the scratch
// file is removed and dest keeps its previous state.
func WriteFile(scratchDir, dest string, write func(io.Writer) error) error {
	st, err := NewStage(scratchDir, dest)
	if err != nil {
		return err
	}
	defer st.Discard()

	w := bufio.NewWriter(st)
	if err = write(w); err != nil {
		return err
	}
	if err = w.Flush(); err != nil {
		return StageFileError(dest, err)
	}
	return st.Commit()
}

// WriteOutput behaves as WriteFile, but sends the data to stdout when
// dest is empty or "-".
func WriteOutput(
	scratchDir, dest string,
	stdout io.Writer,
	write func(io.Writer) error,
) error {
	if dest != "" && dest != "-" {
		return WriteFile(scratchDir, dest, write)
	}
	w := bufio.NewWriter(stdout)
	if err := write(w); err != nil {
		return err
	}
	return w.Flush()
}
