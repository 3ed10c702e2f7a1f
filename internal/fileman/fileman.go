// Package fileman is the path/file collaborator of the diagnostics engine.
// It persists rendered transcripts for the Console (the one operation the
// core depends on) and exposes the file probes whose failure values the
// Console knows how to render.
package fileman

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/harrison/conslog/internal/filelock"
)

// FileMan provides path and file access. The zero value is ready to use;
// it implements console.FileWriter.
type FileMan struct{}

// New returns a ready FileMan.
func New() FileMan {
	return FileMan{}
}

// Exists reports whether path exists.
func (FileMan) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir reports whether path is an existing directory.
func (FileMan) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// IsFile reports whether path names a file. Anything that is not a
// directory counts as a file, matching the collaborator contract.
func (f FileMan) IsFile(path string) bool {
	return !f.IsDir(path)
}

// Abs resolves path against the current working directory.
func (FileMan) Abs(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &Error{Reason: FailedToGetCurrentDirectory}
	}
	return abs, nil
}

// ReadFile reads the whole file at path as a string.
func (f FileMan) ReadFile(path string) (string, error) {
	if err := f.ensureFile(path); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", &Error{Reason: FailedToReadFile, Path: path}
	}
	return string(data), nil
}

// ReadLines reads the file at path as a sequence of lines, without
// trailing newlines.
func (f FileMan) ReadLines(path string) ([]string, error) {
	if err := f.ensureFile(path); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, &Error{Reason: FailedToOpenFile, Path: path}
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, &Error{Reason: FailedToReadFile, Path: path}
	}
	return lines, nil
}

// LastModified returns the modification time of path.
func (FileMan) LastModified(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, &Error{Reason: FailedToOpenFileOrDirectory, Path: path}
	}
	if info.ModTime().IsZero() {
		return time.Time{}, &Error{Reason: MetadataIsNotAvailableOnThisPlatform, Path: path}
	}
	return info.ModTime(), nil
}

// ChangeExtension rewrites the extension with plain string semantics: a
// path without a dot gets "." + newExt appended, otherwise everything
// after the last dot is replaced by newExt.
func (FileMan) ChangeExtension(path, newExt string) string {
	i := strings.LastIndex(path, ".")
	if i < 0 {
		return path + "." + newExt
	}
	return path[:i+1] + newExt
}

// WriteFile writes content to path, replacing any previous file. The write
// happens under a sibling flock and lands via an atomic rename, so another
// process never observes a partial transcript.
func (f FileMan) WriteFile(path, content string) error {
	lock := filelock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return &Error{Reason: FailedToOpenFile, Path: path}
	}
	defer lock.Unlock()

	if err := atomicWrite(path, []byte(content)); err != nil {
		return &Error{Reason: FailedToWriteFile, Path: path}
	}
	return nil
}

// atomicWrite writes data through a uniquely named temp file in the target
// directory and renames it over path.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// ensureFile verifies that path exists and is not a directory.
func (f FileMan) ensureFile(path string) error {
	if !f.Exists(path) {
		return &Error{Reason: PathDoesNotExist, Path: path}
	}
	if f.IsDir(path) {
		return &Error{Reason: ExpectedFilePathNotDirectoryPath, Path: path}
	}
	return nil
}
