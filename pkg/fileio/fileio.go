// Package fileio reads and writes a buffer's lines to disk.
package fileio

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// Files is the file system surface the editor core depends on.
type Files interface {
	ReadLines(path string) ([]string, error)
	WriteLines(path string, lines []string) error
	Exists(path string) bool
	IsReadOnly(path string) bool
	MkdirAll(dir string) error
}

// maxLineSize bounds a single line read by ReadLines.
const maxLineSize = 16 * 1024 * 1024

// Disk implements Files on the local file system.
type Disk struct{}

var _ Files = Disk{}

// ReadLines reads path and splits it on line endings ("\n" or "\r\n").
// A trailing line ending does not produce an extra empty line.
func (Disk) ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

// WriteLines overwrites path with each line followed by '\n'.
func (Disk) WriteLines(path string, lines []string) error {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(sb.String()), 0644)
}

// Exists reports whether path names an existing regular file.
func (Disk) Exists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsReadOnly reports whether path exists but cannot be written by this process.
func (Disk) IsReadOnly(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if info.Mode().Perm()&0200 == 0 {
		return true
	}
	return !writable(path)
}

// MkdirAll creates dir and any missing parents.
func (Disk) MkdirAll(dir string) error {
	err := os.MkdirAll(dir, 0755)
	if err != nil && !errors.Is(err, fs.ErrExist) {
		return err
	}
	return nil
}
