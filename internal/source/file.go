package source

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// File lists channels from a newline-separated file. Blank lines and lines
// starting with '#' are ignored. Params: path.
type File struct {
	name string
	raw  string
	path string
}

// NewFile builds a File source from a parsed spec.
func NewFile(spec Spec) (*File, error) {
	path := strings.Join(spec.Params, ":")
	if path == "" {
		return nil, fmt.Errorf("source %s: missing path", spec.Name)
	}
	return &File{name: spec.Name, raw: spec.Raw, path: path}, nil
}

func (f *File) Name() string         { return f.name }
func (f *File) ConfigString() string { return f.raw }

// Path returns the channel list location.
func (f *File) Path() string { return f.path }

// Establish checks the file is readable.
func (f *File) Establish(ctx context.Context) (Session, error) {
	info, err := os.Stat(f.path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", f.path)
	}
	return fileSession{path: f.path}, nil
}

type fileSession struct{ path string }

// Channels reads the file in order.
func (s fileSession) Channels(ctx context.Context) ([]string, error) {
	fh, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	channels := []string{}
	scanner := bufio.NewScanner(fh)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		channels = append(channels, line)
	}
	return channels, scanner.Err()
}

func (s fileSession) Close() error { return nil }

// FileConfigString builds the config string for a channel-list file.
func FileConfigString(name, path string) string {
	return name + ";" + TypeFile + ":" + path
}
