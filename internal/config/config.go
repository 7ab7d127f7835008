// Package config layers defaults, an optional YAML file and command-line flags
// into the options for a single countdown.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/brocode/goat/internal/validate"
)

const (
	// DefaultTitle labels the display when neither file nor flag sets one.
	DefaultTitle = "GOAT"
	// DefaultPath is read when present; a missing default file is not an error.
	DefaultPath = "~/.config/goat/config.yaml"
	// EnvPath overrides DefaultPath.
	EnvPath = "GOAT_CONFIG"

	maxFileSize = 1024 * 1024
)

// File is the on-disk configuration.
type File struct {
	Title    string   `yaml:"title" validate:"max=128"`
	Mappings []string `yaml:"mappings"`
	NoColor  bool     `yaml:"no_color"`
}

// Flags are the command-line values; TitleSet distinguishes an explicit empty title.
type Flags struct {
	Seconds  uint32
	Title    string
	TitleSet bool
	Mappings []string
	NoColor  bool
}

// Options is the merged configuration handed to the countdown.
type Options struct {
	Duration time.Duration `validate:"gte=0"`
	Title    string        `validate:"max=128"`
	Mappings []string
	NoColor  bool
}

// Load reads the config file at path. An empty path falls back to $GOAT_CONFIG
// and then DefaultPath; only an explicitly named file must exist.
func Load(path string) (File, error) {
	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvPath)
		explicit = path != ""
	}
	if !explicit {
		path = DefaultPath
	}

	expanded, err := expandTilde(path)
	if err != nil {
		return File{}, err
	}

	logrus.Debug("Loading config file from: ", expanded)
	data, err := readFile(expanded)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			logrus.Debug("No config file, using defaults")
			return File{}, nil
		}
		return File{}, fmt.Errorf("read config %s: %w", expanded, err)
	}

	f, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("config %s: %w", expanded, err)
	}
	return f, nil
}

// Parse decodes and validates YAML config data. Unknown keys are rejected.
func Parse(data []byte) (File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := validate.Struct(f); err != nil {
		return File{}, fmt.Errorf("invalid config: %w", err)
	}
	return f, nil
}

// Merge layers flags over the file over defaults. File mappings come first so
// a flag mapping for the same key wins.
func Merge(f File, fl Flags) (Options, error) {
	title := DefaultTitle
	switch {
	case fl.TitleSet:
		title = fl.Title
	case f.Title != "":
		title = f.Title
	}

	mappings := make([]string, 0, len(f.Mappings)+len(fl.Mappings))
	mappings = append(mappings, f.Mappings...)
	mappings = append(mappings, fl.Mappings...)

	opts := Options{
		Duration: time.Duration(fl.Seconds) * time.Second,
		Title:    title,
		Mappings: mappings,
		NoColor:  f.NoColor || fl.NoColor,
	}
	if err := validate.Struct(opts); err != nil {
		return Options{}, fmt.Errorf("invalid options: %w", err)
	}
	return opts, nil
}

func readFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, err
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}
	return io.ReadAll(io.LimitReader(file, maxFileSize))
}

// expandTilde expands the tilde in a path to the user's home directory.
func expandTilde(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}
