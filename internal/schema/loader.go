package schema

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// LoadFile reads and parses a YAML schema file from path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read schema file %s", path)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "schema file %s", path)
	}

	return f, nil
}

// Parse parses YAML data into a File. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	err := dec.Decode(&f)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "failed to parse schema YAML")
	}

	applyDefaults(&f)

	return &f, nil
}

// LoadTree is LoadFile followed by Build.
func LoadTree(path string) (*Node, error) {
	f, err := LoadFile(path)
	if err != nil {
		return nil, err
	}

	root, err := f.Build()
	if err != nil {
		return nil, errors.Wrapf(err, "schema file %s", path)
	}

	return root, nil
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	data, err := yaml.Marshal(f)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode schema YAML")
	}

	return data, nil
}

// WriteFile writes f to path as YAML. An existing file is only replaced
// when force is set.
func WriteFile(path string, f *File, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.WithHint(
			errors.Newf("schema file %s already exists", path),
			"use --force to overwrite it")
	}

	data, err := Marshal(f)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "creating schema directory")
	}

	return errors.Wrapf(os.WriteFile(path, data, 0o644), "writing schema file %s", path)
}

func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = SchemaVersion
	}
}
