package gen

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Manifest formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// WriteManifest serializes a plan in the given format ("yaml" or "json").
// An empty diagnostics block is omitted.
func WriteManifest(w io.Writer, p *Plan, format string) error {
	if p.Diagnostics != nil && p.Diagnostics.Len() == 0 {
		cp := *p
		cp.Diagnostics = nil
		p = &cp
	}

	switch strings.ToLower(format) {
	case FormatYAML, "yml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(p); err != nil {
			return errors.Wrap(err, "encoding manifest as YAML")
		}

		return errors.Wrap(enc.Close(), "encoding manifest as YAML")

	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return errors.Wrap(enc.Encode(p), "encoding manifest as JSON")

	default:
		return errors.Newf("unknown manifest format %q (expected yaml or json)", format)
	}
}

// WriteManifestFile writes the manifest to path, creating parent directories.
func WriteManifestFile(path string, p *Plan, format string) error {
	err := os.MkdirAll(filepath.Dir(path), dirPerm)
	if err != nil {
		return errors.Wrap(err, "creating manifest directory")
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
	if err != nil {
		return errors.Wrapf(err, "opening manifest %s", path)
	}

	if err := WriteManifest(f, p, format); err != nil {
		_ = f.Close()
		return err
	}

	return errors.Wrapf(f.Close(), "closing manifest %s", path)
}

// WriteUnitDirs creates the package directory of every unit so that a
// renderer can write the files in place.
func WriteUnitDirs(p *Plan) error {
	for _, u := range p.Units {
		dir := filepath.Dir(filepath.FromSlash(u.Path))

		err := os.MkdirAll(dir, dirPerm)
		if err != nil {
			return errors.Wrapf(err, "creating directory for unit %s", u.Entity)
		}
	}

	return nil
}
