// Package cliutil holds small pieces shared by the gifed command-line
// tools: profile-file loading and JSON report formatting. None of it is
// imported by the core gifed package.
package cliutil

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// Profile is the small set of options a JSON sidecar file can override.
// Rather than unmarshal into a schema-validated struct, fields are pulled
// individually with gjson — the sidecar is expected to carry at most a
// couple of fields and grow ad hoc.
type Profile struct {
	Verbose          bool
	ColorCountNotice int // probe flags a global palette at or above this size
}

// DefaultProfile is used when no --profile flag is given.
func DefaultProfile() Profile {
	return Profile{ColorCountNotice: 256}
}

// LoadProfile reads path and overlays any fields it sets onto
// DefaultProfile(). A missing "verbose" or "color_count_notice" key keeps
// the default for that field.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("cliutil: reading profile: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return Profile{}, fmt.Errorf("cliutil: %s is not valid JSON", path)
	}

	p := DefaultProfile()
	root := gjson.ParseBytes(data)
	if v := root.Get("verbose"); v.Exists() {
		p.Verbose = v.Bool()
	}
	if v := root.Get("color_count_notice"); v.Exists() {
		p.ColorCountNotice = int(v.Int())
	}
	return p, nil
}
