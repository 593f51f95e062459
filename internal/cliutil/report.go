package cliutil

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/pretty"
)

// PrettyJSON marshals v to JSON and re-indents it with tidwall/pretty
// (two-space style, matching gofmt's usual indent) for CLI `--json` output.
func PrettyJSON(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("cliutil: marshaling report: %w", err)
	}
	opts := *pretty.DefaultOptions
	opts.Indent = "  "
	return pretty.PrettyOptions(raw, &opts), nil
}
