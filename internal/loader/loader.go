// Package loader reads client performance reports from JSON files.
package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/seolens/seolens/schema"
)

// LoadScoreInput reads a performance report from the given path. A path of
// "-" reads from stdin.
func LoadScoreInput(path string) (*schema.ScoreInput, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read input %s: %w", path, err)
	}
	return ParseScoreInput(data)
}

// ParseScoreInput decodes a performance report from raw JSON bytes.
func ParseScoreInput(data []byte) (*schema.ScoreInput, error) {
	var input schema.ScoreInput
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("cannot parse input JSON: %w", err)
	}
	return &input, nil
}
