package manifest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// ParseDelegate reads and parses a delegate package.json. Comments and
// trailing commas are tolerated; some registries republish manifests
// through tooling that leaves both behind.
func ParseDelegate(path string) (*Delegate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading delegate manifest %s: %w", path, err)
	}
	return parseDelegate(data, path)
}

func parseDelegate(data []byte, path string) (*Delegate, error) {
	var d Delegate
	if err := json.Unmarshal(jsonc.ToJSON(data), &d); err != nil {
		return nil, fmt.Errorf("parsing delegate manifest %s: %w", path, err)
	}
	return &d, nil
}
