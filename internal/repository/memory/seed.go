package memory

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed seed.json
var seedJSON []byte

// SeedDataset returns the mock dataset shipped with the binary
func SeedDataset() (Dataset, error) {
	var data Dataset
	if err := json.Unmarshal(seedJSON, &data); err != nil {
		return Dataset{}, fmt.Errorf("failed to decode seed dataset: %w", err)
	}
	return data, nil
}
