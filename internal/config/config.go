package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

type Config struct {
	Format  string   `json:"format"`
	Cache   bool     `json:"cache"`
	Exclude []string `json:"exclude"`
}

func Default() Config {
	return Config{
		Format: "table",
		Cache:  true,
	}
}

// Load searches upwards from startDir for a .contractquard.json and merges
// it over the defaults. startDir may be a file path; its directory is used.
func Load(startDir string) (Config, string, error) {
	cfg := Default()
	dir := startDir
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	for {
		candidate := filepath.Join(dir, ".contractquard.json")
		if _, err := os.Stat(candidate); err == nil {
			b, err := os.ReadFile(candidate)
			if err != nil {
				return cfg, candidate, err
			}
			_ = json.Unmarshal(b, &cfg)
			return cfg, candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir { // reached root
			break
		}
		dir = parent
	}
	return cfg, "", nil
}
