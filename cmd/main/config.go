package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
	"github.com/pipeworks/syllawalk/pkg/walker"
)

// ServerConfig holds the configuration for the HTTP server and corpus
// loading.
type ServerConfig struct {
	ServerAddr string `json:"server_addr"`
	LogLevel   string `json:"log_level"`
	// CorpusDBPath points at a corpus SQLite database; when set it takes
	// precedence over CorpusJSONPath.
	CorpusDBPath   string `json:"corpus_db_path"`
	CorpusJSONPath string `json:"corpus_json_path"`
	// MaxNeighborDistance is the Hamming radius the neighbor graph is built
	// with at startup (1-3). Higher values allow more diverse walks but
	// slower initialization.
	MaxNeighborDistance int    `json:"max_neighbor_distance"`
	IndexPath           string `json:"index_path"`
}

// Config is the top-level configuration struct.
type Config struct {
	Server *ServerConfig `json:"server_config"`
	// Profiles are extra walk presets registered on top of the built-ins.
	Profiles []walker.WalkProfile `json:"profiles"`
}

// DefaultServerConfig creates a server configuration with default values.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		ServerAddr:          ":5000",
		LogLevel:            "info",
		CorpusDBPath:        "./data/corpus.db?_journal_mode=WAL&_busy_timeout=5000",
		CorpusJSONPath:      "",
		MaxNeighborDistance: 3,
		IndexPath:           "./data/index.html",
	}
}

// LoadConfig reads the configuration from a JSON file at the given path.
// If the file doesn't exist, it creates one with default values.
func LoadConfig(path string) (*Config, error) {
	config := &Config{
		Server: DefaultServerConfig(),
	}

	file, err := os.ReadFile(path)
	if err != nil {
		// If the file doesn't exist, create it with the default config.
		if os.IsNotExist(err) {
			var data []byte
			data, err = json.MarshalIndent(config, "", "  ")
			if err != nil {
				return nil, fmt.Errorf("failed to marshal default config: %w", err)
			}
			if err = atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
				// Log a warning instead of failing, as the server can still run with defaults.
				fmt.Printf("warning: failed to write default config file: %v\n", err)
			}
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err = json.Unmarshal(file, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}
