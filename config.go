package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// ServerConfig holds everything configurable about the process: the
// HTTP listen port, the directory to serve, and the optional TFTP
// frontend. Immutable once main has assembled it.
type ServerConfig struct {
	Port        string `toml:"port"`
	RootDir     string `toml:"root_dir"`
	TFTPEnabled bool   `toml:"tftp"`
	TFTPAddr    string `toml:"tftp_addr"`
}

func DefaultConfig() ServerConfig {
	return ServerConfig{TFTPAddr: ":69"}
}

// LoadConfig reads a TOML config file. Fields absent from the file keep
// their defaults.
func LoadConfig(path string) (ServerConfig, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return ServerConfig{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
