package smp

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strings"

	"github.com/cryptotoy/smp-go/pkg/smp/fiatshamir"
	"github.com/cryptotoy/smp-go/pkg/smp/group"
)

// Group and hash names accepted in a Config.
const (
	GroupMODP1536 = "modp1536"
	GroupCustom   = "custom"

	HashSHA256  = "sha256"
	HashSHA3256 = "sha3-256"
)

// Config selects the public parameters both parties must agree on.
type Config struct {
	Group      string `json:"group"`
	ModulusHex string `json:"modulus_hex,omitempty"`
	Generator  string `json:"generator,omitempty"`
	Hash       string `json:"hash"`
}

// DefaultConfig returns the RFC 3526 1536-bit group with SHA-256 challenges.
func DefaultConfig() *Config {
	return &Config{Group: GroupMODP1536, Hash: HashSHA256}
}

// LoadConfig reads and validates a JSON configuration file. Missing fields
// take their defaults.
func LoadConfig(path string) (*Config, error) {
	absPath, err := SecurePath(path)
	if err != nil {
		return nil, fmt.Errorf("secure path: %w", err)
	}
	data, err := os.ReadFile(absPath) // #nosec G304 -- absPath validated by SecurePath
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SecurePath validates that a file path doesn't escape the working directory.
func SecurePath(path string) (string, error) {
	clean := filepath.Clean(path)
	absPath, err := filepath.Abs(clean)
	if err != nil {
		return "", fmt.Errorf("absolute path: %w", err)
	}
	base, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	rel, err := filepath.Rel(base, absPath)
	if err != nil {
		return "", fmt.Errorf("relative path: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", fmt.Errorf("path %q escapes working directory", path)
	}
	return absPath, nil
}

// Validate checks names and, for a custom group, the modulus and generator.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("nil config")
	}
	if _, err := c.hashFunc(); err != nil {
		return err
	}
	_, err := c.ModPGroup()
	return err
}

// ModPGroup builds the configured group. Custom parameters are checked by
// group.NewModPGroup.
func (c *Config) ModPGroup() (*group.ModPGroup, error) {
	switch c.Group {
	case "", GroupMODP1536:
		return group.RFC3526MODP1536(), nil
	case GroupCustom:
		p, ok := new(big.Int).SetString(strings.TrimPrefix(c.ModulusHex, "0x"), 16)
		if !ok {
			return nil, fmt.Errorf("%w: modulus_hex is not a hex integer", ErrInvalidArgument)
		}
		gen := c.Generator
		if gen == "" {
			gen = "2"
		}
		g, ok := new(big.Int).SetString(gen, 10)
		if !ok {
			return nil, fmt.Errorf("%w: generator is not a decimal integer", ErrInvalidArgument)
		}
		return group.NewModPGroup(p, g)
	}
	return nil, fmt.Errorf("%w: unknown group %q", ErrInvalidArgument, c.Group)
}

// Options returns the session options implied by the configuration.
func (c *Config) Options() ([]Option, error) {
	h, err := c.hashFunc()
	if err != nil {
		return nil, err
	}
	return []Option{WithHash(h)}, nil
}

func (c *Config) hashFunc() (fiatshamir.HashFunc, error) {
	switch c.Hash {
	case "", HashSHA256:
		return fiatshamir.SHA256, nil
	case HashSHA3256:
		return fiatshamir.SHA3_256, nil
	}
	return nil, fmt.Errorf("%w: unknown hash %q", ErrInvalidArgument, c.Hash)
}
