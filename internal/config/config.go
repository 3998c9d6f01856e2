// internal/config/config.go
package config

import (
	"fmt"
	"path/filepath"
	"time"
)

// DescribeStyle selects how a detached HEAD is named.
type DescribeStyle string

const (
	DescribeDefault  DescribeStyle = "default"  // git tag --points-at HEAD
	DescribeContains DescribeStyle = "contains" // git describe --contains HEAD
	DescribeBranch   DescribeStyle = "branch"   // git describe --contains --all HEAD
	DescribeDescribe DescribeStyle = "describe" // git describe HEAD
)

func (s DescribeStyle) Valid() bool {
	switch s {
	case DescribeDefault, DescribeContains, DescribeBranch, DescribeDescribe:
		return true
	}
	return false
}

type Config struct {
	// Prompt
	Fallback       bool          `yaml:"fallback"`
	Color          bool          `yaml:"color"`
	DescribeStyle  DescribeStyle `yaml:"describe_style"`
	HgHeads        bool          `yaml:"hg_heads"`
	CommandTimeout time.Duration `yaml:"command_timeout"`

	// Scanning
	ScanPaths      []string `yaml:"scan_paths"`
	IgnorePatterns []string `yaml:"ignore_patterns"`
	MaxDepth       int      `yaml:"max_depth"`
}

func NewConfig() *Config {
	return &Config{
		DescribeStyle: DescribeDefault,
		ScanPaths:     []string{},
		IgnorePatterns: []string{
			"**/node_modules/**",
			"**/vendor/**",
			"**/.cache/**",
			"**/.npm/**",
			"**/.pnpm/**",
			"**/__pycache__/**",
			"**/.venv/**",
			"**/venv/**",
			"**/.tox/**",
			"**/target/**",
			"**/build/**",
			"**/dist/**",
		},
		MaxDepth: 10,
	}
}

// Validate checks values that yaml cannot constrain.
func (c *Config) Validate() error {
	if c.DescribeStyle == "" {
		c.DescribeStyle = DescribeDefault
	}
	if !c.DescribeStyle.Valid() {
		return fmt.Errorf("invalid describe_style %q", c.DescribeStyle)
	}
	if c.CommandTimeout < 0 {
		return fmt.Errorf("command_timeout must not be negative, got %s", c.CommandTimeout)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max_depth must not be negative, got %d", c.MaxDepth)
	}
	return nil
}

func (c *Config) ShouldIgnore(path string) bool {
	for _, pattern := range c.IgnorePatterns {
		matched, err := filepath.Match(pattern, path)
		if err == nil && matched {
			return true
		}
		// Try matching against each path segment for ** patterns
		if containsDoublestar(pattern) {
			if matchDoublestar(pattern, path) {
				return true
			}
		}
	}
	return false
}

func containsDoublestar(pattern string) bool {
	for i := 0; i < len(pattern)-1; i++ {
		if pattern[i] == '*' && pattern[i+1] == '*' {
			return true
		}
	}
	return false
}

func matchDoublestar(pattern, path string) bool {
	// "**/node_modules/**" matches if the path or its parent is named node_modules
	if len(pattern) < 5 {
		return false
	}
	middle := pattern[3 : len(pattern)-3]
	return filepath.Base(filepath.Dir(path)) == middle ||
		filepath.Base(path) == middle
}
