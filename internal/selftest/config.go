package selftest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const DefaultTimeout = 2 * time.Minute

// Check is one external tool invocation that must exit zero.
type Check struct {
	Name    string        `yaml:"name"`
	Command string        `yaml:"command"`
	Args    []string      `yaml:"args,omitempty"`
	Dir     string        `yaml:"dir,omitempty"`
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

// File is the layout of selftest.yml.
type File struct {
	Timeout time.Duration `yaml:"timeout,omitempty"`
	Checks  []Check       `yaml:"checks"`
}

// DefaultChecks validates the web package's TypeScript, ESLint and bundler
// configuration, in that order.
func DefaultChecks(webDir string) []Check {
	return []Check{
		{
			Name:    "TypeScript configuration",
			Command: "npx",
			Args:    []string{"tsc", "--noEmit"},
			Dir:     webDir,
		},
		{
			Name:    "ESLint configuration",
			Command: "npx",
			Args:    []string{"eslint", "--print-config", "src/main.tsx"},
			Dir:     webDir,
		},
		{
			Name:    "Vite configuration",
			Command: "npx",
			Args:    []string{"vite", "build", "--mode", "development", "--logLevel", "error"},
			Dir:     webDir,
		},
	}
}

// Load reads selftest.yml or selftest.yaml from dir. When neither exists the
// default checks for dir are returned.
func Load(dir string) ([]Check, error) {
	for _, name := range []string{"selftest.yml", "selftest.yaml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		var f File
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}

		return f.resolve(dir)
	}

	return DefaultChecks(dir), nil
}

func (f *File) resolve(baseDir string) ([]Check, error) {
	if len(f.Checks) == 0 {
		return nil, fmt.Errorf("no checks defined")
	}

	checks := make([]Check, len(f.Checks))
	for i, c := range f.Checks {
		if c.Command == "" {
			return nil, fmt.Errorf("check %d (%q): command is required", i+1, c.Name)
		}
		if c.Name == "" {
			c.Name = c.Command
		}
		if c.Timeout == 0 {
			c.Timeout = f.Timeout
		}
		if !filepath.IsAbs(c.Dir) {
			c.Dir = filepath.Join(baseDir, c.Dir)
		}
		checks[i] = c
	}

	return checks, nil
}
