// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/ringsum/lines"
	"github.com/katalvlaran/ringsum/radius"
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("config: invalid value")

// Log levels and formats accepted by Validate and NewLogger.
var (
	levels  = []string{"debug", "info", "warn", "error"}
	formats = []string{"text", "json"}
)

// Config holds everything a runner needs.
type Config struct {
	DataDir     string
	FilePattern string
	Radius      int
	LogLevel    string
	LogFormat   string
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		DataDir:     lines.DefaultDir,
		FilePattern: lines.DefaultPattern,
		Radius:      radius.DefaultRadius,
		LogLevel:    "info",
		LogFormat:   "text",
	}
}

// hclFile is the decoding schema. Pointer fields stay nil when absent.
type hclFile struct {
	DataDir     *string `hcl:"data_dir,optional"`
	FilePattern *string `hcl:"file_pattern,optional"`
	Radius      *int    `hcl:"radius,optional"`
	Log         *hclLog `hcl:"log,block"`
}

type hclLog struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

// Load reads and decodes the HCL file at path over Default, then validates.
func Load(path string) (*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return Parse(src, path)
}

// Parse decodes HCL source over Default, then validates. filename is only
// used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to parse %s: %w", filename, diags)
	}

	var parsed hclFile
	diags = gohcl.DecodeBody(file.Body, evalContext(), &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to decode %s: %w", filename, diags)
	}

	cfg := Default()
	cfg.apply(&parsed)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) apply(f *hclFile) {
	if f.DataDir != nil {
		c.DataDir = *f.DataDir
	}
	if f.FilePattern != nil {
		c.FilePattern = *f.FilePattern
	}
	if f.Radius != nil {
		c.Radius = *f.Radius
	}
	if f.Log != nil {
		if f.Log.Level != nil {
			c.LogLevel = strings.ToLower(*f.Log.Level)
		}
		if f.Log.Format != nil {
			c.LogFormat = strings.ToLower(*f.Log.Format)
		}
	}
}

// evalContext exposes the process environment as the env object.
func evalContext() *hcl.EvalContext {
	env := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		env[name] = cty.StringVal(value)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(env),
		},
	}
}

// Validate checks every field.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("%w: data_dir must not be empty", ErrInvalid)
	}
	if probe := fmt.Sprintf(c.FilePattern, 1, 1); strings.Contains(probe, "%!") {
		return fmt.Errorf("%w: file_pattern %q must take exactly two integer verbs", ErrInvalid, c.FilePattern)
	}
	if c.Radius < 0 {
		return fmt.Errorf("%w: radius cannot be negative (%d)", ErrInvalid, c.Radius)
	}
	if !oneOf(c.LogLevel, levels) {
		return fmt.Errorf("%w: log level %q must be one of %s", ErrInvalid, c.LogLevel, strings.Join(levels, ", "))
	}
	if !oneOf(c.LogFormat, formats) {
		return fmt.Errorf("%w: log format %q must be one of %s", ErrInvalid, c.LogFormat, strings.Join(formats, ", "))
	}

	return nil
}

// Source returns a file line source rooted at DataDir.
func (c *Config) Source() *lines.FileSource {
	return &lines.FileSource{Dir: c.DataDir, Pattern: c.FilePattern}
}

func oneOf(s string, set []string) bool {
	for _, v := range set {
		if s == v {
			return true
		}
	}
	return false
}
