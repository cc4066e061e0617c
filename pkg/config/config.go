// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/jsxfix/pkg/fix"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up when none is given
const DefaultFile = ".jsxfix.yaml"

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🎨 ChevronConfig configures the chevron style fix
type ChevronConfig struct {
	Target       string `json:"target,omitempty" yaml:"target,omitempty" hcl:"target,optional"`
	MarkerWindow *int   `json:"marker_window,omitempty" yaml:"marker_window,omitempty" hcl:"marker_window,optional"`
	ColorWindow  *int   `json:"color_window,omitempty" yaml:"color_window,omitempty" hcl:"color_window,optional"`
	Strict       bool   `json:"strict,omitempty" yaml:"strict,omitempty" hcl:"strict,optional"`
}

// 🧭 LayoutConfig configures the layout back-title fix
type LayoutConfig struct {
	Target         string `json:"target,omitempty" yaml:"target,omitempty" hcl:"target,optional"`
	BackTitle      string `json:"back_title,omitempty" yaml:"back_title,omitempty" hcl:"back_title,optional"`
	ExceptionFirst bool   `json:"exception_first,omitempty" yaml:"exception_first,omitempty" hcl:"exception_first,optional"`
}

// 📚 Config represents the complete configuration
type Config struct {
	Root    string         `json:"root,omitempty" yaml:"root,omitempty" hcl:"root,optional"`
	InPlace bool           `json:"in_place,omitempty" yaml:"in_place,omitempty" hcl:"in_place,optional"`
	Backup  bool           `json:"backup,omitempty" yaml:"backup,omitempty" hcl:"backup,optional"`
	Async   bool           `json:"async,omitempty" yaml:"async,omitempty" hcl:"async,optional"`
	Chevron *ChevronConfig `json:"chevron,omitempty" yaml:"chevron,omitempty" hcl:"chevron,block"`
	Layout  *LayoutConfig  `json:"layout,omitempty" yaml:"layout,omitempty" hcl:"layout,block"`
}

// 🏭 Default returns the configuration the zero-argument binaries run with
func Default() *Config {
	cfg := &Config{}
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return cfg
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	// roots are relative to the config file, which is the default root
	if !filepath.IsAbs(cfg.Root) {
		cfg.Root = filepath.Join(filepath.Dir(path), cfg.Root)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads path, falling back to Default when the file does not
// exist and was not explicitly requested.
func LoadOrDefault(ctx context.Context, path string, explicit bool) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) && !explicit {
		zerolog.Ctx(ctx).Debug().Str("path", path).Msg("no config file, using defaults")
		return Default(), nil
	}
	return Load(ctx, path)
}

// 🔍 Validate fills in defaults and checks the configuration is usable
func (cfg *Config) Validate() error {
	if cfg.Root == "" {
		cfg.Root = "."
	}
	cfg.Root = filepath.Clean(cfg.Root)

	if cfg.Chevron == nil {
		cfg.Chevron = &ChevronConfig{}
	}
	if cfg.Chevron.Target == "" {
		cfg.Chevron.Target = fix.ChevronTarget
	}
	if cfg.Chevron.MarkerWindow == nil {
		n := fix.DefaultMarkerWindow
		cfg.Chevron.MarkerWindow = &n
	}
	if cfg.Chevron.ColorWindow == nil {
		n := fix.DefaultColorWindow
		cfg.Chevron.ColorWindow = &n
	}
	if w := *cfg.Chevron.MarkerWindow; w < 0 || w > fix.MaxWindow {
		return errors.Errorf("chevron.marker_window must be between 0 and %d", fix.MaxWindow)
	}
	if w := *cfg.Chevron.ColorWindow; w < 0 || w > fix.MaxWindow {
		return errors.Errorf("chevron.color_window must be between 0 and %d", fix.MaxWindow)
	}

	if cfg.Layout == nil {
		cfg.Layout = &LayoutConfig{}
	}
	if cfg.Layout.Target == "" {
		cfg.Layout.Target = fix.LayoutTarget
	}
	if cfg.Layout.BackTitle == "" {
		cfg.Layout.BackTitle = fix.DefaultBackTitle
	}
	if strings.ContainsAny(cfg.Layout.BackTitle, "\"\n") {
		return errors.Errorf("layout.back_title must not contain quotes or line breaks")
	}

	if cfg.Async {
		if err := cfg.ValidateAsync(); err != nil {
			return err
		}
	}

	return nil
}

// ValidateAsync checks the fixes can run concurrently: two read/modify/write
// passes on the same file would lose one of the rewrites.
func (cfg *Config) ValidateAsync() error {
	chevron := path.Clean(filepath.ToSlash(cfg.Chevron.Target))
	layout := path.Clean(filepath.ToSlash(cfg.Layout.Target))
	if chevron == layout {
		return errors.Errorf("chevron.target and layout.target are both %q, they cannot run async", chevron)
	}
	return nil
}

// ChevronOptions converts the chevron section into fix options
func (cfg *Config) ChevronOptions() fix.ChevronOptions {
	return fix.ChevronOptions{
		Target:       cfg.Chevron.Target,
		MarkerWindow: *cfg.Chevron.MarkerWindow,
		ColorWindow:  *cfg.Chevron.ColorWindow,
		Strict:       cfg.Chevron.Strict,
	}
}

// LayoutOptions converts the layout section into fix options
func (cfg *Config) LayoutOptions() fix.LayoutOptions {
	return fix.LayoutOptions{
		Target:         cfg.Layout.Target,
		BackTitle:      cfg.Layout.BackTitle,
		ExceptionFirst: cfg.Layout.ExceptionFirst,
	}
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%s: chevrons=%s layout=%s", cfg.Root, cfg.Chevron.Target, cfg.Layout.Target)
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

// 🔍 CanParse checks if this parser can handle the given file
func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

// 📝 Parse parses the config from YAML
func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		// empty or comment-only file
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return &cfg, nil
}
