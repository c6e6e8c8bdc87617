package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/quenchtext/quench/internal/engine/layout"
	"github.com/quenchtext/quench/internal/engine/shaping"
)

// Wrap mode names accepted in configuration files.
const (
	WrapNone = "none"
	WrapWord = "word"
	WrapChar = "char"
)

// Base direction names accepted in configuration files.
const (
	DirectionLTR = "ltr"
	DirectionRTL = "rtl"
)

// FontConfig selects the face used for shaping.
type FontConfig struct {
	// Name is the family name passed to the shaper.
	Name string `yaml:"name" toml:"name"`
	// Size is the em size in pixels.
	Size float64 `yaml:"size" toml:"size"`
}

// LayoutConfig controls paragraph layout.
type LayoutConfig struct {
	// Wrap is one of "none", "word", or "char".
	Wrap string `yaml:"wrap" toml:"wrap"`
	// MaxWidth is the wrap width in pixels. Zero or negative means
	// unbounded.
	MaxWidth float64 `yaml:"max_width" toml:"max_width"`
	// LineHeight overrides the font's natural line height when larger.
	// Zero keeps the font metrics.
	LineHeight float64 `yaml:"line_height" toml:"line_height"`
	// Direction is the paragraph base direction, "ltr" or "rtl".
	Direction string `yaml:"direction" toml:"direction"`
}

// HistoryConfig controls the undo stack.
type HistoryConfig struct {
	// Limit is the maximum number of undo groups retained.
	Limit int `yaml:"limit" toml:"limit"`
	// Grouping merges adjacent typing into single undo steps.
	Grouping bool `yaml:"grouping" toml:"grouping"`
	// GroupWindowMS is the typing window for grouping in
	// milliseconds. Zero disables the time check.
	GroupWindowMS int `yaml:"group_window_ms" toml:"group_window_ms"`
}

// ScrollConfig controls scroll-into-view and wheel behavior.
type ScrollConfig struct {
	// Margin is the breathing room kept around revealed rects, in
	// pixels.
	Margin float64 `yaml:"margin" toml:"margin"`
	// WheelLines is the number of lines scrolled per wheel step.
	WheelLines float64 `yaml:"wheel_lines" toml:"wheel_lines"`
}

// Config is the full engine configuration.
type Config struct {
	Font    FontConfig    `yaml:"font" toml:"font"`
	Layout  LayoutConfig  `yaml:"layout" toml:"layout"`
	History HistoryConfig `yaml:"history" toml:"history"`
	Scroll  ScrollConfig  `yaml:"scroll" toml:"scroll"`
}

// Option adjusts a Config in code.
type Option func(*Config)

// WithFont sets the face name and size.
func WithFont(name string, size float64) Option {
	return func(c *Config) {
		c.Font.Name = name
		c.Font.Size = size
	}
}

// WithWrap sets the wrap mode and width.
func WithWrap(mode string, maxWidth float64) Option {
	return func(c *Config) {
		c.Layout.Wrap = mode
		c.Layout.MaxWidth = maxWidth
	}
}

// WithLineHeight sets the minimum line height in pixels.
func WithLineHeight(h float64) Option {
	return func(c *Config) {
		c.Layout.LineHeight = h
	}
}

// WithDirection sets the paragraph base direction.
func WithDirection(dir string) Option {
	return func(c *Config) {
		c.Layout.Direction = dir
	}
}

// WithHistory sets the undo limit and grouping behavior.
func WithHistory(limit int, grouping bool) Option {
	return func(c *Config) {
		c.History.Limit = limit
		c.History.Grouping = grouping
	}
}

// WithScroll sets the scroll margin and wheel step.
func WithScroll(margin, wheelLines float64) Option {
	return func(c *Config) {
		c.Scroll.Margin = margin
		c.Scroll.WheelLines = wheelLines
	}
}

// Default returns the built-in configuration.
func Default() Config {
	face := shaping.DefaultFace()
	return Config{
		Font: FontConfig{
			Name: face.Name,
			Size: face.Size,
		},
		Layout: LayoutConfig{
			Wrap:      WrapWord,
			Direction: DirectionLTR,
		},
		History: HistoryConfig{
			Limit:         1000,
			Grouping:      true,
			GroupWindowMS: 500,
		},
		Scroll: ScrollConfig{
			Margin:     0,
			WheelLines: 3,
		},
	}
}

// New builds a configuration from Default plus the given options.
func New(opts ...Option) Config {
	cfg := Default()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// LoadFile reads a configuration file, dispatching on the extension.
// Supported extensions are .yaml, .yml, and .toml. Settings absent
// from the file keep their Default values.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, &ParseError{Path: path, Message: err.Error(), Err: err}
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, &ParseError{Path: path, Message: err.Error(), Err: err}
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Font.Size <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidFontSize, c.Font.Size)
	}
	switch c.Layout.Wrap {
	case WrapNone, WrapWord, WrapChar:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidWrapMode, c.Layout.Wrap)
	}
	switch c.Layout.Direction {
	case DirectionLTR, DirectionRTL:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidDirection, c.Layout.Direction)
	}
	if c.History.Limit < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidHistoryLimit, c.History.Limit)
	}
	if c.History.GroupWindowMS < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidGroupWindow, c.History.GroupWindowMS)
	}
	if c.Scroll.Margin < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidScrollMargin, c.Scroll.Margin)
	}
	if c.Scroll.WheelLines < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidWheelLines, c.Scroll.WheelLines)
	}
	return nil
}

// WrapMode converts the configured wrap name to a layout mode.
func (c Config) WrapMode() layout.WrapMode {
	switch c.Layout.Wrap {
	case WrapNone:
		return layout.NoWrap
	case WrapChar:
		return layout.BreakAll
	default:
		return layout.BreakWord
	}
}

// BaseDirection converts the configured direction name.
func (c Config) BaseDirection() shaping.Direction {
	if c.Layout.Direction == DirectionRTL {
		return shaping.RightToLeft
	}
	return shaping.LeftToRight
}

// Face returns the configured shaping face.
func (c Config) Face() shaping.Face {
	return shaping.Face{Name: c.Font.Name, Size: c.Font.Size}
}

// Params converts the configuration to layout parameters.
func (c Config) Params() layout.Params {
	return layout.Params{
		Face:          c.Face(),
		MaxWidth:      c.Layout.MaxWidth,
		Wrap:          c.WrapMode(),
		LineHeight:    c.Layout.LineHeight,
		BaseDirection: c.BaseDirection(),
	}
}

// GroupWindow returns the grouping window as a duration.
func (c Config) GroupWindow() time.Duration {
	return time.Duration(c.History.GroupWindowMS) * time.Millisecond
}

// LayoutOptions converts the history settings to layout options.
func (c Config) LayoutOptions() []layout.Option {
	return []layout.Option{
		layout.WithHistoryLimit(c.History.Limit),
		layout.WithGrouping(c.History.Grouping),
		layout.WithGroupWindow(c.GroupWindow()),
	}
}
