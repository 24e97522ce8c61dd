package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
)

// Default configuration values for the animation.
const (
	defaultFPS         = 30
	defaultTrailLength = 20
	defaultColorMode   = "truecolor"
	maxFPS             = 120
)

// Config holds the configuration for the rain animation.
type Config struct {
	Seed        *int64          // Fixed seed for reproducible runs, nil for random
	FPS         int             // Target frames per second
	TrailLength int             // Cells per drop, head included
	Profile     termenv.Profile // Color capability used for escape sequences
	Debug       bool            // Enable debug logging
}

// DefaultConfig returns the configuration used when no flags are given.
func DefaultConfig() *Config {
	return &Config{
		FPS:         defaultFPS,
		TrailLength: defaultTrailLength,
		Profile:     termenv.TrueColor,
	}
}

// validate checks the configuration for validity.
func (c *Config) validate() error {
	if c.FPS < 1 || c.FPS > maxFPS {
		return fmt.Errorf("fps out of range (1-%d): got %d", maxFPS, c.FPS)
	}
	if c.TrailLength < 1 {
		return fmt.Errorf("trail length must be positive: got %d", c.TrailLength)
	}
	return nil
}

// colorModes maps -color values to termenv profiles. "auto" is resolved
// against the output at parse time.
var colorModes = map[string]termenv.Profile{
	"truecolor": termenv.TrueColor,
	"256":       termenv.ANSI256,
	"16":        termenv.ANSI,
	"none":      termenv.Ascii,
}

// resolveProfile turns a -color value into a profile, probing out for "auto".
func resolveProfile(mode string, out io.Writer) (termenv.Profile, error) {
	mode = strings.ToLower(mode)
	if mode == "auto" {
		return termenv.NewOutput(out).EnvColorProfile(), nil
	}
	if p, ok := colorModes[mode]; ok {
		return p, nil
	}
	return termenv.Ascii, fmt.Errorf("unknown color mode: %s", mode)
}

// seedFlag is an optional int64 flag; it stays unset until given.
type seedFlag struct {
	value *int64
}

func (f *seedFlag) String() string {
	if f == nil || f.value == nil {
		return ""
	}
	return strconv.FormatInt(*f.value, 10)
}

func (f *seedFlag) Set(s string) error {
	if s == "" {
		f.value = nil
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return errors.New("seed must be an integer")
	}
	f.value = &v
	return nil
}
