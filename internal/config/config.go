// Package config loads the xml2py configuration file.
//
// The file is YAML. Every key is optional; absent keys keep their defaults
// and unknown keys are rejected:
//
//	inputs: [materials.xml, groups.xml]
//	roots: [Solid]
//	disabled_passes: [patch-solid-slope]
//	reflow: true
//	line_width: 100
//	image_root: C:/Program Files/Studio 2.0/PhotoRealisticRenderer/win/64
//	output: generated.py
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/The0x539/eyesight-xml2py/python"
	"github.com/The0x539/eyesight-xml2py/rewrite"
)

// Config is the contents of a configuration file.
type Config struct {
	// Inputs are the Eyesight documents to read when none are given on the
	// command line.
	Inputs []string `yaml:"inputs" validate:"dive,required"`

	// Roots are the groups to generate.
	Roots []string `yaml:"roots" validate:"min=1,dive,required"`

	// DisabledPasses names rewrite passes to skip.
	DisabledPasses []string `yaml:"disabled_passes" validate:"dive,rewrite_pass"`

	// Reflow collapses generated calls that fit within LineWidth.
	Reflow bool `yaml:"reflow"`

	LineWidth int `yaml:"line_width" validate:"gte=40,lte=1000"`

	// ImageRoot is the directory generated code loads image textures from.
	ImageRoot string `yaml:"image_root" validate:"required"`

	// Output is the generated file. Empty writes to standard output.
	Output string `yaml:"output"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	err := validate.RegisterValidation("rewrite_pass", func(fl validator.FieldLevel) bool {
		return slices.Contains(rewrite.PassNames(), fl.Field().String())
	})
	if err != nil {
		panic(fmt.Sprintf("config: register rewrite_pass validation: %v", err))
	}
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Roots:     slices.Clone(python.DefaultRoots),
		Reflow:    true,
		LineWidth: 100,
		ImageRoot: python.DefaultImageRoot,
	}
}

// Validate checks the configuration against its field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Load reads the configuration file at path over the defaults. An empty
// path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML configuration over the defaults and validates it.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
