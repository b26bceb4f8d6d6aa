// Package config loads optional YAML run files. Every field is a pointer so
// callers can tell "absent" from "zero" when layering flags on top.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk layout:
//
//	generation: {g_prob: 0.25, fixed: false, dimers: false}
//	sweep:      {start: 40, end: 3000, step: 8, trials: 10000, threads: 0, seed: 0}
//	output:     {dir: data, format: text, precision: 6}
type File struct {
	Generation Generation `yaml:"generation"`
	Sweep      Sweep      `yaml:"sweep"`
	Output     Output     `yaml:"output"`
}

type Generation struct {
	GProb  *float64 `yaml:"g_prob"`
	Fixed  *bool    `yaml:"fixed"`
	Dimers *bool    `yaml:"dimers"`
}

type Sweep struct {
	Start   *int    `yaml:"start"`
	End     *int    `yaml:"end"`
	Step    *int    `yaml:"step"`
	Trials  *int    `yaml:"trials"`
	Threads *int    `yaml:"threads"`
	Seed    *uint64 `yaml:"seed"`
}

type Output struct {
	Dir       *string `yaml:"dir"`
	Format    *string `yaml:"format"`
	Precision *int    `yaml:"precision"`
}

// Load reads and decodes path.
func Load(path string) (File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("config: %w", err)
	}
	defer fh.Close()
	f, err := Parse(fh)
	if err != nil {
		return File{}, fmt.Errorf("config %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes one YAML document. Unknown keys are rejected; an empty
// document yields a zero File.
func Parse(r io.Reader) (File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return File{}, err
	}
	return f, nil
}
