// Package config holds the settings of every enumtab subcommand and loads
// them from a TOML or YAML file.
package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration of enumtab.
type Config struct {
	Extract ExtractConfig `toml:"extract" yaml:"extract"`
	Combine CombineConfig `toml:"combine" yaml:"combine"`
	Wikigen WikigenConfig `toml:"wikigen" yaml:"wikigen"`
}

// ExtractConfig configures `enumtab extract`.
type ExtractConfig struct {
	// Input is the header to read enums from.
	Input string `toml:"input" yaml:"input"`
	// Output receives the value→name tables.
	Output string `toml:"output" yaml:"output"`
	// ForwardOutput, when set, receives the name→value tables.
	ForwardOutput string `toml:"forward_output" yaml:"forward_output"`
	// Scope is "flat" or "nested".
	Scope string `toml:"scope" yaml:"scope"`
	// Encoding is the text encoding of Input, e.g. "utf-8" or
	// "windows-1252".
	Encoding string `toml:"encoding" yaml:"encoding"`
}

// CombineConfig configures `enumtab combine`.
type CombineConfig struct {
	Root   string `toml:"root" yaml:"root"`
	Suffix string `toml:"suffix" yaml:"suffix"`
	Output string `toml:"output" yaml:"output"`
	// OnError is "skip" or "fail".
	OnError string `toml:"on_error" yaml:"on_error"`
}

// WikigenConfig configures `enumtab wikigen`.
type WikigenConfig struct {
	CommonData string `toml:"common_data" yaml:"common_data"`
	CommonMsg  string `toml:"common_msg" yaml:"common_msg"`
	SkillData  string `toml:"skill_data" yaml:"skill_data"`
	SkillMsg   string `toml:"skill_msg" yaml:"skill_msg"`
	// Language is the index into a message's content list.
	Language   int    `toml:"language" yaml:"language"`
	Title      string `toml:"title" yaml:"title"`
	Navigation string `toml:"navigation" yaml:"navigation"`
	// Output is the file the table is written to; empty means stdout.
	Output string `toml:"output" yaml:"output"`
}

// Default returns the paths and settings the tools use when nothing else is
// configured.
func Default() *Config {
	return &Config{
		Extract: ExtractConfig{
			Input:    "Enums_Internal.hpp",
			Output:   "enums.json",
			Scope:    "flat",
			Encoding: "utf-8",
		},
		Combine: CombineConfig{
			Root:    "./outputs/stm",
			Suffix:  ".msg.23.json",
			Output:  "./outputs/combined_msgs.json",
			OnError: "skip",
		},
		Wikigen: WikigenConfig{
			CommonData: "outputs/skills/skillcommondata.user.3.json",
			CommonMsg:  "outputs/msg/skillcommon.msg.23",
			SkillData:  "outputs/skills/skilldata.user.3.json",
			SkillMsg:   "outputs/msg/skill.msg.23",
			Language:   1,
			Title:      "List of Armor Skills",
			Navigation: "{{NavigationMHWilds}}",
		},
	}
}

// Format is a configuration file syntax.
type Format int

const (
	FormatAuto Format = iota
	FormatTOML
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	}
	return "auto"
}

// Load reads the file at path over the defaults. Keys missing from the file
// keep their default value.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read config file %v", path)
	}
	cfg, err := LoadFromString(string(content), detectFormat(path))
	if err != nil {
		return nil, errors.Wrapf(err, "cannot load config file %v", path)
	}
	return cfg, nil
}

// LoadFromString parses content in the given format over the defaults.
// FormatAuto is treated as TOML.
func LoadFromString(content string, format Format) (*Config, error) {
	cfg := Default()
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(strings.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "YAML parse error")
		}
	default:
		md, err := toml.Decode(content, cfg)
		if err != nil {
			return nil, errors.Wrap(err, "TOML parse error")
		}
		if undec := md.Undecoded(); len(undec) > 0 {
			return nil, errors.Errorf("unknown config keys: %v", undec)
		}
	}
	return cfg, nil
}

// detectFormat determines the configuration format from the file extension.
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}
