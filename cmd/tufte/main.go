package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/adrg/frontmatter"
	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/rgonek/tufte-sidenotes/mdhtml"
)

const (
	presetAside = "aside"
	presetSpan  = "span"
	presetDiv   = "div"
)

// fileConfig is the YAML shape accepted by --config.
type fileConfig struct {
	Tag            string `yaml:"tag"`
	Role           string `yaml:"role"`
	UnresolvedRefs string `yaml:"unresolvedRefs"`
}

func presetConfig(preset string) (mdhtml.Config, error) {
	switch strings.ToLower(strings.TrimSpace(preset)) {
	case "", presetAside:
		return mdhtml.Config{}, nil
	case presetSpan:
		// Inline wrapper, for themes that place notes inside running text.
		return mdhtml.Config{TagType: "span"}, nil
	case presetDiv:
		return mdhtml.Config{TagType: "div"}, nil
	default:
		return mdhtml.Config{}, fmt.Errorf("unknown preset %q (allowed: aside, span, div)", preset)
	}
}

func loadFileConfig(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, err
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fileConfig{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return cfg, nil
}

func resolveConfig(preset, configPath, tag, role string, strictRefs bool) (mdhtml.Config, error) {
	cfg, err := presetConfig(preset)
	if err != nil {
		return mdhtml.Config{}, err
	}

	if configPath != "" {
		fileCfg, err := loadFileConfig(configPath)
		if err != nil {
			return mdhtml.Config{}, err
		}
		if fileCfg.Tag != "" {
			cfg.TagType = fileCfg.Tag
		}
		if fileCfg.Role != "" {
			cfg.TagRole = fileCfg.Role
		}
		if fileCfg.UnresolvedRefs != "" {
			cfg.UnresolvedRefs = mdhtml.RefPolicy(fileCfg.UnresolvedRefs)
		}
	}

	// Flags win over preset and config file.
	if tag != "" {
		cfg.TagType = tag
	}
	if role != "" {
		cfg.TagRole = role
	}
	if strictRefs {
		cfg.UnresolvedRefs = mdhtml.RefError
	}

	return cfg, nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func main() {
	tag := flag.StringP("tag", "t", "", "HTML tag wrapping each note body")
	role := flag.String("role", "", "role attribute on the note wrapper")
	preset := flag.String("preset", presetAside, "Preset: aside|span|div")
	configPath := flag.StringP("config", "c", "", "YAML config file")
	strictRefs := flag.Bool("strict-refs", false, "Fail on unresolved footnote references")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tufte [options] <input.md | ->\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := resolveConfig(*preset, *configPath, *tag, *role, *strictRefs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	data, err := readInput(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	// Frontmatter is metadata for the surrounding build pipeline; it never
	// reaches the markdown parser.
	var meta map[string]any
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing frontmatter: %v\n", err)
		os.Exit(1)
	}

	conv, err := mdhtml.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	result, err := conv.Convert(body)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error converting input: %v\n", err)
		os.Exit(1)
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(os.Stderr, "Warning (%s): %s\n", warning.Type, warning.Message)
	}

	fmt.Println(result.HTML)
}
