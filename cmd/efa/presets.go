package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// presetFile is the optional YAML config holding named endpoint presets:
//
//	default: vgn
//	endpoints:
//	  vgn: https://efa.vgn.de/vgnExt_oeffi/
//	  mvv: https://efa.mvv-muenchen.de/ng/
type presetFile struct {
	Default   string            `yaml:"default"`
	Endpoints map[string]string `yaml:"endpoints"`
}

// defaultConfigPath returns ~/.config/efa/config.yaml, or "" when the
// home directory cannot be determined.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "efa", "config.yaml")
}

// loadPresets reads the preset file at path. A missing file is not an
// error; it yields an empty preset set.
func loadPresets(path string) (presetFile, error) {
	if path == "" {
		path = defaultConfigPath()
	}
	if path == "" {
		return presetFile{}, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the user's own flag
	if err != nil {
		if os.IsNotExist(err) {
			return presetFile{}, nil
		}
		return presetFile{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var pf presetFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return presetFile{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return pf, nil
}

// resolveEndpoint turns the --endpoint flag into a base URL. A value
// containing "://" is taken as a URL; anything else is looked up as a
// preset name. An empty value falls back to the config's default preset.
func resolveEndpoint(endpoint, configPath string) (string, error) {
	if strings.Contains(endpoint, "://") {
		return endpoint, nil
	}

	presets, err := loadPresets(configPath)
	if err != nil {
		return "", err
	}

	name := endpoint
	if name == "" {
		name = presets.Default
	}
	if name == "" {
		return "", fmt.Errorf("no endpoint selected\nPass --endpoint <url> or configure a default preset in ~/.config/efa/config.yaml")
	}

	url, ok := presets.Endpoints[name]
	if !ok {
		return "", fmt.Errorf("unknown endpoint preset %q (not in the config file)", name)
	}
	return url, nil
}
