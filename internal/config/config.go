/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// AppConfig is the user-editable configuration persisted to a YAML file in the user scope.
// Environment variables are treated as read-only overrides at runtime.
//
// config_version: bump when the structure changes in a backward-incompatible way.
// Unknown fields should be preserved when possible (yaml handles this by ignoring extras on unmarshal).

type ProjectConfig struct {
	// Path is the default manuscript path or glob used when no --path flag
	// is given. Empty means the current directory.
	Path string `yaml:"path"`
}

type ExportConfig struct {
	PaperSize  string  `yaml:"paper_size"` // "A4" | "Letter"
	FontFamily string  `yaml:"font_family"`
	FontSize   float64 `yaml:"font_size"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

type AppConfig struct {
	ConfigVersion int           `yaml:"config_version"`
	Project       ProjectConfig `yaml:"project"`
	Export        ExportConfig  `yaml:"export"`
	Logging       LoggingConfig `yaml:"logging"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		Project:       ProjectConfig{Path: ""},
		Export:        ExportConfig{PaperSize: "A4", FontFamily: "Helvetica", FontSize: 12},
		Logging:       LoggingConfig{Level: "info", Format: "console", Source: false, File: ""},
	}
}

// Env var names used as overrides.
const (
	EnvProjectPath      = "WD_PATH"
	EnvExportPaperSize  = "WD_EXPORT_PAPER_SIZE"
	EnvExportFontFamily = "WD_EXPORT_FONT_FAMILY"
	// EnvLogLevel Logging envs
	EnvLogLevel  = "WD_LOG_LEVEL"
	EnvLogFormat = "WD_LOG_FORMAT"
	EnvLogSource = "WD_LOG_SOURCE"
	EnvLogFile   = "WD_LOG_FILE"
)

// ConfigPath returns the per-user config file path.
func ConfigPath() (string, error) {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" { // fallback
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "Writedown")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "Writedown")
	default: // linux and others
		base = filepath.Join(os.Getenv("HOME"), ".config", "writedown")
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load reads the user config file (if present), applies defaults, and merges environment overrides.
func Load() (AppConfig, error) {
	cfg := Defaults()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	if data, err := os.ReadFile(path); err == nil {
		var fileCfg AppConfig
		if err := yaml.Unmarshal(data, &fileCfg); err == nil {
			mergeInto(&cfg, &fileCfg)
		}
	}
	applyEnvOverrides(&cfg)
	return cfg, nil
}

// Save writes the user config YAML.
func Save(cfg AppConfig) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	if strings.TrimSpace(src.Project.Path) != "" {
		dst.Project.Path = strings.TrimSpace(src.Project.Path)
	}
	if strings.TrimSpace(src.Export.PaperSize) != "" {
		dst.Export.PaperSize = strings.TrimSpace(src.Export.PaperSize)
	}
	if strings.TrimSpace(src.Export.FontFamily) != "" {
		dst.Export.FontFamily = strings.TrimSpace(src.Export.FontFamily)
	}
	if src.Export.FontSize > 0 {
		dst.Export.FontSize = src.Export.FontSize
	}
	// logging
	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
	if strings.TrimSpace(src.Logging.Format) != "" {
		dst.Logging.Format = strings.ToLower(strings.TrimSpace(src.Logging.Format))
	}
	dst.Logging.Source = src.Logging.Source
	if strings.TrimSpace(src.Logging.File) != "" {
		dst.Logging.File = strings.TrimSpace(src.Logging.File)
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvProjectPath)); v != "" {
		cfg.Project.Path = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvExportPaperSize)); v != "" {
		cfg.Export.PaperSize = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvExportFontFamily)); v != "" {
		cfg.Export.FontFamily = v
	}
	// logging overrides
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogSource)); v != "" {
		lv := strings.ToLower(v)
		cfg.Logging.Source = lv == "1" || lv == "true" || lv == "on" || lv == "yes"
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

// EnvOverrideFor returns the env var name if the field is overridden by environment variables.
func EnvOverrideFor(key string) (string, bool) {
	switch key {
	case "project.path":
		if os.Getenv(EnvProjectPath) != "" {
			return EnvProjectPath, true
		}
	case "export.paper_size":
		if os.Getenv(EnvExportPaperSize) != "" {
			return EnvExportPaperSize, true
		}
	case "export.font_family":
		if os.Getenv(EnvExportFontFamily) != "" {
			return EnvExportFontFamily, true
		}
	case "logging.level":
		if os.Getenv(EnvLogLevel) != "" {
			return EnvLogLevel, true
		}
	case "logging.format":
		if os.Getenv(EnvLogFormat) != "" {
			return EnvLogFormat, true
		}
	case "logging.source":
		if os.Getenv(EnvLogSource) != "" {
			return EnvLogSource, true
		}
	case "logging.file":
		if os.Getenv(EnvLogFile) != "" {
			return EnvLogFile, true
		}
	}
	return "", false
}
