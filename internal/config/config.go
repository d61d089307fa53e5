/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package config holds the user-editable application configuration persisted
// to a YAML file in the user scope. Environment variables are treated as
// read-only overrides at runtime.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// GeneralConfig carries paper-independent editor preferences. These mirror the
// standalone preference scalars kept in the key-value store so UI chrome can
// apply them before any project is loaded.
type GeneralConfig struct {
	Language     string `yaml:"language"`      // default paper language tag
	OptionLayout string `yaml:"option_layout"` // vertical | horizontal | grid
	Theme        string `yaml:"theme"`         // "system" | "light" | "dark"
	FontSize     string `yaml:"font_size"`     // small | medium | large
}

// ExportConfig carries defaults for the export adapters.
type ExportConfig struct {
	PageSize string `yaml:"page_size"` // preset name: A4, Letter, Legal
	FontFile string `yaml:"font_file"` // optional TTF for non-Latin PDF glyphs
	OutDir   string `yaml:"out_dir"`   // default output directory; empty = cwd
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

// AppConfig is the root configuration record.
// config_version: bump when the structure changes in a backward-incompatible way.
type AppConfig struct {
	ConfigVersion int           `yaml:"config_version"`
	General       GeneralConfig `yaml:"general"`
	Export        ExportConfig  `yaml:"export"`
	Logging       LoggingConfig `yaml:"logging"`
	AutosaveMs    int           `yaml:"autosave_ms"` // debounce delay for persistence writes
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		General:       GeneralConfig{Language: "english", OptionLayout: "vertical", Theme: "system", FontSize: "medium"},
		Export:        ExportConfig{PageSize: "A4"},
		Logging:       LoggingConfig{Level: "info", Format: "console", Source: false, File: ""},
		AutosaveMs:    800,
	}
}

// Env var names used as overrides.
const (
	EnvLanguage     = "QPW_LANGUAGE"
	EnvOptionLayout = "QPW_OPTION_LAYOUT"
	EnvPageSize     = "QPW_PAGE_SIZE"
	EnvFontFile     = "QPW_FONT_FILE"
	EnvOutDir       = "QPW_OUT_DIR"
	EnvAutosaveMs   = "QPW_AUTOSAVE_MS"
	EnvLogLevel     = "QPW_LOG_LEVEL"
	EnvLogFormat    = "QPW_LOG_FORMAT"
	EnvLogSource    = "QPW_LOG_SOURCE"
	EnvLogFile      = "QPW_LOG_FILE"
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
		base = filepath.Join(base, "GoPaperWriter")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "GoPaperWriter")
	default: // linux and others
		base = filepath.Join(os.Getenv("HOME"), ".config", "gopaperwriter")
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load reads the user config file (if present), applies defaults, and merges
// environment overrides.
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
	if src.General.Language != "" {
		dst.General.Language = strings.ToLower(strings.TrimSpace(src.General.Language))
	}
	if src.General.OptionLayout != "" {
		dst.General.OptionLayout = strings.ToLower(strings.TrimSpace(src.General.OptionLayout))
	}
	if src.General.Theme != "" {
		dst.General.Theme = src.General.Theme
	}
	if src.General.FontSize != "" {
		dst.General.FontSize = src.General.FontSize
	}
	if src.Export.PageSize != "" {
		dst.Export.PageSize = src.Export.PageSize
	}
	if strings.TrimSpace(src.Export.FontFile) != "" {
		dst.Export.FontFile = strings.TrimSpace(src.Export.FontFile)
	}
	if strings.TrimSpace(src.Export.OutDir) != "" {
		dst.Export.OutDir = strings.TrimSpace(src.Export.OutDir)
	}
	if src.AutosaveMs > 0 {
		dst.AutosaveMs = src.AutosaveMs
	}
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
	if v := strings.TrimSpace(os.Getenv(EnvLanguage)); v != "" {
		cfg.General.Language = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvOptionLayout)); v != "" {
		cfg.General.OptionLayout = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv(EnvPageSize)); v != "" {
		cfg.Export.PageSize = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvFontFile)); v != "" {
		cfg.Export.FontFile = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvOutDir)); v != "" {
		cfg.Export.OutDir = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvAutosaveMs)); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.AutosaveMs = n
		}
	}
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
	var name string
	switch key {
	case "general.language":
		name = EnvLanguage
	case "general.option_layout":
		name = EnvOptionLayout
	case "export.page_size":
		name = EnvPageSize
	case "export.font_file":
		name = EnvFontFile
	case "export.out_dir":
		name = EnvOutDir
	case "autosave_ms":
		name = EnvAutosaveMs
	case "logging.level":
		name = EnvLogLevel
	case "logging.format":
		name = EnvLogFormat
	case "logging.source":
		name = EnvLogSource
	case "logging.file":
		name = EnvLogFile
	default:
		return "", false
	}
	if os.Getenv(name) != "" {
		return name, true
	}
	return "", false
}
