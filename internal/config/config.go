package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

type Config struct {
	ModelsDir     string `json:"modelsDir"`     // YAML-описания моделей
	HostTCADir    string `json:"hostTcaDir"`    // базовый TCA хоста (для расширяемых таблиц)
	ExtensionsDir string `json:"extensionsDir"` // корень расширений: метки (XLIFF) и иконки
	OutDir        string `json:"outDir"`
	Port          string `json:"port"`

	LegacyLanguageWidget bool `json:"legacyLanguageWidget"`
	LabelsPerTable       bool `json:"labelsPerTable"`

	LogLevel  string `json:"logLevel"`
	LogFormat string `json:"logFormat"` // console | json
	Format    string `json:"format"`    // php | json | yaml
}

func def() Config {
	return Config{
		ModelsDir:     "models",
		HostTCADir:    "",
		ExtensionsDir: "",
		OutDir:        "build",
		Port:          "8080",

		LegacyLanguageWidget: false,
		LabelsPerTable:       false,

		LogLevel:  "info",
		LogFormat: "console",
		Format:    "php",
	}
}

// Default — конфигурация без файла, окружения и флагов.
func Default() Config { return def() }

func loadJSON(path string) (Config, error) {
	c := def()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := json.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

func getenv(k, fallback string) string {
	if v, ok := os.LookupEnv(k); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

func getenvBool(k string, fallback bool) bool {
	if v, ok := os.LookupEnv(k); ok {
		v = strings.TrimSpace(strings.ToLower(v))
		if v == "1" || v == "true" || v == "yes" {
			return true
		}
		if v == "0" || v == "false" || v == "no" {
			return false
		}
	}
	return fallback
}

// Load: значения по умолчанию, затем JSON (если файл есть), затем ENV.
// Отсутствующий файл не ошибка, битый — ошибка.
func Load(jsonPath string) (Config, error) {
	cfg := def()

	if jsonPath != "" {
		c2, err := loadJSON(jsonPath)
		switch {
		case err == nil:
			cfg = c2
		case errors.Is(err, fs.ErrNotExist):
		default:
			return cfg, err
		}
	}

	// ENV overrides
	cfg.ModelsDir = getenv("AUTOLOADER_MODELS_DIR", cfg.ModelsDir)
	cfg.HostTCADir = getenv("AUTOLOADER_HOST_TCA_DIR", cfg.HostTCADir)
	cfg.ExtensionsDir = getenv("AUTOLOADER_EXTENSIONS_DIR", cfg.ExtensionsDir)
	cfg.OutDir = getenv("AUTOLOADER_OUT_DIR", cfg.OutDir)
	cfg.Port = getenv("AUTOLOADER_PORT", cfg.Port)
	cfg.LegacyLanguageWidget = getenvBool("AUTOLOADER_LEGACY_LANGUAGE_WIDGET", cfg.LegacyLanguageWidget)
	cfg.LabelsPerTable = getenvBool("AUTOLOADER_LABELS_PER_TABLE", cfg.LabelsPerTable)
	cfg.LogLevel = getenv("AUTOLOADER_LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getenv("AUTOLOADER_LOG_FORMAT", cfg.LogFormat)
	cfg.Format = getenv("AUTOLOADER_FORMAT", cfg.Format)

	return cfg, nil
}

type stringFlag struct {
	name, usage string
	field       func(*Config) *string
}

type boolFlag struct {
	name, usage string
	field       func(*Config) *bool
}

var stringFlags = []stringFlag{
	{"models", "Path to model metadata directory", func(c *Config) *string { return &c.ModelsDir }},
	{"host-tca", "Path to host TCA directory (base for extended tables)", func(c *Config) *string { return &c.HostTCADir }},
	{"extensions", "Extensions root (language files and icons)", func(c *Config) *string { return &c.ExtensionsDir }},
	{"out", "Output directory for generated artifacts", func(c *Config) *string { return &c.OutDir }},
	{"port", "HTTP port", func(c *Config) *string { return &c.Port }},
	{"log-level", "Log level (debug/info/warn/error)", func(c *Config) *string { return &c.LogLevel }},
	{"log-format", "Log format (console/json)", func(c *Config) *string { return &c.LogFormat }},
	{"format", "TCA output format (php/json/yaml)", func(c *Config) *string { return &c.Format }},
}

var boolFlags = []boolFlag{
	{"legacy-language-widget", "Use select widget for sys_language_uid", func(c *Config) *bool { return &c.LegacyLanguageWidget }},
	{"labels-per-table", "One language file per table", func(c *Config) *bool { return &c.LabelsPerTable }},
}

// BindFlags регистрирует флаги. Значения по умолчанию берутся из def(),
// поэтому применять их надо через ApplyFlags: перекрываются только явно заданные.
func BindFlags(flags *pflag.FlagSet) {
	d := def()
	for _, f := range stringFlags {
		flags.String(f.name, *f.field(&d), f.usage)
	}
	for _, f := range boolFlags {
		flags.Bool(f.name, *f.field(&d), f.usage)
	}
}

// ApplyFlags переносит в cfg флаги, заданные в командной строке.
func ApplyFlags(flags *pflag.FlagSet, cfg *Config) error {
	for _, f := range stringFlags {
		if fl := flags.Lookup(f.name); fl != nil && fl.Changed {
			*f.field(cfg) = strings.TrimSpace(fl.Value.String())
		}
	}
	for _, f := range boolFlags {
		if fl := flags.Lookup(f.name); fl != nil && fl.Changed {
			v, err := flags.GetBool(f.name)
			if err != nil {
				return err
			}
			*f.field(cfg) = v
		}
	}
	return nil
}
