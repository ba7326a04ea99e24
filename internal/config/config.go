package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/cooffer/ZenParticlesBy3D/internal/cloud"
	"github.com/cooffer/ZenParticlesBy3D/internal/shape"
)

// Settings is everything the binary remembers between runs. Field-by-field
// validation keeps a half-broken file usable: each bad value falls back to
// its default with a logged warning instead of failing the load.
type Settings struct {
	Shape          string  `toml:"shape"`
	ColorMode      string  `toml:"color_mode"`
	BaseColor      string  `toml:"base_color"`
	SecondaryColor string  `toml:"secondary_color"`
	PointSize      float32 `toml:"point_size"`
	Opacity        float32 `toml:"opacity"`
	Scale          float32 `toml:"scale"`
	Width          int     `toml:"width"`
	Height         int     `toml:"height"`
	VSync          bool    `toml:"vsync"`
}

// Defaults returns the settings a fresh install starts from.
func Defaults() Settings {
	return Settings{
		Shape:          "sphere",
		ColorMode:      "gradient",
		BaseColor:      "#ff66aa",
		SecondaryColor: "#4400ff",
		PointSize:      3.0,
		Opacity:        0.8,
		Scale:          1.0,
		Width:          1280,
		Height:         800,
		VSync:          true,
	}
}

// GetSettingsPath returns the settings file location, creating the config
// directory if needed.
func GetSettingsPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	configDir := filepath.Join(homeDir, ".config", "zenparticles")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(configDir, "settings.toml"), nil
}

// Load reads settings from the default location.
func Load() (*Settings, error) {
	settingsPath, err := GetSettingsPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(settingsPath)
}

// LoadFrom reads and validates the settings file at path. A missing file is
// created with defaults; an unreadable or unparseable one degrades to
// defaults with a logged warning. Only I/O setup errors are fatal.
func LoadFrom(path string) (*Settings, error) {
	defaults := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Creating default settings file at %s", path)
			if err := Save(path, &defaults); err != nil {
				log.Printf("Failed to create default settings file: %v", err)
			}
			return &defaults, nil
		}
		return nil, err
	}

	// Check for unrecognised keys
	var rawSettings map[string]interface{}
	if err := toml.Unmarshal(data, &rawSettings); err != nil {
		log.Printf("Invalid settings file, using defaults: %v", err)
		return &defaults, nil
	}

	knownKeys := getKnownKeys(Settings{})
	for key := range rawSettings {
		if !knownKeys[key] {
			log.Printf("Warning: unrecognised setting key '%s' in settings file", key)
		}
	}

	settings := defaults
	if err := toml.Unmarshal(data, &settings); err != nil {
		log.Printf("Invalid settings file, using defaults: %v", err)
		return &defaults, nil
	}

	settings.validate(defaults)
	return &settings, nil
}

// Save writes settings to path as TOML.
func Save(path string, settings *Settings) error {
	data, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// validate resets each out-of-range field to its default, logging what it
// rejected.
func (s *Settings) validate(defaults Settings) {
	if _, ok := shape.ParseID(s.Shape); !ok {
		log.Printf("Unknown shape '%s', using default '%s'", s.Shape, defaults.Shape)
		s.Shape = defaults.Shape
	}
	if _, ok := cloud.ParseMode(s.ColorMode); !ok {
		log.Printf("Unknown color mode '%s', using default '%s'", s.ColorMode, defaults.ColorMode)
		s.ColorMode = defaults.ColorMode
	}
	if _, err := cloud.ParseHex(s.BaseColor); err != nil {
		log.Printf("Invalid base_color '%s', using default '%s'", s.BaseColor, defaults.BaseColor)
		s.BaseColor = defaults.BaseColor
	}
	if _, err := cloud.ParseHex(s.SecondaryColor); err != nil {
		log.Printf("Invalid secondary_color '%s', using default '%s'", s.SecondaryColor, defaults.SecondaryColor)
		s.SecondaryColor = defaults.SecondaryColor
	}
	if s.PointSize <= 0 || s.PointSize > 64 {
		log.Printf("Invalid point_size %.2f, must be in (0, 64], using default %.2f",
			s.PointSize, defaults.PointSize)
		s.PointSize = defaults.PointSize
	}
	if s.Opacity < 0 || s.Opacity > 1 {
		log.Printf("Invalid opacity %.2f, must be between 0.0 and 1.0, using default %.2f",
			s.Opacity, defaults.Opacity)
		s.Opacity = defaults.Opacity
	}
	if s.Scale <= 0.1 || s.Scale > 10 {
		log.Printf("Invalid scale %.2f, must be in (0.1, 10], using default %.2f",
			s.Scale, defaults.Scale)
		s.Scale = defaults.Scale
	}
	if s.Width < 160 || s.Width > 8192 {
		log.Printf("Invalid width %d, using default %d", s.Width, defaults.Width)
		s.Width = defaults.Width
	}
	if s.Height < 160 || s.Height > 8192 {
		log.Printf("Invalid height %d, using default %d", s.Height, defaults.Height)
		s.Height = defaults.Height
	}
}

func getKnownKeys(v interface{}) map[string]bool {
	keys := make(map[string]bool)
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if tomlTag := field.Tag.Get("toml"); tomlTag != "" {
			// Handle toml tags like "field,omitempty"
			tagName := strings.Split(tomlTag, ",")[0]
			if tagName != "-" {
				keys[tagName] = true
			}
		}
	}
	return keys
}
