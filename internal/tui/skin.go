package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Skin is a named color palette. Custom skins are YAML files in
// <configDir>/skins/<name>.yaml; missing colors fall back to the default skin.
type Skin struct {
	Name   string     `yaml:"name"`
	Colors SkinColors `yaml:"colors"`
}

// SkinColors holds lipgloss color strings (ANSI numbers or hex).
type SkinColors struct {
	Bar      string `yaml:"bar"`
	Accent   string `yaml:"accent"`
	Muted    string `yaml:"muted"`
	Text     string `yaml:"text"`
	Success  string `yaml:"success"`
	Failed   string `yaml:"failed"`
	Upcoming string `yaml:"upcoming"`
	Warning  string `yaml:"warning"`
}

var builtinSkins = map[string]Skin{
	"default": {
		Name: "default",
		Colors: SkinColors{
			Bar:      "#1B2A4A",
			Accent:   "39",
			Muted:    "244",
			Text:     "255",
			Success:  "42",
			Failed:   "196",
			Upcoming: "208",
			Warning:  "220",
		},
	},
	"mono": {
		Name: "mono",
		Colors: SkinColors{
			Bar:      "236",
			Accent:   "255",
			Muted:    "245",
			Text:     "255",
			Success:  "252",
			Failed:   "250",
			Upcoming: "248",
			Warning:  "250",
		},
	},
}

// ErrSkinNotFound is returned when neither a builtin nor a file skin matches.
var ErrSkinNotFound = errors.New("skin not found")

// LoadSkin resolves a skin by name without applying it.
func LoadSkin(name, configDir string) (Skin, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "default"
	}
	if s, ok := builtinSkins[name]; ok {
		return s, nil
	}
	if configDir == "" {
		return Skin{}, fmt.Errorf("%w: %s", ErrSkinNotFound, name)
	}

	path := filepath.Join(configDir, "skins", name+".yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Skin{}, fmt.Errorf("%w: %s", ErrSkinNotFound, name)
		}
		return Skin{}, fmt.Errorf("reading skin %s: %w", path, err)
	}

	var s Skin
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Skin{}, fmt.Errorf("parsing skin %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = name
	}
	s.Colors = s.Colors.withDefaults(builtinSkins["default"].Colors)
	return s, nil
}

// InitializeSkin loads and applies a skin. On error the default skin stays
// active.
func InitializeSkin(name, configDir string) error {
	s, err := LoadSkin(name, configDir)
	if err != nil {
		applySkin(builtinSkins["default"])
		return err
	}
	applySkin(s)
	return nil
}

func applySkin(s Skin) {
	c := s.Colors
	ColorNavy = lipgloss.Color(c.Bar)
	ColorBlue = lipgloss.Color(c.Accent)
	ColorGray = lipgloss.Color(c.Muted)
	ColorWhite = lipgloss.Color(c.Text)
	ColorGreen = lipgloss.Color(c.Success)
	ColorRed = lipgloss.Color(c.Failed)
	ColorOrange = lipgloss.Color(c.Upcoming)
	ColorYellow = lipgloss.Color(c.Warning)
	rebuildStyles()
}

func (c SkinColors) withDefaults(d SkinColors) SkinColors {
	pick := func(v, def string) string {
		if strings.TrimSpace(v) == "" {
			return def
		}
		return v
	}
	return SkinColors{
		Bar:      pick(c.Bar, d.Bar),
		Accent:   pick(c.Accent, d.Accent),
		Muted:    pick(c.Muted, d.Muted),
		Text:     pick(c.Text, d.Text),
		Success:  pick(c.Success, d.Success),
		Failed:   pick(c.Failed, d.Failed),
		Upcoming: pick(c.Upcoming, d.Upcoming),
		Warning:  pick(c.Warning, d.Warning),
	}
}
