// Package fonts installs the process-wide default font.
//
// SetGlobalFamily mutates the settings of the running fyne.App, so it is
// meant to be called once at startup before any window is shown.
package fonts

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

var ErrEmptyFamily = errors.New("font family must not be empty")

// FamilyTheme wraps the default theme and swaps the regular text font for
// the configured family when a font file was supplied.
type FamilyTheme struct {
	base    fyne.Theme
	family  string
	regular fyne.Resource
}

func (t *FamilyTheme) Family() string {
	return t.family
}

func (t *FamilyTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return t.base.Color(name, variant)
}

func (t *FamilyTheme) Font(style fyne.TextStyle) fyne.Resource {
	if t.regular != nil && !style.Monospace && !style.Symbol {
		return t.regular
	}
	return t.base.Font(style)
}

func (t *FamilyTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *FamilyTheme) Size(name fyne.ThemeSizeName) float32 {
	return t.base.Size(name)
}

// NewFamilyTheme loads the font at path, if any. Without a path the family
// is recorded and the toolkit's bundled font is used for rendering.
func NewFamilyTheme(family, path string) (*FamilyTheme, error) {
	family = strings.TrimSpace(family)
	if family == "" {
		return nil, ErrEmptyFamily
	}

	t := &FamilyTheme{base: theme.DefaultTheme(), family: family}
	if path == "" {
		return t, nil
	}

	res, err := fyne.LoadResourceFromPath(path)
	if err != nil {
		return nil, fmt.Errorf("load font %q from %s: %w", family, path, err)
	}
	t.regular = res
	return t, nil
}

func SetGlobalFamily(app fyne.App, family, path string) (*FamilyTheme, error) {
	t, err := NewFamilyTheme(family, path)
	if err != nil {
		return nil, err
	}
	app.Settings().SetTheme(t)
	return t, nil
}
