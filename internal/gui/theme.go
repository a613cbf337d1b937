package gui

import (
	"image/color"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"flashdeck/internal/gui/components"
)

// deckTheme wraps the default theme, darkening the window background
// and substituting a user-provided font when one was loaded.
type deckTheme struct {
	base fyne.Theme
	font fyne.Resource
}

// NewTheme returns a theme using the TTF file at fontPath when it is
// present and readable. On any load failure the returned theme falls
// back to the built-in font, and the error is reported so the caller
// can log a warning; it is never fatal.
func NewTheme(fontPath string) (fyne.Theme, error) {
	t := &deckTheme{base: theme.DefaultTheme()}
	if fontPath == "" {
		return t, nil
	}

	data, err := os.ReadFile(fontPath)
	if err != nil {
		return t, err
	}

	t.font = fyne.NewStaticResource(filepath.Base(fontPath), data)
	return t, nil
}

func (t *deckTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if name == theme.ColorNameBackground {
		return components.ColorWindow
	}
	return t.base.Color(name, variant)
}

func (t *deckTheme) Font(style fyne.TextStyle) fyne.Resource {
	if t.font != nil && !style.Monospace {
		return t.font
	}
	return t.base.Font(style)
}

func (t *deckTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *deckTheme) Size(name fyne.ThemeSizeName) float32 {
	return t.base.Size(name)
}
