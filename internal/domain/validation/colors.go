// Package validation holds value checks shared by configuration and the UI.
package validation

import "regexp"

var hexColorRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// IsHexColor reports whether value is a #RRGGBB color.
func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// NamedColor is a palette entry checked by ValidatePaletteHex.
type NamedColor struct {
	Name  string
	Value string
}

// ValidatePaletteHex returns one message per color that is not #RRGGBB.
// Messages are prefixed with the palette path, e.g. "appearance.dark_palette.accent".
func ValidatePaletteHex(prefix string, colors ...NamedColor) []string {
	var errs []string
	for _, c := range colors {
		if !IsHexColor(c.Value) {
			errs = append(errs, prefix+"."+c.Name+" must be a hex color like #RRGGBB")
		}
	}
	return errs
}
