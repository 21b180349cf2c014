package catalog

import "strings"

const (
	fontVariationSources  = 20
	colorVariationSources = 15
)

var fontWeights = []struct {
	weight string
	label  string
}{
	{"300", "Light"},
	{"normal", "Regular"},
	{"500", "Medium"},
	{"600", "Semi-Bold"},
	{"bold", "Bold"},
	{"800", "Extra-Bold"},
}

// fontVariations derives one entry per weight for the leading fonts.
func fontVariations(base []Font) []Font {
	n := min(len(base), fontVariationSources)
	out := make([]Font, 0, n*len(fontWeights))
	for _, font := range base[:n] {
		for _, w := range fontWeights {
			v := font
			v.ID = font.ID + "-" + w.weight
			v.Name = font.Name + " " + w.label
			v.Weight = w.weight
			out = append(out, v)
		}
	}
	return out
}

// colorVariations derives light and dark shades for the leading colors by
// changing the alpha of the highlight overlay.
func colorVariations(base []Color) []Color {
	n := min(len(base), colorVariationSources)
	out := make([]Color, 0, n*2)
	for _, color := range base[:n] {
		out = append(out,
			shade(color, "light", "Light", "0.2"),
			shade(color, "dark", "Dark", "0.6"),
		)
	}
	return out
}

func shade(color Color, suffix, label, alpha string) Color {
	return Color{
		ID:       color.ID + "-" + suffix,
		Name:     color.Name + " " + label,
		HexColor: color.HexColor,
		RGBA:     strings.Replace(color.RGBA, "0.4)", alpha+")", 1),
		Category: color.Category + "-" + suffix,
	}
}
