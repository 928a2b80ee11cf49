package ordering

import "fmt"

// DefaultPalette is the fixed, ordered set of colors assigned to seeded items.
var DefaultPalette = []Color{
	{Background: "rgb(246, 81, 29)", Foreground: "white"},
	{Background: "rgb(127, 184, 0)", Foreground: "white"},
	{Background: "rgb(255, 180, 0)", Foreground: "black"},
	{Background: "rgb(0, 166, 237)", Foreground: "white"},
	{Background: "rgb(13, 44, 84)", Foreground: "white"},
}

// Seeds builds count seed records. Record i receives position (i+1)*step, so
// the first key leaves a full step of headroom above zero.
func Seeds(count int, step float64, palette []Color) []Seed {
	if count <= 0 || len(palette) == 0 {
		return []Seed{}
	}

	seeds := make([]Seed, count)
	for i := range seeds {
		c := palette[i%len(palette)]
		seeds[i] = Seed{
			Label:    fmt.Sprintf("Item %d", i+1),
			Position: float64(i+1) * step,
			Color:    c.Background,
			FgColor:  c.Foreground,
		}
	}
	return seeds
}
