package ordering

// Item is a single entry of an owner's list.
type Item struct {
	ID       string  `json:"id"`
	OwnerID  string  `json:"userId"`
	Label    string  `json:"label"`
	Position float64 `json:"position"`
	Color    string  `json:"color"`
	FgColor  string  `json:"fgColor"`
}

// Color is one palette entry: a background and the foreground readable on it.
type Color struct {
	Background string `json:"bg"`
	Foreground string `json:"fg"`
}

// Seed describes an item to create when a list is seeded or reset.
type Seed struct {
	Label    string  `json:"label"`
	Position float64 `json:"position"`
	Color    string  `json:"color"`
	FgColor  string  `json:"fgColor"`
}

// PositionUpdate is one row of a bulk position write.
type PositionUpdate struct {
	ItemID   string
	Position float64
}

// Settings exposes the parameters shared with seed and reset flows.
type Settings struct {
	Step       float64 `json:"step"`
	Threshold  float64 `json:"threshold"`
	ItemsCount int     `json:"itemsCount"`
	Palette    []Color `json:"palette"`
}
