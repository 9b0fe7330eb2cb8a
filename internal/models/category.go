package models

// Category identifies one of the fixed question packs
type Category string

const (
	// CategoryExtreme is the "Extreme 18+" question pack
	CategoryExtreme Category = "extreme_18"

	// CategoryAdult is the "18+" question pack
	CategoryAdult Category = "18plus"

	// CategoryLife is the "Life" question pack
	CategoryLife Category = "life"

	// CategoryAll merges every pack into a single universe
	CategoryAll Category = "all"
)

// Categories lists every selectable category in display order
var Categories = []Category{CategoryExtreme, CategoryAdult, CategoryLife, CategoryAll}

// IsValid reports whether c names a selectable category
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// DisplayName returns the category label shown to players
func (c Category) DisplayName() string {
	switch c {
	case CategoryExtreme:
		return "Extreme 18+"
	case CategoryAdult:
		return "18+"
	case CategoryLife:
		return "Life"
	case CategoryAll:
		return "All Categories"
	default:
		return string(c)
	}
}
