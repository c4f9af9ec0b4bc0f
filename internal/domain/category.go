package domain

// Category is the normalized intent of a search.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryEmpty
	CategoryBeach
	CategoryTemple
	CategoryCountry
)

// String returns the lowercase name used in hints and API responses.
func (c Category) String() string {
	switch c {
	case CategoryEmpty:
		return "empty"
	case CategoryBeach:
		return "beach"
	case CategoryTemple:
		return "temple"
	case CategoryCountry:
		return "country"
	default:
		return "unknown"
	}
}

// ParseCategory maps a canonical category name back to its Category.
// Anything other than beach, temple or country yields CategoryUnknown.
func ParseCategory(s string) Category {
	switch s {
	case "beach":
		return CategoryBeach
	case "temple":
		return CategoryTemple
	case "country":
		return CategoryCountry
	default:
		return CategoryUnknown
	}
}

// Keyword is the result of normalizing raw search input.
// Text holds the cleaned input and is what gets echoed back for unknown keywords.
type Keyword struct {
	Category Category
	Text     string
}

// IsEmpty reports whether the input carried no usable text.
func (k Keyword) IsEmpty() bool {
	return k.Category == CategoryEmpty
}

// Recognized reports whether the keyword names one of the searchable categories.
func (k Keyword) Recognized() bool {
	switch k.Category {
	case CategoryBeach, CategoryTemple, CategoryCountry:
		return true
	}
	return false
}
