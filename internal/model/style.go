package model

// Style represents one of the fixed visual style labels offered by the UI.
// The zero value StyleNone means "no style selected" and is omitted from the
// generation request.
type Style string

const (
	// StyleNone means no style modifier is applied
	StyleNone Style = ""

	// StyleAbstract produces abstract shapes and patterns
	StyleAbstract Style = "abstract"

	// StyleNature produces landscapes and organic scenery
	StyleNature Style = "nature"

	// StyleNeon produces neon-lit, high-contrast imagery
	StyleNeon Style = "neon"

	// StyleMinimal produces clean, sparse compositions
	StyleMinimal Style = "minimal"

	// StyleSpace produces cosmic and astronomical imagery
	StyleSpace Style = "space"

	// StyleCyberpunk produces futuristic cityscape imagery
	StyleCyberpunk Style = "cyberpunk"
)

// AllStyles returns the selectable styles in display order, excluding
// StyleNone (the UI models "no style" as a cleared selection).
func AllStyles() []Style {
	return []Style{
		StyleAbstract,
		StyleNature,
		StyleNeon,
		StyleMinimal,
		StyleSpace,
		StyleCyberpunk,
	}
}

// String returns the human-readable label for the style.
func (s Style) String() string {
	switch s {
	case StyleNone:
		return "No style"
	case StyleAbstract:
		return "Abstract"
	case StyleNature:
		return "Nature"
	case StyleNeon:
		return "Neon"
	case StyleMinimal:
		return "Minimal"
	case StyleSpace:
		return "Space"
	case StyleCyberpunk:
		return "Cyberpunk"
	default:
		return string(s)
	}
}

// WireValue returns the value sent to the backend, empty for StyleNone.
func (s Style) WireValue() string {
	return string(s)
}

// StyleFromLabel maps a display label back to its Style. Unknown labels map
// to StyleNone, which keeps a cleared or stale UI selection harmless.
func StyleFromLabel(label string) Style {
	for _, s := range AllStyles() {
		if s.String() == label {
			return s
		}
	}
	return StyleNone
}
