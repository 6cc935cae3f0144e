package termcolor

// Basic 8-colour indices used by the report.
const (
	Red   = 1
	Green = 2
)

func basic(color int) *int {
	return &color
}

// MarkerStyle is applied to every matched TODO marker and to the count line.
func MarkerStyle() Style {
	return Style{Bold: true, Underline: true, FGBasic: basic(Red)}
}

// CountStyle is applied to the final "Found N TODOs" line.
func CountStyle() Style {
	return MarkerStyle()
}

func LineNumberStyle() Style {
	return Style{FGBasic: basic(Green)}
}
