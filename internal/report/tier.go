package report

// Tier is one row of the coverage guideline table: the emoji, status label and
// shields.io badge color for a coverage band.
type Tier struct {
	Emoji      string
	Status     string
	BadgeColor string
}

// TierFor maps a numeric coverage percentage onto the guideline tiers
// documented in the report legend. The thresholds here and the legend text in
// Format describe the same bands.
func TierFor(percent float64) Tier {
	switch {
	case percent >= 80:
		return Tier{Emoji: "🟢", Status: "Excellent", BadgeColor: "brightgreen"}
	case percent >= 60:
		return Tier{Emoji: "🟡", Status: "Good", BadgeColor: "yellow"}
	case percent >= 40:
		return Tier{Emoji: "🟠", Status: "Fair", BadgeColor: "orange"}
	default:
		return Tier{Emoji: "🔴", Status: "Needs improvement", BadgeColor: "red"}
	}
}
