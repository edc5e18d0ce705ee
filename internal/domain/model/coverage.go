package model

// CoverageSummary carries the already-computed coverage figures for one CI run.
// Emoji, Status and BadgeColor are supplied by the caller (or derived via
// report.TierFor); this type does not interpret the coverage value.
type CoverageSummary struct {
	Coverage   string // Raw percentage string as reported, e.g. "75.5%".
	Emoji      string
	Status     string
	BadgeColor string // shields.io color name, e.g. "brightgreen".
}
