package history

import "time"

// Build is one recorded compile.
type Build struct {
	ID           string
	SourcePath   string
	SourceSHA256 string
	OutputPath   string
	OutputSHA256 string
	Language     string
	LanguageTag  string
	Entries      int
	Blocks       int
	Size         int64
	CreatedAt    time.Time
}
