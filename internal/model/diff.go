package model

// FileDiff is the rendered change of one file between two stages.
type FileDiff struct {
	Path    Path
	NewPath Path // rename target, when Renamed
	Unified string
	Renamed bool
	Deleted bool
}

// StageDiff collects the file diffs one stage introduces.
type StageDiff struct {
	Scenario string
	Stage    string
	Summary  string
	Files    []FileDiff
}
