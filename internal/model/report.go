package model

// Severity grades a verification finding.
type Severity int

const (
	// SeverityWarning marks findings that do not fail verification (e.g. TBD
	// placeholders awaiting a build).
	SeverityWarning Severity = iota
	// SeverityError marks integrity violations that fail verification.
	SeverityError
)

// String returns the lowercase label used in reports.
func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}

	return "warning"
}

// Finding is one verification result: a check applied to a commit-map entry
// and what it observed.
type Finding struct {
	Scenario string
	Stage    string
	Check    string
	Severity Severity
	Detail   string
}

// VerifyReport collects the findings of a corpus verification run.
type VerifyReport struct {
	Entries  int
	Findings []Finding
}

// Failed reports whether any finding is an error.
func (r VerifyReport) Failed() bool {
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			return true
		}
	}

	return false
}

// Errors returns the number of error-severity findings.
func (r VerifyReport) Errors() int {
	n := 0

	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			n++
		}
	}

	return n
}

// Warnings returns the number of warning-severity findings.
func (r VerifyReport) Warnings() int {
	return len(r.Findings) - r.Errors()
}

// BuildResult summarizes what a build produced for one stage.
type BuildResult struct {
	Scenario string
	Stage    string
	SHA      string
	Skipped  bool
	Files    int
}
