package filter

import "regexp"

// Verdict is the outcome of input filtering.
// When Accepted, Text is the sanitized message; otherwise it is the refusal.
type Verdict struct {
	Accepted bool
	Text     string
	Rule     string
}

// Rule is one named step of the input policy.
type Rule struct {
	Name    string
	Refusal string
	Reject  func(text string) bool
}

// Redactor rewrites every match of Pattern to Replacement.
type Redactor struct {
	Name        string
	Pattern     *regexp.Regexp
	Replacement string
}

// Option configures a Filter.
type Option func(*Filter)
