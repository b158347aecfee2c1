package filter

import (
	"strings"
	"unicode"
)

// Filter applies the input policy and the output redaction.
// A Filter is immutable after New and safe for concurrent use.
type Filter struct {
	rules     []Rule
	redactors []Redactor
}

// New creates a Filter with the default policy unless overridden.
func New(opts ...Option) *Filter {
	f := &Filter{
		rules:     DefaultRules(),
		redactors: DefaultRedactors(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// WithRules replaces the input policy.
func WithRules(rules ...Rule) Option {
	return func(f *Filter) {
		f.rules = rules
	}
}

// WithRedactors replaces the output redactors.
func WithRedactors(redactors ...Redactor) Option {
	return func(f *Filter) {
		f.redactors = redactors
	}
}

// FilterInput evaluates the rules in order. The first rejecting rule wins.
func (f *Filter) FilterInput(text string) Verdict {
	for _, rule := range f.rules {
		if rule.Reject(text) {
			return Verdict{Accepted: false, Text: rule.Refusal, Rule: rule.Name}
		}
	}
	return Verdict{Accepted: true, Text: Sanitize(text)}
}

// FilterOutput redacts sensitive numbers from model output. It never rejects.
func (f *Filter) FilterOutput(text string) string {
	for _, r := range f.redactors {
		text = r.Apply(text)
	}
	return text
}

// Sanitize drops every character outside letters, numbers, whitespace
// and the punctuation . , ? ! - _
func Sanitize(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) ||
			strings.ContainsRune(allowedPunctuation, r) {
			return r
		}
		return -1
	}, text)
}
