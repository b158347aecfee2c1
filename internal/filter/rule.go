package filter

import (
	"regexp"
	"strings"
)

// EmptyRule rejects empty or whitespace-only input.
func EmptyRule() Rule {
	return Rule{
		Name:    RuleEmpty,
		Refusal: RefusalEmpty,
		Reject: func(text string) bool {
			return strings.TrimSpace(text) == ""
		},
	}
}

// DenyRule rejects input matching any of the patterns.
func DenyRule(name, refusal string, patterns ...string) Rule {
	res := compileAll(patterns)
	return Rule{
		Name:    name,
		Refusal: refusal,
		Reject: func(text string) bool {
			for _, re := range res {
				if re.MatchString(text) {
					return true
				}
			}
			return false
		},
	}
}

// RequireRule rejects input matching none of the patterns.
func RequireRule(name, refusal string, patterns ...string) Rule {
	deny := DenyRule(name, refusal, patterns...)
	return Rule{
		Name:    name,
		Refusal: refusal,
		Reject: func(text string) bool {
			return !deny.Reject(text)
		},
	}
}

// DefaultRules returns the input policy in evaluation order:
// empty, blocked, on_topic.
func DefaultRules() []Rule {
	return []Rule{
		EmptyRule(),
		DenyRule(RuleBlocked, RefusalBlocked, blockedPatterns...),
		RequireRule(RuleOnTopic, RefusalOffTopic, onTopicPatterns...),
	}
}

// NewRedactor compiles pattern into a Redactor. It panics on an invalid pattern.
func NewRedactor(name, pattern, replacement string) Redactor {
	return Redactor{
		Name:        name,
		Pattern:     regexp.MustCompile(pattern),
		Replacement: replacement,
	}
}

// DefaultRedactors returns the output redactors in application order.
// Cards run first so a grouped card number is not reported as an id.
func DefaultRedactors() []Redactor {
	return []Redactor{
		NewRedactor("card_number", cardPattern, CardPlaceholder),
		NewRedactor("id_number", idPattern, IDPlaceholder),
	}
}

// Apply rewrites text.
func (r Redactor) Apply(text string) string {
	return r.Pattern.ReplaceAllLiteralString(text, r.Replacement)
}

func compileAll(patterns []string) []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		res[i] = regexp.MustCompile(p)
	}
	return res
}
