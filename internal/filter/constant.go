package filter

// Rule names of the default input policy, in evaluation order.
const (
	RuleEmpty   = "empty"
	RuleBlocked = "blocked"
	RuleOnTopic = "on_topic"
)

// Refusal messages returned to the user.
const (
	RefusalEmpty    = "Please provide a valid message."
	RefusalBlocked  = "I cannot process requests related to security or private information."
	RefusalOffTopic = "Please ask questions related to loans and banking services."
)

// Redaction placeholders.
const (
	CardPlaceholder = "[CARD NUMBER REMOVED]"
	IDPlaceholder   = "[ID REMOVED]"
)

var (
	blockedPatterns = []string{
		`(?i)(hack|crack|exploit)`,
		`(?i)sql\s*injection`,
		`(?i)(password|credentials)`,
		`(?i)(api[\s_-]?key|access[\s_-]?token)`,
		`(?i)(private|confidential)\s+(data|information|details)`,
	}

	onTopicPatterns = []string{
		`(?i)(loan|lend|borrow|financ|credit|bank|document|mortgage|interest|repay|collateral|kyc|gst)`,
		`(?i)\bemi\b`,
	}

	// 13 to 19 digits in groups of four, '-' or whitespace between groups optional.
	cardPattern = `\b\d{4}(?:[-\s]?\d{4}){2}[-\s]?\d{1,4}(?:[-\s]?\d{1,3})?\b`

	idPattern = `\b\d{9,}\b`

	allowedPunctuation = ".,?!-_"
)
