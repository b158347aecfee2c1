package session

import (
	"fmt"
	"strings"
)

// RetentionPolicy decides what happens to turns older than the window.
type RetentionPolicy string

const (
	// RetentionSummarize keeps the full log; older turns are folded into a
	// summary when the history is formatted.
	RetentionSummarize RetentionPolicy = "summarize"

	// RetentionTruncate keeps only the most recent 2*W turns.
	RetentionTruncate RetentionPolicy = "truncate"
)

// ParseRetention parses a configured policy name. Empty means summarize.
func ParseRetention(s string) (RetentionPolicy, error) {
	switch RetentionPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", RetentionSummarize:
		return RetentionSummarize, nil
	case RetentionTruncate:
		return RetentionTruncate, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRetention, s)
	}
}

// Stats is a point-in-time view of the store.
type Stats struct {
	Sessions int `json:"sessions"`
	Turns    int `json:"turns"`
}

// MaxTurns is the number of raw turns kept verbatim for a window of w exchanges.
func MaxTurns(w int) int {
	return 2 * w
}
