package domain

import "strings"

// Word is a tracked vocabulary entry
type Word struct {
	ID          int    `json:"id"`
	Original    string `json:"original"`
	Translation string `json:"translation"`
	Status      Status `json:"status"`
}

// Status is the learner's self-reported mastery of a word
type Status string

const (
	StatusNew      Status = "new"
	StatusLearning Status = "learning"
	StatusKnown    Status = "known"
)

// statusOrder is the cycle order: new < learning < known, then back to new
var statusOrder = []Status{StatusNew, StatusLearning, StatusKnown}

// Statuses returns all statuses in cycle order
func Statuses() []Status {
	out := make([]Status, len(statusOrder))
	copy(out, statusOrder)
	return out
}

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusLearning, StatusKnown:
		return true
	}
	return false
}

// Rank returns the position of s in the cycle, or -1 for an invalid status
func (s Status) Rank() int {
	for i, st := range statusOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// Next returns the successor of s in the cycle new → learning → known → new.
// An invalid status is treated as new.
func (s Status) Next() Status {
	i := s.Rank()
	if i < 0 {
		return StatusNew
	}
	return statusOrder[(i+1)%len(statusOrder)]
}

// Label returns the display label for s
func (s Status) Label() string {
	switch s {
	case StatusNew:
		return "🆕 new"
	case StatusLearning:
		return "📖 learning"
	case StatusKnown:
		return "✅ known"
	}
	return string(s)
}

// ParseStatus parses a status name, ignoring case and surrounding whitespace
func ParseStatus(value string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(value)))
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// Counts holds the number of words per status
type Counts struct {
	New      int `json:"new"`
	Learning int `json:"learning"`
	Known    int `json:"known"`
}

// Total returns the number of counted words
func (c Counts) Total() int {
	return c.New + c.Learning + c.Known
}

// NormalizeText returns the comparison form of a word. Only case is ignored.
func NormalizeText(text string) string {
	return strings.ToLower(text)
}
