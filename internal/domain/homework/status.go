// internal/domain/homework/status.go
package homework

import "sort"

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

var defaultVerdicts = map[Status]string{
	StatusApproved:  "The work has been reviewed: the reviewer liked everything. Hooray!",
	StatusReviewing: "The work has been taken for review by the reviewer.",
	StatusRejected:  "The work has been reviewed: the reviewer has comments.",
}

// Vocabulary maps known status codes to human-readable verdicts.
// It is built once at startup and never mutated afterwards.
type Vocabulary struct {
	verdicts map[Status]string
}

// DefaultVocabulary returns the built-in vocabulary.
func DefaultVocabulary() *Vocabulary {
	return NewVocabulary(nil)
}

// NewVocabulary returns the built-in vocabulary with overrides applied on top.
// Overrides with an empty verdict text are ignored.
func NewVocabulary(overrides map[string]string) *Vocabulary {
	verdicts := make(map[Status]string, len(defaultVerdicts)+len(overrides))
	for status, verdict := range defaultVerdicts {
		verdicts[status] = verdict
	}
	for status, verdict := range overrides {
		if status == "" || verdict == "" {
			continue
		}
		verdicts[Status(status)] = verdict
	}
	return &Vocabulary{verdicts: verdicts}
}

// Verdict looks up the display text for a status.
func (v *Vocabulary) Verdict(status Status) (string, bool) {
	verdict, ok := v.verdicts[status]
	return verdict, ok
}

// Statuses lists the known status codes in lexical order.
func (v *Vocabulary) Statuses() []Status {
	statuses := make([]Status, 0, len(v.verdicts))
	for status := range v.verdicts {
		statuses = append(statuses, status)
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i] < statuses[j] })
	return statuses
}
