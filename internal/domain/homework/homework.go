// internal/domain/homework/homework.go
package homework

// Status is the review status code reported by the homework API, e.g. "approved".
type Status string

// Record represents one submission as returned in the "homeworks" list.
// It lives only for the cycle that fetched it.
type Record struct {
	Name   string // homework_name
	Status Status // status
}

// RawResponse is a decoded, not yet validated response body.
type RawResponse map[string]any

// PollResponse is a validated poll result.
type PollResponse struct {
	NextCursor int64    // current_date
	Homeworks  []Record // most recent submission first
}

// Latest returns the most recent submission, which is the first element of Homeworks.
func (r *PollResponse) Latest() (Record, bool) {
	if r == nil || len(r.Homeworks) == 0 {
		return Record{}, false
	}
	return r.Homeworks[0], true
}

// Field names of the homework API response.
const (
	FieldCurrentDate  = "current_date"
	FieldHomeworks    = "homeworks"
	FieldHomeworkName = "homework_name"
	FieldStatus       = "status"
)
