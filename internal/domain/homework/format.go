// internal/domain/homework/format.go
package homework

import "fmt"

// NoUpdatesMessage is sent when a poll returns no submissions.
const NoUpdatesMessage = "No new statuses."

// Format turns a record into the notification text, or returns
// *UnknownStatusError if its status is not in the vocabulary.
func (v *Vocabulary) Format(record Record) (string, error) {
	verdict, ok := v.Verdict(record.Status)
	if !ok {
		return "", &UnknownStatusError{HomeworkName: record.Name, Status: record.Status}
	}
	return fmt.Sprintf("Status changed for submission \"%s\". %s", record.Name, verdict), nil
}
