// internal/domain/homework/validate.go
package homework

import (
	"encoding/json"
	"fmt"
	"math"
)

// Validate checks a decoded response body for the cursor and the homeworks list
// and converts it into a PollResponse. The raw value is not modified.
// An empty homeworks list is valid. Only the latest record (index 0) must carry
// string homework_name and status; older records need only be objects, and
// fields of the wrong type are left empty.
func Validate(raw RawResponse) (*PollResponse, error) {
	if raw == nil {
		return nil, &ValidationError{Field: "response", Reason: "is empty"}
	}

	rawCursor, ok := raw[FieldCurrentDate]
	if !ok {
		return nil, &ValidationError{Field: FieldCurrentDate, Reason: "is missing"}
	}
	cursor, ok := asInt64(rawCursor)
	if !ok {
		return nil, &ValidationError{Field: FieldCurrentDate, Reason: fmt.Sprintf("must be an integer, got %T", rawCursor)}
	}

	rawHomeworks, ok := raw[FieldHomeworks]
	if !ok {
		return nil, &ValidationError{Field: FieldHomeworks, Reason: "is missing"}
	}
	items, ok := rawHomeworks.([]any)
	if !ok {
		return nil, &ValidationError{Field: FieldHomeworks, Reason: fmt.Sprintf("must be a list, got %T", rawHomeworks)}
	}

	records := make([]Record, 0, len(items))
	for i, item := range items {
		record, err := toRecord(i, item, i == 0)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return &PollResponse{NextCursor: cursor, Homeworks: records}, nil
}

func toRecord(index int, item any, strict bool) (Record, error) {
	obj, ok := item.(map[string]any)
	if !ok {
		return Record{}, &ValidationError{
			Field:  fmt.Sprintf("%s[%d]", FieldHomeworks, index),
			Reason: fmt.Sprintf("must be an object, got %T", item),
		}
	}

	if !strict {
		name, _ := obj[FieldHomeworkName].(string)
		status, _ := obj[FieldStatus].(string)
		return Record{Name: name, Status: Status(status)}, nil
	}

	name, err := stringField(index, obj, FieldHomeworkName)
	if err != nil {
		return Record{}, err
	}
	status, err := stringField(index, obj, FieldStatus)
	if err != nil {
		return Record{}, err
	}
	return Record{Name: name, Status: Status(status)}, nil
}

func stringField(index int, obj map[string]any, key string) (string, error) {
	field := fmt.Sprintf("%s[%d].%s", FieldHomeworks, index, key)
	value, ok := obj[key]
	if !ok {
		return "", &ValidationError{Field: field, Reason: "is missing"}
	}
	s, ok := value.(string)
	if !ok {
		return "", &ValidationError{Field: field, Reason: fmt.Sprintf("must be a string, got %T", value)}
	}
	return s, nil
}

// asInt64 accepts the integer representations produced by encoding/json
// (json.Number with UseNumber, float64 otherwise) and by hand-built maps.
func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) || n > math.MaxInt64 || n < math.MinInt64 {
			return 0, false
		}
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	default:
		return 0, false
	}
}
