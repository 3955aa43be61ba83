package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// WorkDays holds weekday indices (0 = Sunday .. 6 = Saturday) stored as a jsonb array.
type WorkDays []int

// DefaultWorkDays is Monday through Friday.
var DefaultWorkDays = WorkDays{1, 2, 3, 4, 5}

// Value implements driver.Valuer
func (w WorkDays) Value() (driver.Value, error) {
	if w == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]int(w))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (w *WorkDays) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*w = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported work_days type %T", src)
	}
	var days []int
	if err := json.Unmarshal(raw, &days); err != nil {
		return fmt.Errorf("decode work_days: %w", err)
	}
	*w = days
	return nil
}

// OrDefault returns DefaultWorkDays when no days are set.
func (w WorkDays) OrDefault() WorkDays {
	if len(w) == 0 {
		return DefaultWorkDays
	}
	return w
}
