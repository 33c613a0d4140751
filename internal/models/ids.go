package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// IDList is an ordered list of document ids. SQL stores keep it as a JSON
// text column, Mongo stores it as a string array.
type IDList []string

// Value implements driver.Valuer
func (l IDList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (l *IDList) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = IDList{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("cannot scan %T into IDList", src)
	}
	ids := []string{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &ids); err != nil {
			return fmt.Errorf("invalid IDList value: %w", err)
		}
	}
	*l = ids
	return nil
}
