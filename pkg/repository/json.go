package repository

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSON adapts a Go value to a JSONB column.
type JSON[T any] struct {
	V T
}

// Value encodes the wrapped value as JSON text.
func (j JSON[T]) Value() (driver.Value, error) {
	b, err := json.Marshal(j.V)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan decodes a JSON column into the wrapped value. NULL yields the zero value.
func (j *JSON[T]) Scan(src any) error {
	var zero T
	switch v := src.(type) {
	case nil:
		j.V = zero
		return nil
	case []byte:
		return json.Unmarshal(v, &j.V)
	case string:
		return json.Unmarshal([]byte(v), &j.V)
	default:
		return fmt.Errorf("repository: cannot scan %T into JSON", src)
	}
}

// JSONArg wraps v for use as a query argument. A nil pointer becomes SQL NULL,
// which lets COALESCE-based partial updates keep the stored value.
func JSONArg[T any](v *T) any {
	if v == nil {
		return nil
	}
	return JSON[T]{V: *v}
}
