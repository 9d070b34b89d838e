package query

// SortField names a projected view field and its direction.
type SortField struct {
	Field      string `json:"field"`
	Descending bool   `json:"descending"`
}

// SortOptions maps client-facing sort keys (for example "alphabetical") to
// the ordering they produce. A nil or missing entry means the key is unknown.
type SortOptions map[string][]SortField

// Resolve looks up key. An empty key resolves to no explicit ordering.
func (o SortOptions) Resolve(key string) ([]SortField, bool) {
	if key == "" {
		return nil, true
	}
	fields, ok := o[key]
	return fields, ok
}

// Keys lists the accepted sort keys.
func (o SortOptions) Keys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	return keys
}
