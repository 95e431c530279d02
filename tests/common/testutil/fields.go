//go:build unit || e2e

package testutil

// Field sets key to value; a nil value removes the key.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}

// NullField keeps the key but sets it to JSON null.
func NullField(key string) func(m map[string]any) {
	return func(m map[string]any) {
		m[key] = nil
	}
}
