//go:build unit || e2e

package testutil

// Field mutates or removes a key in a request map; nil removes it.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}
