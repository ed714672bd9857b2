// file: validation/empty.go

package validation

// IsEmpty reports whether value belongs to the canonical empty set: nil,
// "", " ", an empty object or an empty array. The check does not depend on
// the field kind.
func IsEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == "" || v == " "
	case map[string]any:
		return len(v) == 0
	case []any:
		return len(v) == 0
	case []int:
		return len(v) == 0
	}
	return false
}
