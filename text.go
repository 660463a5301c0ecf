package matchsort

import "fmt"

// MatchTexter lets arbitrary item types expose their matchable text for
// no-keys mode.
type MatchTexter interface {
	// MatchText returns the item's primary matchable text.
	MatchText() string
}

// matchText extracts the text view of an item in no-keys mode. Strings,
// string pointers, and byte slices are handled directly; other types can
// implement MatchTexter or fmt.Stringer.
func matchText(item any) (string, bool) {
	switch v := item.(type) {
	case string:
		return v, true
	case *string:
		if v == nil {
			return "", false
		}
		return *v, true
	case []byte:
		return string(v), true
	case MatchTexter:
		return v.MatchText(), true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}
