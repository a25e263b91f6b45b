package receipt

import "time"

// DisplayDate formats t as "9-Feb-2025" (no zero padding on the day).
// A zero time yields an empty string so missing dates degrade to blank text
// instead of aborting generation.
func DisplayDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2-Jan-2006")
}

// NumericDate formats t as "09/02/2025". Zero time yields "".
func NumericDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}
