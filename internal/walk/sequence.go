package walk

import "strconv"

// Sequence returns an IDFunc yielding "1", "2", "3", ... Used where
// predictable ids matter more than global uniqueness.
func Sequence() IDFunc {
	var n uint64
	return func() string {
		n++
		return strconv.FormatUint(n, 10)
	}
}
