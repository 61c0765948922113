package sequence

import (
	"fmt"
	"regexp"
	"strconv"
)

var suffixPattern = regexp.MustCompile(`\d+$`)

// NextPrefixed computes the next ID in a namespace of string IDs shaped like
// <prefix><zero-padded digits>. It scans every existing ID and takes the true
// numeric maximum of the trailing digit run; a descending sort on the string
// column is not a safe substitute. IDs without a numeric suffix are ignored.
// An empty namespace starts at 1.
//
// The computation is not safe under concurrent creation: two requests can
// observe the same set of IDs and derive the same next value.
func NextPrefixed(ids []string, prefix string, width int) string {
	next := 1
	for _, id := range ids {
		match := suffixPattern.FindString(id)
		if match == "" {
			continue
		}
		n, err := strconv.Atoi(match)
		if err != nil {
			continue
		}
		if n+1 > next {
			next = n + 1
		}
	}
	return fmt.Sprintf("%s%0*d", prefix, width, next)
}

// NextNumeric computes the next numeric ID given the current maximum.
// A zero (or negative) maximum means no records exist yet.
func NextNumeric(max int) int {
	if max < 1 {
		return 1
	}
	return max + 1
}
