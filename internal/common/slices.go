package common

import "strings"

// UnknownStr is the String() result for values outside an enumeration.
const UnknownStr = "unknown"

// ContainsFold reports whether list contains s under Unicode case-folding.
func ContainsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}

	return false
}
