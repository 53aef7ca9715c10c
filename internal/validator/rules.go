package validator

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// NotBlank returns true if a string is not empty or contains only whitespace.
func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

// MinRunes returns true if a string is greater than or equal to a minimum number of n
func MinRunes(value string, n int) bool {
	return utf8.RuneCountInString(value) >= n
}

// MaxRunes returns true if a string is less than or equal to a maximum number of n
func MaxRunes(value string, n int) bool {
	return utf8.RuneCountInString(value) <= n
}

// Matches returns true if a string value matches a specific regexp pattern.
func Matches(value string, rx *regexp.Regexp) bool {
	return rx.MatchString(value)
}

// MatchesAny returns true if a string value matches any of the given patterns.
func MatchesAny(value string, rxs []*regexp.Regexp) bool {
	for _, rx := range rxs {
		if rx.MatchString(value) {
			return true
		}
	}
	return false
}

// ContainsFold returns true if s contains substr, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// ContainsAnyFold returns the first term from list contained in s ignoring
// case, and true if one was found. The list order is the detection order.
func ContainsAnyFold(s string, list []string) (string, bool) {
	lower := strings.ToLower(s)
	for _, term := range list {
		if strings.Contains(lower, strings.ToLower(term)) {
			return term, true
		}
	}
	return "", false
}

// ContainsWordFold returns true if s contains word as a whole token,
// ignoring case.
func ContainsWordFold(s, word string) bool {
	lower := strings.ToLower(s)
	word = strings.ToLower(word)
	for _, tok := range strings.FieldsFunc(lower, func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	}) {
		if tok == word {
			return true
		}
	}
	return false
}

// In returns true if a value is in a list of values.
func In[T comparable](value T, list ...T) bool {
	for i := range list {
		if value == list[i] {
			return true
		}
	}
	return false
}

// NoDuplicates returns true if all the values in a slice are unique.
func NoDuplicates[T comparable](values []T) bool {
	uniqueValues := make(map[T]bool)

	for _, value := range values {
		uniqueValues[value] = true
	}

	return len(values) == len(uniqueValues)
}
