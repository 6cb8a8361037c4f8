package util

import (
	"strings"
)

// StringToPointer converts a string to a pointer to a string
func StringToPointer(str string) *string {
	return &str
}

// StringToPointerIfNotEmpty converts a string to a pointer to a string if the string is not empty
func StringToPointerIfNotEmpty(str string) *string {
	if str == "" {
		return nil
	}
	return &str
}

// FromPointer returns the value of a pointer, or the zero value if the pointer is nil
func FromPointer[T comparable](s *T) T {
	if s == nil {
		return *new(T)
	}
	return *s
}

// FirstNonEmptyString returns the first non-empty string in the given list
func FirstNonEmptyString(strs ...string) string {
	for _, s := range strs {
		if strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}
