package core

import "fmt"

// IntToStringFixedWidth left-pads num with spaces to width. Longer numbers are
// not truncated.
func IntToStringFixedWidth(num int, width int) string {
	return fmt.Sprintf("%*d", width, num)
}

// TruncateName shortens name to at most max runes
func TruncateName(name string, max int) string {
	r := []rune(name)
	if len(r) <= max {
		return name
	}
	return string(r[:max])
}
