package domain

import "strings"

// Lines splits puzzle text into lines, dropping a trailing newline and
// any carriage returns.
func Lines(text string) []string {
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
