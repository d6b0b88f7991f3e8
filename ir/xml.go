package ir

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ValidName reports whether s can be written as an element or attribute
// name.
func ValidName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == ':' || unicode.IsLetter(r):
		case i == 0:
			return false
		case r == '-' || r == '.' || r == 0xB7 || unicode.IsDigit(r) || unicode.IsMark(r):
		default:
			return false
		}
	}
	return true
}

// ValidText reports whether every character of s can appear in an XML
// document.
func ValidText(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
		case r >= 0x20 && r <= 0xD7FF:
		case r >= 0xE000 && r <= 0xFFFD:
		case r >= 0x10000 && r <= 0x10FFFF:
		default:
			return false
		}
	}
	return true
}

// ValidComment reports whether text can be written between "<!--" and
// "-->" and read back unchanged.
func ValidComment(text string) bool {
	return !strings.Contains(text, "--") &&
		!strings.HasSuffix(text, "-") &&
		!strings.Contains(text, "\r") &&
		ValidText(text)
}

// ValidListEntry reports whether v survives being joined into a
// ";"-separated attribute and split again.
func ValidListEntry(v string) bool {
	return v != "" && !strings.Contains(v, ";") && strings.TrimSpace(v) == v
}

var itemAttrs = map[string]bool{
	"Include":   true,
	"Remove":    true,
	"Update":    true,
	"Exclude":   true,
	"Condition": true,
}

var taskAttrs = map[string]bool{
	"Condition":       true,
	"ContinueOnError": true,
}

// IsItemAttr reports whether name is an attribute with a fixed meaning on
// item elements, and so cannot hold metadata.
func IsItemAttr(name string) bool {
	return itemAttrs[name]
}

// IsTaskAttr reports whether name is an attribute with a fixed meaning on
// task elements, and so cannot be a parameter.
func IsTaskAttr(name string) bool {
	return taskAttrs[name]
}
