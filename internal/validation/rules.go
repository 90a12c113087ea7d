package validation

import (
	"regexp"
	"strings"
)

// Rule is a single field-level check with the message shown when it
// fails. Non-required rules pass on empty values so that an empty field
// reports "required" rather than a format error; format and length
// messages only appear once the field has content.
type Rule struct {
	kind    string
	min     int
	pattern *regexp.Regexp
	message string
}

const (
	kindRequired  = "required"
	kindPattern   = "pattern"
	kindMinLength = "minlength"
)

func Required(message string) Rule {
	return Rule{kind: kindRequired, message: message}
}

func Pattern(pattern *regexp.Regexp, message string) Rule {
	return Rule{kind: kindPattern, pattern: pattern, message: message}
}

func MinLength(min int, message string) Rule {
	return Rule{kind: kindMinLength, min: min, message: message}
}

func (r Rule) Passes(value string) bool {
	switch r.kind {
	case kindRequired:
		return strings.TrimSpace(value) != ""
	case kindPattern:
		return value == "" || r.pattern.MatchString(value)
	case kindMinLength:
		return value == "" || len([]rune(value)) >= r.min
	}
	return true
}

func (r Rule) Message() string {
	return r.message
}

// RuleSet maps a field name to its active rules. Rules are listed in
// reporting precedence order: required before pattern before length.
type RuleSet map[string][]Rule
