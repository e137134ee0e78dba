package stvalue

import (
	"regexp"
	"strconv"
	"strings"
)

// timeSegment matches one "<number><unit>" chunk of a TIME literal.
var timeSegment = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)(ms|d|h|m|s)`)

// ParseTimeLiteral parses T#/TIME# literals (spec.md §6 "Literal
// formats"), e.g. "T#1h30m", "TIME#500ms". Returns ok=false if the
// string does not carry a recognized prefix.
func ParseTimeLiteral(s string) (int64, bool) {
	trimmed := strings.TrimSpace(s)
	lower := strings.ToUpper(trimmed)
	var rest string
	switch {
	case strings.HasPrefix(lower, "TIME#"):
		rest = trimmed[len("TIME#"):]
	case strings.HasPrefix(lower, "T#"):
		rest = trimmed[len("T#"):]
	default:
		return 0, false
	}

	matches := timeSegment.FindAllStringSubmatch(rest, -1)
	if len(matches) == 0 {
		return 0, false
	}

	var totalMs float64
	for _, m := range matches {
		n, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, false
		}
		switch strings.ToLower(m[2]) {
		case "d":
			totalMs += n * 24 * 60 * 60 * 1000
		case "h":
			totalMs += n * 60 * 60 * 1000
		case "m":
			totalMs += n * 60 * 1000
		case "s":
			totalMs += n * 1000
		case "ms":
			totalMs += n
		}
	}
	return int64(totalMs), true
}

// ParseIntLiteral parses decimal, 16#HEX, and 2#BIN integer literals
// (spec.md §6), stripping readability underscores from binary literals.
func ParseIntLiteral(s string) (int64, bool) {
	trimmed := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(trimmed, "16#"):
		v, err := strconv.ParseInt(trimmed[3:], 16, 64)
		return v, err == nil
	case strings.HasPrefix(trimmed, "2#"):
		bin := strings.ReplaceAll(trimmed[2:], "_", "")
		v, err := strconv.ParseInt(bin, 2, 64)
		return v, err == nil
	default:
		v, err := strconv.ParseInt(trimmed, 10, 64)
		return v, err == nil
	}
}

// ParseBoolLiteral parses TRUE/FALSE, case-insensitive.
func ParseBoolLiteral(s string) (bool, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRUE":
		return true, true
	case "FALSE":
		return false, true
	default:
		return false, false
	}
}
