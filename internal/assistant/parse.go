package assistant

import (
	"strings"
	"unicode"
)

// ParseInput splits a line into the lower-cased command and the remaining text. The remaining text
// is trimmed but otherwise kept as entered, so titles and contents keep their inner spacing.
func ParseInput(line string) (cmd string, rest string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", ""
	}
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return strings.ToLower(line), ""
	}
	return strings.ToLower(line[:i]), strings.TrimSpace(line[i:])
}

// splitLast splits the whitespace separated words of rest into a leading name and the n trailing
// arguments. It fails with usageError if there are not enough words for a non-empty name.
func splitLast(rest string, n int, usage string) (name string, trailing []string, err error) {
	words := strings.Fields(rest)
	if len(words) <= n {
		return "", nil, usageError(usage)
	}
	return strings.Join(words[:len(words)-n], " "), words[len(words)-n:], nil
}

// splitColon splits rest at the first colon into a key and a value, both trimmed. Both parts must
// be non-empty.
func splitColon(rest string, usage string) (key string, value string, err error) {
	key, value, found := strings.Cut(rest, ":")
	key, value = strings.TrimSpace(key), strings.TrimSpace(value)
	if !found || key == "" || value == "" {
		return "", "", usageError(usage)
	}
	return key, value, nil
}

// required returns rest if it is not empty.
func required(rest string, usage string) (string, error) {
	if rest == "" {
		return "", usageError(usage)
	}
	return rest, nil
}

// isDigits reports whether s is a non-empty string of decimal digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// usageError is returned when the arguments of a command do not match its usage line.
type usageError string

// Error returns the hint with the expected form of the command.
func (e usageError) Error() string {
	return "Please use: " + string(e)
}
