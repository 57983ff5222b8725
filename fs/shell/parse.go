package shell

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Command is one parsed input line. Args are empty when absent.
type Command struct {
	Name string
	Arg1 string
	Arg2 string
}

// asciiUpper maps a-z only. Other bytes pass through unchanged, so the
// byte length of a name never changes.
var asciiUpper = runes.Map(func(r rune) rune {
	if 'a' <= r && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
})

// Normalize uppercases the whole line and drops a trailing line ending.
// It runs before tokenizing, so names are stored uppercase.
func Normalize(line string) string {
	line = strings.TrimRight(line, "\r\n")
	if !utf8.ValidString(line) {
		// runes.Map would replace invalid bytes with U+FFFD.
		return upperBytes(line)
	}
	out, _, err := transform.String(asciiUpper, line)
	if err != nil {
		return upperBytes(line)
	}
	return out
}

func upperBytes(line string) string {
	b := []byte(line)
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}

// Parse splits a normalized line into a keyword and up to two arguments.
// Leading spaces before each token are skipped; a token ends at the next
// space. Anything after the second argument is ignored. ok is false when the
// line has no keyword.
func Parse(line string) (cmd Command, ok bool) {
	rest := line
	var fields [3]string
	for i := range fields {
		fields[i], rest = nextToken(rest)
	}
	if fields[0] == "" {
		return Command{}, false
	}
	return Command{Name: fields[0], Arg1: fields[1], Arg2: fields[2]}, true
}

func nextToken(s string) (tok, rest string) {
	s = strings.TrimLeft(s, " ")
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}
