package config

import (
	"os"
	"strings"
	"unicode"
)

// reservedNameRunes are not allowed in file names on at least one of the
// supported platforms. Produced documents are often moved between systems so
// the strictest set is always used.
const reservedNameRunes = `<>:"/\|?*`

const badFileName = "_bad_file_name_"

// CleanFileName removes not allowed characters from file name. Leading dots
// and trailing dots and spaces are dropped as well.
func CleanFileName(in string) string {
	out := strings.Map(func(sym rune) rune {
		if unicode.IsControl(sym) ||
			strings.ContainsRune(reservedNameRunes, sym) ||
			sym == os.PathSeparator || sym == os.PathListSeparator {
			return -1
		}
		return sym
	}, in)
	out = strings.TrimRight(strings.TrimLeft(out, "."), ". ")
	if len(out) == 0 {
		out = badFileName
	}
	return out
}

// EnableColorOutput checks if colorized output is possible. NO_COLOR and
// TERM=dumb are honored before console is queried.
func EnableColorOutput(stream *os.File) bool {
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return consoleSupportsColor(stream)
}
