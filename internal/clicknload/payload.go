package clicknload

import (
	"strings"
)

// legacyNewline is the literal sequence one known legacy sender posts in place
// of a real line break.
const legacyNewline = "/r/n"

// ExtractKey returns the hex key embedded in the jk script snippet, i.e. the
// first substring enclosed in single quotes:
//
//	function f(){ return '31323334353637383930393837363534';}
//
// Returns [ErrKeyNotFound] when no quoted substring exists.
func ExtractKey(jk string) (string, error) {
	_, rest, found := strings.Cut(jk, "'")
	if !found {
		return "", ErrKeyNotFound
	}

	key, _, found := strings.Cut(rest, "'")
	if !found || key == "" {
		return "", ErrKeyNotFound
	}

	return key, nil
}

// FirstPassword returns the first password of a CRLF separated list.
// The protocol allows several, only the first is forwarded.
func FirstPassword(passwords string) string {
	first, _, _ := strings.Cut(passwords, "\n")
	return strings.TrimSuffix(first, "\r")
}

// FixLegacyNewlines replaces every literal "/r/n" with a real CRLF.
// Other text, including real newlines, is left untouched.
func FixLegacyNewlines(urls string) string {
	return strings.ReplaceAll(urls, legacyNewline, "\r\n")
}

// CountLinks returns the number of newline separated entries in urls.
// An empty list has no links.
func CountLinks(urls string) int {
	if urls == "" {
		return 0
	}
	return strings.Count(urls, "\n") + 1
}
