package grid

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// ParseCell returns the single character held by s. It fails with
// ErrInvalidCharacter unless s is exactly one printable code point.
func ParseCell(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 || uniseg.GraphemeClusterCount(s) != 1 {
		return 0, fmt.Errorf("%w: %q, expected exactly one character", ErrInvalidCharacter, s)
	}

	r, _ := utf8.DecodeRuneInString(s)
	if err := checkRune(r); err != nil {
		return 0, err
	}

	return r, nil
}

func checkRune(r rune) error {
	if r == utf8.RuneError || !unicode.IsPrint(r) {
		return fmt.Errorf("%w: %q is not printable", ErrInvalidCharacter, r)
	}

	return nil
}

// checkSet validates a set of characters such as a mask or restriction. The
// empty set is always valid.
func checkSet(name, set string) error {
	if !utf8.ValidString(set) {
		return fmt.Errorf("%w: %s %q is not valid UTF-8", ErrInvalidCharacter, name, set)
	}

	for _, r := range set {
		if !unicode.IsPrint(r) {
			return fmt.Errorf("%w: %s %q contains non-printable %q", ErrInvalidCharacter, name, set, r)
		}
	}

	return nil
}

// inSet reports whether r may be written over according to set. An empty set
// allows everything.
func inSet(set string, r rune) bool {
	return set == "" || strings.ContainsRune(set, r)
}

// printable strips every non-printable rune from s.
func printable(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r != utf8.RuneError && unicode.IsPrint(r) {
			out = append(out, r)
		}
	}

	return string(out)
}
