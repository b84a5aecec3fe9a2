package entity

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Position is a spatial keyword attached to a haptic event
type Position string

const (
	PositionFront  Position = "front"
	PositionBack   Position = "back"
	PositionRight  Position = "right"
	PositionLeft   Position = "left"
	PositionTop    Position = "top"
	PositionBottom Position = "bottom"
)

// PositionLabels is the fixed candidate set for position classification, in request order
var PositionLabels = []string{
	string(PositionFront),
	string(PositionBack),
	string(PositionRight),
	string(PositionLeft),
	string(PositionTop),
	string(PositionBottom),
}

var (
	whitespaceRun   = regexp.MustCompile(`\s+`)
	positionKeyword = regexp.MustCompile(`\b(front|back|left|right|top|bottom)\b`)
)

// NormalizeText lower-cases text and collapses whitespace runs to single spaces
func NormalizeText(text string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(text), " ")
}

// ExtractPositions returns every whole-word position keyword in text order, duplicates kept.
// Word boundaries are Unicode-aware: a keyword touching any letter, number or '_' is not a word.
func ExtractPositions(text string) []Position {
	normalized := NormalizeText(text)
	matches := positionKeyword.FindAllStringIndex(normalized, -1)
	positions := make([]Position, 0, len(matches))
	for _, m := range matches {
		if !isWordBoundary(normalized, m[0], m[1]) {
			continue
		}
		positions = append(positions, Position(normalized[m[0]:m[1]]))
	}
	return positions
}

// isWordBoundary reports whether s[start:end] is delimited by non-word runes.
// RE2's \b only knows ASCII word characters.
func isWordBoundary(s string, start, end int) bool {
	if before, _ := utf8.DecodeLastRuneInString(s[:start]); start > 0 && isWordRune(before) {
		return false
	}
	if after, _ := utf8.DecodeRuneInString(s[end:]); end < len(s) && isWordRune(after) {
		return false
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// DeterminePositions picks the first two keywords, or neither when fewer than two occur
func DeterminePositions(positions []Position) (first, second *string) {
	if len(positions) < 2 {
		return nil, nil
	}
	f, s := string(positions[0]), string(positions[1])
	return &f, &s
}
