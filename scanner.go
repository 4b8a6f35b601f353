// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package pjson

import "go4.org/mem"

// skipSpace returns the offset of the first non-whitespace byte of text at or
// after offset i, or text.Len() if there is none.
func skipSpace(text mem.RO, i int) int {
	for i < text.Len() && isSpace(text.At(i)) {
		i++
	}
	return i
}

// readString reads a string starting at text[i], which must be a double
// quotation mark. It returns the contents of the string, the offset following
// the closing quotation mark, and whether the closing mark was found.
//
// There is no escape processing: the first quotation mark after the opening
// one always ends the string. If the input ends first, readString returns
// the text captured so far, text.Len(), and false.
func readString(text mem.RO, i int) (string, int, bool) {
	rest := text.SliceFrom(i + 1)
	if j := mem.IndexByte(rest, '"'); j >= 0 {
		return rest.SliceTo(j).StringCopy(), i + j + 2, true
	}
	return rest.StringCopy(), text.Len(), false
}

// skipInvalid advances past an unsupported value beginning at or after
// offset i (after whitespace), and returns the offset following it.
//
// Arrays are skipped to their matching close bracket; strings inside them are
// skipped whole, so brackets within strings are not counted. Any other value
// (a number, true, false, null) ends at the next comma, close brace, or
// whitespace. If the input ends first, skipInvalid returns text.Len().
func skipInvalid(text mem.RO, i int) int {
	i = skipSpace(text, i)
	if i >= text.Len() {
		return i
	}
	switch text.At(i) {
	case '[':
		return skipNested(text, i, '[', ']')
	case '{':
		// Only reached for objects nested beyond the depth limit.
		return skipNested(text, i, '{', '}')
	}
	for i < text.Len() && !isDelim(text.At(i)) {
		i++
	}
	return i
}

// skipNested skips a bracketed construct starting at text[i] == open, and
// returns the offset following its matching close.
func skipNested(text mem.RO, i int, open, close byte) int {
	depth := 1
	i++
	for i < text.Len() && depth > 0 {
		switch text.At(i) {
		case open:
			depth++
		case close:
			depth--
		case '"':
			_, i, _ = readString(text, i)
			continue
		}
		i++
	}
	return i
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\r' || b == '\n' || b == '\t'
}

// isDelim reports whether b ends an unbracketed invalid value.
func isDelim(b byte) bool { return b == ',' || b == '}' || isSpace(b) }
