//
// Tencent is pleased to support the open source community by making truncjson available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// truncjson is licensed under the Apache License Version 2.0.
//
//

package truncjson

import "strings"

// containerKind identifies an open container on the scan stack.
type containerKind byte

// Container kind constants.
const (
	containerObject containerKind = iota
	containerArray
)

// scanPhase tracks what kind of token may legally appear next outside a string.
type scanPhase int

// Scan phase constants.
const (
	phaseRootValue      scanPhase = iota // before the root value
	phaseValueDone                       // a complete value just ended
	phaseObjectKeyOrEnd                  // after '{'
	phaseObjectKey                       // after ',' inside an object
	phaseObjectColon                     // after an object key string
	phaseValue                           // after ':', '[', or ',' inside an array
)

// numberState tracks progress through a number token.
type numberState int

// Number token state constants.
const (
	numberSign      numberState = iota // after a leading '-'
	numberInt                          // integer digits
	numberDot                          // after '.'
	numberFraction                     // fraction digits
	numberExp                          // after 'e' or 'E'
	numberExpSign                      // after an exponent sign
	numberExpDigits                    // exponent digits
)

// scanner is a single-pass scan over one fragment. It tracks the stack of
// open containers, string and escape state, and the cut point: the length of
// the longest prefix that becomes valid JSON once the open string and the
// remaining containers are closed. A scanner is built fresh per call and
// never reused, so concurrent calls share nothing.
type scanner struct {
	input string
	phase scanPhase
	stack []containerKind

	cut int

	inString    bool
	isKey       bool
	escaped     bool
	unicodeLeft int // hex digits still expected in a \uXXXX escape
	escapeStart int // index of the backslash opening the pending escape

	inNumber bool
	numState numberState
	numStart int
	numValid int // end of the longest prefix of the number token that is itself a valid number

	inKeyword bool
	keyword   string
	kwMatched int
}

// newScanner returns a scanner over input positioned before the root value.
func newScanner(input string) *scanner {
	return &scanner{input: input, phase: phaseRootValue}
}

// run scans the whole input once, left to right.
func (s *scanner) run() {
	for i := 0; i < len(s.input); i++ {
		s.processChar(i, s.input[i])
	}
}

// processChar dispatches one input byte to the handler for the current
// lexical context. Structural characters are ASCII, so scanning bytes is
// safe: continuation bytes of multi-byte runes only ever appear inside
// strings, where they are inert.
func (s *scanner) processChar(i int, c byte) {
	if s.inString {
		s.processStringChar(i, c)
		return
	}
	if s.inNumber {
		if s.advanceNumber(i, c) {
			return
		}
		s.finishNumber()
	}
	if s.inKeyword {
		if s.advanceKeyword(i, c) {
			return
		}
		// A keyword with a wrong character in the middle cannot come from
		// truncation. Leave the token where it stands and keep scanning.
		s.inKeyword = false
		return
	}
	s.processStructuralChar(i, c)
}

// processStringChar handles one byte inside a string literal.
func (s *scanner) processStringChar(i int, c byte) {
	if s.unicodeLeft > 0 {
		if isHex(c) {
			s.unicodeLeft--
			return
		}
		// A non-hex digit inside \uXXXX is not a truncation artifact.
		// Abandon the escape tracking and treat c as an ordinary character.
		s.unicodeLeft = 0
	}
	if s.escaped {
		s.escaped = false
		if c == 'u' {
			s.unicodeLeft = 4
		}
		return
	}
	switch c {
	case '\\':
		s.escaped = true
		s.escapeStart = i
	case '"':
		s.endString(i)
	}
}

// endString closes the current string literal. A key does not advance the
// cut point: it only becomes part of the committed prefix once its value
// completes, so a key whose value never arrives is dropped whole.
func (s *scanner) endString(i int) {
	s.inString = false
	if s.isKey {
		s.phase = phaseObjectColon
		return
	}
	s.phase = phaseValueDone
	s.cut = i + 1
}

// advanceNumber consumes c as part of the current number token and reports
// whether it did. numValid only advances on digits, so a trailing '-', '.',
// 'e', or exponent sign is never part of the committed prefix.
func (s *scanner) advanceNumber(i int, c byte) bool {
	switch s.numState {
	case numberSign:
		if isDigit(c) {
			s.numState = numberInt
			s.numValid = i + 1
			return true
		}
	case numberInt:
		if isDigit(c) {
			s.numValid = i + 1
			return true
		}
		if c == '.' {
			s.numState = numberDot
			return true
		}
		if c == 'e' || c == 'E' {
			s.numState = numberExp
			return true
		}
	case numberDot:
		if isDigit(c) {
			s.numState = numberFraction
			s.numValid = i + 1
			return true
		}
	case numberFraction:
		if isDigit(c) {
			s.numValid = i + 1
			return true
		}
		if c == 'e' || c == 'E' {
			s.numState = numberExp
			return true
		}
	case numberExp:
		if c == '+' || c == '-' {
			s.numState = numberExpSign
			return true
		}
		if isDigit(c) {
			s.numState = numberExpDigits
			s.numValid = i + 1
			return true
		}
	case numberExpSign:
		if isDigit(c) {
			s.numState = numberExpDigits
			s.numValid = i + 1
			return true
		}
	case numberExpDigits:
		if isDigit(c) {
			s.numValid = i + 1
			return true
		}
	}
	return false
}

// finishNumber commits the number token up to its longest valid prefix.
// A number that never reached a digit (a bare '-') commits nothing, which
// later trims it away together with any separator or key before it.
func (s *scanner) finishNumber() {
	s.inNumber = false
	if s.numValid > s.numStart {
		s.cut = s.numValid
	}
	s.phase = phaseValueDone
}

// advanceKeyword consumes c as the next character of the pending keyword and
// reports whether it matched.
func (s *scanner) advanceKeyword(i int, c byte) bool {
	if s.kwMatched < len(s.keyword) && c == s.keyword[s.kwMatched] {
		s.kwMatched++
		if s.kwMatched == len(s.keyword) {
			s.inKeyword = false
			s.phase = phaseValueDone
			s.cut = i + 1
		}
		return true
	}
	return false
}

// processStructuralChar handles one byte outside strings and value tokens.
// Characters that cannot appear at the current phase by truncating valid
// JSON are left in place without touching the scan state; the downstream
// parser decides what they mean.
func (s *scanner) processStructuralChar(i int, c byte) {
	switch c {
	case ' ', '\t', '\n', '\r':
		// Whitespace after a complete value is committed so that already
		// valid spacing survives the repair untouched.
		if s.phase == phaseValueDone && s.cut == i {
			s.cut = i + 1
		}
	case '{':
		if s.expectingValue() {
			s.stack = append(s.stack, containerObject)
			s.phase = phaseObjectKeyOrEnd
			s.cut = i + 1
		}
	case '[':
		if s.expectingValue() {
			s.stack = append(s.stack, containerArray)
			s.phase = phaseValue
			s.cut = i + 1
		}
	case '}':
		s.closeContainer(containerObject, i)
	case ']':
		s.closeContainer(containerArray, i)
	case '"':
		s.startString()
	case ',':
		s.handleComma()
	case ':':
		if s.phase == phaseObjectColon {
			s.phase = phaseValue
		}
	case 't':
		s.startKeyword("true")
	case 'f':
		s.startKeyword("false")
	case 'n':
		s.startKeyword("null")
	case '-':
		s.startNumber(i, numberSign)
	default:
		if isDigit(c) {
			s.startNumber(i, numberInt)
		}
	}
}

// expectingValue reports whether a value may start at the current phase.
func (s *scanner) expectingValue() bool {
	return s.phase == phaseRootValue || s.phase == phaseValue
}

// startString opens a string literal when the phase allows one, marking it
// as an object key or a value.
func (s *scanner) startString() {
	switch s.phase {
	case phaseObjectKeyOrEnd, phaseObjectKey:
		s.inString = true
		s.isKey = true
	case phaseRootValue, phaseValue:
		s.inString = true
		s.isKey = false
	}
}

// startKeyword begins matching a true/false/null token.
func (s *scanner) startKeyword(word string) {
	if !s.expectingValue() {
		return
	}
	s.inKeyword = true
	s.keyword = word
	s.kwMatched = 1
}

// startNumber begins a number token in the given initial state.
func (s *scanner) startNumber(i int, state numberState) {
	if !s.expectingValue() {
		return
	}
	s.inNumber = true
	s.numState = state
	s.numStart = i
	s.numValid = i
	if state == numberInt {
		s.numValid = i + 1
	}
}

// closeContainer pops the innermost container when the closer matches its
// opener. A mismatched or extra closer cannot come from truncation, so it is
// left in place and the stack is not touched.
func (s *scanner) closeContainer(kind containerKind, i int) {
	if len(s.stack) == 0 || s.stack[len(s.stack)-1] != kind {
		return
	}
	s.stack = s.stack[:len(s.stack)-1]
	s.phase = phaseValueDone
	s.cut = i + 1
}

// handleComma moves the scan past an element separator. The cut point stays
// behind the comma: a separator with no following value is dropped by the
// final trim.
func (s *scanner) handleComma() {
	if s.phase != phaseValueDone {
		return
	}
	if len(s.stack) > 0 && s.stack[len(s.stack)-1] == containerObject {
		s.phase = phaseObjectKey
		return
	}
	s.phase = phaseValue
}

// finish classifies the lexical unit the input was truncated inside and
// returns the repaired document.
func (s *scanner) finish() string {
	switch {
	case s.inString:
		if s.isKey {
			// An unterminated key carries no committed information yet.
			return s.closeContainers(s.input[:s.cut])
		}
		end := len(s.input)
		if s.escaped || s.unicodeLeft > 0 {
			// Drop the incomplete escape so the closed string stays valid.
			end = s.escapeStart
		}
		return s.closeContainers(s.input[:end] + `"`)
	case s.inKeyword:
		if s.kwMatched >= 2 {
			return s.closeContainers(s.input + s.keyword[s.kwMatched:])
		}
		// A single letter is too little to commit to; drop it like a
		// missing value.
		return s.closeContainers(s.input[:s.cut])
	case s.inNumber:
		if s.numValid > s.numStart {
			return s.closeContainers(s.input[:s.numValid])
		}
		return s.closeContainers(s.input[:s.cut])
	case s.phase == phaseValueDone && len(s.stack) == 0:
		// Already a complete root value: never mutate valid input.
		return s.input
	default:
		return s.closeContainers(s.input[:s.cut])
	}
}

// closeContainers appends the closers for the remaining open containers in
// last-opened-first-closed order.
func (s *scanner) closeContainers(prefix string) string {
	if len(s.stack) == 0 {
		return prefix
	}
	var b strings.Builder
	b.Grow(len(prefix) + len(s.stack))
	b.WriteString(prefix)
	for i := len(s.stack) - 1; i >= 0; i-- {
		if s.stack[i] == containerObject {
			b.WriteByte('}')
		} else {
			b.WriteByte(']')
		}
	}
	return b.String()
}

// completed reports whether the scan ended on a complete root value with
// nothing left open. A root-level number never completes the document on its
// own: more digits may still arrive.
func (s *scanner) completed() bool {
	return !s.inString && !s.inKeyword && !s.inNumber &&
		s.phase == phaseValueDone && len(s.stack) == 0
}

// isDigit reports whether c is a decimal digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isHex reports whether c is a hexadecimal digit.
func isHex(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
