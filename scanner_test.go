//
// Tencent is pleased to support the open source community by making truncjson available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// truncjson is licensed under the Apache License Version 2.0.
//
//

package truncjson

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestScanner_NumberValidPrefix verifies numValid only advances on digits.
func TestScanner_NumberValidPrefix(t *testing.T) {
	tests := []struct {
		input string
		valid string
	}{
		{input: "12", valid: "12"},
		{input: "12.", valid: "12"},
		{input: "12.5", valid: "12.5"},
		{input: "12.5e", valid: "12.5"},
		{input: "12.5e+", valid: "12.5"},
		{input: "12.5e+3", valid: "12.5e+3"},
		{input: "-", valid: ""},
		{input: "-0", valid: "-0"},
		{input: "0e", valid: "0"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := newScanner(tt.input)
			s.run()
			require.True(t, s.inNumber, "input=%q", tt.input)
			require.Equal(t, tt.valid, tt.input[s.numStart:s.numValid], "input=%q", tt.input)
		})
	}
}

// TestScanner_EscapeStateAtEOF verifies pending escapes are tracked back to
// their opening backslash.
func TestScanner_EscapeStateAtEOF(t *testing.T) {
	s := newScanner("\"ab\\u12")
	s.run()
	require.True(t, s.inString)
	require.Equal(t, 3, s.escapeStart)
	require.Equal(t, 2, s.unicodeLeft)

	s = newScanner("\"ab\\")
	s.run()
	require.True(t, s.escaped)
	require.Equal(t, 3, s.escapeStart)

	// A completed \uXXXX escape leaves no pending state behind.
	s = newScanner("\"ab\\u1234")
	s.run()
	require.False(t, s.escaped)
	require.Zero(t, s.unicodeLeft)
}

// TestScanner_ClosersNestCorrectly verifies containers close in reverse open order.
func TestScanner_ClosersNestCorrectly(t *testing.T) {
	s := newScanner("{\"a\":[{\"b\":[")
	s.run()
	require.Equal(t, []containerKind{containerObject, containerArray, containerObject, containerArray}, s.stack)
	require.Equal(t, "{\"a\":[{\"b\":[]}]}", s.finish())
}

// TestScanner_MismatchedCloserLeavesStack verifies a closer that does not
// match the innermost container neither pops nor errors. It does not advance
// the cut point either, so a stray closer after the last committed value is
// trimmed; one a later value commits past rides along untouched.
func TestScanner_MismatchedCloserLeavesStack(t *testing.T) {
	s := newScanner("[1}")
	s.run()
	require.Equal(t, []containerKind{containerArray}, s.stack)
	require.Equal(t, 2, s.cut)
	require.Equal(t, "[1]", s.finish())

	s = newScanner("[1},2")
	s.run()
	require.Equal(t, []containerKind{containerArray}, s.stack)
	require.Equal(t, "[1},2]", s.finish())
}

// TestScanner_KeyNeverAdvancesCut verifies an object key commits nothing
// until its value completes.
func TestScanner_KeyNeverAdvancesCut(t *testing.T) {
	s := newScanner("{\"key\"")
	s.run()
	require.Equal(t, phaseObjectColon, s.phase)
	require.Equal(t, 1, s.cut)

	s = newScanner("{\"key\":1")
	s.run()
	require.Equal(t, len(s.input), s.numValid)
}

// TestScanner_RootSeparatorResetsCompletion verifies a comma after the root
// value moves the scan out of the completed phase.
func TestScanner_RootSeparatorResetsCompletion(t *testing.T) {
	s := newScanner("4,")
	s.run()
	require.False(t, s.completed())
	require.Equal(t, "4", s.finish())
}
