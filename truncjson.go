//
// Tencent is pleased to support the open source community by making truncjson available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// truncjson is licensed under the Apache License Version 2.0.
//
//

// Package truncjson repairs syntactically incomplete JSON text, such as a
// fragment truncated mid-stream by a chunked network response or by
// token-by-token model generation, into the smallest valid JSON document
// that preserves all information present in the complete prefix.
//
// It is meant as a pre-pass before a standard JSON parser: feed the
// accumulated fragment to Repair and hand the result to encoding/json (or
// any standards-compliant parser), then repeat as more bytes arrive. Each
// call scans the whole fragment from scratch; no parser state is retained
// between calls, so calls are independent and safe to issue concurrently.
//
// Repair only undoes truncation. Input that is malformed for other reasons,
// such as an invalid escape in the middle of the text, may remain unparsable
// after repair; the downstream parser is the sole arbiter of validity.
package truncjson

// Repair closes an incomplete JSON fragment into a structurally balanced
// document. It trims a trailing token that cannot be completed without
// guessing (a dangling separator, a key without a value, a lone sign), closes
// an open string, finishes an unambiguous keyword prefix, trims a truncated
// number back to its last valid digit, and appends the closers for every
// container still open, innermost first.
//
// Repair is total: it never fails, and input that already forms a complete
// document is returned unchanged. An input that reduces to nothing, such as
// "" or ",", repairs to the empty string, which the caller's parse rejects
// as expected. Balanced delimiters are guaranteed only for truncation-shaped
// input: an extra closer the stream produced outright, as in "[1]]", passes
// through for the downstream parser to reject.
func Repair(input string) string {
	s := newScanner(input)
	s.run()
	return s.finish()
}

// RepairBytes is Repair for a byte slice.
func RepairBytes(input []byte) []byte {
	return []byte(Repair(string(input)))
}

// Complete reports whether input already ends on a complete root value with
// no container or string left open, meaning a repair would return it as is
// and more bytes can only belong to a new document. A root-level number is
// never complete on its own, since further digits may still arrive. The
// check is structural only; it does not validate the document.
func Complete(input string) bool {
	s := newScanner(input)
	s.run()
	return s.completed()
}
