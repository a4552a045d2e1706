//
// Tencent is pleased to support the open source community by making truncjson available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// truncjson is licensed under the Apache License Version 2.0.
//
//

// Package stream accumulates a JSON document that arrives in fragments, such
// as chunked network responses or token-by-token model output, and repairs
// the cumulative buffer on demand. The repair itself is stateless: every call
// re-scans the whole buffer, so a Builder is only a convenience around
// appending chunks and re-running truncjson.Repair.
package stream

import (
	"encoding/json"
	"strings"

	"trpc.group/trpc-go/truncjson"
	"trpc.group/trpc-go/truncjson/log"
)

// Status reports whether the accumulated document still needs input.
type Status int

// Status constants.
const (
	// StatusContinue means more input is needed to complete the document.
	StatusContinue Status = iota
	// StatusValid means the accumulated input already forms a complete document.
	StatusValid
)

// String returns the status name.
func (s Status) String() string {
	if s == StatusValid {
		return "valid"
	}
	return "continue"
}

// defaultInitialCapacity pre-sizes the buffer for typical model output.
const defaultInitialCapacity = 512

// Options configures a Builder.
type Options struct {
	// InitialCapacity pre-sizes the internal buffer in bytes.
	InitialCapacity int
}

// Builder accumulates raw fragments of one JSON document. The zero value is
// ready to use. A Builder is not safe for concurrent use; the underlying
// repair is, so share the transform, not the buffer.
type Builder struct {
	data []byte
}

// NewBuilder returns a Builder with the default initial capacity.
func NewBuilder() *Builder {
	return NewBuilderWithOptions(Options{InitialCapacity: defaultInitialCapacity})
}

// NewBuilderWithOptions returns a Builder configured by opts.
func NewBuilderWithOptions(opts Options) *Builder {
	capacity := opts.InitialCapacity
	if capacity < 0 {
		capacity = 0
	}
	return &Builder{data: make([]byte, 0, capacity)}
}

// Update appends a fragment to the accumulated document.
func (b *Builder) Update(chunk string) {
	b.data = append(b.data, chunk...)
}

// UpdateBytes appends a fragment to the accumulated document.
func (b *Builder) UpdateBytes(chunk []byte) {
	b.data = append(b.data, chunk...)
}

// Len returns the number of accumulated bytes.
func (b *Builder) Len() int {
	return len(b.data)
}

// Empty reports whether nothing has been accumulated yet.
func (b *Builder) Empty() bool {
	return len(b.data) == 0
}

// Reset clears the accumulated document, keeping the buffer.
func (b *Builder) Reset() {
	b.data = b.data[:0]
}

// String returns the raw accumulated document without repairing it.
func (b *Builder) String() string {
	return string(b.data)
}

// Status reports whether the accumulated input already forms a complete
// document or more fragments are needed.
func (b *Builder) Status() Status {
	if truncjson.Complete(string(b.data)) {
		return StatusValid
	}
	return StatusContinue
}

// CompletedString repairs the accumulated document and returns it. The
// result is best-effort balanced text; callers wanting a validity check
// should use CompletedJSON.
func (b *Builder) CompletedString() string {
	return truncjson.Repair(string(b.data))
}

// CompletedJSON repairs the accumulated document and re-validates it with
// the standard parser. It reports false when the result still does not
// parse, which means the buffer diverged from valid JSON for reasons other
// than truncation.
func (b *Builder) CompletedJSON() (string, bool) {
	raw := string(b.data)
	if trimmed := strings.TrimSpace(raw); trimmed != "" && json.Valid([]byte(trimmed)) {
		return raw, true
	}
	repaired := truncjson.Repair(raw)
	if repaired == "" || !json.Valid([]byte(repaired)) {
		log.Warnf("JSON repair left an unparsable document after %d bytes", len(b.data))
		return repaired, false
	}
	log.Debugf("JSON document repaired after %d bytes", len(b.data))
	return repaired, true
}
