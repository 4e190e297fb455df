// Package rewrite provides an insertion-only edit buffer over immutable base
// text. The base is never mutated, so offsets captured before an edit stay
// valid after it; materialization is a single merge pass.
package rewrite

import (
	"sort"
)

// Edit records one insertion in emission order.
type Edit struct {
	Off  uint32
	Text string
	// After controls ordering among insertions at the same offset: After
	// edits accumulate behind earlier text at that offset, Before edits in
	// front of it.
	After bool
}

// Buffer accumulates text insertions keyed by byte offset into the base.
type Buffer struct {
	base  []byte
	at    map[uint32][]byte
	edits []Edit
}

// NewBuffer creates an empty edit buffer over base. The buffer aliases base;
// callers must not mutate it afterwards.
func NewBuffer(base []byte) *Buffer {
	return &Buffer{
		base: base,
		at:   make(map[uint32][]byte),
	}
}

// InsertBefore places text at off, in front of anything already inserted at
// that offset.
func (b *Buffer) InsertBefore(off uint32, text string) {
	b.at[off] = append([]byte(text), b.at[off]...)
	b.edits = append(b.edits, Edit{Off: off, Text: text})
}

// InsertAfter places text at off, behind anything already inserted at that
// offset.
func (b *Buffer) InsertAfter(off uint32, text string) {
	b.at[off] = append(b.at[off], text...)
	b.edits = append(b.edits, Edit{Off: off, Text: text, After: true})
}

// HasEdits reports whether any insertion was recorded.
func (b *Buffer) HasEdits() bool {
	return len(b.edits) > 0
}

// Edits returns the insertions in emission order. The slice aliases internal
// storage; treat it as read-only.
func (b *Buffer) Edits() []Edit {
	return b.edits
}

// Materialize merges the base text and all insertions into the final output.
// Insertions at offset N land between base[N-1] and base[N]; an insertion at
// len(base) lands at the very end.
func (b *Buffer) Materialize() []byte {
	if !b.HasEdits() {
		out := make([]byte, len(b.base))
		copy(out, b.base)
		return out
	}

	offsets := make([]uint32, 0, len(b.at))
	total := 0
	for off, ins := range b.at {
		offsets = append(offsets, off)
		total += len(ins)
	}
	sort.Slice(offsets, func(i, j int) bool { return offsets[i] < offsets[j] })

	out := make([]byte, 0, len(b.base)+total)
	var prev uint32
	for _, off := range offsets {
		pos := off
		if pos > uint32(len(b.base)) {
			pos = uint32(len(b.base))
		}
		out = append(out, b.base[prev:pos]...)
		out = append(out, b.at[off]...)
		prev = pos
	}
	out = append(out, b.base[prev:]...)
	return out
}
