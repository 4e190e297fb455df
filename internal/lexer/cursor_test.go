package lexer

import (
	"testing"

	"cexpand/internal/source"
)

func newTestCursor(t *testing.T, content string) Cursor {
	t.Helper()
	fs := source.NewFileSet()
	return NewCursor(fs.Get(fs.AddVirtual("test.c", []byte(content))))
}

func TestCursorPeekBump(t *testing.T) {
	c := newTestCursor(t, "ab")

	if c.Peek() != 'a' {
		t.Errorf("Peek = %c", c.Peek())
	}
	if c.Bump() != 'a' || c.Bump() != 'b' {
		t.Error("Bump sequence wrong")
	}
	if !c.EOF() {
		t.Error("should be at EOF")
	}
	if c.Peek() != 0 || c.Bump() != 0 {
		t.Error("past EOF reads must return 0")
	}
}

func TestCursorPeek23(t *testing.T) {
	c := newTestCursor(t, "abc")

	if b0, b1, ok := c.Peek2(); !ok || b0 != 'a' || b1 != 'b' {
		t.Errorf("Peek2 = %c %c %v", b0, b1, ok)
	}
	if b0, b1, b2, ok := c.Peek3(); !ok || b0 != 'a' || b1 != 'b' || b2 != 'c' {
		t.Errorf("Peek3 = %c %c %c %v", b0, b1, b2, ok)
	}

	c.Bump()
	if _, _, _, ok := c.Peek3(); ok {
		t.Error("Peek3 near EOF must report !ok")
	}
}

func TestCursorMarkSpan(t *testing.T) {
	c := newTestCursor(t, "hello")

	m := c.Mark()
	c.Bump()
	c.Bump()
	sp := c.SpanFrom(m)
	if sp.Start != 0 || sp.End != 2 {
		t.Errorf("span = %v", sp)
	}

	c.Reset(m)
	if c.Off != 0 {
		t.Errorf("Reset: Off = %d", c.Off)
	}
}

func TestCursorEat(t *testing.T) {
	c := newTestCursor(t, "xy")

	if c.Eat('y') {
		t.Error("Eat should not match 'y'")
	}
	if !c.Eat('x') {
		t.Error("Eat should match 'x'")
	}
	if c.Off != 1 {
		t.Errorf("Off = %d", c.Off)
	}
}
