package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"volt/internal/source"
)

// Cursor — байтовый курсор по содержимому файла.
type Cursor struct {
	content []byte
	off     uint32
	file    source.FileID
}

func NewCursor(file *source.File) Cursor {
	return Cursor{
		content: file.Content,
		off:     0,
		file:    file.ID,
	}
}

// EOF reports whether the cursor is past the last byte.
func (c *Cursor) EOF() bool {
	return int(c.off) >= len(c.content)
}

// Peek returns the current byte without advancing; 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.content[c.off]
}

// PeekAt returns the byte n positions ahead without advancing; 0 past EOF.
func (c *Cursor) PeekAt(n uint32) byte {
	if int(c.off+n) >= len(c.content) {
		return 0
	}
	return c.content[c.off+n]
}

// Bump advances the cursor by one byte.
func (c *Cursor) Bump() {
	if !c.EOF() {
		c.off++
	}
}

// Pos returns the current byte offset.
func (c *Cursor) Pos() uint32 {
	return c.off
}

// SpanFrom builds a span from start to the current offset.
func (c *Cursor) SpanFrom(start uint32) source.Span {
	return source.Span{File: c.file, Start: start, End: c.off}
}

// Slice returns the source text between start and the current offset.
func (c *Cursor) Slice(start uint32) string {
	return string(c.content[start:c.off])
}

// Len возвращает длину содержимого (в байтах).
func (c *Cursor) Len() uint32 {
	n, err := safecast.Conv[uint32](len(c.content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}
	return n
}
