package opra

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrTruncated marks any read that would cross the end of the input buffer.
var ErrTruncated = errors.New("opra: truncated block")

// TruncatedError reports where a fixed-width read ran out of bytes.
type TruncatedError struct {
	Offset int // position the read started at
	Want   int // bytes the field requires
	Have   int // bytes available
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("opra: truncated block: need %d bytes at offset %d, have %d", e.Want, e.Offset, e.Have)
}

func (e *TruncatedError) Unwrap() error { return ErrTruncated }

// cursor walks an immutable buffer with bounds-checked big-endian reads.
// Every read fails closed: on a short buffer it returns *TruncatedError and
// leaves the offset untouched.
type cursor struct {
	buf []byte
	off int
}

func (c *cursor) remaining() int { return len(c.buf) - c.off }

func (c *cursor) need(n int) error {
	if c.remaining() < n {
		return &TruncatedError{Offset: c.off, Want: n, Have: c.remaining()}
	}
	return nil
}

func (c *cursor) u8() (uint8, error) {
	if err := c.need(1); err != nil {
		return 0, err
	}
	v := c.buf[c.off]
	c.off++
	return v, nil
}

func (c *cursor) u16() (uint16, error) {
	if err := c.need(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(c.buf[c.off:])
	c.off += 2
	return v, nil
}

func (c *cursor) u32() (uint32, error) {
	if err := c.need(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(c.buf[c.off:])
	c.off += 4
	return v, nil
}

// take copies n bytes out of the buffer. The returned slice shares no
// storage with the input.
func (c *cursor) take(n int) ([]byte, error) {
	if err := c.need(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, c.buf[c.off:])
	c.off += n
	return out, nil
}

// takeString copies n bytes of padded ASCII out of the buffer.
func (c *cursor) takeString(n int) (string, error) {
	if err := c.need(n); err != nil {
		return "", err
	}
	s := string(c.buf[c.off : c.off+n])
	c.off += n
	return s, nil
}

func (c *cursor) skip(n int) error {
	if err := c.need(n); err != nil {
		return err
	}
	c.off += n
	return nil
}
