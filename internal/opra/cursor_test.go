package opra

import (
	"errors"
	"testing"
)

func TestCursorReads(t *testing.T) {
	c := &cursor{buf: []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 'A', 'B'}}

	v8, err := c.u8()
	if err != nil || v8 != 0x01 {
		t.Fatalf("u8: got %d, %v", v8, err)
	}
	v16, err := c.u16()
	if err != nil || v16 != 0x0203 {
		t.Fatalf("u16: got %#x, %v", v16, err)
	}
	v32, err := c.u32()
	if err != nil || v32 != 0x04050607 {
		t.Fatalf("u32: got %#x, %v", v32, err)
	}
	s, err := c.takeString(2)
	if err != nil || s != "AB" {
		t.Fatalf("takeString: got %q, %v", s, err)
	}
	if c.remaining() != 0 {
		t.Fatalf("remaining: got %d, want 0", c.remaining())
	}
}

func TestCursorTakeCopiesOut(t *testing.T) {
	src := []byte{1, 2, 3, 4}
	c := &cursor{buf: src}
	out, err := c.take(4)
	if err != nil {
		t.Fatal(err)
	}
	src[0] = 99
	if out[0] != 1 {
		t.Fatal("take must not alias the input buffer")
	}
}

func TestCursorTruncation(t *testing.T) {
	c := &cursor{buf: []byte{0x01, 0x02}}
	if _, err := c.u8(); err != nil {
		t.Fatal(err)
	}

	_, err := c.u32()
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("got %v, want ErrTruncated", err)
	}

	var te *TruncatedError
	if !errors.As(err, &te) {
		t.Fatalf("got %T, want *TruncatedError", err)
	}
	if te.Offset != 1 || te.Want != 4 || te.Have != 1 {
		t.Fatalf("got %+v, want offset 1 want 4 have 1", te)
	}

	// A failed read leaves the offset untouched.
	if c.off != 1 {
		t.Fatalf("offset moved to %d after failed read", c.off)
	}
}
