package ot

import (
	"errors"
	"testing"
)

func TestBinarySegmView(t *testing.T) {
	b := binarySegm([]byte{0, 1, 2, 3, 4, 5, 6, 7})
	v, err := b.view(2, 4)
	if err != nil {
		t.Fatal(err)
	}
	if v.Size() != 4 || v[0] != 2 {
		t.Errorf("expected view [2 3 4 5], got %v", v.Bytes())
	}
	if _, err = b.view(6, 4); !errors.Is(err, errBufferBounds) {
		t.Errorf("expected bounds error for view past end, got %v", err)
	}
	if _, err = b.view(-1, 2); !errors.Is(err, errBufferBounds) {
		t.Errorf("expected bounds error for negative offset, got %v", err)
	}
	if _, err = b.view(0, 0); !errors.Is(err, errBufferBounds) {
		t.Errorf("expected bounds error for empty view, got %v", err)
	}
}

func TestBinarySegmReads(t *testing.T) {
	b := binarySegm([]byte{0x00, 0x01, 0x00, 0x00, 'n', 'a', 'm', 'e'})
	if n, err := b.u16(0); err != nil || n != 1 {
		t.Errorf("expected u16(0) = 1, got %d (%v)", n, err)
	}
	if n, err := b.u32(0); err != nil || n != 0x00010000 {
		t.Errorf("expected u32(0) = 0x00010000, got %#x (%v)", n, err)
	}
	if f, err := b.fixed(0); err != nil || f.Float() != 1.0 {
		t.Errorf("expected fixed(0) = 1.0, got %v (%v)", f, err)
	}
	if tag, err := b.tag(4); err != nil || tag != T("name") {
		t.Errorf("expected tag(4) = 'name', got %v (%v)", tag, err)
	}
	if _, err := b.u32(6); !errors.Is(err, errBufferBounds) {
		t.Errorf("expected bounds error for u32 past end, got %v", err)
	}
	if n, err := b.i16(0); err != nil || n != 1 {
		t.Errorf("expected i16(0) = 1, got %d (%v)", n, err)
	}
}

func TestTagRoundtrip(t *testing.T) {
	tag := T("name")
	if tag.String() != "name" {
		t.Errorf("expected tag to print as 'name', got %q", tag.String())
	}
	if MakeTag([]byte("name")) != tag {
		t.Errorf("expected MakeTag and T to agree on 'name'")
	}
	if T("cv") != T("cv  ") { // short tags are padded with blanks
		t.Errorf("expected short tag to be blank-padded")
	}
}
