package format

import (
	"errors"
	"testing"
)

func TestEncodeDecodeRecord(t *testing.T) {
	b := make([]byte, RecordSize)
	in := SlotRecord{
		Name:     "REPORT",
		Size:     10,
		Alloc:    4096,
		Logical:  0x11000,
		Physical: 0x11000,
		Active:   true,
	}
	if err := EncodeRecord(b, in); err != nil {
		t.Fatalf("EncodeRecord: %v", err)
	}
	if b[RecordActiveOffset] != 1 {
		t.Fatalf("active byte = %d", b[RecordActiveOffset])
	}
	out, err := DecodeRecord(b)
	if err != nil {
		t.Fatalf("DecodeRecord: %v", err)
	}
	if out != in {
		t.Fatalf("decoded %+v, want %+v", out, in)
	}
}

func TestEncodeRecordNameBound(t *testing.T) {
	b := make([]byte, RecordSize)
	if err := EncodeRecord(b, SlotRecord{Name: "ABCDEFGHIJKLMNO", Active: true}); err != nil {
		t.Fatalf("15-byte name rejected: %v", err)
	}
	err := EncodeRecord(b, SlotRecord{Name: "ABCDEFGHIJKLMNOP", Active: true})
	if !errors.Is(err, ErrNameTooLong) {
		t.Fatalf("expected ErrNameTooLong, got %v", err)
	}
}

func TestPutNameOverwritesOnlyName(t *testing.T) {
	b := make([]byte, RecordSize)
	in := SlotRecord{Name: "LONGERNAME", Size: 5, Alloc: 4096, Logical: 1, Physical: 2, Active: true}
	if err := EncodeRecord(b, in); err != nil {
		t.Fatalf("EncodeRecord: %v", err)
	}
	if err := PutName(b, "B"); err != nil {
		t.Fatalf("PutName: %v", err)
	}
	out, err := DecodeRecord(b)
	if err != nil {
		t.Fatalf("DecodeRecord: %v", err)
	}
	in.Name = "B"
	if out != in {
		t.Fatalf("decoded %+v, want %+v", out, in)
	}
}

func TestClearRecordDecodesInactive(t *testing.T) {
	b := make([]byte, RecordSize)
	if err := EncodeRecord(b, SlotRecord{Name: "X", Size: 1, Alloc: 4096, Active: true}); err != nil {
		t.Fatalf("EncodeRecord: %v", err)
	}
	ClearRecord(b)
	for i, c := range b {
		if c != 0 {
			t.Fatalf("byte %d = 0x%x after clear", i, c)
		}
	}
	out, err := DecodeRecord(b)
	if err != nil {
		t.Fatalf("DecodeRecord: %v", err)
	}
	if out != (SlotRecord{}) {
		t.Fatalf("cleared record decoded to %+v", out)
	}
}

func TestDecodeRecordTruncated(t *testing.T) {
	if _, err := DecodeRecord(make([]byte, RecordSize-1)); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestEncodeRecordTruncated(t *testing.T) {
	b := make([]byte, RecordSize-1)
	if err := EncodeRecord(b, SlotRecord{Name: "A", Active: true}); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
	for i, c := range b {
		if c != 0 {
			t.Fatalf("byte %d written on truncated buffer", i)
		}
	}
}

func TestSlotBytes(t *testing.T) {
	table := make([]byte, TableSize)
	b, err := SlotBytes(table, MaxFiles-1)
	if err != nil {
		t.Fatalf("SlotBytes: %v", err)
	}
	if len(b) != RecordSize {
		t.Fatalf("len = %d", len(b))
	}
	if _, err := SlotBytes(table, MaxFiles); !errors.Is(err, ErrBadSlot) {
		t.Fatalf("expected ErrBadSlot, got %v", err)
	}
	if _, err := SlotBytes(table[:RecordSize], 1); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}
