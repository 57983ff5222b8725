package format

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/minifs/internal/buf"
)

// SlotRecord captures one slot of the directory table. The on-table layout
// is shown below:
//
//	Offset  Size  Field
//	0x00    16    Name (NUL padded)
//	0x10    4     Requested size
//	0x14    4     Allocated bytes
//	0x18    8     Logical address
//	0x20    8     Physical address
//	0x28    1     Active flag
//	0x29    7     Reserved
type SlotRecord struct {
	Name     string
	Size     uint32
	Alloc    uint32
	Logical  uint64
	Physical uint64
	Active   bool
}

// SlotBytes returns the record bytes for slot inside table.
func SlotBytes(table []byte, slot int) ([]byte, error) {
	if slot < 0 || slot >= MaxFiles {
		return nil, fmt.Errorf("slot %d: %w", slot, ErrBadSlot)
	}
	b, ok := buf.Slice(table, slot*RecordSize, RecordSize)
	if !ok {
		return nil, fmt.Errorf("slot %d: %w (table has %d bytes)", slot, ErrTruncated, len(table))
	}
	return b, nil
}

// DecodeRecord decodes a slot record. Inactive slots decode to the zero
// record regardless of leftover bytes.
func DecodeRecord(b []byte) (SlotRecord, error) {
	if !buf.Has(b, 0, RecordSize) {
		return SlotRecord{}, fmt.Errorf("record: %w (have %d, need %d)", ErrTruncated, len(b), RecordSize)
	}
	if b[RecordActiveOffset] == 0 {
		return SlotRecord{}, nil
	}
	name := b[RecordNameOffset : RecordNameOffset+MaxName]
	if i := bytes.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	return SlotRecord{
		Name:     string(name),
		Size:     ReadU32(b, RecordSizeOffset),
		Alloc:    ReadU32(b, RecordAllocOffset),
		Logical:  ReadU64(b, RecordLogicalOffset),
		Physical: ReadU64(b, RecordPhysicalOffset),
		Active:   true,
	}, nil
}

// EncodeRecord writes r into b. The name must leave room for the NUL.
func EncodeRecord(b []byte, r SlotRecord) error {
	if !buf.Has(b, 0, RecordSize) {
		return fmt.Errorf("record: %w (have %d, need %d)", ErrTruncated, len(b), RecordSize)
	}
	if len(r.Name) >= MaxName {
		return fmt.Errorf("record %q: %w", r.Name, ErrNameTooLong)
	}
	ClearRecord(b)
	copy(b[RecordNameOffset:], r.Name)
	PutU32(b, RecordSizeOffset, r.Size)
	PutU32(b, RecordAllocOffset, r.Alloc)
	PutU64(b, RecordLogicalOffset, r.Logical)
	PutU64(b, RecordPhysicalOffset, r.Physical)
	if r.Active {
		b[RecordActiveOffset] = 1
	}
	return nil
}

// PutName overwrites only the name field of an encoded record.
func PutName(b []byte, name string) error {
	if len(name) >= MaxName {
		return fmt.Errorf("record %q: %w", name, ErrNameTooLong)
	}
	field := b[RecordNameOffset : RecordNameOffset+MaxName]
	clear(field)
	copy(field, name)
	return nil
}

// ClearRecord zeroes every byte of the record, leaving a free slot.
func ClearRecord(b []byte) {
	clear(b[:RecordSize])
}
