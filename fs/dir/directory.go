package dir

import (
	"fmt"
	"iter"
	"log/slog"
	"math"

	"github.com/joshuapare/minifs/fs/alloc"
	"github.com/joshuapare/minifs/internal/format"
	"github.com/joshuapare/minifs/internal/logger"
)

// Allocator supplies zeroed regions. *alloc.Bridge satisfies it.
type Allocator interface {
	Allocate(size uint64, align bool) (alloc.Region, error)
}

// Record is an active file as seen by callers.
type Record struct {
	Slot     int
	Name     string
	Size     uint64 // requested bytes
	Alloc    uint64 // bytes reserved, a page multiple
	Logical  uint64
	Physical uint64
}

// Directory owns the slot table and every file region.
type Directory struct {
	a       Allocator
	table   alloc.Region
	regions [format.MaxFiles][]byte
	log     *slog.Logger
}

// New allocates the slot table through a and returns an empty Directory.
func New(a Allocator, log *slog.Logger) (*Directory, error) {
	table, err := a.Allocate(format.TableSize, true)
	if err != nil {
		return nil, fmt.Errorf("dir: allocate table: %w", err)
	}
	d := &Directory{a: a, table: table, log: logger.OrDiscard(log)}
	d.log.Debug("directory ready",
		"slots", format.MaxFiles, "table", format.Hex(table.Logical), "phys", format.Hex(table.Physical))
	return d, nil
}

// Table returns the region holding the slot records.
func (d *Directory) Table() alloc.Region {
	return d.table
}

// Cap returns the number of slots.
func (d *Directory) Cap() int {
	return format.MaxFiles
}

// Len returns the number of active records.
func (d *Directory) Len() int {
	n := 0
	for range d.List() {
		n++
	}
	return n
}

// Find returns the slot of the active record named name.
func (d *Directory) Find(name string) (int, bool) {
	for i := range format.MaxFiles {
		if r := d.slot(i); r.Active && r.Name == name {
			return i, true
		}
	}
	return -1, false
}

// Record returns the active record at slot.
func (d *Directory) Record(slot int) (Record, bool) {
	if slot < 0 || slot >= format.MaxFiles {
		return Record{}, false
	}
	r := d.slot(slot)
	if !r.Active {
		return Record{}, false
	}
	return toRecord(slot, r), true
}

// Region returns the backing memory of the active record at slot.
func (d *Directory) Region(slot int) ([]byte, bool) {
	if _, ok := d.Record(slot); !ok {
		return nil, false
	}
	return d.regions[slot], true
}

// Create adds a file of size bytes backed by a fresh zeroed region of
// AlignPage(size) bytes in the lowest free slot. Checks run in order:
// empty name, name length, duplicate, zero size, free slot, allocation.
// On error the directory is unchanged.
func (d *Directory) Create(name string, size uint64) (Record, error) {
	if name == "" {
		return Record{}, ErrUsage
	}
	if len(name) >= format.MaxName {
		return Record{}, ErrNameTooLong
	}
	if _, ok := d.Find(name); ok {
		return Record{}, ErrExists
	}
	if size == 0 {
		return Record{}, ErrZeroSize
	}
	slot := d.freeSlot()
	if slot < 0 {
		return Record{}, ErrFull
	}

	want := format.AlignPage(size)
	if want < size || want > math.MaxUint32 {
		return Record{}, fmt.Errorf("create %s: %w: %d bytes exceeds a record", name, alloc.ErrAllocFailed, size)
	}
	region, err := d.a.Allocate(want, true)
	if err != nil {
		return Record{}, fmt.Errorf("create %s: %w", name, err)
	}

	rec := format.SlotRecord{
		Name:     name,
		Size:     uint32(size),
		Alloc:    uint32(want),
		Logical:  region.Logical,
		Physical: region.Physical,
		Active:   true,
	}
	b, err := format.SlotBytes(d.table.Data, slot)
	if err != nil {
		return Record{}, err
	}
	if err := format.EncodeRecord(b, rec); err != nil {
		return Record{}, err
	}
	d.regions[slot] = region.Data

	d.log.Debug("file created", "name", name, "slot", slot, "size", size, "alloc", region.Size())
	return toRecord(slot, rec), nil
}

// Rename changes the name of an active record. Size and region are kept.
func (d *Directory) Rename(oldName, newName string) error {
	if oldName == "" || newName == "" {
		return ErrUsage
	}
	if len(newName) >= format.MaxName {
		return ErrNameTooLong
	}
	slot, ok := d.Find(oldName)
	if !ok {
		return ErrNotFound
	}
	if _, taken := d.Find(newName); taken {
		return ErrExists
	}
	b, err := format.SlotBytes(d.table.Data, slot)
	if err != nil {
		return err
	}
	if err := format.PutName(b, newName); err != nil {
		return err
	}
	d.log.Debug("file renamed", "from", oldName, "to", newName, "slot", slot)
	return nil
}

// Delete clears the record named name. Its region is abandoned, not freed.
func (d *Directory) Delete(name string) error {
	if name == "" {
		return ErrUsage
	}
	slot, ok := d.Find(name)
	if !ok {
		return ErrNotFound
	}
	b, err := format.SlotBytes(d.table.Data, slot)
	if err != nil {
		return err
	}
	format.ClearRecord(b)
	d.regions[slot] = nil
	d.log.Debug("file deleted", "name", name, "slot", slot)
	return nil
}

// List yields every active record in slot order. The sequence reads the
// table on each iteration, so it can be ranged over any number of times.
func (d *Directory) List() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for i := range format.MaxFiles {
			r := d.slot(i)
			if !r.Active {
				continue
			}
			if !yield(toRecord(i, r)) {
				return
			}
		}
	}
}

func (d *Directory) freeSlot() int {
	for i := range format.MaxFiles {
		if !d.slot(i).Active {
			return i
		}
	}
	return -1
}

// slot decodes slot i. The table is allocated at TableSize, so the slot
// bytes are always in range.
func (d *Directory) slot(i int) format.SlotRecord {
	b, err := format.SlotBytes(d.table.Data, i)
	if err != nil {
		return format.SlotRecord{}
	}
	r, err := format.DecodeRecord(b)
	if err != nil {
		return format.SlotRecord{}
	}
	return r
}

func toRecord(slot int, r format.SlotRecord) Record {
	return Record{
		Slot:     slot,
		Name:     r.Name,
		Size:     uint64(r.Size),
		Alloc:    uint64(r.Alloc),
		Logical:  r.Logical,
		Physical: r.Physical,
	}
}
