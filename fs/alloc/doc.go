// Package alloc bridges the directory service to a page allocator.
//
// # Overview
//
// Bridge.Allocate asks the underlying PageAllocator for a block and clears
// it before handing it back, so every Region a caller sees is
// zero-initialized no matter what the allocator had there before.
//
// # Usage Example
//
//	pa, err := pages.NewMapped(16<<20, 0x10000, 0x10000, nil)
//	if err != nil {
//	    return err
//	}
//	defer pa.Close()
//
//	b := alloc.NewBridge(pa, nil)
//	r, err := b.Allocate(4096, true)
//	if errors.Is(err, alloc.ErrAllocFailed) {
//	    // report and carry on
//	}
//
// # Reclamation
//
// There is no Free. Regions live as long as the page allocator does.
package alloc
