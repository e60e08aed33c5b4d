package ordset

// Allocator is the memory collaborator consumed by set implementations.
// Every node a set creates is preceded by a call to Alloc, every node it
// destroys is followed by a call to Free. An implementation may refuse an
// allocation by returning an error (conventionally wrapping ErrAllocation);
// sets never retry a failed allocation and surface the failure unchanged,
// leaving the tree exactly as it was.
//
// Allocators do their accounting synchronously and must not block.
type Allocator interface {
	Alloc() error
	Free()
}

// Heap returns the default allocator. It delegates to the Go runtime
// allocator and never fails.
func Heap() Allocator {
	return heapAllocator{}
}

type heapAllocator struct{}

func (heapAllocator) Alloc() error { return nil }
func (heapAllocator) Free()        {}

// Budget returns an allocator which admits at most max live nodes and
// fails every allocation beyond that. Its main use is exercising the
// out-of-memory paths of a set without faking the runtime allocator.
func Budget(max int) Allocator {
	return &budgetAllocator{max: max}
}

type budgetAllocator struct {
	live int
	max  int
}

func (b *budgetAllocator) Alloc() error {
	if b.live >= b.max {
		return ErrAllocation
	}
	b.live++
	return nil
}

func (b *budgetAllocator) Free() {
	if b.live > 0 {
		b.live--
	}
}
