package heap

// item pairs a payload with its scheduling priority.
type item[T any] struct {
	payload  T
	priority float32
}

// Heap is a binary min-heap over (payload, priority) pairs.
// The zero value is not usable; construct with New.
type Heap[T any] struct {
	items []item[T]
}

// New constructs an empty Heap with the given initial capacity hint.
// capacity <= 0 is treated as 0; the backing slice grows as needed.
func New[T any](capacity int) *Heap[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Heap[T]{items: make([]item[T], 0, capacity)}
}

// Len returns the number of items currently in the heap.
func (h *Heap[T]) Len() int {
	return len(h.items)
}

// Clear empties the heap without releasing its backing array.
func (h *Heap[T]) Clear() {
	h.items = h.items[:0]
}

// Push inserts payload with the given priority. Capacity doubles
// automatically via append; the caller never observes OutOfCapacity.
func (h *Heap[T]) Push(payload T, priority float32) {
	h.items = append(h.items, item[T]{payload: payload, priority: priority})
	h.siftUp(len(h.items) - 1)
}

// PeekMin returns the minimum-priority payload without removing it.
// ok is false iff the heap is empty.
func (h *Heap[T]) PeekMin() (payload T, priority float32, ok bool) {
	if len(h.items) == 0 {
		return payload, 0, false
	}

	top := h.items[0]
	return top.payload, top.priority, true
}

// PopMin removes and returns the minimum-priority payload.
// ok is false iff the heap is empty (EmptyOp, per the contract of §7).
func (h *Heap[T]) PopMin() (payload T, priority float32, ok bool) {
	n := len(h.items)
	if n == 0 {
		return payload, 0, false
	}

	top := h.items[0]
	last := h.items[n-1]
	h.items = h.items[:n-1]
	if n > 1 {
		h.items[0] = last
		h.siftDown(0)
	}

	return top.payload, top.priority, true
}

func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.items[parent].priority <= h.items[i].priority {
			break
		}
		h.items[parent], h.items[i] = h.items[i], h.items[parent]
		i = parent
	}
}

func (h *Heap[T]) siftDown(i int) {
	n := len(h.items)
	for {
		left := 2*i + 1
		right := 2*i + 2
		smallest := i
		if left < n && h.items[left].priority < h.items[smallest].priority {
			smallest = left
		}
		if right < n && h.items[right].priority < h.items[smallest].priority {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}
