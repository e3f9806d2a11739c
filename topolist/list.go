package topolist

// Handle is a stable, address-identified node of a List. Callers may stash a
// *Handle on their own payload structures (package aig stores one as
// Node.TopoHandle) and later pass it back to Remove or InsertAfter.
//
// Once Remove(h) has been called, h is turned into an empty placeholder in
// place: its Payload becomes the zero value and it is detached from the
// list, but h.Next still resolves to whatever handle followed it at the
// moment of removal. This lets a caller holding h as an iteration cursor
// keep advancing (cursor = cursor.Next()) without losing its place, even
// though the node it pointed at is gone.
type Handle[T any] struct {
	payload   T
	prev      *Handle[T]
	next      *Handle[T]
	list      *List[T]
	tombstone bool
}

// Payload returns the stored value, or the zero value if h is a tombstone
// left behind by Remove.
func (h *Handle[T]) Payload() T {
	return h.payload
}

// Next returns the following handle in list order, or nil at the tail.
// Valid on tombstones: it resolves to the handle's former successor.
func (h *Handle[T]) Next() *Handle[T] {
	return h.next
}

// Prev returns the preceding handle in list order, or nil at the head.
// Undefined (nil) on a tombstone: a removed handle no longer has a
// well-defined predecessor.
func (h *Handle[T]) Prev() *Handle[T] {
	return h.prev
}

// Removed reports whether h has already been unlinked by List.Remove.
func (h *Handle[T]) Removed() bool {
	return h.tombstone
}

// List is a doubly-linked list of stable handles, used to persist a
// topological ordering of AIG nodes across structural mutations.
// The zero value is not usable; construct with New.
type List[T any] struct {
	head *Handle[T]
	tail *Handle[T]
	size int
}

// New constructs an empty List.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Len returns the number of live handles in the list.
func (l *List[T]) Len() int {
	return l.size
}

// First returns the head handle, or nil if the list is empty.
func (l *List[T]) First() *Handle[T] {
	return l.head
}

// Last returns the tail handle, or nil if the list is empty.
func (l *List[T]) Last() *Handle[T] {
	return l.tail
}

// PushBack appends payload to the end of the list and returns its handle.
func (l *List[T]) PushBack(payload T) *Handle[T] {
	h := &Handle[T]{payload: payload, list: l}
	if l.tail == nil {
		l.head = h
		l.tail = h
	} else {
		h.prev = l.tail
		l.tail.next = h
		l.tail = h
	}
	l.size++

	return h
}

// InsertAfter splices a new handle carrying payload immediately after
// `after`. If after is nil, the new handle is inserted at the head.
// The new handle becomes visible to any forward scan that has not yet
// passed `after`, which is how the refactoring driver makes freshly
// spliced predecessors visible within the current pass.
func (l *List[T]) InsertAfter(after *Handle[T], payload T) *Handle[T] {
	if after == nil {
		h := &Handle[T]{payload: payload, list: l, next: l.head}
		if l.head != nil {
			l.head.prev = h
		} else {
			l.tail = h
		}
		l.head = h
		l.size++
		return h
	}

	h := &Handle[T]{payload: payload, list: l, prev: after, next: after.next}
	if after.next != nil {
		after.next.prev = h
	} else {
		l.tail = h
	}
	after.next = h
	l.size++

	return h
}

// Remove unlinks h from the list in O(1). h is left as a tombstone: its
// Payload becomes the zero value and Removed() reports true, but Next()
// keeps resolving to h's former successor so an external cursor equal to
// h can still advance safely. Removing an already-removed handle is a
// no-op.
func (l *List[T]) Remove(h *Handle[T]) {
	if h == nil || h.tombstone {
		return
	}

	if h.prev != nil {
		h.prev.next = h.next
	} else {
		l.head = h.next
	}
	if h.next != nil {
		h.next.prev = h.prev
	} else {
		l.tail = h.prev
	}
	l.size--

	var zero T
	h.payload = zero
	h.prev = nil
	h.list = nil
	h.tombstone = true
}
