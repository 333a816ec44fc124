// Package entity provides the ownership and subscription primitive the rest
// of the app is built on: a generational arena of state slots addressed by
// opaque handles, with synchronous per-entity event delivery.
//
// Each entity's state lives in exactly one Container slot. Everything else
// holds handles and mutates through Update, never by aliasing the state.
// Handles are cheap, copyable and generation-checked: once an entity is
// destroyed its slot may be recycled, and any retained handle to the old
// incarnation fails fast instead of reading recycled memory.
package entity

// Changed is the generic mutation notification delivered to subscribers
// after every Update. Domain-specific signals are emitted with Emit and
// carry their own types.
type Changed struct{}

// Handle addresses one entity inside a Container. The zero Handle is
// invalid and addresses nothing.
type Handle[T any] struct {
	idx uint32
	gen uint32
}

type slot[T any] struct {
	state T
	gen   uint32
	live  bool
	subs  []*Subscription
}

// Container owns the state of every entity created through it. It is not
// safe for concurrent use; the app runs a single cooperative event loop and
// all mutations plus their notifications complete before the triggering
// call returns.
type Container[T any] struct {
	slots []slot[T]
	free  []uint32
}

func NewContainer[T any]() *Container[T] {
	return &Container[T]{}
}

// Create allocates a slot for initial and returns its handle. Never fails.
func (c *Container[T]) Create(initial T) Handle[T] {
	if n := len(c.free); n > 0 {
		idx := c.free[n-1]
		c.free = c.free[:n-1]
		s := &c.slots[idx]
		s.state = initial
		s.live = true
		return Handle[T]{idx: idx, gen: s.gen}
	}
	c.slots = append(c.slots, slot[T]{state: initial, gen: 1, live: true})
	return Handle[T]{idx: uint32(len(c.slots) - 1), gen: 1}
}

// slotFor resolves a handle or panics. Using a destroyed or foreign handle
// is a programming error, not a recoverable condition.
func (c *Container[T]) slotFor(h Handle[T]) *slot[T] {
	if int(h.idx) >= len(c.slots) {
		panic("entity: handle does not belong to this container")
	}
	s := &c.slots[h.idx]
	if !s.live || s.gen != h.gen {
		panic("entity: use of destroyed handle")
	}
	return s
}

// Alive reports whether h still addresses a live entity.
func (c *Container[T]) Alive(h Handle[T]) bool {
	if int(h.idx) >= len(c.slots) {
		return false
	}
	s := &c.slots[h.idx]
	return s.live && s.gen == h.gen
}

// Get returns a copy of the entity's current state.
func (c *Container[T]) Get(h Handle[T]) T {
	return c.slotFor(h).state
}

// Update applies mutate to the owned state, then synchronously notifies
// subscribers with Changed. The mutator must not call back into the
// container for the same handle.
func (c *Container[T]) Update(h Handle[T], mutate func(*T)) {
	mutate(&c.slotFor(h).state)
	c.emit(h.idx, Changed{})
}

// Emit delivers a domain-specific signal from the entity to its subscribers.
func (c *Container[T]) Emit(h Handle[T], event any) {
	c.slotFor(h)
	c.emit(h.idx, event)
}

// emit works with the slot index, not a *slot: subscriber callbacks may
// Create entities in this container and move the backing array.
func (c *Container[T]) emit(idx uint32, event any) {
	if len(c.slots[idx].subs) == 0 {
		return
	}
	// Snapshot so subscribers may cancel (their own or others') subscriptions,
	// or destroy the entity, while dispatch is in flight.
	snapshot := make([]*Subscription, len(c.slots[idx].subs))
	copy(snapshot, c.slots[idx].subs)
	for _, sub := range snapshot {
		if sub.canceled {
			continue
		}
		sub.fn(event)
	}
	// Deferred removal: drop entries canceled during (or before) this dispatch.
	// The slot may have been destroyed mid-dispatch, in which case subs is nil.
	s := &c.slots[idx]
	if s.live {
		kept := s.subs[:0]
		for _, sub := range s.subs {
			if !sub.canceled {
				kept = append(kept, sub)
			}
		}
		s.subs = kept
	}
}

// Subscribe registers fn to be called for every event the entity emits,
// both Changed notifications and domain signals. Delivery is synchronous
// and in emission order; each subscriber sees an event at most once.
func (c *Container[T]) Subscribe(h Handle[T], fn func(event any)) *Subscription {
	s := c.slotFor(h)
	sub := &Subscription{fn: fn}
	s.subs = append(s.subs, sub)
	return sub
}

// Destroy releases the entity: its subscriptions are canceled so nothing
// can notify into freed state, the slot is recycled and the generation is
// bumped, invalidating every outstanding handle.
func (c *Container[T]) Destroy(h Handle[T]) {
	s := c.slotFor(h)
	for _, sub := range s.subs {
		sub.Cancel()
	}
	s.subs = nil
	s.live = false
	s.gen++
	var zero T
	s.state = zero
	c.free = append(c.free, h.idx)
}

// Subscription is the token returned by Subscribe. Cancel stops delivery;
// canceling during a dispatch that includes this subscription is safe.
type Subscription struct {
	fn       func(event any)
	canceled bool
}

func (s *Subscription) Cancel() {
	s.canceled = true
	s.fn = nil
}
