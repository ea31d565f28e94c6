package board

import "runtime/debug"

// Handler receives bus events. Handlers run synchronously on the engine
// goroutine and may mutate the store, emit further events, or cancel their
// own subscription.
type Handler func(Event)

// Subscription is a handle to a registered handler.
type Subscription struct {
	id       uint64
	kind     EventKind
	fn       Handler
	canceled bool
}

// Cancel removes the subscription. Canceling during dispatch is safe: the
// handler is skipped for the remainder of the current emission and never
// called again. Cancel is idempotent.
func (s *Subscription) Cancel() {
	s.canceled = true
}

// BusStats reports delivery counters for diagnostics.
type BusStats struct {
	Emitted   uint64
	Delivered uint64
	Panics    uint64
	Active    int
}

// Bus is a synchronous event bus. Emission delivers to handlers in
// registration order on the calling goroutine; a panicking handler is
// recovered and logged and delivery continues with the next one.
//
// The bus is single-threaded by contract, like the rest of the engine. It
// is re-entrant: handlers may emit and subscribe, and emissions triggered
// from inside a handler complete before the outer Emit returns to it.
type Bus struct {
	nextID uint64
	subs   map[EventKind][]*Subscription

	emitted   uint64
	delivered uint64
	panics    uint64
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[EventKind][]*Subscription)}
}

// Subscribe registers a handler for one event kind and returns its handle.
// A nil handler returns a handle that delivers nothing.
func (b *Bus) Subscribe(kind EventKind, fn Handler) *Subscription {
	b.nextID++
	sub := &Subscription{id: b.nextID, kind: kind, fn: fn}
	if fn == nil {
		sub.canceled = true
		return sub
	}
	b.subs[kind] = append(b.subs[kind], sub)
	return sub
}

// Emit delivers an event to every live subscription of its kind, in
// registration order. Handlers added during dispatch do not receive the
// current event.
func (b *Bus) Emit(kind EventKind, data any) {
	b.emitted++
	list := b.subs[kind]
	if len(list) == 0 {
		return
	}
	// Snapshot so that subscribe/cancel inside a handler cannot shift the
	// slice under the loop.
	snapshot := make([]*Subscription, len(list))
	copy(snapshot, list)

	ev := Event{Kind: kind, Data: data}
	for _, sub := range snapshot {
		if sub.canceled {
			continue
		}
		b.dispatch(sub, ev)
	}
	b.compact(kind)
}

func (b *Bus) dispatch(sub *Subscription, ev Event) {
	defer func() {
		if r := recover(); r != nil {
			b.panics++
			Logger().Warn("event handler panic",
				"kind", ev.Kind, "panic", r, "stack", string(debug.Stack()))
		}
	}()
	sub.fn(ev)
	b.delivered++
}

// compact drops canceled subscriptions once they outnumber live ones.
func (b *Bus) compact(kind EventKind) {
	list := b.subs[kind]
	dead := 0
	for _, sub := range list {
		if sub.canceled {
			dead++
		}
	}
	if dead == 0 || dead*2 < len(list) {
		return
	}
	live := list[:0]
	for _, sub := range list {
		if !sub.canceled {
			live = append(live, sub)
		}
	}
	b.subs[kind] = live
}

// Clear cancels every subscription. Used by Engine.Close.
func (b *Bus) Clear() {
	for kind, list := range b.subs {
		for _, sub := range list {
			sub.canceled = true
		}
		delete(b.subs, kind)
	}
}

// Stats returns delivery counters.
func (b *Bus) Stats() BusStats {
	active := 0
	for _, list := range b.subs {
		for _, sub := range list {
			if !sub.canceled {
				active++
			}
		}
	}
	return BusStats{
		Emitted:   b.emitted,
		Delivered: b.delivered,
		Panics:    b.panics,
		Active:    active,
	}
}
