package game

import "reflect"

//go:generate mockery -name=Listener -output=automock -outpkg=automock -case=underscore

// Listener observes a game. Calls are made synchronously from inside the operation
// that caused them, so implementations must return quickly.
type Listener interface {
	OnVesselPlaced(v Vessel)
	OnShotFired(cell Cell, state State)
	OnStateChanged(state State)
}

// Expirer is implemented by listeners whose owner can go away without removing them.
// An expired listener is dropped on the next dispatch and never called again.
type Expirer interface {
	Expired() bool
}

// ListenerHandle identifies a registration. Handles are never reused, so removing with
// a stale handle does nothing.
type ListenerHandle struct {
	id uint64
}

// Valid reports whether the handle came from a registration.
func (h ListenerHandle) Valid() bool {
	return h.id != 0
}

// ListenerFuncs adapts plain functions to Listener. Nil fields are skipped.
type ListenerFuncs struct {
	VesselPlaced func(v Vessel)
	ShotFired    func(cell Cell, state State)
	StateChanged func(state State)
}

func (f ListenerFuncs) OnVesselPlaced(v Vessel) {
	if f.VesselPlaced != nil {
		f.VesselPlaced(v)
	}
}

func (f ListenerFuncs) OnShotFired(cell Cell, state State) {
	if f.ShotFired != nil {
		f.ShotFired(cell, state)
	}
}

func (f ListenerFuncs) OnStateChanged(state State) {
	if f.StateChanged != nil {
		f.StateChanged(state)
	}
}

type listenerEntry struct {
	id       uint64
	listener Listener
}

// listeners keeps registrations in order. Removal compacts the slice right away.
type listeners struct {
	entries []listenerEntry
	nextID  uint64
}

func (ls *listeners) add(l Listener) ListenerHandle {
	if l == nil {
		return ListenerHandle{}
	}
	for _, e := range ls.entries {
		if sameListener(e.listener, l) {
			return ListenerHandle{id: e.id}
		}
	}
	ls.nextID++
	ls.entries = append(ls.entries, listenerEntry{id: ls.nextID, listener: l})
	return ListenerHandle{id: ls.nextID}
}

func (ls *listeners) remove(h ListenerHandle) {
	ls.compact(func(e listenerEntry) bool {
		return e.id == h.id
	})
}

func (ls *listeners) len() int {
	return len(ls.entries)
}

// each prunes expired listeners and calls fn for the rest in registration order. A
// listener registered during dispatch is first called on the next event.
func (ls *listeners) each(fn func(Listener)) {
	ls.compact(expired)
	snapshot := make([]listenerEntry, len(ls.entries))
	copy(snapshot, ls.entries)
	for _, e := range snapshot {
		if !ls.contains(e.id) || expired(e) {
			continue
		}
		fn(e.listener)
	}
}

func (ls *listeners) contains(id uint64) bool {
	for _, e := range ls.entries {
		if e.id == id {
			return true
		}
	}
	return false
}

func (ls *listeners) compact(drop func(listenerEntry) bool) {
	kept := ls.entries[:0]
	for _, e := range ls.entries {
		if !drop(e) {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(ls.entries); i++ {
		ls.entries[i] = listenerEntry{}
	}
	ls.entries = kept
}

func expired(e listenerEntry) bool {
	x, ok := e.listener.(Expirer)
	return ok && x.Expired()
}

// sameListener compares pointer listeners by identity. Listeners of any other kind
// never match, each registration of a value is a new one.
func sameListener(a, b Listener) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || ta.Kind() != reflect.Ptr {
		return false
	}
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}
