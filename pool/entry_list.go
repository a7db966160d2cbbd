package pool

import (
	"weak"

	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/pkg/errors"
	"github.com/vkngwrapper/armory/resutils"
)

type poolEntry interface {
	ID() uint64
	IsFree() bool
	printParameters(o *jwriter.ObjectState)
}

type entryPointer[T any] interface {
	*T
	poolEntry
}

type weakEntry[T any] struct {
	id       uint64
	entry    weak.Pointer[T]
	retained *T
}

// entryList is the registry of entries handed out by a pool. Entries held by a caller are only
// referenced weakly, so an entry that every caller drops without calling Destroy is still
// collected. Such entries are pruned by the next scan and reported through onLeak. Free entries
// are retained, since the pool is their only owner once released.
//
// entryList does no locking of its own: the pool's mutex guards it.
type entryList[T any, P entryPointer[T]] struct {
	count   int
	entries []weakEntry[T]
	index   map[uint64]int
	onLeak  func(id uint64)
}

func (l *entryList[T, P]) Init(onLeak func(id uint64)) {
	l.index = make(map[uint64]int)
	l.onLeak = onLeak
}

func (l *entryList[T, P]) Register(entry P) {
	l.index[entry.ID()] = len(l.entries)
	l.entries = append(l.entries, weakEntry[T]{id: entry.ID(), entry: weak.Make((*T)(entry))})
	l.count++
}

// Unregister removes an entry from the list. It returns false if the entry was not registered.
func (l *entryList[T, P]) Unregister(id uint64) bool {
	position, ok := l.index[id]
	if !ok {
		return false
	}

	l.removeAt(position)
	return true
}

// Retain marks whether the list keeps the entry alive by itself. It returns false if the entry
// was not registered.
func (l *entryList[T, P]) Retain(entry P, retain bool) bool {
	position, ok := l.index[entry.ID()]
	if !ok || l.entries[position].entry.Value() != (*T)(entry) {
		return false
	}

	if retain {
		l.entries[position].retained = (*T)(entry)
	} else {
		l.entries[position].retained = nil
	}
	return true
}

// Contains reports whether the entry with this id is registered. Identity, not equality, is
// checked: an entry from another pool never matches even if its id is in use here.
func (l *entryList[T, P]) Contains(entry P) bool {
	position, ok := l.index[entry.ID()]
	if !ok {
		return false
	}

	return l.entries[position].entry.Value() == (*T)(entry)
}

func (l *entryList[T, P]) removeAt(position int) {
	delete(l.index, l.entries[position].id)

	copy(l.entries[position:], l.entries[position+1:])
	l.entries[len(l.entries)-1] = weakEntry[T]{}
	l.entries = l.entries[:len(l.entries)-1]
	for i := position; i < len(l.entries); i++ {
		l.index[l.entries[i].id] = i
	}

	l.count--
}

// Find returns the first live entry, in registration order, that match accepts. Entries that
// have been collected are pruned as they are encountered.
func (l *entryList[T, P]) Find(match func(entry P) bool) P {
	for i := 0; i < len(l.entries); {
		value := l.entries[i].entry.Value()
		if value == nil {
			id := l.entries[i].id
			l.removeAt(i)
			if l.onLeak != nil {
				l.onLeak(id)
			}
			continue
		}

		if match(P(value)) {
			return P(value)
		}
		i++
	}

	var none P
	return none
}

// All calls visit with every live entry, in registration order, without pruning
func (l *entryList[T, P]) All(visit func(entry P)) {
	for _, e := range l.entries {
		if value := e.entry.Value(); value != nil {
			visit(P(value))
		}
	}
}

// Clear drops every registered entry and returns the live ones
func (l *entryList[T, P]) Clear() []P {
	var live []P
	l.All(func(entry P) {
		live = append(live, entry)
	})

	l.entries = nil
	l.index = make(map[uint64]int)
	l.count = 0
	return live
}

func (l *entryList[T, P]) Validate() error {
	declaredCount := l.count
	actualCount := len(l.entries)

	if declaredCount != actualCount {
		return errors.Errorf("the listed number of pool entries (%d) does not match the actual number of entries (%d)", declaredCount, actualCount)
	}

	for _, e := range l.entries {
		if e.retained != nil && !P(e.retained).IsFree() {
			return errors.Errorf("pool entry %d is retained by the pool but is not free", e.id)
		}
	}

	if len(l.index) != actualCount {
		return errors.Errorf("the pool entry index holds %d ids but the list holds %d entries", len(l.index), actualCount)
	}

	for i, e := range l.entries {
		position, ok := l.index[e.id]
		if !ok || position != i {
			return errors.Errorf("pool entry %d is at position %d but indexed at %d", e.id, i, position)
		}
	}

	return nil
}

func (l *entryList[T, P]) AddStatistics(stats *resutils.Statistics) {
	l.All(func(entry P) {
		stats.EntryCount++
		if entry.IsFree() {
			stats.FreeCount++
		}
	})
}

func (l *entryList[T, P]) BuildStatsString(writer *jwriter.Writer) {
	s := writer.Array()
	defer s.End()

	l.All(func(entry P) {
		o := s.Object()
		entry.printParameters(&o)
		o.End()
	})
}
