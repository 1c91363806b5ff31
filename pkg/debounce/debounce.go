// Package debounce delays a call until its input has been quiet for a fixed window.
// Only the latest value of a burst is delivered. A call already running is never
// cancelled, a newer trigger simply schedules another one.
package debounce

import (
	"sync"
	"time"
)

type Debouncer[T any] struct {
	mu      sync.Mutex
	delay   time.Duration
	fn      func(T)
	timer   *time.Timer
	gen     uint64
	stopped bool
}

func New[T any](delay time.Duration, fn func(T)) *Debouncer[T] {
	return &Debouncer[T]{delay: delay, fn: fn}
}

// Trigger restarts the quiet window with v as the pending value.
func (d *Debouncer[T]) Trigger(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	d.gen++
	gen := d.gen
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.fire(gen, v)
	})
}

func (d *Debouncer[T]) fire(gen uint64, v T) {
	d.mu.Lock()
	if d.stopped || gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()
	d.fn(v)
}

// Pending reports whether a call is scheduled and has not fired yet.
func (d *Debouncer[T]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil && !d.stopped
}

// Stop drops the pending call. Triggers after Stop are ignored.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

//---------------------------------------
//---------------------------------------

type keyedEntry struct {
	timer *time.Timer
	gen   uint64
}

// Keyed runs one independent debounce window per key.
type Keyed[T any] struct {
	mu      sync.Mutex
	delay   time.Duration
	fn      func(key string, v T)
	entries map[string]*keyedEntry
	gen     uint64
	stopped bool
}

func NewKeyed[T any](delay time.Duration, fn func(key string, v T)) *Keyed[T] {
	return &Keyed[T]{
		delay:   delay,
		fn:      fn,
		entries: make(map[string]*keyedEntry),
	}
}

func (k *Keyed[T]) Trigger(key string, v T) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.stopped {
		return
	}
	k.gen++
	gen := k.gen
	if e, ok := k.entries[key]; ok {
		e.timer.Stop()
	}
	k.entries[key] = &keyedEntry{
		gen: gen,
		timer: time.AfterFunc(k.delay, func() {
			k.fire(key, gen, v)
		}),
	}
}

func (k *Keyed[T]) fire(key string, gen uint64, v T) {
	k.mu.Lock()
	e, ok := k.entries[key]
	if k.stopped || !ok || e.gen != gen {
		k.mu.Unlock()
		return
	}
	delete(k.entries, key)
	k.mu.Unlock()
	k.fn(key, v)
}

// Pending returns the number of keys with a scheduled call.
func (k *Keyed[T]) Pending() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.entries)
}

func (k *Keyed[T]) Stop() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.stopped = true
	for key, e := range k.entries {
		e.timer.Stop()
		delete(k.entries, key)
	}
}
