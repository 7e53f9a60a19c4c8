// Package debounce modela la cancelación explícita de trabajo diferido:
// un Timer cancelable, un Debouncer sobre él, y un Sequence que descarta
// respuestas viejas.
package debounce

import (
	"sync"
	"time"
)

type State int

const (
	StateIdle State = iota
	StateScheduled
	StateFired
	StateCanceled
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateScheduled:
		return "scheduled"
	case StateFired:
		return "fired"
	case StateCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Timer es un timer de un solo disparo, re-programable.
// Invariante: una programación cancelada (o reemplazada) nunca ejecuta su fn.
type Timer struct {
	mu    sync.Mutex
	state State
	t     *time.Timer
	gen   uint64
}

// Schedule programa fn para dentro de d, reemplazando cualquier programación
// pendiente. Con d <= 0 ejecuta fn de inmediato en el goroutine del caller.
func (t *Timer) Schedule(d time.Duration, fn func()) {
	t.mu.Lock()
	t.stopLocked()
	t.gen++
	gen := t.gen

	if d <= 0 {
		t.state = StateFired
		t.mu.Unlock()
		fn()
		return
	}

	t.state = StateScheduled
	t.t = time.AfterFunc(d, func() {
		t.mu.Lock()
		// El callback puede haber quedado encolado después de un Cancel/Schedule.
		if t.gen != gen || t.state != StateScheduled {
			t.mu.Unlock()
			return
		}
		t.state = StateFired
		t.t = nil
		t.mu.Unlock()

		fn()
	})
	t.mu.Unlock()
}

// Cancel cancela la programación pendiente. Devuelve true si había una.
func (t *Timer) Cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateScheduled {
		return false
	}
	t.stopLocked()
	t.gen++
	t.state = StateCanceled
	return true
}

func (t *Timer) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *Timer) stopLocked() {
	if t.t != nil {
		t.t.Stop()
		t.t = nil
	}
}
