package debounce

import (
	"sync"
	"time"
)

// DefaultInterval se usa cuando la config no define SEARCH_DEBOUNCE.
const DefaultInterval = 300 * time.Millisecond

// Debouncer difiere una acción hasta que pase un intervalo sin triggers.
// Estados: IDLE (nada pendiente) y PENDING (timer programado).
// Solo el último Trigger dentro de la ventana se ejecuta.
type Debouncer struct {
	interval time.Duration

	mu      sync.Mutex
	timer   Timer
	stopped bool
}

// New crea un Debouncer. interval <= 0 significa ejecución inmediata.
func New(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

func (d *Debouncer) Interval() time.Duration { return d.interval }

// Trigger cancela lo pendiente y programa fn. Devuelve false si el
// Debouncer ya fue detenido (fn no se ejecuta).
func (d *Debouncer) Trigger(fn func()) bool {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return false
	}
	if d.interval <= 0 {
		d.timer.Cancel()
		d.mu.Unlock()
		fn()
		return true
	}
	d.timer.Schedule(d.interval, fn)
	d.mu.Unlock()
	return true
}

// Pending indica estado PENDING.
func (d *Debouncer) Pending() bool {
	return d.timer.State() == StateScheduled
}

// Flush cancela lo pendiente sin detener el Debouncer.
func (d *Debouncer) Flush() bool {
	return d.timer.Cancel()
}

// Stop es el teardown: cancela lo pendiente y rechaza triggers futuros.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	d.timer.Cancel()
}
