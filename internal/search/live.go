package search

import (
	"context"
	"sync"
	"time"

	"pet-admin-console/internal/debounce"
)

// FetchFunc es la variante con red de la búsqueda (llama al backend).
type FetchFunc[T any] func(ctx context.Context, query string) ([]T, error)

type Result[T any] struct {
	Query string
	Items []T
	Err   error
}

// Live conecta un input de búsqueda con el backend:
// - debounce de keystrokes (solo el último dentro de la ventana dispara fetch)
// - cancela el request en vuelo anterior
// - descarta respuestas que no son la última generación (Sequence)
//
// OnResult se llama desde otro goroutine; el caller debe reenviar el resultado
// a su propio loop de eventos.
type Live[T any] struct {
	fetch    FetchFunc[T]
	onResult func(Result[T])

	deb *debounce.Debouncer
	seq debounce.Sequence

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	inflight context.CancelFunc
}

func NewLive[T any](interval time.Duration, fetch FetchFunc[T], onResult func(Result[T])) *Live[T] {
	ctx, cancel := context.WithCancel(context.Background())
	return &Live[T]{
		fetch:    fetch,
		onResult: onResult,
		deb:      debounce.New(interval),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Type registra un keystroke con el valor actual del input.
func (l *Live[T]) Type(query string) {
	l.deb.Trigger(func() { l.run(query) })
}

// Refresh dispara la búsqueda ya, descartando lo pendiente
// (p.ej. carga inicial o recarga tras crear/borrar).
func (l *Live[T]) Refresh(query string) {
	if l.ctx.Err() != nil {
		return
	}
	l.deb.Flush()
	l.run(query)
}

// Pending indica si hay una búsqueda programada y aún no disparada.
func (l *Live[T]) Pending() bool {
	return l.deb.Pending()
}

// Close es el teardown: nada se ejecuta ni se entrega después.
func (l *Live[T]) Close() {
	l.deb.Stop()
	l.seq.Invalidate()
	l.cancel()
}

func (l *Live[T]) run(query string) {
	token := l.seq.Next()

	ctx, cancel := context.WithCancel(l.ctx)
	l.mu.Lock()
	if l.inflight != nil {
		l.inflight()
	}
	l.inflight = cancel
	l.mu.Unlock()

	go func() {
		defer cancel()

		items, err := l.fetch(ctx, query)
		if !l.seq.IsLatest(token) || l.ctx.Err() != nil {
			return
		}
		l.onResult(Result[T]{Query: query, Items: items, Err: err})
	}()
}
