package debounce

import "sync/atomic"

// Sequence es un contador monotónico de generaciones de request.
// Cada request toma un token con Next; al llegar la respuesta, solo se aplica
// si IsLatest(token). Así una respuesta lenta no pisa una más nueva.
type Sequence struct {
	n atomic.Uint64
}

func (s *Sequence) Next() uint64 {
	return s.n.Add(1)
}

func (s *Sequence) Current() uint64 {
	return s.n.Load()
}

func (s *Sequence) IsLatest(token uint64) bool {
	return token != 0 && s.n.Load() == token
}

// Invalidate deja obsoletas todas las respuestas en vuelo.
func (s *Sequence) Invalidate() {
	s.n.Add(1)
}
