// Package session implementa el almacén de sesiones del lado del servidor:
// token opaco -> {employee_id, expiración}. La expiración es deslizante: cada
// lectura válida la renueva, de modo que la sesión caduca solo tras la ventana
// de inactividad configurada.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const defaultJanitorInterval = time.Minute

type entry struct {
	employeeID string
	expiresAt  time.Time
}

// Store almacén de sesiones en memoria, seguro para uso concurrente.
// Se inyecta en el middleware HTTP; un reemplazo distribuido solo necesita
// respetar la misma interfaz Create/Get/Destroy.
type Store struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration

	now  func() time.Time // reemplazable en tests
	done chan struct{}
}

// Option ajusta la construcción del Store.
type Option func(*Store)

// WithClock reemplaza la fuente de tiempo (tests de expiración).
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New crea un Store con la ventana de inactividad dada y arranca el janitor
// que purga entradas expiradas. Llamar Close al apagar.
func New(ttl time.Duration, opts ...Option) *Store {
	s := &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	go s.janitor(defaultJanitorInterval)
	return s
}

// Create registra una sesión nueva para employeeID y devuelve su token opaco.
func (s *Store) Create(employeeID string) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.entries[token] = entry{
		employeeID: employeeID,
		expiresAt:  s.now().Add(s.ttl),
	}
	s.mu.Unlock()
	return token
}

// Get devuelve el employeeID asociado al token si la sesión sigue viva y,
// en ese caso, renueva la expiración (ventana deslizante). Un token
// desconocido o expirado devuelve ok = false.
func (s *Store) Get(token string) (employeeID string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, found := s.entries[token]
	if !found {
		return "", false
	}
	now := s.now()
	if now.After(e.expiresAt) {
		delete(s.entries, token)
		return "", false
	}
	e.expiresAt = now.Add(s.ttl)
	s.entries[token] = e
	return e.employeeID, true
}

// Destroy elimina la sesión del token (logout). Es idempotente.
func (s *Store) Destroy(token string) {
	s.mu.Lock()
	delete(s.entries, token)
	s.mu.Unlock()
}

// Len devuelve el número de sesiones registradas, incluidas las expiradas
// que el janitor aún no purgó.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Close detiene el janitor.
func (s *Store) Close() {
	close(s.done)
}

func (s *Store) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.purgeExpired()
		}
	}
}

func (s *Store) purgeExpired() {
	now := s.now()
	s.mu.Lock()
	for token, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, token)
		}
	}
	s.mu.Unlock()
}
