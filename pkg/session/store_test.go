package session_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RaGnaRoK-thor/invsys/pkg/session"
)

// fakeClock reloj controlable para probar expiración sin dormir.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newStore(t *testing.T, ttl time.Duration) (*session.Store, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)}
	s := session.New(ttl, session.WithClock(clock.Now))
	t.Cleanup(s.Close)
	return s, clock
}

func TestStore_CreateYGet(t *testing.T) {
	s, _ := newStore(t, 30*time.Minute)

	token := s.Create("EMP-001")
	require.NotEmpty(t, token)

	got, ok := s.Get(token)
	assert.True(t, ok)
	assert.Equal(t, "EMP-001", got)
}

func TestStore_TokenDesconocido(t *testing.T) {
	s, _ := newStore(t, 30*time.Minute)

	_, ok := s.Get("token-que-no-existe")
	assert.False(t, ok)
}

func TestStore_ExpiraTrasInactividad(t *testing.T) {
	s, clock := newStore(t, 30*time.Minute)
	token := s.Create("EMP-001")

	clock.Advance(31 * time.Minute)

	_, ok := s.Get(token)
	assert.False(t, ok, "la sesión debe caducar tras la ventana de inactividad")
}

// La expiración es deslizante: accesos dentro de la ventana la renuevan, por lo
// que una sesión activa sobrevive más allá del TTL inicial.
func TestStore_ExpiracionDeslizante(t *testing.T) {
	s, clock := newStore(t, 30*time.Minute)
	token := s.Create("EMP-001")

	for i := 0; i < 4; i++ {
		clock.Advance(20 * time.Minute)
		_, ok := s.Get(token)
		require.True(t, ok, "acceso dentro de la ventana debe renovar la sesión")
	}

	clock.Advance(31 * time.Minute)
	_, ok := s.Get(token)
	assert.False(t, ok)
}

func TestStore_Destroy(t *testing.T) {
	s, _ := newStore(t, 30*time.Minute)
	token := s.Create("EMP-001")

	s.Destroy(token)
	_, ok := s.Get(token)
	assert.False(t, ok)

	// Destroy es idempotente
	s.Destroy(token)
}

func TestStore_TokensIndependientes(t *testing.T) {
	s, _ := newStore(t, 30*time.Minute)
	t1 := s.Create("EMP-001")
	t2 := s.Create("EMP-002")
	require.NotEqual(t, t1, t2)

	s.Destroy(t1)

	_, ok := s.Get(t1)
	assert.False(t, ok)
	got, ok := s.Get(t2)
	assert.True(t, ok)
	assert.Equal(t, "EMP-002", got)
}
