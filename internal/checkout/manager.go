package checkout

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"boutique/internal/domain"
	"boutique/internal/notify"
)

// Manager tracks live checkout sessions by id. Abandoned sessions are
// simply never completed; End discards one explicitly.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Orchestrator

	orders OrderStore
	cart   CartClearer
	sink   notify.Sink
	delay  time.Duration
}

func NewManager(orders OrderStore, cart CartClearer, sink notify.Sink, delay time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]*Orchestrator),
		orders:   orders,
		cart:     cart,
		sink:     sink,
		delay:    delay,
	}
}

// Begin opens a session over the given cart snapshot and returns its id.
func (m *Manager) Begin(items []domain.CartItem) (string, *Orchestrator) {
	o := Begin(items, m.orders, m.cart, m.sink, m.delay)
	id := uuid.NewString()
	m.mu.Lock()
	m.sessions[id] = o
	m.mu.Unlock()
	return id, o
}

func (m *Manager) Get(id string) (*Orchestrator, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

func (m *Manager) End(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}
