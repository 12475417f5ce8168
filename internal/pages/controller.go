// Package pages holds the per-page view-model controllers. A controller
// loads a resource collection once, keeps it in memory for the lifetime of
// the page, reconciles it after acknowledged mutations, and derives
// filtered views without ever mutating the canonical collection.
package pages

import "github.com/google/uuid"

// Entity is anything held by a page collection.
type Entity interface {
	EntityID() string
}

// State is the page-level load state.
type State int

const (
	Idle State = iota
	Loading
	Ready
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Controller owns the in-memory collection of one page. It is single-writer:
// all access happens from the page's own task, so no locking is needed.
type Controller[E Entity] struct {
	load    func() ([]E, error)
	state   State
	items   []E
	loadErr error
	pending map[string]string // correlation id -> placeholder entity id
}

// NewController creates a controller in the Idle state. load is the
// repository list call performed on mount.
func NewController[E Entity](load func() ([]E, error)) *Controller[E] {
	return &Controller[E]{load: load, pending: make(map[string]string)}
}

// State returns the current page state.
func (c *Controller[E]) State() State { return c.state }

// Err returns the load error when the page is Failed, nil otherwise.
func (c *Controller[E]) Err() error { return c.loadErr }

// Load performs the initial fetch. The collection and the Ready state are
// set together, so observers never see a partially loaded page.
func (c *Controller[E]) Load() error {
	c.state = Loading
	items, err := c.load()
	if err != nil {
		c.loadErr = err
		c.state = Failed
		return err
	}
	c.items = items
	c.loadErr = nil
	c.state = Ready
	return nil
}

// Reload discards the held collection and fetches it again, as a navigation
// away and back would.
func (c *Controller[E]) Reload() error { return c.Load() }

// Items returns a copy of the held collection.
func (c *Controller[E]) Items() []E {
	out := make([]E, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the size of the held collection.
func (c *Controller[E]) Len() int { return len(c.items) }

// Get looks up an entity by identifier.
func (c *Controller[E]) Get(id string) (E, bool) {
	for _, e := range c.items {
		if e.EntityID() == id {
			return e, true
		}
	}
	var zero E
	return zero, false
}

// Filter derives a view of the collection. It never touches the network and
// never mutates the canonical collection.
func (c *Controller[E]) Filter(pred func(E) bool) []E {
	out := make([]E, 0, len(c.items))
	for _, e := range c.items {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out
}

// Append adds a server-acknowledged entity to the collection. The entity,
// including its server-assigned identifier, is authoritative.
func (c *Controller[E]) Append(e E) { c.items = append(c.items, e) }

// Replace swaps the collection entry with the same identifier for e.
func (c *Controller[E]) Replace(e E) bool {
	for i := range c.items {
		if c.items[i].EntityID() == e.EntityID() {
			c.items[i] = e
			return true
		}
	}
	return false
}

// Remove deletes the entry with the given identifier from the collection.
func (c *Controller[E]) Remove(id string) bool {
	for i := range c.items {
		if c.items[i].EntityID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// StagePending inserts an optimistic placeholder keyed by a client-local
// correlation id. placeholder receives the temporary entity id to embed; the
// placeholder must later be resolved or dropped, it never stays in the
// canonical collection.
func (c *Controller[E]) StagePending(placeholder func(tempID string) E) string {
	corrID := uuid.New().String()
	tempID := "pending-" + corrID
	c.pending[corrID] = tempID
	c.items = append(c.items, placeholder(tempID))
	return corrID
}

// ResolvePending swaps the placeholder for the authoritative server entity.
func (c *Controller[E]) ResolvePending(corrID string, authoritative E) bool {
	tempID, ok := c.pending[corrID]
	if !ok {
		return false
	}
	delete(c.pending, corrID)
	for i := range c.items {
		if c.items[i].EntityID() == tempID {
			c.items[i] = authoritative
			return true
		}
	}
	c.items = append(c.items, authoritative)
	return true
}

// DropPending removes the placeholder after a failed mutation.
func (c *Controller[E]) DropPending(corrID string) bool {
	tempID, ok := c.pending[corrID]
	if !ok {
		return false
	}
	delete(c.pending, corrID)
	return c.Remove(tempID)
}

// PendingCount returns the number of unresolved optimistic entries.
func (c *Controller[E]) PendingCount() int { return len(c.pending) }
