package store

import (
	"context"

	"github.com/rshade/sustaintrack/internal/footprint"
)

// Persister is the storage a Session reads from and writes to.
type Persister interface {
	Load(ctx context.Context) []footprint.Product
	Save(ctx context.Context, products []footprint.Product) error
}

// Session is the working state of one user session: the ordered product
// collection and the currently selected product. It is passed explicitly to
// whatever front end drives it.
type Session struct {
	persister Persister
	products  []footprint.Product
	current   *footprint.Product
}

// OpenSession loads the persisted collection into a new Session.
func OpenSession(ctx context.Context, p Persister) *Session {
	return &Session{persister: p, products: p.Load(ctx)}
}

// Products returns a copy of the collection in stored order.
func (s *Session) Products() []footprint.Product {
	out := make([]footprint.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Len returns the number of products in the session.
func (s *Session) Len() int {
	return len(s.products)
}

// Upsert inserts p, replacing in place any product with the same name. It
// reports whether an existing product was replaced.
func (s *Session) Upsert(p footprint.Product) bool {
	if i := s.indexOf(p.Name); i >= 0 {
		s.products[i] = p
		return true
	}
	s.products = append(s.products, p)
	return false
}

// Delete removes the product called name and reports whether it existed.
// Deleting the current selection clears it.
func (s *Session) Delete(name string) bool {
	i := s.indexOf(name)
	if i < 0 {
		return false
	}
	s.products = append(s.products[:i], s.products[i+1:]...)
	if s.current != nil && s.current.Name == name {
		s.current = nil
	}
	return true
}

// Find returns the product called name.
func (s *Session) Find(name string) (footprint.Product, bool) {
	if i := s.indexOf(name); i >= 0 {
		return s.products[i], true
	}
	return footprint.Product{}, false
}

// SetCurrent makes p the current selection without storing it.
func (s *Session) SetCurrent(p footprint.Product) {
	s.current = &p
}

// Select makes the stored product called name the current selection.
func (s *Session) Select(name string) bool {
	p, ok := s.Find(name)
	if ok {
		s.current = &p
	}
	return ok
}

// Current returns the current selection, if any.
func (s *Session) Current() (footprint.Product, bool) {
	if s.current == nil {
		return footprint.Product{}, false
	}
	return *s.current, true
}

// SaveCurrent upserts the current selection and persists the collection.
// It reports whether an existing product was replaced; with no selection it
// does nothing.
func (s *Session) SaveCurrent(ctx context.Context) (replaced bool, ok bool, err error) {
	if s.current == nil {
		return false, false, nil
	}
	replaced = s.Upsert(*s.current)
	return replaced, true, s.Persist(ctx)
}

// Persist writes the collection through the persister.
func (s *Session) Persist(ctx context.Context) error {
	return s.persister.Save(ctx, s.Products())
}

func (s *Session) indexOf(name string) int {
	for i := range s.products {
		if s.products[i].Name == name {
			return i
		}
	}
	return -1
}
