package services

import (
	"sync"

	"github.com/yeremiapane/warung-pos/models"
)

// CartSession owns the single active cart of the terminal. Every access goes
// through the mutex, so two settlement attempts can never interleave on the
// same cart.
type CartSession struct {
	mu   sync.Mutex
	cart models.Cart
}

func NewCartSession() *CartSession {
	return &CartSession{}
}

func (s *CartSession) AddLine(productName string, price int, note string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.AddLine(productName, price, note)
}

// AdjustQuantity reports false when the index is out of range.
func (s *CartSession) AdjustQuantity(index, delta int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.cart.Lines) {
		return false
	}
	s.cart.AdjustQuantity(index, delta)
	return true
}

// RemoveLine reports false when the index is out of range.
func (s *CartSession) RemoveLine(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.cart.Lines) {
		return false
	}
	s.cart.RemoveLine(index)
	return true
}

func (s *CartSession) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Snapshot()
}

func (s *CartSession) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

func (s *CartSession) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

// WithCart runs fn while holding the session lock. Suspend and settlement go
// through here so their read-validate-write sequences are atomic with
// respect to other cart mutations.
func (s *CartSession) WithCart(fn func(cart *models.Cart) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.cart)
}
