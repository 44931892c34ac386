package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yeremiapane/warung-pos/models"
	"github.com/yeremiapane/warung-pos/repositories"
)

// OrderService moves whole cart snapshots between the active session and the
// durable suspended-order store. There is no partial merge: suspend, resume
// and discard all replace whole values.
type OrderService struct {
	Session *CartSession
	Store   *repositories.SuspendedOrderRepository
}

func NewOrderService(session *CartSession, store *repositories.SuspendedOrderRepository) *OrderService {
	return &OrderService{Session: session, Store: store}
}

// Suspend snapshots the active cart under the given name (or a default
// derived from the suspension time) and clears it. An empty cart is
// rejected.
func (s *OrderService) Suspend(name string) (*models.SuspendedOrder, error) {
	var saved *models.SuspendedOrder
	err := s.Session.WithCart(func(cart *models.Cart) error {
		if cart.IsEmpty() {
			return ErrEmptyCart
		}
		now := time.Now()
		if name == "" {
			name = "Order " + now.Format("15:04")
		}
		order := &models.SuspendedOrder{
			ID:        uuid.NewString(),
			Name:      name,
			Cart:      cart.Snapshot(),
			Timestamp: now,
		}
		if err := s.Store.Put(order); err != nil {
			return err
		}
		cart.Clear()
		saved = order
		return nil
	})
	return saved, err
}

// Resume replaces the active cart with the stored snapshot and removes the
// entry. Any prior cart contents are discarded; warning the operator first
// is the caller's concern.
func (s *OrderService) Resume(id string) (*models.SuspendedOrder, error) {
	order, err := s.Store.Get(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	err = s.Session.WithCart(func(cart *models.Cart) error {
		if err := s.Store.Delete(order.ID); err != nil {
			return err
		}
		cart.Lines = order.Cart
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// Discard removes a suspended order without restoring it.
func (s *OrderService) Discard(id string) error {
	if _, err := s.Store.Get(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.Store.Delete(id)
}

func (s *OrderService) List() ([]models.SuspendedOrder, error) {
	return s.Store.List()
}
