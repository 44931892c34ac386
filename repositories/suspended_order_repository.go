package repositories

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/yeremiapane/warung-pos/models"
)

// SuspendedOrderRepository is a narrow list/get/put/delete store for paused
// carts. The snapshot travels as a JSON blob in the row, so the backing
// store can be swapped without touching cart logic.
type SuspendedOrderRepository struct {
	DB *gorm.DB
}

func NewSuspendedOrderRepository(db *gorm.DB) *SuspendedOrderRepository {
	return &SuspendedOrderRepository{DB: db}
}

// List returns every suspended order, oldest first.
func (r *SuspendedOrderRepository) List() ([]models.SuspendedOrder, error) {
	var orders []models.SuspendedOrder
	if err := r.DB.Order("timestamp ASC").Find(&orders).Error; err != nil {
		return nil, err
	}
	for i := range orders {
		if err := decodeCart(&orders[i]); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *SuspendedOrderRepository) Get(id string) (*models.SuspendedOrder, error) {
	var order models.SuspendedOrder
	if err := r.DB.First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	if err := decodeCart(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *SuspendedOrderRepository) Put(order *models.SuspendedOrder) error {
	raw, err := json.Marshal(order.Cart)
	if err != nil {
		return err
	}
	order.CartJSON = string(raw)
	return r.DB.Create(order).Error
}

func (r *SuspendedOrderRepository) Delete(id string) error {
	return r.DB.Delete(&models.SuspendedOrder{}, "id = ?", id).Error
}

func decodeCart(order *models.SuspendedOrder) error {
	return json.Unmarshal([]byte(order.CartJSON), &order.Cart)
}
