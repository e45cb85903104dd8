package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"studio_booking/internal/domain/entities"
	"studio_booking/internal/usecase/interfaces"
)

var ErrOrderExists = errors.New("payment order already exists")

type PaymentOrderMemoryRepository struct {
	mu     sync.Mutex
	orders map[string]entities.PaymentOrder
}

var _ interfaces.IPaymentOrderRepository = (*PaymentOrderMemoryRepository)(nil)

func NewPaymentOrderMemoryRepository() *PaymentOrderMemoryRepository {
	return &PaymentOrderMemoryRepository{orders: make(map[string]entities.PaymentOrder)}
}

func (r *PaymentOrderMemoryRepository) Create(_ context.Context, o entities.PaymentOrder) (entities.PaymentOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[o.OrderID]; ok {
		return entities.PaymentOrder{}, ErrOrderExists
	}
	r.orders[o.OrderID] = o
	return o, nil
}

func (r *PaymentOrderMemoryRepository) GetByID(_ context.Context, orderID string) (entities.PaymentOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.orders[orderID], nil
}

func (r *PaymentOrderMemoryRepository) MarkCompleted(_ context.Context, orderID string, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[orderID]
	if !ok || o.Status != entities.PaymentOrderStatusPending {
		return false, nil
	}
	o.Status = entities.PaymentOrderStatusCompleted
	o.CompletedAt = at
	r.orders[orderID] = o
	return true, nil
}
