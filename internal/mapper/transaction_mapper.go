package mapper

import (
	"event-management-be/internal/entity"
	"event-management-be/internal/model"
)

type TransactionMapper struct{}

func NewTransactionMapper() *TransactionMapper {
	return &TransactionMapper{}
}

func (m *TransactionMapper) ToEntity(t *model.Transaction) *entity.Transaction {
	if t == nil {
		return nil
	}
	return &entity.Transaction{
		Id:              t.Id,
		CustomerId:      t.CustomerId,
		EventId:         t.EventId,
		TransactionDate: t.TransactionDate,
		PaymentDate:     t.PaymentDate,
		ReturnDate:      t.ReturnDate,
		StatusOrdered:   entity.OrderStatus(t.StatusOrdered),
		StatusPayment:   entity.PaymentStatus(t.StatusPayment),
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func (m *TransactionMapper) ToModel(t *entity.Transaction) *model.Transaction {
	if t == nil {
		return nil
	}
	return &model.Transaction{
		Id:              t.Id,
		CustomerId:      t.CustomerId,
		EventId:         t.EventId,
		TransactionDate: t.TransactionDate,
		PaymentDate:     t.PaymentDate,
		ReturnDate:      t.ReturnDate,
		StatusOrdered:   string(t.StatusOrdered),
		StatusPayment:   string(t.StatusPayment),
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

func (m *TransactionMapper) ToEntities(transactions []*model.Transaction) []*entity.Transaction {
	entities := make([]*entity.Transaction, len(transactions))
	for i, t := range transactions {
		entities[i] = m.ToEntity(t)
	}
	return entities
}
