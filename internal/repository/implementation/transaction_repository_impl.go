package implementation

import (
	"context"
	"errors"

	"event-management-be/internal/entity"
	"event-management-be/internal/mapper"
	"event-management-be/internal/model"
	"event-management-be/internal/repository/contract"
	"event-management-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TransactionMapper
}

func NewTransactionRepository(db *gorm.DB) contract.TransactionRepository {
	return &TransactionRepositoryImpl{
		db:     db,
		mapper: mapper.NewTransactionMapper(),
	}
}

func (r *TransactionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *TransactionRepositoryImpl) Create(ctx context.Context, transaction *entity.Transaction) error {
	m := r.mapper.ToModel(transaction)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateError(err)
	}
	*transaction = *r.mapper.ToEntity(m)
	return nil
}

func (r *TransactionRepositoryImpl) Update(ctx context.Context, transaction *entity.Transaction) error {
	m := r.mapper.ToModel(transaction)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return translateError(err)
	}
	*transaction = *r.mapper.ToEntity(m)
	return nil
}

func (r *TransactionRepositoryImpl) UpdateState(ctx context.Context, transaction *entity.Transaction) error {
	m := r.mapper.ToModel(transaction)
	res := r.db.WithContext(ctx).
		Model(&model.Transaction{Id: m.Id}).
		Select("status_ordered", "status_payment", "payment_date", "return_date", "updated_at").
		Updates(m)
	if res.Error != nil {
		return translateError(res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	transaction.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *TransactionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return translateError(r.db.WithContext(ctx).Delete(&model.Transaction{}, id).Error)
}

func (r *TransactionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Transaction, error) {
	var m model.Transaction
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TransactionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Transaction, error) {
	var models []*model.Transaction
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TransactionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Transaction{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
