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

type ArticleRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ArticleMapper
}

func NewArticleRepository(db *gorm.DB) contract.ArticleRepository {
	return &ArticleRepositoryImpl{
		db:     db,
		mapper: mapper.NewArticleMapper(),
	}
}

func (r *ArticleRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ArticleRepositoryImpl) Create(ctx context.Context, article *entity.Article) error {
	m := r.mapper.ToModel(article)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateError(err)
	}
	*article = *r.mapper.ToEntity(m)
	return nil
}

func (r *ArticleRepositoryImpl) Update(ctx context.Context, article *entity.Article) error {
	m := r.mapper.ToModel(article)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return translateError(err)
	}
	*article = *r.mapper.ToEntity(m)
	return nil
}

func (r *ArticleRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return translateError(r.db.WithContext(ctx).Delete(&model.Article{}, id).Error)
}

func (r *ArticleRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Article, error) {
	var m model.Article
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ArticleRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Article, error) {
	var models []*model.Article
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ArticleRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Article{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
