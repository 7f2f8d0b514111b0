package mapper

import (
	"event-management-be/internal/entity"
	"event-management-be/internal/model"
)

type ArticleMapper struct{}

func NewArticleMapper() *ArticleMapper {
	return &ArticleMapper{}
}

func (m *ArticleMapper) ToEntity(a *model.Article) *entity.Article {
	if a == nil {
		return nil
	}
	return &entity.Article{
		Id:          a.Id,
		Author:      a.Author,
		Title:       a.Title,
		Description: a.Description,
		Image:       a.Image,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func (m *ArticleMapper) ToModel(a *entity.Article) *model.Article {
	if a == nil {
		return nil
	}
	return &model.Article{
		Id:          a.Id,
		Author:      a.Author,
		Title:       a.Title,
		Description: a.Description,
		Image:       a.Image,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func (m *ArticleMapper) ToEntities(articles []*model.Article) []*entity.Article {
	entities := make([]*entity.Article, len(articles))
	for i, a := range articles {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
