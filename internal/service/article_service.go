package service

import (
	"context"
	"fmt"
	"mime/multipart"

	"event-management-be/internal/dto"
	"event-management-be/internal/entity"
	"event-management-be/internal/pkg/apperror"
	"event-management-be/internal/pkg/logger"
	"event-management-be/internal/repository/specification"
	"event-management-be/internal/repository/unitofwork"
	"event-management-be/pkg/storage"

	"github.com/google/uuid"
)

var articleSortable = map[string]bool{
	"created_at": true,
	"title":      true,
	"author":     true,
}

type IArticleService interface {
	Create(ctx context.Context, req *dto.CreateArticleRequest, image *multipart.FileHeader) (*dto.ArticleResponse, error)
	List(ctx context.Context, req *dto.ListArticleRequest) (*dto.PaginatedResponse[*dto.ArticleResponse], error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ArticleResponse, error)
	Update(ctx context.Context, req *dto.UpdateArticleRequest, image *multipart.FileHeader) (*dto.ArticleResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type articleService struct {
	uowFactory unitofwork.RepositoryFactory
	media      storage.MediaStore
	log        logger.ILogger
}

func NewArticleService(uowFactory unitofwork.RepositoryFactory, media storage.MediaStore, log logger.ILogger) IArticleService {
	return &articleService{
		uowFactory: uowFactory,
		media:      media,
		log:        log,
	}
}

func (s *articleService) Create(ctx context.Context, req *dto.CreateArticleRequest, image *multipart.FileHeader) (*dto.ArticleResponse, error) {
	if err := checkImage(image); err != nil {
		return nil, err
	}

	stored, err := saveImage(ctx, s.media, storage.KindArticles, image)
	if err != nil {
		return nil, err
	}

	article := &entity.Article{
		Id:          uuid.New(),
		Author:      req.Author,
		Title:       req.Title,
		Description: req.Description,
		Image:       stored,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ArticleRepository().Create(ctx, article); err != nil {
		discardImage(s.media, s.log, "ARTICLE", stored)
		return nil, fmt.Errorf("create article: %w", err)
	}

	return toArticleResponse(article), nil
}

func (s *articleService) List(ctx context.Context, req *dto.ListArticleRequest) (*dto.PaginatedResponse[*dto.ArticleResponse], error) {
	var filters []specification.Specification
	if req.Title != "" {
		filters = append(filters, specification.Contains{Field: "title", Value: req.Title})
	}

	paging, err := pageSpecs(&req.ListQuery, articleSortable, "created_at")
	if err != nil {
		return nil, err
	}

	repo := s.uowFactory.NewUnitOfWork(ctx).ArticleRepository()
	total, err := repo.Count(ctx, filters...)
	if err != nil {
		return nil, fmt.Errorf("count articles: %w", err)
	}
	articles, err := repo.FindAll(ctx, append(filters, paging...)...)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	data := make([]*dto.ArticleResponse, 0, len(articles))
	for _, a := range articles {
		data = append(data, toArticleResponse(a))
	}
	return dto.NewPaginatedResponse(req.ListQuery, total, data), nil
}

func (s *articleService) Show(ctx context.Context, id uuid.UUID) (*dto.ArticleResponse, error) {
	article, err := s.find(ctx, s.uowFactory.NewUnitOfWork(ctx), id)
	if err != nil {
		return nil, err
	}
	return toArticleResponse(article), nil
}

func (s *articleService) Update(ctx context.Context, req *dto.UpdateArticleRequest, image *multipart.FileHeader) (*dto.ArticleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	article, err := s.find(ctx, uow, req.Id)
	if err != nil {
		return nil, err
	}
	if err := checkImage(image); err != nil {
		return nil, err
	}

	stored, err := saveImage(ctx, s.media, storage.KindArticles, image)
	if err != nil {
		return nil, err
	}

	previous := article.Image
	article.Author = req.Author
	article.Title = req.Title
	article.Description = req.Description
	if stored != nil {
		article.Image = stored
	}

	if err := uow.ArticleRepository().Update(ctx, article); err != nil {
		discardImage(s.media, s.log, "ARTICLE", stored)
		return nil, fmt.Errorf("update article: %w", err)
	}
	if stored != nil && (previous == nil || *previous != *stored) {
		discardImage(s.media, s.log, "ARTICLE", previous)
	}

	return toArticleResponse(article), nil
}

func (s *articleService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	article, err := s.find(ctx, uow, id)
	if err != nil {
		return err
	}

	if err := uow.ArticleRepository().Delete(ctx, id); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	discardImage(s.media, s.log, "ARTICLE", article.Image)
	return nil
}

func (s *articleService) find(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Article, error) {
	article, err := uow.ArticleRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, fmt.Errorf("find article: %w", err)
	}
	if article == nil {
		return nil, apperror.NewNotFoundError("article not found")
	}
	return article, nil
}

func toArticleResponse(a *entity.Article) *dto.ArticleResponse {
	return &dto.ArticleResponse{
		Id:          a.Id,
		Author:      a.Author,
		Title:       a.Title,
		Description: a.Description,
		Image:       a.Image,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
