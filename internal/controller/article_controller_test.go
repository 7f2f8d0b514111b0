package controller

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"event-management-be/internal/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockArticleService struct{ mock.Mock }

func (m *mockArticleService) Create(ctx context.Context, req *dto.CreateArticleRequest, image *multipart.FileHeader) (*dto.ArticleResponse, error) {
	args := m.Called(ctx, req, image)
	res, _ := args.Get(0).(*dto.ArticleResponse)
	return res, args.Error(1)
}

func (m *mockArticleService) List(ctx context.Context, req *dto.ListArticleRequest) (*dto.PaginatedResponse[*dto.ArticleResponse], error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*dto.PaginatedResponse[*dto.ArticleResponse])
	return res, args.Error(1)
}

func (m *mockArticleService) Show(ctx context.Context, id uuid.UUID) (*dto.ArticleResponse, error) {
	args := m.Called(ctx, id)
	res, _ := args.Get(0).(*dto.ArticleResponse)
	return res, args.Error(1)
}

func (m *mockArticleService) Update(ctx context.Context, req *dto.UpdateArticleRequest, image *multipart.FileHeader) (*dto.ArticleResponse, error) {
	args := m.Called(ctx, req, image)
	res, _ := args.Get(0).(*dto.ArticleResponse)
	return res, args.Error(1)
}

func (m *mockArticleService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

var gifBytes = []byte("GIF89a\x01\x00\x01\x00\x80\x00\x00\xff\xff\xff\x00\x00\x00,\x00\x00\x00\x00\x01\x00\x01\x00\x00\x02\x02D\x01\x00;")

// multipartRequest encodes fields and, when imageName is set, an image part.
func multipartRequest(t *testing.T, method, target string, fields map[string]string, imageName string) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if imageName != "" {
		part, err := w.CreateFormFile("image", imageName)
		require.NoError(t, err)
		_, err = part.Write(gifBytes)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, target, body)
	req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
	return req
}

func TestArticleController_CreateWithImage(t *testing.T) {
	svc := &mockArticleService{}
	app := newTestApp(NewArticleController(svc).RegisterRoutes)

	svc.On("Create", mock.Anything,
		mock.MatchedBy(func(req *dto.CreateArticleRequest) bool {
			return req.Author == "Sari" && req.Title == "Launch" && req.Description == "Opening night"
		}),
		mock.MatchedBy(func(image *multipart.FileHeader) bool {
			return image != nil && image.Filename == "cover.gif" && image.Size == int64(len(gifBytes))
		}),
	).Return(&dto.ArticleResponse{Id: uuid.New(), Title: "Launch"}, nil)

	code, env := do(t, app, multipartRequest(t, "POST", "/article/createarticle", map[string]string{
		"author":      "Sari",
		"title":       "Launch",
		"description": "Opening night",
	}, "cover.gif"))

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Successfully added a new article", env.Message)
	svc.AssertExpectations(t)
}

func TestArticleController_UpdateWithoutImage(t *testing.T) {
	svc := &mockArticleService{}
	app := newTestApp(NewArticleController(svc).RegisterRoutes)
	id := uuid.New()

	svc.On("Update", mock.Anything,
		mock.MatchedBy(func(req *dto.UpdateArticleRequest) bool {
			return req.Id == id && req.Title == "Renamed"
		}),
		(*multipart.FileHeader)(nil),
	).Return(&dto.ArticleResponse{Id: id, Title: "Renamed"}, nil)

	code, env := do(t, app, multipartRequest(t, "POST", "/aticle/updatearticle/"+id.String()+"/", map[string]string{
		"author":      "Sari",
		"title":       "Renamed",
		"description": "Opening night",
	}, ""))

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Successfully updated a new article", env.Message)
	svc.AssertExpectations(t)
}

func TestArticleController_CreateValidatesForm(t *testing.T) {
	svc := &mockArticleService{}
	app := newTestApp(NewArticleController(svc).RegisterRoutes)

	code, env := do(t, app, multipartRequest(t, "POST", "/article/createarticle", map[string]string{
		"author": "Sari",
	}, "cover.gif"))

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "title is required", env.Errors["title"])
	assert.Equal(t, "description is required", env.Errors["description"])
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}
