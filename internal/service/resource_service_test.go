package service

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"event-management-be/internal/dto"
	"event-management-be/internal/entity"
	"event-management-be/internal/pkg/apperror"
	"event-management-be/internal/pkg/logger"
	"event-management-be/internal/repository/contract"
	"event-management-be/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var gifBytes = append([]byte("GIF89a"), make([]byte, 32)...)

func imageUpload(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("image", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(10<<20))
	return req.MultipartForm.File["image"][0]
}

func exists(root, stored string) bool {
	_, err := os.Stat(filepath.Join(root, filepath.FromSlash(stored)))
	return err == nil
}

func TestArticleService_ImageRoundTrip(t *testing.T) {
	root := t.TempDir()
	db := newFakeDB()
	svc := NewArticleService(db, storage.NewLocalMediaStore(root), logger.NewNopLogger())
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateArticleRequest{
		Author:      "rina",
		Title:       "Opening night",
		Description: "All about it",
	}, imageUpload(t, "cover.gif", gifBytes))
	require.NoError(t, err)
	require.NotNil(t, created.Image)
	assert.True(t, exists(root, *created.Image))

	shown, err := svc.Show(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, created.Image, shown.Image)

	require.NoError(t, svc.Delete(ctx, created.Id))
	assert.False(t, exists(root, *created.Image))

	_, err = svc.Show(ctx, created.Id)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}

func TestArticleService_UpdateKeepsImageWhenNoneUploaded(t *testing.T) {
	root := t.TempDir()
	db := newFakeDB()
	svc := NewArticleService(db, storage.NewLocalMediaStore(root), logger.NewNopLogger())
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateArticleRequest{Author: "a", Title: "t", Description: "d"},
		imageUpload(t, "cover.gif", gifBytes))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, &dto.UpdateArticleRequest{
		Id: created.Id, Author: "a", Title: "new title", Description: "d",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "new title", updated.Title)
	assert.Equal(t, created.Image, updated.Image)
	assert.True(t, exists(root, *created.Image))
}

func TestArticleService_InsertFailureRemovesImage(t *testing.T) {
	root := t.TempDir()
	db := newFakeDB()
	db.createErr["articles"] = errors.New("connection reset")
	svc := NewArticleService(db, storage.NewLocalMediaStore(root), logger.NewNopLogger())

	_, err := svc.Create(context.Background(), &dto.CreateArticleRequest{Author: "a", Title: "t", Description: "d"},
		imageUpload(t, "cover.gif", gifBytes))
	require.Error(t, err)

	entries, _ := os.ReadDir(filepath.Join(root, "image", storage.KindArticles))
	assert.Empty(t, entries)
}

func TestArticleService_RejectsNonImageBeforeWriting(t *testing.T) {
	root := t.TempDir()
	db := newFakeDB()
	svc := NewArticleService(db, storage.NewLocalMediaStore(root), logger.NewNopLogger())

	_, err := svc.Create(context.Background(), &dto.CreateArticleRequest{Author: "a", Title: "t", Description: "d"},
		imageUpload(t, "cover.gif", []byte("plain text")))

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
	assert.Contains(t, appErr.Fields, "image")
	assert.Empty(t, db.articles)
	_, statErr := os.Stat(filepath.Join(root, "image"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestArticleService_ListFiltersByTitle(t *testing.T) {
	db := newFakeDB()
	svc := NewArticleService(db, storage.NewLocalMediaStore(t.TempDir()), logger.NewNopLogger())
	for _, title := range []string{"Jazz Night recap", "Rock festival", "jazz brunch"} {
		db.articles = append(db.articles, &entity.Article{Id: uuid.New(), Title: title})
	}

	page, err := svc.List(context.Background(), &dto.ListArticleRequest{Title: "JAZZ"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	assert.Equal(t, 10, page.PerPage)
	assert.Len(t, page.Data, 2)
}

func TestEventService_Validation(t *testing.T) {
	db := newFakeDB()
	svc := NewEventService(db, storage.NewLocalMediaStore(t.TempDir()), logger.NewNopLogger())

	_, err := svc.Create(context.Background(), &dto.CreateEventRequest{
		NameEvent:   "Jazz Night",
		Description: "d",
		StartDate:   "2024-02-10",
		EndDate:     "2024-02-09",
		Price:       "150000",
	}, nil)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "End date must be equal to or after start date", appErr.Fields["end_date"])
	assert.Empty(t, db.events)
}

func TestEventService_CreateAndDeleteReferenced(t *testing.T) {
	db := newFakeDB()
	svc := NewEventService(db, storage.NewLocalMediaStore(t.TempDir()), logger.NewNopLogger())
	ctx := context.Background()

	created, err := svc.Create(ctx, &dto.CreateEventRequest{
		NameEvent:   "Jazz Night",
		Description: "d",
		StartDate:   "2024-02-10",
		EndDate:     "2024-02-10",
		Price:       "150000.50",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-10", created.StartDate)
	assert.Equal(t, "150000.5", created.Price.String())
	assert.Nil(t, created.Image)

	db.deleteErr["events"] = contract.ErrReferenced
	err = svc.Delete(ctx, created.Id)
	assert.True(t, apperror.Is(err, apperror.KindConflict))
	assert.Len(t, db.events, 1)
}

func validCustomerRequest() dto.CreateCustomerRequest {
	return dto.CreateCustomerRequest{
		Username: "budi",
		Email:    "budi@example.com",
		Password: "secret",
		Phone:    "0812",
		Ttl:      "1990-05-17",
		City:     "Bandung",
		Company:  "Acme",
		Gender:   "male",
	}
}

func TestCustomerService_Create(t *testing.T) {
	root := t.TempDir()
	db := newFakeDB()
	svc := NewCustomerService(db, storage.NewLocalMediaStore(root), logger.NewNopLogger())
	ctx := context.Background()

	req := validCustomerRequest()
	_, err := svc.Create(ctx, &req, nil)
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Image is required", appErr.Fields["image"])

	created, err := svc.Create(ctx, &req, imageUpload(t, "me.gif", gifBytes))
	require.NoError(t, err)
	assert.Equal(t, "1990-05-17", created.Ttl)
	assert.True(t, exists(root, *created.Image))

	require.Len(t, db.customers, 1)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(db.customers[0].PasswordHash), []byte("secret")))

	_, err = svc.Create(ctx, &req, imageUpload(t, "me.gif", gifBytes))
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Email is already taken", appErr.Fields["email"])
}

func TestCustomerService_UpdateReplacesImage(t *testing.T) {
	root := t.TempDir()
	db := newFakeDB()
	store := storage.NewLocalMediaStore(root)
	svc := NewCustomerService(db, store, logger.NewNopLogger())
	ctx := context.Background()

	old := "image/customers/1.gif"
	require.NoError(t, os.MkdirAll(filepath.Join(root, "image", "customers"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, filepath.FromSlash(old)), gifBytes, 0644))
	existing := &entity.Customer{Id: uuid.New(), Username: "budi", Email: "budi@example.com", Image: &old}
	db.customers = append(db.customers, existing)

	req := dto.UpdateCustomerRequest{Id: existing.Id, CreateCustomerRequest: validCustomerRequest()}
	req.City = "Jakarta"
	updated, err := svc.Update(ctx, &req, imageUpload(t, "new.gif", gifBytes))
	require.NoError(t, err)

	assert.Equal(t, "Jakarta", updated.City)
	require.NotNil(t, updated.Image)
	assert.NotEqual(t, old, *updated.Image)
	assert.True(t, exists(root, *updated.Image))
	assert.False(t, exists(root, old))
}

func TestCustomerService_UpdateMissing(t *testing.T) {
	db := newFakeDB()
	svc := NewCustomerService(db, storage.NewLocalMediaStore(t.TempDir()), logger.NewNopLogger())

	req := dto.UpdateCustomerRequest{Id: uuid.New(), CreateCustomerRequest: validCustomerRequest()}
	_, err := svc.Update(context.Background(), &req, nil)
	assert.True(t, apperror.Is(err, apperror.KindNotFound))
}
