package service

import (
	"context"
	"errors"
	"mime/multipart"

	"event-management-be/internal/pkg/apperror"
	"event-management-be/internal/pkg/logger"
	"event-management-be/pkg/storage"
)

// checkImage reports upload problems as a validation error on the image field.
func checkImage(file *multipart.FileHeader) error {
	if file == nil {
		return nil
	}
	if err := storage.CheckImage(file); err != nil {
		return imageError(err)
	}
	return nil
}

func saveImage(ctx context.Context, store storage.MediaStore, kind string, file *multipart.FileHeader) (*string, error) {
	if file == nil {
		return nil, nil
	}
	stored, err := store.Save(ctx, kind, file)
	if err != nil {
		return nil, imageError(err)
	}
	return &stored, nil
}

// discardImage removes a stored file whose record could not be written or no longer needs it.
func discardImage(store storage.MediaStore, log logger.ILogger, module string, stored *string) {
	if stored == nil {
		return
	}
	if err := store.Delete(*stored); err != nil {
		log.Warn(module, "Failed to delete image", map[string]interface{}{
			"path":  *stored,
			"error": err.Error(),
		})
	}
}

func imageError(err error) error {
	if errors.Is(err, storage.ErrFileTooLarge) || errors.Is(err, storage.ErrUnsupportedImage) {
		return &apperror.AppError{
			Kind:    apperror.KindValidation,
			Message: "Validation error",
			Fields:  map[string]string{"image": "The " + err.Error() + "."},
			Err:     err,
		}
	}
	return err
}
