package usecase

import (
	"context"
	"errors"
	"mime/multipart"
)

var (
	ErrEmptyLink      = errors.New("link is required")
	ErrDownloadFailed = errors.New("failed to download image")
	ErrNoFiles        = errors.New("no files uploaded")
	ErrTooManyFiles   = errors.New("too many files in one request")
	ErrFileTooLarge   = errors.New("file exceeds size limit")
	ErrNotAnImage     = errors.New("file is not an image")
)

type MediaUsecase interface {
	// DownloadByLink fetches a remote image and stores it locally,
	// returning the generated filename. Single attempt, no retry.
	DownloadByLink(ctx context.Context, link string) (string, error)
	// SavePhotos stores a batch of uploaded files, returning generated
	// filenames in the order the files were received.
	SavePhotos(files []*multipart.FileHeader) ([]string, error)
}
