package usecase

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"stayhub-backend/internal/media/storage"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
)

// linkExtension is the fixed extension for by-link downloads. The remote
// URL never contributes to the stored name.
const linkExtension = ".jpg"

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// mediaUsecase implements MediaUsecase interface
type mediaUsecase struct {
	store    storage.Store
	client   *http.Client
	maxBytes int64
	maxFiles int
	log      *zap.Logger
}

// NewMediaUsecase creates a new instance of mediaUsecase. client should
// be an SSRF-guarded client in production (see NewImageFetchClient);
// tests inject a plain one.
func NewMediaUsecase(store storage.Store, client *http.Client, maxBytes int64, maxFiles int, log *zap.Logger) MediaUsecase {
	return &mediaUsecase{
		store:    store,
		client:   client,
		maxBytes: maxBytes,
		maxFiles: maxFiles,
		log:      log,
	}
}

func (u *mediaUsecase) DownloadByLink(ctx context.Context, link string) (string, error) {
	if strings.TrimSpace(link) == "" {
		return "", ErrEmptyLink
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return "", ErrEmptyLink
	}

	resp, err := u.client.Do(req)
	if err != nil {
		u.log.Warn("image download failed", zap.String("link", link), zap.Error(err))
		return "", ErrDownloadFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		u.log.Warn("image download returned non-200",
			zap.String("link", link),
			zap.Int("status", resp.StatusCode),
		)
		return "", ErrDownloadFailed
	}

	name := storage.GenerateName(linkExtension)
	if _, err := u.store.Save(name, resp.Body, u.maxBytes); err != nil {
		if errors.Is(err, storage.ErrTooLarge) {
			return "", ErrFileTooLarge
		}
		u.log.Error("persisting downloaded image failed", zap.Error(err))
		return "", ErrDownloadFailed
	}

	return name, nil
}

func (u *mediaUsecase) SavePhotos(files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}
	if len(files) > u.maxFiles {
		return nil, ErrTooManyFiles
	}

	saved := make([]string, 0, len(files))
	cleanup := func() {
		for _, name := range saved {
			_ = u.store.Remove(name)
		}
	}

	for _, fh := range files {
		if fh.Size > u.maxBytes {
			cleanup()
			return nil, ErrFileTooLarge
		}

		ext, err := u.sniffExtension(fh)
		if err != nil {
			cleanup()
			return nil, err
		}

		src, err := fh.Open()
		if err != nil {
			cleanup()
			return nil, err
		}

		name := storage.GenerateName(ext)
		_, err = u.store.Save(name, src, u.maxBytes)
		src.Close()
		if err != nil {
			cleanup()
			if errors.Is(err, storage.ErrTooLarge) {
				return nil, ErrFileTooLarge
			}
			u.log.Error("persisting uploaded file failed", zap.Error(err))
			return nil, err
		}

		saved = append(saved, name)
	}

	return saved, nil
}

// sniffExtension verifies the file content is an image and picks the
// extension: the client-supplied one when it is a known image extension,
// otherwise the one matching the detected content type. The client
// filename itself never reaches the filesystem.
func (u *mediaUsecase) sniffExtension(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", ErrNotAnImage
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExtensions[ext] {
		ext = mtype.Extension()
	}
	return ext, nil
}
