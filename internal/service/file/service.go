package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // Import for PNG decoding support
	"io"
	"path"
	"strconv"

	"github.com/dayflow-hris/dayflow-backend-go/internal/pkg/storage"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

// MaxAvatarDimension bounds the longest side of a stored avatar.
const MaxAvatarDimension = 512

var ErrUnsupportedImage = errors.New("file is not a decodable JPEG or PNG image")

type FileService interface {
	// UploadAvatar stores a downscaled JPEG copy of the image and returns its public URL.
	UploadAvatar(ctx context.Context, userID int64, file io.Reader) (string, error)

	// DeleteByURL removes a file previously returned by UploadAvatar.
	// URLs that point elsewhere are ignored.
	DeleteByURL(ctx context.Context, url string) error
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

// UploadAvatar implements FileService.
func (s *fileServiceImpl) UploadAvatar(ctx context.Context, userID int64, file io.Reader) (string, error) {
	src, _, err := image.Decode(file)
	if err != nil {
		return "", ErrUnsupportedImage
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, fitWithin(src, MaxAvatarDimension), &jpeg.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("failed to encode avatar: %w", err)
	}

	// avatars/{userID}/{uuid}.jpg
	key := path.Join("avatars", strconv.FormatInt(userID, 10), uuid.New().String()+".jpg")

	uploaded, err := s.storage.Upload(ctx, buf, key, "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	return s.storage.URL(uploaded), nil
}

// DeleteByURL implements FileService.
func (s *fileServiceImpl) DeleteByURL(ctx context.Context, url string) error {
	key, ok := s.storage.KeyFromURL(url)
	if !ok {
		return nil
	}
	return s.storage.Delete(ctx, key)
}

// fitWithin scales src down so neither side exceeds limit. Smaller images are returned as is.
func fitWithin(src image.Image, limit int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= limit && h <= limit {
		return src
	}

	if w >= h {
		h = h * limit / w
		w = limit
	} else {
		w = w * limit / h
		h = limit
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
