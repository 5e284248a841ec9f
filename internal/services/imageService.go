package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/arzan03/DrugHouse/internal/models"
	"github.com/arzan03/DrugHouse/internal/store"
	"github.com/arzan03/DrugHouse/internal/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ImageURLExpiry is how long a presigned image link stays usable.
const ImageURLExpiry = 15 * time.Minute

// presignLimit caps concurrent presign calls per request.
const presignLimit = 8

// ImageService stores product images and hands out download links.
type ImageService struct {
	products ProductStore
	objects  ObjectStore
	log      *zap.Logger
}

// NewImageService returns an ImageService writing to objects.
func NewImageService(products ProductStore, objects ObjectStore, log *zap.Logger) *ImageService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ImageService{products: products, objects: objects, log: log.Named("images")}
}

func (s *ImageService) product(ctx context.Context, hexID string) (*models.Product, error) {
	id, err := parseID(hexID)
	if err != nil {
		return nil, err
	}
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("find product %s: %w", hexID, err)
	}
	return p, nil
}

// Upload stores an image and records its key on the product. The object is
// removed again if the product cannot be updated.
func (s *ImageService) Upload(ctx context.Context, productHex, filename, contentType string, r io.Reader, size int64) (string, error) {
	p, err := s.product(ctx, productHex)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s/%s_%s", p.ID.Hex(), uuid.NewString(), path.Base(filename))
	if err := s.objects.Put(ctx, key, r, size, contentType); err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}

	if err := s.products.AddImage(ctx, p.ID, key); err != nil {
		go func() {
			if rmErr := s.objects.Remove(context.Background(), key); rmErr != nil {
				s.log.Error("remove orphaned image", zap.String("key", key), zap.Error(rmErr))
			}
		}()
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrProductNotFound
		}
		return "", fmt.Errorf("record image: %w", err)
	}
	return key, nil
}

// URLs returns a presigned download link for every image of the product,
// in the order the images were added.
func (s *ImageService) URLs(ctx context.Context, productHex string) ([]string, error) {
	p, err := s.product(ctx, productHex)
	if err != nil {
		return nil, err
	}

	urls := make([]string, len(p.Images))
	tasks := make([]utils.Task, len(p.Images))
	for i, key := range p.Images {
		tasks[i] = func(ctx context.Context) error {
			u, err := s.objects.PresignedURL(ctx, key, ImageURLExpiry)
			if err != nil {
				return fmt.Errorf("presign %s: %w", key, err)
			}
			urls[i] = u
			return nil
		}
	}
	if err := utils.RunParallelLimit(ctx, presignLimit, tasks...); err != nil {
		return nil, err
	}
	return urls, nil
}
