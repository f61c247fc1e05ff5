package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"elearn-api/internal/cache"
	"elearn-api/internal/domain"
	"elearn-api/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// DocumentTextService returns the cleaned text layer of an uploaded document.
type DocumentTextService interface {
	ExtractText(ctx context.Context, documentID string, path string, modTime time.Time) (string, error)
}

type documentTextService struct {
	extractor domain.DocumentTextExtractor
	cache     domain.Cache
	ttl       time.Duration
	sfGroup   singleflight.Group
}

// NewDocumentTextService creates a DocumentTextService. cache may be nil.
func NewDocumentTextService(extractor domain.DocumentTextExtractor, cache domain.Cache, ttl time.Duration) DocumentTextService {
	return &documentTextService{
		extractor: extractor,
		cache:     cache,
		ttl:       ttl,
	}
}

// ExtractText looks the text up in the cache first.
func (s *documentTextService) ExtractText(ctx context.Context, documentID string, path string, modTime time.Time) (string, error) {
	l := logger.Get()
	cacheKey := cache.DocumentTextKey(documentID, modTime)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, cacheKey)
		if err == nil {
			l.Debug("Document text cache hit", zap.String("cacheKey", cacheKey))
			return cached, nil
		}
		if !errors.Is(err, domain.ErrCacheMiss) {
			l.Warn("Failed to read document text from cache", zap.String("cacheKey", cacheKey), zap.Error(err))
		}
	}

	res, err, shared := s.sfGroup.Do(cacheKey, func() (interface{}, error) {
		// Callers joining this flight must not fail when the first one cancels.
		ctx := context.WithoutCancel(ctx)
		text, err := s.extractor.ExtractText(ctx, path)
		if err != nil {
			return "", err
		}
		if text != "" && s.cache != nil {
			if err := s.cache.Set(ctx, cacheKey, text, s.ttl); err != nil {
				l.Warn("Failed to cache document text", zap.String("cacheKey", cacheKey), zap.Error(err))
			}
		}
		return text, nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to extract text of document %s: %w", documentID, err)
	}
	if shared {
		l.Debug("Document text extraction shared", zap.String("documentID", documentID))
	}

	text, ok := res.(string)
	if !ok {
		return "", fmt.Errorf("unexpected type from singleflight.Do for document text: %T", res)
	}
	return text, nil
}
