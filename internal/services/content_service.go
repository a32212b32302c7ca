package services

import (
	"fmt"

	"visualvibe_backend/internal/content"
	"visualvibe_backend/internal/logger"
	"visualvibe_backend/internal/repositories"
	"visualvibe_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// ContentService applies the per-resource write defaults and the optional
// grouped list-view transform on top of the generic repository. One
// instance serves one resource.
type ContentService[T content.Item] interface {
	// List returns either the flat active listing or, for grouped
	// resources, the grouped response shape.
	List(db *gorm.DB) (any, error)
	Get(db *gorm.DB, id uint) (*T, error)
	Create(db *gorm.DB, item *T) (uint, error)
	Update(db *gorm.DB, id uint, item *T) error
	Delete(db *gorm.DB, id uint) error
	CountActive(db *gorm.DB) (int64, error)
}

type contentService[T content.Item] struct {
	res  content.Resource[T]
	repo repositories.ContentRepository[T]
}

func NewContentService[T content.Item](res content.Resource[T], repo repositories.ContentRepository[T]) ContentService[T] {
	return &contentService[T]{
		res:  res,
		repo: repo,
	}
}

func (s *contentService[T]) List(db *gorm.DB) (any, error) {
	items, err := s.repo.ListActive(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if s.res.GroupList == nil {
		return items, nil
	}

	grouped, dropped := s.res.GroupList(items)
	if len(dropped) > 0 {
		logger.Warn("items omitted from grouped listing",
			"resource", s.res.Name,
			"items", dropped,
		)
	}
	return grouped, nil
}

func (s *contentService[T]) Get(db *gorm.DB, id uint) (*T, error) {
	item, err := s.repo.FindActiveByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrContentNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("%s not found", s.res.Label))
		}
		return nil, apperrors.InternalError(err)
	}
	return item, nil
}

func (s *contentService[T]) Create(db *gorm.DB, item *T) (uint, error) {
	s.res.Defaults(item)
	if err := s.repo.Create(db, item); err != nil {
		return 0, apperrors.InternalError(err)
	}
	return (*item).GetID(), nil
}

// Update has full-replace semantics: the payload is defaulted exactly like
// a create, then every mutable column is overwritten.
func (s *contentService[T]) Update(db *gorm.DB, id uint, item *T) error {
	s.res.Defaults(item)
	if err := s.repo.Update(db, id, item); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *contentService[T]) Delete(db *gorm.DB, id uint) error {
	if err := s.repo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *contentService[T]) CountActive(db *gorm.DB) (int64, error) {
	return s.repo.CountActive(db)
}
