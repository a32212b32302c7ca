package repositories

import (
	"errors"

	"visualvibe_backend/internal/content"

	"gorm.io/gorm"
)

var ErrContentNotFound = errors.New("content item not found")

// ContentRepository is the persistence surface shared by all eight portfolio
// resources. Reads filter on is_active; deletes are hard and idempotent.
type ContentRepository[T content.Item] interface {
	ListActive(db *gorm.DB) ([]T, error)
	FindActiveByID(db *gorm.DB, id uint) (*T, error)
	Create(db *gorm.DB, item *T) error
	Update(db *gorm.DB, id uint, item *T) error
	Delete(db *gorm.DB, id uint) error
	CountActive(db *gorm.DB) (int64, error)
}

type contentRepository[T content.Item] struct {
	orderBy string
}

func NewContentRepository[T content.Item](res content.Resource[T]) ContentRepository[T] {
	return &contentRepository[T]{orderBy: res.OrderBy}
}

func (r *contentRepository[T]) ListActive(db *gorm.DB) ([]T, error) {
	items := make([]T, 0)
	err := db.Where("is_active = ?", true).
		Order(r.orderBy).
		Find(&items).Error
	return items, err
}

func (r *contentRepository[T]) FindActiveByID(db *gorm.DB, id uint) (*T, error) {
	var item T
	err := db.Where("id = ? AND is_active = ?", id, true).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *contentRepository[T]) Create(db *gorm.DB, item *T) error {
	return db.Create(item).Error
}

// Update overwrites every mutable column with the values in item, zero
// values included. PUT has full-replace semantics; there is no partial merge.
func (r *contentRepository[T]) Update(db *gorm.DB, id uint, item *T) error {
	return db.Model(new(T)).
		Where("id = ?", id).
		Select("*").
		Omit("id", "created_at").
		Updates(item).Error
}

// Delete removes the row by id. Deleting an absent id is not an error.
func (r *contentRepository[T]) Delete(db *gorm.DB, id uint) error {
	return db.Delete(new(T), id).Error
}

func (r *contentRepository[T]) CountActive(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(new(T)).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
