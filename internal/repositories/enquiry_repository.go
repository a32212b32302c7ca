package repositories

import (
	"errors"
	"strings"

	"visualvibe_backend/internal/models"

	"gorm.io/gorm"
)

var ErrEnquiryNotFound = errors.New("enquiry not found")

// EnquiryFilter narrows the admin listing. The literal "all" (the frontend's
// filter-dropdown default) means no filter, same as an empty value.
type EnquiryFilter struct {
	Status  string
	Service string
	Search  string
}

type EnquiryRepository interface {
	Create(db *gorm.DB, enquiry *models.Enquiry) error
	List(db *gorm.DB, filter EnquiryFilter) ([]models.Enquiry, error)
	FindByID(db *gorm.DB, id uint) (*models.Enquiry, error)
	UpdateStatus(db *gorm.DB, id uint, status models.EnquiryStatus) error
	Delete(db *gorm.DB, id uint) error
	Count(db *gorm.DB) (int64, error)
	CountByStatus(db *gorm.DB, status models.EnquiryStatus) (int64, error)
}

type enquiryRepository struct{}

func NewEnquiryRepository() EnquiryRepository {
	return &enquiryRepository{}
}

func (r *enquiryRepository) Create(db *gorm.DB, enquiry *models.Enquiry) error {
	return db.Create(enquiry).Error
}

// List applies the filters with AND semantics; the search term matches
// name, email or phone case-insensitively. Newest enquiries first.
func (r *enquiryRepository) List(db *gorm.DB, filter EnquiryFilter) ([]models.Enquiry, error) {
	query := db.Model(&models.Enquiry{})

	if filter.Status != "" && filter.Status != "all" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Service != "" && filter.Service != "all" {
		query = query.Where("service_type = ?", filter.Service)
	}
	if filter.Search != "" {
		term := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(full_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(phone) LIKE ?",
			term, term, term,
		)
	}

	enquiries := make([]models.Enquiry, 0)
	err := query.Order("created_at DESC, id DESC").Find(&enquiries).Error
	return enquiries, err
}

func (r *enquiryRepository) FindByID(db *gorm.DB, id uint) (*models.Enquiry, error) {
	var enquiry models.Enquiry
	err := db.First(&enquiry, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEnquiryNotFound
		}
		return nil, err
	}
	return &enquiry, nil
}

// UpdateStatus relabels the enquiry; updated_at refreshes automatically.
func (r *enquiryRepository) UpdateStatus(db *gorm.DB, id uint, status models.EnquiryStatus) error {
	return db.Model(&models.Enquiry{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *enquiryRepository) Delete(db *gorm.DB, id uint) error {
	return db.Delete(&models.Enquiry{}, id).Error
}

func (r *enquiryRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Enquiry{}).Count(&count).Error
	return count, err
}

func (r *enquiryRepository) CountByStatus(db *gorm.DB, status models.EnquiryStatus) (int64, error) {
	var count int64
	err := db.Model(&models.Enquiry{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
