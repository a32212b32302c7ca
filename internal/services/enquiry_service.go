package services

import (
	"strings"

	"visualvibe_backend/internal/models"
	"visualvibe_backend/internal/repositories"
	"visualvibe_backend/internal/services/dto"
	"visualvibe_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type EnquiryService interface {
	// Create handles the JSON API path.
	Create(db *gorm.DB, req *dto.CreateEnquiryRequest) (uint, error)
	// Submit handles the direct multipart form path, which additionally
	// requires a contact preference.
	Submit(db *gorm.DB, req *dto.CreateEnquiryRequest) (uint, error)
	List(db *gorm.DB, filter repositories.EnquiryFilter) ([]models.Enquiry, error)
	Get(db *gorm.DB, id uint) (*models.Enquiry, error)
	UpdateStatus(db *gorm.DB, id uint, status string) error
	Delete(db *gorm.DB, id uint) error
}

type enquiryService struct {
	repo repositories.EnquiryRepository
}

func NewEnquiryService(repo repositories.EnquiryRepository) EnquiryService {
	return &enquiryService{repo: repo}
}

func (s *enquiryService) Create(db *gorm.DB, req *dto.CreateEnquiryRequest) (uint, error) {
	return s.create(db, req, false)
}

func (s *enquiryService) Submit(db *gorm.DB, req *dto.CreateEnquiryRequest) (uint, error) {
	return s.create(db, req, true)
}

// create flattens the multi-select fields, validates the required set and
// inserts the row. Validation runs before any write: a missing required
// field rejects the whole enquiry.
func (s *enquiryService) create(db *gorm.DB, req *dto.CreateEnquiryRequest, direct bool) (uint, error) {
	enquiry := &models.Enquiry{
		FullName:           strings.TrimSpace(req.FullName),
		Email:              strings.TrimSpace(req.Email),
		Phone:              strings.TrimSpace(req.Phone),
		Company:            req.Company,
		Location:           req.Location,
		ServiceType:        req.ServiceType.Flatten(),
		OtherService:       req.OtherService,
		ProjectType:        req.ProjectType,
		ProjectDescription: req.ProjectDescription,
		DesignStyle:        req.DesignStyle,
		FilePath:           req.FilePath,
		Deadline:           req.Deadline,
		BudgetRange:        req.BudgetRange,
		ContactPreference:  req.ContactPreference.Flatten(),
		BestTime:           req.BestTime,
		HearAbout:          req.HearAbout,
		OtherSource:        req.OtherSource,
		AdditionalNotes:    req.AdditionalNotes,
		Status:             models.EnquiryStatusPending,
	}

	missing := enquiry.FullName == "" ||
		enquiry.Email == "" ||
		enquiry.Phone == "" ||
		enquiry.ServiceType == "" ||
		enquiry.ProjectType == "" ||
		enquiry.ProjectDescription == ""
	if direct {
		missing = missing || enquiry.ContactPreference == ""
	}
	if missing {
		if direct {
			return 0, apperrors.NewBadRequestError("Please fill all required fields")
		}
		return 0, apperrors.NewBadRequestError("Missing required fields")
	}

	if err := s.repo.Create(db, enquiry); err != nil {
		return 0, apperrors.InternalError(err)
	}
	return enquiry.ID, nil
}

func (s *enquiryService) List(db *gorm.DB, filter repositories.EnquiryFilter) ([]models.Enquiry, error) {
	enquiries, err := s.repo.List(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return enquiries, nil
}

func (s *enquiryService) Get(db *gorm.DB, id uint) (*models.Enquiry, error) {
	enquiry, err := s.repo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrEnquiryNotFound) {
			return nil, apperrors.NewNotFoundError("Enquiry not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return enquiry, nil
}

// UpdateStatus relabels the enquiry. Any valid status is reachable from any
// other; an empty payload falls back to pending.
func (s *enquiryService) UpdateStatus(db *gorm.DB, id uint, status string) error {
	next := models.EnquiryStatus(status)
	if status == "" {
		next = models.EnquiryStatusPending
	}
	if !next.Valid() {
		return apperrors.New(apperrors.CodeInvalidStatus, "Invalid status", 400)
	}

	if err := s.repo.UpdateStatus(db, id, next); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *enquiryService) Delete(db *gorm.DB, id uint) error {
	if err := s.repo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
