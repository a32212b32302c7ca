package services

import (
	"visualvibe_backend/internal/models"
	"visualvibe_backend/internal/repositories"
	"visualvibe_backend/internal/services/dto"
	"visualvibe_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// StatsService aggregates the counters behind the admin dashboard cards.
type StatsService interface {
	Dashboard(db *gorm.DB) (*dto.StatsResponse, error)
}

type statsService struct {
	enquiryRepo  repositories.EnquiryRepository
	slidesRepo   repositories.ContentRepository[models.CarouselSlide]
	teamRepo     repositories.ContentRepository[models.TeamMember]
	websitesRepo repositories.ContentRepository[models.WebsiteProject]
	logosRepo    repositories.ContentRepository[models.LogoDesign]
	graphicsRepo repositories.ContentRepository[models.GraphicDesign]
	flyersRepo   repositories.ContentRepository[models.FlyerPoster]
}

func NewStatsService(
	enquiryRepo repositories.EnquiryRepository,
	slidesRepo repositories.ContentRepository[models.CarouselSlide],
	teamRepo repositories.ContentRepository[models.TeamMember],
	websitesRepo repositories.ContentRepository[models.WebsiteProject],
	logosRepo repositories.ContentRepository[models.LogoDesign],
	graphicsRepo repositories.ContentRepository[models.GraphicDesign],
	flyersRepo repositories.ContentRepository[models.FlyerPoster],
) StatsService {
	return &statsService{
		enquiryRepo:  enquiryRepo,
		slidesRepo:   slidesRepo,
		teamRepo:     teamRepo,
		websitesRepo: websitesRepo,
		logosRepo:    logosRepo,
		graphicsRepo: graphicsRepo,
		flyersRepo:   flyersRepo,
	}
}

func (s *statsService) Dashboard(db *gorm.DB) (*dto.StatsResponse, error) {
	stats := &dto.StatsResponse{}

	counts := []struct {
		dst   *int64
		count func(*gorm.DB) (int64, error)
	}{
		{&stats.EnquiriesTotal, s.enquiryRepo.Count},
		{&stats.EnquiriesPending, func(db *gorm.DB) (int64, error) {
			return s.enquiryRepo.CountByStatus(db, models.EnquiryStatusPending)
		}},
		{&stats.Slides, s.slidesRepo.CountActive},
		{&stats.TeamMembers, s.teamRepo.CountActive},
		{&stats.Websites, s.websitesRepo.CountActive},
		{&stats.Logos, s.logosRepo.CountActive},
		{&stats.Graphics, s.graphicsRepo.CountActive},
		{&stats.Flyers, s.flyersRepo.CountActive},
	}

	for _, c := range counts {
		n, err := c.count(db)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		*c.dst = n
	}

	return stats, nil
}
