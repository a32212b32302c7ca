package services

import (
	"time"

	"visualvibe_backend/internal/config"
	"visualvibe_backend/internal/content"
	"visualvibe_backend/internal/models"
	"visualvibe_backend/internal/repositories"
	"visualvibe_backend/internal/storage"
)

// ServiceContainer holds every service of the application.
type ServiceContainer struct {
	AuthService    AuthService
	EnquiryService EnquiryService
	StatsService   StatsService
	UploadService  UploadService

	Slides   ContentService[models.CarouselSlide]
	Team     ContentService[models.TeamMember]
	Websites ContentService[models.WebsiteProject]
	Logos    ContentService[models.LogoDesign]
	Graphics ContentService[models.GraphicDesign]
	Flyers   ContentService[models.FlyerPoster]
	Uiux     ContentService[models.UiuxDesign]
	Videos   ContentService[models.PortfolioVideo]
}

// NewServiceContainer wires repositories into services. Repositories are
// stateless; the database handle travels with each request.
func NewServiceContainer(cfg *config.Config, store storage.Storage) *ServiceContainer {
	adminRepo := repositories.NewAdminRepository()
	enquiryRepo := repositories.NewEnquiryRepository()

	slidesRepo := repositories.NewContentRepository(content.Slides)
	teamRepo := repositories.NewContentRepository(content.Team)
	websitesRepo := repositories.NewContentRepository(content.Websites)
	logosRepo := repositories.NewContentRepository(content.Logos)
	graphicsRepo := repositories.NewContentRepository(content.Graphics)
	flyersRepo := repositories.NewContentRepository(content.Flyers)
	uiuxRepo := repositories.NewContentRepository(content.Uiux)
	videosRepo := repositories.NewContentRepository(content.Videos)

	return &ServiceContainer{
		AuthService:    NewAuthService(adminRepo, time.Duration(cfg.Session.TTLHours)*time.Hour),
		EnquiryService: NewEnquiryService(enquiryRepo),
		StatsService: NewStatsService(
			enquiryRepo, slidesRepo, teamRepo, websitesRepo, logosRepo, graphicsRepo, flyersRepo),
		UploadService: NewUploadService(store, cfg),

		Slides:   NewContentService(content.Slides, slidesRepo),
		Team:     NewContentService(content.Team, teamRepo),
		Websites: NewContentService(content.Websites, websitesRepo),
		Logos:    NewContentService(content.Logos, logosRepo),
		Graphics: NewContentService(content.Graphics, graphicsRepo),
		Flyers:   NewContentService(content.Flyers, flyersRepo),
		Uiux:     NewContentService(content.Uiux, uiuxRepo),
		Videos:   NewContentService(content.Videos, videosRepo),
	}
}
