package handlers

import (
	"visualvibe_backend/internal/config"
	"visualvibe_backend/internal/content"
	"visualvibe_backend/internal/models"
	"visualvibe_backend/internal/services"
)

// AppHandlers holds every handler of the application. The eight content
// handlers are instantiations of the same generic handler over the resource
// table.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	EnquiryHandler *EnquiryHandler
	AdminHandler   *AdminHandler
	UploadHandler  *UploadHandler

	Slides   *ContentHandler[models.CarouselSlide]
	Team     *ContentHandler[models.TeamMember]
	Websites *ContentHandler[models.WebsiteProject]
	Logos    *ContentHandler[models.LogoDesign]
	Graphics *ContentHandler[models.GraphicDesign]
	Flyers   *ContentHandler[models.FlyerPoster]
	Uiux     *ContentHandler[models.UiuxDesign]
	Videos   *ContentHandler[models.PortfolioVideo]
}

func NewAppHandlers(base *BaseHandler, svcs *services.ServiceContainer, cfg *config.Config) *AppHandlers {
	return &AppHandlers{
		AuthHandler:    NewAuthHandler(base, svcs.AuthService, cfg),
		EnquiryHandler: NewEnquiryHandler(base, svcs.EnquiryService, svcs.UploadService),
		AdminHandler:   NewAdminHandler(base, svcs.StatsService),
		UploadHandler:  NewUploadHandler(base, svcs.UploadService),

		Slides:   NewContentHandler(base, content.Slides, svcs.Slides),
		Team:     NewContentHandler(base, content.Team, svcs.Team),
		Websites: NewContentHandler(base, content.Websites, svcs.Websites),
		Logos:    NewContentHandler(base, content.Logos, svcs.Logos),
		Graphics: NewContentHandler(base, content.Graphics, svcs.Graphics),
		Flyers:   NewContentHandler(base, content.Flyers, svcs.Flyers),
		Uiux:     NewContentHandler(base, content.Uiux, svcs.Uiux),
		Videos:   NewContentHandler(base, content.Videos, svcs.Videos),
	}
}
