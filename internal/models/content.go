package models

import "time"

// ContentBase is the shape shared by every portfolio resource: surrogate id,
// presentation order, soft-visibility flag and server-assigned timestamps.
type ContentBase struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	DisplayOrder int       `gorm:"not null;default:0" json:"display_order"`
	IsActive     *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (b ContentBase) GetID() uint { return b.ID }

// Active reports the visibility flag, treating an unset pointer as hidden.
func (b ContentBase) Active() bool { return b.IsActive != nil && *b.IsActive }

type CarouselSlide struct {
	ContentBase
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `gorm:"type:text" json:"description"`
	ImageURL    string `json:"image_url"`
}

func (CarouselSlide) TableName() string { return "carousel_slides" }

type TeamMember struct {
	ContentBase
	Name        string `json:"name"`
	Designation string `json:"designation"`
	ImageURL    string `json:"image_url"`
	Category    string `gorm:"index" json:"category"`
}

func (TeamMember) TableName() string { return "team_members" }

type WebsiteProject struct {
	ContentBase
	Title       string `json:"title"`
	Description string `gorm:"type:text" json:"description"`
	ImageURL    string `json:"image_url"`
	WebsiteURL  string `json:"website_url"`
	Category    string `json:"category"`
}

func (WebsiteProject) TableName() string { return "website_portfolio" }

type LogoDesign struct {
	ContentBase
	Title       string `json:"title"`
	Description string `gorm:"type:text" json:"description"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`
}

func (LogoDesign) TableName() string { return "logo_portfolio" }

type GraphicDesign struct {
	ContentBase
	Title        string `json:"title"`
	Description  string `gorm:"type:text" json:"description"`
	ImageURL     string `json:"image_url"`
	ThumbnailURL string `json:"thumbnail_url"`
	Category     string `json:"category"`
	DesignType   string `gorm:"index" json:"design_type"` // "2D" or "3D"
}

func (GraphicDesign) TableName() string { return "graphic_designs" }

type FlyerPoster struct {
	ContentBase
	Title        string `json:"title"`
	Description  string `gorm:"type:text" json:"description"`
	ImageURL     string `json:"image_url"`
	ThumbnailURL string `json:"thumbnail_url"`
	Category     string `json:"category"`
}

func (FlyerPoster) TableName() string { return "flyers_posters" }

type UiuxDesign struct {
	ContentBase
	Title        string `json:"title"`
	Description  string `gorm:"type:text" json:"description"`
	PrototypeURL string `json:"prototype_url"`
	ImageURL     string `json:"image_url"`
	ThumbnailURL string `json:"thumbnail_url"`
	Category     string `json:"category"`
	DesignType   string `json:"design_type"`
}

func (UiuxDesign) TableName() string { return "uiux_designs" }

type PortfolioVideo struct {
	ContentBase
	Title         string `json:"title"`
	Description   string `gorm:"type:text" json:"description"`
	VideoFile     string `json:"video_file"`
	ThumbnailFile string `json:"thumbnail_file"`
}

func (PortfolioVideo) TableName() string { return "portfolio_videos" }
