// Package content describes the portfolio resources served by the public
// site and the admin panel. Each resource is one Resource value below:
// the table name, the listing order, the write defaults and (for team and
// graphics) the grouped list-view shape. The HTTP and persistence layers are
// generic over this table, so adding a ninth resource is one entry here plus
// a model.
package content

import "visualvibe_backend/internal/models"

// Item is the constraint shared by every portfolio model.
type Item interface {
	TableName() string
	GetID() uint
}

// Resource is the per-entity configuration consumed by the generic
// repository, service and handler.
type Resource[T Item] struct {
	// Name is the URL path segment and the upload category.
	Name string

	// Label is the human label used in confirmation and error messages,
	// e.g. "Slide created", "Slide not found".
	Label string

	// OrderBy is the listing order. Every clause ends in a unique key so
	// that equal display_order values sort deterministically.
	OrderBy string

	// Defaults fills the documented default for every field the payload
	// omitted. Applied before any write; PUT uses the same policy, so an
	// omitted field overwrites the stored value with its default.
	Defaults func(*T)

	// GroupList, when set, turns the flat active listing into the grouped
	// response shape. The second return value names items that fell outside
	// every bucket; callers log these instead of dropping them silently.
	GroupList func(items []T) (any, []string)
}

func ensureActive(p **bool) {
	if *p == nil {
		active := true
		*p = &active
	}
}

// Slides is the hero carousel resource.
var Slides = Resource[models.CarouselSlide]{
	Name:    "slides",
	Label:   "Slide",
	OrderBy: "display_order ASC, id ASC",
	Defaults: func(s *models.CarouselSlide) {
		ensureActive(&s.IsActive)
	},
}

// Team lists members grouped by department category.
var Team = Resource[models.TeamMember]{
	Name:    "team",
	Label:   "Team member",
	OrderBy: "category, display_order, name",
	Defaults: func(m *models.TeamMember) {
		ensureActive(&m.IsActive)
	},
	GroupList: func(members []models.TeamMember) (any, []string) {
		return GroupTeamByCategory(members), nil
	},
}

var Websites = Resource[models.WebsiteProject]{
	Name:    "websites",
	Label:   "Website",
	OrderBy: "display_order ASC, created_at DESC, id ASC",
	Defaults: func(w *models.WebsiteProject) {
		ensureActive(&w.IsActive)
	},
}

var Logos = Resource[models.LogoDesign]{
	Name:    "logos",
	Label:   "Logo",
	OrderBy: "display_order ASC, created_at DESC, id ASC",
	Defaults: func(l *models.LogoDesign) {
		ensureActive(&l.IsActive)
	},
}

// Graphics lists designs partitioned into the fixed 2D/3D buckets the
// frontend renders as tabs.
var Graphics = Resource[models.GraphicDesign]{
	Name:    "graphics",
	Label:   "Graphic design",
	OrderBy: "design_type, display_order ASC, id ASC",
	Defaults: func(g *models.GraphicDesign) {
		ensureActive(&g.IsActive)
		if g.DesignType == "" {
			g.DesignType = "2D"
		}
	},
	GroupList: func(items []models.GraphicDesign) (any, []string) {
		grouped, dropped := GroupGraphicsByType(items)
		return grouped, dropped
	},
}

var Flyers = Resource[models.FlyerPoster]{
	Name:    "flyers",
	Label:   "Flyer/Poster",
	OrderBy: "category, display_order ASC, id ASC",
	Defaults: func(f *models.FlyerPoster) {
		ensureActive(&f.IsActive)
	},
}

var Uiux = Resource[models.UiuxDesign]{
	Name:    "uiux",
	Label:   "UI/UX design",
	OrderBy: "design_type, display_order ASC, id ASC",
	Defaults: func(u *models.UiuxDesign) {
		ensureActive(&u.IsActive)
	},
}

var Videos = Resource[models.PortfolioVideo]{
	Name:    "videos",
	Label:   "Video",
	OrderBy: "display_order ASC, created_at DESC, id ASC",
	Defaults: func(v *models.PortfolioVideo) {
		ensureActive(&v.IsActive)
	},
}

// UploadCategories maps the upload `type` form field to the directory files
// of that resource are stored under.
var UploadCategories = map[string]string{
	"slides":   "carousel",
	"team":     "team",
	"websites": "websites",
	"logos":    "logos",
	"graphics": "graphics",
	"flyers":   "flyers",
	"uiux":     "uiux",
	"videos":   "videos",
}
