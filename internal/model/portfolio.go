package model

// Skill categories accepted by the admin UI.
const (
	SkillCategoryFrontend = "frontend"
	SkillCategoryBackend  = "backend"
	SkillCategoryOther    = "other"
)

// SocialLinks holds the social profile URLs shown in the hero and footer.
type SocialLinks struct {
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
	Facebook string `json:"facebook"`
	Twitter  string `json:"twitter"`
}

// Personal is the bio/contact sub-tree of the portfolio document.
type Personal struct {
	Name     string      `json:"name"`
	Roles    []string    `json:"roles"`
	Bio      string      `json:"bio"`
	Email    string      `json:"email"`
	Phone    string      `json:"phone"`
	Location string      `json:"location"`
	CVURL    string      `json:"cvUrl"`
	Avatar   string      `json:"avatar"`
	Social   SocialLinks `json:"social"`
}

// Stats are the three counters shown in the about section.
type Stats struct {
	YearsExperience   int `json:"yearsExperience"`
	ProjectsCompleted int `json:"projectsCompleted"`
	TechnologiesUsed  int `json:"technologiesUsed"`
}

// Skill is a single skill badge.
type Skill struct {
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Category string `json:"category"` // frontend | backend | other
}

// Experience is one work-history entry.
type Experience struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

// Education is one education-history entry.
type Education struct {
	ID          string `json:"id"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

// Project is one portfolio project card.
type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Tags        []string `json:"tags"`
	DemoURL     string   `json:"demoUrl"`
	RepoURL     string   `json:"repoUrl"`
}

// PortfolioRecord is the singleton document behind the public site and
// the admin panel. Writes replace the whole document; there is no
// partial-merge path, so callers must always send the complete record.
type PortfolioRecord struct {
	Personal   Personal     `json:"personal"`
	Stats      Stats        `json:"stats"`
	Skills     []Skill      `json:"skills"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
	Projects   []Project    `json:"projects"`
}

// DefaultPortfolio returns the document seeded on first read when no
// portfolio record exists yet.
func DefaultPortfolio() *PortfolioRecord {
	return &PortfolioRecord{
		Personal: Personal{
			Name:     "Nishan Bajagain",
			Roles:    []string{"Software Developer", "Software Engineer", "UX/UI Designer"},
			Bio:      "Passionate software developer with expertise in building modern web applications.",
			Email:    "nishan.nb.nis@gmail.com",
			Phone:    "+977 9768980979",
			Location: "Kathmandu, Nepal",
			CVURL:    "/cv.pdf",
			Avatar:   "/profile.png",
			Social: SocialLinks{
				GitHub:   "https://github.com/nishanbajagain",
				LinkedIn: "https://linkedin.com/in/nishanbajagain",
				Facebook: "https://facebook.com/nishanbajagain",
				Twitter:  "https://twitter.com/nishanbajagain",
			},
		},
		Stats:      Stats{},
		Skills:     []Skill{},
		Experience: []Experience{},
		Education:  []Education{},
		Projects:   []Project{},
	}
}
