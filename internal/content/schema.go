package content

// SectionName identifies one page section.
type SectionName string

const (
	SectionNav      SectionName = "nav"
	SectionHero     SectionName = "hero"
	SectionAbout    SectionName = "about"
	SectionProjects SectionName = "projects"
	SectionBlog     SectionName = "blog"
	SectionServices SectionName = "services"
	SectionContact  SectionName = "contact"
	SectionFooter   SectionName = "footer"
)

// Sections lists the page sections in render order.
var Sections = []SectionName{
	SectionNav,
	SectionHero,
	SectionAbout,
	SectionProjects,
	SectionBlog,
	SectionServices,
	SectionContact,
	SectionFooter,
}

// Section is implemented by every localized section type.
type Section interface {
	Name() SectionName
}

// Locale is the full localized text of the site for one language.
type Locale struct {
	Nav      Nav      `yaml:"nav"`
	Hero     Hero     `yaml:"hero"`
	About    About    `yaml:"about"`
	Projects Projects `yaml:"projects"`
	Blog     Blog     `yaml:"blog"`
	Services Services `yaml:"services"`
	Contact  Contact  `yaml:"contact"`
	Footer   Footer   `yaml:"footer"`
}

// Nav labels are keyed by the section anchor they scroll to.
type Nav struct {
	About       string `yaml:"about" validate:"required"`
	Projects    string `yaml:"projects" validate:"required"`
	Blog        string `yaml:"blog" validate:"required"`
	Services    string `yaml:"services" validate:"required"`
	Contact     string `yaml:"contact" validate:"required"`
	ToggleLang  string `yaml:"toggleLanguage" validate:"required"`
	ToggleTheme string `yaml:"toggleTheme" validate:"required"`
}

type Hero struct {
	Title      string `yaml:"title" validate:"required"`
	Tagline    string `yaml:"tagline" validate:"required"`
	CTA        string `yaml:"cta" validate:"required"`
	Resume     string `yaml:"resume" validate:"required"`
	ScrollHint string `yaml:"scrollHint" validate:"required"`
}

type About struct {
	Title          string      `yaml:"title" validate:"required"`
	Bio            string      `yaml:"bio" validate:"required"`
	Testimonial    Testimonial `yaml:"testimonial"`
	Fiverr         Callout     `yaml:"fiverr"`
	Certifications string      `yaml:"certifications" validate:"required"`
	CertList       []string    `yaml:"certList" validate:"omitempty,dive,required"`
	TechStack      string      `yaml:"techStack" validate:"required"`
}

type Testimonial struct {
	Text   string `yaml:"text" validate:"required"`
	Author string `yaml:"author" validate:"required"`
}

type Callout struct {
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description" validate:"required"`
	Link        string `yaml:"link" validate:"required,url"`
}

type Projects struct {
	Title      string    `yaml:"title" validate:"required"`
	SourceCode string    `yaml:"sourceCode" validate:"required"`
	Items      []Project `yaml:"items" validate:"required,min=1,dive"`
}

type Project struct {
	Title       string   `yaml:"title" validate:"required"`
	Description string   `yaml:"description" validate:"required"`
	Tech        []string `yaml:"tech" validate:"required,min=1,dive,required"`
	GitHub      string   `yaml:"github" validate:"required,url"`
}

// Blog holds the chrome around the post catalog; the posts themselves come
// from the posts package.
type Blog struct {
	Title        string `yaml:"title" validate:"required"`
	Subtitle     string `yaml:"subtitle" validate:"required"`
	Featured     string `yaml:"featured" validate:"required"`
	EmptyTitle   string `yaml:"emptyTitle" validate:"required"`
	EmptyMessage string `yaml:"emptyMessage" validate:"required"`
	Back         string `yaml:"back" validate:"required"`
	ReadMore     string `yaml:"readMore" validate:"required"`
	Contents     string `yaml:"contents" validate:"required"`
	AuthorTitle  string `yaml:"authorTitle" validate:"required"`
	AuthorBio    string `yaml:"authorBio" validate:"required"`
}

type Services struct {
	Title string    `yaml:"title" validate:"required"`
	Items []Service `yaml:"items" validate:"required,min=1,dive"`
}

// Service names its icon explicitly; the icon set is closed.
type Service struct {
	Icon        string `yaml:"icon" validate:"required,oneof=settings container cloud server users"`
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description" validate:"required"`
}

type Contact struct {
	Title    string `yaml:"title" validate:"required"`
	Subtitle string `yaml:"subtitle" validate:"required"`
	EmailCTA string `yaml:"emailCta" validate:"required"`
}

type Footer struct {
	BuiltWith string `yaml:"builtWith" validate:"required"`
	Agency    string `yaml:"agency" validate:"required"`
	Rights    string `yaml:"rights" validate:"required"`
}

// Profile is the language-neutral identity and link data.
type Profile struct {
	Name      string `yaml:"name" validate:"required"`
	Email     string `yaml:"email" validate:"required,email"`
	Avatar    string `yaml:"avatar" validate:"required,url"`
	Telegram  Handle `yaml:"telegram"`
	Twitter   Handle `yaml:"twitter"`
	GitHub    string `yaml:"github" validate:"required,url"`
	LinkedIn  string `yaml:"linkedin" validate:"required,url"`
	AgencyURL string `yaml:"agencyUrl" validate:"required,url"`
	ResumeURL string `yaml:"resumeUrl" validate:"omitempty,url"`
}

// Handle is a social account: the displayed handle and its profile URL.
type Handle struct {
	Handle string `yaml:"handle" validate:"required"`
	URL    string `yaml:"url" validate:"required,url"`
}

// TechCategory groups tools under a heading; categories keep authored order.
type TechCategory struct {
	Category string   `yaml:"category" validate:"required"`
	Tools    []string `yaml:"tools" validate:"required,min=1,dive,required"`
}

func (Nav) Name() SectionName      { return SectionNav }
func (Hero) Name() SectionName     { return SectionHero }
func (About) Name() SectionName    { return SectionAbout }
func (Projects) Name() SectionName { return SectionProjects }
func (Blog) Name() SectionName     { return SectionBlog }
func (Services) Name() SectionName { return SectionServices }
func (Contact) Name() SectionName  { return SectionContact }
func (Footer) Name() SectionName   { return SectionFooter }
