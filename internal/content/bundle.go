package content

// Bundle is the complete set of display copy for one language. Every bundle
// loaded into a Store has the same shape; only string leaves differ.
type Bundle struct {
	Nav          []NavLink    `yaml:"nav" json:"nav"`
	Hero         Hero         `yaml:"hero" json:"hero"`
	Metrics      []Metric     `yaml:"metrics" json:"metrics"`
	About        About        `yaml:"about" json:"about"`
	Incubation   Incubation   `yaml:"incubation" json:"incubation"`
	CaseStudies  CaseStudies  `yaml:"caseStudies" json:"caseStudies"`
	Partners     PartnersCopy `yaml:"partners" json:"partners"`
	Testimonials Testimonials `yaml:"testimonials" json:"testimonials"`
	Media        Media        `yaml:"media" json:"media"`
	Capital      Capital      `yaml:"capital" json:"capital"`
	Competencies Competencies `yaml:"competencies" json:"competencies"`
	CTA          CallToAction `yaml:"cta" json:"cta"`
	Footer       Footer       `yaml:"footer" json:"footer"`
}

type NavLink struct {
	Key   string `yaml:"key" json:"key"`
	Label string `yaml:"label" json:"label"`
	Href  string `yaml:"href" json:"href"`
}

type Hero struct {
	Headline     string `yaml:"headline" json:"headline"`
	SubHeadline  string `yaml:"subHeadline" json:"subHeadline"`
	Slogan       string `yaml:"slogan" json:"slogan"`
	CTAPrimary   string `yaml:"ctaPrimary" json:"ctaPrimary"`
	CTASecondary string `yaml:"ctaSecondary" json:"ctaSecondary"`
}

type Metric struct {
	Label       string `yaml:"label" json:"label"`
	Value       string `yaml:"value" json:"value"`
	Prefix      string `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Suffix      string `yaml:"suffix,omitempty" json:"suffix,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

type About struct {
	Title       string      `yaml:"title" json:"title"`
	Description string      `yaml:"description" json:"description"`
	History     string      `yaml:"history" json:"history"`
	Items       []BentoItem `yaml:"items" json:"items"`
}

// BentoItem is one card of the about grid. Icon names an icon glyph, not copy.
type BentoItem struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Icon        string `yaml:"icon" json:"icon"`
	Details     string `yaml:"details,omitempty" json:"details,omitempty"`
}

type Incubation struct {
	Title     string         `yaml:"title" json:"title"`
	Subtitle  string         `yaml:"subtitle" json:"subtitle"`
	Steps     []Step         `yaml:"steps" json:"steps"`
	TechTitle string         `yaml:"techTitle" json:"techTitle"`
	TechStack []TechCategory `yaml:"techStack" json:"techStack"`
}

type Step struct {
	ID           string   `yaml:"id" json:"id"`
	Title        string   `yaml:"title" json:"title"`
	Tasks        []string `yaml:"tasks" json:"tasks"`
	Deliverables []string `yaml:"deliverables" json:"deliverables"`
}

type TechCategory struct {
	Title string   `yaml:"title" json:"title"`
	Items []string `yaml:"items" json:"items"`
	Icon  string   `yaml:"icon" json:"icon"`
}

type CaseStudies struct {
	Title    string      `yaml:"title" json:"title"`
	Subtitle string      `yaml:"subtitle" json:"subtitle"`
	Items    []CaseStudy `yaml:"items" json:"items"`
}

type CaseStudy struct {
	Title      string `yaml:"title" json:"title"`
	Tag        string `yaml:"tag" json:"tag"`
	Stats      string `yaml:"stats" json:"stats"`
	StatsLabel string `yaml:"statsLabel" json:"statsLabel"`
	Desc       string `yaml:"desc" json:"desc"`
}

// PartnersCopy holds the headings around the partner marquees. The partner
// lists themselves are language independent and live on the Store.
type PartnersCopy struct {
	Title       string `yaml:"title" json:"title"`
	TopTitle    string `yaml:"topTitle" json:"topTitle"`
	Description string `yaml:"description" json:"description"`
	MediaTitle  string `yaml:"mediaTitle" json:"mediaTitle"`
}

type Testimonials struct {
	Title string        `yaml:"title" json:"title"`
	Items []Testimonial `yaml:"items" json:"items"`
}

type Testimonial struct {
	Content string `yaml:"content" json:"content"`
	Author  string `yaml:"author" json:"author"`
	Role    string `yaml:"role" json:"role"`
	Avatar  string `yaml:"avatar,omitempty" json:"avatar,omitempty"`
}

type Media struct {
	Title    string       `yaml:"title" json:"title"`
	Subtitle string       `yaml:"subtitle" json:"subtitle"`
	Factory  MediaFactory `yaml:"factory" json:"factory"`
	KOL      KOLAcademy   `yaml:"kol" json:"kol"`
	Brand    BrandOps     `yaml:"brand" json:"brand"`
}

type MediaFactory struct {
	Title          string `yaml:"title" json:"title"`
	Desc           string `yaml:"desc" json:"desc"`
	Stats          []Stat `yaml:"stats" json:"stats"`
	MarketingPoint string `yaml:"marketingPoint" json:"marketingPoint"`
}

type Stat struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
}

type KOLAcademy struct {
	Title    string           `yaml:"title" json:"title"`
	Subtitle string           `yaml:"subtitle" json:"subtitle"`
	Features []MediaFeature   `yaml:"features" json:"features"`
	Metrics  []SpecificMetric `yaml:"metrics" json:"metrics"`
	CTA      string           `yaml:"cta" json:"cta"`
}

type BrandOps struct {
	Title    string           `yaml:"title" json:"title"`
	Subtitle string           `yaml:"subtitle" json:"subtitle"`
	Features []MediaFeature   `yaml:"features" json:"features"`
	Metrics  []SpecificMetric `yaml:"metrics" json:"metrics"`
}

type MediaFeature struct {
	Title string `yaml:"title" json:"title"`
	Desc  string `yaml:"desc" json:"desc"`
}

// SpecificMetric is a numeric counter rendered as Value followed by Suffix.
type SpecificMetric struct {
	Value  int    `yaml:"value" json:"value"`
	Suffix string `yaml:"suffix" json:"suffix"`
	Label  string `yaml:"label" json:"label"`
}

type Capital struct {
	Title string `yaml:"title" json:"title"`
	Fund  Fund   `yaml:"fund" json:"fund"`
	Nexus Nexus  `yaml:"nexus" json:"nexus"`
}

type Fund struct {
	Title      string           `yaml:"title" json:"title"`
	Desc       string           `yaml:"desc" json:"desc"`
	ModelName  string           `yaml:"modelName" json:"modelName"`
	Allocation []FundAllocation `yaml:"allocation" json:"allocation"`
}

// FundAllocation is one slice of the fund model. Value is a percentage.
type FundAllocation struct {
	Name  string `yaml:"name" json:"name"`
	Value int    `yaml:"value" json:"value"`
	Color string `yaml:"color" json:"color"`
	Desc  string `yaml:"desc" json:"desc"`
}

type Nexus struct {
	Title string           `yaml:"title" json:"title"`
	Desc  string           `yaml:"desc" json:"desc"`
	Tiers []MembershipTier `yaml:"tiers" json:"tiers"`
}

type MembershipTier struct {
	Name     string   `yaml:"name" json:"name"`
	SubName  string   `yaml:"subName" json:"subName"`
	Color    string   `yaml:"color" json:"color"`
	Audience string   `yaml:"audience" json:"audience"`
	Features []string `yaml:"features" json:"features"`
}

type Competencies struct {
	Title string           `yaml:"title" json:"title"`
	Items []CompetencyItem `yaml:"items" json:"items"`
}

type CompetencyItem struct {
	Title string `yaml:"title" json:"title"`
	Desc  string `yaml:"desc" json:"desc"`
}

type CallToAction struct {
	Headline string `yaml:"headline" json:"headline"`
}

type Footer struct {
	Slogan    string `yaml:"slogan" json:"slogan"`
	CTA       string `yaml:"cta" json:"cta"`
	Copyright string `yaml:"copyright" json:"copyright"`
}
