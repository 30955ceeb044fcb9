// Package catalog holds the static copy of the site: the service and review
// catalogs plus every other piece of text and imagery the page renders.
//
// A Site is parsed once (from the embedded YAML document or an override file)
// and is never mutated afterwards. Reloading produces a new Site value.
package catalog

// In-page section identifiers. Navigation and footer links must resolve to one
// of these.
const (
	SectionServices = "storitve"
	SectionPricing  = "cenik"
	SectionReviews  = "mnenja"
	SectionAbout    = "o-nas"
	SectionContact  = "kontakt"
)

// Sections lists the anchors in page order.
var Sections = []string{SectionServices, SectionPricing, SectionReviews, SectionAbout, SectionContact}

// Service is one entry of the service catalog.
type Service struct {
	ID          string `yaml:"id" json:"id" validate:"required"`
	Title       string `yaml:"title" json:"title" validate:"required"`
	Description string `yaml:"description" json:"description"`
	Icon        string `yaml:"icon" json:"icon"`
	// Price is display text, e.g. "od 15€/h" or "po dogovoru".
	Price string `yaml:"price" json:"price"`
}

// Review is one entry of the review catalog. Rating is expected to be 1-5 but
// is not validated; renderers clamp it.
type Review struct {
	ID     string `yaml:"id" json:"id" validate:"required"`
	Author string `yaml:"author" json:"author" validate:"required"`
	Text   string `yaml:"text" json:"text"`
	Rating int    `yaml:"rating" json:"rating"`
	// Date is a relative label such as "pred 3 dnevi", not a timestamp.
	Date string `yaml:"date" json:"date"`
}

// Link is a labelled in-page anchor. Section is derived from Label with Slug
// when omitted.
type Link struct {
	Label   string `yaml:"label" json:"label" validate:"required"`
	Section string `yaml:"section" json:"section" validate:"required,oneof=storitve cenik mnenja o-nas kontakt"`
}

// Href returns the fragment URL of the link.
func (l Link) Href() string { return "#" + l.Section }

type Brand struct {
	Name      string `yaml:"name" validate:"required"`
	LegalName string `yaml:"legal_name" validate:"required"`
	Blurb     string `yaml:"blurb"`
}

type Contact struct {
	PhoneDisplay string `yaml:"phone_display" validate:"required"`
	// PhoneDial is the E.164 number used in tel: links.
	PhoneDial string `yaml:"phone_dial" validate:"required,e164"`
	Email     string `yaml:"email" validate:"required,email"`
	Address   string `yaml:"address"`
}

type Hero struct {
	Badge       string   `yaml:"badge"`
	TitleLead   string   `yaml:"title_lead" validate:"required"`
	TitleAccent string   `yaml:"title_accent"`
	TitleTail   string   `yaml:"title_tail"`
	Lead        string   `yaml:"lead"`
	CTA         string   `yaml:"cta" validate:"required"`
	Image       string   `yaml:"image" validate:"required,url"`
	ImageAlt    string   `yaml:"image_alt"`
	Avatars     []string `yaml:"avatars" validate:"dive,url"`
	SocialProof string   `yaml:"social_proof"`
}

// Intro is the eyebrow + headline pair that opens most sections.
type Intro struct {
	Eyebrow string `yaml:"eyebrow"`
	Title   string `yaml:"title" validate:"required"`
}

type PriceRow struct {
	Name  string `yaml:"name" validate:"required"`
	Note  string `yaml:"note"`
	Price string `yaml:"price" validate:"required"`
}

type Pricing struct {
	Intro         `yaml:",inline"`
	Lead          string     `yaml:"lead"`
	Perks         []string   `yaml:"perks"`
	DownloadLabel string     `yaml:"download_label"`
	FeaturedTitle string     `yaml:"featured_title"`
	Items         []PriceRow `yaml:"items" validate:"dive"`
	Disclaimer    string     `yaml:"disclaimer"`
}

type ReviewsIntro struct {
	Intro   `yaml:",inline"`
	Score   string `yaml:"score"`
	Source  string `yaml:"source"`
	Verdict string `yaml:"verdict"`
}

type Highlight struct {
	Icon  string `yaml:"icon"`
	Title string `yaml:"title" validate:"required"`
	Text  string `yaml:"text"`
}

type Founder struct {
	Intro           `yaml:",inline"`
	Paragraphs      []string    `yaml:"paragraphs"`
	Image           string      `yaml:"image" validate:"required,url"`
	ImageAlt        string      `yaml:"image_alt"`
	Experience      string      `yaml:"experience"`
	ExperienceLabel string      `yaml:"experience_label"`
	Highlights      []Highlight `yaml:"highlights" validate:"dive"`
	Signature       string      `yaml:"signature" validate:"omitempty,url"`
	Name            string      `yaml:"name" validate:"required"`
	Role            string      `yaml:"role"`
}

type OpeningHours struct {
	Days   string `yaml:"days" validate:"required"`
	Time   string `yaml:"time"`
	Closed bool   `yaml:"closed"`
}

type FooterLabels struct {
	QuickLinks string `yaml:"quick_links"`
	Contact    string `yaml:"contact"`
	Hours      string `yaml:"hours"`
	Call       string `yaml:"call"`
	Write      string `yaml:"write"`
	Location   string `yaml:"location"`
}

type Footer struct {
	Labels     FooterLabels   `yaml:"labels"`
	Socials    []string       `yaml:"socials"`
	QuickLinks []Link         `yaml:"quick_links" validate:"dive"`
	Hours      []OpeningHours `yaml:"hours" validate:"dive"`
	Rights     string         `yaml:"rights"`
	Privacy    string         `yaml:"privacy"`
	Cookies    string         `yaml:"cookies"`
}

// Site is the whole static content of the page.
type Site struct {
	Brand         Brand        `yaml:"brand"`
	Contact       Contact      `yaml:"contact"`
	Navigation    []Link       `yaml:"navigation" validate:"required,dive"`
	Hero          Hero         `yaml:"hero"`
	ServicesIntro Intro        `yaml:"services_intro"`
	Services      []Service    `yaml:"services" validate:"required,unique=ID,dive"`
	Pricing       Pricing      `yaml:"pricing"`
	ReviewsIntro  ReviewsIntro `yaml:"reviews_intro"`
	Reviews       []Review     `yaml:"reviews" validate:"required,unique=ID,dive"`
	Founder       Founder      `yaml:"founder"`
	Footer        Footer       `yaml:"footer"`
	MobileCTA     string       `yaml:"mobile_cta" validate:"required"`
}

// PhoneHref returns the tel: URL for the business phone.
func (s *Site) PhoneHref() string { return "tel:" + s.Contact.PhoneDial }
