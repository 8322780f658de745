package models

// Profile is the owner's static about/resume content
type Profile struct {
	Name           string          `yaml:"name"`
	Role           string          `yaml:"role"`
	Tagline        string          `yaml:"tagline"`
	Location       string          `yaml:"location"`
	Email          string          `yaml:"email"`
	About          []string        `yaml:"about"`
	Links          []SocialLink    `yaml:"links"`
	Experience     []Experience    `yaml:"experience"`
	SkillGroups    []SkillGroup    `yaml:"skills"`
	Certifications []Certification `yaml:"certifications"`
	Highlights     []Highlight     `yaml:"highlights"`
}

type SocialLink struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

type Experience struct {
	Role        string   `yaml:"role"`
	Company     string   `yaml:"company"`
	Period      string   `yaml:"period"`
	Description string   `yaml:"description"`
	Highlights  []string `yaml:"highlights"`
}

type SkillGroup struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Skills      []string `yaml:"skills"`
}

type Certification struct {
	ID     string   `yaml:"id"`
	Title  string   `yaml:"title"`
	Issuer string   `yaml:"issuer"`
	Date   string   `yaml:"date"`
	URL    string   `yaml:"url"`
	Skills []string `yaml:"skills"`
}

type Highlight struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}
