package models

// Profile holds the identity and contact details shown across the page
type Profile struct {
	Name         string   `json:"name" yaml:"name"`
	Headline     string   `json:"headline" yaml:"headline"`
	Summary      string   `json:"summary" yaml:"summary"`
	About        []string `json:"about" yaml:"about"` // markdown paragraphs
	Email        string   `json:"email" yaml:"email"`
	GitHubURL    string   `json:"github_url" yaml:"github_url"`
	LinkedInURL  string   `json:"linkedin_url" yaml:"linkedin_url"`
	HeadshotPath string   `json:"headshot_path" yaml:"headshot_path"`
	ResumePath   string   `json:"resume_path" yaml:"resume_path"`
	ContactBlurb string   `json:"contact_blurb" yaml:"contact_blurb"`
}

// Education is one entry in the about section
type Education struct {
	School  string   `json:"school" yaml:"school"`
	Program string   `json:"program" yaml:"program"`
	GPA     string   `json:"gpa,omitempty" yaml:"gpa,omitempty"`
	Period  string   `json:"period" yaml:"period"`
	Honours []string `json:"honours,omitempty" yaml:"honours,omitempty"`
}

// SkillGroup is a labeled list of skills
type SkillGroup struct {
	Name  string `json:"name" yaml:"name"`
	Items string `json:"items" yaml:"items"`
}

// Experience is one position on the experience timeline
type Experience struct {
	Role     string   `json:"role" yaml:"role"`
	Company  string   `json:"company" yaml:"company"`
	Location string   `json:"location" yaml:"location"`
	Period   string   `json:"period" yaml:"period"`
	Points   []string `json:"points" yaml:"points"`
}

// Portfolio is the complete static content of the site
type Portfolio struct {
	Profile    Profile      `json:"profile" yaml:"profile"`
	Education  []Education  `json:"education" yaml:"education"`
	Skills     []SkillGroup `json:"skills" yaml:"skills"`
	Experience []Experience `json:"experience" yaml:"experience"`
	Projects   []Project    `json:"projects" yaml:"projects"`
}
