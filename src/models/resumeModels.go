package models

// ResumeModel is a singleton document; sub-record ids are client-generated
// and only need to be unique within their section.
type ResumeModel struct {
	Summary        string               `json:"summary"`
	Education      []EducationEntry     `json:"education"`
	Experience     []ExperienceEntry    `json:"experience"`
	Skills         []SkillEntry         `json:"skills"`
	Software       []SoftwareEntry      `json:"software"`
	Certifications []CertificationEntry `json:"certifications"`
	CVFile         *string              `json:"cvFile"`
}

type EducationEntry struct {
	ID          int64  `json:"id"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	Description string `json:"description"`
}

type ExperienceEntry struct {
	ID          int64  `json:"id"`
	Role        string `json:"role"`
	Company     string `json:"company"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

type SkillEntry struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
}

type SoftwareEntry struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Level int    `json:"level"`
}

type CertificationEntry struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Issuer string `json:"issuer"`
	Year   string `json:"year"`
}
