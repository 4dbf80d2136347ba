package model

// Go models that match the cv.schema.json wire shape used for stored
// snapshots, export text and rendering.

type PersonalInfo struct {
	FullName          string `json:"fullName"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	LinkedIn          string `json:"linkedin,omitempty"`
	ProfessionalTitle string `json:"professionalTitle"`
}

type ProfessionalSummary struct {
	Summary string `json:"summary"`
}

type Skill struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	OrderIndex int    `json:"orderIndex"`
}

type Experience struct {
	ID           string   `json:"id"`
	JobTitle     string   `json:"jobTitle"`
	Company      string   `json:"company"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate,omitempty"`
	IsCurrent    bool     `json:"isCurrent"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
	OrderIndex   int      `json:"orderIndex"`
}

type Education struct {
	ID             string   `json:"id"`
	Degree         string   `json:"degree"`
	Institution    string   `json:"institution"`
	CompletionDate string   `json:"completionDate,omitempty"`
	IsExpected     bool     `json:"isExpected"`
	Description    string   `json:"description"`
	Highlights     []string `json:"highlights"`
	OrderIndex     int      `json:"orderIndex"`
}

// CVDocument is the full persisted and exported unit.
type CVDocument struct {
	PersonalInfo        PersonalInfo        `json:"personalInfo"`
	ProfessionalSummary ProfessionalSummary `json:"professionalSummary"`
	Skills              []Skill             `json:"skills"`
	Experiences         []Experience        `json:"experiences"`
	Education           []Education         `json:"education"`
}

// EmptyDocument returns a fresh document with non-nil list sections so the
// serialized shape always carries the three arrays.
func EmptyDocument() CVDocument {
	return CVDocument{
		Skills:      []Skill{},
		Experiences: []Experience{},
		Education:   []Education{},
	}
}

// Clone returns a deep copy of the document.
func (d CVDocument) Clone() CVDocument {
	out := d
	out.Skills = append([]Skill{}, d.Skills...)
	out.Experiences = make([]Experience, len(d.Experiences))
	for i, e := range d.Experiences {
		e.Achievements = append([]string{}, e.Achievements...)
		out.Experiences[i] = e
	}
	out.Education = make([]Education, len(d.Education))
	for i, e := range d.Education {
		e.Highlights = append([]string{}, e.Highlights...)
		out.Education[i] = e
	}
	return out
}
