package model

import (
	"errors"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// Field rules ported from the wizard forms. Each check returns nil or an
// error whose message is the inline reason shown to the user; a rejection
// never mutates anything, the caller simply re-prompts.

// MaxSkills caps the skills list.
const MaxSkills = 10

var (
	nameRe  = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ\s]+$`)
	phoneRe = regexp.MustCompile(`^[\d\s\+\-\(\)]+$`)
)

func ValidatePersonalInfo(p PersonalInfo) error {
	name := strings.TrimSpace(p.FullName)
	if name == "" {
		return errors.New("el nombre completo es requerido")
	}
	if len([]rune(name)) < 3 {
		return errors.New("el nombre debe tener al menos 3 caracteres")
	}
	if !nameRe.MatchString(name) {
		return errors.New("el nombre solo puede contener letras y espacios")
	}

	email := strings.TrimSpace(p.Email)
	if email == "" {
		return errors.New("el email es requerido")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errors.New("el email debe ser válido")
	}

	phone := strings.TrimSpace(p.Phone)
	if phone == "" {
		return errors.New("el teléfono es requerido")
	}
	if len([]rune(phone)) < 8 {
		return errors.New("el teléfono debe tener al menos 8 dígitos")
	}
	if !phoneRe.MatchString(phone) {
		return errors.New("el teléfono solo puede contener números, espacios y símbolos +-()")
	}

	if p.LinkedIn != "" {
		u, err := url.Parse(p.LinkedIn)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return errors.New("la URL de LinkedIn debe ser válida")
		}
		if !strings.Contains(p.LinkedIn, "linkedin.com") {
			return errors.New("la URL debe ser de LinkedIn")
		}
	}

	title := strings.TrimSpace(p.ProfessionalTitle)
	if title == "" {
		return errors.New("el título profesional es requerido")
	}
	if n := len([]rune(title)); n < 5 {
		return errors.New("el título debe tener al menos 5 caracteres")
	} else if n > 100 {
		return errors.New("el título no puede exceder 100 caracteres")
	}
	return nil
}

var sentenceSplitRe = regexp.MustCompile(`[.!?]+`)

func ValidateSummary(s ProfessionalSummary) error {
	sum := strings.TrimSpace(s.Summary)
	if sum == "" {
		return errors.New("el resumen es requerido")
	}
	if n := len([]rune(sum)); n < 50 {
		return errors.New("el resumen debe tener al menos 50 caracteres")
	} else if n > 500 {
		return errors.New("el resumen no puede exceder 500 caracteres")
	}
	sentences := 0
	for _, part := range sentenceSplitRe.Split(sum, -1) {
		if strings.TrimSpace(part) != "" {
			sentences++
		}
	}
	if sentences < 2 {
		return errors.New("el resumen debe contener al menos 2 oraciones")
	}
	return nil
}

func ValidateSkill(s Skill) error {
	if strings.TrimSpace(s.Name) == "" {
		return errors.New("la habilidad es requerida")
	}
	return nil
}

func ValidateExperience(e Experience) error {
	if strings.TrimSpace(e.JobTitle) == "" {
		return errors.New("el puesto de trabajo es requerido")
	}
	if strings.TrimSpace(e.Company) == "" {
		return errors.New("la empresa es requerida")
	}
	if strings.TrimSpace(e.StartDate) == "" {
		return errors.New("la fecha de inicio es requerida")
	}
	return nil
}

// completion dates arrive month-granular from the form; full dates are
// accepted for imported data.
var completionFormats = []string{"2006-01", "2006-01-02"}

func ValidateEducation(e Education, now time.Time) error {
	degree := strings.TrimSpace(e.Degree)
	if degree == "" {
		return errors.New("el título/certificación es requerido")
	}
	institution := strings.TrimSpace(e.Institution)
	if institution == "" {
		return errors.New("la institución es requerida")
	}
	if len([]rune(degree)) < 3 {
		return errors.New("el título debe tener al menos 3 caracteres")
	}
	if len([]rune(institution)) < 3 {
		return errors.New("la institución debe tener al menos 3 caracteres")
	}
	if len([]rune(degree)) > 150 {
		return errors.New("el título no puede exceder 150 caracteres")
	}
	if len([]rune(institution)) > 150 {
		return errors.New("la institución no puede exceder 150 caracteres")
	}

	if !e.IsExpected {
		if e.CompletionDate == "" {
			return errors.New("la fecha de finalización es requerida si no está en curso")
		}
		for _, layout := range completionFormats {
			if t, err := time.Parse(layout, e.CompletionDate); err == nil {
				if t.After(now) {
					return errors.New("la fecha de finalización no puede ser en el futuro")
				}
				break
			}
		}
	}

	if desc := strings.TrimSpace(e.Description); desc != "" {
		if n := len([]rune(desc)); n < 10 {
			return errors.New("la descripción debe tener al menos 10 caracteres")
		} else if n > 300 {
			return errors.New("la descripción no puede exceder 300 caracteres")
		}
	}

	for _, h := range FilterBlank(e.Highlights) {
		if n := len([]rune(strings.TrimSpace(h))); n < 5 {
			return errors.New("cada punto destacado debe tener al menos 5 caracteres")
		} else if n > 150 {
			return errors.New("cada punto destacado no puede exceder 150 caracteres")
		}
	}
	return nil
}

// FilterBlank drops empty and whitespace-only strings, preserving order.
func FilterBlank(ss []string) []string {
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}
