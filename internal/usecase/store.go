package usecase

import (
	"fmt"
	"sync"
	"time"

	"cv-builder/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Snapshots is the slice of the persistence adapter the store needs for
// restore and reset. The debounced save path is not here: the composition
// root subscribes it, so transitions stay testable without a timer.
type Snapshots interface {
	Load() (model.CVDocument, int, bool)
	Clear()
}

// Subscriber receives a copy of the document and the current step after
// every mutation.
type Subscriber func(doc model.CVDocument, step int)

// Store is the single writer of the CV document. It is constructed
// explicitly and handed to whichever layer needs it; there is no
// package-level instance.
type Store struct {
	snapshots Snapshots
	log       zerolog.Logger

	mu       sync.Mutex
	doc      model.CVDocument
	step     int
	restored bool
	subs     []Subscriber
}

func NewStore(snapshots Snapshots, log zerolog.Logger) *Store {
	return &Store{
		snapshots: snapshots,
		log:       log.With().Str("component", "store").Logger(),
		doc:       model.EmptyDocument(),
	}
}

// Subscribe registers fn to be called after every mutation.
func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// commit applies a mutation under the lock and notifies subscribers with
// copies, so no caller ever observes a partial update. A mutation that
// returns false was refused and produces no notification.
func (s *Store) commit(mutate func() bool) {
	s.mu.Lock()
	if !mutate() {
		s.mu.Unlock()
		return
	}
	doc := s.doc.Clone()
	step := s.step
	subs := append([]Subscriber(nil), s.subs...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(doc, step)
	}
}

// Document returns a deep copy of the current document.
func (s *Store) Document() model.CVDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

func (s *Store) Step() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// Restored reports whether the current document came from a stored
// snapshot rather than the empty default.
func (s *Store) Restored() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.restored
}

func (s *Store) SetPersonalInfo(p model.PersonalInfo) {
	s.commit(func() bool { s.doc.PersonalInfo = p; return true })
}

func (s *Store) SetSummary(sum model.ProfessionalSummary) {
	s.commit(func() bool { s.doc.ProfessionalSummary = sum; return true })
}

// SetDocument replaces the whole document, used when importing backup text
// or loading sample data.
func (s *Store) SetDocument(doc model.CVDocument) {
	s.commit(func() bool { s.doc = doc.Clone(); return true })
}

func (s *Store) SetSkills(skills []model.Skill) {
	s.commit(func() bool { s.doc.Skills = append([]model.Skill{}, skills...); return true })
}

func (s *Store) SetExperiences(exps []model.Experience) {
	s.commit(func() bool { s.doc.Experiences = append([]model.Experience{}, exps...); return true })
}

func (s *Store) SetEducation(edu []model.Education) {
	s.commit(func() bool { s.doc.Education = append([]model.Education{}, edu...); return true })
}

// AddSkill validates the entry, assigns a fresh identifier and an order
// index equal to the current list length, and appends it. The list is
// capped at MaxSkills; attempts beyond the cap are refused.
func (s *Store) AddSkill(sk model.Skill) (model.Skill, error) {
	if err := model.ValidateSkill(sk); err != nil {
		return model.Skill{}, err
	}
	var added model.Skill
	var capErr error
	s.commit(func() bool {
		if len(s.doc.Skills) >= model.MaxSkills {
			capErr = fmt.Errorf("no puedes agregar más de %d habilidades", model.MaxSkills)
			return false
		}
		sk.ID = uuid.NewString()
		sk.OrderIndex = len(s.doc.Skills)
		s.doc.Skills = append(s.doc.Skills, sk)
		added = sk
		return true
	})
	if capErr != nil {
		return model.Skill{}, capErr
	}
	return added, nil
}

func (s *Store) AddExperience(e model.Experience) (model.Experience, error) {
	if err := model.ValidateExperience(e); err != nil {
		return model.Experience{}, err
	}
	e.Achievements = model.FilterBlank(e.Achievements)
	var added model.Experience
	s.commit(func() bool {
		e.ID = uuid.NewString()
		e.OrderIndex = len(s.doc.Experiences)
		s.doc.Experiences = append(s.doc.Experiences, e)
		added = e
		return true
	})
	return added, nil
}

func (s *Store) AddEducation(e model.Education) (model.Education, error) {
	if err := model.ValidateEducation(e, time.Now()); err != nil {
		return model.Education{}, err
	}
	e.Highlights = model.FilterBlank(e.Highlights)
	var added model.Education
	s.commit(func() bool {
		e.ID = uuid.NewString()
		e.OrderIndex = len(s.doc.Education)
		s.doc.Education = append(s.doc.Education, e)
		added = e
		return true
	})
	return added, nil
}

// Remove operations filter by identifier and are silent no-ops when the
// identifier is not present. Order indexes of the survivors are left
// as assigned, so removal can leave gaps.

func (s *Store) RemoveSkill(id string) {
	s.commit(func() bool {
		out := s.doc.Skills[:0]
		for _, sk := range s.doc.Skills {
			if sk.ID != id {
				out = append(out, sk)
			}
		}
		s.doc.Skills = out
		return true
	})
}

func (s *Store) RemoveExperience(id string) {
	s.commit(func() bool {
		out := s.doc.Experiences[:0]
		for _, e := range s.doc.Experiences {
			if e.ID != id {
				out = append(out, e)
			}
		}
		s.doc.Experiences = out
		return true
	})
}

func (s *Store) RemoveEducation(id string) {
	s.commit(func() bool {
		out := s.doc.Education[:0]
		for _, e := range s.doc.Education {
			if e.ID != id {
				out = append(out, e)
			}
		}
		s.doc.Education = out
		return true
	})
}

// Patch types merge non-nil fields into an existing entry.

type SkillPatch struct {
	Name       *string `json:"name"`
	OrderIndex *int    `json:"orderIndex"`
}

type ExperiencePatch struct {
	JobTitle     *string   `json:"jobTitle"`
	Company      *string   `json:"company"`
	StartDate    *string   `json:"startDate"`
	EndDate      *string   `json:"endDate"`
	IsCurrent    *bool     `json:"isCurrent"`
	Description  *string   `json:"description"`
	Achievements *[]string `json:"achievements"`
	OrderIndex   *int      `json:"orderIndex"`
}

type EducationPatch struct {
	Degree         *string   `json:"degree"`
	Institution    *string   `json:"institution"`
	CompletionDate *string   `json:"completionDate"`
	IsExpected     *bool     `json:"isExpected"`
	Description    *string   `json:"description"`
	Highlights     *[]string `json:"highlights"`
	OrderIndex     *int      `json:"orderIndex"`
}

func (s *Store) UpdateSkill(id string, p SkillPatch) {
	s.commit(func() bool {
		for i := range s.doc.Skills {
			if s.doc.Skills[i].ID != id {
				continue
			}
			if p.Name != nil {
				s.doc.Skills[i].Name = *p.Name
			}
			if p.OrderIndex != nil {
				s.doc.Skills[i].OrderIndex = *p.OrderIndex
			}
			return true
		}
		return false
	})
}

func (s *Store) UpdateExperience(id string, p ExperiencePatch) {
	s.commit(func() bool {
		for i := range s.doc.Experiences {
			if s.doc.Experiences[i].ID != id {
				continue
			}
			e := &s.doc.Experiences[i]
			if p.JobTitle != nil {
				e.JobTitle = *p.JobTitle
			}
			if p.Company != nil {
				e.Company = *p.Company
			}
			if p.StartDate != nil {
				e.StartDate = *p.StartDate
			}
			if p.EndDate != nil {
				e.EndDate = *p.EndDate
			}
			if p.IsCurrent != nil {
				e.IsCurrent = *p.IsCurrent
			}
			if p.Description != nil {
				e.Description = *p.Description
			}
			if p.Achievements != nil {
				e.Achievements = model.FilterBlank(*p.Achievements)
			}
			if p.OrderIndex != nil {
				e.OrderIndex = *p.OrderIndex
			}
			return true
		}
		return false
	})
}

func (s *Store) UpdateEducation(id string, p EducationPatch) {
	s.commit(func() bool {
		for i := range s.doc.Education {
			if s.doc.Education[i].ID != id {
				continue
			}
			e := &s.doc.Education[i]
			if p.Degree != nil {
				e.Degree = *p.Degree
			}
			if p.Institution != nil {
				e.Institution = *p.Institution
			}
			if p.CompletionDate != nil {
				e.CompletionDate = *p.CompletionDate
			}
			if p.IsExpected != nil {
				e.IsExpected = *p.IsExpected
			}
			if p.Description != nil {
				e.Description = *p.Description
			}
			if p.Highlights != nil {
				e.Highlights = model.FilterBlank(*p.Highlights)
			}
			if p.OrderIndex != nil {
				e.OrderIndex = *p.OrderIndex
			}
			return true
		}
		return false
	})
}

// Step navigation clamps into [0, StepEducation] and notifies subscribers
// so the new step is captured alongside the document.

func (s *Store) SetStep(step int) {
	s.commit(func() bool { s.step = clampStep(step); return true })
}

func (s *Store) NextStep() {
	s.commit(func() bool { s.step = clampStep(s.step + 1); return true })
}

func (s *Store) PrevStep() {
	s.commit(func() bool { s.step = clampStep(s.step - 1); return true })
}

// Reset replaces the document with the empty default, moves back to the
// first step and erases the durable snapshot. No save is scheduled.
func (s *Store) Reset() {
	s.mu.Lock()
	s.doc = model.EmptyDocument()
	s.step = 0
	s.restored = false
	s.mu.Unlock()

	if s.snapshots != nil {
		s.snapshots.Clear()
	}
	s.log.Info().Msg("document reset, stored snapshot cleared")
}

// LoadStored restores the document and step from the persistence adapter.
// When no valid snapshot exists the in-memory state is left untouched.
func (s *Store) LoadStored() bool {
	if s.snapshots == nil {
		return false
	}
	doc, step, ok := s.snapshots.Load()
	if !ok {
		return false
	}

	s.mu.Lock()
	s.doc = doc
	s.step = clampStep(step)
	s.restored = true
	s.mu.Unlock()

	s.log.Info().Int("step", step).Msg("document restored from storage")
	return true
}
