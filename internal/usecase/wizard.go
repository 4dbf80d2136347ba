package usecase

import (
	"errors"
	"strings"

	"cv-builder/internal/model"
)

// The five ordered wizard steps.
const (
	StepPersonalInfo = iota
	StepSummary
	StepSkills
	StepExperience
	StepEducation
)

const lastStep = StepEducation

func clampStep(step int) int {
	if step < 0 {
		return 0
	}
	if step > lastStep {
		return lastStep
	}
	return step
}

// StepValid reports whether the document satisfies the predicate for the
// given step. It is a pure function of its arguments and is recomputed
// fresh on every evaluation.
func StepValid(doc model.CVDocument, step int) bool {
	switch step {
	case StepPersonalInfo:
		p := doc.PersonalInfo
		return strings.TrimSpace(p.FullName) != "" &&
			strings.TrimSpace(p.Email) != "" &&
			strings.TrimSpace(p.Phone) != "" &&
			strings.TrimSpace(p.ProfessionalTitle) != ""
	case StepSummary:
		return len([]rune(strings.TrimSpace(doc.ProfessionalSummary.Summary))) >= 50
	case StepSkills:
		return len(doc.Skills) > 0
	case StepExperience:
		return len(doc.Experiences) > 0
	case StepEducation:
		return len(doc.Education) > 0
	}
	return false
}

var stepReasons = [...]string{
	StepPersonalInfo: "completa tu información personal antes de continuar",
	StepSummary:      "el resumen debe tener al menos 50 caracteres",
	StepSkills:       "agrega al menos una habilidad",
	StepExperience:   "agrega al menos una experiencia laboral",
	StepEducation:    "agrega al menos una formación académica",
}

// Wizard gates navigation over the store's five ordered steps. There is no
// terminal state; completion is signaled by a successful export.
type Wizard struct {
	store *Store
}

func NewWizard(store *Store) *Wizard {
	return &Wizard{store: store}
}

// Next advances one step. It is refused, with the reason the caller should
// surface, while the active step's predicate fails.
func (w *Wizard) Next() error {
	step := w.store.Step()
	if !StepValid(w.store.Document(), step) {
		return errors.New(stepReasons[clampStep(step)])
	}
	w.store.NextStep()
	return nil
}

// Prev retreats one step and is always permitted.
func (w *Wizard) Prev() {
	w.store.PrevStep()
}

// Goto jumps to a step, clamped into range. Used by restore.
func (w *Wizard) Goto(step int) {
	w.store.SetStep(step)
}

// ExportAllowed gates the export action on the final step's predicate.
func (w *Wizard) ExportAllowed() bool {
	return StepValid(w.store.Document(), StepEducation)
}

// ExportReason is the refusal message when ExportAllowed is false.
func ExportReason() string {
	return stepReasons[StepEducation]
}
