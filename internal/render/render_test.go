package render

import (
	"testing"

	"cv-builder/internal/model"

	"github.com/stretchr/testify/require"
)

func renderDoc() model.CVDocument {
	doc := model.EmptyDocument()
	doc.PersonalInfo = model.PersonalInfo{
		FullName:          "Ana García López",
		Email:             "ana@example.com",
		Phone:             "+34 612 345 678",
		LinkedIn:          "https://linkedin.com/in/anagarcia",
		ProfessionalTitle: "Desarrolladora Frontend",
	}
	doc.ProfessionalSummary.Summary = "Perfil frontend con foco en accesibilidad. Experiencia liderando equipos pequeños."
	doc.Skills = []model.Skill{
		{ID: "1", Name: "React", OrderIndex: 0},
		{ID: "2", Name: "TypeScript", OrderIndex: 1},
	}
	doc.Experiences = []model.Experience{{
		ID:           "1",
		JobTitle:     "Desarrolladora Senior",
		Company:      "TechCorp",
		StartDate:    "Enero 2022",
		IsCurrent:    true,
		Description:  "Lidero el equipo de frontend.",
		Achievements: []string{"Reduje el tiempo de carga en un 40%"},
	}}
	doc.Education = []model.Education{{
		ID:             "1",
		Degree:         "Ingeniería Informática",
		Institution:    "UPM",
		CompletionDate: "2019-06",
		Highlights:     []string{"Matrícula de honor"},
	}}
	return doc
}

func TestHTML_ClassicRendersAllSections(t *testing.T) {
	html, err := HTML(renderDoc(), TemplateClassic)
	require.NoError(t, err)

	require.Contains(t, html, "Ana García López")
	require.Contains(t, html, "Resumen Profesional")
	require.Contains(t, html, "React")
	require.Contains(t, html, "TechCorp")
	require.Contains(t, html, "Reduje el tiempo de carga en un 40%")
	require.Contains(t, html, "Matrícula de honor")
}

func TestHTML_CurrentExperienceRendersPresente(t *testing.T) {
	html, err := HTML(renderDoc(), TemplateClassic)
	require.NoError(t, err)
	require.Contains(t, html, "Enero 2022 - Presente")
}

func TestHTML_EndedExperienceRendersRange(t *testing.T) {
	doc := renderDoc()
	doc.Experiences[0].IsCurrent = false
	doc.Experiences[0].EndDate = "Diciembre 2023"

	html, err := HTML(doc, TemplateClassic)
	require.NoError(t, err)
	require.Contains(t, html, "Enero 2022 - Diciembre 2023")
	require.NotContains(t, html, "Presente")
}

func TestHTML_EmptySectionsOmitted(t *testing.T) {
	doc := renderDoc()
	doc.Experiences = nil
	doc.Skills = nil

	for _, tpl := range []Template{TemplateClassic, TemplateSimple} {
		html, err := HTML(doc, tpl)
		require.NoError(t, err)
		require.NotContains(t, html, ">Experiencia<")
		require.NotContains(t, html, ">Habilidades<")
		require.Contains(t, html, "Ingeniería Informática")
	}
}

func TestHTML_ExpectedEducation(t *testing.T) {
	doc := renderDoc()
	doc.Education[0].IsExpected = true
	doc.Education[0].CompletionDate = ""

	html, err := HTML(doc, TemplateClassic)
	require.NoError(t, err)
	require.Contains(t, html, "En curso")
}

func TestHTML_SimpleOmitsBullets(t *testing.T) {
	html, err := HTML(renderDoc(), TemplateSimple)
	require.NoError(t, err)
	require.Contains(t, html, "TechCorp")
	require.NotContains(t, html, "Reduje el tiempo de carga en un 40%")
}

func TestHTML_UnknownTemplate(t *testing.T) {
	_, err := HTML(renderDoc(), Template("fancy"))
	require.Error(t, err)
}

func TestFilename(t *testing.T) {
	doc := renderDoc()
	require.Equal(t, "Ana García López.pdf", Filename(doc))

	doc.PersonalInfo.FullName = "   "
	require.Equal(t, "CV.pdf", Filename(doc))
}
