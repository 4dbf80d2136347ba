package usecase

import "cv-builder/internal/model"

// SampleDocument returns a filled-in example CV used to demo the builder.
func SampleDocument() model.CVDocument {
	return model.CVDocument{
		PersonalInfo: model.PersonalInfo{
			FullName:          "Ana García López",
			Email:             "ana.garcia@email.com",
			Phone:             "+34 612 345 678",
			LinkedIn:          "https://linkedin.com/in/anagarcia",
			ProfessionalTitle: "Desarrolladora Frontend Senior",
		},
		ProfessionalSummary: model.ProfessionalSummary{
			Summary: "Desarrolladora frontend con más de 5 años de experiencia en React, TypeScript y tecnologías web modernas. Especializada en crear interfaces de usuario intuitivas y accesibles, con un fuerte enfoque en la experiencia del usuario y el rendimiento de las aplicaciones.",
		},
		Skills: []model.Skill{
			{ID: "1", Name: "React", OrderIndex: 0},
			{ID: "2", Name: "TypeScript", OrderIndex: 1},
			{ID: "3", Name: "JavaScript", OrderIndex: 2},
			{ID: "4", Name: "HTML5", OrderIndex: 3},
			{ID: "5", Name: "CSS3", OrderIndex: 4},
			{ID: "6", Name: "Next.js", OrderIndex: 5},
			{ID: "7", Name: "Node.js", OrderIndex: 6},
			{ID: "8", Name: "Git", OrderIndex: 7},
		},
		Experiences: []model.Experience{
			{
				ID:          "1",
				JobTitle:    "Desarrolladora Frontend Senior",
				Company:     "TechCorp Solutions",
				StartDate:   "Enero 2022",
				IsCurrent:   true,
				Description: "Lidero el desarrollo de aplicaciones web complejas utilizando React y TypeScript. Trabajo en estrecha colaboración con diseñadores y desarrolladores backend para crear experiencias de usuario excepcionales.",
				Achievements: []string{
					"Reduje el tiempo de carga de la aplicación principal en un 40%",
					"Implementé un sistema de componentes reutilizables que mejoró la consistencia del diseño",
					"Mentoré a 3 desarrolladores junior en mejores prácticas de React",
				},
				OrderIndex: 0,
			},
			{
				ID:          "2",
				JobTitle:    "Desarrolladora Frontend",
				Company:     "Digital Innovations",
				StartDate:   "Marzo 2020",
				EndDate:     "Diciembre 2021",
				IsCurrent:   false,
				Description: "Desarrollé y mantuve aplicaciones web responsivas utilizando React y JavaScript. Colaboré en proyectos de e-commerce y aplicaciones internas.",
				Achievements: []string{
					"Desarrollé 5 aplicaciones web completas desde cero",
					"Mejoré la accesibilidad de todas las aplicaciones siguiendo estándares WCAG",
					"Implementé testing automatizado con Jest y React Testing Library",
				},
				OrderIndex: 1,
			},
		},
		Education: []model.Education{
			{
				ID:             "1",
				Degree:         "Ingeniería Informática",
				Institution:    "Universidad Politécnica de Madrid",
				CompletionDate: "2019-06",
				IsExpected:     false,
				Description:    "Especialización en desarrollo de software y tecnologías web. Proyecto final sobre aplicaciones web progresivas.",
				Highlights: []string{
					"Matrícula de honor en el proyecto final",
					"Delegada de curso durante dos años",
				},
				OrderIndex: 0,
			},
		},
	}
}

// LoadSample pushes the sample document into the store through the bulk
// setters.
func LoadSample(store *Store) {
	sample := SampleDocument()
	store.SetPersonalInfo(sample.PersonalInfo)
	store.SetSummary(sample.ProfessionalSummary)
	store.SetSkills(sample.Skills)
	store.SetExperiences(sample.Experiences)
	store.SetEducation(sample.Education)
}
