// Package http is the presentation adapter: a local fiber surface exposing
// the store's observable state, the wizard's navigation and the export
// paths. It holds no state of its own.
package http

import (
	"context"
	"fmt"

	"cv-builder/internal/adapter/storage"
	"cv-builder/internal/model"
	"cv-builder/internal/render"
	"cv-builder/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// Renderer encodes rendered HTML into a PDF byte stream.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

type Handler struct {
	store    *usecase.Store
	wizard   *usecase.Wizard
	adapter  *storage.Adapter
	renderer Renderer
	log      zerolog.Logger
}

func NewHandler(store *usecase.Store, wizard *usecase.Wizard, adapter *storage.Adapter, renderer Renderer, log zerolog.Logger) *Handler {
	return &Handler{
		store:    store,
		wizard:   wizard,
		adapter:  adapter,
		renderer: renderer,
		log:      log.With().Str("component", "http").Logger(),
	}
}

func (h *Handler) Register(app *fiber.App) {
	app.Get("/cv", h.GetState)
	app.Put("/cv/personal-info", h.PutPersonalInfo)
	app.Put("/cv/summary", h.PutSummary)

	app.Put("/cv/skills", h.PutSkills)
	app.Post("/cv/skills", h.PostSkill)
	app.Patch("/cv/skills/:id", h.PatchSkill)
	app.Delete("/cv/skills/:id", h.DeleteSkill)

	app.Put("/cv/experiences", h.PutExperiences)
	app.Post("/cv/experiences", h.PostExperience)
	app.Patch("/cv/experiences/:id", h.PatchExperience)
	app.Delete("/cv/experiences/:id", h.DeleteExperience)

	app.Put("/cv/education", h.PutEducation)
	app.Post("/cv/education", h.PostEducation)
	app.Patch("/cv/education/:id", h.PatchEducation)
	app.Delete("/cv/education/:id", h.DeleteEducation)

	app.Post("/wizard/next", h.PostNext)
	app.Post("/wizard/prev", h.PostPrev)
	app.Put("/wizard/step", h.PutStep)

	app.Post("/cv/reset", h.PostReset)
	app.Post("/cv/sample", h.PostSample)
	app.Get("/cv/export", h.GetExport)
	app.Post("/cv/import", h.PostImport)
	app.Post("/cv/pdf", h.PostPDF)

	app.Get("/storage/info", h.GetStorageInfo)
	app.Post("/storage/flush", h.PostFlush)
}

func (h *Handler) GetState(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"cvData":      h.store.Document(),
		"currentStep": h.store.Step(),
		"restored":    h.store.Restored(),
	})
}

func (h *Handler) PutPersonalInfo(c *fiber.Ctx) error {
	var p model.PersonalInfo
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if err := model.ValidatePersonalInfo(p); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	h.store.SetPersonalInfo(p)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) PutSummary(c *fiber.Ctx) error {
	var s model.ProfessionalSummary
	if err := c.BodyParser(&s); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if err := model.ValidateSummary(s); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	h.store.SetSummary(s)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) PutSkills(c *fiber.Ctx) error {
	var skills []model.Skill
	if err := c.BodyParser(&skills); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	h.store.SetSkills(skills)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) PostSkill(c *fiber.Ctx) error {
	var sk model.Skill
	if err := c.BodyParser(&sk); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	added, err := h.store.AddSkill(sk)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(added)
}

func (h *Handler) PatchSkill(c *fiber.Ctx) error {
	var p usecase.SkillPatch
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	h.store.UpdateSkill(c.Params("id"), p)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) DeleteSkill(c *fiber.Ctx) error {
	h.store.RemoveSkill(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) PutExperiences(c *fiber.Ctx) error {
	var exps []model.Experience
	if err := c.BodyParser(&exps); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	h.store.SetExperiences(exps)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) PostExperience(c *fiber.Ctx) error {
	var e model.Experience
	if err := c.BodyParser(&e); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	added, err := h.store.AddExperience(e)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(added)
}

func (h *Handler) PatchExperience(c *fiber.Ctx) error {
	var p usecase.ExperiencePatch
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	h.store.UpdateExperience(c.Params("id"), p)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) DeleteExperience(c *fiber.Ctx) error {
	h.store.RemoveExperience(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) PutEducation(c *fiber.Ctx) error {
	var edu []model.Education
	if err := c.BodyParser(&edu); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	h.store.SetEducation(edu)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) PostEducation(c *fiber.Ctx) error {
	var e model.Education
	if err := c.BodyParser(&e); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	added, err := h.store.AddEducation(e)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(added)
}

func (h *Handler) PatchEducation(c *fiber.Ctx) error {
	var p usecase.EducationPatch
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	h.store.UpdateEducation(c.Params("id"), p)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) DeleteEducation(c *fiber.Ctx) error {
	h.store.RemoveEducation(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) PostNext(c *fiber.Ctx) error {
	if err := h.wizard.Next(); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"currentStep": h.store.Step()})
}

func (h *Handler) PostPrev(c *fiber.Ctx) error {
	h.wizard.Prev()
	return c.JSON(fiber.Map{"currentStep": h.store.Step()})
}

func (h *Handler) PutStep(c *fiber.Ctx) error {
	var req struct {
		Step int `json:"step"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	h.wizard.Goto(req.Step)
	return c.JSON(fiber.Map{"currentStep": h.store.Step()})
}

func (h *Handler) PostReset(c *fiber.Ctx) error {
	h.store.Reset()
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) PostSample(c *fiber.Ctx) error {
	usecase.LoadSample(h.store)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) GetExport(c *fiber.Ctx) error {
	b, err := storage.ExportText(h.store.Document())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "export failed"})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="cv-builder-export.json"`)
	return c.Send(b)
}

func (h *Handler) PostImport(c *fiber.Ctx) error {
	doc, err := storage.ImportText(c.Body())
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}
	h.store.SetDocument(doc)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) GetStorageInfo(c *fiber.Ctx) error {
	return c.JSON(h.adapter.StoredInfo())
}

// PostFlush writes the current state immediately, bypassing the debounce.
// Meant for the client to call before navigating away.
func (h *Handler) PostFlush(c *fiber.Ctx) error {
	h.adapter.SaveNow(h.store.Document(), h.store.Step())
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) PostPDF(c *fiber.Ctx) error {
	if !h.wizard.ExportAllowed() {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": usecase.ExportReason()})
	}

	tpl := render.Template(c.Query("template", string(render.TemplateClassic)))
	doc := h.store.Document()

	html, err := render.HTML(doc, tpl)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	pdf, err := h.renderer.RenderHTMLToPDF(c.Context(), html)
	if err != nil {
		h.log.Error().Err(err).Msg("pdf generation failed")
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "no se pudo generar el archivo, inténtalo de nuevo"})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", render.Filename(doc)))
	return c.Send(pdf)
}
