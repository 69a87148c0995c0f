package http

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"resume-builder/internal/render"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/apperror"
)

type Handler struct {
	accounts  *usecase.AccountService
	documents *usecase.DocumentService
	exporter  *usecase.Exporter
	summaries usecase.SummaryGenerator
	validate  *validator.Validate
	log       *zap.Logger
}

func NewHandler(accounts *usecase.AccountService, documents *usecase.DocumentService,
	exporter *usecase.Exporter, summaries usecase.SummaryGenerator, log *zap.Logger) *Handler {
	return &Handler{
		accounts:  accounts,
		documents: documents,
		exporter:  exporter,
		summaries: summaries,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		log:       log,
	}
}

// Register mounts all routes on the app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")
	api.Post("/auth/register", h.RegisterUser)
	api.Post("/auth/login", h.Login)

	authed := api.Use(RequireAuth(h.accounts))
	authed.Get("/resumes", h.ListResumes)
	authed.Post("/resumes", h.CreateResume)
	authed.Get("/resumes/:id", h.GetResume)
	authed.Put("/resumes/:id", h.UpdateResume)
	authed.Delete("/resumes/:id", h.DeleteResume)
	authed.Post("/resumes/:id/sections/:section/entries", h.AddEntry)
	authed.Patch("/resumes/:id/sections/:section/entries/:entryID", h.UpdateEntryField)
	authed.Delete("/resumes/:id/sections/:section/entries/:entryID", h.RemoveEntry)
	authed.Get("/resumes/:id/preview", h.Preview)
	authed.Get("/resumes/:id/export", h.Export)
	authed.Post("/generate-summary", h.GenerateSummary)
}

// writeError maps the error taxonomy onto HTTP statuses. NotFound stays
// uniform for absent and foreign documents.
func (h *Handler) writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, apperror.ErrUnauthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, apperror.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resume not found"})
	case errors.Is(err, apperror.ErrPlanLimit):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, apperror.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, apperror.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		h.log.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}

func (h *Handler) docID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		// malformed ids get the same uniform not-found as absent documents
		return uuid.Nil, apperror.NotFound("resume")
	}
	return id, nil
}

type registerReq struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (h *Handler) RegisterUser(c *fiber.Ctx) error {
	var req registerReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	user, err := h.accounts.Register(c.Context(), req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	token, user, err := h.accounts.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(fiber.Map{"token": token, "user": user})
}

func (h *Handler) ListResumes(c *fiber.Ctx) error {
	docs, err := h.documents.List(c.Context(), CurrentUserID(c))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(docs)
}

type createResumeReq struct {
	Title    string          `json:"title"`
	Template string          `json:"template"`
	Data     json.RawMessage `json:"data"`
}

func (h *Handler) CreateResume(c *fiber.Ctx) error {
	var req createResumeReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	params := usecase.CreateParams{Title: req.Title, Template: req.Template}
	if len(req.Data) > 0 {
		data, err := usecase.DecodeData(req.Data)
		if err != nil {
			return h.writeError(c, err)
		}
		params.Data = data
	}
	doc, err := h.documents.Create(c.Context(), CurrentUserID(c), params)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(doc)
}

func (h *Handler) GetResume(c *fiber.Ctx) error {
	id, err := h.docID(c)
	if err != nil {
		return h.writeError(c, err)
	}
	doc, err := h.documents.Get(c.Context(), CurrentUserID(c), id)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(doc)
}

type updateResumeReq struct {
	Title    *string         `json:"title"`
	Template *string         `json:"template"`
	Data     json.RawMessage `json:"data"`
	IsPublic *bool           `json:"isPublic"`
}

func (h *Handler) UpdateResume(c *fiber.Ctx) error {
	id, err := h.docID(c)
	if err != nil {
		return h.writeError(c, err)
	}
	var req updateResumeReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	params := usecase.UpdateParams{Title: req.Title, Template: req.Template, IsPublic: req.IsPublic}
	if len(req.Data) > 0 {
		data, err := usecase.DecodeData(req.Data)
		if err != nil {
			return h.writeError(c, err)
		}
		params.Data = data
	}
	doc, err := h.documents.Update(c.Context(), CurrentUserID(c), id, params)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(doc)
}

func (h *Handler) DeleteResume(c *fiber.Ctx) error {
	id, err := h.docID(c)
	if err != nil {
		return h.writeError(c, err)
	}
	if err := h.documents.Delete(c.Context(), CurrentUserID(c), id); err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "resume deleted"})
}

func (h *Handler) AddEntry(c *fiber.Ctx) error {
	id, err := h.docID(c)
	if err != nil {
		return h.writeError(c, err)
	}
	entry, doc, err := h.documents.AddEntry(c.Context(), CurrentUserID(c), id, c.Params("section"))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"entry": entry, "resume": doc})
}

type updateEntryReq struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

func (h *Handler) UpdateEntryField(c *fiber.Ctx) error {
	id, err := h.docID(c)
	if err != nil {
		return h.writeError(c, err)
	}
	var req updateEntryReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	doc, err := h.documents.UpdateEntryField(c.Context(), CurrentUserID(c), id,
		c.Params("section"), c.Params("entryID"), req.Field, req.Value)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(doc)
}

func (h *Handler) RemoveEntry(c *fiber.Ctx) error {
	id, err := h.docID(c)
	if err != nil {
		return h.writeError(c, err)
	}
	doc, err := h.documents.RemoveEntry(c.Context(), CurrentUserID(c), id,
		c.Params("section"), c.Params("entryID"))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(doc)
}

// Preview returns the rendered HTML, the same projection the export
// pipeline feeds to the PDF engine.
func (h *Handler) Preview(c *fiber.Ctx) error {
	id, err := h.docID(c)
	if err != nil {
		return h.writeError(c, err)
	}
	doc, err := h.documents.Get(c.Context(), CurrentUserID(c), id)
	if err != nil {
		return h.writeError(c, err)
	}
	html, err := render.HTML(*doc)
	if err != nil {
		return h.writeError(c, apperror.Render(err))
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

func (h *Handler) Export(c *fiber.Ctx) error {
	id, err := h.docID(c)
	if err != nil {
		return h.writeError(c, err)
	}
	pdf, filename, err := h.exporter.Export(c.Context(), CurrentUserID(c), id)
	if err != nil {
		return h.writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

type summaryReq struct {
	Keywords string `json:"keywords"`
}

func (h *Handler) GenerateSummary(c *fiber.Ctx) error {
	var req summaryReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if strings.TrimSpace(req.Keywords) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "keywords are required"})
	}
	return c.JSON(fiber.Map{"summary": h.summaries.Generate(req.Keywords)})
}
