package controller

import (
	"notes-backend/internal/dto"
	"notes-backend/internal/pkg/identifier"
	"notes-backend/internal/pkg/serverutils"
	"notes-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
	idGenerator identifier.Generator
}

func NewNoteController(noteService service.INoteService, idGenerator identifier.Generator) INoteController {
	return &noteController{
		noteService: noteService,
		idGenerator: idGenerator,
	}
}

func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/notes")
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	res, err := c.noteService.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	id, err := c.idGenerator.Parse(ctx.Params("id"))
	if err != nil {
		return err
	}

	res, err := c.noteService.Show(ctx.Context(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrBadRequest
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	id, err := c.idGenerator.Parse(ctx.Params("id"))
	if err != nil {
		return err
	}

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.ErrBadRequest
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Update(ctx.Context(), id, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	id, err := c.idGenerator.Parse(ctx.Params("id"))
	if err != nil {
		return err
	}

	if err := c.noteService.Delete(ctx.Context(), id); err != nil {
		return err
	}

	return ctx.SendStatus(fiber.StatusNoContent)
}
