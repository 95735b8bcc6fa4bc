package server

import (
	"bytes"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"noteboard/internal/notes"
	"noteboard/internal/render"
	"noteboard/internal/store"
)

type noteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (s *FiberServer) RegisterFiberRoutes() {
	s.App.Get("/", s.home)

	s.App.Get("/notes", s.getAllNotes)
	s.App.Post("/notes", s.createNote)
	s.App.Put("/notes/:id", s.updateNote)
	s.App.Delete("/notes/:id", s.deleteNote)
}

func (s *FiberServer) home(c *fiber.Ctx) error {
	list, err := s.store.List(c.UserContext())
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := render.WriteHTML(&buf, render.Render(list)); err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

func (s *FiberServer) getAllNotes(c *fiber.Ctx) error {
	list, err := s.store.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(list)
}

func (s *FiberServer) createNote(c *fiber.Ctx) error {
	var req noteRequest
	if err := c.BodyParser(&req); err != nil || req.Title == nil || req.Content == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title and content are required",
		})
	}

	title := strings.TrimSpace(*req.Title)
	content := strings.TrimSpace(*req.Content)
	if !notes.Valid(title, content) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title and content cannot be empty",
		})
	}

	created, err := s.store.Create(c.UserContext(), title, content)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (s *FiberServer) updateNote(c *fiber.Ctx) error {
	var req noteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	var title, content string
	if req.Title != nil {
		title = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		content = strings.TrimSpace(*req.Content)
	}

	updated, err := s.store.Update(c.UserContext(), notes.ID(c.Params("id")), title, content)
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Note not found"})
	}
	if err != nil {
		return err
	}
	return c.JSON(updated)
}

func (s *FiberServer) deleteNote(c *fiber.Ctx) error {
	deleted, err := s.store.Delete(c.UserContext(), notes.ID(c.Params("id")))
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Note not found"})
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message":      "Note deleted successfully",
		"deleted_note": deleted,
	})
}
