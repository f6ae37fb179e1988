package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"crmapi/internal/model"
	"crmapi/internal/service"
)

// ListDocuments returns document metadata, newest first, optionally
// filtered to one client via ?client_id=.
//
// @Summary List documents
// @Produce json
// @Param client_id query int false "Restrict to one client"
// @Success 200 {object} map[string]any
// @Router /documents [get]
func ListDocuments(log *zap.Logger, svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var clientID *int64
		if raw := c.Query("client_id"); raw != "" {
			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return writeError(c, fiber.StatusBadRequest, "Invalid client id")
			}
			clientID = &id
		}
		docs, err := svc.List(c.UserContext(), clientID)
		if err != nil {
			log.Error("list documents", zap.Error(err))
			return writeError(c, fiber.StatusInternalServerError, "Failed to fetch documents")
		}
		return c.JSON(fiber.Map{"documents": docs})
	}
}

// GetDocument returns one document with its owning client's name attached.
//
// @Summary Get a document
// @Produce json
// @Param id path int true "Document ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} errorPayload
// @Router /documents/{id} [get]
func GetDocument(log *zap.Logger, svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid document id")
		}
		doc, err := svc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrDocumentNotFound) {
				return writeError(c, fiber.StatusNotFound, "Document not found")
			}
			log.Error("get document", zap.Int64("document_id", id), zap.Error(err))
			return writeError(c, fiber.StatusInternalServerError, "Failed to fetch document")
		}
		return c.JSON(fiber.Map{"document": doc})
	}
}

// CreateDocument inserts new document metadata for a client.
//
// @Summary Create a document
// @Accept json
// @Produce json
// @Param document body model.DocumentInput true "Document fields"
// @Success 201 {object} map[string]any
// @Failure 400 {object} errorPayload
// @Router /documents [post]
func CreateDocument(log *zap.Logger, svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.DocumentInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid request body")
		}
		doc, err := svc.Create(c.UserContext(), &in)
		if err != nil {
			if errors.Is(err, service.ErrDocumentFieldsRequired) {
				return writeError(c, fiber.StatusBadRequest, "Client ID, document name, and file URL are required")
			}
			log.Error("create document", zap.Error(err))
			return writeError(c, fiber.StatusInternalServerError, "Failed to create document")
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message":  "Document created successfully",
			"document": doc,
		})
	}
}

// UpdateDocument applies keep-if-absent semantics: only the supplied fields
// replace the stored values.
//
// @Summary Update a document
// @Accept json
// @Produce json
// @Param id path int true "Document ID"
// @Param document body model.DocumentUpdate true "Fields to replace"
// @Success 200 {object} map[string]any
// @Failure 404 {object} errorPayload
// @Router /documents/{id} [put]
func UpdateDocument(log *zap.Logger, svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid document id")
		}
		var in model.DocumentUpdate
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid request body")
		}
		doc, err := svc.Update(c.UserContext(), id, &in)
		if err != nil {
			if errors.Is(err, service.ErrDocumentNotFound) {
				return writeError(c, fiber.StatusNotFound, "Document not found")
			}
			log.Error("update document", zap.Int64("document_id", id), zap.Error(err))
			return writeError(c, fiber.StatusInternalServerError, "Failed to update document")
		}
		return c.JSON(fiber.Map{
			"message":  "Document updated successfully",
			"document": doc,
		})
	}
}

// DeleteDocument removes one document row.
//
// @Summary Delete a document
// @Produce json
// @Param id path int true "Document ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} errorPayload
// @Router /documents/{id} [delete]
func DeleteDocument(log *zap.Logger, svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid document id")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			if errors.Is(err, service.ErrDocumentNotFound) {
				return writeError(c, fiber.StatusNotFound, "Document not found")
			}
			log.Error("delete document", zap.Int64("document_id", id), zap.Error(err))
			return writeError(c, fiber.StatusInternalServerError, "Failed to delete document")
		}
		return c.JSON(fiber.Map{"message": "Document deleted successfully"})
	}
}
