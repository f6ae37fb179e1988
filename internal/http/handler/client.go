package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"crmapi/internal/model"
	"crmapi/internal/service"
)

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

// ListClients returns all clients, newest first.
//
// @Summary List clients
// @Produce json
// @Success 200 {object} map[string]any
// @Router /clients [get]
func ListClients(log *zap.Logger, svc service.ClientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		clients, err := svc.List(c.UserContext())
		if err != nil {
			log.Error("list clients", zap.Error(err))
			return writeError(c, fiber.StatusInternalServerError, "Failed to fetch clients")
		}
		return c.JSON(fiber.Map{"clients": clients})
	}
}

// GetClient returns one client together with its documents.
//
// @Summary Get a client and its documents
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} errorPayload
// @Router /clients/{id} [get]
func GetClient(log *zap.Logger, svc service.ClientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid client id")
		}
		client, docs, err := svc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrClientNotFound) {
				return writeError(c, fiber.StatusNotFound, "Client not found")
			}
			log.Error("get client", zap.Int64("client_id", id), zap.Error(err))
			return writeError(c, fiber.StatusInternalServerError, "Failed to fetch client details")
		}
		return c.JSON(fiber.Map{"client": client, "documents": docs})
	}
}

// CreateClient inserts a new client.
//
// @Summary Create a client
// @Accept json
// @Produce json
// @Param client body model.ClientInput true "Client fields"
// @Success 201 {object} map[string]any
// @Failure 400 {object} errorPayload
// @Router /clients [post]
func CreateClient(log *zap.Logger, svc service.ClientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.ClientInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid request body")
		}
		client, err := svc.Create(c.UserContext(), &in)
		if err != nil {
			if errors.Is(err, service.ErrNameRequired) {
				return writeError(c, fiber.StatusBadRequest, "Name is required")
			}
			log.Error("create client", zap.Error(err))
			return writeError(c, fiber.StatusInternalServerError, "Failed to create client")
		}
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Client created successfully",
			"client":  client,
		})
	}
}

// UpdateClient overwrites every mutable field of a client. Fields absent
// from the body are written as NULL; this matches the update contract.
//
// @Summary Update a client
// @Accept json
// @Produce json
// @Param id path int true "Client ID"
// @Param client body model.ClientInput true "Client fields"
// @Success 200 {object} map[string]any
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /clients/{id} [put]
func UpdateClient(log *zap.Logger, svc service.ClientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid client id")
		}
		var in model.ClientInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid request body")
		}
		client, err := svc.Update(c.UserContext(), id, &in)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNameRequired):
				return writeError(c, fiber.StatusBadRequest, "Name is required")
			case errors.Is(err, service.ErrClientNotFound):
				return writeError(c, fiber.StatusNotFound, "Client not found")
			}
			log.Error("update client", zap.Int64("client_id", id), zap.Error(err))
			return writeError(c, fiber.StatusInternalServerError, "Failed to update client")
		}
		return c.JSON(fiber.Map{
			"message": "Client updated successfully",
			"client":  client,
		})
	}
}

// DeleteClient removes a client; its documents go with it via the store's
// cascade.
//
// @Summary Delete a client
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} map[string]any
// @Failure 404 {object} errorPayload
// @Router /clients/{id} [delete]
func DeleteClient(log *zap.Logger, svc service.ClientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "Invalid client id")
		}
		if err := svc.Delete(c.UserContext(), id); err != nil {
			if errors.Is(err, service.ErrClientNotFound) {
				return writeError(c, fiber.StatusNotFound, "Client not found")
			}
			log.Error("delete client", zap.Int64("client_id", id), zap.Error(err))
			return writeError(c, fiber.StatusInternalServerError, "Failed to delete client")
		}
		return c.JSON(fiber.Map{"message": "Client deleted successfully"})
	}
}
