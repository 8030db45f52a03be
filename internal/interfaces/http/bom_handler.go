package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Hakan0032/modern-stock-management-sub000/internal/application/bom"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/application/dto"
	"github.com/Hakan0032/modern-stock-management-sub000/internal/domain"
)

// BOMHandler maneja el Bill of Materials de cada máquina (protegido).
type BOMHandler struct {
	uc *bom.BOMUseCase
}

// NewBOMHandler construye el handler.
func NewBOMHandler(uc *bom.BOMUseCase) *BOMHandler {
	return &BOMHandler{uc: uc}
}

// GetBOM godoc
// @Summary      BOM de una máquina
// @Tags         bom
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la máquina"
// @Success      200  {object}  dto.BOMResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/machines/{id}/bom [get]
func (h *BOMHandler) GetBOM(c *fiber.Ctx) error {
	machineID := c.Params("id")
	out, err := h.uc.GetBOM(machineID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "máquina no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AddItem godoc
// @Summary      Agregar línea al BOM
// @Description  Rechaza el par (máquina, material) duplicado con 400.
// @Tags         bom
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID de la máquina"
// @Param        body  body  dto.AddBOMItemRequest  true  "material_id, quantity, unit_price opcional"
// @Success      201   {object}  dto.BOMItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/machines/{id}/bom [post]
func (h *BOMHandler) AddItem(c *fiber.Ctx) error {
	machineID := c.Params("id")
	var in dto.AddBOMItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.AddItem(machineID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "material_id y quantity > 0 son requeridos"})
		}
		if errors.Is(err, domain.ErrDuplicateBOMEntry) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DUPLICATE_BOM_ENTRY", Message: "el material ya está en el BOM de la máquina"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "máquina o material no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateItem godoc
// @Summary      Actualizar línea del BOM
// @Tags         bom
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id      path  string                    true  "ID de la máquina"
// @Param        itemId  path  string                    true  "ID de la línea"
// @Param        body    body  dto.UpdateBOMItemRequest  true  "quantity y/o unit_price"
// @Success      200     {object}  dto.BOMItemResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/machines/{id}/bom/{itemId} [put]
func (h *BOMHandler) UpdateItem(c *fiber.Ctx) error {
	machineID := c.Params("id")
	itemID := c.Params("itemId")
	var in dto.UpdateBOMItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateItem(machineID, itemID, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity debe ser > 0"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "línea de BOM no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// RemoveItem godoc
// @Summary      Eliminar línea del BOM
// @Tags         bom
// @Security     Bearer
// @Produce      json
// @Param        id      path  string  true  "ID de la máquina"
// @Param        itemId  path  string  true  "ID de la línea"
// @Success      204     "Sin contenido"
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/machines/{id}/bom/{itemId} [delete]
func (h *BOMHandler) RemoveItem(c *fiber.Ctx) error {
	machineID := c.Params("id")
	itemID := c.Params("itemId")
	if err := h.uc.RemoveItem(machineID, itemID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "línea de BOM no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
