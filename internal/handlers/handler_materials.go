package handlers

import (
	"errors"
	"net/http"

	"github.com/SscSPs/sya_logistica/internal/apperrors"
	portssvc "github.com/SscSPs/sya_logistica/internal/core/ports/services"
	"github.com/SscSPs/sya_logistica/internal/dto"
	"github.com/gin-gonic/gin"
)

type materialHandler struct {
	catalogService portssvc.CatalogSvc
}

// RegisterMaterialRoutes registers the catalog route on rg.
func RegisterMaterialRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvc) {
	h := &materialHandler{catalogService: catalogService}
	rg.GET("/materiales", h.listMaterials)
}

// listMaterials godoc
// @Summary List catalog materials
// @Description Returns every material of the catalog with its unit, in file order.
// @Tags materials
// @Produce  json
// @Success 200 {array} dto.MaterialResponse
// @Failure 404 {object} dto.ErrorResponse "Catalog file missing"
// @Failure 500 {object} dto.ErrorResponse "Catalog unreadable"
// @Router /materiales [get]
func (h *materialHandler) listMaterials(c *gin.Context) {
	entries, err := h.catalogService.ListMaterials(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Archivo de materiales no encontrado"})
		} else {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Error al obtener materiales"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListMaterialResponse(entries))
}
