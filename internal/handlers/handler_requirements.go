package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/sya_logistica/internal/apperrors"
	portssvc "github.com/SscSPs/sya_logistica/internal/core/ports/services"
	"github.com/SscSPs/sya_logistica/internal/dto"
	"github.com/SscSPs/sya_logistica/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	msgSubmitSuccess = "Requerimientos procesados correctamente"
	msgSubmitFailed  = "Error al procesar requerimientos"
	msgInvalidBody   = "Formato de solicitud inválido"
)

// requirementHandler handles HTTP requests related to requirement submissions and the ledger.
type requirementHandler struct {
	submissionService portssvc.SubmissionSvc
	retrievalService  portssvc.RetrievalSvc
}

// newRequirementHandler creates a new requirementHandler.
func newRequirementHandler(ss portssvc.SubmissionSvc, rs portssvc.RetrievalSvc) *requirementHandler {
	return &requirementHandler{
		submissionService: ss,
		retrievalService:  rs,
	}
}

// RegisterRequirementRoutes registers the submission and download routes on rg.
func RegisterRequirementRoutes(rg *gin.RouterGroup, submissionService portssvc.SubmissionSvc, retrievalService portssvc.RetrievalSvc) {
	h := newRequirementHandler(submissionService, retrievalService)

	rg.POST("/enviar-requerimientos", h.submitRequirements)
	rg.GET("/descargar-requerimientos", h.downloadRequirements)
}

// submitRequirements godoc
// @Summary Submit required materials
// @Description Appends one ledger row per product of the submission. All rows are written or none is.
// @Tags requirements
// @Accept  json
// @Produce  json
// @Param   submission body dto.SubmitRequirementsRequest true "Requirement submission"
// @Success 200 {object} dto.SubmitRequirementsResponse
// @Failure 400 {object} dto.SubmitRequirementsResponse "Body is not valid JSON"
// @Failure 500 {object} dto.SubmitRequirementsResponse "Invalid quantity or storage failure"
// @Router /enviar-requerimientos [post]
func (h *requirementHandler) submitRequirements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SubmitRequirementsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SubmitRequirements", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.SubmitRequirementsResponse{
			Status:  dto.StatusError,
			Message: msgInvalidBody + ": " + err.Error(),
		})
		return
	}

	logger.Info("Received requirement submission",
		slog.String("requester", req.Solicitante),
		slog.String("work_order", req.OrdenTrabajo),
		slog.Int("item_count", len(req.Productos)))

	result, err := h.submissionService.Submit(c.Request.Context(), req)
	if err != nil {
		message := msgSubmitFailed
		if errors.Is(err, apperrors.ErrValidation) {
			message = fmt.Sprintf("%s: %s", msgSubmitFailed, err.Error())
		}
		c.JSON(http.StatusInternalServerError, dto.SubmitRequirementsResponse{
			Status:  dto.StatusError,
			Message: message,
		})
		return
	}

	c.JSON(http.StatusOK, dto.SubmitRequirementsResponse{
		Status:       dto.StatusSuccess,
		Message:      msgSubmitSuccess,
		RowsWritten:  &result.RowsWritten,
		SubmissionID: result.SubmissionID,
	})
}

// downloadRequirements godoc
// @Summary Download the requirements ledger
// @Description Returns the whole ledger workbook, creating an empty one first if needed.
// @Tags requirements
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {object} dto.SubmitRequirementsResponse "Storage failure"
// @Router /descargar-requerimientos [get]
func (h *requirementHandler) downloadRequirements(c *gin.Context) {
	doc, err := h.retrievalService.FetchLedger(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.SubmitRequirementsResponse{
			Status:  dto.StatusError,
			Message: "Error al descargar requerimientos",
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Header("Last-Modified", doc.ModifiedAt.UTC().Format(http.TimeFormat))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, doc.ContentType, doc.Content)
}
