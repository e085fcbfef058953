package controllers

import (
	"github.com/gin-gonic/gin"

	"healthtrack/internal/models/request_models"
	"healthtrack/internal/services"
	"healthtrack/pkg/middleware"
	"healthtrack/pkg/utils"
)

type DocumentController struct {
	documentService services.DocumentServiceInterface
}

func NewDocumentController(documentService services.DocumentServiceInterface) *DocumentController {
	return &DocumentController{documentService: documentService}
}

// ListDocuments godoc
// @Summary List medical document metadata
// @Description Most recent upload first
// @Tags Documents
// @Produce json
// @Success 200 {array} db_models.MedicalDocument
// @Router /api/medical-documents [get]
func (d *DocumentController) ListDocuments(c *gin.Context) {
	documents, err := d.documentService.ListDocuments(c.Request.Context(), middleware.MustUserID(c))
	if err != nil {
		utils.HandleServiceError(c, err, "Failed to fetch medical documents")
		return
	}
	utils.RespondSuccess(c, documents)
}

// CreateDocument godoc
// @Summary Register medical document metadata
// @Tags Documents
// @Accept json
// @Produce json
// @Param request body request_models.CreateMedicalDocumentRequest true "Document metadata"
// @Success 200 {object} db_models.MedicalDocument
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/medical-documents [post]
func (d *DocumentController) CreateDocument(c *gin.Context) {
	var req request_models.CreateMedicalDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindError(c, err)
		return
	}

	document, err := d.documentService.CreateDocument(c.Request.Context(), middleware.MustUserID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err, "Failed to create medical document")
		return
	}
	utils.RespondSuccess(c, document)
}

func (d *DocumentController) ListShares(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.HandleServiceError(c, err, "Failed to fetch document shares")
		return
	}

	shares, err := d.documentService.ListShares(c.Request.Context(), id, middleware.MustUserID(c))
	if err != nil {
		utils.HandleServiceError(c, err, "Failed to fetch document shares")
		return
	}
	utils.RespondSuccess(c, shares)
}

func (d *DocumentController) ShareDocument(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.HandleServiceError(c, err, "Failed to share medical document")
		return
	}

	var req request_models.ShareDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindError(c, err)
		return
	}

	share, err := d.documentService.ShareDocument(c.Request.Context(), id, middleware.MustUserID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err, "Failed to share medical document")
		return
	}
	utils.RespondSuccess(c, share)
}
