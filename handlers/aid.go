package handlers

import (
	"net/http"
	"strconv"

	"courtside/models"
	"courtside/services/aid"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AidHandler serves the financial-aid application wizard and its admin
// review endpoints. Draft state lives server-side in a Redis session.
type AidHandler struct {
	Service aid.AidService
}

// StartAidSessionHandler handles POST /aid/sessions.
func (h *AidHandler) StartAidSessionHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := contextUserID(c)
	if !ok {
		return
	}
	session, err := h.Service.StartSession(userID)
	if err != nil {
		logger.Error("Failed to start aid session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start application session"})
		return
	}
	c.JSON(http.StatusCreated, session)
}

// GetAidSessionHandler handles GET /aid/sessions/:sessionID.
func (h *AidHandler) GetAidSessionHandler(c *gin.Context) {
	session, err := h.Service.GetSession(c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateAidDraftHandler handles PATCH /aid/sessions/:sessionID.
// Only the sections present in the payload are touched.
func (h *AidHandler) UpdateAidDraftHandler(c *gin.Context) {
	var update aid.DraftUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Service.UpdateDraft(c.Param("sessionID"), update)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

// AdvanceAidStepHandler handles POST /aid/sessions/:sessionID/next.
// When the current step has validation errors the step does not move and
// the field messages are returned instead.
func (h *AidHandler) AdvanceAidStepHandler(c *gin.Context) {
	session, fieldErrors, err := h.Service.Next(c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(fieldErrors) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"session": session, "fieldErrors": fieldErrors})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// RewindAidStepHandler handles POST /aid/sessions/:sessionID/back.
// Going back never validates: entered values stay in the draft.
func (h *AidHandler) RewindAidStepHandler(c *gin.Context) {
	session, err := h.Service.Back(c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// AddAidDocumentsHandler handles POST /aid/sessions/:sessionID/documents
// with multipart files under the "documents" field.
func (h *AidHandler) AddAidDocumentsHandler(c *gin.Context) {
	logger := getLogger(c)

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form", "details": err.Error()})
		return
	}

	docs := make([]models.AidAttachment, 0, len(form.File["documents"]))
	for _, fh := range form.File["documents"] {
		att, err := aid.ReadAttachment(fh)
		if err != nil {
			logger.Error("Failed to read uploaded document", zap.String("file", fh.Filename), zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		docs = append(docs, att)
	}

	session, err := h.Service.AddDocuments(c.Param("sessionID"), docs)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

// RemoveAidDocumentHandler handles DELETE /aid/sessions/:sessionID/documents/:index.
func (h *AidHandler) RemoveAidDocumentHandler(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "document index must be a number"})
		return
	}
	session, err := h.Service.RemoveDocument(c.Param("sessionID"), index)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

// SubmitAidSessionHandler handles POST /aid/sessions/:sessionID/submit.
func (h *AidHandler) SubmitAidSessionHandler(c *gin.Context) {
	logger := getLogger(c)

	app, err := h.Service.Submit(c.Param("sessionID"))
	if err != nil {
		logger.Warn("Aid submission rejected", zap.String("sessionID", c.Param("sessionID")), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, app)
}

// SubmitAidDirectHandler handles POST /aid/applications: the whole draft
// arrives as one multipart request with bracketed keys, bypassing the
// server-held session.
func (h *AidHandler) SubmitAidDirectHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, ok := contextUserID(c)
	if !ok {
		return
	}
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form", "details": err.Error()})
		return
	}
	draft, err := aid.DecodeDraftForm(form)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app, err := h.Service.SubmitDirect(userID, draft)
	if err != nil {
		logger.Warn("Aid submission rejected", zap.String("userID", userID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, app)
}

// ListAidApplicationsHandler handles GET /admin/aid-applications.
func (h *AidHandler) ListAidApplicationsHandler(c *gin.Context) {
	var filter models.AidApplicationFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter", "details": err.Error()})
		return
	}
	params := BindListParams(c, "status")
	result, err := h.Service.ListApplications(filter, params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list applications"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetAidApplicationHandler handles GET /admin/aid-applications/:id.
func (h *AidHandler) GetAidApplicationHandler(c *gin.Context) {
	app, err := h.Service.GetApplication(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, app)
}

// GetAidDocumentURLHandler handles GET /admin/aid-applications/:id/documents/:index/url.
// Returns a signed, short-lived download link for one supporting document.
func (h *AidHandler) GetAidDocumentURLHandler(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "document index must be a number"})
		return
	}
	url, err := h.Service.DocumentURL(c.Param("id"), index)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// DeleteAidApplicationHandler handles DELETE /admin/aid-applications/:id.
func (h *AidHandler) DeleteAidApplicationHandler(c *gin.Context) {
	logger := getLogger(c)

	if err := h.Service.DeleteApplication(c.Param("id")); err != nil {
		logger.Error("Failed to delete aid application", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application deleted"})
}

// UpdateAidApplicationStatusHandler handles PUT /admin/aid-applications/:id/status.
func (h *AidHandler) UpdateAidApplicationStatusHandler(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Service.UpdateApplicationStatus(c.Param("id"), input.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Application status updated"})
}
