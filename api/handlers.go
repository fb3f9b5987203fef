package api

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gradefill/domain/fill"
	"gradefill/internal/errors"
)

// handleFillGradingTool accepts survey arrays, fills the matching template's
// Inputs sheet and streams the workbook back as a download
func (s *Server) handleFillGradingTool(c *gin.Context) {
	fillID := fill.NewFillID()
	c.Header("X-Fill-ID", fillID.String())

	var req fill.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[API] ❌ %s: invalid JSON request body: %v", fillID, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON request body"})
		return
	}

	result, err := s.fillService.Fill(c.Request.Context(), fillID, req)
	if err != nil {
		log.Printf("[API] ❌ %s: fill failed (%s): %v", fillID, errors.GetCode(err), err)
		c.JSON(statusForError(err), gin.H{"error": clientMessage(err)})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Content)
}

// handleTemplatesList reports the configured templates and their availability
func (s *Server) handleTemplatesList(c *gin.Context) {
	entries := s.fillService.Templates(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"templates": entries,
		"count":     len(entries),
	})
}

// handleHealth is the public liveness probe
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "gradefill",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

// statusForError maps error codes onto HTTP statuses. Client mistakes are
// 400s; everything else is a deployment or template problem.
func statusForError(err error) int {
	if errors.GetCode(err) == errors.CodeInvalidInput {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// clientMessage keeps wrapped causes out of response bodies
func clientMessage(err error) string {
	if appErr, ok := err.(*errors.AppError); ok {
		return appErr.Message
	}
	return err.Error()
}
