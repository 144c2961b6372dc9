package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "ikraph-email-agent/pkg/errors"
)

// processPromptReq binds the prompt body. A blank prompt is reported as agent.ErrEmptyPrompt.
func (h *handler) processPromptReq(c *gin.Context) (promptReq, error) {
	var req promptReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return req, req.validate()
}
