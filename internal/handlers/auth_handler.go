package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type tokenRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// IssueToken signs a token for the posted identity payload. There is no
// credential check; the frontend authenticates users elsewhere and exchanges
// the email for an API token here.
func (h *Handler) IssueToken(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "a valid email is required")
		return
	}

	token, err := h.Tokens.Issue(req.Email)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "could not generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
