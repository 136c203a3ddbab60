package receivables

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	httperr "github.com/techfinance-lab/techfinance/internal/core/errors"
)

// RegisterRoutes registers the receivables routes on the given (guarded) router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/contas_receber/resumo", s.HandleSummary)
	r.GET("/contas_receber/ai", s.HandleRenegotiationAnalysis)
}

// HandleSummary handles GET /contas_receber/resumo.
func (s *Service) HandleSummary(c *gin.Context) {
	c.JSON(http.StatusOK, s.Summary(c.Request.Context()))
}

// HandleRenegotiationAnalysis handles GET /contas_receber/ai.
func (s *Service) HandleRenegotiationAnalysis(c *gin.Context) {
	report, err := s.RenegotiationAnalysis(c.Request.Context(), c.Query("prompt"))
	if err != nil {
		if errors.Is(err, ErrPromptRequired) {
			c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
				Status:  http.StatusBadRequest,
				Message: httperr.MsgPromptRequired,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			Status:  http.StatusInternalServerError,
			Message: httperr.MsgAIRequestFailed,
		})
		return
	}
	c.JSON(http.StatusOK, report)
}
