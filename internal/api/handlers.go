package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinical-score-server/internal/domain"
)

// handleListScores returns the catalog of registered calculators
func (s *Server) handleListScores(c *gin.Context) {
	defs := s.registry.List()
	c.JSON(http.StatusOK, gin.H{
		"scores": defs,
		"count":  len(defs),
	})
}

// handleCalculateScore dispatches a calculation request to the registry
func (s *Server) handleCalculateScore(c *gin.Context) {
	scoreID := c.Param("score_id")

	var params domain.Params
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   domain.ErrValidation,
			"message": "request body must be a JSON object",
		})
		return
	}

	result, err := s.registry.Calculate(c.Request.Context(), scoreID, params)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// writeError maps domain errors to HTTP responses
func (s *Server) writeError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	var calculationErr *domain.CalculationError
	var unknownScoreErr *domain.UnknownScoreError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   domain.ErrValidation,
			"message": validationErr.Error(),
			"details": gin.H{
				"field": validationErr.Field,
				"issue": validationErr.Message,
				"value": validationErr.Value,
			},
		})
	case errors.As(err, &calculationErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   domain.ErrCalculation,
			"message": calculationErr.Message,
		})
	case errors.As(err, &unknownScoreErr):
		c.JSON(http.StatusNotFound, gin.H{
			"error":   domain.ErrUnknownScore,
			"message": unknownScoreErr.Error(),
			"details": gin.H{
				"score_id": unknownScoreErr.ScoreID,
			},
		})
	default:
		s.logger.WithError(err).Error("Unexpected calculation failure")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   domain.ErrInternal,
			"message": "internal server error",
		})
	}
}
