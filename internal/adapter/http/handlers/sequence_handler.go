package handlers

import (
	"net/http"

	request "reforma_xpto/internal/adapter/http/dto/request"
	"reforma_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

const areaSequence = "sequence"

type SequenceHandler struct {
	usecase usecase.ISequenceUseCase
}

func NewSequenceHandler(uc usecase.ISequenceUseCase) *SequenceHandler {
	return &SequenceHandler{usecase: uc}
}

// GetSettings godoc
// @Summary      Numbering settings
// @Tags         sequences
// @Produce      json
// @Success      200 {object} usecase.SequenceSettings
// @Router       /sequences/settings [get]
func (h *SequenceHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.Settings(c.Request.Context()))
}

// UpdateSettings godoc
// @Summary      Update the stored numbering prefix
// @Description  The prefix is kept for display; document numbers keep their kind prefix.
// @Tags         sequences
// @Accept       json
// @Produce      json
// @Param        payload body request.UpdateSequenceSettingsRequest true "Settings"
// @Success      200 {object} usecase.SequenceSettings
// @Failure      400 {object} pkg.HTTPError
// @Router       /sequences/settings [put]
func (h *SequenceHandler) UpdateSettings(c *gin.Context) {
	var payload request.UpdateSequenceSettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, areaSequence, err)
		return
	}
	settings, err := h.usecase.UpdatePrefix(c.Request.Context(), payload.Prefix)
	if err != nil {
		writeError(c, areaSequence, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
