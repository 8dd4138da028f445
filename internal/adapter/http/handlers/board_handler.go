package handlers

import (
	"net/http"
	"strings"

	request "reforma_xpto/internal/adapter/http/dto/request"
	"reforma_xpto/internal/domain/entities"
	"reforma_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	areaBoard = "board"

	// BoardSessionHeader scopes manual card ordering to one operator session.
	BoardSessionHeader  = "X-Board-Session"
	defaultBoardSession = "default"
)

type BoardHandler struct {
	usecase usecase.IBoardUseCase
}

func NewBoardHandler(uc usecase.IBoardUseCase) *BoardHandler {
	return &BoardHandler{usecase: uc}
}

// GetBoard godoc
// @Summary      Kanban projection of leads, one column per status
// @Tags         board
// @Produce      json
// @Param        search query string false "Client name or property address filter"
// @Param        X-Board-Session header string false "Ordering session"
// @Success      200 {array} board.Column
// @Router       /board [get]
func (h *BoardHandler) GetBoard(c *gin.Context) {
	columns, err := h.usecase.Board(c.Request.Context(), boardSession(c), c.Query("search"))
	if err != nil {
		writeError(c, areaBoard, err)
		return
	}
	c.JSON(http.StatusOK, columns)
}

// MoveCard godoc
// @Summary      Reorder a card inside its column for this session
// @Description  Only the view order changes; the lead status is untouched.
// @Tags         board
// @Accept       json
// @Produce      json
// @Param        payload body request.MoveCardRequest true "Move"
// @Param        X-Board-Session header string false "Ordering session"
// @Success      200 {array} board.Column
// @Failure      409 {object} pkg.HTTPError
// @Router       /board/move [post]
func (h *BoardHandler) MoveCard(c *gin.Context) {
	var payload request.MoveCardRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, areaBoard, err)
		return
	}
	columns, err := h.usecase.Move(c.Request.Context(), boardSession(c), entities.LeadStatus(payload.Status), payload.LeadID, *payload.ToIndex)
	if err != nil {
		writeError(c, areaBoard, err)
		return
	}
	c.JSON(http.StatusOK, columns)
}

// ResetBoardOrder godoc
// @Summary      Drop the manual ordering of this session
// @Tags         board
// @Param        X-Board-Session header string false "Ordering session"
// @Success      204
// @Router       /board/order [delete]
func (h *BoardHandler) ResetBoardOrder(c *gin.Context) {
	h.usecase.ResetOrder(c.Request.Context(), boardSession(c))
	c.Status(http.StatusNoContent)
}

func boardSession(c *gin.Context) string {
	if s := strings.TrimSpace(c.GetHeader(BoardSessionHeader)); s != "" {
		return s
	}
	if s := strings.TrimSpace(c.Query("session")); s != "" {
		return s
	}
	return defaultBoardSession
}
