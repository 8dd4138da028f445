package handlers

import (
	"net/http"

	request "reforma_xpto/internal/adapter/http/dto/request"
	response "reforma_xpto/internal/adapter/http/dto/response"
	"reforma_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

const areaVisit = "visit"

type VisitHandler struct {
	usecase usecase.IVisitUseCase
	budgets usecase.IBudgetUseCase
}

func NewVisitHandler(uc usecase.IVisitUseCase, budgets usecase.IBudgetUseCase) *VisitHandler {
	return &VisitHandler{usecase: uc, budgets: budgets}
}

// ScheduleVisit godoc
// @Summary      Schedule a technical visit for a lead
// @Tags         visits
// @Accept       json
// @Produce      json
// @Param        payload body request.ScheduleVisitRequest true "Visit"
// @Success      201 {object} response.VisitResponse
// @Failure      404 {object} pkg.HTTPError
// @Failure      409 {object} pkg.HTTPError
// @Router       /visits [post]
func (h *VisitHandler) ScheduleVisit(c *gin.Context) {
	var payload request.ScheduleVisitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, areaVisit, err)
		return
	}
	visit, err := h.usecase.ScheduleVisit(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, areaVisit, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromVisit(visit))
}

// CompleteVisit godoc
// @Summary      Complete a scheduled visit with its findings and media
// @Tags         visits
// @Accept       json
// @Produce      json
// @Param        id path string true "Visit ID"
// @Param        payload body request.CompleteVisitRequest true "Findings"
// @Success      200 {object} response.VisitResponse
// @Failure      409 {object} pkg.HTTPError
// @Router       /visits/{id}/complete [patch]
func (h *VisitHandler) CompleteVisit(c *gin.Context) {
	var payload request.CompleteVisitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, areaVisit, err)
		return
	}
	visit, err := h.usecase.CompleteVisit(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, areaVisit, err)
		return
	}
	c.JSON(http.StatusOK, response.FromVisit(visit))
}

// CancelVisit godoc
// @Summary      Cancel a scheduled visit
// @Tags         visits
// @Produce      json
// @Param        id path string true "Visit ID"
// @Success      200 {object} response.VisitResponse
// @Failure      409 {object} pkg.HTTPError
// @Router       /visits/{id}/cancel [patch]
func (h *VisitHandler) CancelVisit(c *gin.Context) {
	visit, err := h.usecase.CancelVisit(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, areaVisit, err)
		return
	}
	c.JSON(http.StatusOK, response.FromVisit(visit))
}

// DeriveBudget godoc
// @Summary      Derive a draft budget from a completed visit
// @Description  The budget inherits the visit number with the ORC- prefix.
// @Tags         visits
// @Accept       json
// @Produce      json
// @Param        id path string true "Visit ID"
// @Param        payload body request.DeriveBudgetRequest false "Items"
// @Success      201 {object} response.BudgetResponse
// @Failure      409 {object} pkg.HTTPError
// @Router       /visits/{id}/budget [post]
func (h *VisitHandler) DeriveBudget(c *gin.Context) {
	var payload request.DeriveBudgetRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		writeBindError(c, areaVisit, err)
		return
	}
	budget, err := h.budgets.DeriveFromVisit(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, areaVisit, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromBudget(budget))
}

// GetVisit godoc
// @Summary      Get a visit
// @Tags         visits
// @Produce      json
// @Param        id path string true "Visit ID"
// @Success      200 {object} response.VisitResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /visits/{id} [get]
func (h *VisitHandler) GetVisit(c *gin.Context) {
	visit, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, areaVisit, err)
		return
	}
	c.JSON(http.StatusOK, response.FromVisit(visit))
}

// ListVisits godoc
// @Summary      List visits
// @Tags         visits
// @Produce      json
// @Success      200 {array} response.VisitResponse
// @Router       /visits [get]
func (h *VisitHandler) ListVisits(c *gin.Context) {
	visits, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, areaVisit, err)
		return
	}
	c.JSON(http.StatusOK, response.FromVisits(visits))
}
