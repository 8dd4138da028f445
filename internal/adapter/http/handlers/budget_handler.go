package handlers

import (
	"net/http"

	request "reforma_xpto/internal/adapter/http/dto/request"
	response "reforma_xpto/internal/adapter/http/dto/response"
	"reforma_xpto/internal/infrastructure/logging"
	"reforma_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

const areaBudget = "budget"

type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc}
}

// CreateBudget godoc
// @Summary      Create a budget directly for a lead
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        payload body request.CreateBudgetRequest true "Budget"
// @Success      201 {object} response.BudgetResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /budgets [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var payload request.CreateBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, areaBudget, err)
		return
	}
	budget, err := h.usecase.CreateBudget(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, areaBudget, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromBudget(budget))
}

// UpdateBudgetItems godoc
// @Summary      Replace the items of a draft or sent budget
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        id path string true "Budget ID"
// @Param        payload body request.UpdateBudgetItemsRequest true "Items"
// @Success      200 {object} response.BudgetResponse
// @Failure      409 {object} pkg.HTTPError
// @Router       /budgets/{id}/items [put]
func (h *BudgetHandler) UpdateBudgetItems(c *gin.Context) {
	var payload request.UpdateBudgetItemsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, areaBudget, err)
		return
	}
	budget, err := h.usecase.UpdateItems(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, areaBudget, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(budget))
}

// SendBudget godoc
// @Summary      Mark a draft budget as sent to the client
// @Tags         budgets
// @Produce      json
// @Param        id path string true "Budget ID"
// @Success      200 {object} response.BudgetResponse
// @Failure      409 {object} pkg.HTTPError
// @Router       /budgets/{id}/send [patch]
func (h *BudgetHandler) SendBudget(c *gin.Context) {
	budget, err := h.usecase.SendBudget(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, areaBudget, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(budget))
}

// ApproveBudget godoc
// @Summary      Approve a sent budget and issue its service order
// @Tags         budgets
// @Accept       json
// @Produce      json
// @Param        id path string true "Budget ID"
// @Param        payload body request.ApproveBudgetRequest false "Technician"
// @Success      200 {object} response.ApproveBudgetResponse
// @Failure      409 {object} pkg.HTTPError
// @Router       /budgets/{id}/approve [patch]
func (h *BudgetHandler) ApproveBudget(c *gin.Context) {
	var payload request.ApproveBudgetRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		writeBindError(c, areaBudget, err)
		return
	}
	budget, order, err := h.usecase.ApproveBudget(c.Request.Context(), c.Param("id"), usecase.ApproveBudgetInput{TechnicianID: payload.TechnicianID})
	if err != nil {
		writeError(c, areaBudget, err)
		return
	}
	logging.Default().Infof("[budget][handler] approved budget_number=%s service_order_number=%s", budget.BudgetNumber, order.ServiceOrderNumber)
	c.JSON(http.StatusOK, response.ApproveBudgetResponse{
		Budget:       response.FromBudget(budget),
		ServiceOrder: response.FromServiceOrder(order),
	})
}

// RejectBudget godoc
// @Summary      Reject a draft or sent budget
// @Tags         budgets
// @Produce      json
// @Param        id path string true "Budget ID"
// @Success      200 {object} response.BudgetResponse
// @Failure      409 {object} pkg.HTTPError
// @Router       /budgets/{id}/reject [patch]
func (h *BudgetHandler) RejectBudget(c *gin.Context) {
	budget, err := h.usecase.RejectBudget(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, areaBudget, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(budget))
}

// GetBudget godoc
// @Summary      Get a budget
// @Tags         budgets
// @Produce      json
// @Param        id path string true "Budget ID"
// @Success      200 {object} response.BudgetResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /budgets/{id} [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	budget, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, areaBudget, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBudget(budget))
}

// ListBudgets godoc
// @Summary      List budgets
// @Tags         budgets
// @Produce      json
// @Success      200 {array} response.BudgetResponse
// @Router       /budgets [get]
func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	budgets, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, areaBudget, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBudgets(budgets))
}
