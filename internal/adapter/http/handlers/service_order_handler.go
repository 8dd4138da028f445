package handlers

import (
	"context"
	"net/http"

	request "reforma_xpto/internal/adapter/http/dto/request"
	response "reforma_xpto/internal/adapter/http/dto/response"
	"reforma_xpto/internal/domain/entities"
	"reforma_xpto/internal/infrastructure/logging"
	"reforma_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

const areaServiceOrder = "service_order"

type ServiceOrderHandler struct {
	usecase usecase.IServiceOrderUseCase
}

func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc}
}

// CreateServiceOrder godoc
// @Summary      Create a service order without a budget
// @Tags         service-orders
// @Accept       json
// @Produce      json
// @Param        payload body request.CreateServiceOrderRequest true "Service order"
// @Success      201 {object} response.ServiceOrderResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /service-orders [post]
func (h *ServiceOrderHandler) CreateServiceOrder(c *gin.Context) {
	var payload request.CreateServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, areaServiceOrder, err)
		return
	}
	order, err := h.usecase.CreateServiceOrder(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, areaServiceOrder, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromServiceOrder(order))
}

// IssueServiceOrder godoc
// @Summary      Issue the service order of an approved budget
// @Tags         service-orders
// @Accept       json
// @Produce      json
// @Param        payload body request.IssueServiceOrderRequest true "Budget"
// @Success      201 {object} response.ServiceOrderResponse
// @Failure      409 {object} pkg.HTTPError
// @Router       /service-orders/from-budget [post]
func (h *ServiceOrderHandler) IssueServiceOrder(c *gin.Context) {
	var payload request.IssueServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, areaServiceOrder, err)
		return
	}
	order, err := h.usecase.IssueFromBudget(c.Request.Context(), payload.BudgetID, usecase.IssueServiceOrderInput{TechnicianID: payload.TechnicianID})
	if err != nil {
		writeError(c, areaServiceOrder, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromServiceOrder(order))
}

// ScheduleServiceOrder godoc
// @Summary      Schedule an issued or paused service order
// @Tags         service-orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Service order ID"
// @Param        payload body request.ScheduleServiceOrderRequest true "Schedule"
// @Success      200 {object} response.ServiceOrderResponse
// @Failure      409 {object} pkg.HTTPError
// @Router       /service-orders/{id}/schedule [patch]
func (h *ServiceOrderHandler) ScheduleServiceOrder(c *gin.Context) {
	var payload request.ScheduleServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, areaServiceOrder, err)
		return
	}
	order, err := h.usecase.Schedule(c.Request.Context(), c.Param("id"), usecase.ScheduleServiceOrderInput{
		ScheduledAt:  payload.ScheduledAt,
		TechnicianID: payload.TechnicianID,
	})
	if err != nil {
		writeError(c, areaServiceOrder, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

// StartServiceOrder godoc
// @Summary      Start work on a scheduled service order
// @Tags         service-orders
// @Produce      json
// @Param        id path string true "Service order ID"
// @Success      200 {object} response.ServiceOrderResponse
// @Failure      409 {object} pkg.HTTPError
// @Router       /service-orders/{id}/start [patch]
func (h *ServiceOrderHandler) StartServiceOrder(c *gin.Context) {
	h.simple(c, h.usecase.Start)
}

// PauseServiceOrder godoc
// @Summary      Pause an in-progress service order back to scheduled
// @Tags         service-orders
// @Produce      json
// @Param        id path string true "Service order ID"
// @Success      200 {object} response.ServiceOrderResponse
// @Failure      409 {object} pkg.HTTPError
// @Router       /service-orders/{id}/pause [patch]
func (h *ServiceOrderHandler) PauseServiceOrder(c *gin.Context) {
	h.simple(c, h.usecase.Pause)
}

// FinishServiceOrder godoc
// @Summary      Finish an in-progress service order and create its receivable
// @Tags         service-orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Service order ID"
// @Param        payload body request.FinishServiceOrderRequest false "Completion"
// @Success      200 {object} response.FinishServiceOrderResponse
// @Failure      409 {object} pkg.HTTPError
// @Router       /service-orders/{id}/finish [patch]
func (h *ServiceOrderHandler) FinishServiceOrder(c *gin.Context) {
	var payload request.FinishServiceOrderRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		writeBindError(c, areaServiceOrder, err)
		return
	}
	order, entry, err := h.usecase.Finish(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		writeError(c, areaServiceOrder, err)
		return
	}
	logging.Default().Infof("[service_order][handler] finished number=%s financial_entry_id=%s", order.ServiceOrderNumber, entry.ID)
	c.JSON(http.StatusOK, response.FinishServiceOrderResponse{
		ServiceOrder:   response.FromServiceOrder(order),
		FinancialEntry: response.FromFinancialEntry(entry),
	})
}

// SetServiceOrderStatus godoc
// @Summary      Apply an operator status (waiting_material, billed, paid)
// @Tags         service-orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Service order ID"
// @Param        payload body request.SetServiceOrderStatusRequest true "Status"
// @Success      200 {object} response.ServiceOrderResponse
// @Failure      409 {object} pkg.HTTPError
// @Router       /service-orders/{id}/status [patch]
func (h *ServiceOrderHandler) SetServiceOrderStatus(c *gin.Context) {
	var payload request.SetServiceOrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, areaServiceOrder, err)
		return
	}
	order, err := h.usecase.SetStatus(c.Request.Context(), c.Param("id"), entities.ServiceOrderStatus(payload.Status))
	if err != nil {
		writeError(c, areaServiceOrder, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

// GetServiceOrder godoc
// @Summary      Get a service order
// @Tags         service-orders
// @Produce      json
// @Param        id path string true "Service order ID"
// @Success      200 {object} response.ServiceOrderResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /service-orders/{id} [get]
func (h *ServiceOrderHandler) GetServiceOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, areaServiceOrder, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}

// ListServiceOrders godoc
// @Summary      List service orders
// @Tags         service-orders
// @Produce      json
// @Success      200 {array} response.ServiceOrderResponse
// @Router       /service-orders [get]
func (h *ServiceOrderHandler) ListServiceOrders(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, areaServiceOrder, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrders(orders))
}

func (h *ServiceOrderHandler) simple(c *gin.Context, apply func(ctx context.Context, id string) (entities.ServiceOrder, error)) {
	order, err := apply(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, areaServiceOrder, err)
		return
	}
	c.JSON(http.StatusOK, response.FromServiceOrder(order))
}
