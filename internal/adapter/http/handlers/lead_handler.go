package handlers

import (
	"net/http"
	"strings"

	request "reforma_xpto/internal/adapter/http/dto/request"
	response "reforma_xpto/internal/adapter/http/dto/response"
	"reforma_xpto/internal/domain/entities"
	"reforma_xpto/internal/infrastructure/logging"
	"reforma_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

const areaLead = "lead"

type LeadHandler struct {
	usecase usecase.ILeadUseCase
	clients usecase.IClientUseCase
	visits  usecase.IVisitUseCase
}

func NewLeadHandler(uc usecase.ILeadUseCase, clients usecase.IClientUseCase, visits usecase.IVisitUseCase) *LeadHandler {
	return &LeadHandler{usecase: uc, clients: clients, visits: visits}
}

// CreateLead godoc
// @Summary      Create a lead for an existing or inline client
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        payload body request.CreateLeadRequest true "Lead"
// @Success      201 {object} response.LeadResponse
// @Failure      400 {object} pkg.HTTPError
// @Failure      404 {object} pkg.HTTPError
// @Router       /leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	var payload request.CreateLeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, areaLead, err)
		return
	}
	if !payload.HasClientReference() {
		writeBindError(c, areaLead, errMissingClient)
		return
	}

	clientID := strings.TrimSpace(payload.ClientID)
	if clientID == "" {
		client, created, err := h.clients.FindOrCreateClient(c.Request.Context(), payload.Client.ToInput())
		if err != nil {
			writeError(c, areaLead, err)
			return
		}
		logging.Default().Infof("[lead][handler] client resolved client_id=%s created=%v", client.ID, created)
		clientID = client.ID
	}

	lead, err := h.usecase.CreateLead(c.Request.Context(), payload.ToInput(clientID))
	if err != nil {
		writeError(c, areaLead, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromLead(lead))
}

// UpdateLeadStatus godoc
// @Summary      Move a lead forward in the pipeline or mark it lost
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        id path string true "Lead ID"
// @Param        payload body request.UpdateLeadStatusRequest true "Status"
// @Success      200 {object} response.LeadResponse
// @Failure      409 {object} pkg.HTTPError
// @Router       /leads/{id}/status [patch]
func (h *LeadHandler) UpdateLeadStatus(c *gin.Context) {
	var payload request.UpdateLeadStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, areaLead, err)
		return
	}
	lead, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.LeadStatus(payload.Status))
	if err != nil {
		writeError(c, areaLead, err)
		return
	}
	c.JSON(http.StatusOK, response.FromLead(lead))
}

// GetLead godoc
// @Summary      Get a lead
// @Tags         leads
// @Produce      json
// @Param        id path string true "Lead ID"
// @Success      200 {object} response.LeadResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /leads/{id} [get]
func (h *LeadHandler) GetLead(c *gin.Context) {
	lead, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, areaLead, err)
		return
	}
	c.JSON(http.StatusOK, response.FromLead(lead))
}

// ListLeads godoc
// @Summary      List leads in creation order
// @Tags         leads
// @Produce      json
// @Success      200 {array} response.LeadResponse
// @Router       /leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	leads, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, areaLead, err)
		return
	}
	c.JSON(http.StatusOK, response.FromLeads(leads))
}

// ListLeadVisits godoc
// @Summary      List the visits of a lead
// @Tags         leads
// @Produce      json
// @Param        id path string true "Lead ID"
// @Success      200 {array} response.VisitResponse
// @Router       /leads/{id}/visits [get]
func (h *LeadHandler) ListLeadVisits(c *gin.Context) {
	visits, err := h.visits.ListByLeadID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, areaLead, err)
		return
	}
	c.JSON(http.StatusOK, response.FromVisits(visits))
}
