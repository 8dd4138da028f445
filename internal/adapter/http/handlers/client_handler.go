package handlers

import (
	"net/http"

	request "reforma_xpto/internal/adapter/http/dto/request"
	response "reforma_xpto/internal/adapter/http/dto/response"
	"reforma_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

const areaClient = "client"

type ClientHandler struct {
	usecase usecase.IClientUseCase
}

func NewClientHandler(uc usecase.IClientUseCase) *ClientHandler {
	return &ClientHandler{usecase: uc}
}

// CreateClient godoc
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        payload body request.CreateClientRequest true "Client"
// @Success      201 {object} response.ClientResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload request.CreateClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, areaClient, err)
		return
	}
	client, err := h.usecase.CreateClient(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, areaClient, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromClient(client))
}

// FindOrCreateClient godoc
// @Summary      Match a client by email or name and phone, creating it when absent
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        payload body request.CreateClientRequest true "Client"
// @Success      200 {object} response.FindOrCreateClientResponse
// @Success      201 {object} response.FindOrCreateClientResponse
// @Router       /clients/find-or-create [post]
func (h *ClientHandler) FindOrCreateClient(c *gin.Context) {
	var payload request.CreateClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, areaClient, err)
		return
	}
	client, created, err := h.usecase.FindOrCreateClient(c.Request.Context(), payload.ToInput())
	if err != nil {
		writeError(c, areaClient, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, response.FindOrCreateClientResponse{Client: response.FromClient(client), Created: created})
}

// GetClient godoc
// @Summary      Get a client
// @Tags         clients
// @Produce      json
// @Param        id path string true "Client ID"
// @Success      200 {object} response.ClientResponse
// @Failure      404 {object} pkg.HTTPError
// @Router       /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	client, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, areaClient, err)
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}

// ListClients godoc
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Success      200 {array} response.ClientResponse
// @Router       /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	clients, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, areaClient, err)
		return
	}
	c.JSON(http.StatusOK, response.FromClients(clients))
}
