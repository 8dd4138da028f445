package routes

import (
	"net/http"

	"reforma_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients          = "/clients"
	PathLeads            = "/leads"
	PathBoard            = "/board"
	PathVisits           = "/visits"
	PathBudgets          = "/budgets"
	PathServiceOrders    = "/service-orders"
	PathFinancialEntries = "/financial-entries"
	PathSequences        = "/sequences"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addClientRoutes(rg *gin.RouterGroup, h *handlers.ClientHandler) {
	clients := rg.Group(PathClients)
	{
		clients.POST("", h.CreateClient)
		clients.POST("/find-or-create", h.FindOrCreateClient)
		clients.GET("", h.ListClients)
		clients.GET("/:id", h.GetClient)
	}
}

func addLeadRoutes(rg *gin.RouterGroup, h *handlers.LeadHandler) {
	leads := rg.Group(PathLeads)
	{
		leads.POST("", h.CreateLead)
		leads.GET("", h.ListLeads)
		leads.GET("/:id", h.GetLead)
		leads.GET("/:id/visits", h.ListLeadVisits)
		leads.PATCH("/:id/status", h.UpdateLeadStatus)
	}
}

func addBoardRoutes(rg *gin.RouterGroup, h *handlers.BoardHandler) {
	board := rg.Group(PathBoard)
	{
		board.GET("", h.GetBoard)
		board.POST("/move", h.MoveCard)
		board.DELETE("/order", h.ResetBoardOrder)
	}
}

func addVisitRoutes(rg *gin.RouterGroup, h *handlers.VisitHandler) {
	visits := rg.Group(PathVisits)
	{
		visits.POST("", h.ScheduleVisit)
		visits.GET("", h.ListVisits)
		visits.GET("/:id", h.GetVisit)
		visits.PATCH("/:id/complete", h.CompleteVisit)
		visits.PATCH("/:id/cancel", h.CancelVisit)
		visits.POST("/:id/budget", h.DeriveBudget)
	}
}

func addBudgetRoutes(rg *gin.RouterGroup, h *handlers.BudgetHandler) {
	budgets := rg.Group(PathBudgets)
	{
		budgets.POST("", h.CreateBudget)
		budgets.GET("", h.ListBudgets)
		budgets.GET("/:id", h.GetBudget)
		budgets.PUT("/:id/items", h.UpdateBudgetItems)
		budgets.PATCH("/:id/send", h.SendBudget)
		budgets.PATCH("/:id/approve", h.ApproveBudget)
		budgets.PATCH("/:id/reject", h.RejectBudget)
	}
}

func addServiceOrderRoutes(rg *gin.RouterGroup, h *handlers.ServiceOrderHandler) {
	orders := rg.Group(PathServiceOrders)
	{
		orders.POST("", h.CreateServiceOrder)
		orders.POST("/from-budget", h.IssueServiceOrder)
		orders.GET("", h.ListServiceOrders)
		orders.GET("/:id", h.GetServiceOrder)
		orders.PATCH("/:id/schedule", h.ScheduleServiceOrder)
		orders.PATCH("/:id/start", h.StartServiceOrder)
		orders.PATCH("/:id/pause", h.PauseServiceOrder)
		orders.PATCH("/:id/finish", h.FinishServiceOrder)
		orders.PATCH("/:id/status", h.SetServiceOrderStatus)
	}
}

func addFinancialEntryRoutes(rg *gin.RouterGroup, h *handlers.FinancialEntryHandler) {
	entries := rg.Group(PathFinancialEntries)
	{
		entries.POST("", h.CreateFinancialEntry)
		entries.GET("", h.ListFinancialEntries)
		entries.GET("/export", h.ExportFinancialEntries)
		entries.POST("/overdue", h.MarkOverdue)
		entries.GET("/:id", h.GetFinancialEntry)
		entries.POST("/:id/pay", h.PayFinancialEntry)
	}
}

func addSequenceRoutes(rg *gin.RouterGroup, h *handlers.SequenceHandler) {
	sequences := rg.Group(PathSequences)
	{
		sequences.GET("/settings", h.GetSettings)
		sequences.PUT("/settings", h.UpdateSettings)
	}
}
