package handlers

import (
	"net/http"
	"testing"

	"reforma_xpto/internal/adapter/http/handlers/mocks"
	"reforma_xpto/internal/domain/entities"
	"reforma_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type leadMocks struct {
	leads   *mocks.MockILeadUseCase
	clients *mocks.MockIClientUseCase
	visits  *mocks.MockIVisitUseCase
}

func TestLeadHandler(t *testing.T) {
	setup := func(t *testing.T) (*gin.Engine, leadMocks) {
		ctrl := gomock.NewController(t)
		m := leadMocks{
			leads:   mocks.NewMockILeadUseCase(ctrl),
			clients: mocks.NewMockIClientUseCase(ctrl),
			visits:  mocks.NewMockIVisitUseCase(ctrl),
		}
		h := NewLeadHandler(m.leads, m.clients, m.visits)
		r := gin.New()
		r.POST("/v1/leads", h.CreateLead)
		r.PATCH("/v1/leads/:id/status", h.UpdateLeadStatus)
		r.GET("/v1/leads/:id", h.GetLead)
		r.GET("/v1/leads/:id/visits", h.ListLeadVisits)
		r.GET("/v1/leads", h.ListLeads)
		return r, m
	}

	t.Run("create without client", func(t *testing.T) {
		r, _ := setup(t)
		w := perform(r, http.MethodPost, "/v1/leads", `{"property_address":"Rua A, 10"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create with client id", func(t *testing.T) {
		r, m := setup(t)
		m.leads.EXPECT().CreateLead(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.CreateLeadInput) (entities.Lead, error) {
			if in.ClientID != "c-1" || in.PropertyAddress != "Rua A, 10" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return entities.Lead{ID: "l-1", ClientID: "c-1", Status: entities.LeadStatusReceived}, nil
		})

		w := perform(r, http.MethodPost, "/v1/leads", `{"client_id":"c-1","property_address":"Rua A, 10","estimated_value":"15000.00"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		meta, _ := body["status_meta"].(map[string]any)
		if body["id"] != "l-1" || meta["label"] != "Recebido" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("create with inline client", func(t *testing.T) {
		r, m := setup(t)
		gomock.InOrder(
			m.clients.EXPECT().FindOrCreateClient(gomock.Any(), usecase.CreateClientInput{Name: "Ana", Phone: "11 99999-0000"}).
				Return(entities.Client{ID: "c-9", Name: "Ana"}, true, nil),
			m.leads.EXPECT().CreateLead(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, in usecase.CreateLeadInput) (entities.Lead, error) {
				if in.ClientID != "c-9" {
					t.Fatalf("expected resolved client id, got %q", in.ClientID)
				}
				return entities.Lead{ID: "l-2", ClientID: "c-9", Status: entities.LeadStatusReceived}, nil
			}),
		)

		w := perform(r, http.MethodPost, "/v1/leads", `{"client":{"name":"Ana","phone":"11 99999-0000"},"property_address":"Rua B, 20"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("update status backwards", func(t *testing.T) {
		r, m := setup(t)
		m.leads.EXPECT().UpdateStatus(gomock.Any(), "l-1", entities.LeadStatusReceived).
			Return(entities.Lead{}, &usecase.RuleError{Kind: usecase.ErrPreconditionFailed, Entity: "lead", ID: "l-1", Rule: "cannot move from visited to received"})

		w := perform(r, http.MethodPatch, "/v1/leads/l-1/status", `{"status":"received"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("list visits of lead", func(t *testing.T) {
		r, m := setup(t)
		m.visits.EXPECT().ListByLeadID(gomock.Any(), "l-1").Return([]entities.Visit{{ID: "v-1", VisitNumber: "VIS-0001-25", Status: entities.VisitStatusScheduled}}, nil)

		w := perform(r, http.MethodGet, "/v1/leads/l-1/visits", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("get and list", func(t *testing.T) {
		r, m := setup(t)
		m.leads.EXPECT().GetByID(gomock.Any(), "l-1").Return(entities.Lead{ID: "l-1", Status: entities.LeadStatusLost}, nil)
		m.leads.EXPECT().List(gomock.Any()).Return(nil, nil)

		if w := perform(r, http.MethodGet, "/v1/leads/l-1", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		w := perform(r, http.MethodGet, "/v1/leads", "")
		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected empty array, got %d %s", w.Code, w.Body.String())
		}
	})
}
