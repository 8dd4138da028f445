package handlers

import (
	"errors"
	"net/http"
	"testing"

	"reforma_xpto/internal/adapter/http/handlers/mocks"
	"reforma_xpto/internal/domain/board"
	"reforma_xpto/internal/domain/entities"
	"reforma_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestBoardHandler(t *testing.T) {
	setup := func(t *testing.T) (*gin.Engine, *mocks.MockIBoardUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIBoardUseCase(ctrl)
		h := NewBoardHandler(uc)
		r := gin.New()
		r.GET("/v1/board", h.GetBoard)
		r.POST("/v1/board/move", h.MoveCard)
		r.DELETE("/v1/board/order", h.ResetBoardOrder)
		return r, uc
	}

	t.Run("board uses session header and search", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Board(gomock.Any(), "s-1", "ana").Return([]board.Column{{Status: entities.LeadStatusReceived, Cards: []board.Card{}}}, nil)

		w := perform(r, http.MethodGet, "/v1/board?search=ana", "", BoardSessionHeader, "s-1")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("board default session", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Board(gomock.Any(), "default", "").Return([]board.Column{}, nil)

		if w := perform(r, http.MethodGet, "/v1/board", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("move requires index", func(t *testing.T) {
		r, _ := setup(t)
		w := perform(r, http.MethodPost, "/v1/board/move", `{"status":"received","lead_id":"l-1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("move to top", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Move(gomock.Any(), "s-1", entities.LeadStatusReceived, "l-2", 0).Return([]board.Column{}, nil)

		w := perform(r, http.MethodPost, "/v1/board/move?session=s-1", `{"status":"received","lead_id":"l-2","to_index":0}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("move lead from another column", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().Move(gomock.Any(), "default", entities.LeadStatusSent, "l-1", 1).
			Return(nil, &usecase.RuleError{Kind: usecase.ErrPreconditionFailed, Entity: "board", ID: "l-1", Rule: errors.New("lead is not in the column").Error()})

		w := perform(r, http.MethodPost, "/v1/board/move", `{"status":"sent","lead_id":"l-1","to_index":1}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("reset", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().ResetOrder(gomock.Any(), "s-1")

		w := perform(r, http.MethodDelete, "/v1/board/order", "", BoardSessionHeader, "s-1")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestSequenceHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockISequenceUseCase(ctrl)
	h := NewSequenceHandler(uc)
	r := gin.New()
	r.GET("/v1/sequences/settings", h.GetSettings)
	r.PUT("/v1/sequences/settings", h.UpdateSettings)

	uc.EXPECT().Settings(gomock.Any()).Return(usecase.SequenceSettings{Prefix: "0000"})
	w := perform(r, http.MethodGet, "/v1/sequences/settings", "")
	if w.Code != http.StatusOK || decodeBody(t, w)["prefix"] != "0000" {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}

	uc.EXPECT().UpdatePrefix(gomock.Any(), "this-prefix-is-way-too-long").
		Return(usecase.SequenceSettings{}, &usecase.RuleError{Kind: usecase.ErrValidationFailed, Entity: "sequence", Fields: map[string]string{"prefix": "max"}})
	w = perform(r, http.MethodPut, "/v1/sequences/settings", `{"prefix":"this-prefix-is-way-too-long"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	uc.EXPECT().UpdatePrefix(gomock.Any(), "RX").Return(usecase.SequenceSettings{Prefix: "RX"}, nil)
	w = perform(r, http.MethodPut, "/v1/sequences/settings", `{"prefix":"RX"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
