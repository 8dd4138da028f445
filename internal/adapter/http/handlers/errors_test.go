package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"reforma_xpto/internal/usecase"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", &usecase.RuleError{Kind: usecase.ErrValidationFailed, Entity: "budget", Fields: map[string]string{"items[0].quantity": "gt"}}, http.StatusBadRequest, "VALIDATION_FAILED"},
		{"not found", &usecase.RuleError{Kind: usecase.ErrNotFound, Entity: "lead", ID: "l-1"}, http.StatusNotFound, "NOT_FOUND"},
		{"precondition", &usecase.RuleError{Kind: usecase.ErrPreconditionFailed, Entity: "visit", ID: "v-1"}, http.StatusConflict, "PRECONDITION_FAILED"},
		{"gateway bad request", fmt.Errorf("%w: boom", usecase.ErrPaymentGatewayBadRequest), http.StatusBadRequest, "PAYMENT_PROVIDER_BAD_REQUEST"},
		{"gateway unauthorized", fmt.Errorf("%w: boom", usecase.ErrPaymentGatewayUnauthorized), http.StatusBadGateway, "PAYMENT_PROVIDER_UNAUTHORIZED"},
		{"not approved", fmt.Errorf("%w: status=rejected", usecase.ErrPaymentNotApproved), http.StatusPaymentRequired, "PAYMENT_NOT_APPROVED"},
		{"not configured", usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable, "PAYMENT_PROVIDER_NOT_CONFIGURED"},
		{"internal", errors.New("dynamo down"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appErr := mapError(tc.err)
			if appErr.HTTPStatus != tc.status || appErr.Code != tc.code {
				t.Fatalf("expected %d %s, got %d %s", tc.status, tc.code, appErr.HTTPStatus, appErr.Code)
			}
		})
	}

	t.Run("validation details", func(t *testing.T) {
		appErr := mapError(&usecase.RuleError{Kind: usecase.ErrValidationFailed, Entity: "budget", Fields: map[string]string{"items[0].quantity": "gt"}})
		if appErr.ToHTTPError().Details["items[0].quantity"] != "gt" {
			t.Fatalf("expected field details, got %+v", appErr.ToHTTPError())
		}
	})

	t.Run("internal message hides cause", func(t *testing.T) {
		appErr := mapError(errors.New("secret table name"))
		if appErr.ToHTTPError().Message != "An internal error occurred" {
			t.Fatalf("unexpected message: %s", appErr.ToHTTPError().Message)
		}
	})
}
