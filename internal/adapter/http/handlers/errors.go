package handlers

import (
	"errors"
	"io"
	"net/http"

	"reforma_xpto/internal/infrastructure/logging"
	"reforma_xpto/internal/usecase"
	"reforma_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

	errMissingClient = errors.New("client_id or client is required")
)

func mapError(err error) *pkg.AppError {
	var rule *usecase.RuleError
	errors.As(err, &rule)

	switch {
	case errors.Is(err, usecase.ErrValidationFailed):
		appErr := pkg.NewDomainError("VALIDATION_FAILED", ruleMessage(rule, "Validation failed"), err, http.StatusBadRequest)
		if rule != nil && len(rule.Fields) > 0 {
			appErr = appErr.WithDetails(rule.Fields)
		}
		return appErr
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", ruleMessage(rule, "Resource not found"), err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrPreconditionFailed):
		return pkg.NewDomainError("PRECONDITION_FAILED", ruleMessage(rule, "Operation not allowed in the current state"), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainError("PAYMENT_PROVIDER_BAD_REQUEST", "Payment provider rejected the request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainError("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago context", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotApproved):
		return pkg.NewDomainError("PAYMENT_NOT_APPROVED", "Payment was not approved by the provider", err, http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider is not configured", err, http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// ruleMessage exposes the violated rule; it never carries stored data beyond ids.
func ruleMessage(rule *usecase.RuleError, fallback string) string {
	if rule == nil {
		return fallback
	}
	return rule.Error()
}

func writeError(c *gin.Context, area string, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logging.LogError(logging.Default(), area, c.FullPath(), nil, err)
	} else {
		logging.Default().Warnf("[%s][handler] %s %s failed err=%v", area, c.Request.Method, c.FullPath(), err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeBindError(c *gin.Context, area string, err error) {
	logging.Default().Warnf("[%s][handler] invalid payload %s %s err=%v", area, c.Request.Method, c.FullPath(), err)
	c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
}

// bindOptionalJSON accepts an empty body as the zero payload.
func bindOptionalJSON(c *gin.Context, obj any) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
