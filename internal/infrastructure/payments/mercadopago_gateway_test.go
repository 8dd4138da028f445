package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCreator struct {
	got  payment.Request
	resp *payment.Response
	err  error
}

func (f *fakeCreator) Create(_ context.Context, req payment.Request) (*payment.Response, error) {
	f.got = req
	return f.resp, f.err
}

func quiet() *logrus.Logger {
	l, _ := test.NewNullLogger()
	return l
}

func TestNewMercadoPagoGateway_RequiresTokenOutsideMock(t *testing.T) {
	_, err := NewMercadoPagoGateway("", false)
	assert.ErrorIs(t, err, ErrMissingMercadoPagoAccessToken)

	g, err := NewMercadoPagoGateway("", true)
	require.NoError(t, err)
	assert.True(t, g.mockMode)
}

func TestCreatePayment_Mock(t *testing.T) {
	at := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	g := &MercadoPagoGateway{mockMode: true, now: func() time.Time { return at }, log: quiet()}

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":761.5,"external_reference":"OS-0007-25"}`))
	require.NoError(t, err)
	assert.Equal(t, "approved", status)
	assert.NotEmpty(t, id)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "OS-0007-25", body["external_reference"])
	assert.Equal(t, "accredited", body["status_detail"])
}

func TestCreatePayment_SDK(t *testing.T) {
	fc := &fakeCreator{resp: &payment.Response{ID: 42, Status: "approved"}}
	g := &MercadoPagoGateway{client: fc, now: time.Now, log: quiet()}

	id, status, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":100,"description":"Ordem de serviço OS-0001-25"}`))
	require.NoError(t, err)
	assert.Equal(t, "42", id)
	assert.Equal(t, "approved", status)
	assert.Equal(t, 100.0, fc.got.TransactionAmount)
}

func TestCreatePayment_SDKError(t *testing.T) {
	fc := &fakeCreator{err: errors.New(`{"status":400,"error":"bad_request"}`)}
	g := &MercadoPagoGateway{client: fc, now: time.Now, log: quiet()}

	_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`))
	assert.ErrorIs(t, err, fc.err)
}

func TestCreatePayment_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	_, _, _, err := g.CreatePayment(context.Background(), json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrMercadoPagoGatewayNotConfigured)
}
