package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kis-szolgyemi/simplepay-gateway/internal/callback"
	"github.com/kis-szolgyemi/simplepay-gateway/internal/dto"
	"github.com/kis-szolgyemi/simplepay-gateway/internal/locale"
	"github.com/kis-szolgyemi/simplepay-gateway/internal/payload"
	"github.com/kis-szolgyemi/simplepay-gateway/internal/refcodec"
	"github.com/kis-szolgyemi/simplepay-gateway/internal/security"
	"github.com/kis-szolgyemi/simplepay-gateway/internal/service"
)

func newTestHandler(t *testing.T) *PaymentHandler {
	t.Helper()

	urls, err := callback.NewURLBuilder("https://shop.example.com/")
	require.NoError(t, err)

	refs := refcodec.NewCodec("shop1-")

	builder, err := payload.NewBuilder(
		"MERCHANT01",
		"1.2.3",
		security.NewSaltGenerator(),
		refs,
		locale.NewStaticProvider("en_US"),
		urls,
		time.Now,
	)
	require.NoError(t, err)

	return NewPaymentHandler(service.NewPaymentService(builder, refs))
}

const sampleBody = `{
	"order_id": 42,
	"currency": "USD",
	"total": 25.00,
	"shipping_total": 5.00,
	"shipping_tax": 0.25,
	"billing": {"first_name": "Jane", "last_name": "Doe", "email": "jane@example.com", "phone": "+36301234567"},
	"items": [
		{"kind": "line_item", "quantity": 1, "total": 20.00, "product": {"id": 7, "sku": "W1", "name": "Widget"}},
		{"kind": "fee", "quantity": 1, "total": 5.25, "fee_id": 101, "fee_name": "Handling"}
	]
}`

func postPayload(t *testing.T, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/payments/payload", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	return rec, newTestHandler(t).BuildPayload(c)
}

func TestBuildPayloadHandler(t *testing.T) {
	rec, err := postPayload(t, sampleBody)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.BuildPayloadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, refcodec.NewCodec("shop1-").Encode(42), resp.OrderRef)

	var body map[string]any
	require.NoError(t, json.Unmarshal(resp.Payload, &body))
	assert.Equal(t, "MERCHANT01", body["merchant"])
	assert.Equal(t, []any{"CARD"}, body["methods"])
}

func TestBuildPayloadHandlerRejectsBadRequests(t *testing.T) {
	testCases := map[string]string{
		"malformed json": `{"order_id": `,
		"zero quantity": `{
			"order_id": 1, "currency": "USD",
			"items": [{"kind": "line_item", "quantity": 0, "total": 10.00, "product": {"id": 1, "name": "Widget"}}]
		}`,
		"unknown item kind": `{
			"order_id": 1, "currency": "USD",
			"items": [{"kind": "coupon", "quantity": 1, "total": 10.00}]
		}`,
	}

	for name, body := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := postPayload(t, body)

			var httpErr *echo.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		})
	}
}

func TestResolveReferenceHandler(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t)
	ref := refcodec.NewCodec("shop1-").Encode(42)

	req := httptest.NewRequest(http.MethodGet, "/api/payments/reference/"+ref, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("ref")
	c.SetParamValues(ref)

	require.NoError(t, h.ResolveReference(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ResolveReferenceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint64(42), resp.OrderID)
}

func TestResolveReferenceHandlerUnknownRef(t *testing.T) {
	e := echo.New()
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/payments/reference/bogus", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("ref")
	c.SetParamValues("bogus")

	err := h.ResolveReference(c)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}
