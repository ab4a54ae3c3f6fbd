package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kis-szolgyemi/simplepay-gateway/internal/dto"
	"github.com/kis-szolgyemi/simplepay-gateway/internal/payload"
	"github.com/kis-szolgyemi/simplepay-gateway/internal/service"
)

type PaymentHandler struct {
	paymentService service.PaymentService
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) BuildPayload(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.BuildPayloadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	result, err := h.paymentService.BuildPayload(ctx, &req)
	if err != nil {
		if isOrderValidationError(err) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (h *PaymentHandler) ResolveReference(c echo.Context) error {
	ctx := c.Request().Context()

	ref := c.Param("ref")
	if ref == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing order reference")
	}

	id, err := h.paymentService.ResolveReference(ctx, ref)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "unknown order reference")
	}

	return c.JSON(http.StatusOK, &dto.ResolveReferenceResponse{OrderID: id})
}

// isOrderValidationError reports whether the failure is the caller's
// malformed order rather than a server-side fault.
func isOrderValidationError(err error) bool {
	return errors.Is(err, payload.ErrInvalidQuantity) ||
		errors.Is(err, payload.ErrUnknownItemKind) ||
		errors.Is(err, payload.ErrMissingProduct)
}
