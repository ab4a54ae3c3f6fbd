package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/kis-szolgyemi/simplepay-gateway/internal/handler"
	"github.com/kis-szolgyemi/simplepay-gateway/internal/service"
)

type Server struct {
	echo           *echo.Echo
	paymentHandler *handler.PaymentHandler
}

func NewServer(paymentService service.PaymentService) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:           e,
		paymentHandler: handler.NewPaymentHandler(paymentService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	payments := api.Group("/payments")
	payments.POST("/payload", s.paymentHandler.BuildPayload)
	payments.GET("/reference/:ref", s.paymentHandler.ResolveReference)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
