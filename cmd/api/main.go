package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"github.com/kis-szolgyemi/simplepay-gateway/internal/callback"
	"github.com/kis-szolgyemi/simplepay-gateway/internal/config"
	"github.com/kis-szolgyemi/simplepay-gateway/internal/locale"
	"github.com/kis-szolgyemi/simplepay-gateway/internal/payload"
	"github.com/kis-szolgyemi/simplepay-gateway/internal/refcodec"
	"github.com/kis-szolgyemi/simplepay-gateway/internal/security"
	"github.com/kis-szolgyemi/simplepay-gateway/internal/server"
	"github.com/kis-szolgyemi/simplepay-gateway/internal/service"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	urls, err := callback.NewURLBuilder(cfg.BaseURL)
	if err != nil {
		log.Fatal("invalid base url: ", err)
	}

	refs := refcodec.NewCodec(cfg.Gateway.RefPrefix)

	builder, err := payload.NewBuilder(
		cfg.Gateway.Merchant,
		cfg.Gateway.PluginVersion,
		security.NewSaltGenerator(),
		refs,
		locale.NewStaticProvider(cfg.Gateway.Locale),
		urls,
		time.Now,
	)
	if err != nil {
		log.Fatal("init payload builder: ", err)
	}

	paymentService := service.NewPaymentService(builder, refs)

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	srv := server.NewServer(paymentService)

	log.Println("Starting HTTP server on", serverAddr)
	go func() {
		if err := srv.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Println("Signal received, starting graceful shutdown...")

	if err := srv.Shutdown(); err != nil {
		log.Fatal("HTTP server shutdown error")
	}
}
