package main

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/mejo-sal/new-glam/internal/handlers"
	"github.com/mejo-sal/new-glam/internal/ledger"
	"github.com/mejo-sal/new-glam/internal/sheets"
)

func setupRouter(cfg handlers.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "ledger": cfg.Ledger != nil})
	})

	handlers.RegisterOrderRoutes(r, cfg)

	return r
}

// initLedger builds and provisions the order ledger. A nil result puts the
// service in degraded mode: the order ledger is an auxiliary record, so the
// process keeps serving even when the spreadsheet is unreachable.
func initLedger(ctx context.Context, log *logrus.Logger) *ledger.Ledger {
	cfg, err := sheets.LoadConfig()
	if err != nil {
		log.WithError(err).Error("sheets config missing, running without ledger")
		return nil
	}
	client, err := sheets.NewClient(ctx, cfg)
	if err != nil {
		log.WithError(err).Error("sheets client init failed, running without ledger")
		return nil
	}
	l := ledger.New(client, cfg.SheetName)
	if err := l.EnsureSheet(ctx); err != nil {
		log.WithError(err).Error("ledger bootstrap failed, running without ledger")
		return nil
	}
	return l
}

func main() {
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := handlers.Config{
		Ledger: initLedger(context.Background(), log),
		Log:    log,
	}

	r := setupRouter(cfg)

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.WithField("addr", addr).Info("starting server")
	if err := r.Run(addr); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}
