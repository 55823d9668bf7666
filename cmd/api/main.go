package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "fundo-loans/internal/adapter/http"
	"fundo-loans/internal/adapter/middleware"
	"fundo-loans/internal/adapter/repository/mysql"
	"fundo-loans/internal/config"
	domainLoan "fundo-loans/internal/domain/loan"
	domainPayment "fundo-loans/internal/domain/payment"
	"fundo-loans/internal/infrastructure/cache"
	"fundo-loans/internal/infrastructure/db"
	exportUC "fundo-loans/internal/usecase/export"
	loanUC "fundo-loans/internal/usecase/loan"
	paymentUC "fundo-loans/internal/usecase/payment"
)

func main() {
	seed := flag.Bool("seed", false, "load the development fixture when the loans table is empty")
	flag.Parse()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := gdb.AutoMigrate(&domainLoan.Loan{}, &domainPayment.Payment{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if *seed {
		if err := db.Seed(context.Background(), gdb); err != nil {
			log.Fatalf("seed: %v", err)
		}
		log.Println("seed fixture loaded")
	}

	loanRepo := mysql.NewLoanRepository(gdb)
	paymentRepo := mysql.NewPaymentRepository(gdb)
	guow := mysql.NewGormUoW(gdb)

	loanHandler := httpadp.NewLoanHandler(loanUC.NewUsecase(loanRepo, paymentRepo))
	paymentHandler := httpadp.NewPaymentHandler(paymentUC.NewUsecase(guow))
	exportHandler := httpadp.NewExportHandler(exportUC.NewExporter(loanRepo))
	h := httpadp.NewHandler()

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	// Idempotency only when redis is configured; the API works without it.
	if cfg.RedisAddr != "" {
		rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		e.Use(middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	}

	e.GET("/health", h.Health)
	e.GET("/loans", loanHandler.ListLoans)
	e.POST("/loans", loanHandler.CreateLoan)
	e.GET("/loans/export", exportHandler.ExportLoans)
	e.GET("/loans/:id", loanHandler.GetLoanDetails)
	e.POST("/loans/:id/payment", paymentHandler.CreatePayment)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
