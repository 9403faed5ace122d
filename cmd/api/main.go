package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "credscore-service/internal/adapter/http"
	"credscore-service/internal/adapter/middleware"
	"credscore-service/internal/adapter/repository/mysql"
	"credscore-service/internal/config"
	"credscore-service/internal/infrastructure/cache"
	"credscore-service/internal/infrastructure/db"
	"credscore-service/internal/jobs"
	"credscore-service/internal/notify"
	bsengine "credscore-service/internal/usecase/billsplit"
	"credscore-service/internal/usecase/loanengine"
	"credscore-service/internal/usecase/punishment"
	"credscore-service/internal/usecase/riskengine"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	// stores
	users := mysql.NewUserRepository(gdb)
	loans := mysql.NewLoanRepository(gdb)
	requests := mysql.NewLoanRequestRepository(gdb)
	investments := mysql.NewInvestmentRepository(gdb)
	billsplits := mysql.NewBillSplitRepository(gdb)
	chatreports := mysql.NewChatReportRepository(gdb)
	hist := mysql.NewHistoryRepository(gdb)
	notifier := notify.LogNotifier{}

	// engines
	loanEngine := loanengine.NewEngine(loans, requests, users, hist)
	riskEngine := riskengine.NewEngine(users, investments, hist)
	billSplitEngine := bsengine.NewEngine(billsplits, users, hist)
	punishEngine := punishment.NewEngine(users, chatreports, hist, notifier, notifier)

	// periodic loan sweep: once at startup, then every interval
	sweeper := jobs.NewLoanSweeper(loanEngine, jobs.NewRedisLocker(rdb), cfg.SweepInterval)
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go sweeper.Run(ctx)

	h := httpadp.NewHandler()
	loanHandler := httpadp.NewLoanHandler(loanEngine, sweeper)
	riskHandler := httpadp.NewRiskHandler(riskEngine)
	billSplitHandler := httpadp.NewBillSplitHandler(billSplitEngine)
	punishHandler := httpadp.NewPunishHandler(punishEngine)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	// routes
	e.GET("/health", h.Health)

	api := e.Group("/api", middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	api.POST("/loans/requests/:request_id/approve", loanHandler.ApproveRequest)
	api.GET("/loans/requests/:request_id/suggestion", loanHandler.Suggest)
	api.POST("/loans/check", loanHandler.CheckLoans)
	api.POST("/loans/:loan_id/payments", loanHandler.IncrementPayment)
	api.POST("/users/risk-recalc", riskHandler.Recalculate)
	api.GET("/portfolios", riskHandler.Portfolios)
	api.POST("/billsplits/:report_id/solve", billSplitHandler.Solve)
	api.POST("/chat-reports/:report_id/punish", punishHandler.Punish)
	api.DELETE("/chat-reports/:report_id", punishHandler.Dismiss)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
