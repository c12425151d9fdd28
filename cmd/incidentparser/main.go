package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Vandita-014/incident-parser/internal/auth"
	"github.com/Vandita-014/incident-parser/internal/config"
	"github.com/Vandita-014/incident-parser/internal/db"
	"github.com/Vandita-014/incident-parser/internal/httpserver"
	"github.com/Vandita-014/incident-parser/internal/llm"
	"github.com/Vandita-014/incident-parser/internal/logging"
	"github.com/Vandita-014/incident-parser/internal/records"
)

func main() {
	ctx := context.Background()
	logger := logging.New()

	cfg := config.Load()
	if cfg.GroqAPIKey == "" {
		log.Fatal("GROQ_API_KEY is not set; create a .env file or export it")
	}

	dbConn, err := db.Open(ctx, cfg.DBDSN)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer dbConn.Close()

	if err := db.RunMigrations(ctx, dbConn, "sql"); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	userStore := auth.NewStore(dbConn)
	if err := userStore.SeedFromFile(ctx, cfg.UsersPath); err != nil {
		log.Fatalf("seed users: %v", err)
	}
	authSvc := auth.NewService(userStore, cfg.JWTSecret, 12*time.Hour)

	client := llm.NewGroqClient(llm.Config{
		APIKey:  cfg.GroqAPIKey,
		BaseURL: cfg.LLMBaseURL,
		Model:   cfg.LLMModel,
	})
	parser := records.NewParser(client)
	store := records.NewStore(dbConn)

	handler := httpserver.NewRouter(logger, authSvc, parser, store, cfg.IngestToken, cfg.MinReportLen)
	server := httpserver.New(cfg.HTTPAddr, handler, logger)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("http server: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
