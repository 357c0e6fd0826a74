package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"smartchat/internal/attach"
	"smartchat/internal/chat"
	"smartchat/internal/config"
	"smartchat/internal/llm"
	"smartchat/internal/session"
	"smartchat/internal/store"
	"smartchat/internal/uploads"
	"smartchat/internal/web"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer st.Close()
	log.Printf("database ready at %s", st.Path())

	factory := llm.NewFactory(cfg)

	var extractor attach.TextExtractor
	if cfg.PDFExtraction {
		extractor = attach.NewPDFExtractor()
	} else {
		log.Printf("PDF extraction disabled; PDF uploads will be summarized by filename only")
	}
	summarizer := attach.NewSummarizer(extractor)

	svc := chat.NewService(st, factory, summarizer, cfg.SystemPrompt, cfg.HistoryLimit)
	sessions := session.NewManager(string(cfg.DefaultProvider))

	pruner := uploads.NewPruner(cfg.UploadDir, cfg.UploadMaxAge)
	if err := pruner.Start(); err != nil {
		log.Printf("failed to start upload pruner: %v", err)
	}
	defer pruner.Stop()

	srv := web.New(svc, sessions, factory, cfg.UploadDir, cfg.ListenAddr)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("web server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Printf("shutting down")
	if err := srv.Stop(); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
