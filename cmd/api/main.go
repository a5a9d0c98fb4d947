package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/normalhq/chatbox/server/internal/config"
	"github.com/normalhq/chatbox/server/internal/handler"
	"github.com/normalhq/chatbox/server/internal/metrics"
	"github.com/normalhq/chatbox/server/internal/model/template"
	"github.com/normalhq/chatbox/server/internal/service/ai"
	"github.com/normalhq/chatbox/server/internal/service/chat"
	"github.com/normalhq/chatbox/server/internal/service/memory"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	templateStore := template.NewMemoryStore(template.Seed())

	memoryService := memory.NewService(memory.Options{
		MaxHistory:    cfg.Chat.MaxHistory,
		IdleTimeout:   cfg.Chat.SessionTimeout,
		SweepInterval: cfg.Chat.SweepInterval,
	})
	memoryService.Start(ctx)

	recorder := metrics.NewRecorder(cfg.Metrics.LogPath)
	defer func() {
		if err := recorder.Sync(); err != nil {
			log.Printf("warning: failed to flush metadata log: %v", err)
		}
	}()

	generator := newGenerator(ctx, cfg.AI)

	chatService := chat.NewService(chat.Deps{
		Templates: templateStore,
		Memory:    memoryService,
		Generator: generator,
		Metrics:   recorder,
		AITimeout: cfg.AI.Timeout,
	})

	router := handler.NewRouter(chatService, recorder)

	startServer(ctx, cfg.Server, router)
}

// newGenerator initializes the configured AI backend. Any failure leaves
// the service in template-only mode rather than aborting startup.
func newGenerator(ctx context.Context, cfg config.AIConfig) ai.Generator {
	switch cfg.ResolveProvider() {
	case config.ProviderOpenAI:
		generator, err := ai.NewOpenAIGenerator(cfg)
		if err != nil {
			log.Printf("warning: failed to initialize OpenAI generator: %v", err)
			log.Println("continuing in template-only mode")
			return nil
		}
		log.Println("OpenAI generator initialized successfully")
		return generator
	case config.ProviderArk:
		generator, err := ai.NewArkGenerator(ctx, cfg)
		if err != nil {
			log.Printf("warning: failed to initialize Ark generator: %v", err)
			log.Println("continuing in template-only mode")
			return nil
		}
		log.Println("Ark generator initialized successfully")
		return generator
	default:
		log.Println("no AI credential configured, running in template-only mode")
		return nil
	}
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Chatbox backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
