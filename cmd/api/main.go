package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Werneck0live/consulta-cnpj/internal/admin"
	"github.com/Werneck0live/consulta-cnpj/internal/broker"
	"github.com/Werneck0live/consulta-cnpj/internal/config"
	"github.com/Werneck0live/consulta-cnpj/internal/db"
	"github.com/Werneck0live/consulta-cnpj/internal/handlers"
	"github.com/Werneck0live/consulta-cnpj/internal/receitaws"
	"github.com/Werneck0live/consulta-cnpj/internal/repository"
)

// cmd/api/main.go
func main() {
	cfg := config.Load()

	// Logger JSON "global" - permite usar slog.Info/slog.Error em qualquer lugar
	_ = config.InitLogger(cfg.LogLevel)
	slog.Info("starting", "port", cfg.Port, "mongo_db", cfg.MongoDB)

	// HOOK: admin job (one-off)
	task := flag.String("task", "", "admin task: seed")
	flag.Parse()
	if *task != "" {
		switch *task {
		case "seed":
			// conecta somente o necessário para o seed
			client, err := db.NewMongoClient(cfg.MongoURI)
			if err != nil {
				slog.Error("mongo_connect_error", "err", err)
				os.Exit(1)
			}
			defer func() { _ = client.Disconnect(context.Background()) }()

			repo := repository.NewCompanyRepository(client.Database(cfg.MongoDB))
			if err := admin.SeedCompanies(context.Background(), repo, slog.Default()); err != nil {
				slog.Error("seed_failed", "err", err)
				os.Exit(1)
			}
			slog.Info("seed_done")
			return // encerra sem subir HTTP
		default:
			slog.Error("unknown_admin_task", "task", *task)
			os.Exit(2)
		}
	}

	// conecta Mongo
	client, err := db.NewMongoClient(cfg.MongoURI)
	if err != nil {
		log.Fatalf("mongo connect error: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	repo := repository.NewCompanyRepository(client.Database(cfg.MongoDB))
	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := repo.EnsureIndexes(ctx); err != nil {
			cancel()
			log.Fatalf("ensure indexes error: %v", err)
		}
		cancel()
	}

	// publisher (Rabbit) é opcional: sem broker, a API sobe sem o feed
	var pub handlers.Publisher
	if p, err := broker.NewPublisher(cfg.RabbitURI, cfg.RabbitQueue); err != nil {
		slog.Warn("rabbitmq_unavailable", "err", err)
	} else {
		pub = p
		defer p.Close()
	}

	cliente := receitaws.NewClient(cfg.ReceitaWSURL, cfg.ConsultaTimeout)
	h := handlers.NewConsultaHandler(repo, cliente, pub)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", h.Health)
	mux.HandleFunc("/api/consultas", h.Consultas)
	mux.HandleFunc("/api/empresas", h.Empresas)
	mux.HandleFunc("/api/empresas/", h.EmpresaByCNPJ)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           logMiddleware(mux),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	// start server
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("graceful shutdown error", "err", err)
	}
}

func logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		slog.Info("http_request",
			"method", r.Method, "path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
