package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"Bendung/internal/auth"
	"Bendung/internal/calc/autodesign"
	"Bendung/internal/calc/batch"
	"Bendung/internal/calc/crest"
	"Bendung/internal/calc/drop"
	"Bendung/internal/calc/dropcheck"
	"Bendung/internal/calc/floor"
	"Bendung/internal/calc/gate"
	"Bendung/internal/calc/gravity"
	"Bendung/internal/calc/importer"
	"Bendung/internal/calc/jump"
	"Bendung/internal/calc/recommend"
	"Bendung/internal/calc/report"
	"Bendung/internal/calc/seepage"
	"Bendung/internal/config"
	"Bendung/internal/log"
)

var wg sync.WaitGroup

// Wrap adds CORS and panic recovery around the router.
func Wrap(mux *mux.Router) http.Handler {
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
		handlers.OptionStatusCode(http.StatusNoContent),
	)
	return handlers.RecoveryHandler(handlers.RecoveryLogger(log.PanicLogger{}))(cors(mux))
}

func HandleList(mux *mux.Router, cfg config.Server) {
	tickets := auth.NewTickets(cfg.TokenKey, cfg.TicketTTL)
	limiter := auth.NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	defaults := cfg.Design.DropCheck()
	g := cfg.Design.Gravity

	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}).Methods("GET")

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	jumpH := &jump.Handler{Gravity: g}
	dropH := &drop.Handler{Gravity: g}
	floorH := &floor.Handler{Defaults: cfg.Design.Floor()}
	checkH := &dropcheck.Handler{Defaults: defaults, Tickets: tickets}
	batchH := &batch.Handler{Defaults: defaults}
	importH := &importer.Handler{Defaults: defaults}
	autoH := &autodesign.Handler{Defaults: defaults}
	recommendH := &recommend.Handler{}
	crestH := &crest.Handler{Gravity: g}
	gateH := &gate.Handler{Gravity: g}
	seepageH := &seepage.Handler{}
	gravityH := &gravity.Handler{}
	reportH := &report.Handler{Tickets: tickets}

	api.HandleFunc("/jump/classify", jumpH.Calc).Methods("POST")

	api.HandleFunc("/drop/design", dropH.Calc).Methods("POST")
	api.HandleFunc("/drop/stability", floorH.Calc).Methods("POST")
	api.HandleFunc("/drop/check", checkH.Calc).Methods("POST")
	api.HandleFunc("/drop/batch", batchH.Calc).Methods("POST")
	api.HandleFunc("/drop/import", importH.Drop).Methods("POST")
	api.HandleFunc("/drop/autodesign", autoH.Floor).Methods("POST")
	api.HandleFunc("/drop/recommend", recommendH.Stages).Methods("POST")

	api.HandleFunc("/weir/crest", crestH.Calc).Methods("POST")
	api.HandleFunc("/weir/gate", gateH.Calc).Methods("POST")
	api.HandleFunc("/weir/seepage", seepageH.Calc).Methods("POST")
	api.HandleFunc("/weir/stability", gravityH.Calc).Methods("POST")

	api.HandleFunc("/report/pdf", reportH.PDF).Methods("POST")
	api.HandleFunc("/report/xlsx", reportH.XLSX).Methods("POST")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	envErr := config.LoadDotEnv()
	cfg, cfgErr := config.FromEnv()
	if err := log.Init(cfg.Debug); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()
	if cfgErr != nil {
		log.Fatalw("configuration error", "error", cfgErr)
	}
	if envErr != nil {
		log.Debugw("no .env file loaded", "error", envErr)
	}

	mux := mux.NewRouter()
	mux.Use(log.Middleware)
	HandleList(mux, cfg)
	handler := Wrap(mux)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Infow("starting server", "addr", cfg.Addr, "tls", cfg.TLS())
	wg.Add(1)
	go func() {
		defer wg.Done()
		var err error
		if cfg.TLS() {
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorw("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server shutdown failed", "error", err)
	}
	log.Info("server stopped")

	wg.Wait()
}
