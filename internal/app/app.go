package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/cinebyt/cinema-ticketing/internal/domain"
	"github.com/cinebyt/cinema-ticketing/internal/repository"
	appvalidator "github.com/cinebyt/cinema-ticketing/internal/validator"
	"github.com/cinebyt/cinema-ticketing/internal/vcs"
)

var (
	version = vcs.Version()
)

type application struct {
	config    config
	logger    *slog.Logger
	validator *validator.Validate

	filmRepo    domain.FilmRepository
	showingRepo domain.ShowingRepository
	productRepo domain.ProductRepository
	comboRepo   domain.ComboRepository
}

type config struct {
	port             int
	env              string
	otelCollectorUrl string
}

func Run() error {
	var cfg config

	flag.IntVar(&cfg.port, "port", 3000, "server port")
	flag.StringVar(&cfg.env, "env", "dev", "Environment (dev|staging|prod)")
	flag.StringVar(&cfg.otelCollectorUrl, "otel-collector-url", "", "OpenTelemetry collector URL")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	app := &application{
		config:      cfg,
		logger:      logger,
		validator:   appvalidator.NewValidator(),
		filmRepo:    repository.NewMemoryFilmRepository(),
		showingRepo: repository.NewMemoryShowingRepository(),
		productRepo: repository.NewMemoryProductRepository(),
		comboRepo:   repository.NewMemoryComboRepository(),
	}

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	return app.run()
}

func (app *application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.port),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
		}

		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *application) routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(app.recoverPanic)

	r.Get("/health", app.GetHealth)

	r.Route("/films", func(r chi.Router) {
		r.Post("/", app.CreateFilm)
		r.Get("/", app.GetFilms)
		r.Get("/{filmID}", app.GetFilm)
	})

	r.Route("/showings", func(r chi.Router) {
		r.Post("/", app.ScheduleShowing)
		r.Get("/", app.GetShowings)

		r.Route("/{showingID}", func(r chi.Router) {
			r.Get("/", app.GetShowing)
			r.Get("/seats", app.GetSeatMap)
			r.Get("/seats/{seat}", app.GetSeat)
			r.Patch("/seats/{seat}", app.UpdateSeatOccupancy)
		})
	})

	r.Route("/products", func(r chi.Router) {
		r.Post("/", app.CreateProduct)
		r.Get("/", app.GetProducts)
	})

	r.Route("/combos", func(r chi.Router) {
		r.Post("/", app.CreateCombo)
		r.Get("/{comboID}", app.GetCombo)
		r.Post("/{comboID}/products", app.AddComboProduct)
	})

	return r
}
