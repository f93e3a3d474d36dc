package app

import (
	"errors"
	"gigflow-api/internal/config"
	"gigflow-api/internal/controller"
	"gigflow-api/internal/repo"
	"gigflow-api/internal/service"
	"gigflow-api/pkg/http_server"
	"gigflow-api/pkg/postgres"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/labstack/echo"
)

func runMigrations(postgresDB *postgres.Postgres, cfg config.PostgresConfig) error {
	if err := postgresDB.Database.Ping(); err != nil {
		return err
	}

	driver, err := pgmigrate.WithInstance(postgresDB.Database, &pgmigrate.Config{DatabaseName: cfg.Database})
	if err != nil {
		return err
	}

	migrations, err := migrate.NewWithDatabaseInstance(cfg.MigrationsPath, cfg.Database, driver)
	if err != nil {
		return err
	}

	if err := migrations.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Println("no change made by migration scripts")

			return nil
		}

		return err
	}

	return nil
}

func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	log.Println("Connecting database...")
	postgresDB, err := postgres.NewDB(cfg.Postgres.Conn)
	if err != nil {
		log.Fatalf("Error occurred while connecting to db: %v", err)
	}
	defer postgresDB.Close()

	log.Println("Running migrations...")
	if err := runMigrations(postgresDB, cfg.Postgres); err != nil {
		log.Fatalf("Migration error: %v", err)
	}

	repositories := repo.NewRepositories(postgresDB)
	tokens := service.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	services := service.NewServices(repositories, tokens)
	handler := echo.New()

	log.Println("Setup routes...")
	controller.SetupRoutesHandlers(handler, services, controller.RouterOptions{
		SecureCookies: cfg.IsProduction(),
		TokenTTL:      tokens.TTL(),
	})

	log.Println("Starting server...")
	httpServer := http_server.New(handler, cfg.Server.Address, cfg.Server.ShutdownTimeout)

	log.Println("Ready to process requests on " + cfg.Server.Address)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Println("Got signal: " + s.String())
	case err = <-httpServer.Notify():
		log.Printf("Notify error: %v", err)
	}

	log.Println("Shutting down...")
	if err := httpServer.Shutdown(); err != nil {
		log.Printf("Shutdown error: %v", err)
	} else {
		log.Println("Successful shutdown")
	}
}
