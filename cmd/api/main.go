package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"eventrsvp/config"
	_ "eventrsvp/docs"
	"eventrsvp/internal/adapters/auth"
	"eventrsvp/internal/adapters/email"
	httpdelivery "eventrsvp/internal/delivery/http"
	"eventrsvp/internal/delivery/http/controllers"
	"eventrsvp/internal/repository/postgres"
	"eventrsvp/internal/services"
)

const shutdownTimeout = 10 * time.Second

// @title Event RSVP API
// @version 1.0
// @description Invitation lookup, guest accept/decline and the admin dashboard API.
// @BasePath /
// @securityDefinitions.apikey AdminAuth
// @in header
// @name Authorization
// @description Admin credential from /api/admin/verify-password, as "Bearer {token}". The rsvp_admin cookie is accepted too.
func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "hash-password":
			hashPassword(os.Args[2:])
			return
		case "migrate":
			if err := migrateOnly(); err != nil {
				log.Fatal(err)
			}
			return
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := config.NewLogger()
	if cfg.SessionSecretGenerated {
		logger.Warn("ADMIN_SESSION_SECRET not set; generated a per-process secret, admin sessions end on restart")
	}

	ctx := context.Background()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	err = db.PingContext(pingCtx)
	cancel()
	if err != nil {
		log.Fatalf("ping database: %v", err)
	}
	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	invitationRepo := postgres.NewInvitationRepository(db)
	responseRepo := postgres.NewResponseRepository(db)

	if _, err := services.SeedDefaultInvitation(ctx, invitationRepo, services.SeedInvitation(cfg.Seed), logger); err != nil {
		log.Fatalf("seed: %v", err)
	}

	hasher := auth.NewBcryptHasher(0)
	passwordHash := cfg.AdminPasswordHash
	if passwordHash == "" {
		passwordHash, err = hasher.Hash(cfg.AdminPassword)
		if err != nil {
			log.Fatalf("hash admin password: %v", err)
		}
	}
	jwtManager := auth.NewJWTManager(cfg.AdminSessionSecret)
	gate := services.NewAccessGate(hasher, passwordHash, jwtManager, jwtManager, cfg.AdminSessionTTL)

	mailer, err := email.NewMailer(ctx, email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
		SMTP: email.SMTPConfig{
			Host:     cfg.Email.SMTPHost,
			Port:     cfg.Email.SMTPPort,
			Username: cfg.Email.SMTPUser,
			Password: cfg.Email.SMTPPassword,
		},
		SendGrid: email.SendGridConfig{APIKey: cfg.Email.SendGridAPIKey},
	}, logger)
	if err != nil {
		log.Fatalf("create mailer: %v", err)
	}
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		log.Fatalf("load email templates: %v", err)
	}
	notifier := services.NewNotificationService(mailer, renderer, logger)
	dispatcher := services.NewDispatcher(invitationRepo, notifier, cfg.NotifyQueueSize, cfg.NotifyTimeout, logger)
	dispatcher.Start()

	rsvpService := services.NewRSVPService(invitationRepo, responseRepo, dispatcher, cfg.RequestTimeout, logger)
	adminService := services.NewAdminService(invitationRepo, responseRepo, cfg.RequestTimeout)

	handler := httpdelivery.NewRouter(logger, httpdelivery.Controllers{
		Invitation: controllers.NewInvitationController(logger, rsvpService),
		RSVP:       controllers.NewRSVPController(logger, rsvpService),
		Admin:      controllers.NewAdminController(logger, adminService, gate, cfg.CookieSecure),
	}, gate, db, httpdelivery.RouterConfig{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		StaticDir:          cfg.StaticDir,
		VerifyRatePerSec:   cfg.AdminVerifyRatePerSec,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	logger.Info("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(ctx, shutdownTimeout)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "err", err)
	}
	if err := dispatcher.Close(shutdownCtx); err != nil {
		logger.Error("notification queue not drained", "err", err)
	}
	if err := db.Close(); err != nil {
		logger.Error("close database", "err", err)
	}
}

// hashPassword prints a value suitable for ADMIN_PASSWORD_HASH.
func hashPassword(args []string) {
	if len(args) != 1 || args[0] == "" {
		log.Fatal("usage: api hash-password <password>")
	}
	hash, err := auth.NewBcryptHasher(0).Hash(args[0])
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(hash)
}

// migrateOnly applies the schema and exits without serving.
func migrateOnly() error {
	_ = godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return errors.New("DATABASE_URL is required")
	}
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	return postgres.Migrate(context.Background(), db)
}
