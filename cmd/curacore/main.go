package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"

	"github.com/curacore/curacore/internal/handler"
	appI18n "github.com/curacore/curacore/internal/i18n"
	"github.com/curacore/curacore/internal/llm"
	"github.com/curacore/curacore/internal/llm/prompts"
	"github.com/curacore/curacore/internal/model"
	"github.com/curacore/curacore/internal/quiz"
	"github.com/curacore/curacore/internal/store"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "curacore",
		Short: "Mental wellness backend for students",
	}

	serve := serveCmd()
	root.AddCommand(serve, exportCmd())

	// Make "serve" the default when no subcommand is given.
	root.RunE = serve.RunE

	// Register serve flags on root so bare `curacore --addr ...` still works.
	root.Flags().AddFlagSet(serve.Flags())

	return root
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE:  runServe,
	}
	f := cmd.Flags()
	f.StringP("addr", "a", ":8000", "HTTP listen address")
	f.String("db", "curacore.db", "SQLite database path")
	f.String("llm-url", "http://localhost:11434/v1", "OpenAI-compatible API base URL (empty disables LLM chat)")
	f.String("llm-key", "ollama", "API key for LLM")
	f.String("llm-model", "llama3.2", "LLM model name")
	f.StringP("lang", "l", "en", "Default response language (en, hi)")
	f.String("prompt-variant", string(prompts.PromptStandard), "Chat prompt variant (warm, standard, clinical)")
	f.StringSlice("cors-origins", []string{"http://localhost:3000"}, "Allowed CORS origins (empty disables CORS)")
	f.Duration("session-ttl", store.DefaultSessionTTL, "Auth token lifetime")
	f.String("admin-password", "", "Initial admin password (or set CURACORE_ADMIN_PASSWORD)")
	f.String("log-level", "info", "Log level (debug, info, warn, error)")
	f.String("log-format", "text", "Log format (text, json)")
	return cmd
}

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export assessment results as JSON",
		RunE:  runExport,
	}
	f := cmd.Flags()
	f.String("db", "curacore.db", "SQLite database path")
	f.String("date", "", "Export date in YYYY-MM-DD format (defaults to today)")
	f.StringP("output", "o", "-", "Output file path (- for stdout)")
	f.String("log-level", "info", "Log level (debug, info, warn, error)")
	f.String("log-format", "text", "Log format (text, json)")
	return cmd
}

func setupLogging(cmd *cobra.Command) {
	v := viperForCmd(cmd)

	var logLevel slog.Level
	switch strings.ToLower(v.GetString("log-level")) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	handlerOpts := &slog.HandlerOptions{Level: logLevel}
	var logHandler slog.Handler
	switch strings.ToLower(v.GetString("log-format")) {
	case "json":
		logHandler = slog.NewJSONHandler(os.Stderr, handlerOpts)
	default:
		logHandler = slog.NewTextHandler(os.Stderr, handlerOpts)
	}
	slog.SetDefault(slog.New(logHandler))
}

// viperForCmd binds a command's flags and environment to a fresh viper instance.
func viperForCmd(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	_ = v.BindPFlags(cmd.Flags())

	v.SetEnvPrefix("CURACORE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("curacore")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/curacore")
	v.AddConfigPath("/etc/curacore")
	v.AddConfigPath("/data")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Warn("error reading config file", "error", err)
		}
	} else {
		slog.Info("loaded config file", "path", v.ConfigFileUsed())
	}

	return v
}

func runServe(cmd *cobra.Command, _ []string) error {
	setupLogging(cmd)
	v := viperForCmd(cmd)

	db, err := store.New(v.GetString("db"))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	// Seed default admin user if no users exist.
	if err := seedAdmin(db, v.GetString("admin-password")); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	// Stamp instance metadata.
	instanceID, err := db.EnsureInstanceID()
	if err != nil {
		return fmt.Errorf("ensure instance ID: %w", err)
	}
	if err := db.SetMetadata(store.MetaCatalogVersion, quiz.CatalogVersion); err != nil {
		return fmt.Errorf("record catalog version: %w", err)
	}

	lang := v.GetString("lang")
	if err := appI18n.Init(lang); err != nil {
		return fmt.Errorf("init i18n: %w", err)
	}

	promptVariant := strings.ToLower(strings.TrimSpace(v.GetString("prompt-variant")))
	if !prompts.IsValidVariant(promptVariant) {
		slog.Warn("invalid prompt-variant, using standard", "variant", promptVariant)
		promptVariant = string(prompts.PromptStandard)
	}

	// Chat works without an LLM endpoint via the built-in responder.
	var llmClient *llm.Client
	llmURL := v.GetString("llm-url")
	if llmURL != "" {
		llmClient = llm.New(
			llmURL,
			v.GetString("llm-key"),
			v.GetString("llm-model"),
			prompts.PromptVariant(promptVariant),
		)
		if err := llmClient.Ping(context.Background()); err != nil {
			slog.Warn("LLM health check failed, chat falls back to built-in responses", "error", err)
			llmClient = nil
		} else {
			slog.Info("LLM endpoint OK", "url", llmURL, "model", v.GetString("llm-model"))
		}
	}

	appCfg := model.AppConfig{
		SessionTTL:    v.GetDuration("session-ttl"),
		PromptVariant: promptVariant,
		DefaultLang:   lang,
		CORSOrigins:   v.GetStringSlice("cors-origins"),
	}

	h, err := handler.New(db, llmClient, appCfg)
	if err != nil {
		return fmt.Errorf("create handler: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if len(appCfg.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   appCfg.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}
	r.Use(appI18n.Middleware(lang))
	h.Routes(r)

	// Sweep expired auth tokens in the background.
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := db.CleanupExpiredSessions(); err != nil {
				slog.Error("session cleanup failed", "error", err)
			}
		}
	}()

	addr := v.GetString("addr")
	slog.Info("starting server",
		"addr", addr,
		"instance_id", instanceID,
		"catalog_version", quiz.CatalogVersion,
		"model", v.GetString("llm-model"),
		"llm_url", llmURL,
		"lang", lang,
		"prompt_variant", promptVariant,
		"cors_origins", appCfg.CORSOrigins,
	)
	return http.ListenAndServe(addr, r)
}

func runExport(cmd *cobra.Command, _ []string) error {
	setupLogging(cmd)
	v := viperForCmd(cmd)

	db, err := store.New(v.GetString("db"))
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	results, err := db.ExportAllResults()
	if err != nil {
		return fmt.Errorf("export results: %w", err)
	}

	instanceID, err := db.EnsureInstanceID()
	if err != nil {
		return fmt.Errorf("ensure instance ID: %w", err)
	}

	date := v.GetString("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	export := model.ResultsExport{
		InstanceID:     instanceID,
		CatalogVersion: quiz.CatalogVersion,
		Date:           date,
		NumResults:     len(results),
		Results:        results,
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}

	outPath := v.GetString("output")
	var w io.Writer
	if outPath == "" || outPath == "-" {
		w = os.Stdout
	} else {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	// Ensure trailing newline.
	_, _ = fmt.Fprintln(w)

	return nil
}

func seedAdmin(db *store.Store, password string) error {
	count, err := db.UserCount()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if password == "" {
		return fmt.Errorf("admin password is required: set --admin-password flag or CURACORE_ADMIN_PASSWORD env var")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	_, err = db.CreateUser(model.User{
		Name:         "Administrator",
		Email:        "admin@curacore.local",
		PasswordHash: string(hash),
		Role:         model.UserRoleAdmin,
		Active:       true,
	})
	if err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	slog.Info("seeded default admin user", "email", "admin@curacore.local")
	return nil
}
