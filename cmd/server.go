package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/reqlens/srsbot/internal/analysis"
	"github.com/reqlens/srsbot/internal/chat"
	"github.com/reqlens/srsbot/internal/config"
	"github.com/reqlens/srsbot/internal/logger"
	"github.com/reqlens/srsbot/internal/server"
	"github.com/reqlens/srsbot/internal/session"
	"github.com/reqlens/srsbot/internal/vocabulary"
)

var (
	serverPort     int
	serverAllowAll bool
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the SRS clarity assistant HTTP server",
	Long:  `Starts the srsbot HTTP server with the chat API, websocket transport, and report downloads.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = serverPort
		}
		if cmd.Flags().Changed("allow-all-origins") {
			cfg.AllowAllOrigins = serverAllowAll
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		log, err := logger.New(cfg.Log, verbose)
		if err != nil {
			return fmt.Errorf("building logger: %w", err)
		}
		defer log.Sync()

		vocab := vocabulary.Default()
		if cfg.VocabularyFile != "" {
			vocab, err = vocabulary.Load(cfg.VocabularyFile)
			if err != nil {
				return fmt.Errorf("loading vocabulary: %w", err)
			}
			log.Info("loaded vocabulary override", zap.String("file", cfg.VocabularyFile))
		}

		store := session.NewStore(cfg.SessionTTL(), cfg.SessionPurgeInterval())
		analyzer := analysis.New(vocab)
		engine := chat.NewEngine(store, analyzer, vocab, log, cfg.MaxClarifications)

		srv := server.New(server.Config{
			Port:     cfg.Port,
			AllowAll: cfg.AllowAllOrigins,
		}, log)
		chat.RegisterRoutes(srv.Router(), chat.NewHandler(engine, store, log))

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			log.Info("shutting down server")
			srv.Shutdown(context.Background())
		}()

		log.Info("srsbot server starting",
			zap.String("version", Version),
			zap.Int("port", cfg.Port),
			zap.Duration("session_ttl", cfg.SessionTTL()))

		return srv.Start()
	},
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 8080, "Port to listen on")
	serverCmd.Flags().BoolVar(&serverAllowAll, "allow-all-origins", false, "Allow any CORS origin")
	rootCmd.AddCommand(serverCmd)
}
