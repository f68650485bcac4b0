package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mudhumeni-ai/server/internal/i18n"
	"github.com/mudhumeni-ai/server/internal/logx"
	"github.com/mudhumeni-ai/server/internal/server"
)

var serverPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the advisory HTTP server",
	Long:  `Starts the mudhumeni server with the REST chat API and WebSocket chat.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		svc, closeStore, err := buildService(cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		port := cfg.Port
		if cmd.Flags().Changed("port") {
			port = serverPort
		}

		srv := server.New(server.Config{
			Port:            port,
			DefaultLanguage: i18n.Parse(cfg.DefaultLanguage),
			AllowAll:        true,
		}, svc)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			logx.Info().Msg("shutting down server")
			srv.Shutdown(context.Background())
		}()

		logx.Info().
			Str("version", Version).
			Int("port", port).
			Str("model", cfg.Model).
			Str("session_backend", string(cfg.Session.Backend)).
			Msg("mudhumeni server starting")

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serverCmd)
}
