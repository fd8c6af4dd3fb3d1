package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/oyunsanaa/oyunsanaa/internal/identity"
	"github.com/oyunsanaa/oyunsanaa/internal/server"
	"github.com/oyunsanaa/oyunsanaa/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the result sync server",
	Long:  "Serves the durable result store over HTTP so check-ins sync across devices. Sessions are verified against OYUNSANAA_SESSION_TOKEN.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadInstruments(cmd); err != nil {
			return err
		}

		verifier, _, ok := identity.FromEnv()
		if !ok {
			return fmt.Errorf("OYUNSANAA_SESSION_TOKEN must be set to serve")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		cfg := server.DefaultConfig()
		cfg.Host, _ = cmd.Flags().GetString("host")
		cfg.Port, _ = cmd.Flags().GetInt("port")
		cfg.Debug, _ = cmd.Flags().GetBool("debug")

		srv := server.New(cfg, st.ResultRepo(), st.MoodRepo(), verifier)

		errCh := make(chan error, 1)
		go func() {
			fmt.Fprintf(os.Stderr, "Listening on %s:%d\n", cfg.Host, cfg.Port)
			errCh <- srv.Start()
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case <-sigCh:
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		}
	},
}

func init() {
	serveCmd.Flags().String("host", "localhost", "Host to bind")
	serveCmd.Flags().Int("port", 8080, "Port to listen on")
	serveCmd.Flags().Bool("debug", false, "Verbose request logging")
}
