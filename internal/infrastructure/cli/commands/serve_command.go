package commands

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/doeshing/healthdesk-go/internal/app"
	configapp "github.com/doeshing/healthdesk-go/internal/application/config"
	"github.com/doeshing/healthdesk-go/internal/domain"
	"github.com/doeshing/healthdesk-go/internal/infrastructure/httpapi"
	"github.com/doeshing/healthdesk-go/internal/version"
)

// NewServeCommand creates the serve command
func NewServeCommand(container *app.Container) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the assessment API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.AssessmentService == nil || container.Tools == nil {
				return errors.New(ErrAssessmentUnavailable)
			}
			cfg, err := container.Config.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			opts, err := serverOptions(cfg, addr)
			if err != nil {
				return err
			}

			server := httpapi.NewServer(container.AssessmentService, container.Tools, container.Logger, opts)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(cmd.OutOrStdout(), "Serving on http://%s/api/v1 (Ctrl+C to stop)\n", opts.Addr)
			if err := server.ListenAndServe(ctx); err != nil {
				return fmt.Errorf("server failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Server stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from server.addr)")
	return cmd
}

// serverOptions builds listener options from validated config; a non-empty addr overrides server.addr.
func serverOptions(cfg domain.Config, addr string) (httpapi.Options, error) {
	if err := configapp.Validate(cfg); err != nil {
		return httpapi.Options{}, fmt.Errorf("invalid configuration: %w", err)
	}
	if addr == "" {
		addr = cfg.Server.Addr
	}
	readTimeout, err := time.ParseDuration(cfg.Server.ReadTimeout)
	if err != nil {
		return httpapi.Options{}, fmt.Errorf("server.read_timeout: %w", err)
	}
	writeTimeout, err := time.ParseDuration(cfg.Server.WriteTimeout)
	if err != nil {
		return httpapi.Options{}, fmt.Errorf("server.write_timeout: %w", err)
	}
	return httpapi.Options{
		Addr:         addr,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		Version:      version.Version,
	}, nil
}
