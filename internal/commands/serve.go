package commands

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/flowcast-dev/flowcast/internal/server"
)

func newServeCommand(planPath *string) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve projections as a read-only JSON API",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Optional .env for deployments; flags win over it.
			_ = godotenv.Load()

			log := logrus.New()
			log.SetFormatter(&logrus.JSONFormatter{})
			if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
				log.SetLevel(lvl)
			}

			if addr == "" {
				addr = os.Getenv("FLOWCAST_ADDR")
			}
			if addr == "" {
				addr = ":8080"
			}

			srv := server.New(*planPath, log)
			log.WithField("addr", addr).Info("listening")
			return http.ListenAndServe(addr, srv.Handler())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default $FLOWCAST_ADDR or :8080)")
	return cmd
}
