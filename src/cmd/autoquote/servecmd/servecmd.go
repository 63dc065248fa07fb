package servecmd

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"autoquote/src/internal/web"
)

// New returns the serve command running the HTTP front end. The listen
// address comes from --addr, falling back to HOST/PORT from the environment
// (a .env file is honored).
func New() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web front end and JSON batch APIs",
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			if addr == "" {
				addr = addrFromEnv()
			}
			srv := &http.Server{
				Addr:              addr,
				Handler:           web.NewHandler(),
				ReadHeaderTimeout: 5 * time.Second,
			}
			log.Printf("autoquote serving on %s", addr)
			return srv.ListenAndServe()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default HOST:PORT from environment, else :8000)")
	return cmd
}

func addrFromEnv() string {
	host := os.Getenv("HOST")
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	return fmt.Sprintf("%s:%s", host, port)
}
