package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Storefront HTTP API backed by PostgreSQL",
	Long: `storefront serves the product catalog, account and checkout API.

Configuration is read from the environment (and a .env file if present):
  DATABASE_URL      PostgreSQL connection string (required)
  SERVER_PORT       HTTP listen port (default 3000)
  LOG_LEVEL         debug, info, warn or error (default info)
  LOG_FORMAT        json or text (default json)
  LOG_FILE          optional rotating log file
  BCRYPT_COST       password hashing cost (default 10)
  SHUTDOWN_TIMEOUT  graceful shutdown deadline (default 5s)
  ORDER_TIMEOUT     deadline for a single order placement (default 10s)`,
	SilenceUsage: true,
}

func init() {
	// Prices go over the wire as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	rootCmd.AddCommand(newServeCmd(), newMigrateCmd())
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
