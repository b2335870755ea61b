package cmd

import (
	"log"
	"os"

	"github.com/lachdavey/ledgerdoc/api"
	"github.com/lachdavey/ledgerdoc/parser"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP upload API",
	Long:  `Starts the HTTP server that accepts statement and payslip PDFs and returns parsed records as JSON.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure logging for server mode
		log.SetOutput(os.Stdout)
		log.SetFlags(log.Ltime | log.Lmsgprefix)

		cfg := api.DefaultConfig()
		port := servePort
		if port == "" {
			port = viper.GetString("server.port")
		}
		if port != "" {
			cfg.Port = ":" + port
		}
		cfg.LogPrefix = "SERVER: "

		server := api.New(cfg, parser.NewDefaultRegistry())
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Port for the HTTP server")
}
