package cmd

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Embedded default configuration, used when no config file is present.
const defaultConfigYAML = `
server:
  port: "8080"
database:
  url: ""
`

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "ledgerdoc",
	Short: "Parses bank statements and payslips into structured records",
	Long: `ledgerdoc converts the text of bank statement and payslip PDFs into
structured financial records. Documents are matched against an ordered
registry of format-specific parsers; unrecognized formats are rejected
rather than guessed at.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.ledgerdoc.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

func initConfig() {
	viper.SetConfigType("yaml")
	if err := viper.ReadConfig(bytes.NewBufferString(defaultConfigYAML)); err != nil {
		log.Fatalf("error reading embedded config: %v", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigName(".ledgerdoc")
		}
	}

	viper.AutomaticEnv()

	if err := viper.MergeInConfig(); err == nil && verbose {
		log.Println("Using config file:", viper.ConfigFileUsed())
	}
}
