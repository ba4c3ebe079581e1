// Package cmd provides the CLI commands for accounting-formulas.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"accounting-formulas/internal/config"
	"accounting-formulas/internal/logging"
)

// Version is the CLI version
const Version = "0.1.0"

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "accounting",
	Short: "Managerial accounting cost formulas",
	Long: `accounting classifies costs as fixed or variable and direct or indirect,
aggregates them per cost object, and derives contribution margin and
break-even figures.

Examples:
  accounting chapter 2
  accounting analyze ./klear.hcl
  accounting analyze --format json ./products.hcl
  accounting break-even --fixed 1000 --price 100 --variable 50`,
	SilenceUsage: true,
}

// Execute runs the CLI
func Execute() error {
	defer logging.Sync()
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.accounting-formulas.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(chapterCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(breakEvenCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.Set(cfg)

	// Initialize logging
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "accounting version %s\n", Version)
	},
}
