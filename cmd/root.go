// Package cmd provides the command-line interface for the React Flow docs
// server with configuration management supporting multiple sources.
//
// Configuration precedence, highest first:
//  1. Command-line flags (--config, --log-level)
//  2. REACTFLOW_CONFIG_FILE environment variable - custom config file path
//  3. Individual environment variables (REACTFLOW_LOGGING_LEVEL, etc.)
//  4. Configuration file (.reactflow-docs.yml)
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "reactflow-docs",
	Short: "An MCP server exposing React Flow reference documentation",
	Long: `reactflow-docs serves the React Flow component, hook, type, utility,
example, and topic-guide reference catalog to MCP clients over stdio.

Quick Start:
  reactflow-docs serve            Start the MCP server on stdio
  reactflow-docs list             Print the catalog contents
  reactflow-docs version          Print version information`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .reactflow-docs.yml, can also use REACTFLOW_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig initializes the configuration system with support for multiple
// config sources, mirroring the precedence documented on the package.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("REACTFLOW_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".reactflow-docs")
	}

	viper.SetEnvPrefix("REACTFLOW")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Missing or malformed config files fall back to defaults without
	// failing; serve logs on stderr so this stays off stdout.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
