// Package cmd implements the mkm CLI commands.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/donaldgifford/mkm/internal/metrics"
	"github.com/donaldgifford/mkm/internal/mkm"
	"github.com/donaldgifford/mkm/pkg/logger"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "mkm",
		Short: "CLI client for the Cardmarket API",
		Long: "mkm is a command-line client for the Cardmarket (MKM) marketplace API.\n" +
			"It reads dedicated-app credentials from a YAML config file and lets you\n" +
			"inspect your account, search the catalogue, and manage stock.",
		SilenceUsage: true,
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			path := viper.GetString("metrics_file")
			if path == "" {
				return nil
			}
			return metrics.WriteTextfile(path)
		},
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default $HOME/.mkm.yaml)")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")
	rootCmd.PersistentFlags().
		String("log-level", "", "log level (debug, info, warn, error); overrides logging.level")
	rootCmd.PersistentFlags().
		String("log-format", "", "log format (text, json); overrides logging.format")
	rootCmd.PersistentFlags().
		String("metrics-file", "", "write Prometheus metrics to this textfile after the command")

	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))
	cobra.CheckErr(viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level")))
	cobra.CheckErr(viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format")))
	cobra.CheckErr(viper.BindPFlag("metrics_file", rootCmd.PersistentFlags().Lookup("metrics-file")))

	rootCmd.AddCommand(accountCmd())
	rootCmd.AddCommand(gamesCmd())
	rootCmd.AddCommand(expansionsCmd())
	rootCmd.AddCommand(singlesCmd())
	rootCmd.AddCommand(productsCmd())
	rootCmd.AddCommand(stockCmd())
	rootCmd.AddCommand(cartCmd())
	rootCmd.AddCommand(articlesCmd())
	rootCmd.AddCommand(wantslistsCmd())
	rootCmd.AddCommand(languagesCmd())
	rootCmd.AddCommand(versionCmd())
}

func initConfig() {
	viper.SetConfigFile(configPath())
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("MKM")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// configPath returns the --config flag, or $HOME/.mkm.yaml.
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)
	return filepath.Join(home, ".mkm.yaml")
}

// runtime bundles the client with the signing session built from the same
// configuration.
type runtime struct {
	client *mkm.Client
	sess   mkm.Session
}

// newRuntime loads the config file and builds a client. A bad config file
// terminates the process.
func newRuntime() *runtime {
	log := logger.New(viper.GetString("logging.level"), viper.GetString("logging.format"))
	c := mkm.NewFromConfigFile(configPath(), mkm.WithLogger(log))
	return &runtime{client: c, sess: c.NewSession()}
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
