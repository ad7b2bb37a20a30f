// Root command for the stowr CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/stowr-project/stowr/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataDir string

// configBackend holds the backend selection loaded from config.yaml.
var configBackend string

// configDSN holds the postgres DSN loaded from config.yaml.
var configDSN string

var rootCmd = &cobra.Command{
	Use:   "stowr",
	Short: "Stowr tracks assets, locations, tags, and collections",
	Long: `Stowr is an asset-management tool. Entities are stored through a
backend-agnostic repository layer; the default backend keeps a SQLite
database under the data directory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configBackend = cfg.GetString(cfgKeyBackend)
		configDataDir = cfg.GetString(cfgKeyDataDir)
		configDSN = cfg.GetString(cfgKeyDSN)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.stowr-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(assetCmd)
	rootCmd.AddCommand(locationCmd)
	rootCmd.AddCommand(tagCmd)
	rootCmd.AddCommand(collectionCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence flag > STOWR_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDataDir returns the data directory following the precedence
// flag > config.yaml data_dir > STOWR_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}
