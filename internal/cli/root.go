// internal/cli/root.go
package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/arc-language/mypkgs"
)

var (
	cfgFile string
	rootDir string
	debug   bool
	config  *mypkgs.Config
)

// rootCmd represents the base command. Running it with no arguments is
// the tool's whole job: print the manually installed packages.
var rootCmd = &cobra.Command{
	Use:   "mypkgs",
	Short: "List manually installed Debian packages",
	Long: `mypkgs - List manually installed Debian packages

Reads the dpkg extended states, the APT history logs, and the dpkg
status file to work out which packages a user installed explicitly,
as opposed to those pulled in as dependencies. Needs no root: every
input is world-readable.`,
	Version: "0.1.0",
	Args:    cobra.NoArgs,
	RunE:    runRoot,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/mypkgs/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "inspect a system mounted at this directory instead of /")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = mypkgs.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = mypkgs.DefaultConfig()
	}

	// Override config with flags
	if debug {
		config.Debug = true
	}
	if rootDir != "" {
		config.Rebase(rootDir)
	}
	config.Logger = log.New(os.Stderr, "", 0)
}

// runRoot always succeeds: an empty result is not an error, and read
// failures surface only as diagnostics on stderr
func runRoot(cmd *cobra.Command, args []string) error {
	mgr := mypkgs.NewManager(config)
	return mgr.Report(cmd.OutOrStdout())
}
