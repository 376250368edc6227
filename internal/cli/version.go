// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("mypkgs version 0.1.0")
		fmt.Println("Simple util to view manually installed packages on Debian")
		fmt.Println("https://github.com/arc-language/mypkgs")
	},
}
