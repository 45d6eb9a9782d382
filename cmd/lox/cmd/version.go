/*
File   : lox/cmd/lox/cmd/version.go
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const (
	version = "v0.1.0"
	author  = "lox"
	license = "MIT"
	prompt  = "lox> "
	line    = "----------------------------------------------------------------"
)

var banner = `
  _
 | |    _____  __
 | |   / _ \ \/ /
 | |__| (_) >  <
 |_____\___/_/\_\
`

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(c *cobra.Command, args []string) {
		fmt.Printf("lox %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
