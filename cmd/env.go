// Package cmd implements the command-line interface for mpvlink.
package cmd

import (
	"os"
	"strings"

	"github.com/mpvlink-cli/mpvlink/config"
	"github.com/mpvlink-cli/mpvlink/constant"
	"github.com/mpvlink-cli/mpvlink/style"
	"github.com/mpvlink-cli/mpvlink/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Display only environment variables that are currently defined")
	envCmd.Flags().BoolP("unset-only", "u", false, "Display only environment variables that are currently undefined")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

// envCmd displays the current process values for all supported environment variables.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Display the collection of supported environment variables",
	Long:  `Display the collection of supported environment variables and their current process values.`,
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		envs := append([]string{}, config.EnvExposed...)
		envs = append(envs, where.EnvConfigPath)
		slices.Sort(envs)

		for _, env := range envs {
			if env != where.EnvConfigPath {
				env = strings.ToUpper(constant.Mpvlink + "_" + config.EnvKeyReplacer.Replace(env))
			}

			value, set := os.LookupEnv(env)
			if (setOnly && !set) || (unsetOnly && set) {
				continue
			}

			cmd.Printf("%s=%s\n", style.Fg(style.HiCyan)(env), value)
		}
	},
}
