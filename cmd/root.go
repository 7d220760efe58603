// Package cmd implements the mpctl command-line interface.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/mpctl/mpctl/constant"
	"github.com/mpctl/mpctl/icon"
	"github.com/mpctl/mpctl/key"
	"github.com/mpctl/mpctl/log"
	"github.com/mpctl/mpctl/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("binary", "b", "", "Player executable to drive")
	lo.Must0(viper.BindPFlag(key.PlayerBinary, rootCmd.PersistentFlags().Lookup("binary")))
}

var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Drive MPlayer from the terminal",
	Long: style.Title(constant.App) + "\n\n" +
		style.Italic("Play, inspect and control media through an MPlayer process in slave mode."),
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("version")) {
			versionCmd.Run(versionCmd, nil)
			return
		}

		if len(args) == 0 {
			lo.Must0(cmd.Help())
			return
		}

		playCmd.Run(playCmd, args)
	},
}

// Execute runs the command selected by the process arguments.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
