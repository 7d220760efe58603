package cmd

import (
	"context"
	"os"
	"runtime"
	"text/template"
	"time"

	"github.com/mpctl/mpctl/config"
	"github.com/mpctl/mpctl/constant"
	"github.com/mpctl/mpctl/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Display only the version string")
	versionCmd.Flags().BoolP("player", "p", false, "Also probe the version of the player binary")
}

var versionTemplate = lo.Must(template.New("version").Funcs(template.FuncMap{
	"faint":   style.Faint,
	"bold":    style.Bold,
	"magenta": style.Fg(style.Purple),
}).Parse(`{{ magenta "▇▇▇" }} {{ magenta .App }}

  {{ faint "Version" }}         {{ bold .Version }}
  {{ faint "Platform" }}        {{ bold .OS }}/{{ bold .Arch }}
  {{ faint "Go" }}              {{ bold .Go }}
{{- if .Player }}
  {{ faint "Player" }}          {{ bold .Binary }} {{ bold .Player }}
{{- end }}
`))

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version information",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		info := struct {
			App, Version, OS, Arch, Go string
			Binary, Player             string
		}{
			App:     constant.App,
			Version: constant.Version,
			OS:      runtime.GOOS,
			Arch:    runtime.GOARCH,
			Go:      runtime.Version(),
		}

		if lo.Must(cmd.Flags().GetBool("player")) {
			cfg := config.Player()
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			v, err := cfg.Versions.Query(ctx, requireBinary(cfg.BinaryPath))
			handleErr(err)
			info.Binary, info.Player = cfg.BinaryPath, v
		}

		handleErr(versionTemplate.Execute(cmd.OutOrStdout(), info))
	},
}
