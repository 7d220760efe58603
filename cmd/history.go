package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mpctl/mpctl/icon"
	"github.com/mpctl/mpctl/style"
	"github.com/mpctl/mpctl/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	historyCmd.Flags().StringP("remove", "r", "", "Forget the entry for this file or url")
	historyCmd.MarkFlagsMutuallyExclusive("json", "remove")
	historyCmd.SetOut(os.Stdout)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently played media",
	Run: func(cmd *cobra.Command, args []string) {
		store := historyStore()

		if target := lo.Must(cmd.Flags().GetString("remove")); target != "" {
			handleErr(store.Remove(target))
			cmd.Printf("%s forgot %s\n", style.Fg(style.Green)(icon.Get(icon.Success)), target)
			return
		}

		recent, err := store.Recent()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(recent))
			return
		}

		if len(recent) == 0 {
			cmd.Println(style.Faint("Nothing was played yet"))
			return
		}

		cmd.Println(style.Faint(util.Quantify(len(recent), "entry", "entries")))
		for _, e := range recent {
			position := formatPosition(e.Position, e.Length)
			cmd.Printf("%s %s %s\n", style.Fg(style.Purple)(e.Title), style.Faint(e.URL), style.Fg(style.Yellow)(position))
		}
	},
}

func formatPosition(position, length float64) string {
	at := time.Duration(position * float64(time.Second)).Round(time.Second)
	if length <= 0 {
		return at.String()
	}

	total := time.Duration(length * float64(time.Second)).Round(time.Second)
	return fmt.Sprintf("%s of %s", at, total)
}
