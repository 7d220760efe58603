package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mpctl/mpctl/config"
	"github.com/mpctl/mpctl/history"
	"github.com/mpctl/mpctl/key"
	"github.com/mpctl/mpctl/log"
	"github.com/mpctl/mpctl/player"
	"github.com/mpctl/mpctl/tui"
	"github.com/mpctl/mpctl/util"
	"github.com/mpctl/mpctl/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().Int64P("window", "w", 0, "Embed the video into the window with this id")
	playCmd.Flags().StringSliceP("arg", "a", []string{}, "Extra argument for the player, may be repeated")
	playCmd.Flags().BoolP("continue", "c", false, "Resume the most recently played media")
}

var playCmd = &cobra.Command{
	Use:   "play [file or url]",
	Short: "Play media with an interactive control screen",
	Long: `Play media with an interactive control screen.
When no media is given you can pick one of the recently played or enter a new one.`,
	Example: "  mpctl play ~/music/song.mp3\n  mpctl play http://example.com/radio.ogg --arg -cache --arg 512\n  mpctl play --continue",
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if !util.IsTerminal() {
			handleErr(errors.New("play needs a terminal, use info for scripting"))
		}

		var (
			target  string
			startAt float64
		)
		switch {
		case len(args) > 0:
			target = args[0]
		case lo.Must(cmd.Flags().GetBool("continue")):
			target, startAt = lastPlayed()
		default:
			target, startAt = promptTarget()
		}

		cfg := config.Player()
		cfg.BinaryPath = requireBinary(cfg.BinaryPath)

		opts := player.StartOptions{
			WindowID: lo.Must(cmd.Flags().GetInt64("window")),
			Args:     lo.Must(cmd.Flags().GetStringSlice("arg")),
		}

		handleErr(play(cmd.Context(), cfg, opts, target, startAt))
	},
}

func historyStore() *history.Store {
	return history.Open(where.History(), viper.GetInt(key.HistoryLimit))
}

func resumeAt(e *history.Entry) float64 {
	return lo.Ternary(e.Resumable(), e.Position, 0)
}

func lastPlayed() (string, float64) {
	recent, err := historyStore().Recent()
	handleErr(err)

	if len(recent) == 0 {
		handleErr(errors.New("nothing was played yet"))
	}
	return recent[0].URL, resumeAt(recent[0])
}

func promptTarget() (string, float64) {
	recent, err := historyStore().Recent()
	if err != nil {
		log.Warnf("history: %v", err)
	}

	if len(recent) == 0 {
		return promptURL(), 0
	}

	const other = "Something else..."
	options := lo.Map(recent, func(e *history.Entry, _ int) string {
		return fmt.Sprintf("%s (%s)", e.Title, e.URL)
	})

	var picked int
	handleErr(survey.AskOne(&survey.Select{
		Message: "What should be played?",
		Options: append(options, other),
	}, &picked))

	if picked == len(recent) {
		return promptURL(), 0
	}
	return recent[picked].URL, resumeAt(recent[picked])
}

func promptURL() string {
	var target string
	handleErr(survey.AskOne(&survey.Input{
		Message: "What should be played?",
		Help:    "A file path or any URL the player understands",
	}, &target, survey.WithValidator(survey.Required)))
	return strings.TrimSpace(target)
}

func play(ctx context.Context, cfg player.Config, opts player.StartOptions, target string, startAt float64) error {
	if ctx == nil {
		ctx = context.Background()
	}

	p := player.New(cfg)
	defer func() { _ = p.Close() }()

	if err := p.Start(ctx, opts); err != nil {
		return err
	}

	err := tui.Run(p, tui.Options{
		URL:        target,
		SeekStep:   float64(viper.GetInt(key.PlayerSeekStep)),
		VolumeStep: float64(viper.GetInt(key.PlayerVolumeStep)),
		StartAt:    startAt,
	})

	if viper.GetBool(key.HistorySave) {
		remember(historyStore(), target, p.Tell(), p.MediaInfo())
	}
	return err
}

// remember records where playback of target stopped.
func remember(store *history.Store, target string, position float64, info player.MediaInfo) {
	title, ok := info.Tags["Title"]
	if !ok || title == "" {
		title = util.MediaTitle(target)
	}

	entry := &history.Entry{
		URL:      strings.TrimSpace(target),
		Title:    title,
		Position: position,
		Length:   info.Length,
	}
	if err := store.Save(entry); err != nil {
		log.Warnf("history: %v", err)
	}
}
