package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/invopop/jsonschema"
	"github.com/mpctl/mpctl/config"
	"github.com/mpctl/mpctl/player"
	"github.com/mpctl/mpctl/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().DurationP("timeout", "t", 15*time.Second, "Give up when playback has not started by then")
	infoCmd.Flags().Bool("schema", false, "Print the JSON schema of the output instead")
	infoCmd.SetOut(os.Stdout)
}

var infoCmd = &cobra.Command{
	Use:   "info [file or url]",
	Short: "Print what the player reports about media as JSON",
	Long: `Load media with null audio and video outputs and print the media
information reported once playback starts.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if lo.Must(cmd.Flags().GetBool("schema")) {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(1)(cmd, args)
	},
	Run: func(cmd *cobra.Command, args []string) {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")

		if lo.Must(cmd.Flags().GetBool("schema")) {
			handleErr(encoder.Encode(mediaInfoSchema()))
			return
		}

		cfg := config.Player()
		cfg.BinaryPath = requireBinary(cfg.BinaryPath)

		ctx, cancel := context.WithTimeout(context.Background(), lo.Must(cmd.Flags().GetDuration("timeout")))
		defer cancel()

		erase := func() {}
		if util.IsTerminal() {
			erase = util.PrintErasable("Loading " + util.MediaTitle(args[0]) + "...")
		}
		info, err := probeMedia(ctx, cfg, args[0])
		erase()

		handleErr(err)
		handleErr(encoder.Encode(info))
	},
}

func mediaInfoSchema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	return reflector.Reflect(&player.MediaInfo{})
}

// probeMedia plays target silently and returns its media information once
// playback has started.
func probeMedia(ctx context.Context, cfg player.Config, target string) (player.MediaInfo, error) {
	cfg.AudioOutput = "null"

	p := player.New(cfg)
	defer func() { _ = p.Close() }()

	sub := p.Subscribe()
	if err := p.Start(ctx, player.StartOptions{Args: []string{"-vo", "null"}}); err != nil {
		return player.MediaInfo{}, err
	}
	p.Play(target)

	for {
		select {
		case info := <-sub.MediaInfoChanged:
			if info.Valid {
				return info, nil
			}
		case e := <-sub.Error:
			if e.Kind == player.Fatal {
				return player.MediaInfo{}, fmt.Errorf("%s: %w", target, e)
			}
		case change := <-sub.StateChanged:
			if change.New == player.NotStarted {
				return player.MediaInfo{}, fmt.Errorf("%s: player exited before playback started", target)
			}
		case <-sub.Done:
			return player.MediaInfo{}, player.ErrClosed
		case <-ctx.Done():
			return player.MediaInfo{}, fmt.Errorf("%s: playback did not start: %w", target, ctx.Err())
		}
	}
}
