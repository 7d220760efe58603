package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/mpctl/mpctl/constant"
	"github.com/mpctl/mpctl/key"
	"github.com/mpctl/mpctl/player"
	"github.com/mpctl/mpctl/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field is a registered configuration key with its default.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty renders the field, its current value and its default for the terminal.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable bound to the field.
func (f *Field) Env() string {
	return strings.ToUpper(constant.App + "_" + EnvKeyReplacer.Replace(f.Key))
}

// MarshalJSON includes the current value next to the default.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.TypeName(),
	})
}

// TypeName names the type values of the field must have.
func (f *Field) TypeName() string {
	return reflect.TypeOf(f.Value).String()
}

// Default holds every registered field by key.
var Default = make(map[string]Field)

// EnvExposed lists the keys bound to environment variables.
var EnvExposed []string

func register(k string, v any, desc string) {
	if _, exists := Default[k]; exists {
		panic("duplicate config key: " + k)
	}
	Default[k] = Field{Key: k, Value: v, Description: desc}
	EnvExposed = append(EnvExposed, k)
}

func init() {
	d := player.DefaultConfig()
	ms := func(v time.Duration) int { return int(v.Milliseconds()) }

	register(key.PlayerBinary, d.BinaryPath, "Player executable, looked up in PATH when not absolute")
	register(key.PlayerAudioOutput, d.AudioOutput, "Audio output driver passed with -ao.\nLeave empty to let the player choose")
	register(key.PlayerVideoOutput, d.VideoOutput, "Video output driver passed with -vo when embedding into a window")
	register(key.PlayerExtraArgs, []string{}, "Extra arguments appended to every player start")
	register(key.PlayerStartTimeout, ms(d.StartTimeout), "Milliseconds to wait for the player to come up")
	register(key.PlayerStopTimeout, ms(d.StopTimeout), "Milliseconds to wait for the player to quit before killing it")
	register(key.PlayerLoadTimeout, ms(d.LoadTimeout), "Milliseconds a seek waits for the media to load")
	register(key.PlayerParameterDelay, ms(d.ParameterDelay), "Milliseconds of quiet before a changed parameter is sent")
	register(key.PlayerErrorWindow, ms(d.ErrorWindow), "Milliseconds errors of the same kind are merged for")
	register(key.PlayerFinishDelay, ms(d.FinishDelay), "Milliseconds between reaching the end and reporting it")
	register(key.PlayerSeekStep, 5, "Seconds the arrow keys seek by")
	register(key.PlayerVolumeStep, 5, "Volume change per key press, from 1 to 100")
	register(key.VersionCacheHours, 48, "Hours a probed player version is trusted")
	register(key.HistorySave, true, "Remember played media and where playback stopped")
	register(key.HistoryLimit, 50, "Number of recently played media to remember")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"purple":   style.Fg(style.Purple),
	"blue":     style.Fg(style.Blue),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(style.Green)(b)
			}
			return style.Fg(style.Red)(b)
		case string:
			return style.Fg(style.Yellow)(strconv.Quote(value))
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
