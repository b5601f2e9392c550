package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/bililink-cli/bililink/color"
	"github.com/bililink-cli/bililink/constant"
	"github.com/bililink-cli/bililink/key"
	"github.com/bililink-cli/bililink/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field is one registered setting together with its factory value.
type Field struct {
	Key         string
	Value       any
	Description string
	// Options restricts a string field to a closed set of values.
	Options []string
}

// Pretty renders the field for `bililink config info`.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env is the variable that overrides the field, e.g. BILILINK_LOGS_LEVEL.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.App + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON emits both the effective and the default value.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string   `json:"key"`
		Value       any      `json:"value"`
		Default     any      `json:"default"`
		Description string   `json:"description"`
		Type        string   `json:"type"`
		Options     []string `json:"options,omitempty"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
		Options:     f.Options,
	})
}

func (f *Field) typeName() string {
	return reflect.TypeOf(f.Value).String()
}

// Default is every known setting keyed by its dotted name.
var Default = make(map[string]Field)

// EnvExposed lists the keys that may also come from BILILINK_* variables.
var EnvExposed []string

func register(k string, v any, desc string, options ...string) {
	if _, ok := Default[k]; ok {
		panic("config: key registered twice: " + k)
	}

	Default[k] = Field{Key: k, Value: v, Description: desc, Options: options}
	EnvExposed = append(EnvExposed, k)
}

func init() {
	register(key.NetworkTimeout, 30, "Timeout of the live API request in seconds.\nA request exceeding it fails with a network error")
	register(key.NetworkUserAgent, constant.UserAgent, "User-Agent header sent to the live API")
	register(key.NetworkFingerprint, false, "Dial the live API with a browser TLS fingerprint (uTLS).\nOnly needed when plain Go clients get rejected")
	register(key.HistoryRememberRooms, true, "Remember resolved room ids")
	register(key.HistorySuggestRooms, true, "Suggest remembered room ids when prompting")
	register(key.IconsVariant, "plain", "Icons variant.\nNerd requires a nerd-font", "emoji", "kaomoji", "plain", "squares", "nerd")
	register(key.Player, "", "Application used by --open.\nEmpty means the system default handler")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Log level, from less to most verbose", "panic", "fatal", "error", "warn", "info", "debug", "trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Enable automatic version check")
	register(key.CliLanguage, "en", "Language of prompts and messages", "en", "zh")
	register(key.CliPauseOnExit, true, "Wait for a key press before exiting in interactive mode")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(f *Field) string { return f.typeName() },
	"join":     strings.Join,
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename . }}{{ if .Options }}
{{ blue "Options:" }} {{ join .Options ", " }}{{ end }}`))
