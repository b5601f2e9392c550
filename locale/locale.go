// Package locale holds every user-facing message of the CLI and their translations.
//
// Messages are keyed by their English text. The active language comes from the cli.language
// config key and falls back to English for anything unknown.
package locale

import (
	"context"
	"errors"

	"github.com/bililink-cli/bililink/key"
	"github.com/bililink-cli/bililink/live"
	"github.com/bililink-cli/bililink/prompt"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const (
	RoomPrompt    = "Enter a room number or live room url: "
	QualityPrompt = "Select quality:"
	FormatPrompt  = "Select format:"
	QualityLow    = "Smooth"
	QualityHigh   = "Original"
	Fetching      = "Fetching live streams..."
	PressAnyKey   = "Press any key to continue..."
	NoStreams     = "No %s streams found."
	Opening       = "Opening %s"
	Interrupted   = "Interrupted."
	BadRoom       = "Invalid live room url or room number."
	BadChoice     = "Invalid choice, enter one of %s."
	NetworkFailed = "Network request failed, please try again later."
	BadResponse   = "The API returned an unexpected response."
	RequestFailed = "Request failed (code %d)."
	NotLive       = "The room is not live."
	RecentRooms   = "Recent rooms"
	NoRecentRooms = "No recent rooms."
	WrittenTo     = "Written to %s"
)

var chinese = map[string]string{
	RoomPrompt:    "输入房间号或直播间地址: ",
	QualityPrompt: "选择画质:",
	FormatPrompt:  "选择格式:",
	QualityLow:    "流畅",
	QualityHigh:   "原画",
	Fetching:      "正在获取直播源...",
	PressAnyKey:   "按任意键继续...",
	NoStreams:     "没有找到 %s 直播源。",
	Opening:       "正在打开 %s",
	Interrupted:   "已取消。",
	BadRoom:       "直播间地址或房间号格式不正确。",
	BadChoice:     "选择无效，请输入 %s。",
	NetworkFailed: "网络请求出错，请稍后再试。",
	BadResponse:   "接口返回格式错误",
	RequestFailed: "请求出错。(code %d)",
	NotLive:       "未开播。",
	RecentRooms:   "最近的直播间",
	NoRecentRooms: "没有最近的直播间。",
	WrittenTo:     "已写入 %s",
}

var (
	supported = []language.Tag{language.English, language.Chinese}
	matcher   = language.NewMatcher(supported)
	messages  = catalog.NewBuilder(catalog.Fallback(language.English))
)

func init() {
	for msg, translated := range chinese {
		lo.Must0(messages.SetString(language.Chinese, msg, translated))
	}
}

// Languages lists the accepted values of cli.language.
func Languages() []string {
	return lo.Map(supported, func(t language.Tag, _ int) string {
		return t.String()
	})
}

// Tag returns the best supported match for the configured language.
func Tag() language.Tag {
	return Match(viper.GetString(key.CliLanguage))
}

// Match returns the supported language closest to the given BCP 47 tag, English when nothing fits.
func Match(tag string) language.Tag {
	parsed, err := language.Parse(tag)
	if err != nil {
		return language.English
	}

	_, index, confidence := matcher.Match(parsed)
	if confidence == language.No {
		return language.English
	}

	return supported[index]
}

// T formats msg in the configured language.
func T(msg string, args ...any) string {
	return In(Tag(), msg, args...)
}

// In formats msg in the given language.
func In(tag language.Tag, msg string, args ...any) string {
	return message.NewPrinter(tag, message.Catalog(messages)).Sprintf(msg, args...)
}

// Quality returns the menu label of q.
func Quality(q live.Quality) string {
	switch q {
	case live.QualityHigh:
		return T(QualityHigh)
	default:
		return T(QualityLow)
	}
}

// Describe turns a pipeline failure into the message shown to the user.
func Describe(err error) string {
	var apiErr *live.APIError

	switch {
	case errors.Is(err, prompt.ErrInterrupted), errors.Is(err, context.Canceled):
		return T(Interrupted)
	case errors.As(err, &apiErr):
		return T(RequestFailed, apiErr.Code)
	case errors.Is(err, live.ErrNotLive):
		return T(NotLive)
	case errors.Is(err, live.ErrNetwork):
		return T(NetworkFailed)
	case errors.Is(err, live.ErrResponseFormat):
		return T(BadResponse)
	case errors.Is(err, live.ErrInvalidInput):
		return T(BadRoom)
	default:
		return err.Error()
	}
}
