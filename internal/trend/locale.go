package trend

import (
	"fmt"
	"strings"
)

// Locale holds the wording used for annotations and report rendering.
// It never changes which rules fire.
type Locale struct {
	Name string

	Agent        string
	Model        string
	Interaction  string
	HighStars    string // %d is replaced by the star count
	EarlyStars   string // %d is replaced by the star count
	Experimental string
	Fallback     string

	Title         string
	TimeLabel     string
	Section       string
	DescLabel     string
	LinkLabel     string
	CreatedLabel  string
	AnalysisLabel string
	SignalSection string
	SourceLabel   string
	WebhookTitle  string
}

// English is the default locale.
var English = Locale{
	Name:         "en",
	Agent:        "🎯 **Agent direction**: AI agents are a current hotspot and may reshape workflows",
	Model:        "🧠 **Model-layer innovation**: foundation models or fine-tuning approaches, watch for technical breakthroughs",
	Interaction:  "🎨 **Interaction innovation**: interface-layer innovation for AI products, better user experience",
	HighStars:    "🔥 **High attention**: %d stars, strong community recognition, worth a deep dive",
	EarlyStars:   "⚡ **Early signal**: %d stars, on the eve of breaking out, position early",
	Experimental: "⚠️ **Experimental**: the technology is not mature yet, be cautious about commercialization",
	Fallback:     "💡 **Worth watching**: new technical direction, keep observing",

	Title:         "📊 AI Trend Monitor Report",
	TimeLabel:     "Time: ",
	Section:       "🔥 Trending AI Projects on GitHub",
	DescLabel:     "Description: ",
	LinkLabel:     "Link: ",
	CreatedLabel:  "Created: ",
	AnalysisLabel: "📈 PM analysis:",
	SignalSection: "💬 Community Signals",
	SourceLabel:   "Source: ",
	WebhookTitle:  "🔥 AI Trends Daily",
}

// Chinese is the wording of the first release of the monitor.
var Chinese = Locale{
	Name:         "zh",
	Agent:        "🎯 **Agent方向**：AI代理是当前热点，可能改变工作流",
	Model:        "🧠 **模型层创新**：基础模型或微调方案，关注技术突破",
	Interaction:  "🎨 **交互创新**：AI产品界面层创新，用户体验优化",
	HighStars:    "🔥 **高关注度**：%d stars，社区认可度高，值得深入研究",
	EarlyStars:   "⚡ **早期信号**：%d stars，处于爆发前夜，抢先布局",
	Experimental: "⚠️ **实验性质**：技术尚未成熟，商业化需谨慎",
	Fallback:     "💡 **值得关注**：新技术方向，持续观察",

	Title:         "📊 AI 趋势监控报告",
	TimeLabel:     "时间：",
	Section:       "🔥 GitHub AI 热门项目",
	DescLabel:     "描述：",
	LinkLabel:     "链接：",
	CreatedLabel:  "创建：",
	AnalysisLabel: "📈 PM分析：",
	SignalSection: "💬 社区信号",
	SourceLabel:   "来源：",
	WebhookTitle:  "🔥 AI 趋势日报",
}

var locales = map[string]Locale{
	English.Name: English,
	Chinese.Name: Chinese,
}

// LookupLocale returns the locale registered under name. An empty name
// selects English.
func LookupLocale(name string) (Locale, error) {
	if name == "" {
		return English, nil
	}
	l, ok := locales[name]
	if !ok {
		return Locale{}, fmt.Errorf("unknown locale: %s (valid: %s)", name, strings.Join(LocaleNames(), ", "))
	}
	return l, nil
}

// LocaleNames lists the supported locale names.
func LocaleNames() []string {
	return []string{English.Name, Chinese.Name}
}
