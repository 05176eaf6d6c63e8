// Package panels hosts the gallery of demo panels the workspace
// arranges, plus the explicit rendering context (theme, locale)
// threaded into every panel factory.
package panels

// Context is the rendering context handed to panel factories. It
// satisfies dock.RenderContext.
type Context struct {
	Theme  Theme
	Locale string
}

func NewContext(theme Theme, locale string) *Context {
	if _, ok := stringTables[locale]; !ok {
		locale = "en"
	}
	return &Context{Theme: theme, Locale: locale}
}

// Tr resolves a UI string for the context locale, falling back to
// English, then to the key itself.
func (c *Context) Tr(key string) string {
	if table, ok := stringTables[c.Locale]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := stringTables["en"]; ok {
		if v, ok := s[key]; ok {
			return v
		}
	}
	return key
}

// Locales lists the selectable locales in display order.
func Locales() []string { return []string{"en", "zh-CN"} }

var stringTables = map[string]map[string]string{
	"en": {
		"panel.button":     "Button",
		"panel.input":      "Input",
		"panel.dropdown":   "Dropdown",
		"panel.text":       "Text",
		"panel.modal":      "Modal",
		"panel.popup":      "Popup",
		"panel.switch":     "Switch",
		"panel.progress":   "Progress",
		"panel.table":      "Table",
		"panel.image":      "Image",
		"panel.icon":       "Icon",
		"panel.tooltip":    "Tooltip",
		"panel.calendar":   "Calendar",
		"panel.resizable":  "Resizable",
		"panel.scrollable": "Scrollable",
		"panel.accordion":  "Accordion",
		"panel.list":       "List",
	},
	"zh-CN": {
		"panel.button":     "按钮",
		"panel.input":      "输入框",
		"panel.dropdown":   "下拉菜单",
		"panel.text":       "文本",
		"panel.modal":      "对话框",
		"panel.popup":      "弹出层",
		"panel.switch":     "开关",
		"panel.progress":   "进度条",
		"panel.table":      "表格",
		"panel.image":      "图片",
		"panel.icon":       "图标",
		"panel.tooltip":    "提示",
		"panel.calendar":   "日历",
		"panel.resizable":  "可调整",
		"panel.scrollable": "可滚动",
		"panel.accordion":  "手风琴",
		"panel.list":       "列表",
	},
}
