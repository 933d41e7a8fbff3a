package keymaps

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type KeyDefinition struct {
	DefaultKey string
	Help       string
}

var KeyDefinitions = map[string]KeyDefinition{
	"ShowHelp":        {"ctrl+b", "show/hide commands"},
	"QuitApp":         {"q", "quit"},
	"ToggleDone":      {"space", "check/uncheck task"},
	"AddTask":         {"a", "add task"},
	"EditTask":        {"e", "edit task"},
	"DeleteTask":      {"d", "delete task"},
	"MoveInProgress":  {"p", "move to in progress"},
	"PrevDay":         {"left", "previous day"},
	"NextDay":         {"right", "next day"},
	"JumpToToday":     {"h", "jump to today"},
	"CollapseSection": {"z", "collapse/expand section"},
	"FilterSection":   {"f", "filter section"},
	"CalcTime":        {"c", "total planned time"},
	"ToggleTheme":     {"ctrl+t", "toggle dark/light theme"},
}

type KeyMap struct {
	ShowHelp        key.Binding
	QuitApp         key.Binding
	ToggleDone      key.Binding
	AddTask         key.Binding
	EditTask        key.Binding
	DeleteTask      key.Binding
	MoveInProgress  key.Binding
	PrevDay         key.Binding
	NextDay         key.Binding
	JumpToToday     key.Binding
	CollapseSection key.Binding
	FilterSection   key.Binding
	CalcTime        key.Binding
	ToggleTheme     key.Binding
}

func BuildKeyMap(configOverrides map[string]string) KeyMap {
	km := KeyMap{}
	for action, def := range KeyDefinitions {
		keyStr := def.DefaultKey
		if override, exists := configOverrides[action]; exists && override != "" {
			keyStr = override
		}

		switch action {
		case "ShowHelp":
			km.ShowHelp = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "QuitApp":
			km.QuitApp = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ToggleDone":
			km.ToggleDone = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "AddTask":
			km.AddTask = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "EditTask":
			km.EditTask = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "DeleteTask":
			km.DeleteTask = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "MoveInProgress":
			km.MoveInProgress = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "PrevDay":
			km.PrevDay = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "NextDay":
			km.NextDay = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "JumpToToday":
			km.JumpToToday = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "CollapseSection":
			km.CollapseSection = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "FilterSection":
			km.FilterSection = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "CalcTime":
			km.CalcTime = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		case "ToggleTheme":
			km.ToggleTheme = parseKeyBinding(keyStr, def.DefaultKey, def.Help)
		}
	}
	return km
}

func parseKeyBinding(keyStr, defaultKey, helpText string) key.Binding {
	if keyStr == "" {
		keyStr = defaultKey
	}

	// Handle multiple keys separated by commas
	keys := strings.Split(keyStr, ",")
	for i, k := range keys {
		keys[i] = strings.TrimSpace(k)
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keys[0], helpText),
	)
}

// GetDefaultKeyMappings returns the default key mappings for configuration
func GetDefaultKeyMappings() map[string]string {
	keyMappings := make(map[string]string)
	for action, def := range KeyDefinitions {
		keyMappings[action] = def.DefaultKey
	}
	return keyMappings
}
