package styles

import (
	"path/filepath"
	"strings"
)

// Notification icons.
var (
	IconNotifyInfo    = "ℹ"
	IconNotifySuccess = "✓"
	IconNotifyWarning = "⚠"
	IconNotifyError   = "✗"
)

// Nerd font file type icons, shown in the file list when tui.icons is enabled.
// Tip: To find icons use https://github.com/loichyan/nerdfix
var (
	IconFileDefault  = "\uf15b"
	IconFileGo       = "\ue627"
	IconFileJS       = "\U000F031E"
	IconFileTS       = "\U000F06E6"
	IconFilePython   = "\ue73c"
	IconFileMarkdown = "\ue73e"
	IconFileJSON     = "\ue60b"
	IconFileYAML     = "\ue6a8"
	IconFileHTML     = "\ue736"
	IconFileCSS      = "\ue749"
	IconFileRust     = "\ue7a8"
	IconFileC        = "\ue61e"
	IconFileJava     = "\ue738"
	IconFileRuby     = "\ue739"
	IconFileShell    = "\uf489"
	IconFileDocker   = "\U000F0868"
)

var iconsByExt = map[string]*string{
	".go":   &IconFileGo,
	".js":   &IconFileJS,
	".jsx":  &IconFileJS,
	".mjs":  &IconFileJS,
	".ts":   &IconFileTS,
	".tsx":  &IconFileTS,
	".py":   &IconFilePython,
	".md":   &IconFileMarkdown,
	".json": &IconFileJSON,
	".yaml": &IconFileYAML,
	".yml":  &IconFileYAML,
	".html": &IconFileHTML,
	".htm":  &IconFileHTML,
	".css":  &IconFileCSS,
	".scss": &IconFileCSS,
	".rs":   &IconFileRust,
	".c":    &IconFileC,
	".h":    &IconFileC,
	".java": &IconFileJava,
	".rb":   &IconFileRuby,
	".sh":   &IconFileShell,
	".bash": &IconFileShell,
	".zsh":  &IconFileShell,
}

// FileIcon returns the icon for a file path based on its name and extension.
func FileIcon(path string) string {
	if strings.EqualFold(filepath.Base(path), "dockerfile") {
		return IconFileDocker
	}
	if icon, ok := iconsByExt[strings.ToLower(filepath.Ext(path))]; ok {
		return *icon
	}
	return IconFileDefault
}
