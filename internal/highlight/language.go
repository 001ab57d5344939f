package highlight

import (
	"path/filepath"
	"strings"
)

// PlainText is the language name used when no mapping exists.
const PlainText = "plaintext"

var langByExt = map[string]string{
	"js": "javascript", "ts": "typescript", "jsx": "javascript", "tsx": "typescript",
	"py": "python", "rs": "rust", "go": "go", "java": "java", "c": "c",
	"cpp": "cpp", "cc": "cpp", "cxx": "cpp", "h": "c", "hpp": "cpp", "hxx": "cpp",
	"cs": "csharp", "php": "php", "rb": "ruby", "kt": "kotlin", "swift": "swift",
	"sh": "bash", "bash": "bash", "zsh": "bash", "fish": "bash",
	"yaml": "yaml", "yml": "yaml", "json": "json", "toml": "toml",
	"md": "markdown", "html": "html", "htm": "html", "xml": "xml",
	"css": "css", "scss": "scss", "less": "less",
	"sql": "sql",
}

// Language maps a file path to a highlighter language name.
func Language(path string) string {
	base := filepath.Base(path)
	if strings.EqualFold(base, "dockerfile") {
		return "docker"
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(base), "."))
	if lang, ok := langByExt[ext]; ok {
		return lang
	}
	return PlainText
}
