// Package i18n holds the display strings of the review client in the two
// supported locales and derives review titles from input descriptors.
package i18n

import (
	"fmt"
	"strings"

	"github.com/colonyops/hrevu/internal/core/review"
)

// Lang is a supported locale.
type Lang string

const (
	English Lang = "en"
	Chinese Lang = "zh"
)

// Key identifies a display string.
type Key string

const (
	Files              Key = "files"
	Comments           Key = "comments"
	SelectFile         Key = "selectFile"
	GlobalComment      Key = "globalComment"
	AddGlobalComment   Key = "addGlobalComment"
	AddComment         Key = "addComment"
	UpdateComment      Key = "updateComment"
	Edit               Key = "edit"
	Delete             Key = "delete"
	CompleteReview     Key = "completeReview"
	Complete           Key = "complete"
	Completed          Key = "completed"
	Cancel             Key = "cancel"
	NoCommentsYet      Key = "noCommentsYet"
	Loading            Key = "loading"
	FailedToLoad       Key = "failedToLoad"
	CommentAdded       Key = "commentAdded"
	CommentUpdated     Key = "commentUpdated"
	CommentDeleted     Key = "commentDeleted"
	FailedToSave       Key = "failedToSave"
	FailedToDelete     Key = "failedToDelete"
	FailedToComplete   Key = "failedToComplete"
	ReviewComplete     Key = "reviewComplete"
	GlobalCommentLabel Key = "globalCommentLabel"
	Line               Key = "line"
	FileNotFound       Key = "fileNotFound"
	Author             Key = "author"
	FileComment        Key = "fileComment"
	Submit             Key = "submit"
	Newline            Key = "newline"
	Navigate           Key = "navigate"
	SwitchPanel        Key = "switchPanel"
	ToggleSidebar      Key = "toggleSidebar"
	ToggleTheme        Key = "toggleTheme"
	Quit               Key = "quit"
	ReviewLocked       Key = "reviewLocked"
	Open               Key = "open"
	Dismiss            Key = "dismiss"
	Help               Key = "help"
	Keybindings        Key = "keybindings"
	CommentCount       Key = "commentCount"
	ReviewSummary      Key = "reviewSummary"
	SaveInProgress     Key = "saveInProgress"
	CommentGone        Key = "commentGone"

	prefixCommit    Key = "prefix.commit"
	prefixFile      Key = "prefix.file"
	labelWorkingDir Key = "typeLabel.working_tree_diff"
)

// countFunc formats a count-dependent message.
type countFunc func(n int) string

var tables = map[Lang]map[Key]any{
	Chinese: {
		Files:              "文件",
		Comments:           "评论",
		SelectFile:         "选择文件",
		GlobalComment:      "全局评论",
		AddGlobalComment:   "+ 全局评论",
		AddComment:         "添加评论",
		UpdateComment:      "更新评论",
		Edit:               "编辑",
		Delete:             "删除",
		CompleteReview:     "完成审查",
		Complete:           "完成",
		Completed:          "✓ 已完成",
		Cancel:             "取消",
		NoCommentsYet:      "暂无评论",
		Loading:            "加载中...",
		FailedToLoad:       "加载失败",
		CommentAdded:       "评论已添加",
		CommentUpdated:     "评论已更新",
		CommentDeleted:     "评论已删除",
		FailedToSave:       "保存失败",
		FailedToDelete:     "删除失败",
		FailedToComplete:   "完成审查失败",
		ReviewComplete:     countFunc(func(n int) string { return fmt.Sprintf("审查完成！共 %d 条评论", n) }),
		GlobalCommentLabel: "全局评论",
		Line:               "行",
		FileNotFound:       "未找到文件",
		Author:             "你",
		FileComment:        "文件评论",
		Submit:             "提交",
		Newline:            "换行",
		Navigate:           "移动",
		SwitchPanel:        "切换面板",
		ToggleSidebar:      "评论栏",
		ToggleTheme:        "主题",
		Quit:               "退出",
		ReviewLocked:       "审查已完成",
		Open:               "打开",
		Dismiss:            "关闭通知",
		Help:               "帮助",
		Keybindings:        "快捷键",
		CommentCount:       countFunc(func(n int) string { return fmt.Sprintf("%d 条评论", n) }),
		ReviewSummary:      "审查摘要",
		SaveInProgress:     "正在保存上一条评论",
		CommentGone:        "评论已不存在",
		prefixCommit:       "提交",
		prefixFile:         "文件",
		labelWorkingDir:    "当前更改",
	},
	English: {
		Files:            "Files",
		Comments:         "Comments",
		SelectFile:       "Select a file",
		GlobalComment:    "Global Comment",
		AddGlobalComment: "+ Global Comment",
		AddComment:       "Add Comment",
		UpdateComment:    "Update Comment",
		Edit:             "Edit",
		Delete:           "Delete",
		CompleteReview:   "Complete Review",
		Complete:         "Complete",
		Completed:        "✓ Complete",
		Cancel:           "Cancel",
		NoCommentsYet:    "No comments yet",
		Loading:          "Loading...",
		FailedToLoad:     "Failed to load data",
		CommentAdded:     "Comment added",
		CommentUpdated:   "Comment updated",
		CommentDeleted:   "Comment deleted",
		FailedToSave:     "Failed to save comment",
		FailedToDelete:   "Failed to delete comment",
		FailedToComplete: "Failed to complete review",
		ReviewComplete: countFunc(func(n int) string {
			if n == 1 {
				return "Review complete! 1 comment"
			}
			return fmt.Sprintf("Review complete! %d comments", n)
		}),
		GlobalCommentLabel: "Global comment",
		Line:               "Line",
		FileNotFound:       "File not found",
		Author:             "You",
		FileComment:        "File comment",
		Submit:             "submit",
		Newline:            "newline",
		Navigate:           "navigate",
		SwitchPanel:        "switch panel",
		ToggleSidebar:      "comments",
		ToggleTheme:        "theme",
		Quit:               "quit",
		ReviewLocked:       "Review already completed",
		Open:               "open",
		Dismiss:            "dismiss",
		Help:               "help",
		Keybindings:        "Keybindings",
		ReviewSummary:      "Review Summary",
		SaveInProgress:     "Still saving the previous comment",
		CommentGone:        "Comment no longer exists",
		CommentCount: countFunc(func(n int) string {
			if n == 1 {
				return "1 comment"
			}
			return fmt.Sprintf("%d comments", n)
		}),
		prefixCommit:    "Commit",
		prefixFile:      "File",
		labelWorkingDir: "Current Changes",
	},
}

// Localizer resolves display strings for one locale. The zero value is English.
type Localizer struct {
	lang Lang
}

// New returns a localizer for lang. Unsupported locales fall back to English.
func New(lang Lang) Localizer {
	if _, ok := tables[lang]; !ok {
		lang = English
	}
	return Localizer{lang: lang}
}

// Lang returns the active locale.
func (l Localizer) Lang() Lang {
	if l.lang == "" {
		return English
	}
	return l.lang
}

// T returns the display string for key. Count-dependent strings take the
// count as their first argument; unknown keys return the key itself.
func (l Localizer) T(key Key, args ...any) string {
	value, ok := tables[l.Lang()][key]
	if !ok {
		return string(key)
	}

	switch v := value.(type) {
	case countFunc:
		n := 0
		if len(args) > 0 {
			n, _ = args[0].(int)
		}
		return v(n)
	case string:
		return v
	default:
		return string(key)
	}
}

// Title derives the review title from its input descriptor.
func (l Localizer) Title(it review.InputType) string {
	switch it.Kind {
	case review.KindWorkingTreeDiff:
		return l.T(labelWorkingDir)
	case review.KindCommitDiff:
		return l.T(prefixCommit) + ": " + it.Commit
	case review.KindFileContent:
		return l.T(prefixFile) + ": " + it.Path
	default:
		return "Unknown"
	}
}

// localeEnv lists the environment variables consulted by Detect, in
// gettext's order of precedence.
var localeEnv = []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"}

// Detect picks the locale once at startup. An explicit override wins,
// otherwise the first non-empty locale variable is used. LANGUAGE may hold a
// colon separated priority list; its first entry counts. Values starting
// with "zh" select Chinese, everything else English.
func Detect(override string, getenv func(string) string) Lang {
	value := override
	if value == "" {
		for _, name := range localeEnv {
			if v := firstLocale(getenv(name)); v != "" {
				value = v
				break
			}
		}
	}

	if strings.HasPrefix(strings.ToLower(value), "zh") {
		return Chinese
	}
	return English
}

func firstLocale(v string) string {
	for _, part := range strings.Split(v, ":") {
		if part = strings.TrimSpace(part); part != "" {
			return part
		}
	}
	return ""
}
