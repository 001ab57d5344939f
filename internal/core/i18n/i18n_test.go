package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/hrevu/internal/core/review"
)

func TestLocalizer_T(t *testing.T) {
	en := New(English)
	zh := New(Chinese)

	assert.Equal(t, "Comment added", en.T(CommentAdded))
	assert.Equal(t, "评论已添加", zh.T(CommentAdded))
	assert.Equal(t, "Global comment", en.T(GlobalCommentLabel))
}

func TestLocalizer_T_ReviewComplete(t *testing.T) {
	en := New(English)

	tests := []struct {
		count int
		want  string
	}{
		{0, "Review complete! 0 comments"},
		{1, "Review complete! 1 comment"},
		{3, "Review complete! 3 comments"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, en.T(ReviewComplete, tt.count))
	}

	assert.Equal(t, "审查完成！共 3 条评论", New(Chinese).T(ReviewComplete, 3))
}

func TestLocalizer_T_UnknownKey(t *testing.T) {
	assert.Equal(t, "doesNotExist", New(English).T(Key("doesNotExist")))
}

func TestLocalizer_ZeroValueIsEnglish(t *testing.T) {
	var l Localizer
	assert.Equal(t, English, l.Lang())
	assert.Equal(t, "Files", l.T(Files))
}

func TestNew_UnsupportedFallsBack(t *testing.T) {
	assert.Equal(t, English, New(Lang("fr")).Lang())
}

func TestLocalizer_Title(t *testing.T) {
	tests := []struct {
		name  string
		lang  Lang
		input review.InputType
		want  string
	}{
		{"working tree en", English, review.InputType{Kind: review.KindWorkingTreeDiff}, "Current Changes"},
		{"working tree zh", Chinese, review.InputType{Kind: review.KindWorkingTreeDiff}, "当前更改"},
		{"commit en", English, review.InputType{Kind: review.KindCommitDiff, Commit: "abc123"}, "Commit: abc123"},
		{"commit zh", Chinese, review.InputType{Kind: review.KindCommitDiff, Commit: "abc123"}, "提交: abc123"},
		{"file en", English, review.InputType{Kind: review.KindFileContent, Path: "main.go"}, "File: main.go"},
		{"file zh", Chinese, review.InputType{Kind: review.KindFileContent, Path: "main.go"}, "文件: main.go"},
		{"unknown", English, review.InputType{Kind: "pull_request"}, "Unknown"},
		{"unknown zh", Chinese, review.InputType{}, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.lang).Title(tt.input))
		})
	}
}

func TestDetect(t *testing.T) {
	env := func(values map[string]string) func(string) string {
		return func(k string) string { return values[k] }
	}

	tests := []struct {
		name     string
		override string
		env      map[string]string
		want     Lang
	}{
		{"default", "", nil, English},
		{"override wins", "zh", map[string]string{"LANG": "en_US.UTF-8"}, Chinese},
		{"LANG zh", "", map[string]string{"LANG": "zh_CN.UTF-8"}, Chinese},
		{"LC_ALL before LANG", "", map[string]string{"LC_ALL": "en_GB", "LANG": "zh_CN"}, English},
		{"LANGUAGE alone", "", map[string]string{"LANGUAGE": "zh_TW"}, Chinese},
		{"LANGUAGE before LC_ALL", "", map[string]string{"LANGUAGE": "zh_CN:en", "LC_ALL": "en_US"}, Chinese},
		{"LANGUAGE list first entry", "", map[string]string{"LANGUAGE": "en_GB:zh_CN", "LANG": "zh_CN"}, English},
		{"LANGUAGE empty entries skipped", "", map[string]string{"LANGUAGE": "::zh", "LANG": "en_US"}, Chinese},
		{"other locale", "", map[string]string{"LANG": "de_DE"}, English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.override, env(tt.env)))
		})
	}
}

func TestTables_SameKeys(t *testing.T) {
	for key := range tables[English] {
		_, ok := tables[Chinese][key]
		assert.True(t, ok, "missing zh string for %q", key)
	}
	assert.Len(t, tables[Chinese], len(tables[English]))
}
