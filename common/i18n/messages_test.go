package i18n

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLanguage(t *testing.T) {
	cases := []struct {
		in   string
		want Language
		ok   bool
	}{
		{"zh_CN.UTF-8", Chinese, true},
		{"zh", Chinese, true},
		{"Chinese", Chinese, true},
		{"en_US.UTF-8", English, true},
		{"en", English, true},
		{"C", English, true},
		{"", English, false},
		{"fr_FR.UTF-8", English, false},
	}
	for _, tc := range cases {
		got, ok := ParseLanguage(tc.in)
		assert.Equal(t, tc.want, got, tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
	}
}

func TestDetectLanguage(t *testing.T) {
	for _, k := range []string{"LANG", "LANGUAGE", "LC_ALL", "LC_MESSAGES"} {
		t.Setenv(k, "")
	}
	assert.Equal(t, English, DetectLanguage())

	t.Setenv("LC_ALL", "zh_TW.UTF-8")
	assert.Equal(t, Chinese, DetectLanguage())

	t.Setenv("LANG", "en_GB.UTF-8")
	assert.Equal(t, English, DetectLanguage(), "LANG is consulted first")
}

func TestSetLanguage(t *testing.T) {
	defer SetLanguage(English)

	SetLanguage(Chinese)
	assert.True(t, IsChineseEnvironment())
	assert.Equal(t, ChineseRewriteMessages.Completed, I18nMsg.Rewrite.Completed)

	SetLanguage(English)
	assert.False(t, IsChineseEnvironment())
	assert.Equal(t, "✅ Fixed Chinese characters in auth.js", fmt.Sprintf(I18nMsg.Rewrite.Completed, "auth.js"))
}

// Every message must exist in both languages with the same format verbs.
func TestMessageSetsMatch(t *testing.T) {
	en := reflect.ValueOf(EnglishAllMessages)
	zh := reflect.ValueOf(ChineseAllMessages)
	for i := 0; i < en.NumField(); i++ {
		group := en.Type().Field(i).Name
		eg, zg := en.Field(i), zh.Field(i)
		for j := 0; j < eg.NumField(); j++ {
			name := group + "." + eg.Type().Field(j).Name
			es, zs := eg.Field(j).String(), zg.Field(j).String()
			assert.NotEmpty(t, es, name)
			assert.NotEmpty(t, zs, name)
			assert.Equal(t, verbCount(es), verbCount(zs), name)
		}
	}
}

func verbCount(s string) int {
	return strings.Count(s, "%") - 2*strings.Count(s, "%%")
}
