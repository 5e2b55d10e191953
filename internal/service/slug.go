package service

import (
	"regexp"
	"strings"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify は名前から URL 用スラッグを生成する。
// 小文字化し、英数字以外の連続を "-" 1 文字に置き換え、前後の "-" を取り除く
func Slugify(name string) string {
	s := nonSlugChars.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(s, "-")
}
