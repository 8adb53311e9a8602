// Package filename はクリップボードテキストからのファイル名検出機能を提供します
package filename

import (
	"regexp"
	"strings"
)

// MaxFilenameLength はファイル名として許容する最大文字数です
const MaxFilenameLength = 255

var (
	drivePrefixPattern  = regexp.MustCompile(`^[A-Za-z]:`)
	reservedNamePattern = regexp.MustCompile(`(?i)^(CON|PRN|AUX|NUL|COM[0-9]+|LPT[0-9]+)$`)
)

// IsValidFilename は文字列が対象ファイルシステム上で安全な
// 単一のファイル名として使用できるかを判定します。
// パス区切り・ドライブレター・トラバーサル・予約デバイス名・
// 制御文字などを含む名前はすべて拒否します。
func IsValidFilename(name string) bool {
	if name == "" {
		return false
	}
	if len([]rune(name)) > MaxFilenameLength {
		return false
	}
	if strings.Contains(name, "../") || strings.Contains(name, `..\`) {
		return false
	}
	if drivePrefixPattern.MatchString(name) {
		return false
	}
	if strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) {
		return false
	}
	if strings.ContainsAny(name, `\/:*?"<>|`) {
		return false
	}
	for _, r := range name {
		if r < 32 {
			return false
		}
	}
	if reservedNamePattern.MatchString(baseWithoutExtension(name)) {
		return false
	}
	if strings.HasSuffix(name, ".") {
		return false
	}
	if strings.Trim(name, ".") == "" {
		return false
	}
	return true
}

// baseWithoutExtension は予約デバイス名の比較のために拡張子を除いた部分を返します
func baseWithoutExtension(name string) string {
	if i := strings.LastIndex(name, "."); i > 0 {
		return name[:i]
	}
	return name
}
