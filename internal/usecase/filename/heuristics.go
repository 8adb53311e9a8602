package filename

import (
	"path/filepath"
	"strings"
)

// WordCount は空白区切りのトークン数を返します
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// ExtensionOf は小文字化した拡張子（"." を含む）を返します
func ExtensionOf(name string) string {
	return strings.ToLower(filepath.Ext(name))
}
