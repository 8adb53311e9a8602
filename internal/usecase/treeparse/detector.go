// Package treeparse はテキストによるツリー表記の判定と解析機能を提供します
package treeparse

import (
	"strings"

	"ClipForge/internal/domain/model"
)

const (
	startMarkerPrefix = "---START:"
	endMarkerPrefix   = "---END:"
	markerSuffix      = "---"
)

// DetectFormat はテキストがどのツリー表記かを判定します。
// 判定は次の順で行い、最初に当てはまったものを返します:
// 罫線文字の存在 → 内容ブロックマーカーの存在 → パス一覧 → インデント。
func DetectFormat(text string) model.TreeFormat {
	if strings.ContainsAny(text, "│├└") {
		return model.FormatTreeCommand
	}
	if strings.Contains(text, startMarkerPrefix) || strings.Contains(text, endMarkerPrefix) {
		return model.FormatEnhanced
	}

	hasSeparator := false
	hasIndent := false
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.ContainsAny(line, `/\`) {
			hasSeparator = true
		}
		if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
			hasIndent = true
		}
	}

	if hasSeparator && !hasIndent {
		return model.FormatPathList
	}
	if hasIndent {
		return model.FormatIndentation
	}
	return model.FormatUnknown
}
