package filename

import (
	"strings"

	"ClipForge/internal/domain/model"
)

// Matcher はクリップボードテキストにファイル名抽出規則を
// 優先順位付きで適用します
type Matcher struct{}

// NewMatcher は新しい Matcher インスタンスを作成します
func NewMatcher() *Matcher {
	return &Matcher{}
}

// Match はテキストにファイル名抽出規則を順に適用し、
// 最初に一致した結果を返します（検出なしは nil）。
//
// 規則は次の優先順位で評価されます:
//  1. 設定された正規表現（内容付き作成が有効な場合のみ試行）
//  2. 単一行のファイル名＋後続内容
//  3. 単語数ヒューリスティック（空ファイル作成）
//
// 構造的には一致するが該当する作成フラグが無効な場合、
// 下位の規則へは進まず処理を中断します。この挙動は観測済みの
// 動作であり意図的なものです。
func (m *Matcher) Match(text string, settings model.Settings) *model.DetectedFilename {
	firstLine, _, multiline := splitFirstLine(text)
	trimmed := strings.TrimSpace(firstLine)
	if trimmed == "" {
		return nil
	}

	if result := m.matchPatterns(text, trimmed, multiline, settings); result != nil {
		return result
	}

	if !multiline {
		if result, matched := m.matchInline(text, firstLine, settings); matched {
			return result
		}
	}

	return m.matchWordCount(text, trimmed, settings)
}

// matchPatterns は設定済み正規表現をトリム済みの先頭行へ完全一致で適用します
func (m *Matcher) matchPatterns(text, trimmed string, multiline bool, settings model.Settings) *model.DetectedFilename {
	if !settings.CreateWithContent {
		return nil
	}

	for _, pattern := range settings.ContentPatterns {
		match := pattern.FindStringSubmatch(trimmed)
		if match == nil || match[0] != trimmed || len(match) < 2 {
			continue
		}

		content := ""
		if multiline {
			content = text[firstLineEnd(text)+1:]
		}
		return &model.DetectedFilename{
			Filename: match[1],
			Content:  content,
			Source:   model.SourceRegex,
			Offset:   firstLineEnd(text),
		}
	}
	return nil
}

// matchInline は単一行テキストの先頭トークンをファイル名とみなし、
// 残りを内容として扱います。後続内容の有無で必要な作成フラグが異なります。
// 第2戻り値は「この規則で評価が確定した」ことを示します（無効化による中断を含む）。
func (m *Matcher) matchInline(text, firstLine string, settings model.Settings) (*model.DetectedFilename, bool) {
	tokens := strings.Fields(firstLine)
	if len(tokens) == 0 {
		return nil, false
	}

	first := tokens[0]
	if !settings.ExtensionAllowed(ExtensionOf(first)) {
		return nil, false
	}

	leading := len(firstLine) - len(strings.TrimLeft(firstLine, " \t"))
	offset := leading + len(first)
	trailing := strings.TrimSpace(firstLine[offset:])

	if trailing != "" {
		if !settings.CreateWithContent {
			// 構造一致だが内容付き作成が無効: 中断
			return nil, true
		}
		return &model.DetectedFilename{
			Filename: first,
			Content:  trailing,
			Source:   model.SourceInline,
			Offset:   offset,
		}, true
	}

	if !settings.CreateEmptyFiles {
		// 構造一致だが空ファイル作成が無効: 中断
		return nil, true
	}
	return &model.DetectedFilename{
		Filename: first,
		Source:   model.SourceInline,
		Offset:   offset,
	}, true
}

// matchWordCount は先頭行全体をファイル名とみなすフォールバック規則です。
// 常に空ファイルの検出結果を生成します。
func (m *Matcher) matchWordCount(text, trimmed string, settings model.Settings) *model.DetectedFilename {
	if !settings.ExtensionAllowed(ExtensionOf(trimmed)) {
		return nil
	}
	if WordCount(trimmed) > settings.WordCountLimit {
		return nil
	}
	if !settings.CreateEmptyFiles {
		return nil
	}
	return &model.DetectedFilename{
		Filename: trimmed,
		Source:   model.SourceWordCount,
		Offset:   firstLineEnd(text),
	}
}

// splitFirstLine は先頭の改行でテキストを分割します。
// 改行がなければ全体を先頭行として扱います（単一行モード）。
func splitFirstLine(text string) (firstLine, rest string, multiline bool) {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return strings.TrimSuffix(text[:i], "\r"), text[i+1:], true
	}
	return text, "", false
}

// firstLineEnd は先頭行の終端のバイト位置を返します
func firstLineEnd(text string) int {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		return i
	}
	return len(text)
}
