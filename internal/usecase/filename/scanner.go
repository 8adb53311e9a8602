package filename

import (
	"strings"

	"ClipForge/internal/domain/model"
)

// ScanAdditional は最初のファイル名の直後（offset）以降のテキストから
// 追加のファイル名を貪欲に収集します。
//
// 最初の非空行に2つ以上の適格トークンが並んでいればその行だけを採用し、
// 以降の行は無視します。1つだけならそれを採用し、行単位のスキャンを続けます:
// 空行は読み飛ばし、適格な行は追加し、不適格な行で打ち切ります。
func ScanAdditional(text string, offset int, settings model.Settings) []string {
	if offset < 0 || offset >= len(text) {
		return nil
	}

	lines := strings.Split(text[offset:], "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	first := 0
	for first < len(lines) && lines[first] == "" {
		first++
	}
	if first >= len(lines) {
		return nil
	}

	tokens := strings.Fields(lines[first])
	if len(tokens) >= 2 && allQualify(tokens, settings) {
		return tokens
	}
	if len(tokens) != 1 || !Qualifies(tokens[0], settings) {
		return nil
	}

	names := []string{tokens[0]}
	for _, line := range lines[first+1:] {
		if line == "" {
			continue
		}
		if !Qualifies(line, settings) {
			break
		}
		names = append(names, line)
	}
	return names
}

// Qualifies は文字列が追加ファイル名の条件
// （有効なファイル名・許可拡張子・単語数上限以内）を満たすかを返します
func Qualifies(name string, settings model.Settings) bool {
	return IsValidFilename(name) &&
		settings.ExtensionAllowed(ExtensionOf(name)) &&
		WordCount(name) <= settings.WordCountLimit
}

func allQualify(names []string, settings model.Settings) bool {
	for _, name := range names {
		if !Qualifies(name, settings) {
			return false
		}
	}
	return true
}
