package model

import "regexp"

// Settings はクリップボード処理が参照する設定のスナップショットです。
// ストアから取得した時点の複製であり、保持したまま安全に使用できます。
type Settings struct {
	// Enabled はクリップボード監視処理全体の有効/無効を示します
	Enabled bool
	// CreateEmptyFiles は空ファイル作成の有効/無効を示します
	CreateEmptyFiles bool
	// CreateWithContent は内容付きファイル作成の有効/無効を示します
	CreateWithContent bool
	// CreateDirectoryStructures はディレクトリ構造作成の有効/無効を示します
	CreateDirectoryStructures bool
	// AllowedExtensions は許可される拡張子の一覧です（各要素は "." で始まる小文字）
	AllowedExtensions []string
	// ContentPatterns はファイル名抽出用のコンパイル済み正規表現です。
	// 各パターンはファイル名となるキャプチャグループを1つ持ちます。
	ContentPatterns []*regexp.Regexp
	// WordCountLimit はファイル名とみなす行の最大単語数です
	WordCountLimit int
	// CreateEmptyDirectories は空ディレクトリ作成の有効/無効を示します
	CreateEmptyDirectories bool
	// SkipExistingDirectories は既存ディレクトリ衝突を許容するかどうかを示します
	SkipExistingDirectories bool
	// TargetDirectory は固定の作成先ディレクトリです（空ならば外部解決）
	TargetDirectory string
}

// ExtensionAllowed は拡張子（"." 始まりの小文字）が許可一覧に含まれるかを返します
func (s Settings) ExtensionAllowed(ext string) bool {
	for _, allowed := range s.AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// Severity は通知の重要度を表します
type Severity int

const (
	// SeverityInfo は情報通知を示します
	SeverityInfo Severity = iota
	// SeverityWarning は警告通知を示します
	SeverityWarning
	// SeverityError はエラー通知を示します
	SeverityError
)
