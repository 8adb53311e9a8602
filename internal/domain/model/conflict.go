package model

// ConflictAction は既存ファイルとの衝突時の解決方法を表します
type ConflictAction int

const (
	// ConflictSkip は既存ファイルを残し何もしないことを示します
	ConflictSkip ConflictAction = iota
	// ConflictReplace は既存ファイルをアトミックに置き換えることを示します
	ConflictReplace
	// ConflictRename は別名（" (N)" 付与）で新規作成することを示します
	ConflictRename
)

// String は ConflictAction の表示名を返します
func (a ConflictAction) String() string {
	switch a {
	case ConflictReplace:
		return "Replace"
	case ConflictRename:
		return "Rename"
	default:
		return "Skip"
	}
}
