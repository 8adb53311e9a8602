package model

// FilenameSource はファイル名がどの規則で検出されたかを表します
type FilenameSource int

const (
	// SourceRegex は設定された正規表現による検出を示します
	SourceRegex FilenameSource = iota
	// SourceInline はファイル名＋後続内容の単一行検出を示します
	SourceInline
	// SourceWordCount は単語数ヒューリスティックによる検出を示します
	SourceWordCount
)

// DetectedFilename はパターンマッチャーの検出結果です
type DetectedFilename struct {
	// Filename は検出されたファイル名を表します
	Filename string
	// Content はファイルに書き込む内容を表します（空ならば空ファイル）
	Content string
	// Source は検出に用いた規則を表します
	Source FilenameSource
	// Offset は元テキスト中でファイル名の直後を指すバイト位置です。
	// 追加ファイル名のスキャンはこの位置から行います。
	Offset int
}

// BatchResult は複数ファイル作成の集計結果です
type BatchResult struct {
	// Created は新規作成されたファイル数を表します
	Created int
	// Skipped はスキップされたファイル数を表します
	Skipped int
	// Failed は作成に失敗したファイル数を表します
	Failed int
}
