// Package dispatch はクリップボードの変更を処理の各経路へ振り分けます
package dispatch

import (
	"fmt"
	"os"
	"path/filepath"

	"ClipForge/internal/domain/model"
	"ClipForge/internal/infrastructure/filesystem"
	"ClipForge/internal/infrastructure/logging"
	"ClipForge/internal/usecase/filename"
	"ClipForge/internal/usecase/treeparse"
)

// confirmationThreshold はユーザー確認を要求する作成項目数の下限です
const confirmationThreshold = 10

// ClipboardSource は最後に観測したクリップボードのテキストを提供します
type ClipboardSource interface {
	Text() (string, bool)
}

// SettingsSource は現在の設定のスナップショットを提供します
type SettingsSource interface {
	Snapshot() model.Settings
}

// TargetResolver は作成先ディレクトリを一意に決定します。
// 候補が0件または複数件の場合は false を返します。
type TargetResolver interface {
	ResolveSingleTarget() (string, bool)
}

// ConflictPrompter は既存ファイルとの衝突の解決方法をユーザーへ問い合わせます
type ConflictPrompter interface {
	PromptConflict(names []string, batch bool) model.ConflictAction
}

// Confirmer は大きな操作の実行可否をユーザーへ確認します
type Confirmer interface {
	Confirm(message string) bool
}

// Notifier は処理結果をユーザーへ通知します
type Notifier interface {
	Notify(title, message string, severity model.Severity)
}

// Dispatcher はクリップボードのテキストを解釈し、
// ディレクトリ構造またはファイル作成へ振り分けます
type Dispatcher struct {
	clipboard    ClipboardSource
	settings     SettingsSource
	resolver     TargetResolver
	prompter     ConflictPrompter
	confirmer    Confirmer
	notifier     Notifier
	matcher      *filename.Matcher
	materializer *filesystem.Materializer
	logger       logging.Logger
}

// NewDispatcher は新しいDispatcherインスタンスを作成します
func NewDispatcher(
	clipboard ClipboardSource,
	settings SettingsSource,
	resolver TargetResolver,
	prompter ConflictPrompter,
	confirmer Confirmer,
	notifier Notifier,
	materializer *filesystem.Materializer,
	logger logging.Logger,
) *Dispatcher {
	return &Dispatcher{
		clipboard:    clipboard,
		settings:     settings,
		resolver:     resolver,
		prompter:     prompter,
		confirmer:    confirmer,
		notifier:     notifier,
		matcher:      filename.NewMatcher(),
		materializer: materializer,
		logger:       logger,
	}
}

// HandleClipboardChange はクリップボードの変更を1件処理します。
// 処理中の失敗はログと通知に記録され、呼び出し側へは伝播しません。
func (d *Dispatcher) HandleClipboardChange() {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Log("ERROR", fmt.Sprintf("クリップボード処理で予期しない障害が発生しました: %v", r), nil)
		}
	}()

	text, ok := d.clipboard.Text()
	if !ok || text == "" {
		return
	}

	settings := d.settings.Snapshot()
	if !settings.Enabled {
		return
	}

	// ディレクトリ構造の経路を先に試す。構造として認識された場合は
	// 結果にかかわらずここで終了し、ファイル名の経路へは進まない
	if settings.CreateDirectoryStructures {
		if format := treeparse.DetectFormat(text); format != model.FormatUnknown {
			if root := treeparse.Parse(format, text); root != nil && len(root.Children) > 0 {
				d.handleStructure(root, settings)
				return
			}
		}
	}

	detected := d.matcher.Match(text, settings)
	if detected == nil {
		return
	}
	if !filename.IsValidFilename(detected.Filename) {
		return
	}

	additional := filename.ScanAdditional(text, detected.Offset, settings)
	if len(additional) > 0 {
		d.handleBatch(append([]string{detected.Filename}, additional...))
		return
	}

	d.handleSingle(detected)
}

// handleStructure は解析済みのツリーを作成先へ実体化します
func (d *Dispatcher) handleStructure(root *model.TreeNode, settings model.Settings) {
	target, ok := d.resolveTarget()
	if !ok {
		return
	}

	dirs, files := root.Count()
	total := dirs + files
	if total > confirmationThreshold {
		message := fmt.Sprintf("%d 個のディレクトリと %d 個のファイルを作成します。よろしいですか？", dirs, files)
		if !d.confirmer.Confirm(message) {
			d.logger.Log("INFO", "構造の作成がキャンセルされました", nil)
			return
		}
	}

	result, err := d.materializer.CreateStructure(target, root, filesystem.StructureOptions{
		CreateEmptyDirectories:  settings.CreateEmptyDirectories,
		SkipExistingDirectories: settings.SkipExistingDirectories,
	})
	if err != nil {
		d.logger.Log("ERROR", "ディレクトリ構造の作成に失敗しました", err)
		d.notifier.Notify("構造の作成", "ディレクトリ構造の作成に失敗しました", model.SeverityError)
		return
	}

	d.logger.Log("INFO", fmt.Sprintf("構造を作成しました（ディレクトリ %d、ファイル %d）", result.DirsCreated, result.FilesCreated), nil)
	d.notifier.Notify("構造の作成",
		fmt.Sprintf("ディレクトリ %d 個、ファイル %d 個を作成しました", result.DirsCreated, result.FilesCreated),
		model.SeverityInfo)
}

// handleSingle は検出された1件のファイル名を作成します
func (d *Dispatcher) handleSingle(detected *model.DetectedFilename) {
	target, ok := d.resolveTarget()
	if !ok {
		return
	}

	path := filepath.Join(target, detected.Filename)
	err := d.materializer.CreateFile(path, detected.Content)
	if err == nil {
		d.logger.Log("INFO", fmt.Sprintf("ファイルを作成しました: %s", detected.Filename), nil)
		d.notifier.Notify("ファイルの作成", fmt.Sprintf("%s を作成しました", detected.Filename), model.SeverityInfo)
		return
	}

	if !fileExists(path) {
		d.logger.Log("ERROR", fmt.Sprintf("ファイル '%s' の作成に失敗しました", detected.Filename), err)
		d.notifier.Notify("ファイルの作成", fmt.Sprintf("%s を作成できませんでした", detected.Filename), model.SeverityError)
		return
	}

	d.resolveSingleConflict(path, detected)
}

// resolveSingleConflict は既存ファイルとの衝突をユーザーの選択に従って解決します
func (d *Dispatcher) resolveSingleConflict(path string, detected *model.DetectedFilename) {
	switch d.prompter.PromptConflict([]string{detected.Filename}, false) {
	case model.ConflictReplace:
		if err := d.materializer.ReplaceFile(path, detected.Content); err != nil {
			d.logger.Log("ERROR", fmt.Sprintf("ファイル '%s' の置き換えに失敗しました", detected.Filename), err)
			d.notifier.Notify("ファイルの作成", fmt.Sprintf("%s を置き換えられませんでした", detected.Filename), model.SeverityError)
			return
		}
		d.notifier.Notify("ファイルの作成", fmt.Sprintf("%s を置き換えました", detected.Filename), model.SeverityInfo)

	case model.ConflictRename:
		newPath, err := filesystem.UniqueRenamePath(path)
		if err == nil {
			err = d.materializer.CreateFile(newPath, detected.Content)
		}
		if err != nil {
			d.logger.Log("ERROR", fmt.Sprintf("ファイル '%s' の別名作成に失敗しました", detected.Filename), err)
			d.notifier.Notify("ファイルの作成", fmt.Sprintf("%s を作成できませんでした", detected.Filename), model.SeverityError)
			return
		}
		d.notifier.Notify("ファイルの作成", fmt.Sprintf("%s を作成しました", filepath.Base(newPath)), model.SeverityInfo)

	default:
		d.logger.Log("INFO", fmt.Sprintf("ファイル '%s' の作成をスキップしました", detected.Filename), nil)
	}
}

// handleBatch は複数のファイル名をまとめて空ファイルとして作成します
func (d *Dispatcher) handleBatch(names []string) {
	target, ok := d.resolveTarget()
	if !ok {
		return
	}

	if len(names) > confirmationThreshold {
		message := fmt.Sprintf("%d 個のファイルを作成します。よろしいですか？", len(names))
		if !d.confirmer.Confirm(message) {
			d.logger.Log("INFO", "一括作成がキャンセルされました", nil)
			return
		}
	}

	result := d.materializer.CreateBatch(target, names, func(existing []string) model.ConflictAction {
		return d.prompter.PromptConflict(existing, true)
	})

	d.logger.Log("INFO", fmt.Sprintf("一括作成の結果: 作成 %d、スキップ %d、失敗 %d",
		result.Created, result.Skipped, result.Failed), nil)

	severity := model.SeverityInfo
	if result.Failed > 0 {
		severity = model.SeverityWarning
	}
	d.notifier.Notify("ファイルの作成",
		fmt.Sprintf("%d 個のファイルを作成しました（スキップ %d、失敗 %d）", result.Created, result.Skipped, result.Failed),
		severity)
}

// resolveTarget は作成先を一意に決定します。決定できない場合は通知して中止します
func (d *Dispatcher) resolveTarget() (string, bool) {
	target, ok := d.resolver.ResolveSingleTarget()
	if !ok {
		d.logger.Log("WARN", "作成先ディレクトリを一意に決定できませんでした", nil)
		d.notifier.Notify("作成先", "作成先ディレクトリを決定できないため処理を中止しました", model.SeverityWarning)
		return "", false
	}
	return target, true
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
