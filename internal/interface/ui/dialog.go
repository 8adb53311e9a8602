// Package ui はユーザーインターフェース機能を提供します
package ui

import (
	"fmt"

	"github.com/sqweek/dialog"

	"ClipForge/internal/domain/model"
	"ClipForge/internal/infrastructure/filesystem"
)

// SettingsSource は現在の設定のスナップショットを提供します
type SettingsSource interface {
	Snapshot() model.Settings
}

// DirectorySelector はディレクトリ選択機能を提供します
type DirectorySelector struct {
	// validator はディレクトリパスの検証を行うインターフェースです
	validator filesystem.DirectoryValidator
}

// NewDirectorySelector は新しい DirectorySelector インスタンスを作成します
func NewDirectorySelector(validator filesystem.DirectoryValidator) *DirectorySelector {
	return &DirectorySelector{validator: validator}
}

// SelectDirectory はダイアログを表示してディレクトリを選択します
func (d *DirectorySelector) SelectDirectory(title string) (string, error) {
	selectedDir, err := dialog.Directory().Title(title).Browse()
	if err != nil {
		return "", fmt.Errorf("ディレクトリの選択がキャンセルまたはエラーになりました: %w", err)
	}

	if err := d.validator.ValidateDirectoryPath(selectedDir); err != nil {
		return "", fmt.Errorf("無効なディレクトリが選択されました: %w", err)
	}

	return selectedDir, nil
}

// Confirmer はダイアログによるユーザー確認を提供します
type Confirmer struct{}

// NewConfirmer は新しい Confirmer インスタンスを作成します
func NewConfirmer() *Confirmer {
	return &Confirmer{}
}

// Confirm は確認ダイアログを表示し、ユーザーの選択を返します
func (c *Confirmer) Confirm(message string) bool {
	return dialog.Message("%s", message).Title("確認").YesNo()
}

// TargetResolver は作成先ディレクトリを一意に決定します。
// 設定で指定されたディレクトリを優先し、なければ起動時に選択された
// ディレクトリを使用します。どちらも有効でなければ決定できません。
type TargetResolver struct {
	settings  SettingsSource
	validator filesystem.DirectoryValidator
	fallback  string
}

// NewTargetResolver は新しい TargetResolver インスタンスを作成します。
// fallback は起動時に選択されたディレクトリです（空でもかまいません）。
func NewTargetResolver(settings SettingsSource, validator filesystem.DirectoryValidator, fallback string) *TargetResolver {
	return &TargetResolver{settings: settings, validator: validator, fallback: fallback}
}

// ResolveSingleTarget は作成先ディレクトリを返します。
// 有効な候補が1つも見つからない場合は false を返します。
func (r *TargetResolver) ResolveSingleTarget() (string, bool) {
	if configured := r.settings.Snapshot().TargetDirectory; configured != "" {
		if err := r.validator.ValidateDirectoryPath(configured); err == nil {
			return configured, true
		}
		// 設定されたディレクトリが無効な場合は推測で別の場所へ作らない
		return "", false
	}

	if r.fallback != "" {
		if err := r.validator.ValidateDirectoryPath(r.fallback); err == nil {
			return r.fallback, true
		}
	}
	return "", false
}
