package filesystem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ClipForge/internal/domain/model"
)

// maxNameAttempts は空き名探索（一時ファイル・別名作成）の試行上限です
const maxNameAttempts = 1000

// ErrConflictUnresolved は空き名の探索が上限に達したことを示します
var ErrConflictUnresolved = errors.New("空き名の探索が上限に達しました")

// CreateFile はファイルを排他的に作成します（既存ならエラー）。
// content が空なら0バイトのファイルを作成します。
func (m *Materializer) CreateFile(path, content string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return fmt.Errorf("ファイルの作成に失敗しました: %w", err)
	}

	if content != "" {
		if _, err := f.WriteString(content); err != nil {
			f.Close()
			os.Remove(path)
			return fmt.Errorf("ファイルの書き込みに失敗しました: %w", err)
		}
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("ファイルのクローズに失敗しました: %w", err)
	}
	return nil
}

// ReplaceFile は内容を隣接する一時ファイルへ書き込み、
// 対象へアトミックに移動して置き換えます。途中で失敗した場合は
// 一時ファイルを削除し、対象を書きかけのまま残すことはありません。
func (m *Materializer) ReplaceFile(path, content string) error {
	tempPath, f, err := createTempSibling(path)
	if err != nil {
		return err
	}

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		os.Remove(tempPath)
		return fmt.Errorf("一時ファイルの書き込みに失敗しました: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("一時ファイルのクローズに失敗しました: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("置き換えに失敗しました: %w", err)
	}
	return nil
}

// createTempSibling は対象と同じディレクトリに
// "<base>_tmp_<n><ext>" 形式の一時ファイルを排他的に作成します
func createTempSibling(path string) (string, *os.File, error) {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)

	for n := 0; n < maxNameAttempts; n++ {
		tempPath := fmt.Sprintf("%s_tmp_%d%s", base, n, ext)
		f, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err == nil {
			return tempPath, f, nil
		}
		if errors.Is(err, os.ErrExist) {
			continue
		}
		return "", nil, fmt.Errorf("一時ファイルの作成に失敗しました: %w", err)
	}
	return "", nil, ErrConflictUnresolved
}

// UniqueRenamePath は " (N)" を拡張子の前に付与して空いている
// 別名パスを探します。上限まで見つからなければ ErrConflictUnresolved を返します。
func UniqueRenamePath(path string) (string, error) {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)

	for n := 1; n <= maxNameAttempts; n++ {
		candidate := fmt.Sprintf("%s (%d)%s", base, n, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate, nil
		}
	}
	return "", ErrConflictUnresolved
}

// CreateBatch は複数ファイル名を一括で作成します。
// 未存在のものは無条件に空ファイルとして作成し、既存のものには
// resolve で得た1つの解決方法をまとめて適用します。
// 個々の失敗は集計に記録し、残りの処理を継続します。
func (m *Materializer) CreateBatch(dir string, names []string, resolve func(existing []string) model.ConflictAction) model.BatchResult {
	var result model.BatchResult
	var existing []string

	for _, name := range names {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			existing = append(existing, name)
			continue
		}
		if err := m.CreateFile(path, ""); err != nil {
			m.logger.Log("ERROR", fmt.Sprintf("ファイル '%s' の作成に失敗", name), err)
			result.Failed++
			continue
		}
		result.Created++
	}

	if len(existing) == 0 {
		return result
	}

	action := resolve(existing)
	for _, name := range existing {
		path := filepath.Join(dir, name)
		switch action {
		case model.ConflictReplace:
			if err := m.ReplaceFile(path, ""); err != nil {
				m.logger.Log("ERROR", fmt.Sprintf("ファイル '%s' の置き換えに失敗", name), err)
				result.Failed++
				continue
			}
			result.Created++
		case model.ConflictRename:
			newPath, err := UniqueRenamePath(path)
			if err != nil {
				m.logger.Log("ERROR", fmt.Sprintf("ファイル '%s' の別名探索に失敗", name), err)
				result.Failed++
				continue
			}
			if err := m.CreateFile(newPath, ""); err != nil {
				m.logger.Log("ERROR", fmt.Sprintf("ファイル '%s' の作成に失敗", newPath), err)
				result.Failed++
				continue
			}
			result.Created++
		default:
			result.Skipped++
		}
	}
	return result
}
