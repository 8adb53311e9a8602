package filesystem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"ClipForge/internal/domain/model"
	"ClipForge/internal/infrastructure/logging"
)

// Materializer は解析済みのツリーや検出済みファイル名を
// 実際のファイル・ディレクトリとして作成します
type Materializer struct {
	logger logging.Logger
}

// NewMaterializer は新しい Materializer インスタンスを作成します
func NewMaterializer(logger logging.Logger) *Materializer {
	return &Materializer{logger: logger}
}

// StructureOptions はディレクトリ構造作成時の挙動を指定します
type StructureOptions struct {
	// CreateEmptyDirectories はファイル作成前に親ディレクトリを補完するかを示します
	CreateEmptyDirectories bool
	// SkipExistingDirectories はディレクトリ位置の既存要素との衝突を許容するかを示します
	SkipExistingDirectories bool
}

// StructureResult はディレクトリ構造作成の集計結果です
type StructureResult struct {
	// DirsCreated は新規作成されたディレクトリ数を表します
	DirsCreated int
	// FilesCreated は新規作成されたファイル数を表します
	FilesCreated int
}

// CreateStructure はツリーを走査し baseDir 配下へ実体化します。
// パス安全性の検証に失敗した時点で操作全体を中止します。
// 個々のファイル作成の失敗は記録して残りを継続します。
// ルート直下に子が1つもない場合は即座に失敗を返します。
func (m *Materializer) CreateStructure(baseDir string, root *model.TreeNode, opts StructureOptions) (StructureResult, error) {
	var result StructureResult

	if root == nil || len(root.Children) == 0 {
		return result, fmt.Errorf("作成対象の要素がありません")
	}
	if err := m.ValidateDirectoryPath(baseDir); err != nil {
		return result, fmt.Errorf("作成先ディレクトリが無効です: %w", err)
	}

	var itemErr error
	if err := m.createChildren(baseDir, baseDir, root, opts, &result, &itemErr); err != nil {
		return result, err
	}
	return result, itemErr
}

// createChildren は親ノードの子を順に作成します。
// 戻り値のエラーは操作全体の中止を意味します（パス安全性違反のみ）。
func (m *Materializer) createChildren(baseDir, parentPath string, parent *model.TreeNode, opts StructureOptions, result *StructureResult, itemErr *error) error {
	for _, node := range parent.Children {
		path, err := safeChildPath(baseDir, parentPath, node.Name)
		if err != nil {
			m.logger.Log("ERROR", "安全でないパスを検出したため処理を中止します", err)
			return err
		}

		if node.IsDir {
			if err := m.createDirectory(path, opts, result, itemErr); err != nil {
				// ディレクトリ位置の衝突: このサブツリーだけを飛ばす
				continue
			}
			if err := m.createChildren(baseDir, path, node, opts, result, itemErr); err != nil {
				return err
			}
			continue
		}

		m.createFileNode(path, node, opts, result, itemErr)
	}
	return nil
}

// createDirectory はディレクトリを冪等に作成します。
// 既存ディレクトリはそのまま利用します。同じ位置に既存ファイルが
// ある場合、スキップ設定が無効ならエラーとして記録します。
func (m *Materializer) createDirectory(path string, opts StructureOptions, result *StructureResult, itemErr *error) error {
	info, statErr := os.Stat(path)
	if statErr == nil {
		if info.IsDir() {
			return nil
		}
		if opts.SkipExistingDirectories {
			m.logger.Log("WARN", fmt.Sprintf("同名のファイルが存在するためスキップ: %s", path), nil)
			return fmt.Errorf("既存ファイルと衝突しました: %s", path)
		}
		err := fmt.Errorf("ディレクトリの位置に既存ファイルがあります: %s", path)
		m.logger.Log("ERROR", "ディレクトリの作成に失敗", err)
		if *itemErr == nil {
			*itemErr = err
		}
		return err
	}

	if err := os.Mkdir(path, 0755); err != nil {
		m.logger.Log("ERROR", fmt.Sprintf("ディレクトリ '%s' の作成に失敗", path), err)
		if *itemErr == nil {
			*itemErr = err
		}
		return err
	}
	result.DirsCreated++
	return nil
}

// createFileNode はファイルノードを作成します。
// 既存ファイルには触れません（この経路では上書きしない）。
func (m *Materializer) createFileNode(path string, node *model.TreeNode, opts StructureOptions, result *StructureResult, itemErr *error) {
	if opts.CreateEmptyDirectories {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			m.logger.Log("ERROR", fmt.Sprintf("親ディレクトリの作成に失敗: %s", path), err)
			if *itemErr == nil {
				*itemErr = err
			}
			return
		}
	}

	if _, err := os.Stat(path); err == nil {
		return
	}

	if err := m.CreateFile(path, node.Content); err != nil {
		if errors.Is(err, os.ErrExist) {
			return
		}
		m.logger.Log("ERROR", fmt.Sprintf("ファイル '%s' の作成に失敗", path), err)
		if *itemErr == nil {
			*itemErr = err
		}
		return
	}
	result.FilesCreated++
}
