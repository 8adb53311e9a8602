// Package filesystem はファイルシステム操作を提供します
package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// DirectoryValidator はディレクトリの検証機能を提供するインターフェースです
type DirectoryValidator interface {
	ValidateDirectoryPath(path string) error
}

var drivePrefixPattern = regexp.MustCompile(`^[A-Za-z]:`)

// ValidateDirectoryPath はパスが安全で有効なディレクトリであることを確認します
func (m *Materializer) ValidateDirectoryPath(path string) error {
	if path == "" {
		return fmt.Errorf("ディレクトリパスが指定されていません")
	}

	fileInfo, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("ディレクトリが存在しません: %w", err)
	}

	if !fileInfo.IsDir() {
		return fmt.Errorf("指定されたパスはディレクトリではありません")
	}

	if !filepath.IsAbs(path) {
		return fmt.Errorf("絶対パスで指定してください")
	}

	if strings.ContainsAny(path, "<>|?*") {
		return fmt.Errorf("パスに不正な文字が含まれています")
	}

	return nil
}

// safeChildPath は親パスと要素名から作成先パスを組み立てます。
// 要素名にパス区切りやトラバーサルが含まれる場合、および
// 組み立てたパスが基準ディレクトリの外に出る場合はエラーを返します。
func safeChildPath(baseDir, parentPath, name string) (string, error) {
	if name == "" || name == "." || name == ".." {
		return "", fmt.Errorf("不正な要素名です: %q", name)
	}
	if strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("要素名にパス区切りが含まれています: %q", name)
	}
	if drivePrefixPattern.MatchString(name) {
		return "", fmt.Errorf("要素名にドライブレターが含まれています: %q", name)
	}

	path := filepath.Join(parentPath, name)
	rel, err := filepath.Rel(baseDir, path)
	if err != nil {
		return "", fmt.Errorf("作成先パスの検証に失敗しました: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("作成先パスが基準ディレクトリの外を指しています: %q", name)
	}
	return path, nil
}
