// Package settings は設定ファイルの読み込み・再読み込みを提供します
package settings

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"ClipForge/internal/domain/model"
	"ClipForge/internal/infrastructure/logging"
)

// invalidExtensionChars は拡張子として受け入れない文字の集合です
const invalidExtensionChars = `\/:*?"<>|`

// defaultExtensions は初回起動時に設定ファイルへ書き込まれる拡張子の一覧です
var defaultExtensions = []string{
	".txt", ".md", ".log", ".sql", ".cpp", ".h", ".js", ".json", ".xml",
}

// fileConfig は設定ファイル上の表現です
type fileConfig struct {
	Enabled                   bool     `yaml:"enabled"`
	CreateEmptyFiles          bool     `yaml:"create_empty_files"`
	CreateWithContent         bool     `yaml:"create_with_content"`
	CreateDirectoryStructures bool     `yaml:"create_directory_structures"`
	AllowedExtensions         []string `yaml:"allowed_extensions"`
	ContentPatterns           []string `yaml:"content_patterns"`
	WordCountLimit            int      `yaml:"word_count_limit"`
	CreateEmptyDirectories    bool     `yaml:"create_empty_directories"`
	SkipExistingDirectories   bool     `yaml:"skip_existing_directories"`
	TargetDirectory           string   `yaml:"target_directory"`
}

func defaultConfig() fileConfig {
	return fileConfig{
		Enabled:                   true,
		CreateEmptyFiles:          true,
		CreateWithContent:         true,
		CreateDirectoryStructures: true,
		AllowedExtensions:         append([]string(nil), defaultExtensions...),
		WordCountLimit:            3,
	}
}

// ReloadReport は再読み込みで除外された項目の件数です
type ReloadReport struct {
	// BadExtensions は拒否された拡張子行の数を表します
	BadExtensions int
	// DroppedPatterns はコンパイルできず除外されたパターンの数を表します
	DroppedPatterns int
}

// Clean は除外された項目がなかったことを示します
func (r ReloadReport) Clean() bool {
	return r.BadExtensions == 0 && r.DroppedPatterns == 0
}

// Store は設定ファイルをメモリに保持し、スナップショットを提供します
type Store struct {
	mu      sync.Mutex
	path    string
	logger  logging.Logger
	current model.Settings
}

// NewStore は新しいStoreインスタンスを作成します
func NewStore(path string, logger logging.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Path は設定ファイルのパスを返します
func (s *Store) Path() string {
	return s.path
}

// Initialize は設定ファイルを読み込みます。ファイルが存在しない場合は
// 既定の内容で作成してから読み込みます。
func (s *Store) Initialize() error {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		if err := s.writeDefault(); err != nil {
			return err
		}
		s.logger.Log("INFO", fmt.Sprintf("既定の設定ファイルを作成しました: %s", s.path), nil)
	}

	_, err := s.Reload()
	return err
}

func (s *Store) writeDefault() error {
	cfg := defaultConfig()
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("既定設定のエンコードに失敗しました: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("設定ファイルの作成に失敗しました: %w", err)
	}
	return nil
}

// Reload は設定ファイルを読み直して保持内容を置き換えます。
// 不正な拡張子行とコンパイルできないパターンは除外し、件数を報告します。
func (s *Store) Reload() (ReloadReport, error) {
	var report ReloadReport

	data, err := os.ReadFile(s.path)
	if err != nil {
		return report, fmt.Errorf("設定ファイルの読み込みに失敗しました: %w", err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return report, fmt.Errorf("設定ファイルの解析に失敗しました: %w", err)
	}

	extensions := make([]string, 0, len(cfg.AllowedExtensions))
	for _, line := range cfg.AllowedExtensions {
		ext, ok := normalizeExtension(line)
		if !ok {
			if ext != "" {
				report.BadExtensions++
				s.logger.Log("WARN", fmt.Sprintf("不正な拡張子を無視します: %s", ext), nil)
			}
			continue
		}
		extensions = append(extensions, ext)
	}

	patterns := make([]*regexp.Regexp, 0, len(cfg.ContentPatterns))
	for _, p := range cfg.ContentPatterns {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			report.DroppedPatterns++
			s.logger.Log("WARN", fmt.Sprintf("パターンをコンパイルできないため無視します: %s", p), err)
			continue
		}
		patterns = append(patterns, re)
	}

	s.mu.Lock()
	s.current = model.Settings{
		Enabled:                   cfg.Enabled,
		CreateEmptyFiles:          cfg.CreateEmptyFiles,
		CreateWithContent:         cfg.CreateWithContent,
		CreateDirectoryStructures: cfg.CreateDirectoryStructures,
		AllowedExtensions:         extensions,
		ContentPatterns:           patterns,
		WordCountLimit:            cfg.WordCountLimit,
		CreateEmptyDirectories:    cfg.CreateEmptyDirectories,
		SkipExistingDirectories:   cfg.SkipExistingDirectories,
		TargetDirectory:           cfg.TargetDirectory,
	}
	s.mu.Unlock()

	return report, nil
}

// normalizeExtension は拡張子行を正規化します。
// 空行とコメント行は (""), false として黙って読み飛ばし、
// 不正な文字を含む行は (元の行, false) として報告対象にします。
func normalizeExtension(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "//") {
		return "", false
	}
	if strings.ContainsAny(trimmed, invalidExtensionChars) {
		return trimmed, false
	}
	if !strings.HasPrefix(trimmed, ".") {
		trimmed = "." + trimmed
	}
	return strings.ToLower(trimmed), true
}

// Snapshot は現在の設定の複製を返します。スライスも複製されるため、
// 呼び出し側は返り値を保持したまま安全に使用できます。
func (s *Store) Snapshot() model.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.current
	snapshot.AllowedExtensions = append([]string(nil), s.current.AllowedExtensions...)
	snapshot.ContentPatterns = append([]*regexp.Regexp(nil), s.current.ContentPatterns...)
	return snapshot
}
