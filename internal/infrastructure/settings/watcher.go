package settings

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"ClipForge/internal/domain/model"
	"ClipForge/internal/infrastructure/logging"
)

// writeSettleDelay はエディタの保存が完了するのを待つ時間です
const writeSettleDelay = 100 * time.Millisecond

// Notifier は再読み込みの結果をユーザーへ通知します
type Notifier interface {
	Notify(title, message string, severity model.Severity)
}

// Watcher は設定ファイルの変更を監視し、変更のたびに再読み込みを行います
type Watcher struct {
	store    *Store
	notifier Notifier
	logger   logging.Logger
}

// NewWatcher は新しいWatcherインスタンスを作成します
func NewWatcher(store *Store, notifier Notifier, logger logging.Logger) *Watcher {
	return &Watcher{store: store, notifier: notifier, logger: logger}
}

// Run はコンテキストが取り消されるまで設定ファイルを監視します。
// エディタによる置き換え保存を取りこぼさないよう、ファイルではなく
// その親ディレクトリを監視対象にします。
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("ファイル監視の初期化に失敗しました: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.store.Path())
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("監視対象の登録に失敗しました: %w", err)
	}

	target := filepath.Base(w.store.Path())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			time.Sleep(writeSettleDelay)
			w.reload()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Log("ERROR", "ファイル監視でエラーが発生しました", err)
		}
	}
}

func (w *Watcher) reload() {
	report, err := w.store.Reload()
	if err != nil {
		w.logger.Log("ERROR", "設定の再読み込みに失敗しました", err)
		w.notifier.Notify("設定", "設定ファイルを読み込めませんでした", model.SeverityError)
		return
	}

	if report.Clean() {
		w.logger.Log("INFO", "設定を再読み込みしました", nil)
		w.notifier.Notify("設定", "設定を更新しました", model.SeverityInfo)
		return
	}

	w.logger.Log("WARN", fmt.Sprintf("設定を再読み込みしました（不正な拡張子 %d 件、無効なパターン %d 件を除外）",
		report.BadExtensions, report.DroppedPatterns), nil)
	w.notifier.Notify("設定", "設定を更新しました（一部の無効な行を除外）", model.SeverityWarning)
}
