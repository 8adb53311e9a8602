// Package clipboard はクリップボードの変更監視を提供します
package clipboard

import (
	"context"
	"time"

	"github.com/atotto/clipboard"

	"ClipForge/internal/infrastructure/logging"
)

// defaultInterval はクリップボードを確認する間隔です
const defaultInterval = 500 * time.Millisecond

// Watcher はクリップボードをポーリングし、テキストの変化を検出します
type Watcher struct {
	interval time.Duration
	logger   logging.Logger
	read     func() (string, error)

	primed bool
	last   string
}

// NewWatcher は新しいWatcherインスタンスを作成します。
// interval が0以下の場合は既定の間隔を使用します。
func NewWatcher(interval time.Duration, logger logging.Logger) *Watcher {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Watcher{interval: interval, logger: logger, read: clipboard.ReadAll}
}

// Text は最後に観測したクリップボードのテキストを返します。
// まだ一度も読み取れていない場合は false を返します。
func (w *Watcher) Text() (string, bool) {
	if !w.primed {
		return "", false
	}
	return w.last, true
}

// Run はコンテキストが取り消されるまでクリップボードを監視し、
// テキストが変化するたびに onChange を呼び出します。
// 起動時点のクリップボード内容は変化として扱いません。
func (w *Watcher) Run(ctx context.Context, onChange func()) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.poll(onChange)
		}
	}
}

func (w *Watcher) poll(onChange func()) {
	text, err := w.read()
	if err != nil {
		// バイナリデータの保持中などは読み取りが失敗する。無視して次を待つ
		return
	}

	if !w.primed {
		w.primed = true
		w.last = text
		return
	}

	if text == w.last {
		return
	}

	w.last = text
	w.logger.Log("INFO", "クリップボードの変更を検出しました", nil)
	onChange()
}
