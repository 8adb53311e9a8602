package clipboard

import (
	"errors"
	"io"
	"testing"

	"ClipForge/internal/infrastructure/logging"
)

func newTestWatcher(read func() (string, error)) *Watcher {
	w := NewWatcher(0, logging.NewJSONLogger(io.Discard))
	w.read = read
	return w
}

func TestWatcherPoll(t *testing.T) {
	t.Run("起動時の内容は変化として扱われない", func(t *testing.T) {
		w := newTestWatcher(func() (string, error) { return "initial", nil })

		fired := false
		w.poll(func() { fired = true })

		if fired {
			t.Error("最初の読み取りで通知されるべきではない")
		}
		if text, ok := w.Text(); !ok || text != "initial" {
			t.Errorf("Text() = (%q, %v), want (%q, true)", text, ok, "initial")
		}
	})

	t.Run("テキストの変化で通知される", func(t *testing.T) {
		texts := []string{"a", "a", "b"}
		i := 0
		w := newTestWatcher(func() (string, error) {
			text := texts[i]
			i++
			return text, nil
		})

		count := 0
		onChange := func() { count++ }
		w.poll(onChange) // 初回読み取り
		w.poll(onChange) // 同一内容
		w.poll(onChange) // 変化

		if count != 1 {
			t.Errorf("通知回数が不正: got %d, want 1", count)
		}
		if text, _ := w.Text(); text != "b" {
			t.Errorf("最新テキストが不正: got %q, want %q", text, "b")
		}
	})

	t.Run("読み取り失敗は無視される", func(t *testing.T) {
		calls := 0
		w := newTestWatcher(func() (string, error) {
			calls++
			if calls == 2 {
				return "", errors.New("clipboard busy")
			}
			return "a", nil
		})

		fired := false
		w.poll(func() { fired = true })
		w.poll(func() { fired = true })

		if fired {
			t.Error("読み取り失敗で通知されるべきではない")
		}
		if text, ok := w.Text(); !ok || text != "a" {
			t.Errorf("Text() = (%q, %v), want (%q, true)", text, ok, "a")
		}
	})

	t.Run("読み取り前のTextは失敗を返す", func(t *testing.T) {
		w := newTestWatcher(func() (string, error) { return "", nil })
		if _, ok := w.Text(); ok {
			t.Error("読み取り前は false を返すべき")
		}
	})
}
