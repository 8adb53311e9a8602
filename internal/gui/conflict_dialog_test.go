package gui

import (
	"strings"
	"testing"
)

func TestConflictMessage(t *testing.T) {
	t.Run("単一ファイルのメッセージ", func(t *testing.T) {
		got := conflictMessage([]string{"note.txt"}, false)
		if !strings.Contains(got, "note.txt") {
			t.Errorf("ファイル名が含まれるべき: %q", got)
		}
		if strings.Contains(got, "個のファイル") {
			t.Errorf("単一ファイルで件数表示されるべきではない: %q", got)
		}
	})

	t.Run("一括のメッセージには件数が含まれる", func(t *testing.T) {
		got := conflictMessage([]string{"a.txt", "b.txt"}, true)
		if !strings.Contains(got, "2 個") {
			t.Errorf("件数が含まれるべき: %q", got)
		}
	})

	t.Run("多すぎるファイル名は省略される", func(t *testing.T) {
		names := []string{"a.txt", "b.txt", "c.txt", "d.txt", "e.txt", "f.txt", "g.txt"}
		got := conflictMessage(names, true)
		if strings.Contains(got, "g.txt") {
			t.Errorf("上限を超えたファイル名は列挙されるべきではない: %q", got)
		}
		if !strings.Contains(got, "ほか 2 件") {
			t.Errorf("省略件数が含まれるべき: %q", got)
		}
	})
}
