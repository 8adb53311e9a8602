// Package gui はGUIを提供します
package gui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"ClipForge/internal/domain/model"
)

// Default window size constants
const (
	DefaultWindowWidth  = 480
	DefaultWindowHeight = 220
)

// maxListedNames はダイアログに列挙するファイル名の上限です
const maxListedNames = 5

// ConflictDialog は、Fyneを使用して既存ファイルとの衝突の
// 解決方法をユーザーへ問い合わせる構造体
type ConflictDialog struct{}

// NewConflictDialog は、ConflictDialogの新しいインスタンスを作成します
func NewConflictDialog() *ConflictDialog {
	return &ConflictDialog{}
}

// PromptConflict は、3択のダイアログを表示してユーザーの選択を返します。
// ウィンドウが選択なしで閉じられた場合はスキップとして扱います。
func (d *ConflictDialog) PromptConflict(names []string, batch bool) model.ConflictAction {
	done := make(chan model.ConflictAction, 1)

	a := app.New()
	w := a.NewWindow("ファイル名の衝突")
	w.Resize(fyne.NewSize(DefaultWindowWidth, DefaultWindowHeight))

	choose := func(action model.ConflictAction) {
		select {
		case done <- action:
		default:
		}
		a.Quit()
	}

	label := widget.NewLabel(conflictMessage(names, batch))
	label.Wrapping = fyne.TextWrapWord

	buttons := container.NewHBox(
		widget.NewButton("置き換える", func() { choose(model.ConflictReplace) }),
		widget.NewButton("名前を変更", func() { choose(model.ConflictRename) }),
		widget.NewButton("スキップ", func() { choose(model.ConflictSkip) }),
	)
	w.SetContent(container.NewVBox(label, buttons))
	w.SetCloseIntercept(func() { choose(model.ConflictSkip) })

	w.Show()
	a.Run()

	select {
	case action := <-done:
		return action
	default:
		return model.ConflictSkip
	}
}

// conflictMessage は衝突したファイル名の一覧を含むメッセージを組み立てます
func conflictMessage(names []string, batch bool) string {
	listed := names
	truncated := 0
	if len(listed) > maxListedNames {
		truncated = len(listed) - maxListedNames
		listed = listed[:maxListedNames]
	}

	var b strings.Builder
	if batch {
		fmt.Fprintf(&b, "%d 個のファイルが既に存在します。どうしますか？\n\n", len(names))
	} else {
		b.WriteString("同名のファイルが既に存在します。どうしますか？\n\n")
	}
	b.WriteString(strings.Join(listed, "\n"))
	if truncated > 0 {
		fmt.Fprintf(&b, "\n（ほか %d 件）", truncated)
	}
	return b.String()
}
