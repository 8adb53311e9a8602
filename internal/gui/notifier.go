package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"ClipForge/internal/domain/model"
)

// Notifier は、Fyneを使用してデスクトップ通知を送信する構造体
type Notifier struct {
	app fyne.App
}

// NewNotifier は、Notifierの新しいインスタンスを作成します
func NewNotifier() *Notifier {
	return &Notifier{app: app.NewWithID("clipforge")}
}

// Notify は、デスクトップ通知を送信します。送信は投げっぱなしで、
// 失敗してもエラーを返しません。
func (n *Notifier) Notify(title, message string, severity model.Severity) {
	switch severity {
	case model.SeverityWarning:
		title = "警告: " + title
	case model.SeverityError:
		title = "エラー: " + title
	}
	n.app.SendNotification(fyne.NewNotification(title, message))
}
