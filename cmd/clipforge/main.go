// Package main はアプリケーションのエントリーポイントを提供します
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"ClipForge/internal/gui"
	"ClipForge/internal/infrastructure/clipboard"
	"ClipForge/internal/infrastructure/filesystem"
	"ClipForge/internal/infrastructure/logging"
	"ClipForge/internal/infrastructure/settings"
	"ClipForge/internal/interface/ui"
	"ClipForge/internal/usecase/dispatch"
)

// 実行ファイルと同じディレクトリに置かれるファイル名
const (
	settingsFileName = "clipforge.yaml"
	logFileName      = "clipforge.log"
)

func main() {
	// ロガーの初期化
	logger, closeLog := logging.NewFileLogger(siblingPath(logFileName))
	defer closeLog()

	// 設定ストアの初期化（ファイルがなければ既定で作成）
	store := settings.NewStore(siblingPath(settingsFileName), logger)
	if err := store.Initialize(); err != nil {
		logger.Log("ERROR", "設定の初期化に失敗", err)
		log.Fatalf("エラー: %v", err)
	}

	// ファイル・ディレクトリ作成の初期化
	materializer := filesystem.NewMaterializer(logger)

	// 作成先ディレクトリの解決: 設定になければ起動時に選択させる
	fallback := ""
	if store.Snapshot().TargetDirectory == "" {
		selector := ui.NewDirectorySelector(materializer)
		dir, err := selector.SelectDirectory("作成先ディレクトリの選択")
		if err != nil {
			logger.Log("ERROR", "作成先ディレクトリの選択に失敗", err)
			log.Fatalf("エラー: %v", err)
		}
		fallback = dir
	}
	resolver := ui.NewTargetResolver(store, materializer, fallback)

	// 通知・ダイアログの初期化（Fyneベース）
	notifier := gui.NewNotifier()
	prompter := gui.NewConflictDialog()
	confirmer := ui.NewConfirmer()

	watcher := clipboard.NewWatcher(0, logger)
	dispatcher := dispatch.NewDispatcher(
		watcher, store, resolver, prompter, confirmer, notifier, materializer, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 設定ファイルの変更監視
	settingsWatcher := settings.NewWatcher(store, notifier, logger)
	go func() {
		if err := settingsWatcher.Run(ctx); err != nil && ctx.Err() == nil {
			logger.Log("ERROR", "設定ファイルの監視が停止しました", err)
		}
	}()

	logger.Log("INFO", "クリップボードの監視を開始します", nil)
	if err := watcher.Run(ctx, dispatcher.HandleClipboardChange); err != nil && ctx.Err() == nil {
		logger.Log("ERROR", "クリップボードの監視が停止しました", err)
		log.Fatalf("エラー: %v", err)
	}

	logger.Log("INFO", "終了します", nil)
}

// siblingPath は実行ファイルと同じディレクトリ内のパスを返します。
// 実行ファイルの場所が取得できない場合はカレントディレクトリを使用します。
func siblingPath(name string) string {
	exe, err := os.Executable()
	if err != nil {
		return name
	}
	return filepath.Join(filepath.Dir(exe), name)
}
