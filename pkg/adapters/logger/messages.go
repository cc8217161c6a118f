package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration
		"Converting frames to video at %d fps": "%d fps でフレームを動画に変換します",
		"Processing directory: %s":             "処理対象ディレクトリ: %s",
		"Video created successfully: %s":       "動画を作成しました: %s",
		"Deleted render folder: %s":            "レンダーフォルダを削除しました: %s",
		"Run completed":                        "処理が完了しました",

		// Selector
		"Scanning %s for render directories": "%s のレンダーディレクトリを検索中",
		"Skipping %s: no readable timestamp": "%s をスキップ: タイムスタンプを読み取れません",
		"Candidate %s (%s)":                  "候補 %s (%s)",
		"Selected %s from %d candidates":     "%d 件の候補から %s を選択しました",

		// Encoder
		"Running %s %s":                   "%s %s を実行中",
		"Encoder exited with status %d":   "エンコーダーが終了コード %d で終了しました",
		"Output: %s, %d frames, %s":       "出力: %s, %d フレーム, %s",
		"Could not inspect output %s: %s": "出力 %s を検査できませんでした: %s",

		// Lock
		"Acquired run lock %s":           "実行ロック %s を取得しました",
		"Failed to release run lock: %s": "実行ロックの解放に失敗しました: %s",

		// Errors
		"Failed to create output directory: %s": "出力ディレクトリの作成に失敗しました: %s",
		"Failed to find render directory: %s":   "レンダーディレクトリが見つかりません: %s",
		"Failed to encode video: %s":            "動画のエンコードに失敗しました: %s",
		"Failed to delete render folder: %s":    "レンダーフォルダの削除に失敗しました: %s",
	})
}
