// Package main provides localization for the rendervid CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Encode the newest render directory into an MP4 video": "最新のレンダーディレクトリをMP4動画にエンコード",
		"rendervid version %s":                                  "rendervid バージョン %s",

		// Flags
		"Frame rate of the output video (default: 30)":       "出力動画のフレームレート（デフォルト: 30）",
		"YAML configuration file":                            "YAML設定ファイル",
		"Output execution summary to file (Markdown format)": "実行サマリーをファイルに出力（Markdown形式）",
		"Log level (debug, info, warn, error)":               "ログレベル（debug, info, warn, error）",
		"Suppress all log output":                            "全てのログ出力を抑制",
		"Show version information":                           "バージョン情報を表示",

		// Runtime messages
		"Summary saved to %s":         "サマリーを %s に保存しました",
		"Failed to write summary: %s": "サマリーの書き込みに失敗しました: %s",

		// Summary content
		"Render Summary": "レンダーサマリー",
		"Generated":      "生成日時",
		"Item":           "項目",
		"Value":          "値",
		"Yes":            "はい",
		"No":             "いいえ",

		// Source section
		"Source":    "入力",
		"Directory": "ディレクトリ",
		"Timestamp": "タイムスタンプ",

		// Encoding section
		"Encoding":     "エンコード",
		"Frame Rate":   "フレームレート",
		"Codec":        "コーデック",
		"Pixel Format": "ピクセルフォーマット",
		"Preset":       "プリセット",
		"CRF":          "CRF値",

		// Output section
		"Output":         "出力",
		"File":           "ファイル",
		"File Size":      "ファイルサイズ",
		"Video Codec":    "動画コーデック",
		"Frame Count":    "フレーム数",
		"Duration":       "再生時間",
		"Source Removed": "入力の削除",
		"Elapsed":        "所要時間",
		"Generated by":   "生成:",
	})
}
