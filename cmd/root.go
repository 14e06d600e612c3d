package cmd

import (
	"fmt"
	"os"

	"github.com/shouni/go-carousel-kit/internal/config"

	clibase "github.com/shouni/go-cli-base"
	"github.com/spf13/cobra"
)

// opts は全コマンドで共有される実行時オプションなのだ。
var opts config.GenerateOptions

// addAppFlags は、アプリケーション全般に適用されるグローバルフラグを定義するのだ。
func addAppFlags(rootCmd *cobra.Command) {
	// --- 生成ソース関連 ---
	rootCmd.PersistentFlags().StringVarP(&opts.Topic, "topic", "t", "", "カルーセルのテーマなのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.Tone, "tone", "", "文体（Edukacyjny / Ekscytujący / Profesjonalny / Opowieść / Bezpośredni）なのだ。")
	rootCmd.PersistentFlags().IntVarP(&opts.SlideCount, "slides", "n", config.DefaultSlideCount, "生成するスライド枚数（4〜10）なのだ。")
	rootCmd.PersistentFlags().StringVarP(&opts.SourceURL, "source-url", "u", "", "Webページからコンテンツを取得するためのURLなのだ。")
	rootCmd.PersistentFlags().StringVarP(&opts.SourceFile, "source-file", "f", "", "入力ファイルのパス（ローカル or gs://...）なのだ。")
	rootCmd.PersistentFlags().StringArrayVar(&opts.KeyMessages, "key-message", nil, "Hook/価値/CTA の指針文（最大3回指定）なのだ。")

	// --- スタイル関連 ---
	rootCmd.PersistentFlags().StringVar(&opts.ThemeID, "theme", "", "テーマIDなのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.FontID, "font", "", "テーマのフォントを上書きするフォントIDなのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.AspectRatio, "ratio", "", "出力の縦横比（1:1 / 4:5 / 9:16 / 16:9）なのだ。")
	rootCmd.PersistentFlags().StringVarP(&opts.Layout, "layout", "l", "", "中間スライドのレイアウトIDなのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.TextEffect, "effect", "", "タイトルの文字装飾なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.Background, "background", "", "背景写真のIDなのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.PatternID, "pattern", "", "背景パターンのIDなのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.TitleColor, "title-color", "", "タイトル色（#rrggbb）なのだ。")

	// --- ブランディング関連 ---
	rootCmd.PersistentFlags().StringVar(&opts.Profile, "profile", "personal", "使用するプロファイル（personal / company）なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.Handle, "handle", "", "フッターに表示するハンドルなのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.Logo, "logo", "", "ロゴ画像（URL・data URI・ローカルパス）なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.Photo, "photo", "", "アバター画像（URL・data URI・ローカルパス）なのだ。")
	rootCmd.PersistentFlags().StringArrayVar(&opts.Links, "link", nil, "最終スライドの参照リンク（最大3回指定）なのだ。")

	// --- 出力関連 ---
	rootCmd.PersistentFlags().StringVar(&opts.Format, "format", "png", "画像形式（png / jpg）なのだ。")
	rootCmd.PersistentFlags().StringVarP(&opts.OutputDir, "output-dir", "o", config.DefaultOutputDir, "画像の保存先ディレクトリ（ローカル or gs://...）なのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.PDFFile, "pdf-file", "", "PDFの保存パス（省略時は "+config.DefaultPDFName+"）なのだ。")
	rootCmd.PersistentFlags().BoolVar(&opts.WithPDF, "pdf", false, "画像に加えてPDFも書き出すのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.ProjectName, "name", "", "保存するプロジェクト名（省略時はテーマ名）なのだ。")
	rootCmd.PersistentFlags().BoolVar(&opts.SaveProject, "save", false, "セッションをスナップショットとして保存するのだ。")
	rootCmd.PersistentFlags().StringVar(&opts.ProjectID, "project", "", "対象のプロジェクトIDなのだ。")

	// --- AIモデル・実行制御 ---
	rootCmd.PersistentFlags().StringVar(&opts.AIModel, "model", config.DefaultModel, "使用する Gemini モデル名なのだ。")
	rootCmd.PersistentFlags().DurationVar(&opts.HTTPTimeout, "http-timeout", config.DefaultHTTPTimeout, "Webリクエストのタイムアウトなのだ。")
}

// preRunAppE は、コマンド実行前に環境変数などの必須チェックを行うのだ。
func preRunAppE(cmd *cobra.Command, args []string) error {
	// Gemini APIを利用するため、APIキーの存在チェックは欠かせないのだ！
	if os.Getenv("GEMINI_API_KEY") == "" {
		return fmt.Errorf("エラー: 環境変数 GEMINI_API_KEY が設定されていません。Gemini APIの利用には必須なのだ")
	}

	return nil
}

// Execute は、アプリケーションのメインエントリポイントなのだ。
// main.go から呼び出されて、cobra のコマンドライン解析を開始するのだよ。
func Execute() {
	clibase.Execute(
		"ap-carousel-go",
		addAppFlags,
		preRunAppE,
		generateCmd,
		previewCmd,
		sequenceCmd,
		convertCmd,
		exportCmd,
		projectCmd,
	)
}
