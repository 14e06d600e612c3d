package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/shouni/go-carousel-kit/internal/config"
	"github.com/shouni/go-carousel-kit/internal/pipeline"

	"github.com/spf13/cobra"
)

// convertCmd は、既存のテキストやWebページをカルーセルに変換するのだ。
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "既存の文章やWebページをカルーセルに変換しますなのだ。",
	Long: `URL（--source-url）、ファイル（--source-file）、または標準入力のテキストを
要約・再構成してスライド文章に変換するのだ。元の文章にない事実は足さないのだよ。`,
	RunE: convertCommand,
}

func init() {
}

func convertCommand(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// 1. 必須チェック
	if opts.SourceURL == "" && opts.SourceFile == "" && !isStdin() {
		return fmt.Errorf("ソース（--source-url または --source-file、もしくは標準入力）を指定してほしいのだ")
	}

	// 2. 標準入力があれば先に読み切っておくのだ
	var rawText string
	if opts.SourceURL == "" && opts.SourceFile == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("標準入力の読み込みに失敗したのだ: %w", err)
		}
		rawText = string(data)
	}

	cfg := config.LoadConfig()
	cfg.GeminiModel = opts.AIModel
	cfg.Options = opts

	slog.Info("コンテンツ変換パイプラインを起動するのだ！",
		"source_url", opts.SourceURL,
		"source_file", opts.SourceFile,
		"slides", opts.SlideCount)

	if err := pipeline.ExecuteConvert(ctx, cfg, rawText); err != nil {
		return fmt.Errorf("変換パイプライン実行中にエラーが発生したのだ: %w", err)
	}

	slog.Info("すべての変換工程が完了したのだ！")
	return nil
}

func isStdin() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}
