package export

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"log/slog"

	"github.com/shouni/go-remote-io/pkg/remoteio"
	"golang.org/x/time/rate"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfimage "seehuhn.de/go/pdf/graphics/image"

	"github.com/shouni/go-carousel-kit/pkg/asset"
	"github.com/shouni/go-carousel-kit/pkg/config"
	"github.com/shouni/go-carousel-kit/pkg/domain"
	"github.com/shouni/go-carousel-kit/pkg/render"
)

// JPEG 品質は用途で固定。画像エクスポートは 92、PDF のページ画像は 95 なのだ。
const (
	jpegQualityImage = 92
	jpegQualityPDF   = 95
)

// Format はエクスポートする画像形式です。
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpg"
)

// Job は1回のエクスポート要求です。スライド列と見た目の文脈を丸ごと受け取ります。
type Job struct {
	Slides  []domain.Slide
	Style   domain.StyleConfig
	Profile domain.BrandingProfile
	Links   []string

	Format    Format
	OutputDir string
	PDFPath   string
}

// Exporter はスライドを1枚ずつ順番にキャプチャして書き出します。
// キャプチャは必ずインデックス順で、2枚が同時に走ることはないのだ。
type Exporter struct {
	cfg      config.Config
	composer *render.Composer
	capturer Capturer
	writer   remoteio.OutputWriter
	limiter  *rate.Limiter
}

// NewExporter は依存関係を注入して初期化します。
// キャプチャ間隔は整定待ち時間として扱われ、rate.Limiter で強制されます。
func NewExporter(cfg config.Config, composer *render.Composer, capturer Capturer, writer remoteio.OutputWriter) *Exporter {
	settle := cfg.SettleDelay
	if settle <= 0 {
		settle = config.DefaultSettleDelay
	}
	return &Exporter{
		cfg:      cfg,
		composer: composer,
		capturer: capturer,
		writer:   writer,
		limiter:  rate.NewLimiter(rate.Every(settle), 1),
	}
}

// ExportImages は全スライドを slajd_N.{png,jpg} として書き出し、
// 書き込んだパスの一覧を返します。キャプチャに失敗したスライドは
// 警告を残して飛ばし、残りの処理は続行します。
func (e *Exporter) ExportImages(ctx context.Context, job Job) ([]string, error) {
	baseName := asset.DefaultSlidePNG
	contentType := "image/png"
	if job.Format == FormatJPEG {
		baseName = asset.DefaultSlideJPEG
		contentType = "image/jpeg"
	}

	outputDir := job.OutputDir
	if outputDir == "" {
		outputDir = e.cfg.OutputDir
	}
	basePath, err := asset.ResolveOutputPath(outputDir, baseName)
	if err != nil {
		return nil, fmt.Errorf("出力パスの解決に失敗しました: %w", err)
	}

	var written []string
	for i := range job.Slides {
		img, err := e.captureSlide(ctx, job, i)
		if err != nil {
			slog.WarnContext(ctx, "スライドのキャプチャに失敗したためスキップします", "index", i, "error", err)
			continue
		}

		path, err := asset.GenerateIndexedPath(basePath, i+1)
		if err != nil {
			return written, fmt.Errorf("出力ファイル名の生成に失敗しました: %w", err)
		}

		var buf bytes.Buffer
		if job.Format == FormatJPEG {
			err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQualityImage})
		} else {
			err = png.Encode(&buf, img)
		}
		if err != nil {
			return written, fmt.Errorf("スライド %d のエンコードに失敗しました: %w", i+1, err)
		}

		if err := e.writer.Write(ctx, path, &buf, contentType); err != nil {
			return written, fmt.Errorf("スライド %d の書き込みに失敗しました: %w", i+1, err)
		}
		written = append(written, path)
	}

	slog.InfoContext(ctx, "画像エクスポートが完了しました", "slides", len(job.Slides), "written", len(written))
	return written, nil
}

// ExportPDF は全スライドを1ページ1スライドの PDF にまとめます。
// ページ寸法はキャンバスのピクセル寸法と同一で、ページ画像は JPEG 品質95で埋め込まれます。
func (e *Exporter) ExportPDF(ctx context.Context, job Job) (string, error) {
	if len(job.Slides) == 0 {
		return "", fmt.Errorf("エクスポート対象のスライドがありません")
	}

	pdfPath := job.PDFPath
	if pdfPath == "" {
		var err error
		pdfPath, err = asset.ResolveOutputPath(e.cfg.OutputDir, e.cfg.PDFName)
		if err != nil {
			return "", fmt.Errorf("出力パスの解決に失敗しました: %w", err)
		}
	}

	first := e.composer.Compose(render.Input{
		Slide: job.Slides[0], Style: job.Style, Index: 0, Total: len(job.Slides),
		Profile: job.Profile, Links: job.Links,
	})

	var buf bytes.Buffer
	doc, err := document.WriteMultiPage(&buf, float64(first.Width), float64(first.Height))
	if err != nil {
		return "", fmt.Errorf("PDFドキュメントの生成に失敗しました: %w", err)
	}

	embedded := 0
	for i := range job.Slides {
		img, err := e.captureSlide(ctx, job, i)
		if err != nil {
			slog.WarnContext(ctx, "スライドのキャプチャに失敗したためスキップします", "index", i, "error", err)
			continue
		}

		em, err := pdfimage.EmbedJPEG(doc.Out, img, &jpeg.Options{Quality: jpegQualityPDF}, pdf.Name(fmt.Sprintf("Im%d", i+1)))
		if err != nil {
			return "", fmt.Errorf("スライド %d の埋め込みに失敗しました: %w", i+1, err)
		}

		page := doc.AddPage()
		page.Transform(graphics.Scale(float64(first.Width), float64(first.Height)))
		page.DrawImage(em)
		if err := page.Close(); err != nil {
			return "", fmt.Errorf("PDFページの確定に失敗しました: %w", err)
		}
		embedded++
	}

	if embedded == 0 {
		return "", fmt.Errorf("キャプチャに成功したスライドが1枚もありません")
	}
	if err := doc.Close(); err != nil {
		return "", fmt.Errorf("PDFドキュメントの確定に失敗しました: %w", err)
	}

	if err := e.writer.Write(ctx, pdfPath, &buf, "application/pdf"); err != nil {
		return "", fmt.Errorf("PDFの書き込みに失敗しました (%s): %w", pdfPath, err)
	}

	slog.InfoContext(ctx, "PDFエクスポートが完了しました", "path", pdfPath, "pages", embedded)
	return pdfPath, nil
}

// captureSlide は整定待ちを挟んでから1枚だけキャプチャします。
func (e *Exporter) captureSlide(ctx context.Context, job Job, index int) (image.Image, error) {
	if err := e.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("整定待ちが中断されました: %w", err)
	}
	canvas := e.composer.Compose(render.Input{
		Slide:   job.Slides[index],
		Style:   job.Style,
		Index:   index,
		Total:   len(job.Slides),
		Profile: job.Profile,
		Links:   job.Links,
	})
	return e.capturer.Capture(ctx, canvas)
}
