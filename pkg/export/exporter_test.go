package export

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/shouni/go-carousel-kit/pkg/config"
	"github.com/shouni/go-carousel-kit/pkg/domain"
	"github.com/shouni/go-carousel-kit/pkg/render"
)

// fakeCapturer は呼び出し順を記録し、指定インデックスで失敗させられます。
type fakeCapturer struct {
	captured []int
	failAt   map[int]bool
}

func (f *fakeCapturer) Capture(_ context.Context, c render.Canvas) (image.Image, error) {
	f.captured = append(f.captured, c.Index)
	if f.failAt[c.Index] {
		return nil, fmt.Errorf("render nie zdążył")
	}
	img := image.NewRGBA(image.Rect(0, 0, 4, 5))
	img.Set(0, 0, color.White)
	return img, nil
}

type memWriter struct {
	paths []string
	types []string
}

func (m *memWriter) Write(_ context.Context, path string, r io.Reader, contentType string) error {
	if _, err := io.ReadAll(r); err != nil {
		return err
	}
	m.paths = append(m.paths, path)
	m.types = append(m.types, contentType)
	return nil
}

func testExporter(capturer Capturer, writer *memWriter) *Exporter {
	cfg := config.DefaultConfig()
	cfg.SettleDelay = time.Millisecond
	cfg.OutputDir = "output"
	return NewExporter(cfg, render.NewComposer(), capturer, writer)
}

func testJob(n int, format Format) Job {
	slides := make([]domain.Slide, n)
	for i := range slides {
		slides[i] = domain.Slide{Title: fmt.Sprintf("S%d", i+1), Content: "treść"}
	}
	return Job{
		Slides:  slides,
		Style:   domain.DefaultStyleConfig(),
		Profile: domain.BrandingProfile{Handle: "@SynapseCreative"},
		Format:  format,
	}
}

func TestExportImages_連番ファイルが添字順に書き出される(t *testing.T) {
	capturer := &fakeCapturer{}
	writer := &memWriter{}
	e := testExporter(capturer, writer)

	written, err := e.ExportImages(context.Background(), testJob(3, FormatPNG))
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"output/slajd_1.png", "output/slajd_2.png", "output/slajd_3.png"}
	if diff := cmp.Diff(want, written); diff != "" {
		t.Errorf("出力パスの不一致 (-want +got):\n%s", diff)
	}
	// キャプチャは必ず 0..N-1 の昇順なのだ。
	if diff := cmp.Diff([]int{0, 1, 2}, capturer.captured); diff != "" {
		t.Errorf("キャプチャ順の不一致 (-want +got):\n%s", diff)
	}
}

func TestExportImages_JPEG形式は拡張子とMIMEが変わる(t *testing.T) {
	writer := &memWriter{}
	e := testExporter(&fakeCapturer{}, writer)

	written, err := e.ExportImages(context.Background(), testJob(1, FormatJPEG))
	if err != nil {
		t.Fatal(err)
	}
	if written[0] != "output/slajd_1.jpg" {
		t.Errorf("出力パス = %q", written[0])
	}
	if writer.types[0] != "image/jpeg" {
		t.Errorf("Content-Type = %q", writer.types[0])
	}
}

func TestExportImages_キャプチャ失敗はスキップして続行する(t *testing.T) {
	capturer := &fakeCapturer{failAt: map[int]bool{1: true}}
	writer := &memWriter{}
	e := testExporter(capturer, writer)

	written, err := e.ExportImages(context.Background(), testJob(3, FormatPNG))
	if err != nil {
		t.Fatal(err)
	}

	// 失敗した2枚目は欠番になり、連番は添字に追随する。
	want := []string{"output/slajd_1.png", "output/slajd_3.png"}
	if diff := cmp.Diff(want, written); diff != "" {
		t.Errorf("出力パスの不一致 (-want +got):\n%s", diff)
	}
}

func TestExportPDF_全ページをひとつのPDFにまとめる(t *testing.T) {
	writer := &memWriter{}
	e := testExporter(&fakeCapturer{}, writer)

	path, err := e.ExportPDF(context.Background(), testJob(2, FormatPNG))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(path, config.DefaultPDFName) {
		t.Errorf("PDFパス = %q, 既定名で終わっていない", path)
	}
	if len(writer.paths) != 1 || writer.types[0] != "application/pdf" {
		t.Errorf("書き込み = %v / %v", writer.paths, writer.types)
	}
}

func TestExportPDF_全滅したらエラーになる(t *testing.T) {
	capturer := &fakeCapturer{failAt: map[int]bool{0: true, 1: true}}
	e := testExporter(capturer, &memWriter{})

	if _, err := e.ExportPDF(context.Background(), testJob(2, FormatPNG)); err == nil {
		t.Error("1枚も埋め込めない PDF がエラーにならない")
	}
}

func TestExportPDF_スライドが空ならエラーになる(t *testing.T) {
	e := testExporter(&fakeCapturer{}, &memWriter{})
	if _, err := e.ExportPDF(context.Background(), testJob(0, FormatPNG)); err == nil {
		t.Error("空のエクスポートがエラーにならない")
	}
}
