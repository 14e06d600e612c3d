package export

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"math"
	"strings"
	"sync"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/shouni/go-carousel-kit/pkg/asset"
	"github.com/shouni/go-carousel-kit/pkg/domain"
	"github.com/shouni/go-carousel-kit/pkg/render"
)

// RasterCapturer は Canvas をオフスクリーンのラスタ画像として描画します。
// 画像参照は asset.Loader で解決され、解決に失敗した要素は警告だけ残して飛ばします。
type RasterCapturer struct {
	loader *asset.Loader

	mu    sync.Mutex
	fonts map[fontKey]xfont.Face
}

type fontKey struct {
	bold   bool
	italic bool
	size   int
}

// NewRasterCapturer は画像ローダーを注入して初期化します。
func NewRasterCapturer(loader *asset.Loader) *RasterCapturer {
	return &RasterCapturer{
		loader: loader,
		fonts:  make(map[fontKey]xfont.Face),
	}
}

// Capture はレイヤーを背面から順に合成し、確定したラスタ画像を返します。
func (rc *RasterCapturer) Capture(ctx context.Context, c render.Canvas) (image.Image, error) {
	if c.Width <= 0 || c.Height <= 0 {
		return nil, fmt.Errorf("キャンバス寸法が不正です: %dx%d", c.Width, c.Height)
	}
	dc := gg.NewContext(c.Width, c.Height)

	for _, layer := range c.Layers {
		switch layer.Kind {
		case render.LayerBase:
			rc.paintBase(dc, c)
		case render.LayerBackgroundImage:
			rc.paintBackgroundImage(ctx, dc, c, layer)
		case render.LayerPattern:
			rc.paintPattern(dc, c, layer)
		case render.LayerOverlay:
			rc.paintOverlay(dc, c, layer)
		case render.LayerFadingCorner:
			rc.paintFadingCorner(dc, c, layer)
		default:
			for _, n := range layer.Nodes {
				rc.paintNode(ctx, dc, c, n)
			}
		}
	}

	return dc.Image(), nil
}

func (rc *RasterCapturer) paintBase(dc *gg.Context, c render.Canvas) {
	w, h := float64(c.Width), float64(c.Height)
	if c.Theme.BackgroundEnd != "" {
		grad := gg.NewLinearGradient(0, 0, w, h)
		grad.AddColorStop(0, hexColor(c.Theme.Background, 1))
		grad.AddColorStop(1, hexColor(c.Theme.BackgroundEnd, 1))
		dc.SetFillStyle(grad)
	} else {
		dc.SetColor(hexColor(c.Theme.Background, 1))
	}
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()
}

// paintBackgroundImage は写真を cover 相当で敷き、地色を薄く被せて減光します。
func (rc *RasterCapturer) paintBackgroundImage(ctx context.Context, dc *gg.Context, c render.Canvas, layer render.Layer) {
	img, err := rc.loadImage(ctx, layer.ImageURL)
	if err != nil {
		slog.WarnContext(ctx, "背景画像の解決に失敗したためスキップします", "ref", layer.ImageURL, "error", err)
		return
	}
	dc.DrawImage(coverScale(img, c.Width, c.Height), 0, 0)

	// 直接の不透明度指定の代わりに地色を (1-opacity) で被せる。
	dc.SetColor(hexColor(c.Theme.Background, 1-layer.Opacity))
	dc.DrawRectangle(0, 0, float64(c.Width), float64(c.Height))
	dc.Fill()
}

func (rc *RasterCapturer) paintPattern(dc *gg.Context, c render.Canvas, layer render.Layer) {
	tile := float64(layer.Pattern.TileSize)
	if tile <= 0 {
		tile = 80
	}
	dc.SetColor(hexColor(c.Theme.Accent, 0.12))

	w, h := float64(c.Width), float64(c.Height)
	for y := 0.0; y < h+tile; y += tile {
		for x := 0.0; x < w+tile; x += tile {
			drawPatternTile(dc, layer.Pattern.Shape, x, y, tile)
		}
	}
}

func (rc *RasterCapturer) paintOverlay(dc *gg.Context, c render.Canvas, layer render.Layer) {
	dc.SetColor(hexColor(layer.Color, layer.Opacity))
	dc.DrawRectangle(0, 0, float64(c.Width), float64(c.Height))
	dc.Fill()
}

// paintFadingCorner は左上からの斜めフェードです。全長の4割で透明に抜けます。
func (rc *RasterCapturer) paintFadingCorner(dc *gg.Context, c render.Canvas, layer render.Layer) {
	w, h := float64(c.Width), float64(c.Height)
	grad := gg.NewLinearGradient(0, 0, w*0.4, h*0.4)
	grad.AddColorStop(0, hexColor("#000000", layer.Opacity))
	grad.AddColorStop(1, hexColor("#000000", 0))
	dc.SetFillStyle(grad)
	dc.DrawRectangle(0, 0, w, h)
	dc.Fill()
}

func (rc *RasterCapturer) paintNode(ctx context.Context, dc *gg.Context, c render.Canvas, n render.Node) {
	switch n.Kind {
	case render.NodeBox, render.NodeLine:
		rc.paintBox(dc, n)
	case render.NodeImage:
		rc.paintImage(ctx, dc, n)
	case render.NodeText:
		rc.paintText(dc, c, n)
	}
}

func (rc *RasterCapturer) paintBox(dc *gg.Context, n render.Node) {
	if n.Fill != "" {
		dc.SetColor(hexColor(n.Fill, opacityOf(n)))
		rectPath(dc, n)
		dc.Fill()
	}
	if n.BorderColor != "" && n.BorderWidth > 0 {
		dc.SetColor(hexColor(n.BorderColor, 1))
		dc.SetLineWidth(n.BorderWidth)
		rectPath(dc, n)
		dc.Stroke()
	}
}

func (rc *RasterCapturer) paintImage(ctx context.Context, dc *gg.Context, n render.Node) {
	img, err := rc.loadImage(ctx, n.Src)
	if err != nil {
		slog.WarnContext(ctx, "画像参照の解決に失敗したためスキップします", "ref", n.Src, "error", err)
		return
	}
	scaled := coverScale(img, int(n.Rect.W), int(n.Rect.H))

	if n.Circle {
		dc.Push()
		dc.DrawCircle(n.Rect.X+n.Rect.W/2, n.Rect.Y+n.Rect.H/2, math.Min(n.Rect.W, n.Rect.H)/2)
		dc.Clip()
		dc.DrawImage(scaled, int(n.Rect.X), int(n.Rect.Y))
		dc.Pop()
	} else {
		dc.DrawImage(scaled, int(n.Rect.X), int(n.Rect.Y))
	}

	if n.BorderColor != "" && n.BorderWidth > 0 {
		dc.SetColor(hexColor(n.BorderColor, 1))
		dc.SetLineWidth(n.BorderWidth)
		if n.Circle {
			dc.DrawCircle(n.Rect.X+n.Rect.W/2, n.Rect.Y+n.Rect.H/2, math.Min(n.Rect.W, n.Rect.H)/2)
		} else {
			rectPath(dc, n)
		}
		dc.Stroke()
	}
}

func (rc *RasterCapturer) paintText(dc *gg.Context, c render.Canvas, n render.Node) {
	text := n.Text
	if n.Uppercase {
		text = strings.ToUpper(text)
	}
	face, err := rc.face(n.Bold, n.Italic, n.FontSize)
	if err != nil {
		slog.Warn("フォントフェイスの生成に失敗しました", "size", n.FontSize, "error", err)
		return
	}
	dc.SetFontFace(face)

	align := gg.AlignLeft
	switch n.Align {
	case render.AlignCenter:
		align = gg.AlignCenter
	case render.AlignRight:
		align = gg.AlignRight
	}
	lineHeight := n.LineHeight
	if lineHeight == 0 {
		lineHeight = 1.2
	}
	ax := 0.0
	x := n.Rect.X
	switch n.Align {
	case render.AlignCenter:
		ax, x = 0.5, n.Rect.X+n.Rect.W/2
	case render.AlignRight:
		ax, x = 1.0, n.Rect.X+n.Rect.W
	}

	draw := func(col string, alpha, dx, dy float64) {
		dc.SetColor(hexColor(col, alpha))
		dc.DrawStringWrapped(text, x+dx, n.Rect.Y+dy, ax, 0, n.Rect.W, lineHeight, align)
	}

	// タイトル装飾は塗りだけを変え、折り返しと座標は素のままにする。
	offset := math.Max(2, n.FontSize/18)
	switch n.Effect {
	case domain.EffectShadow, domain.Effect3D, domain.EffectFloating:
		draw("#000000", 0.35, offset, offset)
	case domain.EffectOutline, domain.EffectPixel:
		for _, d := range [][2]float64{{-offset, 0}, {offset, 0}, {0, -offset}, {0, offset}} {
			draw(c.Theme.Background, 1, d[0], d[1])
		}
	case domain.EffectNeon, domain.EffectGlow, domain.EffectFire, domain.EffectWater:
		draw(c.Theme.Accent, 0.4, -offset, 0)
		draw(c.Theme.Accent, 0.4, offset, 0)
	case domain.EffectGlitch:
		draw("#ef4444", 0.5, -offset, 0)
		draw("#3b82f6", 0.5, offset, 0)
	}

	draw(n.Color, opacityOf(n), 0, 0)
}

// face は太さ・斜体・サイズごとのフォントフェイスをキャッシュ付きで返します。
func (rc *RasterCapturer) face(bold, italic bool, size float64) (xfont.Face, error) {
	key := fontKey{bold: bold, italic: italic, size: int(size)}
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if f, ok := rc.fonts[key]; ok {
		return f, nil
	}

	ttf := goregular.TTF
	if bold {
		ttf = gobold.TTF
	} else if italic {
		ttf = goitalic.TTF
	}
	parsed, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("フォントの解析に失敗しました: %w", err)
	}
	f, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("フォントフェイスの生成に失敗しました: %w", err)
	}
	rc.fonts[key] = f
	return f, nil
}

func (rc *RasterCapturer) loadImage(ctx context.Context, ref string) (image.Image, error) {
	data, _, err := rc.loader.Load(ctx, ref)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("画像のデコードに失敗しました: %w", err)
	}
	return img, nil
}

func rectPath(dc *gg.Context, n render.Node) {
	if n.Radius > 0 {
		dc.DrawRoundedRectangle(n.Rect.X, n.Rect.Y, n.Rect.W, n.Rect.H, n.Radius)
	} else {
		dc.DrawRectangle(n.Rect.X, n.Rect.Y, n.Rect.W, n.Rect.H)
	}
}

func opacityOf(n render.Node) float64 {
	if n.Opacity == 0 {
		return 1
	}
	return n.Opacity
}

// coverScale は縦横比を保ったままターゲット矩形を覆うように拡縮し、中央を切り出します。
func coverScale(src image.Image, w, h int) image.Image {
	if w <= 0 || h <= 0 {
		return src
	}
	sb := src.Bounds()
	scale := math.Max(float64(w)/float64(sb.Dx()), float64(h)/float64(sb.Dy()))
	sw := int(math.Ceil(float64(sb.Dx()) * scale))
	sh := int(math.Ceil(float64(sb.Dy()) * scale))

	scaled := image.NewRGBA(image.Rect(0, 0, sw, sh))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), src, sb, xdraw.Over, nil)

	offX := (sw - w) / 2
	offY := (sh - h) / 2
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Copy(out, image.Point{}, scaled, image.Rect(offX, offY, offX+w, offY+h), xdraw.Over, nil)
	return out
}
