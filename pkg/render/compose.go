package render

import (
	"fmt"

	"github.com/shouni/go-carousel-kit/pkg/domain"
	"github.com/shouni/go-carousel-kit/pkg/registry"
)

// 1080 基準キャンバスの固定メトリクス（px）。
// セーフゾーンは比率が変わっても固定で、コンテンツはこの内側にだけ置くのだ。
const (
	safeTop     = 220.0
	safeBottom  = 280.0
	safePadding = 96.0

	baseTitleSize = 60.0
	baseBodySize  = 36.0
	firstScale    = 1.2 // 先頭スライドはタイトル・本文とも一回り大きくする

	headerY        = 80.0
	logoHeight     = 64.0
	avatarSize     = 112.0
	handleSize     = 36.0
	counterSize    = 36.0
	hintSize       = 30.0
	progressHeight = 20.0

	bgImageOpacity = 0.5 // 背景写真の不透明度は固定
)

// Composer はスライド1枚を決定的なレイアウトツリーに展開します。
// 同じ入力からは常に同じ Canvas が得られます。
type Composer struct {
	// タイトル・本文の基準サイズに掛かる係数。既定は 1.0 です。
	TitleScale float64
	BodyScale  float64
}

// NewComposer は既定係数の Composer を返します。
func NewComposer() *Composer {
	return &Composer{TitleScale: 1.0, BodyScale: 1.0}
}

// Input は Compose に渡すスライド1枚分の文脈です。
type Input struct {
	Slide   domain.Slide
	Style   domain.StyleConfig
	Index   int
	Total   int
	Profile domain.BrandingProfile
	Links   []string // 最終スライドの参照リンク（正規化前）
}

// Compose はスライドをレイヤー列に展開します。最終スライドだけは
// クロージングテンプレートで組み、それ以外は選択中のレイアウトで組むのだ。
func (cp *Composer) Compose(in Input) Canvas {
	theme := registry.ThemeFor(in.Style)
	format := registry.FormatByRatio(in.Style.AspectRatio)

	c := Canvas{
		Width:  format.Width,
		Height: format.Height,
		Theme:  theme,
		Index:  in.Index,
		Total:  in.Total,
	}

	c.Layers = append(c.Layers, cp.decorationLayers(in.Style, theme)...)

	isLast := in.Index == in.Total-1
	content := Layer{Kind: LayerContent}
	if isLast {
		content.Nodes = cp.closingNodes(c, in, theme)
	} else {
		content.Nodes = cp.contentNodes(c, in, theme)
	}
	c.Layers = append(c.Layers, content)

	c.Layers = append(c.Layers, Layer{Kind: LayerChrome, Nodes: cp.chromeNodes(c, in, theme, isLast)})
	c.Layers = append(c.Layers, cp.progressLayer(c, in.Index, in.Total, theme))

	return c
}

// contentRect はセーフゾーンを除いたコンテンツ領域です。
func contentRect(c Canvas) Rect {
	return Rect{
		X: safePadding,
		Y: safeTop,
		W: float64(c.Width) - 2*safePadding,
		H: float64(c.Height) - safeTop - safeBottom,
	}
}

// scaleFor は先頭スライドの拡大係数を返します。
func scaleFor(index int) float64 {
	if index == 0 {
		return firstScale
	}
	return 1.0
}

// decorationLayers は地色から乗算フェードまでの装飾レイヤーを組み立てます。
func (cp *Composer) decorationLayers(sc domain.StyleConfig, theme registry.Theme) []Layer {
	layers := []Layer{{Kind: LayerBase}}

	if sc.BackgroundURL != "" {
		layers = append(layers, Layer{
			Kind:     LayerBackgroundImage,
			ImageURL: sc.BackgroundURL,
			Opacity:  bgImageOpacity,
		})
	}

	// テーマ組み込みのパターンと、スタイル設定のパターンは重ねて良い。
	if theme.PatternID != "" && theme.PatternID != "none" {
		layers = append(layers, Layer{Kind: LayerPattern, Pattern: registry.PatternByID(theme.PatternID)})
	}
	if p := sc.Background.PatternID; p != "" && p != "none" {
		layers = append(layers, Layer{Kind: LayerPattern, Pattern: registry.PatternByID(p)})
	}

	if col := overlayHex(sc.Background.OverlayColor); col != "" {
		opacity := float64(domain.ClampOpacity(sc.Background.OverlayOpacity)) / 100.0
		if opacity > 0 {
			layers = append(layers, Layer{Kind: LayerOverlay, Color: col, Opacity: opacity})
		}
	}

	if sc.Background.FadingCorner {
		layers = append(layers, Layer{Kind: LayerFadingCorner, Opacity: 0.2})
	}

	return layers
}

func overlayHex(c domain.OverlayColor) string {
	switch c {
	case domain.OverlayWhite:
		return "#ffffff"
	case domain.OverlayBlack:
		return "#000000"
	case domain.OverlayGrey:
		return "#6b7280"
	default:
		return ""
	}
}

// chromeNodes はヘッダー・フッターの定常要素を組み立てます。
// 送りヒントは先頭スライドには出さない仕様なのだ。
func (cp *Composer) chromeNodes(c Canvas, in Input, theme registry.Theme, isLast bool) []Node {
	var nodes []Node
	w := float64(c.Width)
	h := float64(c.Height)

	if in.Profile.LogoRef != "" {
		nodes = append(nodes, Node{
			Kind: NodeImage,
			Rect: Rect{X: safePadding, Y: headerY, W: logoHeight * 3, H: logoHeight},
			Src:  in.Profile.LogoRef,
		})
	}

	handle := in.Profile.Handle
	if handle == "" {
		handle = "@creator"
	}
	nodes = append(nodes, Node{
		Kind:     NodeText,
		Rect:     Rect{X: safePadding, Y: h - 160, W: w / 2, H: handleSize * 1.3},
		Text:     handle,
		FontSize: handleSize,
		FontID:   theme.FontID,
		Bold:     true,
		Align:    AlignLeft,
		Color:    theme.Text,
	})
	nodes = append(nodes, Node{
		Kind: NodeBox,
		Rect: Rect{X: safePadding, Y: h - 104, W: 160, H: 12},
		Fill: theme.Accent,
	})

	nodes = append(nodes, Node{
		Kind:     NodeText,
		Rect:     Rect{X: w - safePadding - 220, Y: h - 160, W: 220, H: counterSize * 1.3},
		Text:     fmt.Sprintf("%d / %d", in.Index+1, in.Total),
		FontSize: counterSize,
		FontID:   theme.FontID,
		Align:    AlignRight,
		Color:    theme.Text,
		Opacity:  0.7,
	})

	if !isLast && in.Index > 0 {
		nodes = append(nodes, cp.nextHintNodes(c, theme)...)
	}

	if !isLast && in.Profile.PhotoRef != "" {
		nodes = append(nodes, Node{
			Kind:        NodeImage,
			Rect:        Rect{X: w - safePadding - avatarSize, Y: h - safeBottom + 60, W: avatarSize, H: avatarSize},
			Src:         in.Profile.PhotoRef,
			Circle:      true,
			BorderColor: theme.Accent,
			BorderWidth: 4,
		})
	}

	return nodes
}

// nextHintNodes は右下の「次へ」ヒント（文言と丸矢印）です。
func (cp *Composer) nextHintNodes(c Canvas, theme registry.Theme) []Node {
	w := float64(c.Width)
	h := float64(c.Height)
	circle := 64.0
	return []Node{
		{
			Kind:      NodeText,
			Rect:      Rect{X: w - safePadding - 320, Y: h - 104, W: 240, H: hintSize * 1.3},
			Text:      "Przesuń",
			FontSize:  hintSize,
			FontID:    theme.FontID,
			Uppercase: true,
			Align:     AlignRight,
			Color:     theme.Text,
			Opacity:   0.7,
		},
		{
			Kind:   NodeBox,
			Rect:   Rect{X: w - safePadding - circle, Y: h - 104 - (circle-hintSize*1.3)/2, W: circle, H: circle},
			Fill:   theme.Accent,
			Radius: circle / 2,
		},
		{
			Kind:     NodeText,
			Rect:     Rect{X: w - safePadding - circle, Y: h - 104 - (circle-hintSize*1.3)/2 + (circle-hintSize)/2, W: circle, H: hintSize * 1.3},
			Text:     "→",
			FontSize: hintSize,
			FontID:   theme.FontID,
			Align:    AlignCenter,
			Color:    theme.Background,
		},
	}
}

// progressLayer は下端のプログレスバーです。占有率は常に (index+1)/total です。
func (cp *Composer) progressLayer(c Canvas, index, total int, theme registry.Theme) Layer {
	w := float64(c.Width)
	h := float64(c.Height)
	frac := ProgressFraction(index, total)
	return Layer{Kind: LayerProgress, Nodes: []Node{
		{
			Kind:    NodeBox,
			Rect:    Rect{X: 0, Y: h - progressHeight, W: w, H: progressHeight},
			Fill:    theme.Text,
			Opacity: 0.15,
		},
		{
			Kind: NodeBox,
			Rect: Rect{X: 0, Y: h - progressHeight, W: w * frac, H: progressHeight},
			Fill: theme.Accent,
		},
	}}
}
