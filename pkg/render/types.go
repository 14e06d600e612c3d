package render

import (
	"github.com/shouni/go-carousel-kit/pkg/domain"
	"github.com/shouni/go-carousel-kit/pkg/registry"
)

// Rect はキャンバス座標系（左上原点、px）の矩形です。
type Rect struct {
	X, Y, W, H float64
}

// Align はテキストの水平揃えです。
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// NodeKind は配置ノードの種別です。
type NodeKind int

const (
	NodeBox NodeKind = iota
	NodeText
	NodeImage
	NodeLine
)

// Node はレイアウトツリーの1要素（配置済みの箱・テキスト・画像・線）です。
// レンダラーは座標とスタイルだけを決め、実際の描画はキャプチャ側に委ねるのだ。
type Node struct {
	Kind NodeKind
	Rect Rect

	// 箱・線
	Fill        string  // #rrggbb、空なら塗りなし
	Opacity     float64 // 0..1（0 は「未指定=1」として扱う）
	Radius      float64 // 角丸半径。Rect が正方形で半径が半辺なら円になる
	BorderColor string
	BorderWidth float64

	// テキスト
	Text       string
	FontSize   float64
	FontID     string
	Bold       bool
	Italic     bool
	Uppercase  bool
	Align      Align
	Color      string
	LineHeight float64 // 行送り係数（1.0 = フォントサイズと同じ）
	Effect     domain.TextEffect

	// 画像・リンク
	Src    string
	Circle bool   // 円形にクリップして描画する
	Href   string // アクティブ化可能なリンク先（最終スライドの参照リンクのみ）
}

// LayerKind は背面から前面への合成順で並ぶレイヤー種別です。
type LayerKind int

const (
	LayerBase            LayerKind = iota // テーマの地色（グラデーション含む）
	LayerBackgroundImage                  // 背景写真（固定の低不透明度）
	LayerPattern                          // タイルパターン
	LayerOverlay                          // 単色フィルター
	LayerFadingCorner                     // 斜めのフェード乗算
	LayerContent                          // タイトル・本文・クロージング
	LayerChrome                           // ロゴ・ハンドル・ページ番号・送りヒント
	LayerProgress                         // 下端のプログレスバー
)

// Layer は1枚のスライドを構成する合成レイヤーです。
type Layer struct {
	Kind LayerKind

	ImageURL string           // LayerBackgroundImage
	Opacity  float64          // 画像・フィルターの不透明度 0..1
	Pattern  registry.Pattern // LayerPattern
	Color    string           // LayerOverlay の色（#rrggbb）

	Nodes []Node
}

// Canvas は1スライド分の確定したレイアウト記述です。
// プレビューもエクスポートも同じ Canvas を使い、縮尺だけが異なるのだ。
type Canvas struct {
	Width  int
	Height int
	Theme  registry.Theme
	Index  int
	Total  int
	Layers []Layer
}

// Scaled は全要素を一様に f 倍した Canvas を返します。
// 相対配置・折り返し・比率は変わらない、がレンダラーの契約なのだ。
func (c Canvas) Scaled(f float64) Canvas {
	out := c
	out.Width = int(float64(c.Width) * f)
	out.Height = int(float64(c.Height) * f)
	out.Layers = make([]Layer, len(c.Layers))
	for i, layer := range c.Layers {
		nl := layer
		nl.Nodes = make([]Node, len(layer.Nodes))
		for j, n := range layer.Nodes {
			n.Rect = Rect{X: n.Rect.X * f, Y: n.Rect.Y * f, W: n.Rect.W * f, H: n.Rect.H * f}
			n.FontSize *= f
			n.Radius *= f
			n.BorderWidth *= f
			nl.Nodes[j] = n
		}
		out.Layers[i] = nl
	}
	return out
}

// ProgressFraction は下端バーの占有率を返します。
// スライド i（0始まり）で常に (i+1)/total になる、のが検証可能な不変条件なのだ。
func ProgressFraction(index, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(index+1) / float64(total)
}
