package render

import (
	"github.com/shouni/go-carousel-kit/pkg/domain"
	"github.com/shouni/go-carousel-kit/pkg/registry"
)

// contentNodes は中間スライドの本体を、選択中のレイアウトで組み立てます。
// タイトル・本文が空文字なら対応するノードを出さない（空行は描かない）のだ。
func (cp *Composer) contentNodes(c Canvas, in Input, theme registry.Theme) []Node {
	area := contentRect(c)
	s := scaleFor(in.Index)
	titleSize := baseTitleSize * cp.TitleScale * s
	bodySize := baseBodySize * cp.BodyScale * s
	titleColor := in.Style.ResolveTitleColor(theme.Text)

	t := textBlock{
		area:       area,
		title:      in.Slide.Title,
		body:       in.Slide.Content,
		titleSize:  titleSize,
		bodySize:   bodySize,
		titleColor: titleColor,
		bodyColor:  theme.Text,
		fontID:     theme.FontID,
		effect:     in.Style.TextEffect,
		isFirst:    in.Index == 0,
	}

	switch in.Style.Layout {
	case domain.LayoutTopText:
		return t.stacked(AlignLeft, anchorTop)
	case domain.LayoutBottomText:
		return t.stacked(AlignLeft, anchorBottom)
	case domain.LayoutQuote:
		return t.quote(theme)
	case domain.LayoutImpact:
		return t.impact()
	case domain.LayoutSplitScreen:
		return t.splitScreen(theme)
	case domain.LayoutFullBleed:
		return t.fullBleed(theme)
	case domain.LayoutIconHeavy:
		return t.iconHeavy(theme, in.Slide.IconURL)
	case domain.LayoutTimeline:
		return t.timeline(theme)
	case domain.LayoutBigHeader:
		return t.bigHeader(theme)
	default: // centered
		return t.stacked(AlignCenter, anchorCenter)
	}
}

type anchor int

const (
	anchorTop anchor = iota
	anchorCenter
	anchorBottom
)

// textBlock はレイアウト関数が共有する寸法・配色の文脈です。
type textBlock struct {
	area       Rect
	title      string
	body       string
	titleSize  float64
	bodySize   float64
	titleColor string
	bodyColor  string
	fontID     string
	effect     domain.TextEffect
	isFirst    bool
}

const blockGap = 48.0

// titleHeight はタイトルブロックの確保高さ（最大2行ぶん）です。
// 折り返し自体はキャプチャ側が行い、ここでは確保領域だけを決める。
func (t textBlock) titleHeight() float64 {
	if t.title == "" {
		return 0
	}
	return t.titleSize * 1.15 * 2
}

func (t textBlock) bodyHeight() float64 {
	if t.body == "" {
		return 0
	}
	return t.bodySize * 1.5 * 4
}

func (t textBlock) titleNode(r Rect, align Align) Node {
	return Node{
		Kind:       NodeText,
		Rect:       r,
		Text:       t.title,
		FontSize:   t.titleSize,
		FontID:     t.fontID,
		Bold:       true,
		Align:      align,
		Color:      t.titleColor,
		LineHeight: 1.15,
		Effect:     t.effect,
	}
}

func (t textBlock) bodyNode(r Rect, align Align) Node {
	return Node{
		Kind:       NodeText,
		Rect:       r,
		Text:       t.body,
		FontSize:   t.bodySize,
		FontID:     t.fontID,
		Align:      align,
		Color:      t.bodyColor,
		LineHeight: 1.5,
		Opacity:    0.9,
	}
}

// stacked はタイトル→本文の縦積みです。centered / top-text / bottom-text が使います。
// 確保高さが領域に収まらない縦横比では、本文側の確保分を削って必ず領域内に収める。
func (t textBlock) stacked(align Align, a anchor) []Node {
	if t.area.H <= 0 {
		return nil
	}
	th := t.titleHeight()
	bh := t.bodyHeight()
	gap := 0.0
	if th > 0 && bh > 0 {
		gap = blockGap
	}
	if th > t.area.H {
		th = t.area.H
	}
	if th+gap+bh > t.area.H {
		bh = t.area.H - th - gap
		if bh <= 0 {
			bh = 0
			gap = 0
		}
	}
	group := th + gap + bh
	if group == 0 {
		return nil
	}

	var y float64
	switch a {
	case anchorTop:
		y = t.area.Y
	case anchorBottom:
		y = t.area.Y + t.area.H - group
	default:
		y = t.area.Y + (t.area.H-group)/2
	}

	var nodes []Node
	if th > 0 {
		nodes = append(nodes, t.titleNode(Rect{X: t.area.X, Y: y, W: t.area.W, H: th}, align))
		y += th + gap
	}
	if bh > 0 {
		nodes = append(nodes, t.bodyNode(Rect{X: t.area.X, Y: y, W: t.area.W, H: bh}, align))
	}
	return nodes
}

// impact はタイトルを全面に押し出す構図です。大文字化し、先頭スライドは斜体にします。
func (t textBlock) impact() []Node {
	big := t
	big.titleSize = t.titleSize * 1.4
	nodes := big.stacked(AlignCenter, anchorCenter)
	for i := range nodes {
		if nodes[i].Text == t.title {
			nodes[i].Uppercase = true
			nodes[i].Italic = t.isFirst
		}
	}
	return nodes
}

// quote は左の引用罫と背景の大きな引用符を添えた構図です。
func (t textBlock) quote(theme registry.Theme) []Node {
	indent := 80.0
	inset := t
	inset.area = Rect{X: t.area.X + indent, Y: t.area.Y, W: t.area.W - indent, H: t.area.H}
	nodes := inset.stacked(AlignLeft, anchorCenter)
	if len(nodes) == 0 {
		return nil
	}

	top := nodes[0].Rect.Y
	bottom := nodes[len(nodes)-1].Rect.Y + nodes[len(nodes)-1].Rect.H
	bar := Node{
		Kind: NodeBox,
		Rect: Rect{X: t.area.X, Y: top, W: 20, H: bottom - top},
		Fill: theme.Accent,
	}
	mark := Node{
		Kind:     NodeText,
		Rect:     Rect{X: t.area.X - 40, Y: top - 120, W: 400, H: 320},
		Text:     "”",
		FontSize: 300,
		FontID:   t.fontID,
		Bold:     true,
		Align:    AlignLeft,
		Color:    theme.Accent,
		Opacity:  0.1,
	}
	return append([]Node{mark, bar}, nodes...)
}

// splitScreen は左タイトル・右本文の2カラムです。中央に細い仕切り罫を立てます。
func (t textBlock) splitScreen(theme registry.Theme) []Node {
	gutter := 64.0
	colW := (t.area.W - gutter) / 2

	var nodes []Node
	if th := t.titleHeight(); th > 0 {
		r := Rect{X: t.area.X, Y: t.area.Y + (t.area.H-th)/2, W: colW, H: th}
		nodes = append(nodes, t.titleNode(r, AlignLeft))
	}
	if bh := t.bodyHeight(); bh > 0 {
		r := Rect{X: t.area.X + colW + gutter, Y: t.area.Y + (t.area.H-bh)/2, W: colW, H: bh}
		nodes = append(nodes, t.bodyNode(r, AlignLeft))
	}
	if len(nodes) == 2 {
		nodes = append(nodes, Node{
			Kind:    NodeLine,
			Rect:    Rect{X: t.area.X + colW + gutter/2, Y: t.area.Y + t.area.H*0.2, W: 4, H: t.area.H * 0.6},
			Fill:    theme.Accent,
			Opacity: 0.6,
		})
	}
	return nodes
}

// fullBleed は半透明パネルを敷いた中央寄せです。写真背景の上でも可読にする構図なのだ。
func (t textBlock) fullBleed(theme registry.Theme) []Node {
	panelInset := 24.0
	panel := Node{
		Kind:    NodeBox,
		Rect:    Rect{X: t.area.X - panelInset, Y: t.area.Y + t.area.H*0.15, W: t.area.W + 2*panelInset, H: t.area.H * 0.7},
		Fill:    theme.Secondary,
		Opacity: 0.75,
		Radius:  48,
	}
	inner := t
	inner.area = Rect{X: t.area.X + panelInset, Y: panel.Rect.Y, W: t.area.W - 2*panelInset, H: panel.Rect.H}
	return append([]Node{panel}, inner.stacked(AlignCenter, anchorCenter)...)
}

// iconHeavy はアイコンをタイトルの上に据えた縦積みです。
// アイコン参照が無いスライドは既定グリフで代替します。
func (t textBlock) iconHeavy(theme registry.Theme, iconURL string) []Node {
	iconSize := 160.0
	haloSize := 240.0

	halo := Node{
		Kind:    NodeBox,
		Rect:    Rect{X: t.area.X + (t.area.W-haloSize)/2, Y: t.area.Y + 40, W: haloSize, H: haloSize},
		Fill:    theme.Accent,
		Opacity: 0.15,
		Radius:  haloSize / 2,
	}
	var icon Node
	iconRect := Rect{X: t.area.X + (t.area.W-iconSize)/2, Y: halo.Rect.Y + (haloSize-iconSize)/2, W: iconSize, H: iconSize}
	if iconURL != "" {
		icon = Node{Kind: NodeImage, Rect: iconRect, Src: iconURL, Circle: true}
	} else {
		icon = Node{Kind: NodeText, Rect: iconRect, Text: "✦", FontSize: iconSize * 0.8, FontID: t.fontID, Align: AlignCenter, Color: theme.Accent}
	}

	below := t
	top := halo.Rect.Y + haloSize + blockGap
	below.area = Rect{X: t.area.X, Y: top, W: t.area.W, H: t.area.Y + t.area.H - top}
	return append([]Node{halo, icon}, below.stacked(AlignCenter, anchorTop)...)
}

// timeline は左の縦罫と端点マーカーに沿わせた左寄せです。
func (t textBlock) timeline(theme registry.Theme) []Node {
	railX := t.area.X + 40
	indent := 96.0

	inset := t
	inset.area = Rect{X: t.area.X + indent, Y: t.area.Y, W: t.area.W - indent, H: t.area.H}
	nodes := inset.stacked(AlignLeft, anchorTop)
	if len(nodes) == 0 {
		return nil
	}

	rail := Node{
		Kind:    NodeLine,
		Rect:    Rect{X: railX, Y: t.area.Y, W: 4, H: t.area.H},
		Fill:    theme.Accent,
		Opacity: 0.5,
	}
	dotTop := Node{
		Kind:   NodeBox,
		Rect:   Rect{X: railX - 8, Y: t.area.Y - 10, W: 20, H: 20},
		Fill:   theme.Accent,
		Radius: 10,
	}
	dotBottom := Node{
		Kind:   NodeBox,
		Rect:   Rect{X: railX - 8, Y: t.area.Y + t.area.H - 10, W: 20, H: 20},
		Fill:   theme.Accent,
		Radius: 10,
	}
	return append([]Node{rail, dotTop, dotBottom}, nodes...)
}

// bigHeader はタイトルを極薄のウォーターマークとして背面に敷き、
// 前面には小さな見出しキャプションと本文を置く構図です。
// 本文の位置は下端から逆算してクランプし、背の低い縦横比でも領域外に出さない。
func (t textBlock) bigHeader(theme registry.Theme) []Node {
	const captionH = 48.0

	bh := t.bodyHeight()
	bodyY := t.area.Y + 460
	if limit := t.area.Y + t.area.H - bh; bodyY > limit {
		bodyY = limit
	}
	captionY := bodyY - captionH - 32
	watermarkH := captionY - t.area.Y - 20
	if watermarkH > 360 {
		watermarkH = 360
	}

	var nodes []Node
	if t.title != "" {
		nodes = append(nodes, Node{
			Kind:       NodeText,
			Rect:       Rect{X: t.area.X, Y: t.area.Y, W: t.area.W, H: watermarkH},
			Text:       t.title,
			FontSize:   160,
			FontID:     t.fontID,
			Bold:       true,
			Uppercase:  true,
			Align:      AlignLeft,
			Color:      t.bodyColor,
			Opacity:    0.08,
			LineHeight: 1.0,
		})
		nodes = append(nodes, Node{
			Kind:      NodeText,
			Rect:      Rect{X: t.area.X, Y: captionY, W: t.area.W, H: captionH},
			Text:      t.title,
			FontSize:  34,
			FontID:    t.fontID,
			Bold:      true,
			Uppercase: true,
			Align:     AlignLeft,
			Color:     theme.Accent,
			Effect:    t.effect,
		})
	}
	if bh > 0 {
		nodes = append(nodes, t.bodyNode(Rect{X: t.area.X, Y: bodyY, W: t.area.W, H: bh}, AlignLeft))
	}
	return nodes
}
