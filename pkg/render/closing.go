package render

import (
	"strings"

	"github.com/shouni/go-carousel-kit/pkg/registry"
)

// クロージングテンプレートの固定文言。プロダクトの言語のまま保持します。
const (
	closingHeadline    = "Dziękuję!"
	closingSubheadline = "Zaobserwuj po więcej wartościowych treści."
	closingLinksLabel  = "Materiały i Linki"
)

// maxClosingLinks はリンクパネルに載せる参照リンクの上限です。
const maxClosingLinks = 3

// NormalizeLink は参照リンクを遷移可能な形に正規化します。
// スキームが無ければ https:// を前置するのだ。
func NormalizeLink(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return s
	}
	return "https://" + s
}

// ClosingLinks は空行を除き、入力順のまま先頭3件だけを正規化して返します。
func ClosingLinks(raw []string) []string {
	var out []string
	for _, r := range raw {
		link := NormalizeLink(r)
		if link == "" {
			continue
		}
		out = append(out, link)
		if len(out) == maxClosingLinks {
			break
		}
	}
	return out
}

// linkDisplayText はパネル表示用にスキームを落とした文字列です。
func linkDisplayText(link string) string {
	s := strings.TrimPrefix(link, "https://")
	return strings.TrimPrefix(s, "http://")
}

// closingNodes は最終スライド専用のクロージングテンプレートです。
// レイアウト選択にかかわらず、最終スライドは必ずこの構図になるのだ。
func (cp *Composer) closingNodes(c Canvas, in Input, theme registry.Theme) []Node {
	area := contentRect(c)
	titleColor := in.Style.ResolveTitleColor(theme.Text)

	var nodes []Node
	y := area.Y + 40

	if in.Profile.LogoRef != "" {
		logoH := 80.0
		nodes = append(nodes, Node{
			Kind: NodeImage,
			Rect: Rect{X: area.X + (area.W-logoH*3)/2, Y: y, W: logoH * 3, H: logoH},
			Src:  in.Profile.LogoRef,
		})
		y += logoH + 56
	}

	if in.Profile.PhotoRef != "" {
		avatar := 160.0
		nodes = append(nodes, Node{
			Kind:        NodeImage,
			Rect:        Rect{X: area.X + (area.W-avatar)/2, Y: y, W: avatar, H: avatar},
			Src:         in.Profile.PhotoRef,
			Circle:      true,
			BorderColor: theme.Accent,
			BorderWidth: 6,
		})
		y += avatar + 56
	}

	headSize := 60.0 * cp.TitleScale
	nodes = append(nodes, Node{
		Kind:       NodeText,
		Rect:       Rect{X: area.X, Y: y, W: area.W, H: headSize * 1.3},
		Text:       closingHeadline,
		FontSize:   headSize,
		FontID:     theme.FontID,
		Bold:       true,
		Align:      AlignCenter,
		Color:      titleColor,
		LineHeight: 1.15,
		Effect:     in.Style.TextEffect,
	})
	y += headSize*1.3 + 32

	subSize := 30.0 * cp.BodyScale
	nodes = append(nodes, Node{
		Kind:     NodeText,
		Rect:     Rect{X: area.X, Y: y, W: area.W, H: subSize * 1.5},
		Text:     closingSubheadline,
		FontSize: subSize,
		FontID:   theme.FontID,
		Italic:   true,
		Align:    AlignCenter,
		Color:    theme.Text,
		Opacity:  0.8,
	})
	y += subSize*1.5 + 64

	links := ClosingLinks(in.Links)
	if len(links) == 0 {
		return nodes
	}

	linkSize := 32.0
	labelSize := 28.0
	panelPad := 48.0
	panelH := panelPad*2 + labelSize*1.3 + 32 + float64(len(links))*(linkSize*1.6)
	panel := Node{
		Kind:        NodeBox,
		Rect:        Rect{X: area.X, Y: y, W: area.W, H: panelH},
		Fill:        theme.Text,
		Opacity:     0.05,
		Radius:      48,
		BorderColor: theme.Text,
		BorderWidth: 2,
	}
	nodes = append(nodes, panel)

	ly := y + panelPad
	nodes = append(nodes, Node{
		Kind:      NodeText,
		Rect:      Rect{X: area.X + panelPad, Y: ly, W: area.W - 2*panelPad, H: labelSize * 1.3},
		Text:      closingLinksLabel,
		FontSize:  labelSize,
		FontID:    theme.FontID,
		Bold:      true,
		Uppercase: true,
		Align:     AlignCenter,
		Color:     theme.Text,
		Opacity:   0.7,
	})
	ly += labelSize*1.3 + 32

	for _, link := range links {
		nodes = append(nodes, Node{
			Kind:     NodeText,
			Rect:     Rect{X: area.X + panelPad, Y: ly, W: area.W - 2*panelPad, H: linkSize * 1.6},
			Text:     linkDisplayText(link),
			FontSize: linkSize,
			FontID:   theme.FontID,
			Align:    AlignCenter,
			Color:    "#3b82f6",
			Href:     link,
		})
		ly += linkSize * 1.6
	}

	return nodes
}
