package render

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/shouni/go-carousel-kit/pkg/domain"
)

func testInput(index, total int) Input {
	return Input{
		Slide:   domain.Slide{Title: "Tytuł", Content: "Treść slajdu"},
		Style:   domain.DefaultStyleConfig(),
		Index:   index,
		Total:   total,
		Profile: domain.BrandingProfile{Handle: "@SynapseCreative", Kind: domain.ProfilePersonal},
	}
}

func allNodes(c Canvas, kind LayerKind) []Node {
	var out []Node
	for _, l := range c.Layers {
		if l.Kind == kind {
			out = append(out, l.Nodes...)
		}
	}
	return out
}

func hasText(nodes []Node, text string) bool {
	for _, n := range nodes {
		if n.Kind == NodeText && n.Text == text {
			return true
		}
	}
	return false
}

func TestCompose_キャンバス寸法は縦横比で決まる(t *testing.T) {
	tests := []struct {
		ratio domain.AspectRatio
		w, h  int
	}{
		{domain.RatioPortrait, 1080, 1350},
		{domain.RatioSquare, 1080, 1080},
		{domain.RatioVertical, 1080, 1920},
		{domain.RatioLandscape, 1920, 1080},
	}
	cp := NewComposer()
	for _, tt := range tests {
		in := testInput(0, 5)
		in.Style.AspectRatio = tt.ratio
		c := cp.Compose(in)
		if c.Width != tt.w || c.Height != tt.h {
			t.Errorf("比率 %s: 寸法 = %dx%d, 期待 %dx%d", tt.ratio, c.Width, c.Height, tt.w, tt.h)
		}
	}
}

func TestCompose_最終スライドはレイアウト選択に関わらずクロージングになる(t *testing.T) {
	cp := NewComposer()
	for _, layout := range []domain.SlideLayout{domain.LayoutCentered, domain.LayoutImpact, domain.LayoutTimeline} {
		in := testInput(4, 5)
		in.Style.Layout = layout
		c := cp.Compose(in)
		content := allNodes(c, LayerContent)
		if !hasText(content, closingHeadline) {
			t.Errorf("レイアウト %s: 最終スライドにクロージング見出しがない", layout)
		}
		if hasText(content, "Tytuł") {
			t.Errorf("レイアウト %s: 最終スライドに通常コンテンツが混ざっている", layout)
		}
	}
}

func TestCompose_プログレスバーの占有率は常にインデックス比になる(t *testing.T) {
	cp := NewComposer()
	total := 7
	for i := 0; i < total; i++ {
		c := cp.Compose(testInput(i, total))
		bars := allNodes(c, LayerProgress)
		if len(bars) != 2 {
			t.Fatalf("スライド %d: プログレス要素数 = %d, 期待 2", i, len(bars))
		}
		want := float64(c.Width) * float64(i+1) / float64(total)
		if got := bars[1].Rect.W; math.Abs(got-want) > 0.001 {
			t.Errorf("スライド %d: バー幅 = %f, 期待 %f", i, got, want)
		}
	}
	// 最終スライドは必ず全幅なのだ。
	c := cp.Compose(testInput(total-1, total))
	if got := allNodes(c, LayerProgress)[1].Rect.W; got != float64(c.Width) {
		t.Errorf("最終スライドのバー幅 = %f, 期待 %d", got, c.Width)
	}
}

func TestCompose_送りヒントは先頭と最終スライドには出ない(t *testing.T) {
	cp := NewComposer()

	first := allNodes(cp.Compose(testInput(0, 5)), LayerChrome)
	if hasText(first, "Przesuń") {
		t.Error("先頭スライドに送りヒントが出ている")
	}

	middle := allNodes(cp.Compose(testInput(2, 5)), LayerChrome)
	if !hasText(middle, "Przesuń") {
		t.Error("中間スライドに送りヒントが出ていない")
	}

	last := allNodes(cp.Compose(testInput(4, 5)), LayerChrome)
	if hasText(last, "Przesuń") {
		t.Error("最終スライドに送りヒントが出ている")
	}
}

func TestClosingLinks_空行を除き入力順のまま3件に切り詰める(t *testing.T) {
	raw := []string{"  ", "synapse.dev/kurs", "https://example.com/a", "", "http://example.com/b", "example.com/c"}
	got := ClosingLinks(raw)
	want := []string{"https://synapse.dev/kurs", "https://example.com/a", "http://example.com/b"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("リンク列の不一致 (-want +got):\n%s", diff)
	}
}

func TestNormalizeLink_スキームが無ければhttpsを前置する(t *testing.T) {
	tests := []struct{ in, want string }{
		{"example.com", "https://example.com"},
		{"https://example.com", "https://example.com"},
		{"http://example.com", "http://example.com"},
		{"  example.com  ", "https://example.com"},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := NormalizeLink(tt.in); got != tt.want {
			t.Errorf("NormalizeLink(%q) = %q, 期待 %q", tt.in, got, tt.want)
		}
	}
}

func TestCompose_空のタイトルと本文はノードを生成しない(t *testing.T) {
	cp := NewComposer()
	in := testInput(1, 5)
	in.Slide = domain.Slide{}
	c := cp.Compose(in)
	if nodes := allNodes(c, LayerContent); len(nodes) != 0 {
		t.Errorf("空スライドのコンテンツノード数 = %d, 期待 0", len(nodes))
	}
}

func TestCompose_ブランド画像が未設定なら要素ごと省略される(t *testing.T) {
	cp := NewComposer()
	in := testInput(1, 5)
	in.Profile = domain.BrandingProfile{Handle: "@SynapseCreative"}
	c := cp.Compose(in)
	for _, n := range allNodes(c, LayerChrome) {
		if n.Kind == NodeImage {
			t.Errorf("画像参照なしなのに画像ノードがある: %+v", n)
		}
	}
}

func TestCompose_先頭スライドはタイトルが拡大される(t *testing.T) {
	cp := NewComposer()

	firstTitle := findTitle(t, cp.Compose(testInput(0, 5)))
	midTitle := findTitle(t, cp.Compose(testInput(1, 5)))

	if want := midTitle.FontSize * firstScale; math.Abs(firstTitle.FontSize-want) > 0.001 {
		t.Errorf("先頭タイトルサイズ = %f, 期待 %f", firstTitle.FontSize, want)
	}
}

func findTitle(t *testing.T, c Canvas) Node {
	t.Helper()
	for _, n := range allNodes(c, LayerContent) {
		if n.Kind == NodeText && n.Text == "Tytuł" {
			return n
		}
	}
	t.Fatal("タイトルノードが見つからない")
	return Node{}
}

func TestCompose_全レイアウトで破綻なくノードが得られる(t *testing.T) {
	cp := NewComposer()
	layouts := []domain.SlideLayout{
		domain.LayoutCentered, domain.LayoutTopText, domain.LayoutBottomText,
		domain.LayoutQuote, domain.LayoutImpact, domain.LayoutSplitScreen,
		domain.LayoutFullBleed, domain.LayoutIconHeavy, domain.LayoutTimeline,
		domain.LayoutBigHeader,
	}
	ratios := []domain.AspectRatio{
		domain.RatioSquare, domain.RatioPortrait, domain.RatioVertical, domain.RatioLandscape,
	}
	for _, ratio := range ratios {
		for _, layout := range layouts {
			in := testInput(1, 5)
			in.Style.AspectRatio = ratio
			in.Style.Layout = layout
			c := cp.Compose(in)
			nodes := allNodes(c, LayerContent)
			if len(nodes) == 0 {
				t.Errorf("%s/%s: コンテンツノードが空", ratio, layout)
				continue
			}
			area := contentRect(c)
			bottom := area.Y + area.H
			for _, n := range nodes {
				if n.Kind != NodeText {
					continue
				}
				if n.Text == "Treść slajdu" && (n.Rect.Y < area.Y-0.001 || n.Rect.X < 0) {
					t.Errorf("%s/%s: 本文が上側セーフゾーンを侵食している (y=%f)", ratio, layout, n.Rect.Y)
				}
				if n.Rect.Y+n.Rect.H > bottom+0.001 {
					t.Errorf("%s/%s: テキスト %q が下側セーフゾーンを侵食している (bottom=%f > %f)",
						ratio, layout, n.Text, n.Rect.Y+n.Rect.H, bottom)
				}
			}
		}
	}
}

func TestScaled_縮尺を変えても相対配置は変わらない(t *testing.T) {
	cp := NewComposer()
	base := cp.Compose(testInput(2, 5))
	half := base.Scaled(0.5)

	if half.Width != base.Width/2 || half.Height != base.Height/2 {
		t.Fatalf("縮小後の寸法 = %dx%d", half.Width, half.Height)
	}
	for li, layer := range base.Layers {
		for ni, n := range layer.Nodes {
			s := half.Layers[li].Nodes[ni]
			if math.Abs(s.Rect.X-n.Rect.X*0.5) > 0.001 || math.Abs(s.Rect.W-n.Rect.W*0.5) > 0.001 {
				t.Fatalf("ノード [%d][%d] の縮尺が一様でない: %+v vs %+v", li, ni, n.Rect, s.Rect)
			}
			if math.Abs(s.FontSize-n.FontSize*0.5) > 0.001 {
				t.Fatalf("ノード [%d][%d] のフォントサイズ縮尺が一様でない", li, ni)
			}
		}
	}
}

func TestDecorationLayers_不透明度フィルターは設定どおりに重なる(t *testing.T) {
	cp := NewComposer()

	t.Run("フィルターなしなら装飾は地色とフェードのみ", func(t *testing.T) {
		in := testInput(1, 5)
		c := cp.Compose(in)
		for _, l := range c.Layers {
			if l.Kind == LayerOverlay {
				t.Error("overlay_color=none なのにフィルターレイヤーがある")
			}
		}
	})

	t.Run("範囲外の不透明度は描画時にも丸められる", func(t *testing.T) {
		in := testInput(1, 5)
		in.Style.Background.OverlayColor = domain.OverlayBlack
		in.Style.Background.OverlayOpacity = 250
		c := cp.Compose(in)
		found := false
		for _, l := range c.Layers {
			if l.Kind == LayerOverlay {
				found = true
				if l.Opacity > 1.0 {
					t.Errorf("フィルター不透明度 = %f, 上限 1.0", l.Opacity)
				}
			}
		}
		if !found {
			t.Fatal("フィルターレイヤーが見つからない")
		}
	})

	t.Run("背景写真は固定の半透明で敷かれる", func(t *testing.T) {
		in := testInput(1, 5)
		in.Style.BackgroundURL = "https://images.unsplash.com/photo-1"
		c := cp.Compose(in)
		for _, l := range c.Layers {
			if l.Kind == LayerBackgroundImage {
				if l.Opacity != bgImageOpacity {
					t.Errorf("背景写真の不透明度 = %f, 期待 %f", l.Opacity, bgImageOpacity)
				}
				return
			}
		}
		t.Fatal("背景写真レイヤーが見つからない")
	})
}
