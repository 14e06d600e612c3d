package domain

// AspectRatio は出力フォーマット（SNSごとの縦横比）の閉じた列挙です。
type AspectRatio string

const (
	RatioSquare    AspectRatio = "1:1"  // 1080x1080
	RatioPortrait  AspectRatio = "4:5"  // 1080x1350
	RatioVertical  AspectRatio = "9:16" // 1080x1920
	RatioLandscape AspectRatio = "16:9" // 1920x1080
)

// SlideLayout は中間スライドの構図バリアントの閉じた列挙です。
type SlideLayout string

const (
	LayoutCentered    SlideLayout = "centered"
	LayoutTopText     SlideLayout = "top-text"
	LayoutBottomText  SlideLayout = "bottom-text"
	LayoutQuote       SlideLayout = "quote"
	LayoutImpact      SlideLayout = "impact"
	LayoutSplitScreen SlideLayout = "split-screen"
	LayoutFullBleed   SlideLayout = "full-bleed"
	LayoutIconHeavy   SlideLayout = "icon-heavy"
	LayoutTimeline    SlideLayout = "timeline"
	LayoutBigHeader   SlideLayout = "big-header"
)

// TextEffect はタイトル文字への装飾（塗りのみ）の閉じた列挙です。
// レイアウトの座標・折り返しには一切影響しない、純粋な見た目の選択なのだ。
type TextEffect string

const (
	EffectNone     TextEffect = "none"
	EffectNeon     TextEffect = "neon"
	EffectMetallic TextEffect = "metallic"
	EffectShadow   TextEffect = "shadow"
	EffectGlow     TextEffect = "glow"
	EffectOutline  TextEffect = "outline"
	Effect3D       TextEffect = "3d"
	EffectGlitch   TextEffect = "glitch"
	EffectFire     TextEffect = "fire"
	EffectWater    TextEffect = "water"
	EffectPixel    TextEffect = "pixel"
	EffectGlass    TextEffect = "glass"
	EffectFloating TextEffect = "floating"
	EffectGradient TextEffect = "gradient"
)

// OverlayColor は背景の上に重ねる単色フィルターの閉じた列挙です。
type OverlayColor string

const (
	OverlayWhite OverlayColor = "white"
	OverlayBlack OverlayColor = "black"
	OverlayGrey  OverlayColor = "grey"
	OverlayNone  OverlayColor = "none"
)

// Tone は生成文体の閉じた列挙です。表示名はプロダクトの言語（ポーランド語）のまま保持するのだ。
type Tone string

const (
	ToneEducational  Tone = "Edukacyjny"
	ToneExciting     Tone = "Ekscytujący"
	ToneProfessional Tone = "Profesjonalny"
	ToneStory        Tone = "Opowieść"
	ToneDirect       Tone = "Bezpośredni"
)

// Tones は選択可能な全文体のリストです。
var Tones = []Tone{ToneEducational, ToneExciting, ToneProfessional, ToneStory, ToneDirect}

// ProfileKind はブランディングプロファイルの種別です。
type ProfileKind string

const (
	ProfilePersonal ProfileKind = "personal"
	ProfileCompany  ProfileKind = "company"
)

// BrandingProfile はスライドに焼き込むブランド情報を保持します。
// 画像参照は https URL・data URI・ローカルパスのいずれでもよく、
// 未設定の場合レンダラーは対応する要素ごと省略します（プレースホルダは出さない）。
type BrandingProfile struct {
	Handle   string      `json:"handle"`
	LogoRef  string      `json:"logo_url,omitempty"`
	PhotoRef string      `json:"photo_url,omitempty"`
	Kind     ProfileKind `json:"type"`
}

// BackgroundSettings は背景演出（パターン・単色フィルター・コーナーフェード）の設定です。
type BackgroundSettings struct {
	PatternID      string       `json:"pattern_id"`
	OverlayColor   OverlayColor `json:"overlay_color"`
	OverlayOpacity int          `json:"overlay_opacity"` // 常に [0,100]
	FadingCorner   bool         `json:"fading_corner"`
}

// ClampOpacity は不透明度を [0,100] に丸めます。
// ストアへの書き込み経路はすべてここを通るので、範囲外の値は保存され得ないのだ。
func ClampOpacity(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// StyleConfig はセッション全体に一様に適用されるプレゼンテーション設定です。
type StyleConfig struct {
	ThemeID       string             `json:"theme_id"`
	FontID        string             `json:"font_id,omitempty"` // テーマのフォントを上書きする場合のみ
	AspectRatio   AspectRatio        `json:"aspect_ratio"`
	Layout        SlideLayout        `json:"slide_layout"`
	TextEffect    TextEffect         `json:"text_effect"`
	BackgroundURL string             `json:"overlay_image_url"`
	TitleColor    string             `json:"title_color"` // 空ならテーマの文字色を継承
	Background    BackgroundSettings `json:"bg_settings"`
}

// DefaultStyleConfig はセッション開始時の既定スタイルを返します。
func DefaultStyleConfig() StyleConfig {
	return StyleConfig{
		ThemeID:     "modern-bright",
		AspectRatio: RatioPortrait,
		Layout:      LayoutCentered,
		TextEffect:  EffectNone,
		Background: BackgroundSettings{
			PatternID:      "none",
			OverlayColor:   OverlayNone,
			OverlayOpacity: 8,
			FadingCorner:   true,
		},
	}
}

// ResolveTitleColor はタイトル色のフォールバック規則を1箇所に固定します。
// 明示指定があればそれを、なければテーマの文字色を使うのだ。
func (sc StyleConfig) ResolveTitleColor(themeText string) string {
	if sc.TitleColor != "" {
		return sc.TitleColor
	}
	return themeText
}
