package registry

import "github.com/shouni/go-carousel-kit/pkg/domain"

// Theme はカタログに登録された配色・書体のプリセットです。
// 色はすべて #rrggbb のリテラルで持ち、選択はIDの参照で行うのだ。
type Theme struct {
	ID            string
	Name          string
	Background    string
	BackgroundEnd string // 空でなければ Background からの斜めグラデーション
	Text          string
	Accent        string
	Secondary     string
	FontID        string
	PatternID     string // テーマ固有の内蔵パターン（省略可）
}

// Themes は選択可能な全テーマのカタログです。先頭がデフォルトなのだ。
var Themes = []Theme{
	{ID: "modern-bright", Name: "Jasny Nowoczesny", Background: "#ffffff", Text: "#0f172a", Accent: "#2563eb", Secondary: "#f8fafc", FontID: "space"},
	{ID: "minimal-zen", Name: "Minimalistyczny", Background: "#fafafa", Text: "#27272a", Accent: "#a1a1aa", Secondary: "#ffffff", FontID: "inter"},
	{ID: "love-romance", Name: "Miłosny", Background: "#fff1f2", Text: "#881337", Accent: "#f43f5e", Secondary: "#ffffff", FontID: "playfair"},
	{ID: "emotional-deep", Name: "Uczuciowy", Background: "#1e1b4b", Text: "#eef2ff", Accent: "#818cf8", Secondary: "#312e81", FontID: "lora"},
	{ID: "angry-aggro", Name: "Zły", Background: "#450a0a", Text: "#fef2f2", Accent: "#ef4444", Secondary: "#000000", FontID: "bebas"},
	{ID: "exciting-high", Name: "Podniecający", Background: "#f97316", Text: "#ffffff", Accent: "#7c2d12", Secondary: "#ea580c", FontID: "anton"},
	{ID: "submissive-soft", Name: "Uległy", Background: "#f5f3ff", Text: "#a78bfa", Accent: "#c4b5fd", Secondary: "#ffffff", FontID: "quicksand"},
	{ID: "space-void", Name: "Kosmiczny", Background: "#000000", Text: "#e0e7ff", Accent: "#818cf8", Secondary: "#18181b", FontID: "space", PatternID: "dots"},
	{ID: "retro-vintage", Name: "Retro", Background: "#f4e4bc", Text: "#5d4037", Accent: "#d32f2f", Secondary: "#e7d4a6", FontID: "baskerville"},
	{ID: "joyful-vibrant", Name: "Radosny", Background: "#facc15", Text: "#000000", Accent: "#ffffff", Secondary: "#eab308", FontID: "archivo"},
	{ID: "dark-cyber", Name: "Cyberpunk", Background: "#111827", Text: "#22d3ee", Accent: "#d946ef", Secondary: "#000000", FontID: "righteous"},
	{ID: "pastel-dream", Name: "Pastelowy Sen", Background: "#eff6ff", Text: "#475569", Accent: "#f472b6", Secondary: "#ffffff", FontID: "comfortaa"},
	{ID: "corporate-gold", Name: "Biznesowy Złoty", Background: "#0f172a", Text: "#fef3c7", Accent: "#f59e0b", Secondary: "#1e293b", FontID: "montserrat"},
	{ID: "nature-leaf", Name: "Natura", Background: "#ecfdf5", Text: "#064e3b", Accent: "#059669", Secondary: "#ffffff", FontID: "raleway"},
	{ID: "sunset-vibes", Name: "Zachód Słońca", Background: "#fb923c", BackgroundEnd: "#f43f5e", Text: "#ffffff", Accent: "#fef08a", Secondary: "#e11d48", FontID: "pacifico"},
	{ID: "monochrome-stark", Name: "Monochromatyczny", Background: "#000000", Text: "#ffffff", Accent: "#9ca3af", Secondary: "#18181b", FontID: "oswald"},
	{ID: "lavender-soft", Name: "Lawenda", Background: "#faf5ff", Text: "#581c87", Accent: "#a855f7", Secondary: "#ffffff", FontID: "josefin"},
	{ID: "crimson-power", Name: "Potęga Karmazynu", Background: "#dc2626", Text: "#ffffff", Accent: "#7f1d1d", Secondary: "#b91c1c", FontID: "archivo"},
	{ID: "ocean-breeze", Name: "Morski", Background: "#164e63", Text: "#ecfeff", Accent: "#67e8f9", Secondary: "#083344", FontID: "kanit"},
	{ID: "midnight-purple", Name: "Północny Fiolet", Background: "#1e1b4b", Text: "#f5d0fe", Accent: "#d946ef", Secondary: "#000000", FontID: "space"},
}

// ThemeByID はIDに対応するテーマを返します。
// スタイル選択は常にカタログ内の値から行われる前提なので、
// 未知のIDはエラーにせずデフォルト（先頭）へフォールバックするのだ。
func ThemeByID(id string) Theme {
	for _, t := range Themes {
		if t.ID == id {
			return t
		}
	}
	return Themes[0]
}

// ThemeFor はスタイル設定からテーマを解決し、フォント上書きを反映して返します。
func ThemeFor(sc domain.StyleConfig) Theme {
	t := ThemeByID(sc.ThemeID)
	if sc.FontID != "" {
		t.FontID = FontByID(sc.FontID).ID
	}
	return t
}
