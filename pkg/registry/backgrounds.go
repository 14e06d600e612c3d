package registry

// BackgroundImage はカタログに登録された背景写真です。
// URL は Unsplash のリサイズ済み配信URLで、"none" だけが空URLを持つのだ。
type BackgroundImage struct {
	ID   string
	Name string
	URL  string
}

// Backgrounds は選択可能な全背景画像のカタログです。先頭（なし）がデフォルトなのだ。
var Backgrounds = []BackgroundImage{
	{ID: "none", Name: "Brak", URL: ""},
	{ID: "abstract-mesh", Name: "Mesh Gradient", URL: "https://images.unsplash.com/photo-1618005182384-a83a8bd57fbe?auto=format&fit=crop&w=800&q=80"},
	{ID: "dark-noise", Name: "Ciemny Szum", URL: "https://images.unsplash.com/photo-1550684848-fac1c5b4e853?auto=format&fit=crop&w=800&q=80"},
	{ID: "retro-paper", Name: "Stary Papier", URL: "https://images.unsplash.com/photo-1586075010633-2445198ba293?auto=format&fit=crop&w=800&q=80"},
	{ID: "space-stars", Name: "Gwiazdy", URL: "https://images.unsplash.com/photo-1475274047050-1d0c0975c63e?auto=format&fit=crop&w=800&q=80"},
	{ID: "geo-pattern", Name: "Geometria", URL: "https://images.unsplash.com/photo-1557682250-33bd709cbe85?auto=format&fit=crop&w=800&q=80"},
	{ID: "low-poly", Name: "Low Poly", URL: "https://images.unsplash.com/photo-1517404215738-15263e9f9178?auto=format&fit=crop&w=800&q=80"},
	{ID: "ink-bleed", Name: "Tusz", URL: "https://images.unsplash.com/photo-1541701494587-cb58502866ab?auto=format&fit=crop&w=800&q=80"},
	{ID: "watercolor", Name: "Akwarela", URL: "https://images.unsplash.com/photo-1525909002-1b05e0c869d8?auto=format&fit=crop&w=800&q=80"},
	{ID: "carbon", Name: "Karbon", URL: "https://images.unsplash.com/photo-1504333638930-c8787321eee0?auto=format&fit=crop&w=800&q=80"},
	{ID: "city", Name: "Miasto", URL: "https://images.unsplash.com/photo-1477959858617-67f85cf4f1df?auto=format&fit=crop&w=800&q=80"},
	{ID: "mist", Name: "Mgła", URL: "https://images.unsplash.com/photo-1485081669829-bacb8c7bb1f3?auto=format&fit=crop&w=800&q=80"},
	{ID: "mountains", Name: "Góry", URL: "https://images.unsplash.com/photo-1464822759023-fed622ff2c3b?auto=format&fit=crop&w=800&q=80"},
	{ID: "circuit", Name: "Obwody", URL: "https://images.unsplash.com/photo-1518770660439-4636190af475?auto=format&fit=crop&w=800&q=80"},
	{ID: "old-map", Name: "Stara Mapa", URL: "https://images.unsplash.com/photo-1526778548025-fa2f459cd5c1?auto=format&fit=crop&w=800&q=80"},
	{ID: "luxury-fabric", Name: "Tkanina", URL: "https://images.unsplash.com/photo-1518005020251-0eb5c1842213?auto=format&fit=crop&w=800&q=80"},
	{ID: "bokeh-lights", Name: "Bokeh", URL: "https://images.unsplash.com/photo-1516035069371-29a1b244cc32?auto=format&fit=crop&w=800&q=80"},
	{ID: "minimal-architecture", Name: "Architektura", URL: "https://images.unsplash.com/photo-1486406146926-c627a92ad1ab?auto=format&fit=crop&w=800&q=80"},
	{ID: "neon-grid", Name: "Neon Grid", URL: "https://images.unsplash.com/photo-1550745165-9bc0b252726f?auto=format&fit=crop&w=800&q=80"},
	{ID: "soft-clouds", Name: "Chmury", URL: "https://images.unsplash.com/photo-1513002749550-c59d786b8e6c?auto=format&fit=crop&w=800&q=80"},
	{ID: "vintage-vibe", Name: "Vintage", URL: "https://images.unsplash.com/photo-1519834785169-98be25ec3f84?auto=format&fit=crop&w=800&q=80"},
	{ID: "abstract-fluid", Name: "Fluid", URL: "https://images.unsplash.com/photo-1541701494587-cb58502866ab?auto=format&fit=crop&w=800&q=80"},
	{ID: "cyber-dark", Name: "Cyber Dark", URL: "https://images.unsplash.com/photo-1558591710-4b4a1ae0f04d?auto=format&fit=crop&w=800&q=80"},
	{ID: "forest-ethereal", Name: "Las", URL: "https://images.unsplash.com/photo-1441974231531-c6227db76b6e?auto=format&fit=crop&w=800&q=80"},
	{ID: "marble-white", Name: "Marmur", URL: "https://images.unsplash.com/photo-1533154683836-84ea7a0bc310?auto=format&fit=crop&w=800&q=80"},
}

// BackgroundByID はIDに対応する背景画像を返し、未知のIDは先頭へフォールバックします。
func BackgroundByID(id string) BackgroundImage {
	for _, b := range Backgrounds {
		if b.ID == id {
			return b
		}
	}
	return Backgrounds[0]
}
