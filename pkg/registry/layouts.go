package registry

import "github.com/shouni/go-carousel-kit/pkg/domain"

// Layout はスライド構図バリアントのカタログ項目です。
type Layout struct {
	ID    domain.SlideLayout
	Label string
}

// Layouts は選択可能な全構図のカタログです。先頭（中央寄せ）がデフォルトなのだ。
var Layouts = []Layout{
	{ID: domain.LayoutCentered, Label: "Centrum"},
	{ID: domain.LayoutTopText, Label: "Góra"},
	{ID: domain.LayoutBottomText, Label: "Dół"},
	{ID: domain.LayoutQuote, Label: "Cytat"},
	{ID: domain.LayoutImpact, Label: "Impact"},
	{ID: domain.LayoutSplitScreen, Label: "Podział Pionowy"},
	{ID: domain.LayoutFullBleed, Label: "Full Bleed"},
	{ID: domain.LayoutIconHeavy, Label: "Ikona i Tekst"},
	{ID: domain.LayoutTimeline, Label: "Oś Czasu"},
	{ID: domain.LayoutBigHeader, Label: "Wielki Nagłówek"},
}

// LayoutByID はIDに対応する構図を返し、未知のIDは先頭へフォールバックします。
func LayoutByID(id domain.SlideLayout) Layout {
	for _, l := range Layouts {
		if l.ID == id {
			return l
		}
	}
	return Layouts[0]
}
