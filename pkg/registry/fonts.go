package registry

// Font はカタログに登録された書体トークンです。
// ラスタライザは Display フラグで埋め込みフォントの太字系を選ぶだけで、
// 書体名そのものは成果物のメタデータとして保持されるのだ。
type Font struct {
	ID      string
	Name    string
	Display bool // 見出し向けのディスプレイ書体か
}

// Fonts は選択可能な全書体のカタログです。先頭がデフォルトなのだ。
var Fonts = []Font{
	{ID: "inter", Name: "Inter"},
	{ID: "playfair", Name: "Playfair Display", Display: true},
	{ID: "space", Name: "Space Grotesk"},
	{ID: "bebas", Name: "Bebas Neue", Display: true},
	{ID: "outfit", Name: "Outfit"},
	{ID: "montserrat", Name: "Montserrat"},
	{ID: "lora", Name: "Lora"},
	{ID: "roboto", Name: "Roboto"},
	{ID: "poppins", Name: "Poppins"},
	{ID: "raleway", Name: "Raleway"},
	{ID: "baskerville", Name: "Libre Baskerville"},
	{ID: "cinzel", Name: "Cinzel", Display: true},
	{ID: "dancing", Name: "Dancing Script", Display: true},
	{ID: "permanent", Name: "Permanent Marker", Display: true},
	{ID: "fira", Name: "Fira Sans"},
	{ID: "oswald", Name: "Oswald", Display: true},
	{ID: "quicksand", Name: "Quicksand"},
	{ID: "anton", Name: "Anton", Display: true},
	{ID: "pacifico", Name: "Pacifico", Display: true},
	{ID: "josefin", Name: "Josefin Sans"},
	{ID: "caveat", Name: "Caveat", Display: true},
	{ID: "abril", Name: "Abril Fatface", Display: true},
	{ID: "archivo", Name: "Archivo Black", Display: true},
	{ID: "righteous", Name: "Righteous", Display: true},
	{ID: "staatliches", Name: "Staatliches", Display: true},
	{ID: "kanit", Name: "Kanit"},
	{ID: "ubuntu", Name: "Ubuntu"},
	{ID: "merriweather", Name: "Merriweather"},
	{ID: "garamond", Name: "EB Garamond"},
	{ID: "arvo", Name: "Arvo"},
	{ID: "comfortaa", Name: "Comfortaa"},
}

// FontByID はIDに対応する書体を返し、未知のIDは先頭へフォールバックします。
func FontByID(id string) Font {
	for _, f := range Fonts {
		if f.ID == id {
			return f
		}
	}
	return Fonts[0]
}
