package registry

// PatternShape はタイル1枚に描かれる図形の種別です。
// ラスタライザはこの種別だけを見てテクスチャを敷き詰めるのだ。
type PatternShape string

const (
	ShapeNone      PatternShape = "none"
	ShapePuzzle    PatternShape = "puzzle"
	ShapeWaves     PatternShape = "waves"
	ShapeDots      PatternShape = "dots"
	ShapeCross     PatternShape = "cross"
	ShapeGrid      PatternShape = "grid"
	ShapeSquares   PatternShape = "squares"
	ShapeTriangles PatternShape = "triangles"
	ShapeCircles   PatternShape = "circles"
	ShapeZigzag    PatternShape = "zigzag"
	ShapeCircuit   PatternShape = "circuit"
	ShapeDiagonal  PatternShape = "diagonal"
	ShapeChevrons  PatternShape = "chevrons"
	ShapeBubbles   PatternShape = "bubbles"
	ShapeHexagons  PatternShape = "hexagons"
)

// Pattern はタイル可能な背景テクスチャの記述子です。
// 図形は常に文字色の 10% 不透明度で描かれ、キャンバス全面に TileSize 間隔で並ぶのだ。
type Pattern struct {
	ID       string
	Name     string
	Shape    PatternShape
	TileSize int // 敷き詰め間隔（px、1080基準）
}

// Patterns は選択可能な全パターンのカタログです。先頭（なし）がデフォルトなのだ。
var Patterns = []Pattern{
	{ID: "none", Name: "Brak", Shape: ShapeNone},
	{ID: "puzzle", Name: "Puzzle", Shape: ShapePuzzle, TileSize: 80},
	{ID: "waves", Name: "Fale", Shape: ShapeWaves, TileSize: 80},
	{ID: "dots", Name: "Kropki", Shape: ShapeDots, TileSize: 40},
	{ID: "cross", Name: "Krzyżyki", Shape: ShapeCross, TileSize: 40},
	{ID: "grid", Name: "Siatka", Shape: ShapeGrid, TileSize: 80},
	{ID: "squares", Name: "Kwadraty", Shape: ShapeSquares, TileSize: 60},
	{ID: "triangles", Name: "Trójkąty", Shape: ShapeTriangles, TileSize: 80},
	{ID: "circles", Name: "Okręgi", Shape: ShapeCircles, TileSize: 80},
	{ID: "zigzag", Name: "Zygzak", Shape: ShapeZigzag, TileSize: 80},
	{ID: "circuit", Name: "Circuit", Shape: ShapeCircuit, TileSize: 120},
	{ID: "diagonal", Name: "Skosy", Shape: ShapeDiagonal, TileSize: 20},
	{ID: "chevrons", Name: "Szewrony", Shape: ShapeChevrons, TileSize: 80},
	{ID: "bubbles", Name: "Bąbelki", Shape: ShapeBubbles, TileSize: 80},
	{ID: "hexagons", Name: "Hexy", Shape: ShapeHexagons, TileSize: 80},
}

// PatternByID はIDに対応するパターンを返し、未知のIDは先頭へフォールバックします。
func PatternByID(id string) Pattern {
	for _, p := range Patterns {
		if p.ID == id {
			return p
		}
	}
	return Patterns[0]
}
