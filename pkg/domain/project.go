package domain

// Project は編集セッション全体のスナップショットです。
// 保存時に一度だけ組み立てられ、以後は変更されない前提なのだ。
type Project struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Timestamp int64  `json:"timestamp"` // Unix ミリ秒

	Slides      []Slide     `json:"slides"`
	Style       StyleConfig `json:"style"`
	Topic       string      `json:"topic"`
	Links       []string    `json:"cln_links"`
	KeyMessages KeySequence `json:"key_messages"`

	ActiveProfile ProfileKind     `json:"active_profile_type"`
	Personal      BrandingProfile `json:"personal_profile"`
	Company       BrandingProfile `json:"company_profile"`
}

// MaxStoredProjects は永続化されるスナップショット数の上限です。
// 上限を超えて保存すると最古のものから追い出されるのだ。
const MaxStoredProjects = 20
