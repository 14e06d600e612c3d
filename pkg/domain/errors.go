package domain

import "errors"

// 生成・編集フローで区別して扱う失敗種別なのだ。
// それ以外の失敗は呼び出し元で %w 付きの汎用エラーとして伝播させるのだよ。
var (
	// ErrLastSlide は最後の1枚を削除しようとしたときに返されます。
	// カルーセルは常に1枚以上のスライドを持つ、が不変条件なのだ。
	ErrLastSlide = errors.New("最後のスライドは削除できないのだ")

	// ErrModelNotFound は無効な API キーやモデル名による 404 系の失敗です。
	// 汎用的な生成失敗とはユーザーへの通知を分ける必要があるのだ。
	ErrModelNotFound = errors.New("指定されたモデルまたは認証情報が見つからないのだ")

	// ErrQuotaExceeded は API クォータ超過による失敗です。
	ErrQuotaExceeded = errors.New("APIクォータの上限に達したのだ")

	// ErrTopicRequired はテーマ未入力のまま生成を要求したときの入力検証エラーです。
	ErrTopicRequired = errors.New("テーマが入力されていないのだ")
)
