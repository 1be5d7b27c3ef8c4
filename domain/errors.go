package domain

import "errors"

var (
	// 記事関連エラー
	ErrArticleNotFound      = errors.New("article not found")
	ErrArticleAlreadyExists = errors.New("article already exists")

	// フィードバック関連エラー
	ErrInvalidVote = errors.New("invalid vote type")

	// ストア関連エラー
	ErrStoreUnavailable = errors.New("store unavailable")
)
