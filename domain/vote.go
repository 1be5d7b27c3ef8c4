package domain

// VoteType is a user's verdict on an article's perceived accuracy.
type VoteType string

const (
	VoteUpvote   VoteType = "upvote"
	VoteDownvote VoteType = "downvote"
)

// Valid reports whether v is one of the two recognized vote values.
func (v VoteType) Valid() bool {
	return v == VoteUpvote || v == VoteDownvote
}
