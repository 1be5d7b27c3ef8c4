package job

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		want        string
	}{
		{
			name:  "politics keywords",
			title: "Parliament passes new election law",
			want:  "Politics",
		},
		{
			name:        "technology keywords",
			title:       "New AI software released",
			description: "The app runs on any device",
			want:        "Technology",
		},
		{
			name:  "health keywords",
			title: "Hospital reports rise in virus cases among patients",
			want:  "Health",
		},
		{
			name:  "business keywords",
			title: "Stock market rally lifts investor confidence",
			want:  "Business",
		},
		{
			name:  "science keywords",
			title: "Scientists report discovery of a new planet",
			want:  "Science",
		},
		{
			name:  "sports keywords",
			title: "Basketball team wins championship match",
			want:  "Sports",
		},
		{
			name:  "no keywords fall back to miscellaneous",
			title: "Local bakery celebrates anniversary",
			want:  DefaultCategory,
		},
		{
			name: "empty input",
			want: DefaultCategory,
		},
		{
			name:        "most matches wins",
			title:       "Government policy on hospital funding",
			description: "The minister announced the new law in parliament",
			want:        "Politics",
		},
		{
			name:  "matching is case insensitive",
			title: "ELECTION RESULTS ANNOUNCED BY GOVERNMENT",
			want:  "Politics",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.title, tt.description))
		})
	}
}

func TestCategorize_KeywordsMatchWholeWords(t *testing.T) {
	// "apply" contains "app" but is not a technology keyword.
	assert.Equal(t, DefaultCategory, Categorize("How to apply for residency", ""))
}
