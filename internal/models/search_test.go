package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchRequestKeywords(t *testing.T) {
	tests := []struct {
		name     string
		request  SearchRequest
		expected string
	}{
		{
			name:     "plain query",
			request:  SearchRequest{Query: "kurzgesagt"},
			expected: "kurzgesagt",
		},
		{
			name:     "season and episode folded in",
			request:  SearchRequest{Query: "kurzgesagt", Season: 2, Episode: 1},
			expected: "kurzgesagt S02E01",
		},
		{
			name:     "season only",
			request:  SearchRequest{Query: "kurzgesagt", Season: 10},
			expected: "kurzgesagt S10",
		},
		{
			name:     "episode without season is ignored",
			request:  SearchRequest{Query: "kurzgesagt", Episode: 3},
			expected: "kurzgesagt",
		},
		{
			name:     "empty query",
			request:  SearchRequest{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.request.Keywords())
		})
	}
}
