package store

import (
	"time"
)

// SeedData is the fixed default dataset a fresh (or unrecoverable)
// backend starts from.
type SeedData struct {
	Notes           []*Note           `json:"notes"`
	Memories        []*Memory         `json:"memories"`
	TimelineEvents  []*TimelineEvent  `json:"timelineEvents"`
	CountdownEvents []*CountdownEvent `json:"countdownEvents"`
	Compliments     []*Compliment     `json:"compliments"`
	QuizQuestions   []*QuizQuestion   `json:"quizQuestions"`
}

// DefaultSeed returns the default sample dataset, with creation
// timestamps derived from now.
func DefaultSeed(now time.Time) *SeedData {
	day := 24 * time.Hour
	return &SeedData{
		Notes: []*Note{
			{ID: NewUID(), Content: "You make my heart smile every day.", CreatedTs: now.Unix()},
			{ID: NewUID(), Content: "I love the way your eyes light up when you laugh.", CreatedTs: now.Add(-day).Unix()},
		},
		Memories: []*Memory{
			{
				ID:        NewUID(),
				ImageURL:  "https://images.pexels.com/photos/5358/sea-beach-holiday-vacation.jpg?auto=compress&cs=tinysrgb&w=600",
				Caption:   "Our first beach trip together",
				CreatedTs: now.Add(-90 * day).Unix(),
			},
			{
				ID:        NewUID(),
				ImageURL:  "https://images.pexels.com/photos/1024960/pexels-photo-1024960.jpeg?auto=compress&cs=tinysrgb&w=600",
				Caption:   "That amazing dinner at our favorite restaurant",
				CreatedTs: now.Add(-30 * day).Unix(),
			},
		},
		TimelineEvents: []*TimelineEvent{
			{ID: NewUID(), Title: "First Date", Description: "The day we first met for coffee", EventDate: "2023-02-14", CreatedTs: now.Unix()},
			{ID: NewUID(), Title: "First Kiss", Description: "Under the stars at the park", EventDate: "2023-03-01", CreatedTs: now.Unix()},
		},
		CountdownEvents: []*CountdownEvent{
			{ID: NewUID(), Title: "Our Anniversary", Date: "2024-12-31"},
		},
		Compliments: []*Compliment{
			{ID: NewUID(), Content: "Your smile brightens my darkest days", IsFavorite: true},
			{ID: NewUID(), Content: "You have the most beautiful soul"},
			{ID: NewUID(), Content: "Your kindness inspires me to be better"},
		},
		QuizQuestions: []*QuizQuestion{
			{ID: NewUID(), Question: "What was the restaurant where we had our first date?", Answer: "The Coffee Shop"},
			{ID: NewUID(), Question: "What's my favorite color?", Answer: "Purple"},
		},
	}
}
