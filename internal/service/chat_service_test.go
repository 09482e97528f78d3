package service

import (
	"strings"
	"testing"
)

func TestReplyMatchesInOrder(t *testing.T) {
	counts := ChatCounts{Available: 6, InProgress: 2, Completed: 3}

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{
			name:    "greeting",
			message: "Hello there!",
			want:    "Hello! How can I help you today?",
		},
		{
			name:    "case-insensitive",
			message: "GOOD MORNING",
			want:    "Good morning! Ready to learn something new?",
		},
		{
			name:    "lesson count interpolation",
			message: "how many lessons are there?",
			want:    "There are currently 6 lessons available.",
		},
		{
			name:    "summary interpolation",
			message: "how am i doing",
			want:    "You have completed 3 lessons and have 2 in progress.",
		},
		{
			// "hi" matches as a bare substring, so words containing it
			// greet ("which", "achievement") just like the rule intends
			// for "hi" itself
			name:    "hi inside another word greets",
			message: "achievement count",
			want:    "Hello! How can I help you today?",
		},
		{
			name:    "progress total interpolation",
			message: "what is my progress total?",
			want:    "You have completed 3 out of 6 lessons.",
		},
		{
			// "lesson"+"progress" precedes "lesson"+"available"
			name:    "earlier rule shadows later one",
			message: "lesson progress available",
			want:    "Lessons in progress are shown in the 'Continue Learning' section.",
		},
		{
			// bare "vowel" only fires when "lesson" is absent
			name:    "vowel without lesson",
			message: "tell me about vowels",
			want:    "Vowel Lessons help you practice A, E, I, O, U with words and pictures.",
		},
		{
			name:    "vowel with lesson",
			message: "vowel lesson",
			want:    "You can practice vowels by clicking the 'Vowel Lessons' card in the New Lessons section.",
		},
		{
			name:    "fallback",
			message: "what is the weather like?",
			want:    chatFallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reply(tt.message, counts); got != tt.want {
				t.Errorf("Reply(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestReplyIsDeterministic(t *testing.T) {
	counts := ChatCounts{Available: 6}
	first := Reply("help", counts)
	for i := 0; i < 5; i++ {
		if got := Reply("help", counts); got != first {
			t.Fatalf("Reply varied between calls: %q vs %q", got, first)
		}
	}
	if !strings.Contains(first, "lessons") {
		t.Errorf("help reply = %q, expected lesson guidance", first)
	}
}
