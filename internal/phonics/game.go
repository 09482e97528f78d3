package phonics

import (
	"errors"
	"fmt"
)

// Phase is the stage a game session is in
type Phase string

const (
	PhaseFlashcards Phase = "flashcards"
	PhaseQuiz       Phase = "quiz"
	PhaseResults    Phase = "results"
)

var (
	// ErrUnknownVowel is returned when a session is requested for a
	// vowel without a word list.
	ErrUnknownVowel = errors.New("unknown vowel")

	// ErrNoSelection is returned when an answer is submitted before an
	// option was picked.
	ErrNoSelection = errors.New("no option selected")
)

// Game tracks one player's progress through a vowel's flashcards and
// quiz. It is not safe for concurrent use; callers serialize access.
type Game struct {
	Vowel string
	Phase Phase

	// Flashcard state
	Words []string
	Index int

	// Quiz state
	Questions     []Question
	QuestionIndex int
	Selected      string
	Revealed      bool
	Score         int
}

// NewGame starts a flashcard session for a vowel
func NewGame(vowel string) (*Game, error) {
	words, ok := WordsFor(vowel)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVowel, vowel)
	}
	return &Game{
		Vowel: vowel,
		Phase: PhaseFlashcards,
		Words: words,
	}, nil
}

// CurrentWord returns the word on the visible flashcard
func (g *Game) CurrentWord() string {
	return g.Words[g.Index]
}

// AtFirst reports whether the first flashcard is showing
func (g *Game) AtFirst() bool {
	return g.Index == 0
}

// AtLast reports whether the last flashcard is showing
func (g *Game) AtLast() bool {
	return g.Index == len(g.Words)-1
}

// Prev moves to the previous flashcard, stopping at the first
func (g *Game) Prev() {
	if g.Index > 0 {
		g.Index--
	}
}

// Next moves to the next flashcard, stopping at the last
func (g *Game) Next() {
	if g.Index < len(g.Words)-1 {
		g.Index++
	}
}

// StartQuiz moves the session into the quiz phase. Flashcard position
// is kept so returning players resume where they left off.
func (g *Game) StartQuiz() error {
	questions, ok := QuizFor(g.Vowel)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownVowel, g.Vowel)
	}
	g.Phase = PhaseQuiz
	g.Questions = questions
	g.QuestionIndex = 0
	g.Selected = ""
	g.Revealed = false
	g.Score = 0
	return nil
}

// CurrentQuestion returns the question being asked
func (g *Game) CurrentQuestion() Question {
	return g.Questions[g.QuestionIndex]
}

// Select records the picked option. Picks are ignored once the answer
// is revealed, and options not offered by the question are rejected.
func (g *Game) Select(option string) {
	if g.Revealed {
		return
	}
	for _, opt := range g.CurrentQuestion().Options {
		if opt == option {
			g.Selected = option
			return
		}
	}
}

// Submit locks in the selection, scoring it and revealing the answer
func (g *Game) Submit() error {
	if g.Revealed {
		return nil
	}
	if g.Selected == "" {
		return ErrNoSelection
	}
	if g.Selected == g.CurrentQuestion().Answer {
		g.Score++
	}
	g.Revealed = true
	return nil
}

// Correct reports whether the revealed selection was the right answer
func (g *Game) Correct() bool {
	return g.Revealed && g.Selected == g.CurrentQuestion().Answer
}

// Advance moves to the next question, or to the results screen after
// the last one. It does nothing before the current answer is revealed.
func (g *Game) Advance() {
	if !g.Revealed {
		return
	}
	if g.QuestionIndex < len(g.Questions)-1 {
		g.QuestionIndex++
		g.Selected = ""
		g.Revealed = false
		return
	}
	g.Phase = PhaseResults
}

// Tier returns the encouragement message for the final score
func (g *Game) Tier() string {
	return TierMessage(g.Score, len(g.Questions))
}
