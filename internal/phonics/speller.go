package phonics

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Speaker voices a single letter and returns once the utterance has
// finished playing.
type Speaker interface {
	SpeakLetter(ctx context.Context, letter string) error
}

const (
	letterPause = 600 * time.Millisecond
	closeDelay  = 1200 * time.Millisecond
)

// Speller walks through a word one letter at a time, voicing each
// letter and pausing between them, then closes the display after a
// short delay. Starting a new word cancels the previous run completely
// before any letter of the new word is spoken, so two spellings never
// interleave.
type Speller struct {
	speaker Speaker

	// startMu serializes the cancel-wait-restart sequence so two
	// concurrent Spell calls can never both observe the same run and
	// leave two runs in flight.
	startMu sync.Mutex

	mu     sync.Mutex
	word   string
	index  int
	active bool
	cancel context.CancelFunc
	done   chan struct{}
}

// NewSpeller creates a speller voiced by the given speaker
func NewSpeller(speaker Speaker) *Speller {
	return &Speller{speaker: speaker}
}

// Spell starts spelling word letter by letter. Any spelling already in
// progress is cancelled and fully stopped first.
func (s *Speller) Spell(word string) {
	s.startMu.Lock()
	defer s.startMu.Unlock()

	s.mu.Lock()
	prevCancel := s.cancel
	prevDone := s.done
	s.mu.Unlock()

	if prevCancel != nil {
		prevCancel()
		<-prevDone
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	s.mu.Lock()
	s.word = word
	s.index = 0
	s.active = true
	s.cancel = cancel
	s.done = done
	s.mu.Unlock()

	go s.run(ctx, word, done)
}

func (s *Speller) run(ctx context.Context, word string, done chan struct{}) {
	defer close(done)

	letters := strings.Split(word, "")
	for i, letter := range letters {
		s.mu.Lock()
		s.index = i
		s.mu.Unlock()

		if err := s.speaker.SpeakLetter(ctx, letter); err != nil {
			s.deactivate()
			return
		}

		select {
		case <-time.After(letterPause):
		case <-ctx.Done():
			s.deactivate()
			return
		}
	}

	select {
	case <-time.After(closeDelay):
	case <-ctx.Done():
	}
	s.deactivate()
}

func (s *Speller) deactivate() {
	s.mu.Lock()
	s.active = false
	s.mu.Unlock()
}

// State reports the word being spelled, the letter currently showing,
// and whether a spelling is still in progress.
func (s *Speller) State() (word string, index int, active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.word, s.index, s.active
}

// Stop cancels any spelling in progress and waits for it to finish
func (s *Speller) Stop() {
	s.startMu.Lock()
	defer s.startMu.Unlock()

	s.mu.Lock()
	cancel := s.cancel
	done := s.done
	s.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}
