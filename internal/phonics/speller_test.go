package phonics

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"
)

// fakeSpeaker records spoken letters and returns immediately
type fakeSpeaker struct {
	mu      sync.Mutex
	letters []string
}

func (f *fakeSpeaker) SpeakLetter(ctx context.Context, letter string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	f.letters = append(f.letters, letter)
	f.mu.Unlock()
	return nil
}

func (f *fakeSpeaker) spoken() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.letters...)
}

// blockingSpeaker holds each utterance until released or cancelled
type blockingSpeaker struct {
	fakeSpeaker
	release chan struct{}
}

func (b *blockingSpeaker) SpeakLetter(ctx context.Context, letter string) error {
	select {
	case <-b.release:
	case <-ctx.Done():
		return ctx.Err()
	}
	return b.fakeSpeaker.SpeakLetter(ctx, letter)
}

func waitForInactive(t *testing.T, s *Speller) {
	t.Helper()
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		if _, _, active := s.State(); !active {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("speller never finished")
}

func TestSpellerSpeaksLettersInOrder(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping timing-dependent test in short mode")
	}

	speaker := &fakeSpeaker{}
	speller := NewSpeller(speaker)

	speller.Spell("cat")
	waitForInactive(t, speller)

	got := strings.Join(speaker.spoken(), "")
	if got != "cat" {
		t.Errorf("spoken letters = %q, want %q", got, "cat")
	}

	word, _, active := speller.State()
	if word != "cat" || active {
		t.Errorf("State() = (%q, active=%v), want (\"cat\", false)", word, active)
	}
}

func TestSpellerRestartDoesNotInterleave(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping timing-dependent test in short mode")
	}

	speaker := &blockingSpeaker{release: make(chan struct{})}
	speller := NewSpeller(speaker)

	// First word blocks on its first letter; restarting must cancel it
	// before any letter of the second word is spoken.
	speller.Spell("dog")
	time.Sleep(50 * time.Millisecond)

	close(speaker.release)
	speller.Spell("sun")
	waitForInactive(t, speller)

	got := strings.Join(speaker.spoken(), "")
	if got != "sun" && got != "dsun" {
		t.Errorf("spoken letters = %q, letters of both words interleaved", got)
	}
	// Whatever was spoken, the letters of "sun" must appear as an
	// uninterrupted run.
	if !strings.HasSuffix(got, "sun") {
		t.Errorf("spoken letters = %q, want suffix %q", got, "sun")
	}
}

func TestSpellerConcurrentSpellsNeverInterleave(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping timing-dependent test in short mode")
	}

	speaker := &fakeSpeaker{}
	speller := NewSpeller(speaker)

	var wg sync.WaitGroup
	for _, word := range []string{"cat", "dog"} {
		wg.Add(1)
		go func(word string) {
			defer wg.Done()
			speller.Spell(word)
		}(word)
	}
	wg.Wait()
	waitForInactive(t, speller)

	got := strings.Join(speaker.spoken(), "")
	finalWord, _, _ := speller.State()

	// The run started second must finish untouched, and whatever the
	// first run got out before being cancelled must be a clean prefix.
	if !strings.HasSuffix(got, finalWord) {
		t.Fatalf("spoken letters = %q, want suffix %q", got, finalWord)
	}
	rest := strings.TrimSuffix(got, finalWord)
	if !strings.HasPrefix("cat", rest) && !strings.HasPrefix("dog", rest) {
		t.Errorf("spoken letters = %q, letters of both words interleaved", got)
	}
}

func TestSpellerStop(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping timing-dependent test in short mode")
	}

	speaker := &blockingSpeaker{release: make(chan struct{})}
	speller := NewSpeller(speaker)

	speller.Spell("pig")
	speller.Stop()

	if _, _, active := speller.State(); active {
		t.Error("speller still active after Stop")
	}
	if len(speaker.spoken()) != 0 {
		t.Errorf("letters spoken after immediate Stop: %v", speaker.spoken())
	}
}
