package handlers

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

func newTestPhonicsHandler() *PhonicsHandler {
	return NewPhonicsHandler(nil, NewMiddleware(nil, nil, nil), nil)
}

func gameRequest(method, target, vowel string) *http.Request {
	r := httptest.NewRequest(method, target, nil)
	r.SetPathValue("vowel", vowel)
	return r
}

func TestShowFlashcardUnknownVowelRedirectsToPicker(t *testing.T) {
	h := newTestPhonicsHandler()
	recorder := httptest.NewRecorder()

	h.ShowFlashcard(recorder, gameRequest("GET", "/lessons/vowel/x", "x"))

	if recorder.Code != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", recorder.Code)
	}
	if loc := recorder.Header().Get("Location"); loc != "/lessons/vowel" {
		t.Fatalf("expected redirect to picker, got %q", loc)
	}
}

func TestGameActionsWithoutGameRedirectToFlashcards(t *testing.T) {
	h := newTestPhonicsHandler()

	actions := map[string]http.HandlerFunc{
		"prev":   h.PrevCard,
		"next":   h.NextCard,
		"spell":  h.SpellWord,
		"select": h.SelectAnswer,
	}

	for name, action := range actions {
		t.Run(name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			action(recorder, gameRequest("POST", "/lessons/vowel/a/"+name, "a"))

			if recorder.Code != http.StatusSeeOther {
				t.Fatalf("expected status 303, got %d", recorder.Code)
			}
			if loc := recorder.Header().Get("Location"); loc != "/lessons/vowel/a" {
				t.Fatalf("expected redirect to flashcards, got %q", loc)
			}
		})
	}
}

func TestFirstGameRequestMintsPlayerCookie(t *testing.T) {
	h := newTestPhonicsHandler()
	recorder := httptest.NewRecorder()

	h.ShowFlashcard(recorder, gameRequest("GET", "/lessons/vowel/x", "x"))

	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == PlayerCookieName && cookie.Value != "" {
			return
		}
	}
	t.Fatal("expected a player cookie to be set")
}

func TestConcurrentCardStepsStayInBounds(t *testing.T) {
	h := newTestPhonicsHandler()

	recorder := httptest.NewRecorder()
	h.RestartGame(recorder, gameRequest("POST", "/lessons/vowel/a/restart", "a"))

	var player *http.Cookie
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == PlayerCookieName {
			player = cookie
		}
	}
	if player == nil {
		t.Fatal("expected a player cookie to be set")
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			action, path := h.NextCard, "next"
			if i%2 == 0 {
				action, path = h.PrevCard, "prev"
			}
			r := gameRequest("POST", "/lessons/vowel/a/"+path, "a")
			r.AddCookie(player)
			action(httptest.NewRecorder(), r)
		}(i)
	}
	wg.Wait()

	h.mu.Lock()
	state := h.players[player.Value]
	h.mu.Unlock()
	if state == nil {
		t.Fatal("game state disappeared")
	}

	state.mu.Lock()
	index, total := state.game.Index, len(state.game.Words)
	state.mu.Unlock()
	if index < 0 || index >= total {
		t.Errorf("card index %d out of range [0,%d)", index, total)
	}
}

func TestExitWithoutSignInReturnsToPicker(t *testing.T) {
	h := newTestPhonicsHandler()
	recorder := httptest.NewRecorder()

	h.ExitGame(recorder, gameRequest("POST", "/lessons/vowel/a/exit", "a"))

	if recorder.Code != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", recorder.Code)
	}
	if loc := recorder.Header().Get("Location"); loc != "/lessons/vowel" {
		t.Fatalf("expected redirect to picker, got %q", loc)
	}
}
