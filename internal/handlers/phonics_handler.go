package handlers

import (
	"context"
	"html/template"
	"log"
	"net/http"
	"sync"
	"time"

	"smartread/internal/audio"
	"smartread/internal/phonics"
	"smartread/internal/security"
)

// PhonicsHandler handles the vowel mini-game HTTP requests. The game
// subtree is open to everyone, signed in or not, like the original.
type PhonicsHandler struct {
	tts        *audio.TTSService
	middleware *Middleware
	templates  *template.Template

	mu      sync.Mutex
	players map[string]*playerState
}

// playerState is one browser's in-flight game. Games live in memory
// only; closing the game or the server loses them, like the original.
// The game type expects callers to serialize access, so every read or
// mutation of game happens under mu.
type playerState struct {
	mu      sync.Mutex
	game    *phonics.Game
	speller *phonics.Speller
}

// NewPhonicsHandler creates a new phonics handler
func NewPhonicsHandler(tts *audio.TTSService, middleware *Middleware, templates *template.Template) *PhonicsHandler {
	return &PhonicsHandler{
		tts:        tts,
		middleware: middleware,
		templates:  templates,
		players:    make(map[string]*playerState),
	}
}

// ttsSpeaker pronounces letters by making sure their audio exists on
// disk before the flashcard page asks for it.
type ttsSpeaker struct {
	tts *audio.TTSService
}

func (s *ttsSpeaker) SpeakLetter(ctx context.Context, letter string) error {
	_, err := s.tts.LetterAudio(letter)
	return err
}

// ShowVowelSelect renders the vowel picker
func (h *PhonicsHandler) ShowVowelSelect(w http.ResponseWriter, r *http.Request) {
	data := VowelSelectViewData{
		Title:  "Vowel Lessons - SmartRead",
		User:   h.middleware.CurrentUser(w, r),
		Vowels: phonics.Vowels,
	}
	h.render(w, "vowel_select.tmpl", data)
}

// ShowFlashcard renders the current flashcard, starting a fresh game
// when the browser has none for this vowel.
func (h *PhonicsHandler) ShowFlashcard(w http.ResponseWriter, r *http.Request) {
	state := h.ensureGame(w, r)
	if state == nil {
		return
	}

	state.mu.Lock()
	game := state.game
	switch game.Phase {
	case phonics.PhaseQuiz:
		state.mu.Unlock()
		http.Redirect(w, r, h.gamePath(r, "/quiz"), http.StatusSeeOther)
		return
	case phonics.PhaseResults:
		state.mu.Unlock()
		http.Redirect(w, r, h.gamePath(r, "/results"), http.StatusSeeOther)
		return
	}

	word := game.CurrentWord()
	cardNumber := game.Index + 1
	totalCards := len(game.Words)
	atFirst := game.AtFirst()
	atLast := game.AtLast()
	state.mu.Unlock()

	sentence := phonics.SentenceFor(word)

	// Audio generation is best effort; the card still works silent
	wordAudio, err := h.tts.WordAudio(word)
	if err != nil {
		log.Printf("Error generating word audio for %q: %v", word, err)
	}
	sentenceAudio, err := h.tts.SentenceAudio(word, sentence)
	if err != nil {
		log.Printf("Error generating sentence audio for %q: %v", word, err)
	}

	spellWord, spellIndex, spelling := state.speller.State()
	if spellWord != word {
		spelling = false
	}

	data := FlashcardViewData{
		Title:         "Flashcards - SmartRead",
		User:          h.middleware.CurrentUser(w, r),
		Vowel:         game.Vowel,
		Word:          word,
		Sentence:      sentence,
		WordAudio:     wordAudio,
		SentenceAudio: sentenceAudio,
		CardNumber:    cardNumber,
		TotalCards:    totalCards,
		AtFirst:       atFirst,
		AtLast:        atLast,
		Spelling:      spelling,
		SpellIndex:    spellIndex,
	}
	h.render(w, "flashcard.tmpl", data)
}

// PrevCard steps the flashcards back one word
func (h *PhonicsHandler) PrevCard(w http.ResponseWriter, r *http.Request) {
	if state := h.gameFor(w, r); state != nil {
		state.mu.Lock()
		state.speller.Stop()
		state.game.Prev()
		state.mu.Unlock()
		http.Redirect(w, r, h.gamePath(r, ""), http.StatusSeeOther)
	}
}

// NextCard steps the flashcards forward one word
func (h *PhonicsHandler) NextCard(w http.ResponseWriter, r *http.Request) {
	if state := h.gameFor(w, r); state != nil {
		state.mu.Lock()
		state.speller.Stop()
		state.game.Next()
		state.mu.Unlock()
		http.Redirect(w, r, h.gamePath(r, ""), http.StatusSeeOther)
	}
}

// SpellWord starts spelling the current word letter by letter. Starting
// again mid-word restarts cleanly from the first letter.
func (h *PhonicsHandler) SpellWord(w http.ResponseWriter, r *http.Request) {
	if state := h.gameFor(w, r); state != nil {
		state.mu.Lock()
		state.speller.Spell(state.game.CurrentWord())
		state.mu.Unlock()
		http.Redirect(w, r, h.gamePath(r, ""), http.StatusSeeOther)
	}
}

// ShowQuiz renders the current quiz question, entering the quiz phase
// from the flashcards on first visit.
func (h *PhonicsHandler) ShowQuiz(w http.ResponseWriter, r *http.Request) {
	state := h.ensureGame(w, r)
	if state == nil {
		return
	}

	state.mu.Lock()
	game := state.game
	if game.Phase == phonics.PhaseFlashcards {
		state.speller.Stop()
		if err := game.StartQuiz(); err != nil {
			state.mu.Unlock()
			http.Redirect(w, r, "/lessons/vowel", http.StatusSeeOther)
			return
		}
	}
	if game.Phase == phonics.PhaseResults {
		state.mu.Unlock()
		http.Redirect(w, r, h.gamePath(r, "/results"), http.StatusSeeOther)
		return
	}

	data := QuizViewData{
		Title:          "Quiz - SmartRead",
		Vowel:          game.Vowel,
		Question:       game.CurrentQuestion(),
		QuestionNumber: game.QuestionIndex + 1,
		TotalQuestions: len(game.Questions),
		Selected:       game.Selected,
		Revealed:       game.Revealed,
		Correct:        game.Correct(),
		Score:          game.Score,
	}
	state.mu.Unlock()

	data.User = h.middleware.CurrentUser(w, r)
	h.render(w, "quiz.tmpl", data)
}

// SelectAnswer records the student's choice for the current question
func (h *PhonicsHandler) SelectAnswer(w http.ResponseWriter, r *http.Request) {
	state := h.gameFor(w, r)
	if state == nil {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return
	}

	state.mu.Lock()
	state.game.Select(r.FormValue("option"))
	state.mu.Unlock()
	http.Redirect(w, r, h.gamePath(r, "/quiz"), http.StatusSeeOther)
}

// SubmitAnswer checks the selected answer and reveals the result
func (h *PhonicsHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	state := h.gameFor(w, r)
	if state == nil {
		return
	}

	// Submitting with nothing selected leaves the question as-is
	state.mu.Lock()
	_ = state.game.Submit()
	state.mu.Unlock()
	http.Redirect(w, r, h.gamePath(r, "/quiz"), http.StatusSeeOther)
}

// AdvanceQuiz moves to the next question, or to results after the last
func (h *PhonicsHandler) AdvanceQuiz(w http.ResponseWriter, r *http.Request) {
	state := h.gameFor(w, r)
	if state == nil {
		return
	}

	state.mu.Lock()
	state.game.Advance()
	finished := state.game.Phase == phonics.PhaseResults
	state.mu.Unlock()

	if finished {
		http.Redirect(w, r, h.gamePath(r, "/results"), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, h.gamePath(r, "/quiz"), http.StatusSeeOther)
}

// ShowResults renders the quiz score and its encouragement tier
func (h *PhonicsHandler) ShowResults(w http.ResponseWriter, r *http.Request) {
	state := h.gameFor(w, r)
	if state == nil {
		return
	}

	state.mu.Lock()
	game := state.game
	if game.Phase != phonics.PhaseResults {
		state.mu.Unlock()
		http.Redirect(w, r, h.gamePath(r, "/quiz"), http.StatusSeeOther)
		return
	}

	data := QuizResultsViewData{
		Title:   "Results - SmartRead",
		Vowel:   game.Vowel,
		Score:   game.Score,
		Total:   len(game.Questions),
		Message: game.Tier(),
	}
	state.mu.Unlock()

	data.User = h.middleware.CurrentUser(w, r)
	h.render(w, "quiz_results.tmpl", data)
}

// RestartGame throws the current game away and deals a fresh one for
// the same vowel.
func (h *PhonicsHandler) RestartGame(w http.ResponseWriter, r *http.Request) {
	vowel := r.PathValue("vowel")
	game, err := phonics.NewGame(vowel)
	if err != nil {
		http.Redirect(w, r, "/lessons/vowel", http.StatusSeeOther)
		return
	}

	key := h.playerKey(w, r)
	h.mu.Lock()
	if prev, ok := h.players[key]; ok {
		prev.speller.Stop()
	}
	h.players[key] = &playerState{
		game:    game,
		speller: phonics.NewSpeller(&ttsSpeaker{tts: h.tts}),
	}
	h.mu.Unlock()

	http.Redirect(w, r, h.gamePath(r, ""), http.StatusSeeOther)
}

// ExitGame abandons the game and returns to the visitor's home
func (h *PhonicsHandler) ExitGame(w http.ResponseWriter, r *http.Request) {
	key := h.playerKey(w, r)

	h.mu.Lock()
	if state, ok := h.players[key]; ok {
		state.speller.Stop()
		delete(h.players, key)
	}
	h.mu.Unlock()

	if user := h.middleware.CurrentUser(w, r); user != nil {
		http.Redirect(w, r, user.Role.HomePath(), http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/lessons/vowel", http.StatusSeeOther)
}

// gamePath builds a game URL for the vowel in the request path
func (h *PhonicsHandler) gamePath(r *http.Request, suffix string) string {
	return "/lessons/vowel/" + r.PathValue("vowel") + suffix
}

// playerKey identifies the browser's game slot, minting a cookie when
// none exists yet.
func (h *PhonicsHandler) playerKey(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(PlayerCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	key := security.GenerateSessionID()
	http.SetCookie(w, security.CreateSessionCookie(r, PlayerCookieName, key, time.Now().Add(24*time.Hour)))
	return key
}

// ensureGame returns the browser's game for the vowel in the path,
// creating one when there is none or the vowel changed. A bad vowel
// redirects to the picker.
func (h *PhonicsHandler) ensureGame(w http.ResponseWriter, r *http.Request) *playerState {
	vowel := r.PathValue("vowel")
	key := h.playerKey(w, r)

	h.mu.Lock()
	defer h.mu.Unlock()

	if state, ok := h.players[key]; ok && state.game.Vowel == vowel {
		return state
	}

	game, err := phonics.NewGame(vowel)
	if err != nil {
		http.Redirect(w, r, "/lessons/vowel", http.StatusSeeOther)
		return nil
	}

	if prev, ok := h.players[key]; ok {
		prev.speller.Stop()
	}
	state := &playerState{
		game:    game,
		speller: phonics.NewSpeller(&ttsSpeaker{tts: h.tts}),
	}
	h.players[key] = state
	return state
}

// gameFor loads the browser's in-flight game for the path vowel without
// creating one, redirecting to the flashcards when it is missing.
func (h *PhonicsHandler) gameFor(w http.ResponseWriter, r *http.Request) *playerState {
	vowel := r.PathValue("vowel")
	key := h.playerKey(w, r)

	h.mu.Lock()
	state, ok := h.players[key]
	h.mu.Unlock()

	if !ok || state.game.Vowel != vowel {
		http.Redirect(w, r, h.gamePath(r, ""), http.StatusSeeOther)
		return nil
	}
	return state
}

func (h *PhonicsHandler) render(w http.ResponseWriter, name string, data interface{}) {
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("Error rendering %s: %v", name, err)
		http.Error(w, ErrInternalServerError, http.StatusInternalServerError)
	}
}
