package audio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// TTSService generates MP3 pronunciations for letters, words and
// sentences used by the phonics game. Files are cached on disk and
// served as static assets.
type TTSService struct {
	audioDir string
}

const ttsRequestTimeout = 10 * time.Second

// NewTTSService creates a new TTS service writing MP3s to audioDir
func NewTTSService(audioDir string) *TTSService {
	return &TTSService{
		audioDir: audioDir,
	}
}

// LetterAudio returns the filename of the MP3 pronouncing a single letter
func (s *TTSService) LetterAudio(letter string) (string, error) {
	return s.generateCached(letter, "letter_"+letter)
}

// WordAudio returns the filename of the MP3 pronouncing a word
func (s *TTSService) WordAudio(word string) (string, error) {
	return s.generateCached(word, "word_"+word)
}

// SentenceAudio returns the filename of the MP3 reading a word's example
// sentence. The word keys the cache so edited sentences reuse the slot.
func (s *TTSService) SentenceAudio(word, sentence string) (string, error) {
	return s.generateCached(sentence, "sentence_"+word)
}

// generateCached converts text to speech and saves it as an MP3 named
// after prefix. Returns the filename (not full path) on success; an
// existing file is reused without refetching.
func (s *TTSService) generateCached(text, prefix string) (string, error) {
	sanitized := strings.ToLower(strings.TrimSpace(prefix))
	sanitized = strings.ReplaceAll(sanitized, " ", "_")

	filename := fmt.Sprintf("%s.mp3", sanitized)
	outputPath := filepath.Join(s.audioDir, filename)

	if _, err := os.Stat(outputPath); err == nil {
		return filename, nil
	}

	if err := s.generateUsingGoogleTTS(text, outputPath); err != nil {
		return "", fmt.Errorf("failed to generate audio: %w", err)
	}

	return filename, nil
}

// generateUsingGoogleTTS uses Google Translate's text-to-speech API.
// This is a simple, free option that doesn't require API keys.
func (s *TTSService) generateUsingGoogleTTS(text, outputPath string) error {
	baseURL := "https://translate.google.com/translate_tts"

	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("q", text)
	params.Set("tl", "en")
	params.Set("client", "tw-ob")
	params.Set("textlen", fmt.Sprintf("%d", len(text)))

	fullURL := baseURL + "?" + params.Encode()

	ctx, cancel := context.WithTimeout(context.Background(), ttsRequestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "GET", fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	// User agent is required by Google
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	client := &http.Client{Timeout: ttsRequestTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	outFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer outFile.Close()

	if _, err := io.Copy(outFile, resp.Body); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}

	return nil
}

// WarmCache pre-generates audio for every word and its letters so the
// first flashcard doesn't wait on the network. Errors are returned but
// callers may treat warming as best effort.
func (s *TTSService) WarmCache(words []string) error {
	if err := os.MkdirAll(s.audioDir, 0o755); err != nil {
		return fmt.Errorf("failed to create audio directory: %w", err)
	}

	for _, word := range words {
		if _, err := s.WordAudio(word); err != nil {
			return fmt.Errorf("failed to generate audio for %q: %w", word, err)
		}
		for _, letter := range strings.Split(word, "") {
			if _, err := s.LetterAudio(letter); err != nil {
				return fmt.Errorf("failed to generate audio for letter %q: %w", letter, err)
			}
		}
	}

	return nil
}

// ListAudioFiles returns all MP3 files in the audio directory
func (s *TTSService) ListAudioFiles() ([]string, error) {
	files, err := os.ReadDir(s.audioDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio directory: %w", err)
	}

	var audioFiles []string
	for _, file := range files {
		if !file.IsDir() && filepath.Ext(file.Name()) == ".mp3" {
			audioFiles = append(audioFiles, file.Name())
		}
	}

	return audioFiles, nil
}
