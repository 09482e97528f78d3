package phonics

import "fmt"

// Vowels lists the short vowels in the order they appear on the
// selection screen.
var Vowels = []string{"a", "e", "i", "o", "u"}

// vowelWords maps each short vowel to its CVC flashcard words in
// display order.
var vowelWords = map[string][]string{
	"a": {"bat", "cap", "cat", "fan", "hat", "jam", "man", "mat", "pan", "rat"},
	"e": {"bed", "hen", "jet", "leg", "men", "net", "pen", "pet", "red", "ten"},
	"i": {"big", "dig", "fig", "fin", "kid", "lid", "pig", "pin", "sit", "win"},
	"o": {"cop", "dog", "dot", "fog", "hop", "log", "mop", "pop", "pot", "top"},
	"u": {"bun", "cup", "fun", "hug", "mug", "pup", "run", "sun", "tug"},
}

var wordSentences = map[string]string{
	"bat": "The bat flies at night.",
	"cap": "He wears a red cap.",
	"cat": "The cat is sleeping.",
	"fan": "The fan is spinning fast.",
	"hat": "She has a big hat.",
	"jam": "I like strawberry jam.",
	"man": "The man is tall.",
	"mat": "Wipe your feet on the mat.",
	"pan": "The pan is hot.",
	"rat": "A rat ran across the room.",
	"bed": "I sleep in my bed.",
	"hen": "The hen lays eggs.",
	"jet": "The jet is very fast.",
	"leg": "My leg hurts.",
	"men": "The men are working.",
	"net": "The fish is in the net.",
	"pen": "I write with a pen.",
	"pet": "My pet is a dog.",
	"red": "The apple is red.",
	"ten": "I have ten fingers.",
	"big": "The dog is big.",
	"dig": "We dig in the sand.",
	"fig": "A fig is a fruit.",
	"fin": "The fish has a fin.",
	"kid": "The kid is happy.",
	"lid": "Put the lid on the box.",
	"pig": "The pig is pink.",
	"pin": "I found a pin.",
	"sit": "Please sit down.",
	"win": "I want to win.",
	"cop": "The cop helps people.",
	"dog": "The dog barks.",
	"dot": "Draw a dot on the paper.",
	"fog": "The fog is thick.",
	"hop": "The frog can hop.",
	"log": "The log is heavy.",
	"mop": "Use a mop to clean.",
	"pop": "I like to pop bubbles.",
	"pot": "The pot is on the stove.",
	"top": "The top spins fast.",
	"bun": "I ate a bun.",
	"cup": "The cup is full.",
	"fun": "We have fun at the park.",
	"hug": "Give me a hug.",
	"mug": "This mug is blue.",
	"pup": "The pup is small.",
	"run": "I run fast.",
	"sun": "The sun is bright.",
	"tug": "They tug the rope.",
}

// WordsFor returns the flashcard words for a vowel, reporting whether
// the vowel is known.
func WordsFor(vowel string) ([]string, bool) {
	words, ok := vowelWords[vowel]
	return words, ok
}

// AllWords returns every flashcard word across all vowels in display order
func AllWords() []string {
	var words []string
	for _, vowel := range Vowels {
		words = append(words, vowelWords[vowel]...)
	}
	return words
}

// SentenceFor returns the example sentence for a word. Words without a
// curated sentence get a generic one.
func SentenceFor(word string) string {
	if s, ok := wordSentences[word]; ok {
		return s
	}
	return fmt.Sprintf("This is a %s.", word)
}
