package phonics

// Question is a single multiple-choice quiz question
type Question struct {
	Prompt  string
	Options []string
	Answer  string
}

// quizData maps each vowel to its ten-question quiz in ask order
var quizData = map[string][]Question{
	"a": {
		{Prompt: `Which word starts with the vowel "A"?`, Options: []string{"apple", "dog", "cat", "sun"}, Answer: "apple"},
		{Prompt: `Which word has the vowel "A" in the middle?`, Options: []string{"cap", "bed", "cup", "dog"}, Answer: "cap"},
		{Prompt: `Which word rhymes with "cat"?`, Options: []string{"bat", "dog", "sun", "cup"}, Answer: "bat"},
		{Prompt: "Which word is an animal?", Options: []string{"fan", "man", "cat", "pan"}, Answer: "cat"},
		{Prompt: "Which word is something you wear?", Options: []string{"hat", "rat", "fan", "mat"}, Answer: "hat"},
		{Prompt: "Which word is a kitchen item?", Options: []string{"pan", "cap", "cat", "man"}, Answer: "pan"},
		{Prompt: "Which word means a male adult?", Options: []string{"man", "fan", "jam", "mat"}, Answer: "man"},
		{Prompt: "Which word is a sweet food?", Options: []string{"jam", "fan", "rat", "cap"}, Answer: "jam"},
		{Prompt: "Which word is used to wipe your feet?", Options: []string{"mat", "cat", "fan", "pan"}, Answer: "mat"},
		{Prompt: "Which word is a small animal?", Options: []string{"rat", "fan", "cap", "jam"}, Answer: "rat"},
	},
	"e": {
		{Prompt: `Which word starts with the vowel "E"?`, Options: []string{"egg", "dog", "cat", "sun"}, Answer: "egg"},
		{Prompt: "Which word is a place to sleep?", Options: []string{"bed", "pen", "jet", "leg"}, Answer: "bed"},
		{Prompt: "Which word is a bird?", Options: []string{"hen", "jet", "leg", "red"}, Answer: "hen"},
		{Prompt: "Which word is a vehicle?", Options: []string{"jet", "pen", "bed", "pet"}, Answer: "jet"},
		{Prompt: "Which word is part of your body?", Options: []string{"leg", "net", "hen", "red"}, Answer: "leg"},
		{Prompt: "Which word means more than one man?", Options: []string{"men", "pen", "pet", "ten"}, Answer: "men"},
		{Prompt: "Which word is used to catch fish?", Options: []string{"net", "pet", "red", "hen"}, Answer: "net"},
		{Prompt: "Which word is used for writing?", Options: []string{"pen", "bed", "jet", "leg"}, Answer: "pen"},
		{Prompt: "Which word is a color?", Options: []string{"red", "hen", "net", "ten"}, Answer: "red"},
		{Prompt: "Which word is a number?", Options: []string{"ten", "pen", "pet", "bed"}, Answer: "ten"},
	},
	"i": {
		{Prompt: "Which word is a fruit?", Options: []string{"fig", "pig", "kid", "win"}, Answer: "fig"},
		{Prompt: "Which word is a small child?", Options: []string{"kid", "lid", "fig", "sit"}, Answer: "kid"},
		{Prompt: "Which word is a part of a container?", Options: []string{"lid", "pig", "win", "dig"}, Answer: "lid"},
		{Prompt: "Which word is a farm animal?", Options: []string{"pig", "fig", "kid", "sit"}, Answer: "pig"},
		{Prompt: "Which word is used to attach things?", Options: []string{"pin", "win", "dig", "fin"}, Answer: "pin"},
		{Prompt: "Which word means to dig in the ground?", Options: []string{"dig", "fig", "win", "sit"}, Answer: "dig"},
		{Prompt: "Which word means to sit down?", Options: []string{"sit", "win", "kid", "fig"}, Answer: "sit"},
		{Prompt: "Which word means to win a game?", Options: []string{"win", "dig", "fig", "lid"}, Answer: "win"},
		{Prompt: "Which word is a part of a fish?", Options: []string{"fin", "kid", "pig", "sit"}, Answer: "fin"},
		{Prompt: "Which word is big in size?", Options: []string{"big", "dig", "fig", "win"}, Answer: "big"},
	},
	"o": {
		{Prompt: "Which word is a pet?", Options: []string{"dog", "cop", "fog", "pot"}, Answer: "dog"},
		{Prompt: "Which word is a police officer?", Options: []string{"cop", "dog", "dot", "pop"}, Answer: "cop"},
		{Prompt: "Which word is a small round mark?", Options: []string{"dot", "fog", "hop", "log"}, Answer: "dot"},
		{Prompt: "Which word is thick mist?", Options: []string{"fog", "dog", "cop", "pot"}, Answer: "fog"},
		{Prompt: "Which word means to jump?", Options: []string{"hop", "log", "pop", "dog"}, Answer: "hop"},
		{Prompt: "Which word is a piece of wood?", Options: []string{"log", "pot", "dog", "cop"}, Answer: "log"},
		{Prompt: "Which word is used for cleaning?", Options: []string{"mop", "pop", "pot", "dog"}, Answer: "mop"},
		{Prompt: "Which word means to burst?", Options: []string{"pop", "mop", "pot", "dog"}, Answer: "pop"},
		{Prompt: "Which word is used for cooking?", Options: []string{"pot", "dog", "cop", "log"}, Answer: "pot"},
		{Prompt: "Which word is a spinning toy?", Options: []string{"top", "pot", "dog", "cop"}, Answer: "top"},
	},
	"u": {
		{Prompt: "Which word is a baked food?", Options: []string{"bun", "cup", "fun", "run"}, Answer: "bun"},
		{Prompt: "Which word is used for drinking?", Options: []string{"cup", "bun", "fun", "run"}, Answer: "cup"},
		{Prompt: "Which word means enjoyment?", Options: []string{"fun", "cup", "bun", "run"}, Answer: "fun"},
		{Prompt: "Which word means to embrace?", Options: []string{"hug", "cup", "bun", "fun"}, Answer: "hug"},
		{Prompt: "Which word is a type of mug?", Options: []string{"mug", "cup", "bun", "fun"}, Answer: "mug"},
		{Prompt: "Which word is a baby dog?", Options: []string{"pup", "cup", "bun", "fun"}, Answer: "pup"},
		{Prompt: "Which word means to move fast?", Options: []string{"run", "cup", "bun", "fun"}, Answer: "run"},
		{Prompt: "Which word is a star in the sky?", Options: []string{"sun", "cup", "bun", "fun"}, Answer: "sun"},
		{Prompt: "Which word means to pull hard?", Options: []string{"tug", "cup", "bun", "fun"}, Answer: "tug"},
		{Prompt: "Which word is a friendly gesture?", Options: []string{"hug", "cup", "bun", "fun"}, Answer: "hug"},
	},
}

// QuizFor returns the quiz questions for a vowel, reporting whether the
// vowel has a quiz.
func QuizFor(vowel string) ([]Question, bool) {
	questions, ok := quizData[vowel]
	return questions, ok
}

// TierMessage returns the end-of-quiz encouragement for a score out of total
func TierMessage(score, total int) string {
	switch {
	case score == total:
		return "Amazing! Perfect score! You're a superstar! 🌟"
	case score >= 8:
		return "Great job! You're getting really good! 👍"
	case score >= 5:
		return "Nice try! Keep practicing and you'll get even better! 😊"
	default:
		return "Don't give up! Practice makes perfect! 💪"
	}
}
