package service

import (
	"fmt"
	"strings"

	"smartread/internal/models"
	"smartread/internal/repository"
)

// ChatCounts carries the live dashboard numbers the assistant can quote
type ChatCounts struct {
	Available  int
	InProgress int
	Completed  int
}

// chatRule pairs a match predicate with a reply. Rules are checked in
// order and the first match wins, so narrower rules must come before
// broader ones (e.g. "lesson"+"progress" before bare "lesson").
type chatRule struct {
	match func(msg string) bool
	reply func(c ChatCounts) string
}

func contains(subs ...string) func(string) bool {
	return func(msg string) bool {
		for _, sub := range subs {
			if !strings.Contains(msg, sub) {
				return false
			}
		}
		return true
	}
}

func anyOf(matchers ...func(string) bool) func(string) bool {
	return func(msg string) bool {
		for _, m := range matchers {
			if m(msg) {
				return true
			}
		}
		return false
	}
}

func text(s string) func(ChatCounts) string {
	return func(ChatCounts) string { return s }
}

const chatFallback = "Sorry, I don't understand. Try asking about lessons, achievements, dashboard features, or how to use SmartRead!"

// ChatGreeting opens every new transcript
const ChatGreeting = "Hi! How can I help you today?"

var chatRules = []chatRule{
	// Greetings & small talk
	{anyOf(contains("hello"), contains("hi")), text("Hello! How can I help you today?")},
	{contains("good morning"), text("Good morning! Ready to learn something new?")},
	{contains("good afternoon"), text("Good afternoon! How can I assist you?")},
	{contains("good evening"), text("Good evening! Need help with your lessons?")},
	{contains("bye"), text("Goodbye! Have a great day!")},
	{contains("how are you"), text("I'm here to help you learn!")},

	// Help & about
	{contains("help"), text("You can ask me about lessons, achievements, dashboard features, or how to use SmartRead!")},
	{contains("what can you do"), text("I can answer questions about your lessons, achievements, and how to use this dashboard.")},
	{contains("who are you"), text("I'm your SmartRead assistant, here to help you learn!")},
	{contains("what is smartread"), text("SmartRead is an interactive platform to help you improve your reading skills.")},

	// Lessons
	{contains("how do i start a lesson"), text("Click on any lesson card in the dashboard to start.")},
	{contains("how do i continue a lesson"), text("Go to the 'Continue Learning' section and click your lesson.")},
	{contains("how do i complete a lesson"), text("Finish all activities in a lesson to complete it.")},
	{contains("how many lessons"), func(c ChatCounts) string {
		return fmt.Sprintf("There are currently %d lessons available.", c.Available)
	}},
	{contains("what are new lessons"), text("New lessons are shown in the 'New Lessons' section.")},
	{contains("what are recent lessons"), text("Recent lessons are displayed in the 'New Lessons' section.")},
	{contains("what is a lesson"), text("A lesson is a set of reading activities to help you learn.")},
	{contains("lesson", "progress"), text("Lessons in progress are shown in the 'Continue Learning' section.")},
	{contains("lesson", "complete"), text("Completed lessons appear in your Achievements section.")},
	{contains("lesson", "start"), text("To start a lesson, click on any lesson card in the dashboard.")},
	{contains("lesson", "difficulty"), text("Each lesson has a difficulty: easy, medium, or hard.")},
	{contains("lesson", "description"), text("Each lesson card shows a short description of the lesson.")},
	{contains("lesson", "author"), text("The lesson card shows who uploaded the lesson.")},
	{contains("lesson", "vowel"), text("You can practice vowels by clicking the 'Vowel Lessons' card in the New Lessons section.")},
	{contains("vowel"), text("Vowel Lessons help you practice A, E, I, O, U with words and pictures.")},
	{contains("can i repeat a lesson"), text("Yes, you can repeat any lesson as many times as you like.")},
	{contains("can i skip a lesson"), text("You can choose which lessons to start or skip.")},
	{contains("lesson", "available"), func(c ChatCounts) string {
		return fmt.Sprintf("There are %d available lessons.", c.Available)
	}},
	{contains("lesson", "in progress"), func(c ChatCounts) string {
		return fmt.Sprintf("You have %d lessons in progress.", c.InProgress)
	}},
	{contains("lesson", "completed"), func(c ChatCounts) string {
		return fmt.Sprintf("You have completed %d lessons.", c.Completed)
	}},
	{contains("lesson", "how long"), text("Lesson length varies, but most take about 10-20 minutes.")},
	{contains("lesson", "photo"), text("Some lessons include photos to help you learn.")},
	{contains("lesson", "word"), text("Lessons help you learn new words and their meanings.")},
	{contains("lesson", "content"), text("Lesson content includes reading passages, questions, and activities.")},
	{contains("lesson", "file"), text("Some lessons may have downloadable files.")},
	{contains("lesson", "created"), text("Each lesson shows when it was created.")},
	{contains("lesson", "uploaded"), text("Each lesson shows who uploaded it.")},
	{contains("lesson", "title"), text("The lesson title is shown at the top of each lesson card.")},
	{contains("lesson", "card"), text("Lesson cards show the title, description, difficulty, and author.")},
	{contains("lesson", "section"), text("Lessons are organized in sections on your dashboard.")},
	{contains("lesson", "view all"), text("Click 'View All' to see all available lessons.")},
	{contains("lesson", "grid"), text("Lessons are displayed in a grid for easy browsing.")},
	{contains("lesson", "shadow"), text("Lesson cards have a shadow effect when you hover over them.")},
	{contains("lesson", "hover"), text("Hover over a lesson card to see a visual effect.")},
	{contains("lesson", "transition"), text("Lesson cards have a smooth transition effect on hover.")},
	{contains("lesson", "color"), text("Lesson cards use different colors for difficulty levels.")},
	{contains("lesson", "easy"), text("Easy lessons are marked with a green label.")},
	{contains("lesson", "medium"), text("Medium lessons are marked with a yellow label.")},
	{contains("lesson", "hard"), text("Hard lessons are marked with a red label.")},
	{contains("lesson", "practice"), text("You can practice lessons as many times as you want.")},
	{contains("lesson", "activity"), text("Lessons may include reading, writing, or quiz activities.")},
	{contains("lesson", "quiz"), text("Some lessons include quizzes to test your understanding.")},
	{contains("lesson", "score"), text("You may receive a score after completing a quiz.")},
	{contains("lesson", "feedback"), text("Some lessons provide feedback after completion.")},
	{contains("lesson", "review"), text("You can review completed lessons anytime.")},
	{contains("lesson", "summary"), text("Lesson summaries are shown at the end of each lesson.")},
	{contains("lesson", "restart"), text("You can restart any lesson from the beginning.")},
	{contains("lesson", "progress bar"), text("The progress bar shows how much of the lesson you've completed.")},
	{contains("lesson", "percentage"), text("The percentage shows your completion progress for each lesson.")},
	{contains("lesson", "continue"), text("Continue your lessons from the 'Continue Learning' section.")},
	{contains("lesson", "stop"), text("You can stop a lesson anytime and continue later.")},
	{contains("lesson", "resume"), text("Resume lessons from where you left off in 'Continue Learning'.")},
	{contains("lesson", "history"), text("Your lesson history is shown in the dashboard sections.")},
	{contains("lesson", "list"), text("Lessons are listed in the dashboard for easy access.")},
	{contains("lesson", "filter"), text("Currently, lessons are organized by recency and progress.")},
	{contains("lesson", "sort"), text("Lessons are sorted by newest first in the 'New Lessons' section.")},
	{contains("lesson", "search"), text("Use the dashboard to browse lessons. Search may be added soon.")},
	{contains("lesson", "recommend"), text("Try the 'Vowel Lessons' or the newest lessons to get started.")},
	{contains("lesson", "favorite"), text("You can revisit any lesson you like as often as you want.")},
	{contains("lesson", "bookmark"), text("Bookmarking lessons is not available yet.")},
	{contains("lesson", "share"), text("Sharing lessons is not available yet.")},
	{contains("lesson", "download"), text("Some lessons may have files you can download.")},
	{contains("lesson", "upload"), text("Only teachers can upload new lessons.")},
	{contains("lesson", "teacher"), text("Lessons are created and uploaded by teachers.")},
	{contains("lesson", "student"), text("Students can view, start, and complete lessons.")},
	{contains("lesson", "dashboard"), text("Your dashboard shows all your lesson activity.")},
	{contains("lesson", "achievement"), text("Complete lessons to earn achievements!")},
	{contains("lesson", "award"), text("Awards are given for completing lessons.")},
	{contains("lesson", "badge"), text("Badges are earned by completing lessons and achievements.")},

	// Achievements
	{contains("achievement", "how"), text("Earn achievements by completing lessons.")},
	{contains("achievement", "what"), text("Achievements are rewards for completing lessons.")},
	{contains("achievement", "see"), text("View your achievements in the Achievements section.")},
	{contains("achievement", "list"), text("Achievements are listed in the Achievements section.")},
	{contains("achievement", "count"), func(c ChatCounts) string {
		return fmt.Sprintf("You have earned %d achievements.", c.Completed)
	}},
	{contains("achievement", "progress"), text("Your achievement progress is shown in the Achievements section.")},
	{contains("achievement", "future"), text("More achievements will be added soon!")},
	{contains("achievement", "pro"), text("The 'Reading Pro' achievement is coming soon!")},
	{anyOf(contains("badge"), contains("award")), text("Badges and awards are displayed in the Achievements section after you complete lessons.")},
	{contains("how many achievements"), func(c ChatCounts) string {
		return fmt.Sprintf("You have earned %d achievements so far.", c.Completed)
	}},
	{contains("can i lose achievements"), text("No, once you earn an achievement, it's yours to keep.")},
	{contains("can i earn achievements again"), text("Each achievement can only be earned once.")},
	{contains("what is reading pro"), text("Reading Pro is a special achievement for advanced learners (coming soon).")},
	{contains("how do i get badges"), text("Earn badges by completing lessons and achievements.")},
	{contains("what are awards"), text("Awards are special recognitions for your learning progress.")},

	// Navigation & dashboard
	{contains("where", "lessons"), text("You can find all lessons by clicking 'View All' in the New Lessons or Continue Learning sections.")},
	{contains("where", "achievements"), text("Achievements are shown in the Achievements section of your dashboard.")},
	{contains("where", "progress"), text("Your progress is shown at the top of the dashboard.")},
	{contains("where", "dashboard"), text("You are on the dashboard now!")},
	{contains("dashboard"), text("The dashboard shows your progress, available lessons, and achievements.")},
	{contains("how to use dashboard"), text("Use the dashboard to view your lessons, progress, and achievements.")},
	{contains("what is dashboard"), text("The dashboard is your main page for tracking learning progress.")},
	{contains("how do i navigate"), text("Use the dashboard sections and navigation links to explore SmartRead.")},
	{contains("where is continue learning"), text("The 'Continue Learning' section is near the top of your dashboard.")},
	{contains("where is new lessons"), text("The 'New Lessons' section is below 'Continue Learning' on your dashboard.")},
	{contains("where is achievements"), text("The Achievements section is near the bottom of your dashboard.")},
	{contains("how do i go back"), text("Use your browser's back button or dashboard navigation links.")},
	{contains("how do i log out"), text("Use the menu or profile section to log out.")},
	{contains("how do i change my name"), text("Profile editing is not available yet.")},
	{contains("how do i change my password"), text("Password changes are managed in your account settings.")},

	// Progress
	{contains("progress", "how"), text("Your progress is tracked automatically as you complete lessons.")},
	{contains("progress", "see"), text("See your progress at the top of the dashboard.")},
	{contains("progress", "bar"), text("The progress bar shows your lesson completion.")},
	{contains("progress", "percentage"), text("The percentage shows how much of a lesson you've completed.")},
	{contains("progress", "total"), func(c ChatCounts) string {
		return fmt.Sprintf("You have completed %d out of %d lessons.", c.Completed, c.Available)
	}},
	{contains("progress", "reset"), text("Progress cannot be reset at this time.")},
	{contains("progress", "history"), text("Your progress history is shown in the dashboard sections.")},
	{contains("progress", "update"), text("Progress updates automatically as you work.")},
	{contains("progress", "track"), text("SmartRead tracks your lesson and achievement progress.")},
	{anyOf(contains("how am i doing"), contains("my progress")), func(c ChatCounts) string {
		return fmt.Sprintf("You have completed %d lessons and have %d in progress.", c.Completed, c.InProgress)
	}},

	// Features & AI chat
	{contains("ai chat"), text("The AI Chat helps answer your questions about SmartRead. Click the chat icon to start!")},
	{contains("can you help me"), text("Yes! Ask me anything about SmartRead, lessons, or your progress.")},
	{contains("can you recommend a lesson"), text("Try the newest lessons or the Vowel Lessons to get started!")},
	{contains("can you explain achievements"), text("Achievements are earned by completing lessons.")},
	{contains("can you explain dashboard"), text("The dashboard shows your learning progress and available lessons.")},
	{contains("can you explain progress"), text("Progress shows how many lessons you've completed and your achievements.")},
	{contains("can you explain new lessons"), text("New Lessons are the latest lessons added to SmartRead.")},
	{contains("can you explain continue learning"), text("Continue Learning shows lessons you started but haven't finished.")},
	{contains("can you explain vowel lessons"), text("Vowel Lessons help you practice A, E, I, O, U.")},
	{contains("can you explain lesson cards"), text("Lesson cards show the title, description, difficulty, and author.")},
	{contains("can you explain lesson difficulty"), text("Lessons are labeled easy, medium, or hard.")},
	{contains("can you explain lesson progress"), text("Lesson progress shows how much of a lesson you've finished.")},
	{contains("can you explain lesson achievements"), text("Complete lessons to earn achievements and badges.")},

	// Fun & misc
	{contains("tell me a joke"), text("Why did the student eat his homework? Because the teacher said it was a piece of cake!")},
	{contains("motivate me"), text("Keep going! Every lesson completed is a step closer to your reading goals!")},
	{contains("inspire me"), text("Learning is a treasure that will follow its owner everywhere.")},
	{contains("thank you"), text("You're welcome! Happy learning!")},
	{contains("thanks"), text("Glad to help!")},
}

// Reply computes the assistant's deterministic response to a message
func Reply(message string, counts ChatCounts) string {
	msg := strings.ToLower(message)
	for _, rule := range chatRules {
		if rule.match(msg) {
			return rule.reply(counts)
		}
	}
	return chatFallback
}

// ChatService handles the dashboard assistant: deterministic replies
// plus a persisted per-user transcript.
type ChatService struct {
	chatRepo *repository.ChatRepository
}

// NewChatService creates a new chat service
func NewChatService(chatRepo *repository.ChatRepository) *ChatService {
	return &ChatService{chatRepo: chatRepo}
}

// Send stores the user's message, computes the reply, stores it, and
// returns it.
func (s *ChatService) Send(userID int64, message string, counts ChatCounts) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", nil
	}

	if _, err := s.chatRepo.AppendMessage(userID, models.ChatSenderUser, message); err != nil {
		return "", err
	}

	reply := Reply(message, counts)

	if _, err := s.chatRepo.AppendMessage(userID, models.ChatSenderBot, reply); err != nil {
		return "", err
	}

	return reply, nil
}

// History returns the user's transcript, prefixed with the greeting
// every conversation opens with.
func (s *ChatService) History(userID int64) ([]models.ChatMessage, error) {
	messages, err := s.chatRepo.ListMessagesForUser(userID)
	if err != nil {
		return nil, err
	}

	greeting := models.ChatMessage{
		UserID: userID,
		Sender: models.ChatSenderBot,
		Text:   ChatGreeting,
	}
	return append([]models.ChatMessage{greeting}, messages...), nil
}
