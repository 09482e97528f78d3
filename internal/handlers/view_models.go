package handlers

import (
	"smartread/internal/models"
	"smartread/internal/phonics"
)

type LoginViewData struct {
	Title          string
	User           *models.User
	OAuthProviders []OAuthProviderView
	Error          string
	Email          string
	Success        string
}

type RegisterViewData struct {
	Title          string
	User           *models.User
	OAuthProviders []OAuthProviderView
	Error          string
	Email          string
	Name           string
	Role           string
}

type StudentLoginViewData struct {
	Title string
	User  *models.User
	Error string
	Name  string
}

type StudentRegisterViewData struct {
	Title      string
	User       *models.User
	Error      string
	Name       string
	GradeLevel string
}

type ForgotPasswordViewData struct {
	Title   string
	User    *models.User
	Success string
	Error   string
}

type ResetPasswordViewData struct {
	Title string
	User  *models.User
	Token string
	Error string
}

type StudentDashboardViewData struct {
	Title           string
	User            *models.User
	NewLessons      []models.Lesson
	ContinueLessons []models.Lesson
	Achievements    []models.Lesson
	Available       int
	InProgress      int
	Completed       int
	ChatMessages    []models.ChatMessage
	CSRFToken       string
}

type AdminDashboardViewData struct {
	Title     string
	User      *models.User
	Lessons   []models.Lesson
	Students  []models.Student
	CSRFToken string
}

type GuardianDashboardViewData struct {
	Title    string
	User     *models.User
	Students []models.Student
}

// LessonView pairs a catalogue row with its resolved attachment link
type LessonView struct {
	models.Lesson
	FileURL string
}

type LessonListViewData struct {
	Title      string
	User       *models.User
	Lessons    []LessonView
	SearchTerm string
	Difficulty string
	CanManage  bool
	CSRFToken  string
}

type LessonDetailViewData struct {
	Title     string
	User      *models.User
	Lesson    *models.Lesson
	FileURL   string
	CanManage bool
	CSRFToken string
}

type LessonEditViewData struct {
	Title     string
	User      *models.User
	Lesson    *models.Lesson
	Error     string
	CSRFToken string
}

type VowelSelectViewData struct {
	Title  string
	User   *models.User
	Vowels []string
}

type FlashcardViewData struct {
	Title         string
	User          *models.User
	Vowel         string
	Word          string
	Sentence      string
	WordAudio     string
	SentenceAudio string
	CardNumber    int
	TotalCards    int
	AtFirst       bool
	AtLast        bool
	Spelling      bool
	SpellIndex    int
}

type QuizViewData struct {
	Title          string
	User           *models.User
	Vowel          string
	Question       phonics.Question
	QuestionNumber int
	TotalQuestions int
	Selected       string
	Revealed       bool
	Correct        bool
	Score          int
}

type QuizResultsViewData struct {
	Title   string
	User    *models.User
	Vowel   string
	Score   int
	Total   int
	Message string
}

type NotFoundViewData struct {
	Title string
	User  *models.User
}
