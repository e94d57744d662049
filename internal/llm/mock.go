package llm

import (
	"context"
	"strings"
)

// NoInfoAnswer is the mock backend's fixed response when no table entry
// matches the question.
const NoInfoAnswer = "**I don't have enough information**\n\n" +
	"I'm sorry, but I don't have enough information in my database to answer that question about Star College Durban.\n\n" +
	"For more specific information, you might want to:\n\n" +
	"• Visit the official Star College Durban website\n" +
	"• Contact the school directly at +27 31 262 71 91\n" +
	"• Email them at starcollege@starcollege.co.za"

type mockEntry struct {
	question string
	answer   string
}

// mockAnswers pairs lowercased questions with canned answers. The table is
// deliberately small; the mock backend exists to keep the system answering
// when no real backend is available, not to be the primary behavior. Order
// matters: substring matching returns the first entry that overlaps the
// question, so repeated asks always get the same answer.
var mockAnswers = []mockEntry{
	{"what is star college durban", "**About Star College Durban**\n\n" +
		"Star College Durban is an Independent, English Medium School established by Horizon Educational Trust.\n\n" +
		"The school follows the curriculum from the Department of Education and focuses on academic excellence, particularly in:\n\n" +
		"• Mathematics\n• Science\n• Computer Technology\n\n" +
		"Star College aims to be academically strong, producing excellent results in the National Matric exams as well as National and International Mathematics, Science and Computer Olympiads."},

	{"what is the mission of star college", "**Mission of Star College**\n\n" +
		"The mission of Star College is to enable all students to become the best possible version of themselves.\n\n" +
		"The school strives to create an environment where children develop into:\n\n" +
		"• Empathetic individuals\n• Self-directed learners\n• Critical thinkers who persevere when faced with challenges\n\n" +
		"Additionally, they aim to be academically strong and produce excellent results in various national and international exams and competitions."},

	{"where is star college located", "**Location**\n\n" +
		"Star College Durban is located at:\n\n" +
		"20 Kinloch Avenue\nWestville North 3630\nDurban, South Africa"},

	{"how can i contact star college", "**Contact Information**\n\n" +
		"You can reach Star College Durban through the following channels:\n\n" +
		"**Phone Number:**\n+27 31 262 71 91\n\n" +
		"**Email:**\nstarcollege@starcollege.co.za\n\n" +
		"**Social Media:**\nThe school also maintains a presence on various platforms including Facebook, Instagram, Twitter, LinkedIn, and YouTube."},

	{"what programs does star college offer", "**Educational Programs**\n\n" +
		"Star College offers a comprehensive education system that includes:\n\n" +
		"• **Primary Education:** Little Dolphin Star and Pre-Primary School\n" +
		"• **Secondary Education:** Separate high schools for boys and girls\n\n" +
		"All programs follow the curriculum from the Department of Education in South Africa, providing students with a strong academic foundation."},
}

// MockProvider answers from a static question/answer table. It is always
// initialized and never fails, which is what makes it a safe failover
// target for every other backend.
type MockProvider struct{}

// NewMockProvider creates the deterministic mock backend.
func NewMockProvider() *MockProvider { return &MockProvider{} }

func (p *MockProvider) Kind() Kind { return KindMock }

func (p *MockProvider) Initialize() bool { return true }

// Generate looks the question up in the answer table: exact match first,
// then substring overlap in either direction, then the fixed
// insufficient-information response. The supplied context is ignored.
func (p *MockProvider) Generate(_ context.Context, question string, _ []string) (string, error) {
	q := strings.ToLower(strings.TrimSpace(question))
	if q == "" {
		return NoInfoAnswer, nil
	}

	for _, e := range mockAnswers {
		if e.question == q {
			return e.answer, nil
		}
	}

	for _, e := range mockAnswers {
		if strings.Contains(e.question, q) || strings.Contains(q, e.question) {
			return e.answer, nil
		}
	}

	return NoInfoAnswer, nil
}
