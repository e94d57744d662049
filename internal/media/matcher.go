package media

import (
	"fmt"
	"strings"
)

const defaultBaseURL = "/static/images/"

// Words that mark a question as being about places on campus.
var locationIndicators = []string{
	"where", "location", "place", "building", "campus",
	"room", "facility", "address", "map", "direction",
}

// Words that mark a question as being about learners.
var studentIndicators = []string{
	"student", "learner", "pupil", "scholar", "top", "best",
	"achievement", "performer", "academic", "winner", "champion",
	"olympiad", "competition", "medal", "award",
}

// Image categories.
const (
	CategoryLocation = "location"
	CategoryStudent  = "student"
)

// Image is one attachable picture with its caption.
type Image struct {
	URL      string `json:"url"`
	Caption  string `json:"caption"`
	Category string `json:"type"`
}

// Response is a text answer optionally enriched with one image.
type Response struct {
	Text      string  `json:"text"`
	HasImages bool    `json:"has_images"`
	Images    []Image `json:"images,omitempty"`
}

// Matcher resolves questions to catalog images.
type Matcher struct {
	catalog *Catalog
	baseURL string
}

// NewMatcher builds a matcher serving images under baseURL. An empty
// baseURL falls back to the static images route.
func NewMatcher(catalog *Catalog, baseURL string) *Matcher {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Matcher{catalog: catalog, baseURL: baseURL}
}

// Enhance wraps answer in a response carrying the single most relevant
// catalog image for the question, or none when nothing matches.
func (m *Matcher) Enhance(question, answer string) Response {
	images := m.Match(question)
	if len(images) == 0 {
		return Response{Text: answer}
	}
	return Response{Text: answer, HasImages: true, Images: images[:1]}
}

// Match returns every catalog image relevant to the question, location
// matches before student matches. The question must contain an
// indicator word for its category to be searched at all.
func (m *Matcher) Match(question string) []Image {
	q := strings.ToLower(question)

	var images []Image
	if containsAny(q, locationIndicators) {
		for _, loc := range m.catalog.Locations {
			if strings.Contains(q, strings.ToLower(loc.Name)) || containsAny(q, loc.Keywords) {
				images = append(images, Image{
					URL:      m.baseURL + loc.Image,
					Caption:  fmt.Sprintf("%s - %s", loc.Name, loc.Description),
					Category: CategoryLocation,
				})
			}
		}
	}
	if containsAny(q, studentIndicators) {
		for _, s := range m.catalog.Students {
			if strings.Contains(q, strings.ToLower(s.Name)) || containsAny(q, s.Keywords) {
				images = append(images, Image{
					URL:      m.baseURL + s.Image,
					Caption:  fmt.Sprintf("%s (%s) - %s", s.Name, s.Grade, s.Achievement),
					Category: CategoryStudent,
				})
			}
		}
	}
	return images
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
