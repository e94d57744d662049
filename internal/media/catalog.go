// Package media attaches catalogued images to chat answers. A JSON
// catalog describes campus locations and notable students, and the
// matcher picks the entry most relevant to a question.
package media

import (
	"encoding/json"
	"log"
	"os"
)

// Location is a campus place with a photo.
type Location struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Keywords    []string `json:"keywords"`
}

// Student is a notable learner with a photo.
type Student struct {
	Name        string   `json:"name"`
	Grade       string   `json:"grade"`
	Achievement string   `json:"achievement"`
	Image       string   `json:"image"`
	Keywords    []string `json:"keywords"`
}

// Catalog holds every image entry known to the bot.
type Catalog struct {
	Locations []Location `json:"locations"`
	Students  []Student  `json:"students"`
}

// LoadCatalog reads the catalog at path. A missing or unreadable file
// yields an empty catalog so the bot keeps answering in plain text.
func LoadCatalog(path string) *Catalog {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("media: image catalog unavailable at %s: %v", path, err)
		return &Catalog{}
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		log.Printf("media: parse image catalog %s: %v", path, err)
		return &Catalog{}
	}
	log.Printf("media: loaded image catalog with %d locations and %d students",
		len(c.Locations), len(c.Students))
	return &c
}
