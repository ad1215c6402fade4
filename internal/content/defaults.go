package content

import "encoding/json"

// Hard-coded last-tier defaults. Every known page type gets a structurally
// valid object so page components never see a missing field.
var defaults = map[string]json.RawMessage{
	"home": json.RawMessage(`{
		"name": "Your Name",
		"title": "Software Engineer",
		"subtitle": "",
		"description": "Welcome to my corner of the internet.",
		"ctaText": "Get in touch",
		"ctaLink": "/hire"
	}`),
	"about": json.RawMessage(`{
		"heading": "About me",
		"bio": "",
		"photo": "",
		"highlights": []
	}`),
	"about-timeline": json.RawMessage(`{
		"heading": "Timeline",
		"entries": []
	}`),
	"experience": json.RawMessage(`{
		"heading": "Experience",
		"roles": []
	}`),
	"experience-page": json.RawMessage(`{
		"heading": "Experience",
		"intro": "",
		"sections": []
	}`),
	"skills": json.RawMessage(`{
		"heading": "Skills",
		"groups": []
	}`),
	"courses": json.RawMessage(`{
		"heading": "Courses",
		"courses": []
	}`),
	"life": json.RawMessage(`{
		"heading": "Life",
		"sections": []
	}`),
	"hire": json.RawMessage(`{
		"heading": "Work with me",
		"intro": "",
		"services": [],
		"contactEmail": ""
	}`),
}

// DefaultFor returns the bundled default object for pageType, or an empty
// object for page types without one.
func DefaultFor(pageType string) json.RawMessage {
	if d, ok := defaults[pageType]; ok {
		return d
	}
	return json.RawMessage(`{}`)
}
