package vision

import (
	"fmt"
	"strings"
)

// MatchMode selects how a batch prompt is built.
type MatchMode string

const (
	ModeFace MatchMode = "face" // reference image present
	ModeText MatchMode = "text" // text query only
	ModeNone MatchMode = "none" // no criterion, degenerate
)

// PhotoRef is one candidate photo attached to a batch request.
type PhotoRef struct {
	ID  string
	URL string
}

// MatchRequest describes one batch sent to the vision gateway. When both
// ReferenceImage and Query are set the image wins and the query is ignored.
type MatchRequest struct {
	Query          string
	ReferenceImage string // data-URL or base64 image payload
	Photos         []PhotoRef
}

// Mode returns the effective matching mode of the request.
func (r *MatchRequest) Mode() MatchMode {
	if strings.TrimSpace(r.ReferenceImage) != "" {
		return ModeFace
	}
	if strings.TrimSpace(r.Query) != "" {
		return ModeText
	}
	return ModeNone
}

const faceSystemPrompt = `You are a photo search assistant that performs face matching. ` +
	`Compare the facial structure of the person in the reference image against every candidate photo. ` +
	`Ignore clothing, hairstyle, background and lighting; judge only by facial features. ` +
	`Return every photo that contains the same person, and only include photos you are highly confident about. ` +
	`Respond with nothing but a JSON object of the form {"matchedIds": ["id1", "id2"]}. ` +
	`If no photo matches, respond with {"matchedIds": []}.`

const textSystemPrompt = `You are a photo search assistant. ` +
	`Match the visual content of each candidate photo (people, objects, colors, actions, scene) against the user's description. ` +
	`Respond with nothing but a JSON object of the form {"matchedIds": ["id1", "id2"]}. ` +
	`If no photo matches, respond with {"matchedIds": []}.`

// Chat-completions wire types

type chatMessage struct {
	Role    string      `json:"role"`
	Content interface{} `json:"content"` // string or []contentPart
}

type contentPart struct {
	Type     string    `json:"type"` // text | image_url
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL    string `json:"url"`
	Detail string `json:"detail,omitempty"`
}

// buildMessages composes the role-tagged message list for one batch.
func buildMessages(req *MatchRequest) []chatMessage {
	mode := req.Mode()

	// High fidelity keeps facial features legible; text matching gets by
	// with the gateway default.
	detail := ""
	if mode == ModeFace {
		detail = "high"
	}

	messages := make([]chatMessage, 0, len(req.Photos)+2)

	switch mode {
	case ModeFace:
		messages = append(messages, chatMessage{Role: "system", Content: faceSystemPrompt})
		messages = append(messages, chatMessage{
			Role: "user",
			Content: []contentPart{
				{Type: "text", Text: "Reference image of the person to find:"},
				{Type: "image_url", ImageURL: &imageURL{URL: req.ReferenceImage, Detail: detail}},
			},
		})
	case ModeText:
		ids := make([]string, len(req.Photos))
		for i, p := range req.Photos {
			ids[i] = p.ID
		}
		messages = append(messages, chatMessage{Role: "system", Content: textSystemPrompt})
		messages = append(messages, chatMessage{
			Role:    "user",
			Content: fmt.Sprintf("Find photos matching: %s\n\nAvailable IDs: %s", req.Query, strings.Join(ids, ", ")),
		})
	default:
		// No criterion attached; the model has nothing to match against.
		messages = append(messages, chatMessage{Role: "system", Content: textSystemPrompt})
	}

	for _, photo := range req.Photos {
		messages = append(messages, chatMessage{
			Role: "user",
			Content: []contentPart{
				{Type: "text", Text: "Photo ID: " + photo.ID},
				{Type: "image_url", ImageURL: &imageURL{URL: photo.URL, Detail: detail}},
			},
		})
	}

	return messages
}
