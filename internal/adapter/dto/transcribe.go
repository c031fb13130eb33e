package dto

import "github.com/MeritX-US/meritx-intake/internal/domain/entities"

// TranscribeRequest carries the optional form fields accompanying the audio
// upload. The language set mirrors the client's selector; "auto" asks the
// backend to detect the language.
type TranscribeRequest struct {
	Language string `form:"language" validate:"omitempty,oneof=auto en zh es fr de ja ko pt vi hi ru"`
}

// TranscribeResponse wraps the canonical transcript returned to the client.
type TranscribeResponse struct {
	Transcript *entities.Transcript `json:"transcript"`
}
