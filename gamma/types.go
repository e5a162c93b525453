package gamma

import (
	"fmt"
	"strings"
)

// TextMode controls how the input text is transformed.
type TextMode string

const (
	TextModeGenerate TextMode = "generate"
	TextModeCondense TextMode = "condense"
	TextModePreserve TextMode = "preserve"
)

// Format selects the artifact type produced by a generation.
type Format string

const (
	FormatPresentation Format = "presentation"
	FormatDocument     Format = "document"
	FormatSocial       Format = "social"
)

// Status is the lifecycle state the service reports for a generation.
// The progression is owned by the service; clients only distinguish
// in-progress states from the two terminal ones.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusRunning    Status = "running"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Terminal reports whether the status ends the polling loop.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// InProgress reports whether the status means the generation is still being
// worked on.
func (s Status) InProgress() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusRunning:
		return true
	}
	return false
}

// TextOptions tunes the generated text.
type TextOptions struct {
	Amount   string `json:"amount,omitempty" yaml:"amount,omitempty"`
	Tone     string `json:"tone,omitempty" yaml:"tone,omitempty"`
	Audience string `json:"audience,omitempty" yaml:"audience,omitempty"`
	Language string `json:"language,omitempty" yaml:"language,omitempty"`
}

// ImageOptions tunes the images placed in the artifact.
type ImageOptions struct {
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	Model  string `json:"model,omitempty" yaml:"model,omitempty"`
	Style  string `json:"style,omitempty" yaml:"style,omitempty"`
}

// CardOptions tunes card layout.
type CardOptions struct {
	Dimensions string `json:"dimensions,omitempty" yaml:"dimensions,omitempty"`
}

// SharingOptions controls access to the finished artifact.
type SharingOptions struct {
	WorkspaceAccess string `json:"workspaceAccess,omitempty" yaml:"workspaceAccess,omitempty"`
	ExternalAccess  string `json:"externalAccess,omitempty" yaml:"externalAccess,omitempty"`
}

// GenerationRequest is the payload for creating a generation.
// InputText, TextMode and Format are required; everything else is optional
// styling and export configuration. YAML tags allow payload files in either
// format.
type GenerationRequest struct {
	InputText              string          `json:"inputText" yaml:"inputText"`
	TextMode               TextMode        `json:"textMode" yaml:"textMode"`
	Format                 Format          `json:"format" yaml:"format"`
	ThemeName              string          `json:"themeName,omitempty" yaml:"themeName,omitempty"`
	NumCards               int             `json:"numCards,omitempty" yaml:"numCards,omitempty"`
	CardSplit              string          `json:"cardSplit,omitempty" yaml:"cardSplit,omitempty"`
	AdditionalInstructions string          `json:"additionalInstructions,omitempty" yaml:"additionalInstructions,omitempty"`
	ExportAs               string          `json:"exportAs,omitempty" yaml:"exportAs,omitempty"`
	FolderIDs              []string        `json:"folderIds,omitempty" yaml:"folderIds,omitempty"`
	TextOptions            *TextOptions    `json:"textOptions,omitempty" yaml:"textOptions,omitempty"`
	ImageOptions           *ImageOptions   `json:"imageOptions,omitempty" yaml:"imageOptions,omitempty"`
	CardOptions            *CardOptions    `json:"cardOptions,omitempty" yaml:"cardOptions,omitempty"`
	SharingOptions         *SharingOptions `json:"sharingOptions,omitempty" yaml:"sharingOptions,omitempty"`
}

// Validate checks the fields the API requires on every request.
func (r *GenerationRequest) Validate() error {
	var missing []string
	if r.InputText == "" {
		missing = append(missing, "inputText")
	}
	if r.TextMode == "" {
		missing = append(missing, "textMode")
	}
	if r.Format == "" {
		missing = append(missing, "format")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}
	return nil
}

// Credits reports credit usage for a generation.
type Credits struct {
	Deducted  int `json:"deducted"`
	Remaining int `json:"remaining"`
}

// Generation is the job record returned by the status endpoint. The export
// URLs are only present once the generation has completed, and only for the
// formats that were requested.
type Generation struct {
	GenerationID string  `json:"generationId"`
	Status       Status  `json:"status"`
	GammaURL     string  `json:"gammaUrl,omitempty"`
	PDFURL       string  `json:"pdfUrl,omitempty"`
	PPTXURL      string  `json:"pptxUrl,omitempty"`
	Credits      Credits `json:"credits"`
}

// ThemeColors holds the primary palette entries of a theme.
type ThemeColors struct {
	Primary    string `json:"primary,omitempty"`
	Background string `json:"background,omitempty"`
}

// Theme is a workspace presentation theme.
type Theme struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	IsDefault bool         `json:"isDefault"`
	Colors    *ThemeColors `json:"colors,omitempty"`
}

// Folder is a workspace folder.
type Folder struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
