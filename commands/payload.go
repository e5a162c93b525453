package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"gamma-cli/gamma"
)

// stdinHasData reports whether stdin is connected to a pipe or file rather
// than a terminal.
func stdinHasData() bool {
	return !term.IsTerminal(int(os.Stdin.Fd()))
}

// loadPayloadFile loads a generation request from a JSON or YAML file,
// chosen by extension.
func loadPayloadFile(path string) (*gamma.GenerationRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open payload file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return decodePayload(f, true)
	default:
		return decodePayload(f, false)
	}
}

// decodePayload parses a generation request from r.
func decodePayload(r io.Reader, isYAML bool) (*gamma.GenerationRequest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}

	var req gamma.GenerationRequest
	if isYAML {
		if err := yaml.Unmarshal(data, &req); err != nil {
			return nil, fmt.Errorf("invalid YAML payload: %w", err)
		}
	} else {
		if err := json.Unmarshal(data, &req); err != nil {
			return nil, fmt.Errorf("invalid JSON payload: %w", err)
		}
	}
	return &req, nil
}

// exampleRequest returns the built-in example payload.
func exampleRequest() *gamma.GenerationRequest {
	return &gamma.GenerationRequest{
		InputText: "The future of renewable energy: solar, wind, and battery storage",
		TextMode:  gamma.TextModeGenerate,
		Format:    gamma.FormatPresentation,
		NumCards:  10,
		TextOptions: &gamma.TextOptions{
			Amount:   "detailed",
			Tone:     "professional, optimistic",
			Audience: "business leaders and investors",
		},
		ImageOptions: &gamma.ImageOptions{
			Source: "aiGenerated",
			Style:  "photorealistic, modern",
		},
	}
}
