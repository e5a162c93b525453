package gamma

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// generationsPath is the API endpoint for generations.
const generationsPath = "/generations"

// CreateGeneration submits a generation request and returns the generation ID.
func (c *Client) CreateGeneration(ctx context.Context, req *GenerationRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	var resp struct {
		GenerationID string `json:"generationId"`
	}
	if err := c.do(ctx, http.MethodPost, generationsPath, req, &resp); err != nil {
		return "", err
	}
	return resp.GenerationID, nil
}

// GetGeneration retrieves the current status and results of a generation.
func (c *Client) GetGeneration(ctx context.Context, id string) (*Generation, error) {
	var gen Generation
	if err := c.do(ctx, http.MethodGet, generationsPath+"/"+id, nil, &gen); err != nil {
		return nil, err
	}
	return &gen, nil
}

// WaitForGeneration polls a generation at the configured fixed interval until
// it reaches a terminal status. It returns on the first terminal status
// observed, fails with ErrTimeout once the total elapsed time exceeds the
// configured wait bound, and aborts early when ctx is cancelled. Every
// observed status is reported through the status hook.
func (c *Client) WaitForGeneration(ctx context.Context, id string) (*Generation, error) {
	start := time.Now()

	for {
		elapsed := time.Since(start)
		if elapsed > c.config.MaxWait {
			return nil, fmt.Errorf("%w within %s", ErrTimeout, c.config.MaxWait)
		}

		gen, err := c.GetGeneration(ctx, id)
		if err != nil {
			return nil, err
		}

		if c.config.OnStatus != nil {
			c.config.OnStatus(StatusEvent{
				GenerationID: id,
				Status:       gen.Status,
				Elapsed:      elapsed,
			})
		}

		switch {
		case gen.Status == StatusCompleted:
			return gen, nil
		case gen.Status == StatusFailed:
			return nil, fmt.Errorf("%w: generation %s", ErrGenerationFailed, id)
		case gen.Status.InProgress():
			// Fall through to the wait below.
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, gen.Status)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.config.PollInterval):
		}
	}
}

// GenerateAndWait submits a generation request and blocks until it completes,
// fails, or times out.
func (c *Client) GenerateAndWait(ctx context.Context, req *GenerationRequest) (*Generation, error) {
	id, err := c.CreateGeneration(ctx, req)
	if err != nil {
		return nil, err
	}
	return c.WaitForGeneration(ctx, id)
}
