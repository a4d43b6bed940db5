package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/genai"
	"visionstage-backend/internal/imaging"
)

const DefaultModel = "gemini-2.5-flash-image"

var (
	ErrMissingAPIKey = errors.New("GEMINI_API_KEY is not configured")
	ErrNoImage       = errors.New("no image data returned from AI")
)

// StrictRequirements is appended to every instruction. Callers cannot turn
// these off.
const StrictRequirements = `Strict Requirements:
1. The output must be a single hyper-realistic photo optimized for high-end real estate marketing.
2. Maintain strict visual consistency with the established brand aesthetic defined in the prompt.
3. If the room has clutter or existing furniture, virtually de-clutter it first before applying the new staging.
4. Do not change architectural elements: Windows, doors, structural walls, and fireplace shapes must remain identical to the original image.
5. Ensure professional architectural photography lighting (HDR look, soft shadows, warm highlights).`

type Options struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	genai   *genai.Client
	model   string
	initErr error
}

// NewClient builds a Gemini client. Without an API key the client is still
// returned, but Ready reports ErrMissingAPIKey and nothing is sent.
func NewClient(ctx context.Context, opts Options) *Client {
	c := &Client{model: opts.Model}
	if c.model == "" {
		c.model = DefaultModel
	}
	if opts.APIKey == "" {
		c.initErr = ErrMissingAPIKey
		return c
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	cfg := &genai.ClientConfig{
		APIKey:     opts.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: timeout},
	}
	if opts.BaseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		c.initErr = fmt.Errorf("failed to create GenAI client: %w", err)
		return c
	}
	c.genai = client
	return c
}

// Ready reports configuration problems without touching the network.
func (c *Client) Ready() error {
	return c.initErr
}

func (c *Client) Model() string {
	return c.model
}

// Instruction is the full text sent alongside the source photo.
func Instruction(prompt string) string {
	return prompt + ". \n\n" + StrictRequirements
}

// StageRoom sends the source photo and instruction and returns the first
// inline image in the response.
func (c *Client) StageRoom(ctx context.Context, src imaging.EncodedImage, prompt string) (imaging.EncodedImage, error) {
	if err := c.Ready(); err != nil {
		return imaging.EncodedImage{}, err
	}

	mime := src.MIMEType
	if mime == "" {
		mime = "image/jpeg"
	}
	parts := []*genai.Part{
		genai.NewPartFromBytes(src.Data, mime),
		genai.NewPartFromText(Instruction(prompt)),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := c.genai.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return imaging.EncodedImage{}, fmt.Errorf("failed to generate staged image: %w", err)
	}

	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return imaging.EncodedImage{
					MIMEType: part.InlineData.MIMEType,
					Data:     part.InlineData.Data,
				}, nil
			}
		}
	}

	return imaging.EncodedImage{}, ErrNoImage
}
