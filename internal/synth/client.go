package synth

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"muse/internal/catalog"
)

const (
	QualityStandard = "standard"
	QualityPremium  = "premium"

	// DefaultCount is the batch size when the request omits a count.
	DefaultCount = 4
)

// Request describes one synthesis call.
type Request struct {
	Prompt      string
	AspectRatio string
	Count       int
	Quality     string
}

// Image is a single generated artwork. Immutable once created; ids are
// unique within a session (time-based plus sequence).
type Image struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	Prompt string `json:"prompt"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Options configures the synthesis client.
type Options struct {
	APIKey        string
	BaseURL       string
	StandardModel string
	PremiumModel  string
	HTTPClient    *http.Client
	Logger        zerolog.Logger
}

// Client wraps the Gemini generateContent endpoint. Its contract is stricter
// than the upstream API's: Generate always returns exactly the requested
// number of images and never an error. Missing credentials, per-image
// failures, and total outages all degrade to the deterministic gallery pool,
// with the origin recorded only in logs.
type Client struct {
	apiKey        string
	baseURL       string
	standardModel string
	premiumModel  string
	httpClient    *http.Client
	logger        zerolog.Logger
	callCount     atomic.Int64
	seq           atomic.Int64
	pool          []catalog.GalleryItem
}

// nextID mints a time-based id with a monotonic sequence so ids stay unique
// even when two batches land in the same millisecond.
func (c *Client) nextID(stamp int64) string {
	return fmt.Sprintf("gen-%d-%d", stamp, c.seq.Add(1))
}

func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com/v1beta"
	}
	standard := opts.StandardModel
	if standard == "" {
		standard = "gemini-2.5-flash-image"
	}
	premium := opts.PremiumModel
	if premium == "" {
		premium = "gemini-3-pro-image-preview"
	}
	return &Client{
		apiKey:        strings.TrimSpace(opts.APIKey),
		baseURL:       baseURL,
		standardModel: standard,
		premiumModel:  premium,
		httpClient:    httpClient,
		logger:        opts.Logger,
		pool:          catalog.GalleryItems,
	}
}

// Configured reports whether a service credential is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

func (c *Client) model(quality string) string {
	if quality == QualityPremium {
		return c.premiumModel
	}
	return c.standardModel
}

// Generate produces exactly req.Count images, never fewer and never an
// error. Recovery is layered: per-image fallback, batch-level fallback when
// the loop yields nothing, and a top-level recover so that even an
// unexpected panic still returns a full batch.
func (c *Client) Generate(ctx context.Context, req Request) (images []Image) {
	count := req.Count
	if count <= 0 {
		count = DefaultCount
	}
	aspect := catalog.AspectOrDefault(req.AspectRatio)

	defer func() {
		if r := recover(); r != nil {
			c.logger.Error().Interface("panic", r).Msg("synth: generation panicked; serving fallback batch")
			images = c.fallbackBatch(req.Prompt, count, aspect)
		}
	}()

	if !c.Configured() {
		c.logger.Warn().Msg("synth: no API key configured; serving gallery fallback images")
		return c.fallbackBatch(req.Prompt, count, aspect)
	}

	model := c.model(req.Quality)
	batchStamp := time.Now().UnixMilli()
	for i := 0; i < count; i++ {
		img, err := c.generateOne(ctx, model, req, aspect)
		if err != nil {
			c.logger.Warn().Err(err).Int("index", i).Str("model", model).
				Msg("synth: image generation failed; substituting fallback")
			images = append(images, c.fallbackAt(req.Prompt, i, batchStamp, aspect))
			continue
		}
		img.ID = c.nextID(batchStamp)
		images = append(images, img)
	}

	if len(images) == 0 {
		c.logger.Warn().Str("model", model).Msg("synth: batch produced no images; serving fallback batch")
		return c.fallbackBatch(req.Prompt, count, aspect)
	}

	c.logger.Debug().Int("count", len(images)).Str("model", model).Msg("synth: batch complete")
	return images
}

func (c *Client) generateOne(ctx context.Context, model string, req Request, aspect catalog.AspectRatio) (Image, error) {
	payload := generateContentRequest{
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: req.Prompt}},
		}},
		GenerationConfig: &generationConfig{
			ResponseModalities: []string{"IMAGE"},
			ImageConfig:        &imageConfig{AspectRatio: aspect.ID},
		},
	}
	if req.Quality == QualityPremium {
		payload.GenerationConfig.ImageConfig.ImageSize = "2K"
	}

	var response generateContentResponse
	if err := c.invoke(ctx, fmt.Sprintf("/models/%s:generateContent", url.PathEscape(model)), payload, &response); err != nil {
		return Image{}, err
	}

	for _, candidate := range response.Candidates {
		for _, p := range candidate.Content.Parts {
			if p.InlineData == nil || p.InlineData.Data == "" {
				continue
			}
			if !strings.HasPrefix(p.InlineData.MimeType, "image/") {
				continue
			}
			if _, err := base64.StdEncoding.DecodeString(p.InlineData.Data); err != nil {
				return Image{}, fmt.Errorf("decode inline image: %w", err)
			}
			return Image{
				URL:    fmt.Sprintf("data:%s;base64,%s", p.InlineData.MimeType, p.InlineData.Data),
				Prompt: req.Prompt,
				Width:  aspect.Width,
				Height: aspect.Height,
			}, nil
		}
	}
	return Image{}, fmt.Errorf("no image payload in response")
}

func (c *Client) invoke(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	q := httpReq.URL.Query()
	q.Set("key", c.apiKey)
	httpReq.URL.RawQuery = q.Encode()
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("invoke model: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr errorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("model status %d: %s", resp.StatusCode, apiErr.Error.Message)
		}
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("model status %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// fallbackBatch fills a batch from the gallery pool. The rotating offset
// advances per call so repeated generations in one session return visibly
// different subsets without true randomness.
func (c *Client) fallbackBatch(prompt string, count int, aspect catalog.AspectRatio) []Image {
	offset := int(c.callCount.Add(1)*3) % len(c.pool)
	stamp := time.Now().UnixMilli()
	images := make([]Image, count)
	for i := 0; i < count; i++ {
		item := c.pool[(offset+i)%len(c.pool)]
		images[i] = Image{
			ID:     c.nextID(stamp),
			URL:    item.URL,
			Prompt: prompt,
			Width:  aspect.Width,
			Height: aspect.Height,
		}
	}
	return images
}

// fallbackAt substitutes a single image, indexed by batch position rather
// than the rotating offset so a retried position stays stable.
func (c *Client) fallbackAt(prompt string, index int, stamp int64, aspect catalog.AspectRatio) Image {
	item := c.pool[index%len(c.pool)]
	return Image{
		ID:     c.nextID(stamp),
		URL:    item.URL,
		Prompt: prompt,
		Width:  aspect.Width,
		Height: aspect.Height,
	}
}
