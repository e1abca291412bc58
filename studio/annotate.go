package studio

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"

	owmstudio "github.com/kaim1005kaim/owm-studio"
	"github.com/kaim1005kaim/owm-studio/gemini"
	"github.com/kaim1005kaim/owm-studio/jsonrepair"
	"github.com/kaim1005kaim/owm-studio/model"
)

// Annotation is the structured description the annotate task returns
type Annotation struct {
	Caption    string   `json:"caption"`
	Tags       []string `json:"tags"`
	Silhouette string   `json:"silhouette"`
	Material   string   `json:"material"`
	Pattern    string   `json:"pattern"`
	Details    []string `json:"details"`
	Mood       string   `json:"mood"`
	Colors     []string `json:"colors"`
}

// AnnotateImage sends one text+image turn to the vision model and parses its
// JSON reply through the repair parser. Results are memoized by image bytes
// when a cache is configured.
func (c *Client) AnnotateImage(ctx context.Context, imageBase64, mimeType string) (*Annotation, error) {
	data := stripDataURL(imageBase64)
	key := annotationKey(data)

	if c.cache != nil {
		if raw, ok := c.cache.Get(ctx, key); ok {
			var ann Annotation
			if err := json.Unmarshal(raw, &ann); err == nil {
				c.observeCache(true)
				return &ann, nil
			}
		}
		c.observeCache(false)
	}

	contents := gemini.NewUserContent(
		gemini.NewTextPart(annotationPrompt),
		gemini.NewInlineDataPart(mimeType, data),
	)

	resp, err := c.call(ctx, model.TaskAnnotate, contents, callConfig{
		temperature:     annotateTemperature,
		maxOutputTokens: annotateMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	text, err := gemini.ExtractText(resp)
	if err != nil {
		return nil, err
	}

	var ann Annotation
	if err := jsonrepair.Unmarshal([]byte(text), &ann); err != nil {
		return nil, &owmstudio.AnnotationParseError{Raw: text, Err: err}
	}

	if c.cache != nil {
		if raw, err := json.Marshal(&ann); err == nil {
			_ = c.cache.Set(ctx, key, raw, 0)
		}
	}

	return &ann, nil
}

// annotationKey derives a cache key from the decoded image bytes. Payloads
// that fail to decode are hashed as-is so a malformed input still gets a
// stable key.
func annotationKey(b64 string) string {
	payload := []byte(b64)
	if decoded, err := base64.StdEncoding.DecodeString(b64); err == nil {
		payload = decoded
	}
	sum := sha256.Sum256(payload)
	return "annotation:" + hex.EncodeToString(sum[:])
}
