package studio

import (
	"context"

	"github.com/kaim1005kaim/owm-studio/gemini"
	"github.com/kaim1005kaim/owm-studio/model"
)

// EditImage applies one described change to the source image, preserving
// everything else. A nil result with nil error means the model declined to
// return an image.
func (c *Client) EditImage(ctx context.Context, imageBase64, mimeType, instruction string) (*Result, error) {
	contents := gemini.NewUserContent(
		gemini.NewTextPart(editPrompt(instruction)),
		inlinePart(imageBase64, mimeType),
	)

	return c.singleImageCall(ctx, model.TaskEdit, contents, "")
}

// GenerateWithReference generates a derived view (e.g. a hero shot or an
// alternate camera angle): the reference supplies the visual DNA, the prompt
// supplies the composition.
func (c *Client) GenerateWithReference(ctx context.Context, prompt, referenceBase64, mimeType, aspectRatio string) (*Result, error) {
	contents := gemini.NewUserContent(
		gemini.NewTextPart(referencePrompt(prompt)),
		inlinePart(referenceBase64, mimeType),
	)

	return c.singleImageCall(ctx, model.TaskReference, contents, aspectRatio)
}

// GenerateInspiration returns a free-text creative brief derived from a set
// of reference images.
func (c *Client) GenerateInspiration(ctx context.Context, refs []ReferenceImage) (string, error) {
	parts := append([]gemini.Part{gemini.NewTextPart(inspirationPrompt)}, referenceParts(refs)...)

	resp, err := c.call(ctx, model.TaskInspiration, gemini.NewUserContent(parts...), callConfig{})
	if err != nil {
		return "", err
	}
	return gemini.ExtractText(resp)
}

// singleImageCall issues one image-modality call and extracts its image.
// Single-call operations propagate failures to the caller unchanged.
func (c *Client) singleImageCall(ctx context.Context, task string, contents []gemini.Content, aspectRatio string) (*Result, error) {
	cfg := callConfig{
		modalities:  []string{gemini.ModalityImage, gemini.ModalityText},
		aspectRatio: aspectRatio,
	}

	resp, err := c.call(ctx, task, contents, cfg)
	if err != nil {
		return nil, err
	}

	img, err := gemini.ExtractImage(resp)
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, nil
	}

	return &Result{
		ID:       newResultID(),
		Base64:   img.Data,
		MIMEType: img.MIMEType,
	}, nil
}
