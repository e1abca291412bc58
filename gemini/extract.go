package gemini

import (
	owmstudio "github.com/kaim1005kaim/owm-studio"
)

// ImageData is an extracted inline image payload
type ImageData struct {
	Data     string // base64 encoded bytes
	MIMEType string
}

// ExtractText concatenates all text parts of the first candidate in order.
// It returns an UpstreamError if the envelope reports an error object, and
// ErrNoContent if the envelope carries no content parts.
func ExtractText(resp *GenerateContentResponse) (string, error) {
	if err := envelopeError(resp); err != nil {
		return "", err
	}

	parts := candidateParts(resp)
	if len(parts) == 0 {
		return "", owmstudio.ErrNoContent
	}

	var text string
	found := false
	for _, part := range parts {
		if part.Text != "" {
			text += part.Text
			found = true
		}
	}
	if !found {
		return "", owmstudio.ErrNoContent
	}
	return text, nil
}

// ExtractImage returns the first inline data part of the first candidate.
// A nil result with nil error means the model declined to produce an image
// (e.g. safety filtering); callers must treat that as "no result", not a
// failure.
func ExtractImage(resp *GenerateContentResponse) (*ImageData, error) {
	if err := envelopeError(resp); err != nil {
		return nil, err
	}

	for _, part := range candidateParts(resp) {
		if part.InlineData != nil && part.InlineData.Data != "" {
			return &ImageData{
				Data:     part.InlineData.Data,
				MIMEType: part.InlineData.MIMEType,
			}, nil
		}
	}
	return nil, nil
}

func envelopeError(resp *GenerateContentResponse) error {
	if resp == nil {
		return owmstudio.ErrNoContent
	}
	if resp.Error != nil {
		return &owmstudio.UpstreamError{Code: resp.Error.Code, Message: resp.Error.Message}
	}
	return nil
}

func candidateParts(resp *GenerateContentResponse) []Part {
	if len(resp.Candidates) == 0 {
		return nil
	}
	return resp.Candidates[0].Content.Parts
}
