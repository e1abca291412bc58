package gemini

// Role values for content turns
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Response modality values for GenerationConfig.ResponseModalities
const (
	ModalityText  = "TEXT"
	ModalityImage = "IMAGE"
)

// GenerateContentRequest represents a Gemini generate content request
type GenerateContentRequest struct {
	Contents         []Content        `json:"contents"`
	GenerationConfig GenerationConfig `json:"generationConfig,omitempty"`
}

// Content represents a single content turn with role and parts
type Content struct {
	Role  string `json:"role,omitempty"` // "user" or "model"
	Parts []Part `json:"parts"`
}

// Part represents a part of content: either text or inline binary data
type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

// InlineData represents base64 encoded binary data, typically an image
type InlineData struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

// GenerationConfig represents generation configuration
type GenerationConfig struct {
	Temperature        float64      `json:"temperature,omitempty"`
	TopP               float64      `json:"topP,omitempty"`
	TopK               int          `json:"topK,omitempty"`
	MaxOutputTokens    int          `json:"maxOutputTokens,omitempty"`
	ResponseModalities []string     `json:"responseModalities,omitempty"`
	ImageConfig        *ImageConfig `json:"imageConfig,omitempty"`
}

// ImageConfig holds image generation hints
type ImageConfig struct {
	AspectRatio string `json:"aspectRatio,omitempty"` // e.g. "1:1", "3:4", "16:9"
}

// GenerateContentResponse represents a Gemini generate content response
type GenerateContentResponse struct {
	Candidates    []Candidate   `json:"candidates"`
	UsageMetadata UsageMetadata `json:"usageMetadata"`
	ModelVersion  string        `json:"modelVersion,omitempty"`
	Error         *APIError     `json:"error,omitempty"`
}

// Candidate represents a response candidate
type Candidate struct {
	Content      Content `json:"content"`
	FinishReason string  `json:"finishReason"`
	Index        int     `json:"index"`
}

// UsageMetadata represents usage metadata
type UsageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}

// APIError is the error object Gemini embeds in a response body
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status,omitempty"`
}

// NewTextPart creates a text part
func NewTextPart(text string) Part {
	return Part{Text: text}
}

// NewInlineDataPart creates an inline data part from base64 data
func NewInlineDataPart(mimeType, data string) Part {
	return Part{InlineData: &InlineData{MIMEType: mimeType, Data: data}}
}

// NewUserContent wraps parts into a single user turn
func NewUserContent(parts ...Part) []Content {
	return []Content{{Role: RoleUser, Parts: parts}}
}
