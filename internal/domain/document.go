package domain

// StoredDocument describes an uploaded document as returned to clients.
// The original filename is metadata only; on disk the document is keyed
// by its random id.
type StoredDocument struct {
	ID       string `json:"document_id"`
	Filename string `json:"filename"`
}

// ReplacementMapping is a single requested text substitution. PageHints
// optionally narrows the substitution to specific page indices.
type ReplacementMapping struct {
	OriginalText    string `json:"original_text"`
	ReplacementText string `json:"replacement_text"`
	PageHints       []int  `json:"page_hints,omitempty"`
}

// ReplacementRequest is the payload accepted by the replace endpoint.
// The mappings are validated against the stored document and echoed
// back; the stored bytes are not modified in the current scope.
type ReplacementRequest struct {
	Mappings []ReplacementMapping `json:"mappings"`
}
