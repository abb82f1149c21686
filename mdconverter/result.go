package mdconverter

// Result holds the output of a conversion.
type Result struct {
	HTML     string    `json:"html"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// WarningType categorizes conversion warnings.
type WarningType string

const (
	WarningHeadingClamped      WarningType = "heading_clamped"
	WarningUnresolvedReference WarningType = "unresolved_reference"
)

// Warning represents a non-fatal issue encountered during conversion.
type Warning struct {
	Type     WarningType `json:"type"`
	NodeType string      `json:"nodeType,omitempty"`
	Message  string      `json:"message"`
}
