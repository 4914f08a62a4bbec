package response_models

// SelectionRecord is one chosen plan section with its people count.
type SelectionRecord struct {
	Key           string `json:"key"`
	Day           string `json:"day"`
	Section       string `json:"section"`
	Description   string `json:"description"`
	EstimatedCost string `json:"estimated_cost"`
	People        int    `json:"people"`
	Image         string `json:"image,omitempty"`
}

type SelectionResponse struct {
	Selections []SelectionRecord `json:"selections"`
	Warnings   []string          `json:"warnings,omitempty"`
}
