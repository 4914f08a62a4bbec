package response_models

type DetailLine struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type ReportActivity struct {
	Label         string `json:"label"`
	Day           string `json:"day"`
	Section       string `json:"section"`
	Description   string `json:"description"`
	EstimatedCost string `json:"estimated_cost"`
	People        int    `json:"people"`
	Image         string `json:"image,omitempty"`
}

type TripReport struct {
	Reference  string           `json:"reference"`
	Title      string           `json:"title"`
	Details    []DetailLine     `json:"details"`
	Activities []ReportActivity `json:"activities"`
	TotalCost  float64          `json:"total_cost"`
	TotalLabel string           `json:"total_label"`
	Warnings   []string         `json:"warnings,omitempty"`
}
