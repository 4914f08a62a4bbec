package request_models

type ToggleSelectionRequest struct {
	Day      string `json:"day" binding:"required"`
	Section  string `json:"section" binding:"required"`
	Selected bool   `json:"selected"`
	People   int    `json:"people"`
	Image    string `json:"image,omitempty"`
}
