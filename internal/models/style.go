package models

// StagingStyle is a named decor aesthetic. Built-in styles are fixed at
// startup; custom ones are authored by the agent and persisted.
type StagingStyle struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Prompt      string `json:"prompt"`
	Icon        string `json:"icon"`
	IsCustom    bool   `json:"isCustom,omitempty"`
}
