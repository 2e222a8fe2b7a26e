package models

type Subject struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

func (s Subject) Key() string { return s.ID }

type AITool struct {
	ID            string   `json:"id" yaml:"id"`
	SubjectID     string   `json:"subject_id" yaml:"subject_id"`
	Name          string   `json:"name" yaml:"name"`
	Description   string   `json:"description" yaml:"description"`
	Advantages    []string `json:"advantages" yaml:"advantages"`
	Disadvantages []string `json:"disadvantages" yaml:"disadvantages"`
	ImageURL      string   `json:"image_url" yaml:"image_url"`
	LinkURL       string   `json:"link_url" yaml:"link_url"`
}

func (t AITool) Key() string { return t.ID }
