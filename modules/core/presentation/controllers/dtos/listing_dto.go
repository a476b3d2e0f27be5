package dtos

type ToggleDTO struct {
	Value *string `json:"value" validate:"required"`
}

type SearchDTO struct {
	Term string `json:"term" validate:"max=200"`
}

type OptionsDTO struct {
	Column  string   `json:"column"`
	Query   string   `json:"query"`
	Options []string `json:"options"`
}
