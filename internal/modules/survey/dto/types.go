package dto

type OptionOutput struct {
	ID       string
	Label    string
	Severity string
}

type StepOutput struct {
	Category string
	Title    string
	Subtitle string
	Options  []OptionOutput
}

type CatalogOutput struct {
	Steps []StepOutput
}
