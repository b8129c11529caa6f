package table

// Headings are the column titles.
type Headings struct {
	Name           string `json:"name"           yaml:"name"`
	Type           string `json:"type"           yaml:"type"`
	Direction      string `json:"direction"      yaml:"direction"`
	Polarity       string `json:"polarity"       yaml:"polarity"`
	Description    string `json:"description"    yaml:"description"`
	GenericName    string `json:"genericName"    yaml:"genericName"`
	GenericType    string `json:"genericType"    yaml:"genericType"`
	GenericDefault string `json:"genericDefault" yaml:"genericDefault"`
}

// Captions are the cell texts of the direction and polarity columns.
type Captions struct {
	In         string `json:"in"         yaml:"in"`
	Out        string `json:"out"        yaml:"out"`
	HighActive string `json:"highActive" yaml:"highActive"`
	LowActive  string `json:"lowActive"  yaml:"lowActive"`
}

// Centered selects centered columns.
type Centered struct {
	Headings       bool `json:"headings"       yaml:"headings"`
	Name           bool `json:"name"           yaml:"name"`
	Type           bool `json:"type"           yaml:"type"`
	Direction      bool `json:"direction"      yaml:"direction"`
	Polarity       bool `json:"polarity"       yaml:"polarity"`
	Description    bool `json:"description"    yaml:"description"`
	GenericName    bool `json:"genericName"    yaml:"genericName"`
	GenericType    bool `json:"genericType"    yaml:"genericType"`
	GenericDefault bool `json:"genericDefault" yaml:"genericDefault"`
}

// Options control which columns are emitted and how cells are written.
type Options struct {
	Headings Headings `json:"headings" yaml:"headings"`
	Captions Captions `json:"captions" yaml:"captions"`
	Centered Centered `json:"centered" yaml:"centered"`

	ExportType        bool `json:"exportType"        yaml:"exportType"`
	ExportDirection   bool `json:"exportDirection"   yaml:"exportDirection"`
	ExportPolarity    bool `json:"exportPolarity"    yaml:"exportPolarity"`
	ExportDescription bool `json:"exportDescription" yaml:"exportDescription"`
	ExportGenerics    bool `json:"exportGenerics"    yaml:"exportGenerics"`

	// CombineNameAndType drops the type column and appends the bus width to
	// the name instead.
	CombineNameAndType bool `json:"combineNameAndType" yaml:"combineNameAndType"`
	// ArrayNotation writes bus widths as "[8]" instead of "[7:0]".
	ArrayNotation   bool `json:"arrayNotation"   yaml:"arrayNotation"`
	ShowArrayLength bool `json:"showArrayLength" yaml:"showArrayLength"`
	BoldHeadings    bool `json:"boldHeadings"    yaml:"boldHeadings"`
}

// DefaultOptions returns the options used when no configuration is given.
func DefaultOptions() Options {
	return Options{
		Headings: Headings{
			Name:           "Name",
			Type:           "Type",
			Direction:      "Direction",
			Polarity:       "Polarity",
			Description:    "Description",
			GenericName:    "Name",
			GenericType:    "Type",
			GenericDefault: "Default value",
		},
		Captions: Captions{
			In:         "IN",
			Out:        "OUT",
			HighActive: "H",
			LowActive:  "L",
		},
		Centered: Centered{
			Headings: true,
		},
		ExportType:        true,
		ExportDirection:   true,
		ExportPolarity:    true,
		ExportDescription: true,
		ExportGenerics:    true,
		ArrayNotation:     true,
		ShowArrayLength:   true,
		BoldHeadings:      true,
	}
}
