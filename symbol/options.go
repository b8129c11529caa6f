package symbol

// Colors are the "#RRGGBB" (or "#RGB") colors of the symbol parts.
type Colors struct {
	Background      string `json:"background"      yaml:"background"`
	Body            string `json:"body"            yaml:"body"`
	Outline         string `json:"outline"         yaml:"outline"`
	Pin             string `json:"pin"             yaml:"pin"`
	Text            string `json:"text"            yaml:"text"`
	Generics        string `json:"generics"        yaml:"generics"`
	GenericsOutline string `json:"genericsOutline" yaml:"genericsOutline"`
	Highlight       string `json:"highlight"       yaml:"highlight"`
}

// Options control the geometry and colors of the symbol. Lengths are in
// pixels before scaling.
type Options struct {
	Colors Colors `json:"colors" yaml:"colors"`

	// Scale multiplies the final image size. Pixels are replicated, so text
	// stays sharp.
	Scale     int `json:"scale"     yaml:"scale"`
	PinLength int `json:"pinLength" yaml:"pinLength"`
	RowHeight int `json:"rowHeight" yaml:"rowHeight"`
	Margin    int `json:"margin"    yaml:"margin"`

	ShowGenerics bool `json:"showGenerics" yaml:"showGenerics"`
	ShowLabel    bool `json:"showLabel"    yaml:"showLabel"`
}

// Lower bounds applied by [NewRenderer].
const (
	MinScale     = 1
	MinPinLength = 24
	MinRowHeight = 16
)

// DefaultOptions returns the options used when no configuration is given.
func DefaultOptions() Options {
	return Options{
		Colors: Colors{
			Background:      "#FFFFFF",
			Body:            "#FFFFFF",
			Outline:         "#000000",
			Pin:             "#000000",
			Text:            "#000000",
			Generics:        "#F2F2F2",
			GenericsOutline: "#BFBFBF",
			Highlight:       "#FFE680",
		},
		Scale:        2,
		PinLength:    40,
		RowHeight:    20,
		Margin:       12,
		ShowGenerics: true,
		ShowLabel:    true,
	}
}
