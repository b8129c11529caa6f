package config

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"

	"go.jacobcolvin.com/vec/symbol"
	"go.jacobcolvin.com/vec/table"
)

const draft7 = "http://json-schema.org/draft-07/schema#"

const colorPattern = `^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`

// Schema returns the JSON Schema of [File]. Unknown keys are rejected at
// every level.
func Schema() *jsonschema.Schema {
	def := Default()

	s := object("Configuration of the vec VHDL entity extractor.",
		property{"clockName", stringSchema("Exact name of the clock port.", def.ClockName)},
		property{"resetName", stringSchema("Exact name of the reset port.", def.ResetName)},
		property{"highActiveSuffix", stringSchema(
			"Name part marking an active-high signal. Empty disables the check.", def.HighActiveSuffix)},
		property{"lowActiveSuffix", stringSchema(
			"Name part marking an active-low signal. Empty disables the check.", def.LowActiveSuffix)},
		property{"defaultLabel", stringSchema("Label attached to every parsed entity.", def.DefaultLabel)},
		property{"table", tableSchema(def.Table)},
		property{"symbol", symbolSchema(def.Symbol)},
	)
	s.Schema = draft7
	s.Title = "vec"

	return s
}

func tableSchema(def table.Options) *jsonschema.Schema {
	h, c, z := def.Headings, def.Captions, def.Centered

	return object("Port and generic table output.",
		property{"headings", object("Column headings.",
			property{"name", stringSchema("Port name column.", h.Name)},
			property{"type", stringSchema("Port type column.", h.Type)},
			property{"direction", stringSchema("Port direction column.", h.Direction)},
			property{"polarity", stringSchema("Port polarity column.", h.Polarity)},
			property{"description", stringSchema("Port description column.", h.Description)},
			property{"genericName", stringSchema("Generic name column.", h.GenericName)},
			property{"genericType", stringSchema("Generic type column.", h.GenericType)},
			property{"genericDefault", stringSchema("Generic default value column.", h.GenericDefault)},
		)},
		property{"captions", object("Direction and polarity cell texts.",
			property{"in", stringSchema("Input ports.", c.In)},
			property{"out", stringSchema("Output ports.", c.Out)},
			property{"highActive", stringSchema("Active-high ports.", c.HighActive)},
			property{"lowActive", stringSchema("Active-low ports.", c.LowActive)},
		)},
		property{"centered", object("Centered columns.",
			property{"headings", boolSchema("Center all heading cells.", z.Headings)},
			property{"name", boolSchema("Center the port name column.", z.Name)},
			property{"type", boolSchema("Center the port type column.", z.Type)},
			property{"direction", boolSchema("Center the direction column.", z.Direction)},
			property{"polarity", boolSchema("Center the polarity column.", z.Polarity)},
			property{"description", boolSchema("Center the description column.", z.Description)},
			property{"genericName", boolSchema("Center the generic name column.", z.GenericName)},
			property{"genericType", boolSchema("Center the generic type column.", z.GenericType)},
			property{"genericDefault", boolSchema("Center the generic default column.", z.GenericDefault)},
		)},
		property{"exportType", boolSchema("Emit the port type column.", def.ExportType)},
		property{"exportDirection", boolSchema("Emit the direction column.", def.ExportDirection)},
		property{"exportPolarity", boolSchema("Emit the polarity column.", def.ExportPolarity)},
		property{"exportDescription", boolSchema("Emit an empty description column.", def.ExportDescription)},
		property{"exportGenerics", boolSchema("Emit the generic table.", def.ExportGenerics)},
		property{"combineNameAndType", boolSchema(
			"Drop the type column and append the bus width to the name.", def.CombineNameAndType)},
		property{"arrayNotation", boolSchema(`Write bus widths as "[8]" instead of "[7:0]".`, def.ArrayNotation)},
		property{"showArrayLength", boolSchema("Append the bus width to bus types.", def.ShowArrayLength)},
		property{"boldHeadings", boolSchema("Write headings in bold.", def.BoldHeadings)},
	)
}

func symbolSchema(def symbol.Options) *jsonschema.Schema {
	c := def.Colors

	return object("PNG block symbol output.",
		property{"colors", object("Colors as #RRGGBB or #RGB.",
			property{"background", colorSchema("Image background.", c.Background)},
			property{"body", colorSchema("Entity body fill.", c.Body)},
			property{"outline", colorSchema("Entity body outline and markers.", c.Outline)},
			property{"pin", colorSchema("Port wires.", c.Pin)},
			property{"text", colorSchema("All text.", c.Text)},
			property{"generics", colorSchema("Generics panel fill.", c.Generics)},
			property{"genericsOutline", colorSchema("Generics panel outline.", c.GenericsOutline)},
			property{"highlight", colorSchema("Selected port row in the viewer.", c.Highlight)},
		)},
		property{"scale", intSchema("Integer image scale factor.", def.Scale, symbol.MinScale)},
		property{"pinLength", intSchema("Minimum port wire length in pixels.", def.PinLength, symbol.MinPinLength)},
		property{"rowHeight", intSchema("Height of one port row in pixels.", def.RowHeight, symbol.MinRowHeight)},
		property{"margin", intSchema("Blank border around the symbol in pixels.", def.Margin, 0)},
		property{"showGenerics", boolSchema("Draw the generics panel.", def.ShowGenerics)},
		property{"showLabel", boolSchema("Draw the entity label.", def.ShowLabel)},
	)
}

type property struct {
	name   string
	schema *jsonschema.Schema
}

// object returns a closed object schema with properties in the given order.
func object(desc string, props ...property) *jsonschema.Schema {
	s := &jsonschema.Schema{
		Type:                 "object",
		Description:          desc,
		Properties:           make(map[string]*jsonschema.Schema, len(props)),
		PropertyOrder:        make([]string, 0, len(props)),
		AdditionalProperties: falseSchema(),
	}

	for _, p := range props {
		s.Properties[p.name] = p.schema
		s.PropertyOrder = append(s.PropertyOrder, p.name)
	}

	return s
}

func stringSchema(desc, def string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string", Description: desc, Default: defaultValue(def)}
}

func colorSchema(desc, def string) *jsonschema.Schema {
	s := stringSchema(desc, def)
	s.Pattern = colorPattern

	return s
}

func boolSchema(desc string, def bool) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "boolean", Description: desc, Default: defaultValue(def)}
}

func intSchema(desc string, def, minimum int) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "integer",
		Description: desc,
		Default:     defaultValue(def),
		Minimum:     jsonschema.Ptr(float64(minimum)),
	}
}

// falseSchema validates nothing (marshals to JSON false).
func falseSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Not: &jsonschema.Schema{}}
}

func defaultValue(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}

	return b
}
