// Package form declares the inputs a client collects before asking for a
// prediction, and is the only place their bounds are enforced.
package form

import "phoneprice/ml"

type Kind string

const (
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
)

// Group is a titled set of fields rendered together.
type Group struct {
	Key    string  `json:"key"`
	Title  string  `json:"title"`
	Fields []Field `json:"fields"`
}

// Field is one declared input. Key matches the ml feature name.
type Field struct {
	Key     string  `json:"key"`
	Label   string  `json:"label"`
	Unit    string  `json:"unit,omitempty"`
	Kind    Kind    `json:"kind"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Step    float64 `json:"step"`
	Default float64 `json:"default"`
}

func number(key, label, unit string, min, max, step, def float64) Field {
	return Field{Key: key, Label: label, Unit: unit, Kind: KindNumber, Min: min, Max: max, Step: step, Default: def}
}

func boolean(key, label string, def bool) Field {
	f := Field{Key: key, Label: label, Kind: KindBoolean, Min: 0, Max: 1, Step: 1}
	if def {
		f.Default = 1
	}
	return f
}

var groups = []Group{
	{
		Key:   "basic",
		Title: "Basic Specifications",
		Fields: []Field{
			number("battery_power", "Battery Power", "mAh", 500, 6000, 50, 1500),
			number("clock_speed", "Clock Speed", "GHz", 0.5, 3.0, 0.1, 1.5),
			number("ram", "RAM", "MB", 256, 16000, 256, 4000),
			number("int_memory", "Internal Memory", "GB", 2, 512, 1, 64),
			number("n_cores", "Processor Cores", "", 1, 8, 1, 4),
			number("mobile_wt", "Mobile Weight", "g", 50, 300, 1, 150),
			number("m_dep", "Mobile Depth", "cm", 0.1, 1.0, 0.01, 0.8),
		},
	},
	{
		Key:   "camera_display",
		Title: "Camera & Display",
		Fields: []Field{
			number("pc", "Primary Camera", "MP", 0, 32, 1, 12),
			number("fc", "Front Camera", "MP", 0, 20, 1, 5),
			number("px_height", "Pixel Height", "px", 0, 3000, 10, 1200),
			number("px_width", "Pixel Width", "px", 0, 3000, 10, 800),
			number("sc_h", "Screen Height", "cm", 5, 25, 1, 15),
			number("sc_w", "Screen Width", "cm", 2, 15, 1, 8),
			number("talk_time", "Talk Time", "hours", 2, 30, 1, 10),
		},
	},
	{
		Key:   "connectivity",
		Title: "Connectivity Features",
		Fields: []Field{
			boolean("blue", "Bluetooth", true),
			boolean("wifi", "WiFi", true),
			boolean("four_g", "4G Support", true),
			boolean("three_g", "3G Support", true),
			boolean("dual_sim", "Dual SIM", false),
			boolean("touch_screen", "Touch Screen", true),
		},
	},
}

// Groups returns the form layout in display order.
func Groups() []Group {
	out := make([]Group, len(groups))
	for i, g := range groups {
		out[i] = g
		out[i].Fields = append([]Field(nil), g.Fields...)
	}
	return out
}

// Fields returns every declared field in feature vector order.
func Fields() []Field {
	byKey := make(map[string]Field, ml.FeatureCount)
	for _, g := range groups {
		for _, f := range g.Fields {
			byKey[f.Key] = f
		}
	}
	names := ml.FeatureNames()
	out := make([]Field, 0, len(names))
	for _, name := range names {
		if f, ok := byKey[name]; ok {
			out = append(out, f)
		}
	}
	return out
}

// Lookup finds a field declaration by key.
func Lookup(key string) (Field, bool) {
	for _, g := range groups {
		for _, f := range g.Fields {
			if f.Key == key {
				return f, true
			}
		}
	}
	return Field{}, false
}
