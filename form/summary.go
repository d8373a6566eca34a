package form

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"phoneprice/ml"
)

type SummaryItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type SummarySection struct {
	Title string        `json:"title"`
	Items []SummaryItem `json:"items"`
}

// Summary echoes the inputs that matter most to a reader of the result.
type Summary struct {
	Sections []SummarySection `json:"sections"`
}

var printer = message.NewPrinter(language.English)

func Summarize(spec ml.PhoneSpec) Summary {
	return Summary{Sections: []SummarySection{
		{
			Title: "Performance",
			Items: []SummaryItem{
				{Label: "RAM", Value: printer.Sprintf("%d MB", spec.RAM)},
				{Label: "Processor", Value: printer.Sprintf("%d cores @ %.1f GHz", spec.Cores, spec.ClockSpeed)},
				{Label: "Storage", Value: printer.Sprintf("%d GB", spec.InternalMemory)},
			},
		},
		{
			Title: "Camera & Display",
			Items: []SummaryItem{
				{Label: "Primary Camera", Value: printer.Sprintf("%d MP", spec.PrimaryCamera)},
				{Label: "Front Camera", Value: printer.Sprintf("%d MP", spec.FrontCamera)},
				{Label: "Resolution", Value: printer.Sprintf("%d x %d", spec.PixelWidth, spec.PixelHeight)},
			},
		},
	}}
}

func (s Summary) String() string {
	var b strings.Builder
	for i, section := range s.Sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(section.Title)
		b.WriteString(":\n")
		for _, item := range section.Items {
			b.WriteString("  - ")
			b.WriteString(item.Label)
			b.WriteString(": ")
			b.WriteString(item.Value)
			b.WriteString("\n")
		}
	}
	return b.String()
}
