package task

import (
	"bytes"
	"sort"
	"strings"
)

var (
	dataEscaper = strings.NewReplacer(
		"%", "%AZP25",
		"\r", "%0D",
		"\n", "%0A",
	)
	propertyEscaper = strings.NewReplacer(
		"%", "%AZP25",
		"\r", "%0D",
		"\n", "%0A",
		"]", "%5D",
		";", "%3B",
	)
)

// LoggingCommand is a "##vso[...]" line understood by the pipeline agent.
type LoggingCommand struct {
	Name       string
	Properties map[string]string
	Message    string
}

func (c LoggingCommand) String() string {
	var buf bytes.Buffer
	buf.WriteString("##vso[")
	buf.WriteString(c.Name)

	if len(c.Properties) > 0 {
		keys := make([]string, 0, len(c.Properties))
		for k := range c.Properties {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		buf.WriteString(" ")
		for _, k := range keys {
			buf.WriteString(k)
			buf.WriteString("=")
			buf.WriteString(propertyEscaper.Replace(c.Properties[k]))
			buf.WriteString(";")
		}
	}

	buf.WriteString("]")
	buf.WriteString(dataEscaper.Replace(c.Message))
	return buf.String()
}
