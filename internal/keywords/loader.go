package keywords

import (
	"fmt"
	"os"
	"strings"
)

// Source describes where the keyword list of a session comes from.
type Source struct {
	// Name is used in error messages to give more context about the list.
	Name string
	// Inline is a keyword list provided via configuration or flags.
	Inline []string
	// File points to a file with keywords separated by newlines, commas or
	// semicolons. When set it takes precedence over Inline.
	File string
}

// Load returns the resolved keyword list from the provided source. When File
// is set it takes precedence over Inline. File parsing drops blank entries
// as a format concern; inline keywords pass through untouched so the session
// boundary still sees, and rejects, invalid ones. An error is returned when
// neither File nor Inline yield any keywords.
func Load(src Source) ([]string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "keywords"
	}

	file := strings.TrimSpace(src.File)
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}

		list := Split(string(data))
		if len(list) == 0 {
			return nil, fmt.Errorf("%s file %q is empty", name, file)
		}
		return list, nil
	}

	if len(src.Inline) == 0 {
		return nil, fmt.Errorf("%s are not configured", name)
	}

	return src.Inline, nil
}

// Split breaks a raw keyword string on newlines, commas and semicolons,
// trimming each entry and dropping empty ones.
func Split(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '\n' || r == '\r' || r == ',' || r == ';'
	})

	list := make([]string, 0, len(fields))
	for _, field := range fields {
		if field = strings.TrimSpace(field); field != "" {
			list = append(list, field)
		}
	}
	return list
}
