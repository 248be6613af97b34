package services

import "strings"

// nullTokens are cell values spreadsheets commonly carry for "no value";
// pandas exports in particular leave literal "nan" strings behind.
var nullTokens = map[string]struct{}{
	"":     {},
	"nan":  {},
	"none": {},
	"null": {},
	"n/a":  {},
}

// CleanCell converts a raw spreadsheet cell into a trimmed value, folding the
// usual null tokens to nil. It never fails.
func CleanCell(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if _, isNull := nullTokens[strings.ToLower(trimmed)]; isNull {
		return nil
	}
	return &trimmed
}

// CleanRow applies CleanCell across a raw header->value row, dropping cells
// that normalize to nil.
func CleanRow(raw map[string]string) map[string]string {
	cleaned := make(map[string]string, len(raw))
	for header, value := range raw {
		if v := CleanCell(value); v != nil {
			cleaned[header] = *v
		}
	}
	return cleaned
}
