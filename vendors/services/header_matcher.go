package services

import "strings"

// ColumnMapping ties one source header to a canonical field, or to nothing.
type ColumnMapping struct {
	SourceHeader string `json:"source_header"`
	Field        string `json:"field"` // empty = unmapped
	MatchedAlias string `json:"matched_alias,omitempty"`
	Overridden   bool   `json:"overridden"`
}

// HeaderMapping is the batch-wide mapping table, one entry per source header
// in source order, plus coverage statistics.
type HeaderMapping struct {
	Columns  []ColumnMapping `json:"columns"`
	Mapped   int             `json:"mapped"`
	Unmapped int             `json:"unmapped"`
	Coverage float64         `json:"coverage"`
}

// FieldFor returns the canonical field a source header maps to, or "" when
// the header is unmapped or unknown.
func (m *HeaderMapping) FieldFor(header string) string {
	for _, col := range m.Columns {
		if col.SourceHeader == header {
			return col.Field
		}
	}
	return ""
}

// BuildHeaderMapping auto-maps source headers to canonical fields using the
// default alias table. An exact alias match anywhere in the table wins first;
// only then are substring matches tried, field by field in table order, so a
// short generic header like "Email" cannot be captured by a longer alias of a
// more specific field.
//
// Overrides are explicit header->field choices made by the operator. An
// overridden header keeps its assigned field (or stays deliberately unmapped
// when the override is "") no matter what the alias table says, so re-running
// the matcher never clobbers a manual decision. Same input, same output.
func BuildHeaderMapping(sourceHeaders []string, overrides map[string]string) HeaderMapping {
	mapping := HeaderMapping{Columns: make([]ColumnMapping, 0, len(sourceHeaders))}

	for _, header := range sourceHeaders {
		col := ColumnMapping{SourceHeader: header}

		if override, ok := overrides[header]; ok {
			col.Overridden = true
			if KnownField(override) {
				col.Field = override
			}
		} else {
			col.Field, col.MatchedAlias = matchHeader(header)
		}

		if col.Field != "" {
			mapping.Mapped++
		} else {
			mapping.Unmapped++
		}
		mapping.Columns = append(mapping.Columns, col)
	}

	if len(sourceHeaders) > 0 {
		mapping.Coverage = float64(mapping.Mapped) / float64(len(sourceHeaders)) * 100
	}
	return mapping
}

func matchHeader(header string) (field, alias string) {
	normalized := strings.ToLower(strings.TrimSpace(header))
	normalized = strings.ReplaceAll(normalized, "_", " ")
	if normalized == "" {
		return "", ""
	}

	for _, fa := range defaultAliasTable {
		for _, a := range fa.Aliases {
			if a == normalized {
				return fa.Field, a
			}
		}
	}
	for _, fa := range defaultAliasTable {
		for _, a := range fa.Aliases {
			if strings.Contains(normalized, a) || strings.Contains(a, normalized) {
				return fa.Field, a
			}
		}
	}
	return "", ""
}

// ApplyMapping projects one cleaned source row onto the canonical field
// vocabulary. Cells whose header is unmapped are dropped; a later duplicate
// header mapping to the same field does not overwrite an earlier value.
func ApplyMapping(mapping *HeaderMapping, cleanedRow map[string]string) map[string]string {
	mapped := make(map[string]string, len(cleanedRow))
	for _, col := range mapping.Columns {
		if col.Field == "" {
			continue
		}
		value, ok := cleanedRow[col.SourceHeader]
		if !ok {
			continue
		}
		if _, taken := mapped[col.Field]; taken {
			continue
		}
		mapped[col.Field] = value
	}
	return mapped
}
