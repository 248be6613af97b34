package services

import "strings"

type DuplicateType string

const (
	VendorNameDuplicate DuplicateType = "VENDOR_NAME"
	VendorCodeDuplicate DuplicateType = "VENDOR_CODE_COMPANY"
	EmailDuplicate      DuplicateType = "EMAIL"
)

// DuplicateEntry flags rows that collide on one identity key. Rows holds the
// first occurrence followed by the later one, in source order. Purely
// advisory; nothing downstream rejects rows because of an entry here.
type DuplicateEntry struct {
	Type  DuplicateType `json:"type"`
	Value string        `json:"value"`
	Rows  []int         `json:"rows"`
}

// legalSuffixes are stripped from vendor names before comparing, longest
// first so "pvt ltd" goes before "ltd".
var legalSuffixes = []string{
	"private limited",
	"pvt ltd",
	"corporation",
	"limited",
	"corp",
	"inc",
	"llp",
	"llc",
	"ltd",
	"co",
}

// NormalizeVendorName canonicalizes a vendor name for duplicate comparison:
// lower-case, punctuation removed, whitespace collapsed, trailing legal-entity
// suffixes stripped. "Acme Pvt. Ltd" and "ACME PRIVATE LIMITED" compare equal.
func NormalizeVendorName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	normalized := strings.Join(strings.Fields(b.String()), " ")

	for changed := true; changed; {
		changed = false
		for _, suffix := range legalSuffixes {
			if strings.HasSuffix(normalized, " "+suffix) {
				normalized = strings.TrimSpace(strings.TrimSuffix(normalized, suffix))
				changed = true
			}
		}
	}
	return normalized
}

// FindDuplicates scans mapped rows once, in source order, and reports
// collisions on normalized vendor name, (vendor code, company code) pair and
// lower-cased primary email. The first occurrence of each key is remembered;
// every later occurrence emits one entry referencing both rows.
func FindDuplicates(mappedRows []map[string]string) []DuplicateEntry {
	var entries []DuplicateEntry

	namesSeen := make(map[string]int)
	codesSeen := make(map[string]int)
	emailsSeen := make(map[string]int)

	for i, row := range mappedRows {
		if name := row[FieldVendorName]; name != "" {
			key := NormalizeVendorName(name)
			if key != "" {
				if first, seen := namesSeen[key]; seen {
					entries = append(entries, DuplicateEntry{
						Type:  VendorNameDuplicate,
						Value: name,
						Rows:  []int{first, i},
					})
				} else {
					namesSeen[key] = i
				}
			}
		}

		vendorCode, companyCode := row[FieldVendorCode], row[FieldCompanyCode]
		if vendorCode != "" && companyCode != "" {
			key := vendorCode + "|" + companyCode
			if first, seen := codesSeen[key]; seen {
				entries = append(entries, DuplicateEntry{
					Type:  VendorCodeDuplicate,
					Value: vendorCode + " @ " + companyCode,
					Rows:  []int{first, i},
				})
			} else {
				codesSeen[key] = i
			}
		}

		if email := row[FieldOfficeEmailPrimary]; email != "" {
			key := strings.ToLower(email)
			if first, seen := emailsSeen[key]; seen {
				entries = append(entries, DuplicateEntry{
					Type:  EmailDuplicate,
					Value: email,
					Rows:  []int{first, i},
				})
			} else {
				emailsSeen[key] = i
			}
		}
	}

	return entries
}
