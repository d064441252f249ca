package alias

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/alx/pkg/errors"
	"github.com/arthur-debert/alx/pkg/logging"
	"github.com/arthur-debert/alx/pkg/types"
)

// ImportPolicy decides what happens when an imported alias already exists
type ImportPolicy int

const (
	// SkipExisting keeps the current alias and reports the name as skipped
	SkipExisting ImportPolicy = iota
	// Overwrite replaces the current alias with the imported one
	Overwrite
)

// String returns the flag spelling of the policy
func (p ImportPolicy) String() string {
	switch p {
	case SkipExisting:
		return "skip-existing"
	case Overwrite:
		return "overwrite"
	default:
		return "unknown"
	}
}

// ParseImportPolicy parses "skip-existing" (or "") and "overwrite"
func ParseImportPolicy(s string) (ImportPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "skip", "skip-existing":
		return SkipExisting, nil
	case "overwrite", "replace":
		return Overwrite, nil
	default:
		return SkipExisting, errors.Newf(errors.ErrInvalidInput, "unknown import policy: %s", s)
	}
}

// Rejection records an imported alias that could not be accepted
type Rejection struct {
	Name   string
	Reason error
}

// MarshalText renders the rejection as "name: reason"
func (r Rejection) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("%s: %v", r.Name, r.Reason)), nil
}

// ImportReport summarizes an Import call
type ImportReport struct {
	Added       []string    `json:"added"`
	Overwritten []string    `json:"overwritten"`
	Skipped     []string    `json:"skipped"`
	Rejected    []Rejection `json:"rejected"`
}

// Changed reports whether the import modified the store
func (r ImportReport) Changed() bool {
	return len(r.Added) > 0 || len(r.Overwritten) > 0
}

// Err aggregates all rejections into one ImportRejected error, or nil
func (r ImportReport) Err() error {
	if len(r.Rejected) == 0 {
		return nil
	}
	parts := make([]string, len(r.Rejected))
	names := make([]string, len(r.Rejected))
	for i, rej := range r.Rejected {
		label := rej.Name
		if label == "" {
			label = "<unnamed>"
		}
		names[i] = rej.Name
		parts[i] = fmt.Sprintf("%s (%v)", label, rej.Reason)
	}
	return errors.Newf(errors.ErrImportRejected, "%d record(s) rejected: %s", len(r.Rejected), strings.Join(parts, "; ")).
		WithDetail("names", names)
}

// Import merges external records into the store. Invalid records are
// rejected one by one; the rest of the batch is still applied.
func (s *Store) Import(records []types.Alias, policy ImportPolicy) ImportReport {
	log := logging.GetLogger("alias.import")
	var report ImportReport
	batch := make(map[string]struct{}, len(records))

	for _, rec := range records {
		if err := validateRecord(rec); err != nil {
			report.Rejected = append(report.Rejected, Rejection{Name: rec.Name, Reason: err})
			continue
		}
		if _, dup := batch[rec.Name]; dup {
			report.Rejected = append(report.Rejected, Rejection{
				Name:   rec.Name,
				Reason: errors.Newf(errors.ErrDuplicateName, "alias '%s' appears more than once in the import", rec.Name),
			})
			continue
		}
		batch[rec.Name] = struct{}{}

		rec.Description = strings.TrimSpace(rec.Description)
		rec.Group = normalizeGroup(rec.Group)
		rec = s.stamp(rec.Normalize())

		if current, exists := s.aliases[rec.Name]; exists {
			if policy != Overwrite || sameContent(current, rec) {
				report.Skipped = append(report.Skipped, rec.Name)
				continue
			}
			s.aliases[rec.Name] = rec
			report.Overwritten = append(report.Overwritten, rec.Name)
			continue
		}

		s.aliases[rec.Name] = rec
		report.Added = append(report.Added, rec.Name)
	}

	if report.Changed() {
		s.dirty = true
	}

	log.Debug().
		Str("policy", policy.String()).
		Int("added", len(report.Added)).
		Int("overwritten", len(report.Overwritten)).
		Int("skipped", len(report.Skipped)).
		Int("rejected", len(report.Rejected)).
		Msg("Import applied")
	return report
}

// sameContent compares the user-visible fields, ignoring timestamps
func sameContent(a, b types.Alias) bool {
	return a.Command == b.Command &&
		a.Description == b.Description &&
		a.Group == b.Group &&
		a.Disabled == b.Disabled
}
