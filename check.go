package htmlcheck

import "slices"

// Evaluate checks each selector against doc and returns a presence report.
//
// Selectors are evaluated in sorted order so the report is independent of
// input order; duplicates collapse into a single entry. The first selector
// the document rejects aborts the evaluation and no report is returned.
// Evaluate does not modify selectors.
func Evaluate(doc Document, selectors []string) (*Report, error) {
	if doc == nil {
		return nil, Errorf(EINVALID, "document required")
	}

	sorted := slices.Clone(selectors)
	slices.Sort(sorted)

	report := &Report{}
	for _, sel := range sorted {
		n, err := doc.CountMatches(sel)
		if err != nil {
			return nil, err
		}
		report.set(sel, n > 0)
	}
	return report, nil
}
