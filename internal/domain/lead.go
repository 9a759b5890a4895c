package domain

// Lead maps sheet column headers to cell values, plus a synthetic 1-based id.
// Columns are whatever the sheet's header row says, so the shape stays dynamic.
type Lead map[string]interface{}

// NewLead builds a lead from a header row and a data row. Missing trailing
// cells fill in as empty strings.
func NewLead(id int, headers []string, row []string) Lead {
	lead := Lead{"id": id}

	for i, header := range headers {
		if i < len(row) {
			lead[header] = row[i]
		} else {
			lead[header] = ""
		}
	}

	return lead
}
