package responses

// Patient is the persisted record as returned by the document store. Fields is
// the flat mapping of all schema values; the two document fields are surfaced
// separately because the follow-up view links to them.
type Patient struct {
	ID                        string                 `json:"id"`
	UserID                    string                 `json:"userId"`
	IdentificationDocumentID  *string                `json:"identificationDocumentId"`
	IdentificationDocumentURL *string                `json:"identificationDocumentUrl"`
	Fields                    map[string]interface{} `json:"fields"`
}

type RegisterPatientResult struct {
	Patient *Patient `json:"patient"`
	UserID  string   `json:"userId"`
}
