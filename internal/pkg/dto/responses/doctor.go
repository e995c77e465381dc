package responses

type Doctor struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// Record is the raw document-store shape both patients and doctors come back
// in before they are mapped to a typed response.
type Record struct {
	ID     string                 `json:"$id"`
	Fields map[string]interface{} `json:"data"`
}
