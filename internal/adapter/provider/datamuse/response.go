package datamuse

// apiWord is a single object in the Datamuse /words response array.
// Score is the service's relevance value; the array order already
// reflects it, so only Word is consumed.
type apiWord struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}
