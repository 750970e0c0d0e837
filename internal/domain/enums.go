package domain

// PartOfSpeech represents the grammatical category of a word.
type PartOfSpeech string

const (
	PartOfSpeechNoun      PartOfSpeech = "NOUN"
	PartOfSpeechVerb      PartOfSpeech = "VERB"
	PartOfSpeechAdjective PartOfSpeech = "ADJECTIVE"
	PartOfSpeechAdverb    PartOfSpeech = "ADVERB"
)

func (p PartOfSpeech) String() string { return string(p) }

func (p PartOfSpeech) IsValid() bool {
	switch p {
	case PartOfSpeechNoun, PartOfSpeechVerb, PartOfSpeechAdjective, PartOfSpeechAdverb:
		return true
	}
	return false
}

// Code returns the short constraint code the word service expects
// in its query string: n, v, adj, adv.
func (p PartOfSpeech) Code() string {
	switch p {
	case PartOfSpeechNoun:
		return "n"
	case PartOfSpeechVerb:
		return "v"
	case PartOfSpeechAdjective:
		return "adj"
	case PartOfSpeechAdverb:
		return "adv"
	}
	return ""
}
