package domain

// UserState represents user's current interaction state
type UserState string

const (
	StateIdle    UserState = "idle"
	StateReading UserState = "reading"
)

// StateData holds the chat session of one user
type StateData struct {
	State      UserState
	Book       *Book
	Page       int
	TargetLang string
	// LastLookup is the word most recently looked up, used by the save button
	LastLookup  string
	Translation string
}

// Language returns the chosen target language or the default
func (s StateData) Language() string {
	if s.TargetLang == "" {
		return DefaultLanguage
	}
	return s.TargetLang
}
