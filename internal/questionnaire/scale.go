package questionnaire

// Scale maps an option index to its score. Indices outside the table score 0.
type Scale []int

var (
	// LinearScale scores option i as i+1.
	LinearScale = Scale{1, 2, 3, 4, 5}

	// SleepScale rewards the earlier options of the reverse-ordered sleep list.
	SleepScale = Scale{5, 4, 2, 1, 0}

	// FrequencyScale treats more frequent symptoms as more severe.
	FrequencyScale = Scale{1, 2, 4, 5}
)

// Score returns the points for the given option index.
func (s Scale) Score(option int) int {
	if option < 0 || option >= len(s) {
		return 0
	}
	return s[option]
}

// ScoreFor returns the score for an option of a question in the fixed bank.
// Unknown questions score 0.
func ScoreFor(question, option int) int {
	if question < 0 || question >= len(bank) {
		return 0
	}
	return bank[question].Scale.Score(option)
}
