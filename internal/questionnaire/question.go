package questionnaire

// Symbol is a presentation-neutral tag for a question or tier.
// The UI resolves it to a glyph; the engine never renders it.
type Symbol string

const (
	SymbolEnergy      Symbol = "energy"
	SymbolMood        Symbol = "mood"
	SymbolLibido      Symbol = "libido"
	SymbolSleep       Symbol = "sleep"
	SymbolThermometer Symbol = "thermometer"
	SymbolSparkles    Symbol = "sparkles"
	SymbolSun         Symbol = "sun"
	SymbolBrain       Symbol = "brain"
	SymbolHeart       Symbol = "heart"
)

// Question is a single-choice prompt with its scoring table.
type Question struct {
	Prompt  string
	Options []string
	Symbol  Symbol
	Scale   Scale
}

var frequencyOptions = []string{"Rarely", "Occasionally", "Frequently", "Almost Always"}

// bank is the fixed question sequence. Never mutated; Bank hands out copies.
var bank = []Question{
	{
		Prompt:  "On a scale of 1 to 5, how would you rate your daily energy levels?",
		Options: []string{"1 - Always tired", "2", "3", "4", "5 - Very energetic"},
		Symbol:  SymbolEnergy,
		Scale:   LinearScale,
	},
	{
		Prompt:  "Do you experience frequent mood swings or irritability?",
		Options: frequencyOptions,
		Symbol:  SymbolMood,
		Scale:   FrequencyScale,
	},
	{
		Prompt:  "Have you noticed changes in your libido or sexual performance?",
		Options: frequencyOptions,
		Symbol:  SymbolLibido,
		Scale:   FrequencyScale,
	},
	{
		Prompt:  "How would you describe your sleep quality?",
		Options: []string{"Very Poor", "Poor", "Fair", "Good", "Excellent"},
		Symbol:  SymbolSleep,
		Scale:   SleepScale,
	},
	{
		Prompt:  "Do you experience symptoms like hot flashes, night sweats, or unexplained weight gain?",
		Options: frequencyOptions,
		Symbol:  SymbolThermometer,
		Scale:   FrequencyScale,
	},
}

// Bank returns a copy of the fixed question sequence, in order.
func Bank() []Question {
	return cloneQuestions(bank)
}

func cloneQuestions(qs []Question) []Question {
	out := make([]Question, len(qs))
	for i, q := range qs {
		q.Options = append([]string(nil), q.Options...)
		q.Scale = append(Scale(nil), q.Scale...)
		out[i] = q
	}
	return out
}

// MaxScore is the highest total a completed session can reach.
const MaxScore = 25
