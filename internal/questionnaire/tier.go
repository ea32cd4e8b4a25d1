package questionnaire

// Tier is an ordered band of the overall assessment, best first.
type Tier int

const (
	TierExcellent Tier = iota
	TierVeryGood
	TierModerate
	TierConcerning
	TierSevere
)

// band is an inclusive upper score bound and the tier it selects.
type band struct {
	max  int
	tier Tier
}

var tierBands = []band{
	{5, TierExcellent},
	{10, TierVeryGood},
	{15, TierModerate},
	{20, TierConcerning},
}

// TierFor maps a total score to its tier. Scores above the last band are Severe.
func TierFor(score int) Tier {
	for _, b := range tierBands {
		if score <= b.max {
			return b.tier
		}
	}
	return TierSevere
}

// AllTiers returns every tier in order.
func AllTiers() []Tier {
	return []Tier{TierExcellent, TierVeryGood, TierModerate, TierConcerning, TierSevere}
}

type tierInfo struct {
	name        string
	description string
	symbol      Symbol
}

var tierTable = map[Tier]tierInfo{
	TierExcellent:  {"Excellent", "Minimal to no symptoms of hormonal imbalance.", SymbolSparkles},
	TierVeryGood:   {"Very Good", "Slight symptoms, not likely requiring treatment.", SymbolSun},
	TierModerate:   {"Moderate", "Some symptoms present — a consultation is advised.", SymbolBrain},
	TierConcerning: {"Concerning", "Strong signs of hormonal imbalance.", SymbolThermometer},
	TierSevere:     {"Severe", "Significant symptoms, urgent consultation recommended.", SymbolHeart},
}

// String returns the display name of the tier.
func (t Tier) String() string {
	if info, ok := tierTable[t]; ok {
		return info.name
	}
	return "Unknown"
}

// Description returns the fixed explanation shown with the tier.
func (t Tier) Description() string {
	return tierTable[t].description
}

// Symbol returns the tier's presentation tag.
func (t Tier) Symbol() Symbol {
	return tierTable[t].symbol
}
