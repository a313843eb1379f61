package models

// FeatureKind identifies an AI-backed capability of the product.
type FeatureKind string

const (
	FeatureHoroscope     FeatureKind = "horoscope"
	FeatureCompatibility FeatureKind = "compatibility"
	FeatureRitual        FeatureKind = "ritual"
	FeatureCareer        FeatureKind = "career"
	FeatureChat          FeatureKind = "chat"
	FeatureTransits      FeatureKind = "transits"
)

// featureCosts maps each feature to its price in tokens.
var featureCosts = map[FeatureKind]int64{
	FeatureHoroscope:     1,
	FeatureCompatibility: 3,
	FeatureRitual:        2,
	FeatureCareer:        4,
	FeatureChat:          1,
	FeatureTransits:      1,
}

// Valid reports whether k names a known feature.
func (k FeatureKind) Valid() bool {
	_, ok := featureCosts[k]
	return ok
}

// Cost returns the token price of a single use of the feature.
func (k FeatureKind) Cost() int64 {
	return featureCosts[k]
}

// ExpectsJSON reports whether the feature requires a structured JSON
// response from the model. Chat is the only free-text feature.
func (k FeatureKind) ExpectsJSON() bool {
	return k != FeatureChat
}

// AllFeatures lists every feature kind in a stable order.
func AllFeatures() []FeatureKind {
	return []FeatureKind{
		FeatureHoroscope,
		FeatureCompatibility,
		FeatureRitual,
		FeatureCareer,
		FeatureChat,
		FeatureTransits,
	}
}
