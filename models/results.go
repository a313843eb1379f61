package models

// Typed result records, one per feature. JSON tags are the exact keys the
// prompt templates instruct the model to return, so a record marshals back
// into the same shape it was parsed from.

// HoroscopeReading is a daily reading for one sign.
type HoroscopeReading struct {
	Sign          string `json:"sign"`
	Date          string `json:"date"`
	Reading       string `json:"reading"`
	Mood          string `json:"mood"`
	LuckyNumbers  []int  `json:"lucky_numbers"`
	Compatibility string `json:"compatibility"`
}

// CompatibilityResult scores the relationship between two signs.
// All score fields are percentages in [0,100].
type CompatibilityResult struct {
	Overall        int      `json:"overall"`
	Emotional      int      `json:"emotional"`
	Intellectual   int      `json:"intellectual"`
	Physical       int      `json:"physical"`
	Spiritual      int      `json:"spiritual"`
	Communication  int      `json:"communication"`
	LongTerm       int      `json:"longTerm"`
	Analysis       string   `json:"analysis"`
	Strengths      []string `json:"strengths"`
	Challenges     []string `json:"challenges"`
	Advice         []string `json:"advice"`
	BestAspects    string   `json:"bestAspects"`
	AttentionAreas string   `json:"attentionAreas"`
	FutureOutlook  string   `json:"futureOutlook"`
}

// RitualStep is one ordered step of a generated ritual.
type RitualStep struct {
	Order       int      `json:"order"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Materials   []string `json:"materials,omitempty"`
	Notes       string   `json:"notes,omitempty"`
}

// Ritual is a complete personalized ritual.
type Ritual struct {
	Title        string       `json:"title"`
	Purpose      string       `json:"purpose"`
	Intention    string       `json:"intention"`
	Difficulty   string       `json:"difficulty"`
	Duration     string       `json:"duration"`
	TotalTime    string       `json:"totalTime"`
	BestTime     string       `json:"bestTime"`
	Materials    []string     `json:"materials"`
	Preparation  string       `json:"preparation"`
	Steps        []RitualStep `json:"steps"`
	Closing      string       `json:"closing"`
	Aftercare    []string     `json:"aftercare"`
	Warnings     []string     `json:"warnings"`
	Affirmations []string     `json:"affirmations"`
	Crystals     []string     `json:"crystals"`
	Herbs        []string     `json:"herbs"`
	Colors       []string     `json:"colors"`
}

// PersonalityProfile holds the trait scores of a career analysis.
// Numeric fields are in [0,100].
type PersonalityProfile struct {
	Strengths    []string `json:"strengths"`
	Challenges   []string `json:"challenges"`
	WorkStyle    string   `json:"workStyle"`
	Leadership   int      `json:"leadership"`
	Creativity   int      `json:"creativity"`
	Analytical   int      `json:"analytical"`
	Social       int      `json:"social"`
	Independence int      `json:"independence"`
}

// CareerPaths groups recommended career directions.
type CareerPaths struct {
	Primary   []string `json:"primary"`
	Secondary []string `json:"secondary"`
	Emerging  []string `json:"emerging"`
}

// CurrentCareerAnalysis evaluates the current position.
type CurrentCareerAnalysis struct {
	Compatibility    int      `json:"compatibility"`
	Strengths        []string `json:"strengths"`
	ImprovementAreas []string `json:"improvementAreas"`
	GrowthPotential  string   `json:"growthPotential"`
}

// CareerRecommendations holds actionable guidance.
type CareerRecommendations struct {
	ShortTerm  []string `json:"shortTerm"`
	LongTerm   []string `json:"longTerm"`
	Skills     []string `json:"skills"`
	Networking []string `json:"networking"`
}

// LuckyPeriods names favorable times for career moves.
type LuckyPeriods struct {
	BestMonths           []string `json:"bestMonths"`
	FavorableDays        []string `json:"favorableDays"`
	PlanetaryInfluences  string   `json:"planetaryInfluences"`
}

// AstrologicalProfile carries the sign-level career astrology.
type AstrologicalProfile struct {
	Ruling            string   `json:"ruling"`
	Element           string   `json:"element"`
	ModalityInfluence string   `json:"modalityInfluence"`
	CareerHouses      string   `json:"careerHouses"`
	BeneficPlanets    []string `json:"beneficPlanets"`
}

// CareerAnalysis is the full career reading.
type CareerAnalysis struct {
	PersonalityProfile    PersonalityProfile    `json:"personalityProfile"`
	CareerPaths           CareerPaths           `json:"careerPaths"`
	CurrentCareerAnalysis CurrentCareerAnalysis `json:"currentCareerAnalysis"`
	Recommendations       CareerRecommendations `json:"recommendations"`
	LuckyPeriods          LuckyPeriods          `json:"luckyPeriods"`
	Astrological          AstrologicalProfile   `json:"astrological"`
	DetailedAnalysis      string                `json:"detailedAnalysis"`
}

// PlanetaryTransit describes one current transit.
type PlanetaryTransit struct {
	Planet      string  `json:"planet"`
	Sign        string  `json:"sign"`
	Degree      float64 `json:"degree"`
	Aspect      string  `json:"aspect"`
	Influence   string  `json:"influence"` // positive, neutral or challenging
	Intensity   int     `json:"intensity"` // [0,100]
	Description string  `json:"description"`
	Duration    string  `json:"duration"`
	Icon        string  `json:"icon"`
}

// MoonPhase is the lunar portion of a transit analysis.
type MoonPhase struct {
	Phase        string `json:"phase"`
	Illumination int    `json:"illumination"` // [0,100]
	NextPhase    string `json:"nextPhase"`
	Influence    string `json:"influence"`
}

// TransitAnalysis is the full forecast for a given date.
type TransitAnalysis struct {
	CurrentDate    string             `json:"currentDate"`
	MajorTransits  []PlanetaryTransit `json:"majorTransits"`
	MoonPhase      MoonPhase          `json:"moonPhase"`
	WeeklyForecast string             `json:"weeklyForecast"`
}

// ChatReply is the free-text answer of the mystic chat feature.
type ChatReply struct {
	Content string `json:"content"`
}
