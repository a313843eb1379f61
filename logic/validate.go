package logic

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"cosmind-backend/models"
)

// ParseResult maps a raw model response to the feature's typed record. The
// model is not trusted: anything that does not match the schema is a full
// abort, never a partial record.
func ParseResult(kind models.FeatureKind, raw string) (interface{}, error) {
	if kind == models.FeatureChat {
		if strings.TrimSpace(raw) == "" {
			return nil, &models.ParseError{Kind: models.ParseMalformedJSON, Err: errors.New("empty response")}
		}
		return &models.ChatReply{Content: raw}, nil
	}

	switch kind {
	case models.FeatureHoroscope:
		return parseHoroscope(raw)
	case models.FeatureCompatibility:
		return parseCompatibility(raw)
	case models.FeatureRitual:
		return parseRitual(raw)
	case models.FeatureCareer:
		return parseCareer(raw)
	case models.FeatureTransits:
		return parseTransits(raw)
	default:
		return nil, models.ErrUnknownFeature
	}
}

// decodeObject decodes raw as a JSON object so key presence can be checked
// before the typed unmarshal.
func decodeObject(raw string) (map[string]json.RawMessage, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &keys); err != nil {
		return nil, &models.ParseError{Kind: models.ParseMalformedJSON, Err: err}
	}
	return keys, nil
}

func requireKeys(keys map[string]json.RawMessage, names ...string) error {
	for _, name := range names {
		if _, ok := keys[name]; !ok {
			return &models.ParseError{Kind: models.ParseMissingKey, Key: name}
		}
	}
	return nil
}

func checkPercent(key string, value int) error {
	if value < 0 || value > 100 {
		return &models.ParseError{
			Kind: models.ParseOutOfRangeValue,
			Key:  key,
			Err:  fmt.Errorf("value %d outside [0,100]", value),
		}
	}
	return nil
}

// checkNonEmpty rejects empty enumerable collections. An empty list is
// reported as an out-of-range value for its key.
func checkNonEmpty(key string, length int) error {
	if length == 0 {
		return &models.ParseError{
			Kind: models.ParseOutOfRangeValue,
			Key:  key,
			Err:  errors.New("list must not be empty"),
		}
	}
	return nil
}

func parseHoroscope(raw string) (*models.HoroscopeReading, error) {
	keys, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}
	if err := requireKeys(keys, "reading", "mood", "lucky_numbers", "compatibility"); err != nil {
		return nil, err
	}

	var reading models.HoroscopeReading
	if err := json.Unmarshal([]byte(raw), &reading); err != nil {
		return nil, &models.ParseError{Kind: models.ParseMalformedJSON, Err: err}
	}
	if err := checkNonEmpty("lucky_numbers", len(reading.LuckyNumbers)); err != nil {
		return nil, err
	}
	return &reading, nil
}

func parseCompatibility(raw string) (*models.CompatibilityResult, error) {
	keys, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}
	required := []string{
		"overall", "emotional", "intellectual", "physical", "spiritual",
		"communication", "longTerm", "analysis", "strengths", "challenges",
		"advice", "bestAspects", "attentionAreas", "futureOutlook",
	}
	if err := requireKeys(keys, required...); err != nil {
		return nil, err
	}

	var result models.CompatibilityResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, &models.ParseError{Kind: models.ParseMalformedJSON, Err: err}
	}

	scores := []struct {
		key   string
		value int
	}{
		{"overall", result.Overall},
		{"emotional", result.Emotional},
		{"intellectual", result.Intellectual},
		{"physical", result.Physical},
		{"spiritual", result.Spiritual},
		{"communication", result.Communication},
		{"longTerm", result.LongTerm},
	}
	for _, s := range scores {
		if err := checkPercent(s.key, s.value); err != nil {
			return nil, err
		}
	}
	lists := []struct {
		key    string
		length int
	}{
		{"strengths", len(result.Strengths)},
		{"challenges", len(result.Challenges)},
		{"advice", len(result.Advice)},
	}
	for _, l := range lists {
		if err := checkNonEmpty(l.key, l.length); err != nil {
			return nil, err
		}
	}
	return &result, nil
}

func parseRitual(raw string) (*models.Ritual, error) {
	keys, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}
	required := []string{
		"title", "purpose", "intention", "difficulty", "duration",
		"totalTime", "bestTime", "materials", "preparation", "steps",
		"closing", "aftercare", "warnings", "affirmations",
		"crystals", "herbs", "colors",
	}
	if err := requireKeys(keys, required...); err != nil {
		return nil, err
	}

	var ritual models.Ritual
	if err := json.Unmarshal([]byte(raw), &ritual); err != nil {
		return nil, &models.ParseError{Kind: models.ParseMalformedJSON, Err: err}
	}
	if err := checkNonEmpty("materials", len(ritual.Materials)); err != nil {
		return nil, err
	}
	if err := checkNonEmpty("steps", len(ritual.Steps)); err != nil {
		return nil, err
	}
	return &ritual, nil
}

func parseCareer(raw string) (*models.CareerAnalysis, error) {
	keys, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}
	required := []string{
		"personalityProfile", "careerPaths", "currentCareerAnalysis",
		"recommendations", "luckyPeriods", "astrological", "detailedAnalysis",
	}
	if err := requireKeys(keys, required...); err != nil {
		return nil, err
	}

	var analysis models.CareerAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return nil, &models.ParseError{Kind: models.ParseMalformedJSON, Err: err}
	}

	scores := []struct {
		key   string
		value int
	}{
		{"personalityProfile.leadership", analysis.PersonalityProfile.Leadership},
		{"personalityProfile.creativity", analysis.PersonalityProfile.Creativity},
		{"personalityProfile.analytical", analysis.PersonalityProfile.Analytical},
		{"personalityProfile.social", analysis.PersonalityProfile.Social},
		{"personalityProfile.independence", analysis.PersonalityProfile.Independence},
		{"currentCareerAnalysis.compatibility", analysis.CurrentCareerAnalysis.Compatibility},
	}
	for _, s := range scores {
		if err := checkPercent(s.key, s.value); err != nil {
			return nil, err
		}
	}
	lists := []struct {
		key    string
		length int
	}{
		{"personalityProfile.strengths", len(analysis.PersonalityProfile.Strengths)},
		{"careerPaths.primary", len(analysis.CareerPaths.Primary)},
		{"recommendations.shortTerm", len(analysis.Recommendations.ShortTerm)},
	}
	for _, l := range lists {
		if err := checkNonEmpty(l.key, l.length); err != nil {
			return nil, err
		}
	}
	return &analysis, nil
}

func parseTransits(raw string) (*models.TransitAnalysis, error) {
	keys, err := decodeObject(raw)
	if err != nil {
		return nil, err
	}
	if err := requireKeys(keys, "majorTransits", "moonPhase", "weeklyForecast"); err != nil {
		return nil, err
	}

	var analysis models.TransitAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return nil, &models.ParseError{Kind: models.ParseMalformedJSON, Err: err}
	}
	if err := checkNonEmpty("majorTransits", len(analysis.MajorTransits)); err != nil {
		return nil, err
	}
	for i, transit := range analysis.MajorTransits {
		if err := checkPercent(fmt.Sprintf("majorTransits[%d].intensity", i), transit.Intensity); err != nil {
			return nil, err
		}
	}
	if err := checkPercent("moonPhase.illumination", analysis.MoonPhase.Illumination); err != nil {
		return nil, err
	}
	return &analysis, nil
}
