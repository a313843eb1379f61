package logic

import (
	"fmt"
	"strings"

	"cosmind-backend/models"
)

// requiredFields lists the form fields each feature mandates. Missing or
// blank fields fail before any ledger call.
var requiredFields = map[models.FeatureKind][]string{
	models.FeatureHoroscope:     {"name", "sign"},
	models.FeatureCompatibility: {"person1_name", "person1_sign", "person2_name", "person2_sign"},
	models.FeatureRitual:        {"ritual_type", "moon_phase", "experience"},
	models.FeatureCareer:        {"sign", "current_role", "career_area", "satisfaction"},
	models.FeatureChat:          {"message"},
	models.FeatureTransits:      {},
}

// ValidateFields checks that every mandated field is present and non-blank.
func ValidateFields(kind models.FeatureKind, fields map[string]string) error {
	if !kind.Valid() {
		return models.ErrUnknownFeature
	}
	for _, name := range requiredFields[kind] {
		if strings.TrimSpace(fields[name]) == "" {
			return &models.MissingFieldError{Field: name}
		}
	}
	return nil
}

// sanitize strips control characters from a user-supplied value before it is
// embedded in a prompt. Values are otherwise passed through verbatim.
func sanitize(value string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return ' '
		}
		return r
	}, value)
}

func field(fields map[string]string, name string) string {
	return sanitize(strings.TrimSpace(fields[name]))
}

func fieldOr(fields map[string]string, name, fallback string) string {
	if v := field(fields, name); v != "" {
		return v
	}
	return fallback
}

// BuildPrompt produces the system and user instruction for a feature. It is
// a pure function of its inputs; date is the reference day for date-bound
// readings, formatted by the caller.
func BuildPrompt(kind models.FeatureKind, fields map[string]string, date string) (system, user string, err error) {
	if err := ValidateFields(kind, fields); err != nil {
		return "", "", err
	}

	switch kind {
	case models.FeatureHoroscope:
		return horoscopeSystem, fmt.Sprintf(horoscopeUser,
			field(fields, "name"), field(fields, "sign"), date,
			fieldOr(fields, "birth_date", "not provided")), nil
	case models.FeatureCompatibility:
		return compatibilitySystem, fmt.Sprintf(compatibilityUser,
			field(fields, "person1_name"), field(fields, "person1_sign"),
			field(fields, "person2_name"), field(fields, "person2_sign")), nil
	case models.FeatureRitual:
		return ritualSystem, fmt.Sprintf(ritualUser,
			field(fields, "ritual_type"), field(fields, "moon_phase"),
			field(fields, "experience"),
			fieldOr(fields, "intention", "not specified"),
			fieldOr(fields, "available_time", "flexible")), nil
	case models.FeatureCareer:
		return careerSystem, fmt.Sprintf(careerUser,
			field(fields, "sign"), field(fields, "current_role"),
			field(fields, "career_area"), field(fields, "satisfaction"),
			fieldOr(fields, "goals", "not specified"),
			fieldOr(fields, "challenges", "not specified")), nil
	case models.FeatureChat:
		return chatSystem, field(fields, "message"), nil
	case models.FeatureTransits:
		return transitsSystem, fmt.Sprintf(transitsUser, date), nil
	default:
		return "", "", models.ErrUnknownFeature
	}
}

const horoscopeSystem = `You are an expert mystic astrologer. You write personalized daily horoscopes in an engaging, mystical yet accessible voice. Be specific and inspiring.

Respond with ONLY a single JSON object (no markdown, no code fences, no extra text) with exactly these keys:
{
  "reading": "<detailed 2-3 paragraph reading>",
  "mood": "<mood/energy of the day>",
  "lucky_numbers": [<three lucky numbers>],
  "compatibility": "<most compatible sign today>"
}`

const horoscopeUser = `Generate a personalized horoscope.

Name: %s
Sign: %s
Date: %s
Birth date: %s`

const compatibilitySystem = `You are an astrologer specialized in love compatibility analysis. Consider elements, astrological qualities, planetary rulerships and the aspects between the signs. Every score is a percentage between 0 and 100.

Respond with ONLY a single JSON object (no markdown, no code fences) with exactly these keys: overall, emotional, intellectual, physical, spiritual, communication, longTerm (all numbers 0-100), analysis (2-3 paragraphs), strengths (array of 3-4), challenges (array of 3-4), advice (array of 3-4), bestAspects, attentionAreas, futureOutlook.`

const compatibilityUser = `Analyze the compatibility between %s (%s) and %s (%s).`

const ritualSystem = `You are an expert in mystic rituals and esoteric practices. You design complete, safe, personalized rituals.

Respond with ONLY a single JSON object (no markdown, no code fences) with exactly these keys: title, purpose, intention, difficulty, duration, totalTime, bestTime, materials (array), preparation, steps (array of objects with order, title, description, duration and optional materials, notes), closing, aftercare (array), warnings (array), affirmations (array), crystals (array), herbs (array), colors (array).`

const ritualUser = `Create a personalized ritual.

Type: %s
Moon phase: %s
Experience level: %s
Specific intention: %s
Available time: %s`

const careerSystem = `You are an astrologer specialized in career and professional vocation. All numeric fields are scores between 0 and 100.

Respond with ONLY a single JSON object (no markdown, no code fences) with exactly these keys:
{
  "personalityProfile": {"strengths": [], "challenges": [], "workStyle": "", "leadership": 0, "creativity": 0, "analytical": 0, "social": 0, "independence": 0},
  "careerPaths": {"primary": [], "secondary": [], "emerging": []},
  "currentCareerAnalysis": {"compatibility": 0, "strengths": [], "improvementAreas": [], "growthPotential": ""},
  "recommendations": {"shortTerm": [], "longTerm": [], "skills": [], "networking": []},
  "luckyPeriods": {"bestMonths": [], "favorableDays": [], "planetaryInfluences": ""},
  "astrological": {"ruling": "", "element": "", "modalityInfluence": "", "careerHouses": "", "beneficPlanets": []},
  "detailedAnalysis": "<3-4 paragraphs>"
}`

const careerUser = `Analyze this person's career.

Sign: %s
Current role: %s
Career area: %s
Current satisfaction: %s
Goals: %s
Challenges: %s`

const chatSystem = `You are a mystic AI specialized in astrology, tarot and esoteric sciences. Answer in an engaging, mystical yet accessible voice. Be specific and helpful, and keep answers concise.`

const transitsSystem = `You are an astrologer specialized in planetary transits. Cover the major current transits (Mars, Venus, Mercury, Jupiter, Saturn), the current moon phase and its influence, important aspects between planets, and a general weekly forecast. intensity and illumination are numbers between 0 and 100.

Respond with ONLY a single JSON object (no markdown, no code fences) with exactly this structure:
{
  "majorTransits": [{"planet": "", "sign": "", "degree": 0, "aspect": "", "influence": "positive|neutral|challenging", "intensity": 0, "description": "", "duration": "", "icon": ""}],
  "moonPhase": {"phase": "", "illumination": 0, "nextPhase": "", "influence": ""},
  "weeklyForecast": ""
}`

const transitsUser = `Generate a complete analysis of the current planetary transits for %s.`
