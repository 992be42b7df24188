package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/samartharora25/SafeRove-Final/module/core/domain"
)

const LanguageAuto = "auto"

// Translator is the external translation collaborator. NoopTranslator is
// the in-process stand-in when no translation backend is configured.
type Translator interface {
	TranslateToEnglish(ctx context.Context, text, sourceLanguage string) (string, error)
}

type NoopTranslator struct{}

func (NoopTranslator) TranslateToEnglish(_ context.Context, text, _ string) (string, error) {
	return text, nil
}

// emergencyKeywords drives language detection: the first language whose
// table matches wins, english being the fallback.
var emergencyKeywords = map[string][]string{
	"english":  {"help", "emergency", "danger", "lost", "accident", "injured", "panic"},
	"hindi":    {"मदद", "आपातकाल", "खतरा", "खो गया", "दुर्घटना", "घायल"},
	"bengali":  {"সাহায্য", "জরুরী", "বিপদ", "হারিয়ে গেছে", "দুর্ঘটনা"},
	"tamil":    {"உதவி", "அவசரம்", "ஆபத்து", "தொலைந்து போனேன்"},
	"marathi":  {"मदत", "तातडीची", "धोका", "हरवलो"},
	"gujarati": {"મદદ", "તાતકાલિક", "ખતરો", "ખોવાઈ ગયો"},
}

// detectionOrder keeps language detection deterministic.
var detectionOrder = []string{"english", "hindi", "bengali", "tamil", "marathi", "gujarati"}

var (
	highUrgencyWords   = []string{"emergency", "danger", "help", "injured", "accident", "panic"}
	mediumUrgencyWords = []string{"lost", "confused", "stuck", "problem"}
)

// EmergencyProcessor triages emergency texts: language detection, optional
// translation, urgency leveling, and key-fact extraction.
type EmergencyProcessor struct {
	translator Translator
	log        zerolog.Logger
}

func NewEmergencyProcessor(translator Translator, log zerolog.Logger) *EmergencyProcessor {
	return &EmergencyProcessor{translator: translator, log: log}
}

// ProcessText analyzes one emergency text. Level 7 and above requires an
// immediate response.
func (p *EmergencyProcessor) ProcessText(ctx context.Context, text, language string) domain.EmergencyAnalysis {
	if language == "" || language == LanguageAuto {
		language = detectLanguage(text)
	}

	if language != "english" {
		translated, err := p.translator.TranslateToEnglish(ctx, text, language)
		if err != nil {
			p.log.Warn().Err(err).Str("language", language).Msg("translation failed, using raw text")
		} else {
			text = translated
		}
	}

	level := assessEmergencyLevel(text)

	return domain.EmergencyAnalysis{
		OriginalText:              text,
		Language:                  language,
		EmergencyLevel:            level,
		ExtractedInfo:             extractEmergencyInfo(text),
		RequiresImmediateResponse: level >= 7,
	}
}

func detectLanguage(text string) string {
	lower := strings.ToLower(text)
	for _, lang := range detectionOrder {
		for _, kw := range emergencyKeywords[lang] {
			if strings.Contains(lower, kw) {
				return lang
			}
		}
	}
	return "english"
}

func assessEmergencyLevel(text string) int {
	lower := strings.ToLower(text)

	high := 0
	for _, w := range highUrgencyWords {
		if strings.Contains(lower, w) {
			high++
		}
	}
	medium := 0
	for _, w := range mediumUrgencyWords {
		if strings.Contains(lower, w) {
			medium++
		}
	}

	switch {
	case high >= 2:
		return 9
	case high >= 1:
		return 7
	case medium >= 1:
		return 5
	default:
		return 3
	}
}

func extractEmergencyInfo(text string) domain.ExtractedInfo {
	lower := strings.ToLower(text)
	return domain.ExtractedInfo{
		LocationMentioned: containsAny(lower, "at", "near", "location", "place"),
		InjuryMentioned:   containsAny(lower, "hurt", "injured", "pain", "bleeding"),
		ContactRequested:  containsAny(lower, "call", "contact", "phone", "notify"),
		TransportNeeded:   containsAny(lower, "ambulance", "hospital", "transport", "pickup"),
	}
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
