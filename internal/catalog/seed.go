package catalog

import "fmt"

func init() {
	instruments := builtinInstruments()
	if err := validateInstruments(instruments); err != nil {
		// Built-in instruments are deploy-time configuration; a broken
		// seed is a programming error and must fail loudly.
		panic(fmt.Sprintf("catalog: %v", err))
	}
	c = buildCatalog(instruments)
}

// likert returns the standard five-point frequency scale used by the
// built-in instruments (weights 0-4).
func likert() []Option {
	return []Option{
		{Label: "Never", Weight: 0},
		{Label: "Rarely", Weight: 1},
		{Label: "Sometimes", Weight: 2},
		{Label: "Often", Weight: 3},
		{Label: "Almost always", Weight: 4},
	}
}

// wellnessBands is the shared band table for the built-in instruments.
// Thresholds overlap-free is not required; resolution picks the highest
// threshold <= percentage.
func wellnessBands(subject string) []Band {
	return []Band{
		{
			Threshold: 0.75,
			Title:     "Thriving",
			Summary:   fmt.Sprintf("Your %s is a real source of strength right now.", subject),
			Tips: []string{
				"Notice what is working and do more of it on purpose.",
				"Share one thing you appreciate with someone close to you.",
			},
		},
		{
			Threshold: 0.5,
			Title:     "Steady",
			Summary:   fmt.Sprintf("Your %s is on solid ground, with room to grow.", subject),
			Tips: []string{
				"Pick the single lowest-scoring area and give it ten minutes a day.",
				"Keep a short daily note of one good moment.",
			},
		},
		{
			Threshold: 0.25,
			Title:     "Strained",
			Summary:   fmt.Sprintf("Your %s is under noticeable pressure.", subject),
			Tips: []string{
				"Name the heaviest item out loud or on paper; it shrinks when named.",
				"Plan one small restorative act this week and protect it.",
				"Consider talking it through with someone you trust.",
			},
		},
		{
			Threshold: 0,
			Title:     "Needs care",
			Summary:   fmt.Sprintf("Your %s needs gentle, deliberate attention.", subject),
			Tips: []string{
				"Start with sleep, food, and one daily walk before anything else.",
				"Reach out to a friend, family member, or professional this week.",
				"Retake this check-in in two weeks to see what shifted.",
			},
		},
	}
}

// builtinInstruments returns the instruments compiled into the binary.
func builtinInstruments() []*Instrument {
	return []*Instrument{
		{
			Slug:        "relationship-health",
			Title:       "Relationship Health Check",
			Version:     "v1.1.0",
			Category:    "relationship",
			Description: "How connected, trusting, and heard do you feel with your partner or closest person?",
			MaxWeight:   4,
			Questions: []Question{
				{ID: "rh-trust", Domain: DomainRelations, Text: "I can rely on them when something goes wrong.", Options: likert()},
				{ID: "rh-heard", Domain: DomainRelations, Text: "When I speak about something difficult, I feel heard.", Options: likert()},
				{ID: "rh-conflict", Domain: DomainRelations, Text: "Our disagreements end in understanding rather than distance.", Options: likert()},
				{ID: "rh-time", Domain: DomainRelations, Text: "We spend unhurried time together that we both enjoy.", Options: likert()},
				{ID: "rh-self", Domain: DomainSelfWorth, Text: "I can be fully myself around them.", Options: likert()},
				{ID: "rh-repair", Domain: DomainEmotion, Text: "After a hard moment, one of us reaches out to repair things.", Options: likert()},
			},
			Bands: wellnessBands("closest relationship"),
		},
		{
			Slug:        "emotional-wellbeing",
			Title:       "Emotional Wellbeing Check",
			Version:     "v1.0.0",
			Category:    "emotion",
			Description: "A snapshot of your mood, energy, and ability to recover over the last two weeks.",
			MaxWeight:   4,
			Questions: []Question{
				{ID: "ew-calm", Domain: DomainEmotion, Text: "I have felt calm and settled.", Options: likert()},
				{ID: "ew-energy", Domain: DomainEmotion, Text: "I wake up with energy for the day.", Options: likert()},
				{ID: "ew-interest", Domain: DomainEmotion, Text: "Things I usually enjoy still interest me.", Options: likert()},
				{ID: "ew-recover", Domain: DomainStress, Text: "After a stressful moment, I return to baseline within the day.", Options: likert()},
				{ID: "ew-load", Domain: DomainStress, Text: "My daily load feels manageable.", Options: likert()},
				{ID: "ew-kind", Domain: DomainSelfWorth, Text: "I speak to myself the way I would to a friend.", Options: likert()},
				{ID: "ew-connected", Domain: DomainRelations, Text: "I have felt connected to the people around me.", Options: likert()},
				{ID: "ew-hope", Domain: DomainEmotion, Text: "I feel hopeful about the weeks ahead.", Options: likert()},
			},
			Bands: wellnessBands("emotional wellbeing"),
		},
	}
}
