package dashboard

import (
	"encoding/json"
	"time"
)

// fallbackTemplate is served while a day has no generated content. It is
// never modified; Fallback works on copies.
var fallbackTemplate = Content{
	Verse: Verse{
		Text:             "For we walk by faith, not by sight.",
		Reference:        "2 Corinthians 5:7",
		Context:          "Paul is speaking about the eternal home and the courage believers have.",
		CrossReferences:  []string{"Hebrews 11:1", "Romans 8:24"},
		GospelConnection: "Our faith is anchored in the finished work of Christ, even when unseen.",
	},
	Passage: Passage{
		Reference:         "Psalm 23",
		Text:              "The Lord is my shepherd; I shall not want. He makes me lie down in green pastures...",
		Outline:           []string{"The Shepherd's Provision", "The Shepherd's Protection", "The Shepherd's Presence"},
		Author:            "David",
		HistoricalSetting: "Likely written later in David's life, reflecting on God's faithfulness.",
	},
	Devotional: Devotional{
		Title:           "Walking by Faith",
		ScriptureQuote:  "For we walk by faith, not by sight. - 2 Corinthians 5:7",
		ShortReflection: "Faith is our compass when the path ahead is unclear.",
		LongReflection:  "In our daily walk with God, we are called to trust Him even when circumstances don't make sense. Faith isn't the absence of doubt, but the choice to believe God's promises despite our feelings. Just as Abraham walked into the unknown, we too are invited to step forward in confidence, knowing that our faithful God goes before us.",
		Application:     "What is one area where you need to trust God more today? Take one small step of faith.",
		PrayerGuide:     "Lord, help me to walk by faith today, trusting Your unseen hand to guide my steps.",
	},
	Questions: Questions{
		HeartCheck:     "Is my heart at rest in God today, or am I anxious?",
		BeliefCheck:    "Do I truly believe that God is sufficient for my needs?",
		ObedienceCheck: "What specific step of obedience is God calling me to take?",
	},
	Prayer: Prayer{
		FocusTheme:   "Trust and Surrender",
		Scripture:    "Proverbs 3:5-6",
		GuidedPrayer: "Lord, I choose to trust You with all my heart. Help me not to lean on my own understanding, but to acknowledge You in all my ways.",
	},
	Theme: Theme{
		Theme:            "God's Faithfulness",
		KeyVerse:         "Great is Your faithfulness. - Lamentations 3:23",
		SupportingVerses: []string{"Psalm 89:1", "1 Thessalonians 5:24", "Deuteronomy 7:9"},
	},
	Attribute: Attribute{
		Attribute:       "Immutable",
		Definition:      "God is unchanging in His character, promises, and purposes.",
		ScriptureProof:  "I the Lord do not change. - Malachi 3:6",
		WorshipResponse: "I praise You, Lord, for being my unchanging Rock in a world of constant change.",
	},
	Gospel: Gospel{
		Truth:       "Christ died for the ungodly",
		Reference:   "Romans 5:6-8",
		Explanation: "While we were still sinners, Christ died for us. Salvation is entirely by grace, not by our works or merit.",
	},
	History: History{
		Event:       "David Anointed as King",
		Reference:   "1 Samuel 16",
		Description: "God rejects Saul and sends Samuel to anoint David, the youngest son of Jesse, as the future king of Israel.",
		Timeline: Timeline{
			Before: "Saul rejected by God for disobedience",
			During: "Samuel anoints David; the Spirit of the Lord comes upon him",
			After:  "David begins his journey to the throne, learning faithfulness through trials",
		},
	},
}

// Fallback returns a fresh copy of the fallback content stamped with now.
func Fallback(now time.Time) Content {
	content := fallbackTemplate.clone()
	content.Date = stamp(now)
	return content
}

// FallbackPayload encodes Fallback(now).
func FallbackPayload(now time.Time) json.RawMessage {
	payload, err := json.Marshal(Fallback(now))
	if err != nil {
		// Content holds only strings and string slices.
		panic(err)
	}
	return payload
}

func stamp(now time.Time) string {
	return now.Format(time.RFC3339)
}
