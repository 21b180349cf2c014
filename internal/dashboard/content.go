package dashboard

// Content is the daily dashboard document. Generated output must fill every
// field before it is stored.
type Content struct {
	Date       string     `json:"date"`
	Verse      Verse      `json:"verse" validate:"required"`
	Passage    Passage    `json:"passage" validate:"required"`
	Devotional Devotional `json:"devotional" validate:"required"`
	Questions  Questions  `json:"questions" validate:"required"`
	Prayer     Prayer     `json:"prayer" validate:"required"`
	Theme      Theme      `json:"theme" validate:"required"`
	Attribute  Attribute  `json:"attribute" validate:"required"`
	Gospel     Gospel     `json:"gospel" validate:"required"`
	History    History    `json:"history" validate:"required"`
}

type Verse struct {
	Text             string   `json:"text" validate:"required"`
	Reference        string   `json:"reference" validate:"required"`
	Context          string   `json:"context" validate:"required"`
	CrossReferences  []string `json:"crossReferences" validate:"required,min=1,dive,required"`
	GospelConnection string   `json:"gospelConnection" validate:"required"`
}

type Passage struct {
	Reference         string   `json:"reference" validate:"required"`
	Text              string   `json:"text" validate:"required"`
	Outline           []string `json:"outline" validate:"required,min=1,dive,required"`
	Author            string   `json:"author" validate:"required"`
	HistoricalSetting string   `json:"historicalSetting" validate:"required"`
}

type Devotional struct {
	Title           string `json:"title" validate:"required"`
	ScriptureQuote  string `json:"scriptureQuote" validate:"required"`
	ShortReflection string `json:"shortReflection" validate:"required"`
	LongReflection  string `json:"longReflection" validate:"required"`
	Application     string `json:"application" validate:"required"`
	PrayerGuide     string `json:"prayerGuide" validate:"required"`
}

type Questions struct {
	HeartCheck     string `json:"heartCheck" validate:"required"`
	BeliefCheck    string `json:"beliefCheck" validate:"required"`
	ObedienceCheck string `json:"obedienceCheck" validate:"required"`
}

type Prayer struct {
	FocusTheme   string `json:"focusTheme" validate:"required"`
	Scripture    string `json:"scripture" validate:"required"`
	GuidedPrayer string `json:"guidedPrayer" validate:"required"`
}

type Theme struct {
	Theme            string   `json:"theme" validate:"required"`
	KeyVerse         string   `json:"keyVerse" validate:"required"`
	SupportingVerses []string `json:"supportingVerses" validate:"required,min=1,dive,required"`
}

type Attribute struct {
	Attribute       string `json:"attribute" validate:"required"`
	Definition      string `json:"definition" validate:"required"`
	ScriptureProof  string `json:"scriptureProof" validate:"required"`
	WorshipResponse string `json:"worshipResponse" validate:"required"`
}

type Gospel struct {
	Truth       string `json:"truth" validate:"required"`
	Reference   string `json:"reference" validate:"required"`
	Explanation string `json:"explanation" validate:"required"`
}

type History struct {
	Event       string   `json:"event" validate:"required"`
	Reference   string   `json:"reference" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Timeline    Timeline `json:"timeline" validate:"required"`
}

type Timeline struct {
	Before string `json:"before" validate:"required"`
	During string `json:"during" validate:"required"`
	After  string `json:"after" validate:"required"`
}

// clone returns a deep copy; slices are never shared between copies.
func (c Content) clone() Content {
	out := c
	out.Verse.CrossReferences = append([]string(nil), c.Verse.CrossReferences...)
	out.Passage.Outline = append([]string(nil), c.Passage.Outline...)
	out.Theme.SupportingVerses = append([]string(nil), c.Theme.SupportingVerses...)
	return out
}
