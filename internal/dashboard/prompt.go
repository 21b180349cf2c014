package dashboard

// Prompt asks the model for one day of dashboard content in the Content shape.
const Prompt = `Generate a comprehensive daily devotional dashboard for "Ayumi - Walking with God", a Christian discipleship app for serious believers.

Requirements:
- Quote all scripture from the English Standard Version (ESV).
- Theology: evangelical, scripture-first, gospel-centered.
- Every verse must be accurate and verifiable.
- Reply with a single JSON object and nothing else.

The JSON object must have exactly this structure:
{
  "date": "current date as ISO string",
  "verse": {
    "text": "full verse text",
    "reference": "book chapter:verse",
    "context": "brief context of the passage",
    "crossReferences": ["reference1", "reference2"],
    "gospelConnection": "how this verse points to the gospel"
  },
  "passage": {
    "reference": "longer passage reference",
    "text": "multiple verses, paragraph form",
    "outline": ["main point 1", "main point 2", "main point 3"],
    "author": "biblical author",
    "historicalSetting": "brief historical context"
  },
  "devotional": {
    "title": "devotional title",
    "scriptureQuote": "main verse with reference",
    "shortReflection": "1-2 sentence summary",
    "longReflection": "3-4 paragraph deep reflection",
    "application": "practical application point",
    "prayerGuide": "guided prayer based on the text"
  },
  "questions": {
    "heartCheck": "question about heart condition",
    "beliefCheck": "question about faith and trust",
    "obedienceCheck": "question about practical obedience"
  },
  "prayer": {
    "focusTheme": "prayer theme for the day",
    "scripture": "verse to pray through",
    "guidedPrayer": "sample prayer"
  },
  "theme": {
    "theme": "theological theme",
    "keyVerse": "main verse for theme",
    "supportingVerses": ["verse1", "verse2", "verse3"]
  },
  "attribute": {
    "attribute": "an attribute of God",
    "definition": "clear definition",
    "scriptureProof": "verse proving this attribute",
    "worshipResponse": "sample worship response"
  },
  "gospel": {
    "truth": "core gospel truth",
    "reference": "scripture reference",
    "explanation": "clear explanation"
  },
  "history": {
    "event": "biblical event",
    "reference": "scripture reference",
    "description": "event description",
    "timeline": {
      "before": "what led to this event",
      "during": "what happened",
      "after": "the result/impact"
    }
  }
}`
