package gir

import "strings"

// ParseContainedEntities implements the contained-entities parser (spec
// §4.2): it scans the article's links-preserved clean text for [[X(|…)?]]
// occurrences, tracking the running word position as if each link had
// already been collapsed the way CleanText collapses it. Entities whose
// title contains ':' are dropped. An occurrence immediately preceded by
// the literal word "new" does not establish an entity's first-word-index
// (prevents "New York" from registering "York" at that position); the
// entity is recorded on its first qualifying occurrence only.
func ParseContainedEntities(rawBody, title string, limits Limits) map[string]ContainedEntity {
	text := linksPreservedText(rawBody, title, limits)

	result := make(map[string]ContainedEntity)

	wordCount := 0
	lastWord := ""
	pos := 0

	matches := wikiLinkRe.FindAllStringSubmatchIndex(text, -1)

	for _, m := range matches {
		start, end := m[0], m[1]
		inner := text[m[2]:m[3]]

		gap := text[pos:start]
		if fields := strings.Fields(gap); len(fields) > 0 {
			wordCount += len(fields)
			lastWord = normaliseWordForNewCheck(fields[len(fields)-1])
		}

		entityParts := strings.Split(inner, "|")
		entityTitle := strings.TrimSpace(entityParts[0])

		kept := collapseOneWikiLink(inner)
		keptWords := strings.Fields(kept)

		if !strings.Contains(entityTitle, ":") {
			if _, already := result[entityTitle]; !already && entityTitle != "" {
				if lastWord != "new" {
					variants := make([]string, 0, len(entityParts))
					for _, p := range entityParts {
						variants = append(variants, strings.ToLower(strings.TrimSpace(p)))
					}
					result[entityTitle] = ContainedEntity{
						Title:        entityTitle,
						FirstWordIdx: wordCount,
						Variants:     variants,
					}
				}
			}
		}

		wordCount += len(keptWords)
		if len(keptWords) > 0 {
			lastWord = normaliseWordForNewCheck(keptWords[len(keptWords)-1])
		}
		pos = end
	}

	return result
}

// normaliseWordForNewCheck lowercases a token and strips leading/trailing
// punctuation, for comparing against the literal "new".
func normaliseWordForNewCheck(tok string) string {
	tok = strings.ToLower(tok)
	return strings.TrimFunc(tok, func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
}
