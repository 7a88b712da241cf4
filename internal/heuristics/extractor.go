// Package heuristics implements the pattern-based extraction strategy. Each
// profile field has an independent sub-extractor; none of them can fail, and
// an unmatched field simply stays unset. The patterns are tuned for Persian
// self-introductions with the occasional Latin skill name mixed in.
package heuristics

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/hosseinfallah-h/iSelect-applicant/internal/lexicon"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/profile"
	"github.com/hosseinfallah-h/iSelect-applicant/internal/textnorm"
)

// tok matches a single word token: anything up to whitespace or punctuation.
const tok = `[^\s،؛,;.!؟:()«»]+`

var (
	lastNameRE     = regexp.MustCompile(`(?:نام خانوادگی|فامیلی|فامیل)(?: (?:من|ام|بنده))? (` + tok + `)`)
	firstNameRE    = regexp.MustCompile(`(?:اسم|نام)(?: (?:من|بنده|کوچکم|کوچک))? (` + tok + `)(?: (` + tok + `))?`)
	sentenceNameRE = regexp.MustCompile(`(?:من )?(` + tok + `)(?: (` + tok + `))? هستم`)

	agePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d{1,3}) ?سالمه`),
		regexp.MustCompile(`(\d{1,3}) ?ساله`),
		regexp.MustCompile(`سن(?:م| من)? ?:? ?(\d{1,3})`),
		regexp.MustCompile(`(\d{1,3}) سال (?:سن )?دارم`),
	}

	experiencePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d{1,2}) سال (?:سابقه|تجربه)`),
		regexp.MustCompile(`(?:سابقه|تجربه)(?: (?:کار|کاری))?(?: من)? ?:? ?(\d{1,2}) سال`),
		regexp.MustCompile(`(?:سابقه|تجربه)[^.!؟؛]*?(\d{1,2}) سال`),
	}

	cityPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?:ساکن|اهل)(?: شهر)? (` + tok + `)`),
		regexp.MustCompile(`(?:در|از) شهر (` + tok + `)`),
	}
)

// nameStopwords are tokens that never form a person name. They guard the
// marker rules and the positional fallback.
var nameStopwords = map[string]struct{}{
	"من": {}, "بنده": {}, "سلام": {}, "خب": {}, "اسم": {}, "نام": {},
	"هستم": {}, "هست": {}, "است": {}, "میباشد": {}, "باشد": {},
	"در": {}, "از": {}, "با": {}, "به": {}, "که": {}, "و": {}, "یک": {},
	"ساکن": {}, "اهل": {}, "شهر": {}, "سال": {}, "ساله": {}, "سالمه": {},
	"خانوادگی": {}, "فامیلی": {}, "آقا": {}, "خانم": {},
}

var (
	maleTokens   = []string{"مرد", "آقا", "اقا", "پسر"}
	femaleTokens = []string{"زن", "خانم", "دختر"}

	// Negative military phrases are checked first: several of them contain
	// the positive keyword as a substring.
	militaryExemptPhrases = []string{
		"معاف", "معافیت", "معافم",
		"پایان خدمت ندارم", "پایان خدمت ندارد",
		"خدمت نرفته", "سربازی نرفته", "سربازی نرفتم",
	}
	militaryCompletedPhrases = []string{
		"کارت پایان خدمت", "پایان خدمت", "خدمت رفته", "سربازی رفته",
		"خدمتم تمام", "خدمت تمام",
	}

	skillAnchors = []string{
		"مهارت های کلیدی", "مهارت های اصلی", "مهارت های فنی", "مهارت های من",
		"مهارت هایم", "مهارت هام", "مهارت ها", "مهارت", "توانایی ها", "توانایی",
		"skills", "skill",
	}
	interestAnchors = []string{
		"علاقه مندی های من", "علاقه مندی ها", "علاقه مندی", "علایق من",
		"علایق", "علاقه", "interests", "interest",
	}

	listFillers = map[string]struct{}{
		"من": {}, "هم": {}, "شامل": {}, "عبارتند": {}, "از": {},
		"های": {}, "هایم": {}, "هام": {}, "ها": {}, "کلیدی": {}, "اصلی": {}, "فنی": {},
		"به": {}, "دارم": {},
	}
)

// Extractor runs every field pattern over normalized text.
type Extractor struct {
	lex *lexicon.Store
}

func New(lex *lexicon.Store) *Extractor {
	return &Extractor{lex: lex}
}

// Extract runs all sub-extractors over the normalized text. It never fails;
// fields without a match keep their unset value.
func (e *Extractor) Extract(text string) profile.RawExtraction {
	text = textnorm.Normalize(text)
	lower := strings.ToLower(text)

	raw := profile.RawExtraction{Skills: []string{}, Interests: []string{}}

	raw.FirstName, raw.LastName = extractName(text)
	raw.Age = firstBoundedInt(text, agePatterns, profile.ValidAge)
	raw.ExperienceYears = firstBoundedInt(text, experiencePatterns, profile.ValidExperience)
	raw.City = extractCity(text)
	raw.Gender = e.extractGender(lower, raw.FirstName)
	raw.MilitaryStatus = extractMilitary(lower)
	raw.Skills = e.extractSkills(text, lower)
	raw.Interests = anchoredList(text, lower, interestAnchors)

	return raw
}

// extractName applies the name rules in order. A later rule only fills the
// slots an earlier rule left empty.
func extractName(text string) (first, last string) {
	if m := lastNameRE.FindStringSubmatch(text); m != nil && !isNameStopword(m[1]) {
		last = m[1]
	}

	if m := firstNameRE.FindStringSubmatch(text); m != nil && !isNameStopword(m[1]) {
		first = m[1]
		if last == "" && m[2] != "" && !isNameStopword(m[2]) {
			last = m[2]
		}
	}

	if first == "" {
		if m := sentenceNameRE.FindStringSubmatch(text); m != nil && !isNameStopword(m[1]) {
			first = m[1]
			if last == "" && m[2] != "" && !isNameStopword(m[2]) {
				last = m[2]
			}
		}
	}

	if first == "" {
		first, last = positionalName(text, last)
	}
	return first, last
}

// positionalName takes the first one or two non-stopword tokens as a last
// resort guess.
func positionalName(text, existingLast string) (string, string) {
	first, last := "", existingLast
	for _, t := range strings.Fields(text) {
		t = strings.Trim(t, "،؛,;.!؟:()«»")
		if t == "" || isNameStopword(t) || hasDigit(t) || t == existingLast {
			continue
		}
		if first == "" {
			first = t
			continue
		}
		if last == "" {
			last = t
		}
		break
	}
	return first, last
}

func isNameStopword(t string) bool {
	_, ok := nameStopwords[strings.ToLower(t)]
	return ok
}

func hasDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}

// firstBoundedInt returns the first pattern capture that parses to an
// integer inside the accepted domain. Out-of-domain captures are dropped,
// not reported.
func firstBoundedInt(text string, patterns []*regexp.Regexp, valid func(int) bool) profile.OptionalInt {
	for _, re := range patterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		n, ok := profile.ParseInt(m[1])
		if !ok || !valid(n.Value) {
			continue
		}
		return n
	}
	return profile.OptionalInt{}
}

func extractCity(text string) string {
	for _, re := range cityPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return ""
}

// extractGender looks for an explicit address term first and only then
// falls back to the name lexicon. Token boundaries keep substrings such as
// "زن" inside "وزن" from matching.
func (e *Extractor) extractGender(lower, firstName string) profile.Gender {
	for _, t := range maleTokens {
		if textnorm.ContainsToken(lower, t) {
			return profile.GenderMale
		}
	}
	for _, t := range femaleTokens {
		if textnorm.ContainsToken(lower, t) {
			return profile.GenderFemale
		}
	}
	return e.lex.GenderForName(firstName)
}

func extractMilitary(lower string) profile.MilitaryStatus {
	for _, p := range militaryExemptPhrases {
		if textnorm.ContainsToken(lower, p) {
			return profile.MilitaryExempt
		}
	}
	for _, p := range militaryCompletedPhrases {
		if textnorm.ContainsToken(lower, p) {
			return profile.MilitaryCompleted
		}
	}
	return profile.MilitaryUnset
}

// extractSkills merges the anchored list with a full-text dictionary scan,
// anchor hits first.
func (e *Extractor) extractSkills(text, lower string) []string {
	items := anchoredList(text, lower, skillAnchors)

	seen := make(map[string]struct{}, len(items))
	for _, it := range items {
		seen[strings.ToLower(it)] = struct{}{}
	}

	for _, entry := range e.lex.Skills() {
		if _, ok := seen[strings.ToLower(entry.Label)]; ok {
			continue
		}
		for _, syn := range entry.Synonyms {
			if textnorm.ContainsToken(lower, syn) {
				items = append(items, entry.Label)
				seen[strings.ToLower(entry.Label)] = struct{}{}
				break
			}
		}
	}
	return items
}

// anchoredList finds the first anchor phrase present in the text and splits
// the remainder of its sentence into list items. Only the first matching
// anchor is used.
func anchoredList(text, lower string, anchors []string) []string {
	for _, anchor := range anchors {
		idx := textnorm.IndexToken(lower, anchor)
		if idx < 0 {
			continue
		}
		// Lowercasing can change a rune's byte length, so byte offsets in
		// lower are mapped back to text by rune count.
		after := utf8.RuneCountInString(lower[:idx]) + utf8.RuneCountInString(anchor)
		rest := text[byteOffsetOfRune(text, after):]
		if cut := strings.IndexAny(rest, ".!؟؛\n"); cut >= 0 {
			rest = rest[:cut]
		}
		items := splitList(rest)
		if len(items) > 0 {
			return items
		}
	}
	return []string{}
}

// byteOffsetOfRune returns the byte offset of the n-th rune of s, or len(s)
// when s has fewer runes.
func byteOffsetOfRune(s string, n int) int {
	for i := range s {
		if n == 0 {
			return i
		}
		n--
	}
	return len(s)
}

// splitList breaks a raw list fragment into items, dropping filler tokens
// left over from the anchor phrase.
func splitList(fragment string) []string {
	fragment = strings.TrimLeft(fragment, " :،؛-")

	var items []string
	seen := make(map[string]struct{})
	for _, piece := range textnorm.SplitList(fragment) {
		piece = trimFillers(piece)
		if piece == "" {
			continue
		}
		key := strings.ToLower(piece)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		items = append(items, piece)
	}
	return items
}

func trimFillers(s string) string {
	fields := strings.Fields(s)
	start := 0
	for start < len(fields) {
		if _, ok := listFillers[strings.ToLower(fields[start])]; !ok {
			break
		}
		start++
	}
	end := len(fields)
	for end > start {
		if _, ok := listFillers[strings.ToLower(fields[end-1])]; !ok {
			break
		}
		end--
	}
	return strings.Join(fields[start:end], " ")
}
