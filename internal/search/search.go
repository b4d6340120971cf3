package search

import (
	"sort"
	"strings"
	"unicode"

	"daybook/internal/domain"
	"daybook/internal/store"
)

// DefaultThreshold filters out weak subsequence matches.
const DefaultThreshold = 40

// Result is one matched task. A zero Date marks a long-term task; Index is
// the task's position within its own list.
type Result struct {
	Date  domain.Date
	Index int
	Text  string
	Done  bool
	Score int
}

// Tasks scans every daily list and the long-term list for tasks fuzzy
// matching pattern, returning results sorted by score, then date.
func Tasks(st *store.Store, pattern string, threshold int) []Result {
	var results []Result

	for _, date := range st.Dates() {
		for i, task := range st.TasksOn(date) {
			if score := Score(pattern, task.Text); score >= threshold {
				results = append(results, Result{
					Date:  date,
					Index: i,
					Text:  task.Text,
					Done:  task.Done,
					Score: score,
				})
			}
		}
	}

	for i, text := range st.LongTerm() {
		if score := Score(pattern, text); score >= threshold {
			results = append(results, Result{
				Index: i,
				Text:  text,
				Score: score,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Date.Before(results[j].Date)
	})

	return results
}

// Score rates how well pattern fuzzy matches text, 0 to 100. The pattern
// must appear as a case-insensitive subsequence; runs of consecutive
// matches, matches at word starts, and early matches score higher, while
// unmatched trailing text drags the score down.
func Score(pattern, text string) int {
	if pattern == "" || text == "" {
		return 0
	}

	pattern = strings.ToLower(pattern)
	lowered := strings.ToLower(text)

	if pattern == lowered {
		return 100
	}

	positions := subsequencePositions([]rune(pattern), []rune(lowered))
	if positions == nil {
		return 0
	}

	patternLen := len([]rune(pattern))
	textLen := len([]rune(lowered))

	score := 50.0
	score += float64(patternLen) / float64(textLen) * 25.0

	if positions[0] == 0 {
		score += 12.0
	}

	run := longestRun(positions)
	score += float64(run) / float64(patternLen) * 20.0
	score -= float64(patternLen-run) * 4.0

	score += wordStartRatio([]rune(lowered), positions) * 10.0
	score -= float64(textLen-patternLen) * 0.5

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return int(score)
}

// subsequencePositions greedily matches pattern runes left to right,
// returning the matched indexes or nil when the pattern does not fit.
func subsequencePositions(pattern, text []rune) []int {
	positions := make([]int, 0, len(pattern))
	pi := 0
	for ti := 0; ti < len(text) && pi < len(pattern); ti++ {
		if pattern[pi] == text[ti] {
			positions = append(positions, ti)
			pi++
		}
	}
	if pi < len(pattern) {
		return nil
	}
	return positions
}

func longestRun(positions []int) int {
	best, run := 1, 1
	for i := 1; i < len(positions); i++ {
		if positions[i] == positions[i-1]+1 {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 1
		}
	}
	return best
}

// wordStartRatio is the fraction of matched runes sitting at the start of
// the text or right after a non-alphanumeric rune.
func wordStartRatio(text []rune, positions []int) float64 {
	starts := 0
	for _, pos := range positions {
		if pos == 0 {
			starts++
			continue
		}
		prev := text[pos-1]
		if !unicode.IsLetter(prev) && !unicode.IsDigit(prev) {
			starts++
		}
	}
	return float64(starts) / float64(len(positions))
}
