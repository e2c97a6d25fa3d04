package dates

// Match is a single date-shaped substring found in a scanned text. Start and
// End are byte offsets into the scanned string, so Text always equals
// text[Start:End].
type Match struct {
	Text  string
	Start int
	End   int
}

// Find scans text for every occurrence of the supported date shapes. Each
// shape scans the whole input left to right with non-overlapping matching,
// and the per-shape results are concatenated in shape order. Matching is
// stateless: every call scans from scratch and returns a fresh slice.
func Find(text string) []Match {
	var matches []Match
	for _, p := range patterns {
		for _, loc := range p.re.FindAllStringIndex(text, -1) {
			matches = append(matches, Match{
				Text:  text[loc[0]:loc[1]],
				Start: loc[0],
				End:   loc[1],
			})
		}
	}
	return matches
}
