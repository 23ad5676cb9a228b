package tokenizer

// BuildTermFrequencyMap counts occurrences of each token.
func BuildTermFrequencyMap(tokens []string) map[string]int {
	freq := make(map[string]int, len(tokens))
	for _, t := range tokens {
		freq[t]++
	}
	return freq
}

func toSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

// JaccardSimilarity returns |set(A) ∩ set(B)| / |set(A) ∪ set(B)|, 0 when
// the union is empty.
func JaccardSimilarity(a, b []string) float64 {
	setA := toSet(a)
	setB := toSet(b)

	if len(setA) == 0 && len(setB) == 0 {
		return 0
	}

	intersection := 0
	for t := range setA {
		if _, ok := setB[t]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// TermOverlapRatio returns |set(A) ∩ set(B)| / |A|, 0 when A is empty.
// The numerator is a set intersection (unique terms); the denominator is
// the raw (possibly duplicate-counting) length of A, exactly as specified.
func TermOverlapRatio(a, b []string) float64 {
	if len(a) == 0 {
		return 0
	}
	setA := toSet(a)
	setB := toSet(b)

	intersection := 0
	for t := range setA {
		if _, ok := setB[t]; ok {
			intersection++
		}
	}
	return float64(intersection) / float64(len(a))
}
