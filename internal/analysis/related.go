package analysis

import "sort"

// Partner is one co-occurring symptom with its raw count.
type Partner struct {
	Symptom string
	Count   int
}

// Related lists the strongest co-occurring partners of one symptom.
type Related struct {
	Symptom  string
	Partners []Partner
}

// RelatedSymptoms returns, for every symptom in the matrix, its top-N
// partners by co-occurrence count (count desc, lexicographic tie-break).
// Symptoms without any partner come back with an empty list so the caller
// can render a complete table. topN <= 0 means unbounded.
func RelatedSymptoms(m *Matrix, topN int) []Related {
	partners := map[string][]Partner{}
	for _, p := range m.Pairs() {
		count := m.Count(p.A, p.B)
		if count == 0 {
			continue
		}
		partners[p.A] = append(partners[p.A], Partner{Symptom: p.B, Count: count})
		partners[p.B] = append(partners[p.B], Partner{Symptom: p.A, Count: count})
	}
	out := make([]Related, 0, len(m.Symptoms()))
	for _, s := range m.Symptoms() {
		list := partners[s]
		sort.Slice(list, func(i, j int) bool {
			if list[i].Count != list[j].Count {
				return list[i].Count > list[j].Count
			}
			return list[i].Symptom < list[j].Symptom
		})
		if topN > 0 && len(list) > topN {
			list = list[:topN]
		}
		out = append(out, Related{Symptom: s, Partners: list})
	}
	return out
}
