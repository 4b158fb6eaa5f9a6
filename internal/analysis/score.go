package analysis

// relevanceScore is the fraction of unique requested keywords found at
// least once. An empty keyword set scores zero by convention: there is no
// denominator to divide by.
func relevanceScore(matched, unique int) float64 {
	if unique == 0 {
		return 0.0
	}
	return float64(matched) / float64(unique)
}
