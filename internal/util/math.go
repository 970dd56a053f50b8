package util

import "math"

func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// ClampScore keeps a sub-score inside the [0,100] contract.
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// RoundScore rounds a weighted float score to the nearest integer and clamps it.
func RoundScore(score float64) int {
	return ClampScore(int(math.Round(score)))
}
