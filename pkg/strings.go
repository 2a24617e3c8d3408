package pkg

import "strings"

// ToTitle uppercases the first letter of each space-separated word and
// lowercases the rest ("stone pavers" -> "Stone Pavers").
func ToTitle(s string) string {
	words := strings.Split(s, " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
