package types

import (
	"encoding/json"
	"strings"
)

// WordDef is one word of a finished puzzle. Tokens holds the word's
// letters in order; Placements holds ordered cell-ID sequences, exactly
// one per word in a finished puzzle. HintCellID is set on bonus words
// only and names the cell whose letter is revealed as a hint.
type WordDef struct {
	WordID     string     `json:"wordId"`
	Tokens     []string   `json:"tokens"`
	Size       int        `json:"size"`
	Placements [][]string `json:"placements"`
	HintCellID string     `json:"hintCellId,omitempty"`
}

// UnmarshalJSON resolves the historical "hintCell" field name into
// HintCellID. The alias is canonicalized here, at the ingestion
// boundary; nothing downstream reads it.
func (w *WordDef) UnmarshalJSON(data []byte) error {
	type wordDef WordDef
	aux := struct {
		*wordDef
		LegacyHintCell string `json:"hintCell"`
	}{wordDef: (*wordDef)(w)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if w.HintCellID == "" && aux.LegacyHintCell != "" {
		w.HintCellID = aux.LegacyHintCell
	}
	return nil
}

// Text returns the word as a single lowercase string.
func (w WordDef) Text() string {
	return strings.ToLower(strings.Join(w.Tokens, ""))
}

// TokensOf splits a plain word string into single-letter tokens.
func TokensOf(word string) []string {
	word = strings.ToLower(word)
	tokens := make([]string, 0, len(word))
	for _, r := range word {
		tokens = append(tokens, string(r))
	}
	return tokens
}
