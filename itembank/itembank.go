// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package itembank

import (
	"encoding/json"
	"fmt"
	"os"
)

// Item is a single Big Five questionnaire question.
type Item struct {
	ID        int    `json:"id"`
	Text      string `json:"texto"`
	Dimension string `json:"dimension"`
	Reversed  bool   `json:"invertido"`
}

// Bank is the immutable questionnaire item bank, loaded once at startup and
// read-only afterwards.
type Bank struct {
	items []Item
}

// Load reads the item bank from a JSON file. A missing file is tolerated and
// yields an empty bank; a present but malformed file is an error.
func Load(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Bank{}, nil
		}
		return nil, fmt.Errorf("failed to read item bank: %w", err)
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse item bank %s: %w", path, err)
	}

	return &Bank{items: items}, nil
}

// Items returns the loaded questions. Never nil, so it serializes as [].
func (b *Bank) Items() []Item {
	if b.items == nil {
		return []Item{}
	}
	return b.items
}

// Len returns the number of loaded questions.
func (b *Bank) Len() int {
	return len(b.items)
}
