package main

import (
	"fmt"

	"bukvoed/internal/words"
)

func (c *CLI) addWord(store *words.Store) error {
	count, err := store.Add(c.AddWord)
	if err != nil {
		return fmt.Errorf("cannot add %q: %w", c.AddWord, err)
	}
	fmt.Printf("Dictionary %s has %d words\n", store.Path(), count)
	return nil
}

func (c *CLI) removeWord(store *words.Store) error {
	count, err := store.Remove(c.RemoveWord)
	if err != nil {
		return fmt.Errorf("cannot remove %q: %w", c.RemoveWord, err)
	}
	fmt.Printf("Dictionary %s has %d words\n", store.Path(), count)
	return nil
}

func (c *CLI) listWords(store *words.Store) error {
	list := store.Load()
	if c.Limit >= 0 && c.Limit < len(list) {
		list = list[:c.Limit]
	}
	if len(list) == 0 {
		fmt.Println("No words found.")
		return nil
	}
	for _, w := range list {
		fmt.Println(w)
	}
	return nil
}
