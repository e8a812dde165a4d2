package quest

import (
	"fmt"
	"sort"
)

// Entry is one callable quest part.
type Entry struct {
	// Name is the short entry name, "q<quest>_<part>".
	Name        string
	Quest, Part int
	Run         func(*Solver) (string, error)
}

func entry(quest, part int, run func(*Solver) (string, error)) Entry {
	return Entry{Name: fmt.Sprintf("q%d_%d", quest, part), Quest: quest, Part: part, Run: run}
}

// Registry returns every entry ordered by quest, then part.
func Registry() []Entry {
	entries := []Entry{
		entry(radiusQuest, 1, (*Solver).SolvePart1),
		entry(radiusQuest, 2, (*Solver).SolvePart2),
		entry(rotationQuest, 1, (*Solver).RotationClamp),
		entry(rotationQuest, 2, (*Solver).RotationWrap),
		entry(rotationQuest, 3, (*Solver).RotationSwap),
		entry(knightQuest, 1, (*Solver).KnightSheep),
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Quest != entries[j].Quest {
			return entries[i].Quest < entries[j].Quest
		}
		return entries[i].Part < entries[j].Part
	})

	return entries
}

// Lookup finds the entry for (quest, part).
func Lookup(quest, part int) (Entry, error) {
	for _, e := range Registry() {
		if e.Quest == quest && e.Part == part {
			return e, nil
		}
	}

	return Entry{}, fmt.Errorf("quest %d part %d: %w", quest, part, ErrUnknownEntry)
}

// LookupName finds an entry by its short name, e.g. "q17_2".
func LookupName(name string) (Entry, error) {
	for _, e := range Registry() {
		if e.Name == name {
			return e, nil
		}
	}

	return Entry{}, fmt.Errorf("%q: %w", name, ErrUnknownEntry)
}
