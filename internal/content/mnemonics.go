package content

import (
	"fmt"
	"strings"

	"spellingmaster/internal/models"
)

// Mnemonic is the memory aid shown during the learning phase.
type Mnemonic struct {
	Word   string   `json:"word"`
	Tricks []string `json:"tricks"`
	Tip    string   `json:"tip"`
}

var statutoryMnemonics = map[string]Mnemonic{
	"accommodate": {
		Word:   "accommodate",
		Tricks: []string{"Two cots need two mattresses: double C, double M", "ac-COM-mo-date"},
		Tip:    "The hotel can accommodate two Cs and two Ms.",
	},
	"because": {
		Word:   "because",
		Tricks: []string{"Big Elephants Can Always Understand Small Elephants"},
		Tip:    "Take the first letter of each word in the phrase.",
	},
	"beautiful": {
		Word:   "beautiful",
		Tricks: []string{"Big Elephants Are Usually beautiful", "beau-ti-ful"},
		Tip:    "BEAU starts it off, like a beautiful bow.",
	},
	"cemetery": {
		Word:   "cemetery",
		Tricks: []string{"Three Es buried in a row: c-E-m-E-t-E-ry"},
		Tip:    "She screamed E-E-E as she ran past the cemetery.",
	},
	"conscience": {
		Word:   "conscience",
		Tricks: []string{"CON + SCIENCE", "Your conscience is the science of knowing right from wrong"},
		Tip:    "Science is hiding inside conscience.",
	},
	"definite": {
		Word:   "definite",
		Tricks: []string{"There is no A in definite", "de-FIN-ite: it is FINished, it is definite"},
		Tip:    "Finite sits inside definite.",
	},
	"embarrass": {
		Word:   "embarrass",
		Tricks: []string{"Really Red cheeks, Smiling Shyly: double R, double S"},
		Tip:    "Embarrassment doubles you up, so double the R and the S.",
	},
	"environment": {
		Word:   "environment",
		Tricks: []string{"There is IRON in the envIRONment", "en-vi-ron-ment"},
		Tip:    "Do not lose the N before the M.",
	},
	"friend": {
		Word:   "friend",
		Tricks: []string{"A FRIEND is there to the END", "FRI + END"},
		Tip:    "I before E: fri-END.",
	},
	"government": {
		Word:   "government",
		Tricks: []string{"GOVERN + MENT", "A government must govern"},
		Tip:    "Keep the N of govern before -ment.",
	},
	"island": {
		Word:   "island",
		Tricks: []string{"An ISland IS LAND surrounded by water"},
		Tip:    "The S is silent, like a quiet island.",
	},
	"necessary": {
		Word:   "necessary",
		Tricks: []string{"One Collar, two Sleeves: one C, two Ss", "ne-CESS-ary"},
		Tip:    "A shirt has one collar and two sleeves.",
	},
	"people": {
		Word:   "people",
		Tricks: []string{"People Eat Oranges, People Like Eating"},
		Tip:    "Take the first letter of each word in the phrase.",
	},
	"rhythm": {
		Word:   "rhythm",
		Tricks: []string{"Rhythm Helps Your Two Hips Move"},
		Tip:    "Take the first letter of each word in the phrase.",
	},
	"secretary": {
		Word:   "secretary",
		Tricks: []string{"A secretary keeps a SECRET", "secret + ary"},
		Tip:    "Secret is hiding at the start.",
	},
	"separate": {
		Word:   "separate",
		Tricks: []string{"There is A RAT in sepARATe"},
		Tip:    "Keep the rat in the middle: sep-a-rat-e.",
	},
	"stomach": {
		Word:   "stomach",
		Tricks: []string{"Stop Tickling Our Monkey, A Cheeky Habit"},
		Tip:    "It ends in ACH, not ACK.",
	},
	"twelfth": {
		Word:   "twelfth",
		Tricks: []string{"TWELve + FTH", "Do not lose the F from twelve"},
		Tip:    "Twelve keeps its F in twelfth.",
	},
	"vegetable": {
		Word:   "vegetable",
		Tricks: []string{"VEG-E-TABLE: put the veg on the table"},
		Tip:    "There is a table at the end of vegetable.",
	},
	"yacht": {
		Word:   "yacht",
		Tricks: []string{"Young Arthur's Cat Hates Travelling"},
		Tip:    "Take the first letter of each word in the phrase.",
	},
}

var year2Mnemonics = map[string]Mnemonic{
	"because": {
		Word:   "because",
		Tricks: []string{"Big Elephants Can Always Understand Small Elephants"},
		Tip:    "Take the first letter of each word in the phrase.",
	},
	"beautiful": {
		Word:   "beautiful",
		Tricks: []string{"Big Elephants Are Usually beautiful"},
		Tip:    "BEAU starts it off.",
	},
	"could": {
		Word:   "could",
		Tricks: []string{"O U Lucky Duck! could, would, should"},
		Tip:    "Could, would and should all hide OUL.",
	},
	"friend": {
		Word:   "friend",
		Tricks: []string{"A FRIEND is there to the END"},
		Tip:    "FRI + END.",
	},
	"gnome": {
		Word:   "gnome",
		Tricks: []string{"The G is silent, like a sneaky gnome"},
		Tip:    "GN at the start, silent G.",
	},
	"knight": {
		Word:   "knight",
		Tricks: []string{"The K is a silent guard at the front of the castle"},
		Tip:    "KN at the start, silent K.",
	},
	"people": {
		Word:   "people",
		Tricks: []string{"People Eat Oranges, People Like Eating"},
		Tip:    "Take the first letter of each word in the phrase.",
	},
	"pretty": {
		Word:   "pretty",
		Tricks: []string{"PRET-ty: say it PRET-TEE"},
		Tip:    "Double T in the middle.",
	},
	"should": {
		Word:   "should",
		Tricks: []string{"O U Lucky Duck! could, would, should"},
		Tip:    "Could, would and should all hide OUL.",
	},
	"there": {
		Word:   "there",
		Tricks: []string{"THERE has HERE inside it: a place"},
		Tip:    "Here and there are both places.",
	},
	"their": {
		Word:   "their",
		Tricks: []string{"THEIR ends in HEIR: something belongs to them"},
		Tip:    "An heir owns things, and so does their.",
	},
	"would": {
		Word:   "would",
		Tricks: []string{"O U Lucky Duck! could, would, should"},
		Tip:    "Could, would and should all hide OUL.",
	},
	"write": {
		Word:   "write",
		Tricks: []string{"WRiters WRite with a silent W"},
		Tip:    "WR at the start, silent W.",
	},
}

// MnemonicFor returns the memory aid for a word. Words with no curated entry
// get a generated syllable-chunk tip so the learning phase always has
// something to show.
func MnemonicFor(cohort models.Cohort, word string) Mnemonic {
	table := statutoryMnemonics
	if cohort == models.CohortYear2 {
		table = year2Mnemonics
	}
	if m, ok := table[word]; ok {
		return m
	}
	return Mnemonic{
		Word:   word,
		Tricks: []string{fmt.Sprintf("Break it into chunks: %s", chunked(word))},
		Tip:    "Say each chunk out loud, then write the whole word.",
	}
}

// chunked splits a word into rough three-letter chunks for the fallback tip.
func chunked(word string) string {
	var parts []string
	for len(word) > 0 {
		n := 3
		if len(word) < n {
			n = len(word)
		}
		parts = append(parts, word[:n])
		word = word[n:]
	}
	return strings.Join(parts, "-")
}
