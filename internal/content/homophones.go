package content

// HomophoneWord is one member of a homophone set, with the meaning and usage
// help shown during the learning phase.
type HomophoneWord struct {
	Word    string `json:"word"`
	Meaning string `json:"meaning"`
	Example string `json:"example"`
	Tip     string `json:"tip"`
}

// Sentence is a fill-the-gap practice sentence. Text contains a single ___
// gap and Answer is the set member that completes it.
type Sentence struct {
	Text   string `json:"text"`
	Answer string `json:"answer"`
	Hint   string `json:"hint"`
}

// HomophoneSet groups confusable words with their practice sentences. The ID
// is the progress identifier for the whole set.
type HomophoneSet struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Words     []HomophoneWord `json:"words"`
	Sentences []Sentence      `json:"sentences"`
}

var homophoneSets = []HomophoneSet{
	{
		ID:    "their_there_theyre",
		Title: "their / there / they're",
		Words: []HomophoneWord{
			{Word: "their", Meaning: "belonging to them", Example: "The children put on their coats.", Tip: "THEIR ends in HEIR, someone who owns things."},
			{Word: "there", Meaning: "in or at that place", Example: "Put the box over there.", Tip: "THERE has HERE inside it, both are places."},
			{Word: "they're", Meaning: "short for 'they are'", Example: "They're going to the park.", Tip: "The apostrophe replaces the A of 'are'."},
		},
		Sentences: []Sentence{
			{Text: "The dogs wagged ___ tails.", Answer: "their", Hint: "The tails belong to the dogs."},
			{Text: "We parked the car over ___.", Answer: "there", Hint: "It names a place."},
			{Text: "___ coming to my party on Saturday.", Answer: "they're", Hint: "Try saying 'they are' in its place."},
			{Text: "Is ___ any cake left?", Answer: "there", Hint: "It names a place, not ownership."},
			{Text: "The twins finished ___ homework early.", Answer: "their", Hint: "The homework belongs to the twins."},
		},
	},
	{
		ID:    "your_youre",
		Title: "your / you're",
		Words: []HomophoneWord{
			{Word: "your", Meaning: "belonging to you", Example: "Is this your pencil?", Tip: "No apostrophe when something belongs to you."},
			{Word: "you're", Meaning: "short for 'you are'", Example: "You're my best friend.", Tip: "The apostrophe replaces the A of 'are'."},
		},
		Sentences: []Sentence{
			{Text: "Don't forget ___ packed lunch.", Answer: "your", Hint: "The lunch belongs to you."},
			{Text: "___ going to love this film.", Answer: "you're", Hint: "Try saying 'you are' in its place."},
			{Text: "___ sister plays the violin beautifully.", Answer: "your", Hint: "The sister belongs to you."},
			{Text: "Tell me when ___ ready to leave.", Answer: "you're", Hint: "Try saying 'you are' in its place."},
		},
	},
	{
		ID:    "to_too_two",
		Title: "to / too / two",
		Words: []HomophoneWord{
			{Word: "to", Meaning: "towards, or part of a verb", Example: "We walked to school.", Tip: "The plain one with one O."},
			{Word: "too", Meaning: "also, or more than enough", Example: "The soup is too hot.", Tip: "TOO has too many Os."},
			{Word: "two", Meaning: "the number 2", Example: "I have two brothers.", Tip: "TWo is in TWin and TWice."},
		},
		Sentences: []Sentence{
			{Text: "Can I come ___?", Answer: "too", Hint: "It means 'also'."},
			{Text: "We are going ___ the beach.", Answer: "to", Hint: "It shows direction."},
			{Text: "There are ___ biscuits left on the plate.", Answer: "two", Hint: "Count them."},
			{Text: "My bag is ___ heavy to carry.", Answer: "too", Hint: "It means 'more than enough'."},
			{Text: "She wants ___ learn the piano.", Answer: "to", Hint: "It belongs with the verb 'learn'."},
		},
	},
	{
		ID:    "its_its",
		Title: "its / it's",
		Words: []HomophoneWord{
			{Word: "its", Meaning: "belonging to it", Example: "The cat licked its paws.", Tip: "No apostrophe when something belongs to it."},
			{Word: "it's", Meaning: "short for 'it is' or 'it has'", Example: "It's raining again.", Tip: "The apostrophe replaces the missing letters."},
		},
		Sentences: []Sentence{
			{Text: "___ nearly time for lunch.", Answer: "it's", Hint: "Try saying 'it is' in its place."},
			{Text: "The bird flapped ___ wings.", Answer: "its", Hint: "The wings belong to the bird."},
			{Text: "___ been a long day.", Answer: "it's", Hint: "Try saying 'it has' in its place."},
			{Text: "The robot lowered ___ arm slowly.", Answer: "its", Hint: "The arm belongs to the robot."},
		},
	},
	{
		ID:    "hear_here",
		Title: "hear / here",
		Words: []HomophoneWord{
			{Word: "hear", Meaning: "to notice a sound with your ears", Example: "Did you hear that thunder?", Tip: "You hEAR with your EAR."},
			{Word: "here", Meaning: "in this place", Example: "Come and sit here.", Tip: "HERE is a place, like THERE and WHERE."},
		},
		Sentences: []Sentence{
			{Text: "Speak up, I can't ___ you.", Answer: "hear", Hint: "It is about sound."},
			{Text: "Leave your shoes ___ by the door.", Answer: "here", Hint: "It names a place."},
			{Text: "Can you ___ the birds singing?", Answer: "hear", Hint: "You use your ears."},
			{Text: "We have lived ___ for five years.", Answer: "here", Hint: "It names a place."},
		},
	},
	{
		ID:    "affect_effect",
		Title: "affect / effect",
		Words: []HomophoneWord{
			{Word: "affect", Meaning: "to change or influence something (verb)", Example: "The rain will affect our plans.", Tip: "Affect is the Action."},
			{Word: "effect", Meaning: "the result of a change (noun)", Example: "The medicine had a quick effect.", Tip: "Effect is the End result."},
		},
		Sentences: []Sentence{
			{Text: "The loud music did not ___ her concentration.", Answer: "affect", Hint: "It is the doing word."},
			{Text: "The new rules had a big ___ on the class.", Answer: "effect", Hint: "It is the result, a thing."},
			{Text: "Cold weather can ___ how plants grow.", Answer: "affect", Hint: "It is the doing word."},
			{Text: "One ___ of exercise is better sleep.", Answer: "effect", Hint: "It is the result, a thing."},
		},
	},
	{
		ID:    "practice_practise",
		Title: "practice / practise",
		Words: []HomophoneWord{
			{Word: "practice", Meaning: "the activity itself (noun)", Example: "Football practice is on Tuesday.", Tip: "ICE is a thing, so practICE is the noun."},
			{Word: "practise", Meaning: "to do something repeatedly (verb)", Example: "I practise the piano every day.", Tip: "PractiSe with an S is the verb, like adviSe."},
		},
		Sentences: []Sentence{
			{Text: "She goes to netball ___ after school.", Answer: "practice", Hint: "It names the activity, a thing."},
			{Text: "You must ___ your spellings tonight.", Answer: "practise", Hint: "It is the doing word."},
			{Text: "The choir will ___ the new song tomorrow.", Answer: "practise", Hint: "It is the doing word."},
			{Text: "With enough ___, anyone can improve.", Answer: "practice", Hint: "It names a thing."},
		},
	},
	{
		ID:    "passed_past",
		Title: "passed / past",
		Words: []HomophoneWord{
			{Word: "passed", Meaning: "went by, or succeeded (verb)", Example: "She passed her swimming test.", Tip: "Passed is the past tense of pass."},
			{Word: "past", Meaning: "time gone by, or beyond", Example: "We walked past the bakery.", Tip: "If it is not a verb, it is past."},
		},
		Sentences: []Sentence{
			{Text: "The runner ___ the finish line first.", Answer: "passed", Hint: "It is the doing word, past tense of pass."},
			{Text: "The bus drove ___ our house without stopping.", Answer: "past", Hint: "It means 'beyond', not an action of passing something."},
			{Text: "In the ___, people wrote letters by hand.", Answer: "past", Hint: "It names time gone by."},
			{Text: "He ___ the ball to his teammate.", Answer: "passed", Hint: "It is the doing word."},
		},
	},
}

// Sets returns every homophone set in a fixed order.
func Sets() []HomophoneSet {
	return homophoneSets
}

// SetByID looks up a homophone set by its identifier.
func SetByID(id string) (HomophoneSet, bool) {
	for _, s := range homophoneSets {
		if s.ID == id {
			return s, true
		}
	}
	return HomophoneSet{}, false
}

// Members returns the set's word forms, used as the answer choices for its
// sentences.
func (s HomophoneSet) Members() []string {
	members := make([]string, len(s.Words))
	for i, w := range s.Words {
		members[i] = w.Word
	}
	return members
}
