package content

import "strings"

// commonMisspellings maps tricky words to the misspellings learners actually
// produce. Words without an entry fall back to generated variants.
var commonMisspellings = map[string][]string{
	"accommodate":   {"accomodate", "acommodate", "acomodate"},
	"achieve":       {"acheive", "acheeve", "achive"},
	"aggressive":    {"agressive", "aggresive", "agresive"},
	"apparent":      {"apparant", "aparent", "apparrent"},
	"beautiful":     {"beutiful", "beautifull", "butiful"},
	"because":       {"becuase", "becase", "becouse"},
	"cemetery":      {"cemetary", "semetery", "cematery"},
	"committee":     {"commitee", "comittee", "committe"},
	"conscience":    {"concience", "consience", "conscence"},
	"conscious":     {"concious", "consious", "conscous"},
	"definite":      {"definate", "definit", "deffinite"},
	"desperate":     {"desparate", "despirate", "desperete"},
	"embarrass":     {"embarass", "embarras", "emberrass"},
	"environment":   {"enviroment", "environent", "enviornment"},
	"especially":    {"especialy", "expecially", "especally"},
	"exaggerate":    {"exagerate", "exaggerrate", "exagerrate"},
	"familiar":      {"familliar", "familar", "femiliar"},
	"foreign":       {"foriegn", "forein", "foregn"},
	"forty":         {"fourty", "forthy", "fourthy"},
	"friend":        {"freind", "frend", "firend"},
	"government":    {"goverment", "governmant", "govenment"},
	"guarantee":     {"garantee", "guarentee", "gaurantee"},
	"harass":        {"harrass", "haras", "harras"},
	"immediately":   {"immediatly", "imediately", "immedietly"},
	"interrupt":     {"interupt", "intterupt", "interrup"},
	"lightning":     {"lightening", "litning", "lightnin"},
	"marvellous":    {"marvelous", "marvellus", "marvelluos"},
	"mischievous":   {"mischievious", "mischevous", "mischevious"},
	"necessary":     {"neccessary", "necesary", "neccesary"},
	"neighbour":     {"nieghbour", "neighbor", "naybour"},
	"occur":         {"ocur", "occure", "okur"},
	"parliament":    {"parliment", "parlament", "parliement"},
	"people":        {"peple", "peopel", "pepole"},
	"privilege":     {"privelege", "priviledge", "privilage"},
	"pronunciation": {"pronounciation", "pronuncation", "pronunseation"},
	"queue":         {"que", "queu", "cue"},
	"recommend":     {"reccommend", "recomend", "reccomend"},
	"restaurant":    {"restaraunt", "resturant", "restorant"},
	"rhythm":        {"rythm", "rhythym", "rythym"},
	"secretary":     {"secratary", "secretery", "sectretary"},
	"separate":      {"seperate", "seprate", "seperete"},
	"sincerely":     {"sincerly", "sincerley", "sinserely"},
	"stomach":       {"stomache", "stummach", "stomac"},
	"sufficient":    {"sufficent", "suficient", "sufficiant"},
	"temperature":   {"temprature", "temperture", "tempreture"},
	"twelfth":       {"twelth", "twelvth", "twelfeth"},
	"vegetable":     {"vegtable", "vegatable", "vegetible"},
	"vehicle":       {"vehical", "vehicel", "veicle"},
}

// Distractors returns up to n plausible misspellings of word, preferring the
// curated table. None of the results equals the word itself.
func Distractors(word string, n int) []string {
	if n <= 0 {
		return nil
	}

	seen := map[string]bool{word: true}
	var out []string
	add := func(s string) {
		if len(out) < n && s != "" && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}

	for _, s := range commonMisspellings[word] {
		add(s)
	}
	for _, s := range generatedVariants(word) {
		add(s)
	}
	return out
}

// generatedVariants derives misspellings mechanically: collapse a doubled
// letter, double a single letter, swap adjacent letters, and swap common
// vowel digraphs. Deterministic for a given word.
func generatedVariants(word string) []string {
	var out []string
	runes := []rune(word)

	// collapse the first doubled letter
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1] {
			out = append(out, string(runes[:i])+string(runes[i+1:]))
			break
		}
	}

	// double the first consonant after a vowel
	for i := 1; i < len(runes)-1; i++ {
		if isVowel(runes[i-1]) && !isVowel(runes[i]) && runes[i] != runes[i+1] {
			out = append(out, string(runes[:i+1])+string(runes[i:]))
			break
		}
	}

	// reverse a common digraph
	for _, pair := range [...][2]string{{"ie", "ei"}, {"ei", "ie"}, {"ou", "uo"}, {"ea", "ae"}} {
		if idx := strings.Index(word, pair[0]); idx >= 0 {
			out = append(out, word[:idx]+pair[1]+word[idx+2:])
			break
		}
	}

	// swap the middle pair of letters
	if len(runes) >= 4 {
		mid := len(runes) / 2
		if runes[mid] != runes[mid-1] {
			swapped := append([]rune(nil), runes...)
			swapped[mid-1], swapped[mid] = swapped[mid], swapped[mid-1]
			out = append(out, string(swapped))
		}
	}

	// drop a trailing silent e
	if strings.HasSuffix(word, "e") && len(word) > 3 {
		out = append(out, word[:len(word)-1])
	} else {
		out = append(out, word+"e")
	}

	return out
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
