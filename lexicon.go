package main

// Static trigger-word lexicons per emotion category, grouped by language.
// All lists are probed simultaneously during classification; there is no
// language detection step. Neutral has no triggers: it is the zero-match
// outcome, not a category with its own vocabulary.
var lexicon = map[EmotionCategory]map[string][]string{
	EmotionPositive: {
		"en": {
			"happy", "joy", "joyful", "love", "loved", "wonderful", "amazing",
			"great", "excellent", "grateful", "thankful", "excited", "delighted",
			"awesome", "fantastic", "beautiful", "hopeful", "proud", "cheerful",
			"pleased", "content", "inspiring", "uplifting",
		},
		"es": {
			"feliz", "alegria", "alegría", "amor", "contento", "contenta",
			"maravilloso", "increíble", "increible", "genial", "agradecido",
			"agradecida", "esperanza", "orgulloso", "orgullosa", "encantado",
			"ilusionado", "precioso",
		},
		"fr": {
			"heureux", "heureuse", "joie", "joyeux", "joyeuse", "amour",
			"merveilleux", "magnifique", "génial", "genial", "content",
			"contente", "reconnaissant", "fier", "fière", "espoir", "ravie",
			"ravi", "formidable",
		},
		"de": {
			"glücklich", "gluecklich", "freude", "liebe", "wunderbar",
			"großartig", "grossartig", "toll", "dankbar", "begeistert", "stolz",
			"zufrieden", "herrlich", "hoffnungsvoll", "fröhlich", "froehlich",
		},
		"pt": {
			"feliz", "alegria", "alegre", "amor", "maravilhoso", "incrível",
			"incrivel", "ótimo", "otimo", "grato", "grata", "animado", "animada",
			"orgulhoso", "orgulhosa", "esperança", "esperanca", "encantado",
		},
		"ru": {
			"счастлив", "счастлива", "счастье", "радость", "радостный",
			"любовь", "прекрасно", "замечательно", "отлично", "благодарен",
			"благодарна", "доволен", "довольна", "вдохновляет", "восторг",
		},
	},
	EmotionNegative: {
		"en": {
			"sad", "unhappy", "depressed", "depressing", "miserable", "lonely",
			"hopeless", "crying", "grief", "heartbroken", "disappointed",
			"gloomy", "despair", "awful", "terrible", "worthless", "exhausted",
			"devastated", "tragic", "suffering",
		},
		"es": {
			"triste", "tristeza", "deprimido", "deprimida", "solo", "sola",
			"soledad", "miserable", "desesperado", "desesperada", "llorando",
			"dolor", "pena", "horrible", "sufrimiento", "agotado", "agotada",
		},
		"fr": {
			"triste", "tristesse", "déprimé", "déprimée", "deprime",
			"malheureux", "malheureuse", "seul", "seule", "solitude",
			"désespoir", "desespoir", "chagrin", "pleurer", "douleur",
			"horrible", "épuisé", "épuisée",
		},
		"de": {
			"traurig", "deprimiert", "unglücklich", "ungluecklich", "einsam",
			"hoffnungslos", "elend", "trauer", "schmerz", "verzweifelt",
			"schrecklich", "furchtbar", "erschöpft", "erschoepft", "leiden",
		},
		"pt": {
			"triste", "tristeza", "deprimido", "deprimida", "infeliz",
			"sozinho", "sozinha", "solidão", "solidao", "desespero", "mágoa",
			"magoa", "chorando", "dor", "horrível", "horrivel", "sofrimento",
			"esgotado", "esgotada",
		},
		"ru": {
			"грустно", "грусть", "печаль", "печальный", "несчастный",
			"несчастна", "одинокий", "одиноко", "депрессия", "безнадежно",
			"безнадёжно", "плачу", "боль", "ужасно", "страдание", "тоска",
		},
	},
	EmotionAnxiety: {
		"en": {
			"anxious", "anxiety", "worried", "worry", "worrying", "nervous",
			"afraid", "fear", "scared", "panic", "stress", "stressed",
			"stressful", "overwhelmed", "uneasy", "tense", "dread", "restless",
			"insecure", "frightened",
		},
		"es": {
			"ansioso", "ansiosa", "ansiedad", "preocupado", "preocupada",
			"nervioso", "nerviosa", "miedo", "asustado", "asustada", "pánico",
			"panico", "estrés", "estres", "estresado", "estresada", "agobiado",
			"agobiada", "tenso", "tensa", "inquieto", "inquieta",
		},
		"fr": {
			"anxieux", "anxieuse", "anxiété", "anxiete", "inquiet", "inquiète",
			"inquiete", "nerveux", "nerveuse", "peur", "effrayé", "effrayée",
			"panique", "stress", "stressé", "stressée", "stresse", "tendu",
			"tendue", "angoisse", "angoissé",
		},
		"de": {
			"angst", "ängstlich", "aengstlich", "besorgt", "nervös", "nervoes",
			"furcht", "panik", "stress", "gestresst", "überfordert",
			"ueberfordert", "unruhig", "angespannt", "sorge", "sorgen",
		},
		"pt": {
			"ansioso", "ansiosa", "ansiedade", "preocupado", "preocupada",
			"nervoso", "nervosa", "medo", "assustado", "assustada", "pânico",
			"panico", "estresse", "estressado", "estressada", "tenso", "tensa",
			"aflito", "aflita", "angústia", "angustia",
		},
		"ru": {
			"тревога", "тревожно", "тревожный", "беспокойство", "беспокоюсь",
			"волнуюсь", "волнение", "страх", "страшно", "боюсь", "паника",
			"стресс", "нервничаю", "напряжение", "напряжённо",
		},
	},
	EmotionAnger: {
		"en": {
			"angry", "anger", "furious", "fury", "rage", "mad", "hate",
			"hatred", "annoyed", "annoying", "irritated", "irritating",
			"frustrated", "frustrating", "outraged", "outrage", "resent",
			"hostile", "disgusted", "bitter", "infuriating",
		},
		"es": {
			"enojado", "enojada", "enfadado", "enfadada", "furioso", "furiosa",
			"ira", "rabia", "odio", "molesto", "molesta", "irritado",
			"irritada", "frustrado", "frustrada", "indignado", "indignada",
			"hostil",
		},
		"fr": {
			"colère", "colere", "furieux", "furieuse", "rage", "haine",
			"énervé", "énervée", "enerve", "irrité", "irritée", "irrite",
			"frustré", "frustrée", "frustre", "fâché", "fâchée", "fache",
			"indigné", "indignée", "hostile",
		},
		"de": {
			"wütend", "wuetend", "wut", "zorn", "zornig", "hass", "verärgert",
			"veraergert", "genervt", "frustriert", "sauer", "empört",
			"empoert", "aufgebracht", "feindselig",
		},
		"pt": {
			"raiva", "furioso", "furiosa", "ódio", "odio", "irritado",
			"irritada", "zangado", "zangada", "frustrado", "frustrada",
			"bravo", "brava", "indignado", "indignada", "revoltado",
			"revoltada", "hostil",
		},
		"ru": {
			"злость", "злой", "злюсь", "гнев", "ярость", "ненависть",
			"ненавижу", "раздражён", "раздражен", "раздражает", "бешенство",
			"обида", "возмущён", "возмущен", "враждебность",
		},
	},
}

// triggerSets flattens the lexicon into one lookup set per category so the
// classifier can probe all languages with a single map hit per token.
var triggerSets = buildTriggerSets()

func buildTriggerSets() map[EmotionCategory]map[string]bool {
	sets := make(map[EmotionCategory]map[string]bool, len(lexicon))
	for category, languages := range lexicon {
		set := make(map[string]bool)
		for _, words := range languages {
			for _, w := range words {
				set[w] = true
			}
		}
		sets[category] = set
	}
	return sets
}

// fallbackSuggestions are the curated static suggestions the heuristic path
// attaches to its results. The model path supplies its own wording.
var fallbackSuggestions = map[EmotionCategory]string{
	EmotionPositive: "Nice reading streak. A short affirmation can help you hold on to the good mood.",
	EmotionNegative: "This page carried a heavy tone. A one-minute affirmation or mindfulness break can help.",
	EmotionAnxiety:  "This content reads as stressful. Try a slow 4-7-8 breathing cycle before continuing.",
	EmotionAnger:    "Strong language detected. A short breathing exercise can take the edge off.",
	EmotionNeutral:  "",
}
