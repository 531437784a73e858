package canon

// kjvBooks returns the King James canon: 66 books, KJV versification.
func kjvBooks() []BookDefinition {
	return []BookDefinition{
		{Number: 1, Name: "Genesis", AltName: "The First Book of Moses, called Genesis", OSIS: "Gen", Testament: OldTestament,
			Abbreviations: []string{"gen", "ge", "gn"},
			VerseCounts:   []int{31, 25, 24, 26, 32, 22, 24, 22, 29, 32, 32, 20, 18, 24, 21, 16, 27, 33, 38, 18, 34, 24, 20, 67, 34, 35, 46, 22, 35, 43, 55, 32, 20, 31, 29, 43, 36, 30, 23, 23, 57, 38, 34, 34, 28, 34, 31, 22, 33, 26}},
		{Number: 2, Name: "Exodus", AltName: "The Second Book of Moses, called Exodus", OSIS: "Exod", Testament: OldTestament,
			Abbreviations: []string{"exod", "exo", "ex"},
			VerseCounts:   []int{22, 25, 22, 31, 23, 30, 25, 32, 35, 29, 10, 51, 22, 31, 27, 36, 16, 27, 25, 26, 36, 31, 33, 18, 40, 37, 21, 43, 46, 38, 18, 35, 23, 35, 35, 38, 29, 31, 43, 38}},
		{Number: 3, Name: "Leviticus", AltName: "The Third Book of Moses, called Leviticus", OSIS: "Lev", Testament: OldTestament,
			Abbreviations: []string{"lev", "le", "lv"},
			VerseCounts:   []int{17, 16, 17, 35, 19, 30, 38, 36, 24, 20, 47, 8, 59, 57, 33, 34, 16, 30, 37, 27, 24, 33, 44, 23, 55, 46, 34}},
		{Number: 4, Name: "Numbers", AltName: "The Fourth Book of Moses, called Numbers", OSIS: "Num", Testament: OldTestament,
			Abbreviations: []string{"num", "nu", "nm", "nb"},
			VerseCounts:   []int{54, 34, 51, 49, 31, 27, 89, 26, 23, 36, 35, 16, 33, 45, 41, 50, 13, 32, 22, 29, 35, 41, 30, 25, 18, 65, 23, 31, 40, 16, 54, 42, 56, 29, 34, 13}},
		{Number: 5, Name: "Deuteronomy", AltName: "The Fifth Book of Moses, called Deuteronomy", OSIS: "Deut", Testament: OldTestament,
			Abbreviations: []string{"deut", "dt", "de"},
			VerseCounts:   []int{46, 37, 29, 49, 33, 25, 26, 20, 29, 22, 32, 32, 18, 29, 23, 22, 20, 22, 21, 20, 23, 30, 25, 22, 19, 19, 26, 68, 29, 20, 30, 52, 29, 12}},
		{Number: 6, Name: "Joshua", AltName: "The Book of Joshua", OSIS: "Josh", Testament: OldTestament,
			Abbreviations: []string{"josh", "jos", "jsh"},
			VerseCounts:   []int{18, 24, 17, 24, 15, 27, 26, 35, 27, 43, 23, 24, 33, 15, 63, 10, 18, 28, 51, 9, 45, 34, 16, 33}},
		{Number: 7, Name: "Judges", AltName: "The Book of Judges", OSIS: "Judg", Testament: OldTestament,
			Abbreviations: []string{"judg", "jdg", "jg", "jdgs"},
			VerseCounts:   []int{36, 23, 31, 24, 31, 40, 25, 35, 57, 18, 40, 15, 25, 20, 20, 31, 13, 31, 30, 48, 25}},
		{Number: 8, Name: "Ruth", AltName: "The Book of Ruth", OSIS: "Ruth", Testament: OldTestament,
			Abbreviations: []string{"rth", "ru"},
			VerseCounts:   []int{22, 23, 18, 22}},
		{Number: 9, Name: "1 Samuel", AltName: "The First Book of Samuel", OSIS: "1Sam", Testament: OldTestament,
			Abbreviations: []string{"1 sam", "1 sa", "1 sm", "1 s"},
			VerseCounts:   []int{28, 36, 21, 22, 12, 21, 17, 22, 27, 27, 15, 25, 23, 52, 35, 23, 58, 30, 24, 42, 15, 23, 29, 22, 44, 25, 12, 25, 11, 31, 13}},
		{Number: 10, Name: "2 Samuel", AltName: "The Second Book of Samuel", OSIS: "2Sam", Testament: OldTestament,
			Abbreviations: []string{"2 sam", "2 sa", "2 sm", "2 s"},
			VerseCounts:   []int{27, 32, 39, 12, 25, 23, 29, 18, 13, 19, 27, 31, 39, 33, 37, 23, 29, 33, 43, 26, 22, 51, 39, 25}},
		{Number: 11, Name: "1 Kings", AltName: "The First Book of the Kings", OSIS: "1Kgs", Testament: OldTestament,
			Abbreviations: []string{"1 kgs", "1 ki", "1 k"},
			VerseCounts:   []int{53, 46, 28, 34, 18, 38, 51, 66, 28, 29, 43, 33, 34, 31, 34, 34, 24, 46, 21, 43, 29, 53}},
		{Number: 12, Name: "2 Kings", AltName: "The Second Book of the Kings", OSIS: "2Kgs", Testament: OldTestament,
			Abbreviations: []string{"2 kgs", "2 ki", "2 k"},
			VerseCounts:   []int{18, 25, 27, 44, 27, 33, 20, 29, 37, 36, 21, 21, 25, 29, 38, 20, 41, 37, 37, 21, 26, 20, 37, 20, 30}},
		{Number: 13, Name: "1 Chronicles", AltName: "The First Book of the Chronicles", OSIS: "1Chr", Testament: OldTestament,
			Abbreviations: []string{"1 chr", "1 ch", "1 chron"},
			VerseCounts:   []int{54, 55, 24, 43, 26, 81, 40, 40, 44, 14, 47, 40, 14, 17, 29, 43, 27, 17, 19, 8, 30, 19, 32, 31, 31, 32, 34, 21, 30}},
		{Number: 14, Name: "2 Chronicles", AltName: "The Second Book of the Chronicles", OSIS: "2Chr", Testament: OldTestament,
			Abbreviations: []string{"2 chr", "2 ch", "2 chron"},
			VerseCounts:   []int{17, 18, 17, 22, 14, 42, 22, 18, 31, 19, 23, 16, 22, 15, 19, 14, 19, 34, 11, 37, 20, 12, 21, 27, 28, 23, 9, 27, 36, 27, 21, 33, 25, 33, 27, 23}},
		{Number: 15, Name: "Ezra", AltName: "Ezra", OSIS: "Ezra", Testament: OldTestament,
			Abbreviations: []string{"ezr"},
			VerseCounts:   []int{11, 70, 13, 24, 17, 22, 28, 36, 15, 44}},
		{Number: 16, Name: "Nehemiah", AltName: "The Book of Nehemiah", OSIS: "Neh", Testament: OldTestament,
			Abbreviations: []string{"neh", "ne"},
			VerseCounts:   []int{11, 20, 32, 23, 19, 19, 73, 18, 38, 39, 36, 47, 31}},
		{Number: 17, Name: "Esther", AltName: "The Book of Esther", OSIS: "Esth", Testament: OldTestament,
			Abbreviations: []string{"esth", "est", "es"},
			VerseCounts:   []int{22, 23, 15, 17, 14, 14, 10, 17, 32, 3}},
		{Number: 18, Name: "Job", AltName: "The Book of Job", OSIS: "Job", Testament: OldTestament,
			Abbreviations: []string{"jb"},
			VerseCounts:   []int{22, 13, 26, 21, 27, 30, 21, 22, 35, 22, 20, 25, 28, 22, 35, 22, 16, 21, 29, 29, 34, 30, 17, 25, 6, 14, 23, 28, 25, 31, 40, 22, 33, 37, 16, 33, 24, 41, 30, 24, 34, 17}},
		{Number: 19, Name: "Psalms", AltName: "The Book of Psalms", OSIS: "Ps", Testament: OldTestament,
			Abbreviations: []string{"ps", "psa", "psalm", "pslm", "psm", "pss"},
			VerseCounts:   []int{6, 12, 8, 8, 12, 10, 17, 9, 20, 18, 7, 8, 6, 7, 5, 11, 15, 50, 14, 9, 13, 31, 6, 10, 22, 12, 14, 9, 11, 12, 24, 11, 22, 22, 28, 12, 40, 22, 13, 17, 13, 11, 5, 26, 17, 11, 9, 14, 20, 23, 19, 9, 6, 7, 23, 13, 11, 11, 17, 12, 8, 12, 11, 10, 13, 20, 7, 35, 36, 5, 24, 20, 28, 23, 10, 12, 20, 72, 13, 19, 16, 8, 18, 12, 13, 17, 7, 18, 52, 17, 16, 15, 5, 23, 11, 13, 12, 9, 9, 5, 8, 28, 22, 35, 45, 48, 43, 13, 31, 7, 10, 10, 9, 8, 18, 19, 2, 29, 176, 7, 8, 9, 4, 8, 5, 6, 5, 6, 8, 8, 3, 18, 3, 3, 21, 26, 9, 8, 24, 13, 10, 7, 12, 15, 21, 10, 20, 14, 9, 6}},
		{Number: 20, Name: "Proverbs", AltName: "The Proverbs", OSIS: "Prov", Testament: OldTestament,
			Abbreviations: []string{"prov", "pro", "prv", "pr"},
			VerseCounts:   []int{33, 22, 35, 27, 23, 35, 27, 36, 18, 32, 31, 28, 25, 35, 33, 33, 28, 24, 29, 30, 31, 29, 35, 34, 28, 28, 27, 28, 27, 33, 31}},
		{Number: 21, Name: "Ecclesiastes", AltName: "Ecclesiastes, or, The Preacher", OSIS: "Eccl", Testament: OldTestament,
			Abbreviations: []string{"eccl", "eccles", "ecc", "ec", "qoh"},
			VerseCounts:   []int{18, 26, 22, 16, 20, 12, 29, 17, 18, 20, 10, 14}},
		{Number: 22, Name: "Song of Solomon", AltName: "The Song of Solomon", OSIS: "Song", Testament: OldTestament,
			Abbreviations: []string{"song", "sos", "so", "sng", "song of songs", "canticles"},
			VerseCounts:   []int{17, 17, 11, 16, 16, 13, 13, 14}},
		{Number: 23, Name: "Isaiah", AltName: "The Book of the Prophet Isaiah", OSIS: "Isa", Testament: OldTestament,
			Abbreviations: []string{"isa", "is"},
			VerseCounts:   []int{31, 22, 26, 6, 30, 13, 25, 22, 21, 34, 16, 6, 22, 32, 9, 14, 14, 7, 25, 6, 17, 25, 18, 23, 12, 21, 13, 29, 24, 33, 9, 20, 24, 17, 10, 22, 38, 22, 8, 31, 29, 25, 28, 28, 25, 13, 15, 22, 26, 11, 23, 15, 12, 17, 13, 12, 21, 14, 21, 22, 11, 12, 19, 12, 25, 24}},
		{Number: 24, Name: "Jeremiah", AltName: "The Book of the Prophet Jeremiah", OSIS: "Jer", Testament: OldTestament,
			Abbreviations: []string{"jer", "je", "jr"},
			VerseCounts:   []int{19, 37, 25, 31, 31, 30, 34, 22, 26, 25, 23, 17, 27, 22, 21, 21, 27, 23, 15, 18, 14, 30, 40, 10, 38, 24, 22, 17, 32, 24, 40, 44, 26, 22, 19, 32, 21, 28, 18, 16, 18, 22, 13, 30, 5, 28, 7, 47, 39, 46, 64, 34}},
		{Number: 25, Name: "Lamentations", AltName: "The Lamentations of Jeremiah", OSIS: "Lam", Testament: OldTestament,
			Abbreviations: []string{"lam", "la"},
			VerseCounts:   []int{22, 22, 66, 22, 22}},
		{Number: 26, Name: "Ezekiel", AltName: "The Book of the Prophet Ezekiel", OSIS: "Ezek", Testament: OldTestament,
			Abbreviations: []string{"ezek", "eze", "ezk"},
			VerseCounts:   []int{28, 10, 27, 17, 17, 14, 27, 18, 11, 22, 25, 28, 23, 23, 8, 63, 24, 32, 14, 49, 32, 31, 49, 27, 17, 21, 36, 26, 21, 26, 18, 32, 33, 31, 15, 38, 28, 23, 29, 49, 26, 20, 27, 31, 25, 24, 23, 35}},
		{Number: 27, Name: "Daniel", AltName: "The Book of Daniel", OSIS: "Dan", Testament: OldTestament,
			Abbreviations: []string{"dan", "da", "dn"},
			VerseCounts:   []int{21, 49, 30, 37, 31, 28, 28, 27, 27, 21, 45, 13}},
		{Number: 28, Name: "Hosea", AltName: "Hosea", OSIS: "Hos", Testament: OldTestament,
			Abbreviations: []string{"hos", "ho"},
			VerseCounts:   []int{11, 23, 5, 19, 15, 11, 16, 14, 17, 15, 12, 14, 16, 9}},
		{Number: 29, Name: "Joel", AltName: "Joel", OSIS: "Joel", Testament: OldTestament,
			Abbreviations: []string{"joe", "jl"},
			VerseCounts:   []int{20, 32, 21}},
		{Number: 30, Name: "Amos", AltName: "Amos", OSIS: "Amos", Testament: OldTestament,
			Abbreviations: []string{"am"},
			VerseCounts:   []int{15, 16, 15, 13, 27, 14, 17, 14, 15}},
		{Number: 31, Name: "Obadiah", AltName: "Obadiah", OSIS: "Obad", Testament: OldTestament,
			Abbreviations: []string{"obad", "ob"},
			VerseCounts:   []int{21}},
		{Number: 32, Name: "Jonah", AltName: "Jonah", OSIS: "Jonah", Testament: OldTestament,
			Abbreviations: []string{"jnh", "jon"},
			VerseCounts:   []int{17, 10, 10, 11}},
		{Number: 33, Name: "Micah", AltName: "Micah", OSIS: "Mic", Testament: OldTestament,
			Abbreviations: []string{"mic", "mc"},
			VerseCounts:   []int{16, 13, 12, 13, 15, 16, 20}},
		{Number: 34, Name: "Nahum", AltName: "Nahum", OSIS: "Nah", Testament: OldTestament,
			Abbreviations: []string{"nah", "na"},
			VerseCounts:   []int{15, 13, 19}},
		{Number: 35, Name: "Habakkuk", AltName: "Habakkuk", OSIS: "Hab", Testament: OldTestament,
			Abbreviations: []string{"hab", "hb"},
			VerseCounts:   []int{17, 20, 19}},
		{Number: 36, Name: "Zephaniah", AltName: "Zephaniah", OSIS: "Zeph", Testament: OldTestament,
			Abbreviations: []string{"zeph", "zep", "zp"},
			VerseCounts:   []int{18, 15, 20}},
		{Number: 37, Name: "Haggai", AltName: "Haggai", OSIS: "Hag", Testament: OldTestament,
			Abbreviations: []string{"hag", "hg"},
			VerseCounts:   []int{15, 23}},
		{Number: 38, Name: "Zechariah", AltName: "Zechariah", OSIS: "Zech", Testament: OldTestament,
			Abbreviations: []string{"zech", "zec", "zc"},
			VerseCounts:   []int{21, 13, 10, 14, 11, 15, 14, 23, 17, 12, 17, 14, 9, 21}},
		{Number: 39, Name: "Malachi", AltName: "Malachi", OSIS: "Mal", Testament: OldTestament,
			Abbreviations: []string{"mal", "ml"},
			VerseCounts:   []int{14, 17, 18, 6}},
		{Number: 40, Name: "Matthew", AltName: "The Gospel According to Saint Matthew", OSIS: "Matt", Testament: NewTestament,
			Abbreviations: []string{"matt", "mt", "mat"},
			VerseCounts:   []int{25, 23, 17, 25, 48, 34, 29, 34, 38, 42, 30, 50, 58, 36, 39, 28, 27, 35, 30, 34, 46, 46, 39, 51, 46, 75, 66, 20}},
		{Number: 41, Name: "Mark", AltName: "The Gospel According to Saint Mark", OSIS: "Mark", Testament: NewTestament,
			Abbreviations: []string{"mrk", "mk", "mr"},
			VerseCounts:   []int{45, 28, 35, 41, 43, 56, 37, 38, 50, 52, 33, 44, 37, 72, 47, 20}},
		{Number: 42, Name: "Luke", AltName: "The Gospel According to Saint Luke", OSIS: "Luke", Testament: NewTestament,
			Abbreviations: []string{"luk", "lk"},
			VerseCounts:   []int{80, 52, 38, 44, 39, 49, 50, 56, 62, 42, 54, 59, 35, 35, 32, 31, 37, 43, 48, 47, 38, 71, 56, 53}},
		{Number: 43, Name: "John", AltName: "The Gospel According to Saint John", OSIS: "John", Testament: NewTestament,
			Abbreviations: []string{"jn", "jhn", "joh"},
			VerseCounts:   []int{51, 25, 36, 54, 47, 71, 53, 59, 41, 42, 57, 50, 38, 31, 27, 33, 26, 40, 42, 31, 25}},
		{Number: 44, Name: "Acts", AltName: "The Acts of the Apostles", OSIS: "Acts", Testament: NewTestament,
			Abbreviations: []string{"act", "ac"},
			VerseCounts:   []int{26, 47, 26, 37, 42, 15, 60, 40, 43, 48, 30, 25, 52, 28, 41, 40, 34, 28, 41, 38, 40, 30, 35, 27, 27, 32, 44, 31}},
		{Number: 45, Name: "Romans", AltName: "The Epistle of Paul the Apostle to the Romans", OSIS: "Rom", Testament: NewTestament,
			Abbreviations: []string{"rom", "ro", "rm"},
			VerseCounts:   []int{32, 29, 31, 25, 21, 23, 25, 39, 33, 21, 36, 21, 14, 23, 33, 27}},
		{Number: 46, Name: "1 Corinthians", AltName: "The First Epistle of Paul the Apostle to the Corinthians", OSIS: "1Cor", Testament: NewTestament,
			Abbreviations: []string{"1 cor", "1 co"},
			VerseCounts:   []int{31, 16, 23, 21, 13, 20, 40, 13, 27, 33, 34, 31, 13, 40, 58, 24}},
		{Number: 47, Name: "2 Corinthians", AltName: "The Second Epistle of Paul the Apostle to the Corinthians", OSIS: "2Cor", Testament: NewTestament,
			Abbreviations: []string{"2 cor", "2 co"},
			VerseCounts:   []int{24, 17, 18, 18, 21, 18, 16, 24, 15, 18, 33, 21, 14}},
		{Number: 48, Name: "Galatians", AltName: "The Epistle of Paul the Apostle to the Galatians", OSIS: "Gal", Testament: NewTestament,
			Abbreviations: []string{"gal", "ga"},
			VerseCounts:   []int{24, 21, 29, 31, 26, 18}},
		{Number: 49, Name: "Ephesians", AltName: "The Epistle of Paul the Apostle to the Ephesians", OSIS: "Eph", Testament: NewTestament,
			Abbreviations: []string{"eph", "ephes"},
			VerseCounts:   []int{23, 22, 21, 32, 33, 24}},
		{Number: 50, Name: "Philippians", AltName: "The Epistle of Paul the Apostle to the Philippians", OSIS: "Phil", Testament: NewTestament,
			Abbreviations: []string{"phil", "php", "pp"},
			VerseCounts:   []int{30, 30, 21, 23}},
		{Number: 51, Name: "Colossians", AltName: "The Epistle of Paul the Apostle to the Colossians", OSIS: "Col", Testament: NewTestament,
			Abbreviations: []string{"col"},
			VerseCounts:   []int{29, 23, 25, 18}},
		{Number: 52, Name: "1 Thessalonians", AltName: "The First Epistle of Paul the Apostle to the Thessalonians", OSIS: "1Thess", Testament: NewTestament,
			Abbreviations: []string{"1 thess", "1 thes", "1 th"},
			VerseCounts:   []int{10, 20, 13, 18, 28}},
		{Number: 53, Name: "2 Thessalonians", AltName: "The Second Epistle of Paul the Apostle to the Thessalonians", OSIS: "2Thess", Testament: NewTestament,
			Abbreviations: []string{"2 thess", "2 thes", "2 th"},
			VerseCounts:   []int{12, 17, 18}},
		{Number: 54, Name: "1 Timothy", AltName: "The First Epistle of Paul the Apostle to Timothy", OSIS: "1Tim", Testament: NewTestament,
			Abbreviations: []string{"1 tim", "1 ti"},
			VerseCounts:   []int{20, 15, 16, 16, 25, 21}},
		{Number: 55, Name: "2 Timothy", AltName: "The Second Epistle of Paul the Apostle to Timothy", OSIS: "2Tim", Testament: NewTestament,
			Abbreviations: []string{"2 tim", "2 ti"},
			VerseCounts:   []int{18, 26, 17, 22}},
		{Number: 56, Name: "Titus", AltName: "The Epistle of Paul to Titus", OSIS: "Titus", Testament: NewTestament,
			Abbreviations: []string{"tit", "ti"},
			VerseCounts:   []int{16, 15, 15}},
		{Number: 57, Name: "Philemon", AltName: "The Epistle of Paul to Philemon", OSIS: "Phlm", Testament: NewTestament,
			Abbreviations: []string{"philem", "phm", "pm"},
			VerseCounts:   []int{25}},
		{Number: 58, Name: "Hebrews", AltName: "The Epistle of Paul the Apostle to the Hebrews", OSIS: "Heb", Testament: NewTestament,
			Abbreviations: []string{"heb"},
			VerseCounts:   []int{14, 18, 19, 16, 14, 20, 28, 13, 28, 39, 40, 29, 25}},
		{Number: 59, Name: "James", AltName: "The General Epistle of James", OSIS: "Jas", Testament: NewTestament,
			Abbreviations: []string{"jas", "jm"},
			VerseCounts:   []int{27, 26, 18, 17, 20}},
		{Number: 60, Name: "1 Peter", AltName: "The First Epistle General of Peter", OSIS: "1Pet", Testament: NewTestament,
			Abbreviations: []string{"1 pet", "1 pe", "1 pt", "1 p"},
			VerseCounts:   []int{25, 25, 22, 19, 14}},
		{Number: 61, Name: "2 Peter", AltName: "The Second Epistle General of Peter", OSIS: "2Pet", Testament: NewTestament,
			Abbreviations: []string{"2 pet", "2 pe", "2 pt", "2 p"},
			VerseCounts:   []int{21, 22, 18}},
		{Number: 62, Name: "1 John", AltName: "The First Epistle General of John", OSIS: "1John", Testament: NewTestament,
			Abbreviations: []string{"1 jn", "1 jhn", "1 jo", "1 j"},
			VerseCounts:   []int{10, 29, 24, 21, 21}},
		{Number: 63, Name: "2 John", AltName: "The Second Epistle of John", OSIS: "2John", Testament: NewTestament,
			Abbreviations: []string{"2 jn", "2 jhn", "2 jo", "2 j"},
			VerseCounts:   []int{13}},
		{Number: 64, Name: "3 John", AltName: "The Third Epistle of John", OSIS: "3John", Testament: NewTestament,
			Abbreviations: []string{"3 jn", "3 jhn", "3 jo", "3 j"},
			VerseCounts:   []int{14}},
		{Number: 65, Name: "Jude", AltName: "The General Epistle of Jude", OSIS: "Jude", Testament: NewTestament,
			Abbreviations: []string{"jud", "jd"},
			VerseCounts:   []int{25}},
		{Number: 66, Name: "Revelation", AltName: "The Revelation of Saint John the Divine", OSIS: "Rev", Testament: NewTestament,
			Abbreviations: []string{"rev", "re", "revelations", "apocalypse"},
			VerseCounts:   []int{20, 29, 22, 11, 14, 17, 17, 13, 21, 11, 19, 17, 18, 20, 8, 21, 18, 24, 21, 15, 27, 21}},
	}
}

// nivOmissions are the verses that modern critical texts relegate to footnotes.
var nivOmissions = map[string]map[int][]int{
	"Matt": {17: {21}, 18: {11}, 23: {14}},
	"Mark": {7: {16}, 9: {44, 46}, 11: {26}, 15: {28}},
	"Luke": {17: {36}, 23: {17}},
	"John": {5: {4}},
	"Acts": {8: {37}, 15: {34}, 24: {7}, 28: {29}},
	"Rom":  {16: {24}},
}

// nivBooks is the KJV canon with the NIV omissions applied.
func nivBooks() []BookDefinition {
	books := kjvBooks()
	for i := range books {
		if om, ok := nivOmissions[books[i].OSIS]; ok {
			books[i].Omissions = om
		}
	}
	return Clone(books)
}
