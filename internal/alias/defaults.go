package alias

// Встроенные справочники каталога мягкой мебели и матрасов.

var defaultBrands = []Brand{
	{"VELUNA", []string{"veluna", "велуна", "велюна", "илуна", "iluna", "вилуна"}},
	{"ELVA", []string{"elva", "элва", "эльва", "елва", "ельва"}},
	{"Rivalli", []string{"rivalli", "ривалли", "ривали", "риваллі", "revolut", "револют", "револю"}},
	{"Мебельград", []string{"мебельград", "mebelgrad", "мебелград"}},
	{"Mio Tesoro", []string{"mio tesoro", "мио тесоро", "мио тезоро", "миа тесоро", "миа тезоро", "mia tesoro", "мио", "миа"}},
	{"Moon Trade", []string{"moon trade", "мун трейд", "мун трэйд", "moon", "мун"}},
	{"Anderssen", []string{"anderssen", "андерссен", "андерсен", "андерсон"}},
	{"Moon", []string{"moon", "мун"}},
	{"Trade", []string{"trade", "трейд", "трэйд", "трейт"}},
	{"Woodcraft", []string{"woodcraft", "вудкрафт", "вуткрафт"}},
	{"Leset", []string{"leset", "лесет", "лесэт"}},
	{"Homeme", []string{"homeme", "хомми", "хоумми", "хомме"}},
	{"Askona", []string{"askona", "аскона"}},
	{"Lazurit", []string{"lazurit", "лазурит"}},
	{"Pushe", []string{"pushe", "пуше", "пушэ", "пуш"}},
	{"First", []string{"first", "фирст", "фёрст", "ферст"}},
	{"Lagoma", []string{"lagoma", "лагома", "лагуна", "лагона", "логома", "лагомо"}},
}

var defaultEntries = []Entry{
	// диваны
	Word("yuki", "юкки", "юки", "yukki"),
	Word("gizela", "гизела", "гизелла"),
	Word("chianti", "кьянти", "киянти", "кианти", "kyanti"),
	Word("miami", "майами", "маями", "миами"),
	Word("aspen", "аспен", "аспэн"),
	Word("leyton", "лейтон", "лэйтон"),
	Word("evas", "эвас", "евас"),
	Word("sonni", "сонни", "сони"),
	Word("eloy", "элой", "елой"),
	Word("vito", "вито", "віто"),
	Word("kubo", "кубо"),
	Word("bilbao", "бильбао", "билбао"),
	Word("pekin", "пекин", "пекін", "beijing"),
	Word("aisti", "айсти", "аисти", "isti"),
	Word("riemu", "риему", "риэму"),
	Word("tulisia", "тулисия", "тулисія"),
	Word("saari", "саари", "саарі"),
	Word("unelma", "унельма", "унелма"),
	Word("lintu", "линту", "лінту"),
	Word("lira", "лира", "ліра"),
	Word("tunne", "тунне", "туне"),
	Word("aurinko", "ауринко", "аурінко"),
	Word("velke", "велке", "велькэ"),
	Word("tuuli", "туули", "туулі"),
	Word("toivo", "тойво", "тоіво"),
	Word("jersey", "джерси", "джерсі"),
	Word("emma", "эмма", "емма"),
	Word("dijon", "дижон", "діжон"),
	Word("orleans", "орлеан"),
	Word("parma", "парма"),
	Word("discovery", "дискавери", "дискавері"),
	Word("porto", "порто"),
	Word("somerset", "сомерсет"),
	Word("rimini", "риммини", "римини"),
	Word("valencia", "валенсия", "валенсія"),
	Word("montreal", "монреаль", "монреал", "монтреаль"),
	Word("douglas", "дуглас", "даглас"),

	// матрасы Lagoma
	Word("alma", "альма", "алма", "аума", "альмо", "алмо", "олма", "оума"),
	Word("asker", "аскер", "аскэр", "оскер", "эскер", "эскара", "аскар", "оскар", "эскар", "аскир"),
	Word("glatta", "глатта", "глата", "глатто", "глато", "гллата", "глота"),
	Word("ilta", "ильта", "илта", "ильда", "илда", "ылта"),
	Word("lenvik", "ленвик", "ленвік", "лэнвик", "ленвиг", "ланвик", "ленвык", "ленвиц"),
	Word("lund", "лунд", "ланд", "лунт", "лунтт", "луннд"),
	Word("narvik", "нарвик", "нарвік", "норвик", "нарвыг", "норвиг", "нарвиг"),
	Word("ulvik", "ульвик", "улвик", "ульвік", "улвік", "ульвиг", "улвиг", "ульвыг"),
	// матрасы Veluna
	Word("laoma", "лаома", "лаомо", "лоома", "лаамо"),
	Word("palato", "палато", "палатто", "палата", "полато", "палотто"),
	// латинские опечатки
	Word("lanwick", "ленвик"),
	Word("lenvick", "ленвик"),
	Word("lanvik", "ленвик"),
	Word("lenwig", "ленвик"),

	// побуквенно
	Letter("shch", "щ"), Letter("yo", "ё"), Letter("zh", "ж"), Letter("ch", "ч"),
	Letter("sh", "ш"), Letter("yu", "ю"), Letter("ya", "я"), Letter("ts", "ц"),
	Letter("a", "а"), Letter("b", "б"), Letter("v", "в"), Letter("g", "г"),
	Letter("d", "д"), Letter("e", "е"), Letter("z", "з"), Letter("i", "и"),
	Letter("k", "к"), Letter("l", "л"), Letter("m", "м"), Letter("n", "н"),
	Letter("o", "о"), Letter("p", "п"), Letter("r", "р"), Letter("s", "с"),
	Letter("t", "т"), Letter("u", "у"), Letter("f", "ф"), Letter("h", "х"),
	Letter("w", "в"), Letter("y", "й"), Letter("x", "кс"), Letter("j", "дж"),
}
