package npc

var germanNames = nameTable{
	feminine: []string{
		"Adelhayt", "Affra", "Agatha", "Allet", "Angnes", "Anna", "Apell", "Applonia", "Barbara",
		"Brida", "Brigita", "Cecilia", "Clara", "Cristina", "Dorothea", "Duretta", "Ella", "Els",
		"Elsbeth", "Engel", "Enlein", "Enndlin", "Eva", "Fela", "Fronicka", "Genefe", "Geras",
		"Gerhauss", "Gertrudt", "Guttel", "Helena", "Irmel", "Jonata", "Katerina", "Kuen",
		"Kungund", "Lucia", "Madalena", "Magdalen", "Margret", "Marlein", "Martha", "Otilia",
		"Ottilg", "Peternella", "Reusin", "Sibilla", "Ursel", "Vrsula", "Walpurg",
	},
	masculine: []string{
		"Albrecht", "Allexander", "Baltasar", "Benedick", "Berhart", "Caspar", "Clas", "Cristin",
		"Cristoff", "Dieterich", "Engelhart", "Erhart", "Felix", "Frantz", "Fritz", "Gerhart",
		"Gotleib", "Hans", "Hartmann", "Heintz", "Herman", "Jacob", "Jeremias", "Jorg", "Karil",
		"Kilian", "Linhart", "Lorentz", "Ludwig", "Marx", "Melchor", "Mertin", "Michel", "Moritz",
		"Osswald", "Ott", "Peter", "Rudolff", "Ruprecht", "Sewastian", "Sigmund", "Steffan",
		"Symon", "Thoman", "Ulrich", "Vallentin", "Wendel", "Wilhelm", "Wolff", "Wolfgang",
	},
}

var arabicNames = nameTable{
	feminine: []string{
		"Aisha", "Amira", "Dalia", "Farah", "Habiba", "Jamila", "Layla", "Nadia", "Noor", "Rania",
		"Salma", "Samira", "Yasmin", "Zahra", "Zainab",
	},
	masculine: []string{
		"Amir", "Bashir", "Faris", "Hakim", "Hassan", "Jamal", "Karim", "Khalid", "Malik", "Nasir",
		"Omar", "Rashid", "Samir", "Tariq", "Yusuf",
	},
}

var frenchNames = nameTable{
	feminine: []string{
		"Adele", "Agnes", "Amelie", "Blanche", "Camille", "Cecile", "Claire", "Colette", "Elise",
		"Genevieve", "Heloise", "Isabelle", "Jeanne", "Louise", "Margot", "Marie", "Odette",
		"Sophie", "Sylvie", "Yvette",
	},
	masculine: []string{
		"Antoine", "Bernard", "Charles", "Denis", "Etienne", "Francois", "Gaspard", "Guillaume",
		"Henri", "Jacques", "Jean", "Louis", "Marcel", "Nicolas", "Olivier", "Philippe", "Pierre",
		"Remy", "Thibault", "Yves",
	},
}

var greekNames = nameTable{
	feminine: []string{
		"Agathe", "Alexandra", "Anastasia", "Daphne", "Eirene", "Eleni", "Ioanna", "Kalliope",
		"Katerina", "Maria", "Penelope", "Sophia", "Theodora", "Xanthe", "Zoe",
	},
	masculine: []string{
		"Alexios", "Andreas", "Christos", "Demetrios", "Georgios", "Ioannis", "Konstantinos",
		"Leonidas", "Nikolaos", "Pavlos", "Petros", "Stavros", "Theodoros", "Vasileios", "Yannis",
	},
}

var norseNames = nameTable{
	feminine: []string{
		"Asa", "Astrid", "Bodil", "Freya", "Gudrun", "Gunhild", "Helga", "Ingrid", "Ragnhild",
		"Runa", "Sigrid", "Solveig", "Thora", "Tove", "Ylva",
	},
	masculine: []string{
		"Arne", "Bjorn", "Egil", "Eirik", "Gunnar", "Harald", "Ivar", "Knut", "Leif", "Olaf",
		"Ragnar", "Sigurd", "Sten", "Torsten", "Ulv",
	},
}

var draconicNames = nameTable{
	feminine: []string{
		"Akra", "Biri", "Daar", "Farideh", "Harann", "Havilar", "Jheri", "Kava", "Korinn",
		"Mishann", "Nala", "Perra", "Raiann", "Sora", "Surina", "Thava", "Uadjit",
	},
	masculine: []string{
		"Arjhan", "Balasar", "Bharash", "Donaar", "Ghesh", "Heskan", "Kriv", "Medrash", "Mehen",
		"Nadarr", "Pandjed", "Patrin", "Rhogar", "Shamash", "Shedinn", "Tarhun", "Torinn",
	},
	surnames: []string{
		"Clethtinthiallor", "Daardendrian", "Delmirev", "Drachedandion", "Fenkenkabradon",
		"Kepeshkmolik", "Kerrhylon", "Kimbatuul", "Linxakasendalor", "Myastan", "Nemmonis",
		"Norixius", "Ophinshtalajiir", "Prexijandilin", "Turnuroth", "Yarjerit",
	},
}

var dwarvishNames = nameTable{
	feminine: []string{
		"Amber", "Artin", "Audhild", "Bardryn", "Dagnal", "Diesa", "Eldeth", "Falkrunn",
		"Finellen", "Gunnloda", "Gurdis", "Helja", "Hlin", "Ilde", "Kathra", "Kristryd",
		"Liftrasa", "Mardred", "Riswynn", "Sannl", "Torbera", "Torgga", "Vistra",
	},
	masculine: []string{
		"Adrik", "Baern", "Barendd", "Brottor", "Bruenor", "Dain", "Darrak", "Eberk", "Einkil",
		"Fargrim", "Flint", "Gardain", "Harbek", "Kildrak", "Morgran", "Orsik", "Oskar", "Rangrim",
		"Rurik", "Taklinn", "Thoradin", "Thorin", "Tordek", "Traubon", "Travok", "Veit", "Vondal",
	},
	surnames: []string{
		"Balderk", "Battlehammer", "Brawnanvil", "Dankil", "Fireforge", "Frostbeard", "Gorunn",
		"Holderhek", "Ironfist", "Loderr", "Lutgehr", "Rumnaheim", "Strakeln", "Torunn", "Ungart",
	},
}

var elvishNames = nameTable{
	feminine: []string{
		"Adrie", "Althaea", "Anastrianna", "Andraste", "Antinua", "Bethrynna", "Birel", "Caelynn",
		"Drusilia", "Enna", "Ielenia", "Jelenneth", "Keyleth", "Leshanna", "Lia", "Meriele",
		"Mialee", "Naivara", "Quelenna", "Quillathe", "Sariel", "Shanairra", "Shava", "Silaqui",
		"Theirastra", "Thia", "Vadania", "Valanthe", "Xanaphia",
	},
	masculine: []string{
		"Adran", "Aelar", "Aramil", "Arannis", "Aust", "Beiro", "Berrian", "Carric", "Enialis",
		"Erdan", "Erevan", "Galinndan", "Hadarai", "Heian", "Himo", "Immeral", "Ivellios",
		"Laucian", "Mindartis", "Paelias", "Peren", "Quarion", "Riardon", "Rolen", "Soveliss",
		"Thamior", "Tharivol", "Theren", "Varis",
	},
	surnames: []string{
		"Amakiir", "Amastacia", "Galanodel", "Holimion", "Liadon", "Meliamne", "Nailo",
		"Siannodel", "Xiloscient",
	},
}

var gnomishNames = nameTable{
	feminine: []string{
		"Bimpnottin", "Breena", "Caramip", "Carlin", "Donella", "Duvamil", "Ella", "Ellyjobell",
		"Ellywick", "Lilli", "Loopmottin", "Lorilla", "Mardnab", "Nissa", "Nyx", "Oda", "Orla",
		"Roywyn", "Shamil", "Tana", "Waywocket", "Zanna",
	},
	masculine: []string{
		"Alston", "Alvyn", "Boddynock", "Brocc", "Burgell", "Dimble", "Eldon", "Erky", "Fonkin",
		"Frug", "Gerbo", "Gimble", "Glim", "Jebeddo", "Kellen", "Namfoodle", "Orryn", "Roondar",
		"Seebo", "Sindri", "Warryn", "Wrenn", "Zook",
	},
	surnames: []string{
		"Beren", "Daergel", "Folkor", "Garrick", "Nackle", "Murnig", "Ningel", "Raulnor",
		"Scheppen", "Timbers", "Turen",
	},
}

var hinNames = nameTable{
	feminine: []string{
		"Andry", "Bree", "Callie", "Cora", "Euphemia", "Jillian", "Kithri", "Lavinia", "Lidda",
		"Merla", "Nedda", "Paela", "Portia", "Seraphina", "Shaena", "Trym", "Vani", "Verna",
	},
	masculine: []string{
		"Alton", "Ander", "Cade", "Corrin", "Eldon", "Errich", "Finnan", "Garret", "Lindal",
		"Lyle", "Merric", "Milo", "Osborn", "Perrin", "Reed", "Roscoe", "Wellby",
	},
	surnames: []string{
		"Bigheart", "Brushgather", "Goodbarrel", "Greenbottle", "Highhill", "Hilltopple",
		"Leagallow", "Tealeaf", "Thorngage", "Tosscobble", "Underbough",
	},
}

var infernalNames = nameTable{
	feminine: []string{
		"Akta", "Anakis", "Bryseis", "Criella", "Damaia", "Ea", "Kallista", "Lerissa", "Makaria",
		"Nemeia", "Orianna", "Phelaia", "Rieta",
	},
	masculine: []string{
		"Akmenos", "Amnon", "Barakas", "Damakos", "Ekemon", "Iados", "Kairon", "Leucis", "Melech",
		"Mordai", "Morthos", "Pelaios", "Skamos", "Therai",
	},
}

var orcishNames = nameTable{
	feminine: []string{
		"Baggi", "Emen", "Engong", "Kansif", "Myev", "Neega", "Ovak", "Ownka", "Shautha", "Sutha",
		"Vola", "Volen", "Yevelda",
	},
	masculine: []string{
		"Dench", "Feng", "Gell", "Henk", "Holg", "Imsh", "Keth", "Krusk", "Mhurren", "Ront",
		"Shump", "Thokk",
	},
}
