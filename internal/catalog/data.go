package catalog

// Base data; derived variations are added in New.

var bibleVersions = []BibleVersion{
	{ID: "esv", Name: "English Standard Version", Abbreviation: "ESV", Language: "English", LanguageCode: "en", Year: 2001, TranslationType: "formal"},
	{ID: "kjv", Name: "King James Version", Abbreviation: "KJV", Language: "English", LanguageCode: "en", Year: 1611, TranslationType: "formal"},
	{ID: "nkjv", Name: "New King James Version", Abbreviation: "NKJV", Language: "English", LanguageCode: "en", Year: 1982, TranslationType: "formal"},
	{ID: "niv", Name: "New International Version", Abbreviation: "NIV", Language: "English", LanguageCode: "en", Year: 1978, TranslationType: "dynamic"},
	{ID: "nlt", Name: "New Living Translation", Abbreviation: "NLT", Language: "English", LanguageCode: "en", Year: 1996, TranslationType: "dynamic"},
	{ID: "msg", Name: "The Message", Abbreviation: "MSG", Language: "English", LanguageCode: "en", Year: 2002, TranslationType: "paraphrase"},
	{ID: "nasb", Name: "New American Standard Bible", Abbreviation: "NASB", Language: "English", LanguageCode: "en", Year: 1971, TranslationType: "formal"},
	{ID: "amp", Name: "Amplified Bible", Abbreviation: "AMP", Language: "English", LanguageCode: "en", Year: 2015, TranslationType: "dynamic"},
	{ID: "csb", Name: "Christian Standard Bible", Abbreviation: "CSB", Language: "English", LanguageCode: "en", Year: 2017, TranslationType: "optimal"},
	{ID: "nrsv", Name: "New Revised Standard Version", Abbreviation: "NRSV", Language: "English", LanguageCode: "en", Year: 1989, TranslationType: "formal"},
	{ID: "rsv", Name: "Revised Standard Version", Abbreviation: "RSV", Language: "English", LanguageCode: "en", Year: 1952, TranslationType: "formal"},
	{ID: "gnt", Name: "Good News Translation", Abbreviation: "GNT", Language: "English", LanguageCode: "en", Year: 1976, TranslationType: "dynamic"},
	{ID: "cev", Name: "Contemporary English Version", Abbreviation: "CEV", Language: "English", LanguageCode: "en", Year: 1995, TranslationType: "dynamic"},
	{ID: "web", Name: "World English Bible", Abbreviation: "WEB", Language: "English", LanguageCode: "en", Year: 2000, TranslationType: "formal"},
	{ID: "leb", Name: "Lexham English Bible", Abbreviation: "LEB", Language: "English", LanguageCode: "en", Year: 2012, TranslationType: "formal"},
	{ID: "net", Name: "New English Translation", Abbreviation: "NET", Language: "English", LanguageCode: "en", Year: 2005, TranslationType: "dynamic"},
	{ID: "hcsb", Name: "Holman Christian Standard Bible", Abbreviation: "HCSB", Language: "English", LanguageCode: "en", Year: 2004, TranslationType: "optimal"},
	{ID: "erv", Name: "Easy-to-Read Version", Abbreviation: "ERV", Language: "English", LanguageCode: "en", Year: 1987, TranslationType: "dynamic"},
	{ID: "asv", Name: "American Standard Version", Abbreviation: "ASV", Language: "English", LanguageCode: "en", Year: 1901, TranslationType: "formal"},
	{ID: "ylt", Name: "Young's Literal Translation", Abbreviation: "YLT", Language: "English", LanguageCode: "en", Year: 1898, TranslationType: "formal"},
	{ID: "jcb", Name: "Japanese Contemporary Bible", Abbreviation: "JCB", Language: "Japanese", LanguageCode: "ja", Year: 2003, TranslationType: "dynamic"},
	{ID: "kjv_jp", Name: "口語訳", Abbreviation: "KOU", Language: "Japanese", LanguageCode: "ja", Year: 1955, TranslationType: "formal"},
	{ID: "shinkaiyaku", Name: "新改訳", Abbreviation: "SHIN", Language: "Japanese", LanguageCode: "ja", Year: 2017, TranslationType: "formal"},
	{ID: "shinkyoudouyaku", Name: "新共同訳", Abbreviation: "KYOU", Language: "Japanese", LanguageCode: "ja", Year: 1987, TranslationType: "formal"},
	{ID: "living_jp", Name: "リビングバイブル", Abbreviation: "LIVING", Language: "Japanese", LanguageCode: "ja", Year: 1997, TranslationType: "paraphrase"},
	{ID: "krv", Name: "Korean Revised Version", Abbreviation: "KRV", Language: "Korean", LanguageCode: "ko", Year: 1961, TranslationType: "formal"},
	{ID: "rnksv", Name: "개역개정", Abbreviation: "RNKSV", Language: "Korean", LanguageCode: "ko", Year: 1998, TranslationType: "formal"},
	{ID: "nkrv", Name: "New Korean Revised Version", Abbreviation: "NKRV", Language: "Korean", LanguageCode: "ko", Year: 1998, TranslationType: "formal"},
	{ID: "kcb", Name: "공동번역", Abbreviation: "KCB", Language: "Korean", LanguageCode: "ko", Year: 1977, TranslationType: "dynamic"},
	{ID: "nlk", Name: "새번역", Abbreviation: "NLK", Language: "Korean", LanguageCode: "ko", Year: 2004, TranslationType: "dynamic"},
	{ID: "cuv", Name: "Chinese Union Version", Abbreviation: "CUV", Language: "Chinese Simplified", LanguageCode: "zh-CN", Year: 1919, TranslationType: "formal"},
	{ID: "ncv", Name: "新譯本", Abbreviation: "NCV", Language: "Chinese Traditional", LanguageCode: "zh-TW", Year: 1992, TranslationType: "formal"},
	{ID: "ccb", Name: "当代译本", Abbreviation: "CCB", Language: "Chinese Simplified", LanguageCode: "zh-CN", Year: 2011, TranslationType: "dynamic"},
	{ID: "cnvt", Name: "新譯本 (繁體)", Abbreviation: "CNVT", Language: "Chinese Traditional", LanguageCode: "zh-TW", Year: 1992, TranslationType: "formal"},
	{ID: "rcuv", Name: "和合本修訂版", Abbreviation: "RCUV", Language: "Chinese Traditional", LanguageCode: "zh-TW", Year: 2010, TranslationType: "formal"},
	{ID: "asnd", Name: "Ang Salita ng Diyos", Abbreviation: "ASND", Language: "Tagalog", LanguageCode: "tl", Year: 2009, TranslationType: "dynamic"},
	{ID: "mbbtag", Name: "Magandang Balita Biblia", Abbreviation: "MBB", Language: "Tagalog", LanguageCode: "tl", Year: 1979, TranslationType: "dynamic"},
	{ID: "rcpv", Name: "Revised Cebuano Popular Version", Abbreviation: "RCPV", Language: "Cebuano", LanguageCode: "ceb", Year: 2015, TranslationType: "dynamic"},
	{ID: "hlgn", Name: "Hiligaynon Bible", Abbreviation: "HLGN", Language: "Hiligaynon", LanguageCode: "hil", Year: 2010, TranslationType: "dynamic"},
	{ID: "tib", Name: "Terjemahan Baru", Abbreviation: "TB", Language: "Indonesian", LanguageCode: "id", Year: 1974, TranslationType: "formal"},
	{ID: "bis", Name: "Bahasa Indonesia Sehari-hari", Abbreviation: "BIS", Language: "Indonesian", LanguageCode: "id", Year: 1985, TranslationType: "dynamic"},
	{ID: "fayh", Name: "Firman Allah Yang Hidup", Abbreviation: "FAYH", Language: "Indonesian", LanguageCode: "id", Year: 2013, TranslationType: "paraphrase"},
	{ID: "rv1960", Name: "Reina Valera 1960", Abbreviation: "RV1960", Language: "Spanish", LanguageCode: "es", Year: 1960, TranslationType: "formal"},
	{ID: "nvi", Name: "Nueva Versión Internacional", Abbreviation: "NVI", Language: "Spanish", LanguageCode: "es", Year: 1999, TranslationType: "dynamic"},
	{ID: "lbla", Name: "La Biblia de las Américas", Abbreviation: "LBLA", Language: "Spanish", LanguageCode: "es", Year: 1986, TranslationType: "formal"},
	{ID: "nbv", Name: "Nueva Biblia Viva", Abbreviation: "NBV", Language: "Spanish", LanguageCode: "es", Year: 2006, TranslationType: "paraphrase"},
	{ID: "dhh", Name: "Dios Habla Hoy", Abbreviation: "DHH", Language: "Spanish", LanguageCode: "es", Year: 1966, TranslationType: "dynamic"},
	{ID: "rv1995", Name: "Reina Valera 1995", Abbreviation: "RV1995", Language: "Spanish", LanguageCode: "es", Year: 1995, TranslationType: "formal"},
	{ID: "tlv", Name: "Traducción en Lenguaje Actual", Abbreviation: "TLA", Language: "Spanish", LanguageCode: "es", Year: 2003, TranslationType: "dynamic"},
	{ID: "cst", Name: "Castilian", Abbreviation: "CST", Language: "Spanish", LanguageCode: "es", Year: 2003, TranslationType: "formal"},
	{ID: "lsg", Name: "Louis Segond 1910", Abbreviation: "LSG", Language: "French", LanguageCode: "fr", Year: 1910, TranslationType: "formal"},
	{ID: "s21", Name: "Segond 21", Abbreviation: "S21", Language: "French", LanguageCode: "fr", Year: 2007, TranslationType: "dynamic"},
	{ID: "bds", Name: "Bible du Semeur", Abbreviation: "BDS", Language: "French", LanguageCode: "fr", Year: 1999, TranslationType: "dynamic"},
	{ID: "nfc", Name: "Nouvelle Français Courant", Abbreviation: "NFC", Language: "French", LanguageCode: "fr", Year: 2019, TranslationType: "dynamic"},
	{ID: "lut", Name: "Lutherbibel 1984", Abbreviation: "LUT", Language: "German", LanguageCode: "de", Year: 1984, TranslationType: "formal"},
	{ID: "lut2017", Name: "Lutherbibel 2017", Abbreviation: "LUT2017", Language: "German", LanguageCode: "de", Year: 2017, TranslationType: "formal"},
	{ID: "ngue", Name: "Neue Genfer Übersetzung", Abbreviation: "NGU", Language: "German", LanguageCode: "de", Year: 2011, TranslationType: "dynamic"},
	{ID: "hfa", Name: "Hoffnung für Alle", Abbreviation: "HfA", Language: "German", LanguageCode: "de", Year: 2015, TranslationType: "dynamic"},
	{ID: "nr2006", Name: "Nuova Riveduta 2006", Abbreviation: "NR2006", Language: "Italian", LanguageCode: "it", Year: 2006, TranslationType: "formal"},
	{ID: "cei", Name: "Conferenza Episcopale Italiana", Abbreviation: "CEI", Language: "Italian", LanguageCode: "it", Year: 2008, TranslationType: "formal"},
	{ID: "stv", Name: "Statenvertaling", Abbreviation: "STV", Language: "Dutch", LanguageCode: "nl", Year: 1637, TranslationType: "formal"},
	{ID: "nbv21", Name: "Nieuwe Bijbelvertaling", Abbreviation: "NBV21", Language: "Dutch", LanguageCode: "nl", Year: 2004, TranslationType: "dynamic"},
	{ID: "arc", Name: "Almeida Revista e Corrigida", Abbreviation: "ARC", Language: "Portuguese", LanguageCode: "pt", Year: 1995, TranslationType: "formal"},
	{ID: "nvi_pt", Name: "Nova Versão Internacional", Abbreviation: "NVI-PT", Language: "Portuguese", LanguageCode: "pt", Year: 2001, TranslationType: "dynamic"},
	{ID: "ntlh", Name: "Nova Tradução na Linguagem de Hoje", Abbreviation: "NTLH", Language: "Portuguese", LanguageCode: "pt", Year: 2000, TranslationType: "dynamic"},
	{ID: "bkr", Name: "Bible Kralická", Abbreviation: "BKR", Language: "Czech", LanguageCode: "cs", Year: 1613, TranslationType: "formal"},
	{ID: "cep", Name: "Český ekumenický překlad", Abbreviation: "CEP", Language: "Czech", LanguageCode: "cs", Year: 1985, TranslationType: "dynamic"},
	{ID: "bg1940", Name: "Bulgarian Bible 1940", Abbreviation: "BG1940", Language: "Bulgarian", LanguageCode: "bg", Year: 1940, TranslationType: "formal"},
	{ID: "rsz", Name: "Raamattu 1933/1938", Abbreviation: "RSZ", Language: "Finnish", LanguageCode: "fi", Year: 1938, TranslationType: "formal"},
	{ID: "bibelen", Name: "Bibelen på Hverdagsdansk", Abbreviation: "BPH", Language: "Danish", LanguageCode: "da", Year: 1985, TranslationType: "dynamic"},
	{ID: "sven", Name: "Svenska Folkbibeln", Abbreviation: "SFB", Language: "Swedish", LanguageCode: "sv", Year: 1998, TranslationType: "dynamic"},
	{ID: "nb88", Name: "Bibelen 1988", Abbreviation: "NB88", Language: "Norwegian", LanguageCode: "no", Year: 1988, TranslationType: "formal"},
	{ID: "bp", Name: "Biblia Poznańska", Abbreviation: "BP", Language: "Polish", LanguageCode: "pl", Year: 1975, TranslationType: "formal"},
	{ID: "uwspd", Name: "Uwspółcześniona Biblia Gdańska", Abbreviation: "UBG", Language: "Polish", LanguageCode: "pl", Year: 2017, TranslationType: "dynamic"},
	{ID: "cars", Name: "Cornilescu", Abbreviation: "CARS", Language: "Romanian", LanguageCode: "ro", Year: 1924, TranslationType: "formal"},
	{ID: "rst", Name: "Russian Synodal Translation", Abbreviation: "RST", Language: "Russian", LanguageCode: "ru", Year: 1876, TranslationType: "formal"},
	{ID: "nrt", Name: "New Russian Translation", Abbreviation: "NRT", Language: "Russian", LanguageCode: "ru", Year: 2011, TranslationType: "dynamic"},
	{ID: "ubio", Name: "Українська Біблія", Abbreviation: "UBIO", Language: "Ukrainian", LanguageCode: "uk", Year: 1962, TranslationType: "formal"},
	{ID: "kar", Name: "Hungarian Károli", Abbreviation: "KAR", Language: "Hungarian", LanguageCode: "hu", Year: 1590, TranslationType: "formal"},
	{ID: "ntr", Name: "Nádej pre každého", Abbreviation: "NPK", Language: "Slovak", LanguageCode: "sk", Year: 2015, TranslationType: "dynamic"},
	{ID: "svi", Name: "Sveta Biblija", Abbreviation: "SVI", Language: "Croatian", LanguageCode: "hr", Year: 1968, TranslationType: "formal"},
	{ID: "tr1850", Name: "Textus Receptus 1850", Abbreviation: "TR1850", Language: "Greek", LanguageCode: "el", Year: 1850, TranslationType: "original"},
	{ID: "byz", Name: "Byzantine Text", Abbreviation: "BYZ", Language: "Greek", LanguageCode: "el", Year: 2000, TranslationType: "original"},
	{ID: "wlc", Name: "Westminster Leningrad Codex", Abbreviation: "WLC", Language: "Hebrew", LanguageCode: "he", Year: 2010, TranslationType: "original"},
	{ID: "bhsm", Name: "Biblia Hebraica Stuttgartensia", Abbreviation: "BHS", Language: "Hebrew", LanguageCode: "he", Year: 1977, TranslationType: "original"},
	{ID: "vulgate", Name: "Latin Vulgate", Abbreviation: "VUL", Language: "Latin", LanguageCode: "la", Year: 405, TranslationType: "original"},
	{ID: "arb", Name: "Arabic Van Dyck", Abbreviation: "AVD", Language: "Arabic", LanguageCode: "ar", Year: 1865, TranslationType: "formal"},
	{ID: "arbm", Name: "Arabic Bible (Modernized)", Abbreviation: "ARBM", Language: "Arabic", LanguageCode: "ar", Year: 2009, TranslationType: "dynamic"},
	{ID: "hin", Name: "Hindi Bible", Abbreviation: "IRV", Language: "Hindi", LanguageCode: "hi", Year: 2017, TranslationType: "formal"},
	{ID: "tel", Name: "Telugu Bible", Abbreviation: "TEL", Language: "Telugu", LanguageCode: "te", Year: 1997, TranslationType: "formal"},
	{ID: "tam", Name: "Tamil Bible", Abbreviation: "TAM", Language: "Tamil", LanguageCode: "ta", Year: 1995, TranslationType: "formal"},
	{ID: "ben", Name: "Bengali Bible", Abbreviation: "BEN", Language: "Bengali", LanguageCode: "bn", Year: 2001, TranslationType: "formal"},
	{ID: "tha", Name: "Thai Bible", Abbreviation: "THA", Language: "Thai", LanguageCode: "th", Year: 2011, TranslationType: "formal"},
	{ID: "vie", Name: "Vietnamese Bible", Abbreviation: "VI1934", Language: "Vietnamese", LanguageCode: "vi", Year: 1934, TranslationType: "formal"},
	{ID: "swa", Name: "Swahili Bible", Abbreviation: "SWA", Language: "Swahili", LanguageCode: "sw", Year: 1952, TranslationType: "formal"},
	{ID: "amh", Name: "Amharic Bible", Abbreviation: "AMH", Language: "Amharic", LanguageCode: "am", Year: 1984, TranslationType: "formal"},
	{ID: "nep", Name: "Nepali Bible", Abbreviation: "NEP", Language: "Nepali", LanguageCode: "ne", Year: 2008, TranslationType: "formal"},
	{ID: "urdu", Name: "Urdu Bible", Abbreviation: "URD", Language: "Urdu", LanguageCode: "ur", Year: 1895, TranslationType: "formal"},
	{ID: "per", Name: "Persian Bible", Abbreviation: "PER", Language: "Persian", LanguageCode: "fa", Year: 1896, TranslationType: "formal"},
	{ID: "tur", Name: "Turkish Bible", Abbreviation: "TUR", Language: "Turkish", LanguageCode: "tr", Year: 2009, TranslationType: "formal"},
	{ID: "afr", Name: "Afrikaans Bible 1933", Abbreviation: "AFR1933", Language: "Afrikaans", LanguageCode: "af", Year: 1933, TranslationType: "formal"},
	{ID: "mal", Name: "Malayalam Bible", Abbreviation: "MAL", Language: "Malayalam", LanguageCode: "ml", Year: 1992, TranslationType: "formal"},
	{ID: "mar", Name: "Marathi Bible", Abbreviation: "MAR", Language: "Marathi", LanguageCode: "mr", Year: 1999, TranslationType: "formal"},
}

var baseFonts = []Font{
	{ID: "georgia", Name: "Georgia", Family: "Georgia, serif", Category: "serif", Weight: "normal", IsWebSafe: true, GoogleFont: false},
	{ID: "times", Name: "Times New Roman", Family: "'Times New Roman', Times, serif", Category: "serif", Weight: "normal", IsWebSafe: true, GoogleFont: false},
	{ID: "garamond", Name: "Garamond", Family: "Garamond, serif", Category: "serif", Weight: "normal", IsWebSafe: true, GoogleFont: false},
	{ID: "palatino", Name: "Palatino", Family: "'Palatino Linotype', 'Book Antiqua', Palatino, serif", Category: "serif", Weight: "normal", IsWebSafe: true, GoogleFont: false},
	{ID: "baskerville", Name: "Baskerville", Family: "Baskerville, 'Baskerville Old Face', 'Hoefler Text', Garamond, serif", Category: "serif", Weight: "normal", IsWebSafe: false, GoogleFont: false},
	{ID: "arial", Name: "Arial", Family: "Arial, Helvetica, sans-serif", Category: "sans-serif", Weight: "normal", IsWebSafe: true, GoogleFont: false},
	{ID: "helvetica", Name: "Helvetica", Family: "Helvetica, Arial, sans-serif", Category: "sans-serif", Weight: "normal", IsWebSafe: true, GoogleFont: false},
	{ID: "verdana", Name: "Verdana", Family: "Verdana, Geneva, sans-serif", Category: "sans-serif", Weight: "normal", IsWebSafe: true, GoogleFont: false},
	{ID: "tahoma", Name: "Tahoma", Family: "Tahoma, Geneva, sans-serif", Category: "sans-serif", Weight: "normal", IsWebSafe: true, GoogleFont: false},
	{ID: "trebuchet", Name: "Trebuchet MS", Family: "'Trebuchet MS', Helvetica, sans-serif", Category: "sans-serif", Weight: "normal", IsWebSafe: true, GoogleFont: false},
	{ID: "segoe", Name: "Segoe UI", Family: "'Segoe UI', Tahoma, Geneva, Verdana, sans-serif", Category: "sans-serif", Weight: "normal", IsWebSafe: true, GoogleFont: false},
	{ID: "calibri", Name: "Calibri", Family: "Calibri, Candara, Segoe, Optima, Arial, sans-serif", Category: "sans-serif", Weight: "normal", IsWebSafe: false, GoogleFont: false},
	{ID: "courier", Name: "Courier New", Family: "'Courier New', Courier, monospace", Category: "monospace", Weight: "normal", IsWebSafe: true, GoogleFont: false},
	{ID: "monaco", Name: "Monaco", Family: "Monaco, 'Lucida Console', monospace", Category: "monospace", Weight: "normal", IsWebSafe: true, GoogleFont: false},
	{ID: "consolas", Name: "Consolas", Family: "Consolas, monaco, monospace", Category: "monospace", Weight: "normal", IsWebSafe: false, GoogleFont: false},
	{ID: "impact", Name: "Impact", Family: "Impact, Haettenschweiler, 'Franklin Gothic Bold', sans-serif", Category: "display", Weight: "bold", IsWebSafe: true, GoogleFont: false},
	{ID: "comic-sans", Name: "Comic Sans MS", Family: "'Comic Sans MS', cursive, sans-serif", Category: "display", Weight: "normal", IsWebSafe: true, GoogleFont: false},
	{ID: "merriweather", Name: "Merriweather", Family: "'Merriweather', serif", Category: "serif", Weight: "normal", IsWebSafe: false, GoogleFont: true},
	{ID: "lora", Name: "Lora", Family: "'Lora', serif", Category: "serif", Weight: "normal", IsWebSafe: false, GoogleFont: true},
	{ID: "playfair", Name: "Playfair Display", Family: "'Playfair Display', serif", Category: "serif", Weight: "normal", IsWebSafe: false, GoogleFont: true},
	{ID: "eb-garamond", Name: "EB Garamond", Family: "'EB Garamond', serif", Category: "serif", Weight: "normal", IsWebSafe: false, GoogleFont: true},
	{ID: "libre-baskerville", Name: "Libre Baskerville", Family: "'Libre Baskerville', serif", Category: "serif", Weight: "normal", IsWebSafe: false, GoogleFont: true},
	{ID: "crimson-text", Name: "Crimson Text", Family: "'Crimson Text', serif", Category: "serif", Weight: "normal", IsWebSafe: false, GoogleFont: true},
	{ID: "old-standard", Name: "Old Standard TT", Family: "'Old Standard TT', serif", Category: "serif", Weight: "normal", IsWebSafe: false, GoogleFont: true},
	{ID: "roboto", Name: "Roboto", Family: "'Roboto', sans-serif", Category: "sans-serif", Weight: "normal", IsWebSafe: false, GoogleFont: true},
	{ID: "open-sans", Name: "Open Sans", Family: "'Open Sans', sans-serif", Category: "sans-serif", Weight: "normal", IsWebSafe: false, GoogleFont: true},
	{ID: "lato", Name: "Lato", Family: "'Lato', sans-serif", Category: "sans-serif", Weight: "normal", IsWebSafe: false, GoogleFont: true},
	{ID: "montserrat", Name: "Montserrat", Family: "'Montserrat', sans-serif", Category: "sans-serif", Weight: "normal", IsWebSafe: false, GoogleFont: true},
	{ID: "source-sans", Name: "Source Sans Pro", Family: "'Source Sans Pro', sans-serif", Category: "sans-serif", Weight: "normal", IsWebSafe: false, GoogleFont: true},
	{ID: "raleway", Name: "Raleway", Family: "'Raleway', sans-serif", Category: "sans-serif", Weight: "normal", IsWebSafe: false, GoogleFont: true},
	{ID: "poppins", Name: "Poppins", Family: "'Poppins', sans-serif", Category: "sans-serif", Weight: "normal", IsWebSafe: false, GoogleFont: true},
	{ID: "nunito", Name: "Nunito", Family: "'Nunito', sans-serif", Category: "sans-serif", Weight: "normal", IsWebSafe: false, GoogleFont: true},
	{ID: "inter", Name: "Inter", Family: "'Inter', sans-serif", Category: "sans-serif", Weight: "normal", IsWebSafe: false, GoogleFont: true},
	{ID: "work-sans", Name: "Work Sans", Family: "'Work Sans', sans-serif", Category: "sans-serif", Weight: "normal", IsWebSafe: false, GoogleFont: true},
	{ID: "dancing-script", Name: "Dancing Script", Family: "'Dancing Script', cursive", Category: "handwriting", Weight: "normal", IsWebSafe: false, GoogleFont: true},
	{ID: "pacifico", Name: "Pacifico", Family: "'Pacifico', cursive", Category: "handwriting", Weight: "normal", IsWebSafe: false, GoogleFont: true},
	{ID: "shadows-into-light", Name: "Shadows Into Light", Family: "'Shadows Into Light', cursive", Category: "handwriting", Weight: "normal", IsWebSafe: false, GoogleFont: true},
	{ID: "indie-flower", Name: "Indie Flower", Family: "'Indie Flower', cursive", Category: "handwriting", Weight: "normal", IsWebSafe: false, GoogleFont: true},
	{ID: "caveat", Name: "Caveat", Family: "'Caveat', cursive", Category: "handwriting", Weight: "normal", IsWebSafe: false, GoogleFont: true},
	{ID: "oswald", Name: "Oswald", Family: "'Oswald', sans-serif", Category: "display", Weight: "normal", IsWebSafe: false, GoogleFont: true},
	{ID: "anton", Name: "Anton", Family: "'Anton', sans-serif", Category: "display", Weight: "bold", IsWebSafe: false, GoogleFont: true},
	{ID: "bebas-neue", Name: "Bebas Neue", Family: "'Bebas Neue', cursive", Category: "display", Weight: "normal", IsWebSafe: false, GoogleFont: true},
}

var baseColors = []Color{
	{ID: "yellow", Name: "Yellow", HexColor: "#FFEB3B", RGBA: "rgba(255, 235, 59, 0.4)", Category: "warm"},
	{ID: "amber", Name: "Amber", HexColor: "#FFC107", RGBA: "rgba(255, 193, 7, 0.4)", Category: "warm"},
	{ID: "orange", Name: "Orange", HexColor: "#FF9800", RGBA: "rgba(255, 152, 0, 0.4)", Category: "warm"},
	{ID: "deep-orange", Name: "Deep Orange", HexColor: "#FF5722", RGBA: "rgba(255, 87, 34, 0.4)", Category: "warm"},
	{ID: "red", Name: "Red", HexColor: "#F44336", RGBA: "rgba(244, 67, 54, 0.4)", Category: "warm"},
	{ID: "pink", Name: "Pink", HexColor: "#E91E63", RGBA: "rgba(233, 30, 99, 0.4)", Category: "warm"},
	{ID: "purple", Name: "Purple", HexColor: "#9C27B0", RGBA: "rgba(156, 39, 176, 0.4)", Category: "cool"},
	{ID: "deep-purple", Name: "Deep Purple", HexColor: "#673AB7", RGBA: "rgba(103, 58, 183, 0.4)", Category: "cool"},
	{ID: "indigo", Name: "Indigo", HexColor: "#3F51B5", RGBA: "rgba(63, 81, 181, 0.4)", Category: "cool"},
	{ID: "blue", Name: "Blue", HexColor: "#2196F3", RGBA: "rgba(33, 150, 243, 0.4)", Category: "cool"},
	{ID: "light-blue", Name: "Light Blue", HexColor: "#03A9F4", RGBA: "rgba(3, 169, 244, 0.4)", Category: "cool"},
	{ID: "cyan", Name: "Cyan", HexColor: "#00BCD4", RGBA: "rgba(0, 188, 212, 0.4)", Category: "cool"},
	{ID: "teal", Name: "Teal", HexColor: "#009688", RGBA: "rgba(0, 150, 136, 0.4)", Category: "cool"},
	{ID: "green", Name: "Green", HexColor: "#4CAF50", RGBA: "rgba(76, 175, 80, 0.4)", Category: "green"},
	{ID: "light-green", Name: "Light Green", HexColor: "#8BC34A", RGBA: "rgba(139, 195, 74, 0.4)", Category: "green"},
	{ID: "lime", Name: "Lime", HexColor: "#CDDC39", RGBA: "rgba(205, 220, 57, 0.4)", Category: "green"},
	{ID: "olive", Name: "Olive", HexColor: "#808000", RGBA: "rgba(128, 128, 0, 0.4)", Category: "green"},
	{ID: "brown", Name: "Brown", HexColor: "#795548", RGBA: "rgba(121, 85, 72, 0.4)", Category: "neutral"},
	{ID: "grey", Name: "Grey", HexColor: "#9E9E9E", RGBA: "rgba(158, 158, 158, 0.4)", Category: "neutral"},
	{ID: "blue-grey", Name: "Blue Grey", HexColor: "#607D8B", RGBA: "rgba(96, 125, 139, 0.4)", Category: "neutral"},
	{ID: "pastel-pink", Name: "Pastel Pink", HexColor: "#FFD1DC", RGBA: "rgba(255, 209, 220, 0.4)", Category: "pastel"},
	{ID: "pastel-blue", Name: "Pastel Blue", HexColor: "#AEC6CF", RGBA: "rgba(174, 198, 207, 0.4)", Category: "pastel"},
	{ID: "pastel-green", Name: "Pastel Green", HexColor: "#B5EAD7", RGBA: "rgba(181, 234, 215, 0.4)", Category: "pastel"},
	{ID: "pastel-yellow", Name: "Pastel Yellow", HexColor: "#FFFACD", RGBA: "rgba(255, 250, 205, 0.4)", Category: "pastel"},
	{ID: "pastel-purple", Name: "Pastel Purple", HexColor: "#E0BBE4", RGBA: "rgba(224, 187, 228, 0.4)", Category: "pastel"},
	{ID: "pastel-orange", Name: "Pastel Orange", HexColor: "#FFDAB9", RGBA: "rgba(255, 218, 185, 0.4)", Category: "pastel"},
	{ID: "vivid-red", Name: "Vivid Red", HexColor: "#FF0000", RGBA: "rgba(255, 0, 0, 0.4)", Category: "vivid"},
	{ID: "vivid-blue", Name: "Vivid Blue", HexColor: "#0000FF", RGBA: "rgba(0, 0, 255, 0.4)", Category: "vivid"},
	{ID: "vivid-green", Name: "Vivid Green", HexColor: "#00FF00", RGBA: "rgba(0, 255, 0, 0.4)", Category: "vivid"},
	{ID: "vivid-yellow", Name: "Vivid Yellow", HexColor: "#FFFF00", RGBA: "rgba(255, 255, 0, 0.4)", Category: "vivid"},
	{ID: "vivid-cyan", Name: "Vivid Cyan", HexColor: "#00FFFF", RGBA: "rgba(0, 255, 255, 0.4)", Category: "vivid"},
	{ID: "vivid-magenta", Name: "Vivid Magenta", HexColor: "#FF00FF", RGBA: "rgba(255, 0, 255, 0.4)", Category: "vivid"},
	{ID: "sienna", Name: "Sienna", HexColor: "#A0522D", RGBA: "rgba(160, 82, 45, 0.4)", Category: "earth"},
	{ID: "tan", Name: "Tan", HexColor: "#D2B48C", RGBA: "rgba(210, 180, 140, 0.4)", Category: "earth"},
	{ID: "wheat", Name: "Wheat", HexColor: "#F5DEB3", RGBA: "rgba(245, 222, 179, 0.4)", Category: "earth"},
	{ID: "khaki", Name: "Khaki", HexColor: "#C3B091", RGBA: "rgba(195, 176, 145, 0.4)", Category: "earth"},
	{ID: "sage", Name: "Sage", HexColor: "#9CAF88", RGBA: "rgba(156, 175, 136, 0.4)", Category: "earth"},
}

var artists = []Artist{
	{ID: "victory-worship", Name: "Victory Worship", Country: "Philippines", Genre: []string{"Contemporary", "Worship"}, Description: "Worship ministry from Victory Church Manila"},
	{ID: "planetshakers", Name: "Planetshakers", Country: "Australia", Genre: []string{"Contemporary", "Rock", "Worship"}, Description: "Dynamic worship from Planetshakers Church"},
	{ID: "elevation-worship", Name: "Elevation Worship", Country: "USA", Genre: []string{"Contemporary", "Worship"}, Description: "Elevation Church worship ministry"},
	{ID: "hillsong-worship", Name: "Hillsong Worship", Country: "Australia", Genre: []string{"Contemporary", "Worship"}, Description: "Global worship movement from Hillsong Church"},
	{ID: "hillsong-united", Name: "Hillsong United", Country: "Australia", Genre: []string{"Contemporary", "Alternative"}, Description: "Youth-focused worship from Hillsong"},
	{ID: "bethel-music", Name: "Bethel Music", Country: "USA", Genre: []string{"Contemporary", "Worship", "Prophetic"}, Description: "Bethel Church Redding worship collective"},
	{ID: "jesus-culture", Name: "Jesus Culture", Country: "USA", Genre: []string{"Contemporary", "Worship"}, Description: "Passionate worship from Sacramento"},
	{ID: "passion", Name: "Passion", Country: "USA", Genre: []string{"Contemporary", "Worship"}, Description: "Collegiate worship movement"},
	{ID: "maverick-city", Name: "Maverick City Music", Country: "USA", Genre: []string{"Gospel", "Contemporary", "Worship"}, Description: "Diverse worship collective"},
	{ID: "upper-room", Name: "Upper Room", Country: "USA", Genre: []string{"Spontaneous", "Worship"}, Description: "Spontaneous worship ministry"},
	{ID: "gateway-worship", Name: "Gateway Worship", Country: "USA", Genre: []string{"Contemporary", "Worship"}, Description: "Gateway Church worship"},
	{ID: "chris-tomlin", Name: "Chris Tomlin", Country: "USA", Genre: []string{"Contemporary", "Worship"}, Description: "Most sung worship leader globally"},
	{ID: "matt-redman", Name: "Matt Redman", Country: "UK", Genre: []string{"Contemporary", "Worship"}, Description: "British worship leader and songwriter"},
	{ID: "kari-jobe", Name: "Kari Jobe", Country: "USA", Genre: []string{"Contemporary", "Worship"}, Description: "Gateway Church worship leader"},
	{ID: "jeremy-camp", Name: "Jeremy Camp", Country: "USA", Genre: []string{"Contemporary", "Rock"}, Description: "Contemporary Christian artist"},
	{ID: "casting-crowns", Name: "Casting Crowns", Country: "USA", Genre: []string{"Contemporary", "Rock"}, Description: "Contemporary Christian band"},
	{ID: "for-king-and-country", Name: "for KING & COUNTRY", Country: "Australia/USA", Genre: []string{"Pop", "Rock"}, Description: "Christian pop duo"},
	{ID: "lauren-daigle", Name: "Lauren Daigle", Country: "USA", Genre: []string{"Contemporary", "Pop"}, Description: "Contemporary Christian singer"},
	{ID: "phil-wickham", Name: "Phil Wickham", Country: "USA", Genre: []string{"Contemporary", "Worship"}, Description: "Worship leader and songwriter"},
	{ID: "brandon-lake", Name: "Brandon Lake", Country: "USA", Genre: []string{"Contemporary", "Worship"}, Description: "Maverick City and Bethel worship leader"},
	{ID: "cody-carnes", Name: "Cody Carnes", Country: "USA", Genre: []string{"Contemporary", "Worship"}, Description: "Gateway worship pastor"},
	{ID: "jenn-johnson", Name: "Jenn Johnson", Country: "USA", Genre: []string{"Contemporary", "Worship"}, Description: "Bethel Music worship leader"},
	{ID: "jonathan-mcreynolds", Name: "Jonathan McReynolds", Country: "USA", Genre: []string{"Gospel", "Contemporary"}, Description: "Gospel artist and worship leader"},
	{ID: "tasha-cobbs", Name: "Tasha Cobbs Leonard", Country: "USA", Genre: []string{"Gospel", "Worship"}, Description: "Contemporary gospel artist"},
	{ID: "israel-houghton", Name: "Israel Houghton", Country: "USA", Genre: []string{"Gospel", "Worship", "Contemporary"}, Description: "Multi-award winning worship leader"},
	{ID: "vertical-worship", Name: "Vertical Worship", Country: "USA", Genre: []string{"Contemporary", "Worship"}, Description: "Harvest Bible Chapel worship"},
	{ID: "covenant-worship", Name: "Covenant Worship", Country: "USA", Genre: []string{"Contemporary", "Worship"}, Description: "Covenant Church worship"},
	{ID: "north-point", Name: "North Point Worship", Country: "USA", Genre: []string{"Contemporary", "Worship"}, Description: "North Point Community Church"},
	{ID: "life-worship", Name: "Life.Church Worship", Country: "USA", Genre: []string{"Contemporary", "Worship"}, Description: "Life.Church worship ministry"},
	{ID: "red-rocks", Name: "Red Rocks Worship", Country: "USA", Genre: []string{"Contemporary", "Worship"}, Description: "Red Rocks Church worship"},
	{ID: "awake84", Name: "Awake84", Country: "Philippines", Genre: []string{"Contemporary", "Worship"}, Description: "Filipino worship movement"},
	{ID: "life-worship-ph", Name: "Life Worship Philippines", Country: "Philippines", Genre: []string{"Contemporary", "Worship"}, Description: "Filipino worship collective"},
	{ID: "oc-supertones", Name: "O.C. Supertones", Country: "USA", Genre: []string{"Ska", "Rock"}, Description: "Christian ska band"},
	{ID: "newsboys", Name: "Newsboys", Country: "Australia/USA", Genre: []string{"Pop", "Rock"}, Description: "Contemporary Christian rock"},
	{ID: "tobymac", Name: "TobyMac", Country: "USA", Genre: []string{"Hip Hop", "Pop"}, Description: "Contemporary Christian rapper"},
	{ID: "lecrae", Name: "Lecrae", Country: "USA", Genre: []string{"Hip Hop", "Rap"}, Description: "Christian hip hop artist"},
	{ID: "kb", Name: "KB", Country: "USA", Genre: []string{"Hip Hop", "Rap"}, Description: "Christian rapper"},
	{ID: "andy-mineo", Name: "Andy Mineo", Country: "USA", Genre: []string{"Hip Hop", "Rap"}, Description: "Christian hip hop artist"},
	{ID: "social-club", Name: "Social Club Misfits", Country: "USA", Genre: []string{"Hip Hop", "Rap"}, Description: "Christian rap duo"},
}

var songs = []Song{
	{ID: "wf001", Title: "Way Maker", ArtistID: "victory-worship", ArtistName: "Victory Worship", YouTubeID: "29IYLsRy4yM", Key: "B", Tempo: 68, Tags: []string{"miracle", "promise", "faith"}},
	{ID: "wf002", Title: "Graves Into Gardens", ArtistID: "elevation-worship", ArtistName: "Elevation Worship", YouTubeID: "Ck4xHocysLw", Key: "D", Tempo: 72, Tags: []string{"resurrection", "redemption", "transformation"}},
	{ID: "wf003", Title: "Goodness of God", ArtistID: "bethel-music", ArtistName: "Bethel Music", YouTubeID: "IwWP19xG3pE", Key: "C", Tempo: 128, Tags: []string{"goodness", "faithfulness", "testimony"}},
	{ID: "wf004", Title: "Reckless Love", ArtistID: "cory-asbury", ArtistName: "Cory Asbury", YouTubeID: "Sc6SSHuZvQE", Key: "C", Tempo: 134, Tags: []string{"love", "grace", "pursuit"}},
	{ID: "wf005", Title: "What a Beautiful Name", ArtistID: "hillsong-worship", ArtistName: "Hillsong Worship", YouTubeID: "r5L6QlAH3L4", Key: "D", Tempo: 68, Tags: []string{"name", "jesus", "glory"}},
	{ID: "wf006", Title: "Oceans", ArtistID: "hillsong-united", ArtistName: "Hillsong United", YouTubeID: "dy9nwe9_xzw", Key: "D", Tempo: 72, Tags: []string{"faith", "trust", "deeper"}},
	{ID: "wf007", Title: "Build My Life", ArtistID: "passion", ArtistName: "Passion", YouTubeID: "2v73GKSFwkw", Key: "C", Tempo: 70, Tags: []string{"foundation", "worthy", "surrender"}},
	{ID: "wf008", Title: "Jireh", ArtistID: "elevation-worship", ArtistName: "Elevation Worship", YouTubeID: "l3rLQVH49Qs", Key: "G", Tempo: 145, Tags: []string{"provider", "enough", "provision"}},
	{ID: "wf009", Title: "The Blessing", ArtistID: "elevation-worship", ArtistName: "Elevation Worship", YouTubeID: "QhUddHfuv5U", Key: "D", Tempo: 60, Tags: []string{"blessing", "peace", "presence"}},
	{ID: "wf010", Title: "Yes I Will", ArtistID: "vertical-worship", ArtistName: "Vertical Worship", YouTubeID: "TJ2ifmssR5A", Key: "A", Tempo: 72, Tags: []string{"commitment", "covenant", "faithful"}},
	{ID: "wf011", Title: "Lion and the Lamb", ArtistID: "bethel-music", ArtistName: "Bethel Music", YouTubeID: "54tOXzFKjeA", Key: "E", Tempo: 138, Tags: []string{"worthy", "lamb", "lion"}},
	{ID: "wf012", Title: "Holy Forever", ArtistID: "chris-tomlin", ArtistName: "Chris Tomlin", YouTubeID: "bZh71xfp_wU", Key: "D", Tempo: 136, Tags: []string{"holy", "forever", "worthy"}},
	{ID: "wf013", Title: "How Great Is Our God", ArtistID: "chris-tomlin", ArtistName: "Chris Tomlin", YouTubeID: "KBD18rsVJHk", Key: "C", Tempo: 76, Tags: []string{"greatness", "majesty", "glory"}},
	{ID: "wf014", Title: "10000 Reasons", ArtistID: "matt-redman", ArtistName: "Matt Redman", YouTubeID: "DXDGE_lRI0E", Key: "G", Tempo: 73, Tags: []string{"praise", "worship", "bless"}},
	{ID: "wf015", Title: "Revelation Song", ArtistID: "kari-jobe", ArtistName: "Kari Jobe", YouTubeID: "pJamdvg1m6Y", Key: "D", Tempo: 72, Tags: []string{"holy", "worthy", "lamb"}},
	{ID: "wf016", Title: "Tremble", ArtistID: "mosaic-msc", ArtistName: "Mosaic MSC", YouTubeID: "VNmzPd5VxYw", Key: "Bb", Tempo: 72, Tags: []string{"power", "name", "authority"}},
	{ID: "wf017", Title: "Living Hope", ArtistID: "phil-wickham", ArtistName: "Phil Wickham", YouTubeID: "DmeGFixWY2c", Key: "C", Tempo: 74, Tags: []string{"hope", "resurrection", "alive"}},
	{ID: "wf018", Title: "This Is Amazing Grace", ArtistID: "phil-wickham", ArtistName: "Phil Wickham", YouTubeID: "XFRjr_x-yxU", Key: "A", Tempo: 128, Tags: []string{"grace", "sacrifice", "love"}},
	{ID: "wf019", Title: "King of Kings", ArtistID: "hillsong-worship", ArtistName: "Hillsong Worship", YouTubeID: "pL1n7TTmPTQ", Key: "B", Tempo: 72, Tags: []string{"king", "victory", "risen"}},
	{ID: "wf020", Title: "So Will I", ArtistID: "hillsong-united", ArtistName: "Hillsong United", YouTubeID: "Qp4M7-X6d0g", Key: "C", Tempo: 68, Tags: []string{"creation", "worship", "response"}},
}
