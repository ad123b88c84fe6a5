package validator

// Static gazetteers. Loaded once into the matcher at construction and
// never mutated afterwards; safe for concurrent readers.

// Category labels returned by Categorize, in evaluation order.
const (
	CategoryCountry    = "country"
	CategoryMusic      = "music"
	CategoryFood       = "food"
	CategoryClothing   = "clothing"
	CategoryInstrument = "instrument"
	CategoryPeople     = "people"
	CategoryCulture    = "culture"
	CategoryHistory    = "history"
	CategoryGeneral    = "general"
)

// 54 African countries: official names plus common demonyms.
var countries = []string{
	// North Africa
	"algeria", "egypt", "libya", "morocco", "sudan", "tunisia", "western sahara",
	"algerian", "egyptian", "libyan", "moroccan", "sudanese", "tunisian",

	// West Africa
	"benin", "burkina faso", "cape verde", "ivory coast", "côte d'ivoire", "gambia", "ghana", "guinea",
	"guinea-bissau", "liberia", "mali", "mauritania", "niger", "nigeria", "senegal", "sierra leone",
	"togo", "beninese", "burkinabe", "gambian", "ghanaian", "guinean", "ivorian", "liberian",
	"malian", "mauritanian", "nigerien", "nigerian", "senegalese", "sierra leonean", "togolese",

	// Central Africa
	"cameroon", "central african republic", "chad", "congo", "democratic republic of congo",
	"equatorial guinea", "gabon", "sao tome and principe", "cameroonian", "chadian", "congolese",
	"equatoguinean", "gabonese",

	// East Africa
	"burundi", "djibouti", "eritrea", "ethiopia", "kenya", "rwanda", "somalia", "south sudan",
	"tanzania", "uganda", "burundian", "djiboutian", "eritrean", "ethiopian", "kenyan", "rwandan",
	"somali", "somalian", "tanzanian", "ugandan",

	// Southern Africa
	"angola", "botswana", "eswatini", "lesotho", "madagascar", "malawi", "mauritius", "mozambique",
	"namibia", "south africa", "zambia", "zimbabwe", "angolan", "botswanan", "swazi", "basotho",
	"malagasy", "malawian", "mauritian", "mozambican", "namibian", "south african", "zambian", "zimbabwean",

	"africa", "african", "pan-african", "pan african",
}

// Major cities and towns. Count toward domain membership only, not
// categorization.
var cities = []string{
	"abidjan", "accra", "addis ababa", "algiers", "bamako", "cape town", "cairo", "casablanca",
	"dakar", "dar es salaam", "douala", "harare", "ibadan", "johannesburg", "kampala", "kano",
	"khartoum", "kinshasa", "lagos", "luanda", "lusaka", "maputo", "marrakech", "mogadishu",
	"nairobi", "ouagadougou", "pretoria", "rabat", "tunis", "windhoek", "yaounde",
	"abuja", "alexandria", "antananarivo", "asmara", "blantyre", "bujumbura", "conakry",
	"gaborone", "kigali", "libreville", "lilongwe", "lomé", "mbabane", "niamey", "nouakchott",
	"port louis", "tripoli", "victoria", "gitega", "moroni", "djibouti city", "freetown",
	"maseru", "mbuji-mayi", "ndjamena", "port elizabeth", "port harcourt", "port-gentil",
}

var musicGenres = []string{
	"afrobeats", "afrobeat", "amapiano", "highlife", "juju", "fuji", "makossa", "soukous", "rumba",
	"bongo flava", "taarab", "ndombolo", "coupé-décalé", "kizomba", "kuduro", "gqom", "kwaito",
	"mbube", "mbalax", "marabi", "mbaqanga", "genge", "kapuka", "azonto", "alkayida", "sungura",
	"chimurenga", "zouglou", "bikutsi", "zouk", "funana", "marrabenta", "palm wine", "palm-wine",
}

var foods = []string{
	// West Africa
	"jollof", "jollof rice", "waakye", "fufu", "banku", "kenkey", "garri", "eba", "pounded yam", "amala",
	"egusi", "egusi soup", "ogbono soup", "okro soup", "okro", "okrah", "bitterleaf soup", "edikaikong",
	"afang soup", "peanut stew", "groundnut stew", "groundnut soup", "mafe", "domoda", "suya", "kilishi",
	"akara", "moin moin", "moyin moyin", "koose", "puff puff", "chin chin", "plantain", "kelewele",
	"thieboudienne", "thiéboudienne", "ceebu jen", "yassa", "yassa chicken", "maafe", "bissap", "sobolo",
	"dibi", "attiéké", "alloco", "kédjenou", "placali", "gbegiri", "ewedu", "miyan kuka", "tuwo shinkafa",
	"kuli kuli", "fanke", "draw soup", "banga soup", "pepper soup", "nsala soup", "ofe akwu", "abacha",

	// East Africa
	"ugali", "posho", "nsima", "sadza", "pap", "nshima", "injera", "teff", "doro wat", "tibs", "shiro",
	"kitfo", "ayib", "berbere", "mitin shiro", "ful medames", "kik wat", "asa tibs", "nyama choma",
	"pilau", "biriani", "kachumbari", "sukuma wiki", "chapati", "mandazi", "mahindi choma", "mishkaki",
	"samaki wa kupaka", "mtori", "supu ya ndizi", "mchemsho", "zanzibar pizza", "urojo", "vitumbua",

	// Central Africa
	"chikwangue", "kwanga", "saka saka", "saka madesu", "moambe", "poulet moambe", "liboké",
	"ndolé", "ndole", "koki", "eru", "water fufu", "mbanga soup", "soso", "pondu", "fumbwa", "ngolo",
	"makayabu", "nganda", "madesu", "loso", "mwamba", "ntoba", "mbika", "sakay", "soso na loso",

	// Southern Africa
	"mielie pap", "phutu", "stywe pap", "krummel pap", "boerewors", "braai", "biltong",
	"bunny chow", "boboti", "bobotie", "malva pudding", "koeksister", "vetkoek", "chakalaka", "morogo",
	"mashonzha", "mopane worms", "kapenta", "umngqusho", "samp and beans", "potjiekos", "rusk", "melktert",
	"isiwisa", "mielie meal", "dombolo", "steam bread", "mogodu", "tripe", "shisanyama", "walkie talkies",

	// North Africa
	"tagine", "tajine", "couscous", "harissa", "pastilla", "brik", "lablabi", "shakshuka", "shakshouka",
	"koshari", "koshary", "molokhia", "mulukhiyah", "bessara", "rfissa", "chebakia",
	"makroud", "zlabia", "msemen", "baghrir", "harcha", "mechoui", "bastilla", "loubia", "merguez",
	"kamounia", "ojja", "chorba", "tcharek", "makroudh", "briouat", "sellou", "djej mhamer",

	// Horn of Africa
	"canjeero", "laxoox", "sabaayad", "mufo", "bariis iskukaris", "soor", "malawax", "sambusa",
	"bariis", "hilib", "suqaar", "bariis iyo hilib", "federico", "halwa", "xalwo", "gashaato",

	// Diaspora classics
	"jerk chicken", "ackee and saltfish", "rice and peas", "callaloo", "cou cou", "pepperpot", "roti",
	"doubles", "griot", "tassot", "diri ak djon djon", "pikliz", "banane pesée", "sancocho",
	"feijoada", "moqueca", "acarajé", "vatapá", "okra", "gumbo", "jambalaya", "red red", "ampesi",
}

var clothing = []string{
	"kente", "ankara", "dashiki", "agbada", "boubou", "gele", "aso oke", "adire", "kitenge",
	"bogolan", "mudcloth", "shweshwe", "isiagu", "kaftan", "djellaba", "gandoura", "isi agu",
	"toghu", "ndop", "lappa", "wrapper", "headwrap", "turbo", "turban", "senegalese boubou",
}

var instruments = []string{
	"djembe", "kora", "balafon", "talking drum", "mbira", "kalimba", "ngoni", "kpanlogo",
	"udu", "shekere", "gong", "xylophone", "thumb piano", "seprewa", "gyil", "akoting",
	"valimba", "marimba", "sansa", "likembe", "bata", "sabar", "tama", "fontomfrom", "atumpan",
}

// Ethnic groups and languages. Domain membership only.
var ethnicGroups = []string{
	"yoruba", "igbo", "hausa", "fulani", "akan", "ashanti", "zulu", "xhosa", "shona", "amhara",
	"oromo", "berber", "tuareg", "swahili", "wolof", "mandinka", "bamileke", "bantu", "kikuyu",
	"luo", "maasai", "san", "bushmen", "khoisan", "twi", "fon", "ewe", "ga", "dagomba", "tigrinya",
	"somali", "afrikaans", "arabic", "french", "portuguese", "amharic",
	"tamasheq", "hassaniya", "lingala", "kikongo", "tshiluba",
}

var figures = []string{
	// Civil rights and liberation
	"malcolm x", "martin luther king", "mlk", "rosa parks", "frederick douglass", "harriet tubman",
	"marcus garvey", "w.e.b. du bois", "web du bois", "booker t washington", "huey newton",
	"bobby seale", "angela davis", "stokely carmichael", "kwame ture", "assata shakur",
	"george jackson", "frantz fanon", "patrice lumumba", "steve biko", "thomas sankara",

	// Artists and musicians
	"bob marley", "peter tosh", "burning spear", "fela kuti", "miriam makeba", "hugh masekela",
	"manu dibango", "salif keita", "youssou ndour", "angelique kidjo", "burna boy", "wizkid",
	"davido", "tiwa savage", "sarkodie", "shatta wale", "stonebwoy", "diamond platnumz",

	// Writers and thinkers
	"chinua achebe", "wole soyinka", "ngugi wa thiong'o", "chimamanda ngozi adichie",
	"ama ata aidoo", "bessie head", "zadie smith", "tezcuco", "ta-nehisi coates",

	// Scientists, inventors, leaders
	"philip emeagwali", "wangari maathai", "cheikh anta diop", "ellen johnson sirleaf",
	"haile selassie", "kwame nkrumah", "jomo kenyatta", "julius nyerere", "nelson mandela",
	"desmond tutu", "muhammad ali", "serena williams", "usain bolt", "didier drogba",
}

var concepts = []string{
	"ubuntu", "sankofa", "adinkra", "griot", "griotte", "kwanzaa", "harambee", "ujamaa",
	"afrocentrism", "pan-africanism", "negritude", "black consciousness", "orisha", "vodun",
	"hoodoo", "rastafari", "rastafarian", "nyabinghi", "garveyism", "african renaissance",
	"nguzo saba", "maafa", "ase", "ashe", "orishas", "ifa", "candomble", "santeria",
}

var historicalTerms = []string{
	"transatlantic slave trade", "middle passage", "abolition", "emancipation", "jim crow",
	"apartheid", "civil rights movement", "black power", "black panther party", "cooperatives",
	"oja", "market women", "anc", "swapo", "zanu", "mpls", "frelimo", "oa u", "african union",
}

// General heritage terms. Domain membership only.
var generalTerms = []string{
	"africa", "african", "afrika", "black", "afro", "diaspora", "heritage", "culture",
	"tradition", "traditional", "ancestral", "continental", "pan-african", "panafrican",
	"afropolitan", "afrofuturism", "afrobeats", "black excellence",
	"melanin", "woke", "decolonize", "reparations",
}
