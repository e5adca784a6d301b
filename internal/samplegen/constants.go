package samplegen

// Worker configuration constants.
const (
	defaultWorkers = 4
)

// Runner attribute ranges.
const (
	minBirthYear     = 1955
	birthYearSpan    = 55
	clubChangeRate   = 0.15
	noClubRate       = 0.2
	shoutedNameRate  = 0.05
	paddedNameRate   = 0.05
	legacyLabelRate  = 0.3
	foreignRate      = 0.3
	missingBirthRate = 0.04
	unknownGender    = 0.02
	timeJitter       = 0.08
	yearlyImprove    = 0.01
)

var firstNamesM = []string{ //nolint:gochecknoglobals // fixed name pool
	"Ivan", "Aidar", "Nurlan", "Dmitry", "Arman", "Timur", "Sergey", "Alexey", "Daniyar", "Yerlan",
	"Иван", "Руслан", "Павел", "Артём",
}

var firstNamesF = []string{ //nolint:gochecknoglobals // fixed name pool
	"Anna", "Aigerim", "Dana", "Elena", "Madina", "Olga", "Saule", "Maria", "Asel", "Kamila",
	"Анна", "Дарья", "Алия",
}

var lastNames = []string{ //nolint:gochecknoglobals // fixed name pool
	"Petrov", "Ivanov", "Akhmetov", "Smagulov", "Kim", "Li", "Sidorov", "Omarov", "Tsoi", "Bekov",
	"Петров", "Сейткали", "Жумабаев", "Ким", "Орлов", "Нуртаев",
}

var clubs = []string{ //nolint:gochecknoglobals // fixed club pool
	"Alpha", "Beta Trail", "Almaty Runners", "Tau Sport", "Medeu Club",
	`Клуб &quot;Вершина&quot;`, "Shymbulak  Team", "Kazakh Sky",
}

// distances pairs a canonical code with its legacy label and base time.
var distances = []struct { //nolint:gochecknoglobals // fixed course list
	code, legacy string
	baseSeconds  int
	weight       int
}{
	{"VK1000", "Vertical Kilometer", 3000, 4},
	{"SKY21", "Sky Race 21", 12000, 3},
	{"TRAIL12", "Trail 12", 6000, 3},
	{"KIDS3", "Kids", 1500, 1},
}

var nationalities = []string{"RUS", "KGZ", "UZB", "kaz", "GER", "CHN"} //nolint:gochecknoglobals // foreign pool

var cities = []string{"Almaty", "Astana", "Bishkek", "Tashkent", "Moscow", "Shymkent"} //nolint:gochecknoglobals // city pool
