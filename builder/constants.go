package builder

// Method names prefix errors with the source that produced them.
const (
	MethodRandom      = "RandomSource"
	MethodSeed        = "SeedSource"
	MethodCSV         = "CSVSource"
	MethodList        = "ListSource"
	MethodNewInstance = "NewInstance"
)

// MinNodes is the smallest node count a generated instance may have.
const MinNodes = 3

// Default coordinate bounds for random draws: integers in [0, 100).
const (
	DefaultLower = 0
	DefaultUpper = 100
)

// Random seeds are eight digits long.
const (
	SeedMin int64 = 10_000_000
	SeedMax int64 = 99_999_999
)

// CSV column names holding the coordinates.
const (
	ColumnX = "x"
	ColumnY = "y"
)
