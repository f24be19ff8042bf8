package activity

// Bucket is a time-of-day category. The four buckets partition [0,24).
type Bucket int

const (
	Morning Bucket = iota // 06:00-11:00
	Daytime               // 11:00-18:00
	Evening               // 18:00-23:00
	Night                 // 23:00-06:00
)

var Buckets = []Bucket{Morning, Daytime, Evening, Night}

func (b Bucket) String() string {
	switch b {
	case Morning:
		return "Morning"
	case Daytime:
		return "Daytime"
	case Evening:
		return "Evening"
	case Night:
		return "Night"
	}
	return "Unknown"
}

// Classify maps an hour of day to its bucket using half-open ranges.
func Classify(hour int) Bucket {
	switch {
	case hour >= 6 && hour < 11:
		return Morning
	case hour >= 11 && hour < 18:
		return Daytime
	case hour >= 18 && hour < 23:
		return Evening
	default:
		return Night
	}
}

type Counts struct {
	Morning int
	Daytime int
	Evening int
	Night   int
}

func (c *Counts) Add(b Bucket) {
	switch b {
	case Morning:
		c.Morning++
	case Daytime:
		c.Daytime++
	case Evening:
		c.Evening++
	case Night:
		c.Night++
	}
}

func (c Counts) Get(b Bucket) int {
	switch b {
	case Morning:
		return c.Morning
	case Daytime:
		return c.Daytime
	case Evening:
		return c.Evening
	case Night:
		return c.Night
	}
	return 0
}

func (c Counts) Total() int {
	return c.Morning + c.Daytime + c.Evening + c.Night
}

func (c Counts) DaySum() int {
	return c.Morning + c.Daytime
}

func (c Counts) NightSum() int {
	return c.Evening + c.Night
}

func (c Counts) IsZero() bool {
	return c.Total() == 0
}
