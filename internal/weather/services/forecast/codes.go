package forecast

// Category is the stable display category a provider condition code
// maps to.
type Category string

const (
	CategoryClear        Category = "clear"
	CategoryClouds       Category = "clouds"
	CategoryMist         Category = "mist"
	CategoryRain         Category = "rain"
	CategorySnow         Category = "snow"
	CategoryThunderstorm Category = "thunderstorm"
)

// CodeEntry describes how a WMO condition code is presented.
type CodeEntry struct {
	Name     string
	Icon     string
	Category Category
}

// defaultCode is used for any code absent from the table, making the
// lookup total over all integers.
const defaultCode = 0

var weatherCodes = map[int]CodeEntry{
	0:  {Name: "Clear", Icon: "01d", Category: CategoryClear},
	1:  {Name: "Clear", Icon: "02d", Category: CategoryClear},
	2:  {Name: "Clouds", Icon: "03d", Category: CategoryClouds},
	3:  {Name: "Clouds", Icon: "04d", Category: CategoryClouds},
	45: {Name: "Mist", Icon: "50d", Category: CategoryMist},
	48: {Name: "Mist", Icon: "50d", Category: CategoryMist},
	51: {Name: "Drizzle", Icon: "09d", Category: CategoryRain},
	53: {Name: "Drizzle", Icon: "09d", Category: CategoryRain},
	55: {Name: "Drizzle", Icon: "09d", Category: CategoryRain},
	61: {Name: "Rain", Icon: "10d", Category: CategoryRain},
	63: {Name: "Rain", Icon: "10d", Category: CategoryRain},
	65: {Name: "Rain", Icon: "10d", Category: CategoryRain},
	71: {Name: "Snow", Icon: "13d", Category: CategorySnow},
	73: {Name: "Snow", Icon: "13d", Category: CategorySnow},
	75: {Name: "Snow", Icon: "13d", Category: CategorySnow},
	80: {Name: "Rain", Icon: "09d", Category: CategoryRain},
	81: {Name: "Rain", Icon: "09d", Category: CategoryRain},
	82: {Name: "Rain", Icon: "09d", Category: CategoryRain},
	95: {Name: "Thunderstorm", Icon: "11d", Category: CategoryThunderstorm},
	96: {Name: "Thunderstorm", Icon: "11d", Category: CategoryThunderstorm},
}

// LookupCode resolves a provider condition code against the table.
// Unknown codes fall back to the clear-sky entry rather than failing.
func LookupCode(code int) CodeEntry {
	if entry, ok := weatherCodes[code]; ok {
		return entry
	}
	return weatherCodes[defaultCode]
}
