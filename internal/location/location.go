package location

import (
	"regexp"
	"strings"
)

// Unknown and Virtual are the sentinel countries for unresolvable and
// online-only locations.
const (
	Unknown = "Unknown"
	Virtual = "Virtual"
)

type lookup struct {
	keyword string
	country string
}

// countryKeywords resolves explicit country mentions. Order matters: entries
// are checked first to last and the first hit wins ("South Korea" before the
// bare "Korea" catch-all).
var countryKeywords = []lookup{
	{"United Kingdom", "UK"}, {"United States", "USA"}, {"Australia", "Australia"},
	{"Canada", "Canada"}, {"China", "China"}, {"Japan", "Japan"}, {"Germany", "Germany"},
	{"France", "France"}, {"Italy", "Italy"}, {"Spain", "Spain"}, {"India", "India"},
	{"Singapore", "Singapore"}, {"South Korea", "South Korea"}, {"Brazil", "Brazil"},
	{"Switzerland", "Switzerland"}, {"Netherlands", "Netherlands"},
	{"Sweden", "Sweden"}, {"Denmark", "Denmark"}, {"Finland", "Finland"}, {"Norway", "Norway"},
	{"Ireland", "Ireland"}, {"Portugal", "Portugal"}, {"Greece", "Greece"},
	{"Israel", "Israel"}, {"UAE", "UAE"}, {"Saudi Arabia", "Saudi Arabia"},
	{"Turkey", "Turkey"}, {"Indonesia", "Indonesia"}, {"Thailand", "Thailand"},
	{"Taiwan", "Taiwan"}, {"Vietnam", "Vietnam"}, {"New Zealand", "New Zealand"},
	{"Czech Republic", "Czech Republic"}, {"Poland", "Poland"}, {"Hungary", "Hungary"},
	{"Austria", "Austria"}, {"Belgium", "Belgium"}, {"Korea", "South Korea"},
	{"Mexico", "Mexico"}, {"Chile", "Chile"}, {"Iceland", "Iceland"},
}

// cities resolves well-known conference cities that appear without their
// country.
var cities = []lookup{
	{"London", "UK"}, {"Oxford", "UK"}, {"Cambridge", "UK"}, {"Edinburgh", "UK"},
	{"Manchester", "UK"}, {"Durham", "UK"}, {"Warwick", "UK"}, {"Bristol", "UK"},
	{"Leeds", "UK"}, {"Exeter", "UK"}, {"Bath", "UK"}, {"Lancaster", "UK"},
	{"Paris", "France"}, {"Lyon", "France"}, {"Toulouse", "France"}, {"Megeve", "France"},
	{"Corsica", "France"}, {"Nice", "France"},
	{"Berlin", "Germany"}, {"Frankfurt", "Germany"}, {"Munich", "Germany"}, {"Mannheim", "Germany"},
	{"Bonn", "Germany"}, {"Halle", "Germany"},
	{"Rome", "Italy"}, {"Milan", "Italy"}, {"Venice", "Italy"}, {"Florence", "Italy"},
	{"Bologna", "Italy"}, {"Capri", "Italy"}, {"Naples", "Italy"}, {"Rimini", "Italy"},
	{"Madrid", "Spain"}, {"Barcelona", "Spain"}, {"Bilbao", "Spain"},
	{"Amsterdam", "Netherlands"}, {"Rotterdam", "Netherlands"}, {"Tilburg", "Netherlands"},
	{"Maastricht", "Netherlands"},
	{"Zurich", "Switzerland"}, {"Geneva", "Switzerland"}, {"Lausanne", "Switzerland"},
	{"St. Gallen", "Switzerland"}, {"Lugano", "Switzerland"},
	{"Brussels", "Belgium"}, {"Leuven", "Belgium"},
	{"Copenhagen", "Denmark"}, {"Lisbon", "Portugal"},
	{"Athens", "Greece"}, {"Stockholm", "Sweden"}, {"Helsinki", "Finland"},
	{"Dublin", "Ireland"}, {"Oslo", "Norway"}, {"Vienna", "Austria"},
	{"Prague", "Czech Republic"}, {"Warsaw", "Poland"}, {"Budapest", "Hungary"},
	{"Beijing", "China"}, {"Shanghai", "China"}, {"Hong Kong", "Hong Kong"},
	{"Shenzhen", "China"}, {"Xiamen", "China"},
	{"Tokyo", "Japan"}, {"Seoul", "South Korea"}, {"Busan", "South Korea"},
	{"Singapore", "Singapore"}, {"Sydney", "Australia"}, {"Melbourne", "Australia"},
	{"Brisbane", "Australia"}, {"Perth", "Australia"},
	{"Mumbai", "India"}, {"Bangalore", "India"},
	{"Taipei", "Taiwan"}, {"Bangkok", "Thailand"}, {"Jakarta", "Indonesia"},
	{"Toronto", "Canada"}, {"Vancouver", "Canada"}, {"Montreal", "Canada"},
	{"Whistler", "Canada"}, {"Calgary", "Canada"}, {"Banff", "Canada"},
	{"Bali", "Indonesia"}, {"Dubai", "UAE"}, {"Sharjah", "UAE"},
	{"Reykjavik", "Iceland"}, {"Vilnius", "Lithuania"}, {"Tallinn", "Estonia"},
	{"Tel Aviv", "Israel"}, {"Haifa", "Israel"},
	{"Hanoi", "Vietnam"}, {"Ho Chi Minh", "Vietnam"},
}

// usStates are the two-letter postal abbreviations, matched as whole words.
var usStates = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA", "HI", "ID", "IL", "IN", "IA",
	"KS", "KY", "LA", "ME", "MD", "MA", "MI", "MN", "MS", "MO", "MT", "NE", "NV", "NH", "NJ",
	"NM", "NY", "NC", "ND", "OH", "OK", "OR", "PA", "RI", "SC", "SD", "TN", "TX", "UT", "VT",
	"VA", "WA", "WV", "WI", "WY", "DC",
}

var stateWord = func() map[string]*regexp.Regexp {
	m := make(map[string]*regexp.Regexp, len(usStates))
	for _, s := range usStates {
		m[s] = regexp.MustCompile(`\b` + s + `\b`)
	}
	return m
}()

var virtualWord = regexp.MustCompile(`(?i)\b(virtual|online|zoom|remote)\b`)

// Country maps free-form location text to a normalized country name, or the
// Virtual/Unknown sentinels.
func Country(loc string) string {
	loc = strings.TrimSpace(loc)
	if loc == "" {
		return Unknown
	}
	lower := strings.ToLower(loc)

	for _, kw := range countryKeywords {
		if strings.Contains(lower, strings.ToLower(kw.keyword)) {
			return kw.country
		}
	}
	for _, city := range cities {
		if strings.Contains(lower, strings.ToLower(city.keyword)) {
			return city.country
		}
	}
	// State abbreviations are case-sensitive on purpose: "in Galway" must not
	// match IN.
	for _, s := range usStates {
		if stateWord[s].MatchString(loc) {
			return "USA"
		}
	}
	if virtualWord.MatchString(loc) {
		return Virtual
	}
	return Unknown
}
