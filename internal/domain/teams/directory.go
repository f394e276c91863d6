package teams

import "strings"

// all lists the 30 franchises with their stats.nba.com team ids.
var all = []Team{
	{ID: 1610612737, Name: "Hawks", FullName: "Atlanta Hawks", Abbreviation: "ATL", City: "Atlanta", Conference: ConferenceEast},
	{ID: 1610612738, Name: "Celtics", FullName: "Boston Celtics", Abbreviation: "BOS", City: "Boston", Conference: ConferenceEast},
	{ID: 1610612739, Name: "Cavaliers", FullName: "Cleveland Cavaliers", Abbreviation: "CLE", City: "Cleveland", Conference: ConferenceEast},
	{ID: 1610612740, Name: "Pelicans", FullName: "New Orleans Pelicans", Abbreviation: "NOP", City: "New Orleans", Conference: ConferenceWest},
	{ID: 1610612741, Name: "Bulls", FullName: "Chicago Bulls", Abbreviation: "CHI", City: "Chicago", Conference: ConferenceEast},
	{ID: 1610612742, Name: "Mavericks", FullName: "Dallas Mavericks", Abbreviation: "DAL", City: "Dallas", Conference: ConferenceWest},
	{ID: 1610612743, Name: "Nuggets", FullName: "Denver Nuggets", Abbreviation: "DEN", City: "Denver", Conference: ConferenceWest},
	{ID: 1610612744, Name: "Warriors", FullName: "Golden State Warriors", Abbreviation: "GSW", City: "Golden State", Conference: ConferenceWest},
	{ID: 1610612745, Name: "Rockets", FullName: "Houston Rockets", Abbreviation: "HOU", City: "Houston", Conference: ConferenceWest},
	{ID: 1610612746, Name: "Clippers", FullName: "Los Angeles Clippers", Abbreviation: "LAC", City: "Los Angeles", Conference: ConferenceWest},
	{ID: 1610612747, Name: "Lakers", FullName: "Los Angeles Lakers", Abbreviation: "LAL", City: "Los Angeles", Conference: ConferenceWest},
	{ID: 1610612748, Name: "Heat", FullName: "Miami Heat", Abbreviation: "MIA", City: "Miami", Conference: ConferenceEast},
	{ID: 1610612749, Name: "Bucks", FullName: "Milwaukee Bucks", Abbreviation: "MIL", City: "Milwaukee", Conference: ConferenceEast},
	{ID: 1610612750, Name: "Timberwolves", FullName: "Minnesota Timberwolves", Abbreviation: "MIN", City: "Minnesota", Conference: ConferenceWest},
	{ID: 1610612751, Name: "Nets", FullName: "Brooklyn Nets", Abbreviation: "BKN", City: "Brooklyn", Conference: ConferenceEast},
	{ID: 1610612752, Name: "Knicks", FullName: "New York Knicks", Abbreviation: "NYK", City: "New York", Conference: ConferenceEast},
	{ID: 1610612753, Name: "Magic", FullName: "Orlando Magic", Abbreviation: "ORL", City: "Orlando", Conference: ConferenceEast},
	{ID: 1610612754, Name: "Pacers", FullName: "Indiana Pacers", Abbreviation: "IND", City: "Indiana", Conference: ConferenceEast},
	{ID: 1610612755, Name: "76ers", FullName: "Philadelphia 76ers", Abbreviation: "PHI", City: "Philadelphia", Conference: ConferenceEast},
	{ID: 1610612756, Name: "Suns", FullName: "Phoenix Suns", Abbreviation: "PHX", City: "Phoenix", Conference: ConferenceWest},
	{ID: 1610612757, Name: "Trail Blazers", FullName: "Portland Trail Blazers", Abbreviation: "POR", City: "Portland", Conference: ConferenceWest},
	{ID: 1610612758, Name: "Kings", FullName: "Sacramento Kings", Abbreviation: "SAC", City: "Sacramento", Conference: ConferenceWest},
	{ID: 1610612759, Name: "Spurs", FullName: "San Antonio Spurs", Abbreviation: "SAS", City: "San Antonio", Conference: ConferenceWest},
	{ID: 1610612760, Name: "Thunder", FullName: "Oklahoma City Thunder", Abbreviation: "OKC", City: "Oklahoma City", Conference: ConferenceWest},
	{ID: 1610612761, Name: "Raptors", FullName: "Toronto Raptors", Abbreviation: "TOR", City: "Toronto", Conference: ConferenceEast},
	{ID: 1610612762, Name: "Jazz", FullName: "Utah Jazz", Abbreviation: "UTA", City: "Utah", Conference: ConferenceWest},
	{ID: 1610612763, Name: "Grizzlies", FullName: "Memphis Grizzlies", Abbreviation: "MEM", City: "Memphis", Conference: ConferenceWest},
	{ID: 1610612764, Name: "Wizards", FullName: "Washington Wizards", Abbreviation: "WAS", City: "Washington", Conference: ConferenceEast},
	{ID: 1610612765, Name: "Pistons", FullName: "Detroit Pistons", Abbreviation: "DET", City: "Detroit", Conference: ConferenceEast},
	{ID: 1610612766, Name: "Hornets", FullName: "Charlotte Hornets", Abbreviation: "CHA", City: "Charlotte", Conference: ConferenceEast},
}

var byAbbreviation = func() map[string]Team {
	m := make(map[string]Team, len(all))
	for _, t := range all {
		m[t.Abbreviation] = t
	}
	return m
}()

// All returns a copy of the static team directory.
func All() []Team {
	return append([]Team(nil), all...)
}

// ByAbbreviation resolves an exact (case-sensitive) abbreviation such as "LAL".
func ByAbbreviation(abbr string) (Team, bool) {
	t, ok := byAbbreviation[strings.TrimSpace(abbr)]
	return t, ok
}
