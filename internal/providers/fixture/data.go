package fixture

import "github.com/preston-bernstein/nba-linebot/internal/domain/players"

// roster is the player directory served by the fixture provider.
var roster = []players.Player{
	{ID: 2544, FullName: "LeBron James", IsActive: true},
	{ID: 201939, FullName: "Stephen Curry", IsActive: true},
	{ID: 1629029, FullName: "Luka Dončić", IsActive: true},
	{ID: 203999, FullName: "Nikola Jokić", IsActive: true},
	{ID: 1628369, FullName: "Jayson Tatum", IsActive: true},
	{ID: 977, FullName: "Kobe Bryant", IsActive: false},
}

// playerLine is one box-score line used for both game logs and season totals.
type playerLine struct {
	team                              string
	min, pts, ast, reb, stl, blk, tov  int
	fgm, fga, fg3m, fg3a, ftm, fta, pf int
	plusMinus                         int
}

var lines = map[int]playerLine{
	2544:    {team: "LAL", min: 35, pts: 27, ast: 8, reb: 7, stl: 1, blk: 1, tov: 3, fgm: 10, fga: 19, fg3m: 2, fg3a: 6, ftm: 5, fta: 7, pf: 2, plusMinus: 6},
	201939:  {team: "GSW", min: 33, pts: 29, ast: 6, reb: 5, stl: 1, blk: 0, tov: 3, fgm: 10, fga: 21, fg3m: 5, fg3a: 12, ftm: 4, fta: 4, pf: 2, plusMinus: -3},
	1629029: {team: "DAL", min: 37, pts: 33, ast: 9, reb: 9, stl: 2, blk: 1, tov: 4, fgm: 12, fga: 25, fg3m: 4, fg3a: 11, ftm: 5, fta: 7, pf: 3, plusMinus: 8},
	203999:  {team: "DEN", min: 36, pts: 26, ast: 10, reb: 12, stl: 1, blk: 1, tov: 3, fgm: 11, fga: 19, fg3m: 1, fg3a: 3, ftm: 3, fta: 4, pf: 3, plusMinus: 11},
	1628369: {team: "BOS", min: 36, pts: 27, ast: 5, reb: 8, stl: 1, blk: 1, tov: 3, fgm: 9, fga: 20, fg3m: 3, fg3a: 9, ftm: 6, fta: 7, pf: 2, plusMinus: 5},
}

// matchup is a completed game between two teams, home side first.
type matchup struct {
	id      string
	date    string
	home    string
	away    string
	homePts int
	awayPts int
}

var schedule = []matchup{
	{id: "0022400061", date: "2024-10-22", home: "LAL", away: "MIN", homePts: 110, awayPts: 103},
	{id: "0022400093", date: "2024-10-27", home: "BOS", away: "LAL", homePts: 112, awayPts: 108},
	{id: "0022400327", date: "2024-12-05", home: "GSW", away: "DEN", homePts: 119, awayPts: 119},
	{id: "0022400418", date: "2024-12-25", home: "LAL", away: "GSW", homePts: 115, awayPts: 113},
	{id: "0022400771", date: "2025-02-08", home: "DAL", away: "BOS", homePts: 101, awayPts: 112},
	{id: "0022400905", date: "2025-03-08", home: "LAL", away: "BOS", homePts: 111, awayPts: 101},
	{id: "0022401012", date: "2025-03-27", home: "DEN", away: "DAL", homePts: 122, awayPts: 118},
	{id: "0022401150", date: "2025-04-11", home: "BOS", away: "LAL", homePts: 105, awayPts: 118},
}
