package nbastats

import "github.com/preston-bernstein/nba-linebot/internal/domain/stats"

type resultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

// response covers both envelope shapes: most endpoints return "resultSets",
// a few return a single "resultSet".
type response struct {
	ResultSets []resultSet `json:"resultSets"`
	ResultSet  *resultSet  `json:"resultSet"`
}

func (r response) tables() []*stats.Table {
	sets := r.ResultSets
	if len(sets) == 0 && r.ResultSet != nil {
		sets = []resultSet{*r.ResultSet}
	}
	out := make([]*stats.Table, 0, len(sets))
	for _, s := range sets {
		out = append(out, stats.NewTable(s.Name, s.Headers, s.RowSet))
	}
	return out
}

// pick returns the table with the given name, falling back to position.
func pick(tables []*stats.Table, name string, index int) *stats.Table {
	for _, t := range tables {
		if t.Name == name {
			return t
		}
	}
	if index >= 0 && index < len(tables) {
		return tables[index]
	}
	return stats.NewTable(name, nil, nil)
}
