package replies

import (
	"fmt"
	"math"

	"github.com/preston-bernstein/nba-linebot/internal/domain/stats"
)

// percent renders a 0..1 fraction as a percentage rounded to one decimal.
func percent(r stats.Row, col string) string {
	return fmt.Sprintf("%.1f", math.Round(r.Float(col)*1000)/10)
}

// perGame divides a season total by games played.
func perGame(r stats.Row, col string, gp float64) float64 {
	return r.Float(col) / gp
}
