package replies

import (
	"context"
	"fmt"

	"github.com/preston-bernstein/nba-linebot/internal/domain/players"
	"github.com/preston-bernstein/nba-linebot/internal/domain/stats"
)

func playerNotFound(name string) string {
	return fmt.Sprintf("找不到名為「%s」的球員，請確認名字是否正確（需英文全名）", name)
}

// lookupPlayer returns the first directory match in provider order.
func (s *Service) lookupPlayer(ctx context.Context, name string) (players.Player, bool, error) {
	src, err := s.source()
	if err != nil {
		return players.Player{}, false, err
	}
	found, err := src.FindPlayersByFullName(ctx, name)
	if err != nil {
		return players.Player{}, false, err
	}
	if len(found) == 0 {
		return players.Player{}, false, nil
	}
	return found[0], true, nil
}

// PlayerLastGame describes the player's most recent game, preferring the playoffs.
func (s *Service) PlayerLastGame(ctx context.Context, name string) (string, error) {
	player, ok, err := s.lookupPlayer(ctx, name)
	if err != nil {
		return "", err
	}
	if !ok {
		return playerNotFound(name), nil
	}

	season := s.currentSeason()
	log, err := s.provider.PlayerGameLog(ctx, player.ID, season, stats.SeasonTypePlayoffs)
	if err != nil {
		return "", err
	}
	if log.Empty() {
		log, err = s.provider.PlayerGameLog(ctx, player.ID, season, stats.SeasonTypeRegular)
		if err != nil {
			return "", err
		}
	}
	if log.Empty() {
		return fmt.Sprintf("查無 %s 的比賽紀錄。", name), nil
	}

	g := log.Rows[0]
	return fmt.Sprintf("%s 最新一場比賽數據 (%s)\n"+
		"對戰隊伍：%s\n"+
		"上場時間：%s 分鐘\n"+
		"得分：%s 分\n"+
		"助攻：%s 次\n"+
		"籃板：%s 個\n"+
		"抄截：%s 次\n"+
		"阻攻：%s 次\n"+
		"投籃命中率：%s%% (%s/%s)\n"+
		"三分命中率：%s%% (%s/%s)\n"+
		"罰球命中率：%s%% (%s/%s)\n"+
		"正負值：%s\n"+
		"犯規：%s 次",
		name, g.String(stats.ColGameDate),
		g.String(stats.ColMatchup),
		g.String(stats.ColMinutes),
		g.String(stats.ColPoints),
		g.String(stats.ColAssists),
		g.String(stats.ColRebounds),
		g.String(stats.ColSteals),
		g.String(stats.ColBlocks),
		percent(g, stats.ColFGPct), g.String(stats.ColFGM), g.String(stats.ColFGA),
		percent(g, stats.ColFG3Pct), g.String(stats.ColFG3M), g.String(stats.ColFG3A),
		percent(g, stats.ColFTPct), g.String(stats.ColFTM), g.String(stats.ColFTA),
		g.String(stats.ColPlusMinus),
		g.String(stats.ColFouls),
	), nil
}

// PlayerSeasonAverage reports per-game averages for the player's latest season.
func (s *Service) PlayerSeasonAverage(ctx context.Context, name string) (string, error) {
	player, ok, err := s.lookupPlayer(ctx, name)
	if err != nil {
		return "", err
	}
	if !ok {
		return playerNotFound(name), nil
	}

	career, err := s.provider.PlayerCareerStats(ctx, player.ID)
	if err != nil {
		return "", err
	}
	seasons := career.Filter(func(r stats.Row) bool {
		return s.seasonFilter(r.String(stats.ColSeasonID))
	})
	if seasons.Empty() {
		return fmt.Sprintf("查無 %s 本季例行賽數據。", name), nil
	}

	latest := seasons.Rows[seasons.Len()-1]
	gp := latest.Float(stats.ColGamesPlayed)
	if gp == 0 {
		return fmt.Sprintf("%s 本季尚無出賽資料。", name), nil
	}

	return fmt.Sprintf("%s 本季 (%s) 平均數據：\n"+
		"出賽場數：%s 場\n"+
		"場均上場時間：%.1f 分鐘\n"+
		"場均得分：%.1f\n"+
		"場均助攻：%.1f\n"+
		"場均籃板：%.1f\n"+
		"場均抄截：%.1f\n"+
		"場均阻攻：%.1f\n"+
		"場均失誤：%.1f\n"+
		"投籃命中率：%.1f%%\n"+
		"三分命中率：%.1f%%\n"+
		"罰球命中率：%.1f%%",
		name, latest.String(stats.ColSeasonID),
		latest.String(stats.ColGamesPlayed),
		perGame(latest, stats.ColMinutes, gp),
		perGame(latest, stats.ColPoints, gp),
		perGame(latest, stats.ColAssists, gp),
		perGame(latest, stats.ColRebounds, gp),
		perGame(latest, stats.ColSteals, gp),
		perGame(latest, stats.ColBlocks, gp),
		perGame(latest, stats.ColTurnovers, gp),
		latest.Float(stats.ColFGPct)*100,
		latest.Float(stats.ColFG3Pct)*100,
		latest.Float(stats.ColFTPct)*100,
	), nil
}
