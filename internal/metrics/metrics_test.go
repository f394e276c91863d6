package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksProviderAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordProviderAttempt("nbastats.playergamelog", 10*time.Millisecond, nil)
	rec.RecordProviderAttempt("nbastats.playergamelog", 15*time.Millisecond, errors.New("boom"))

	if got := rec.ProviderCalls("nbastats.playergamelog"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.ProviderErrors("nbastats.playergamelog"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("nbastats.playergamelog"); got != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", got)
	}

	snap := rec.Snapshot("nbastats.playergamelog")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
}

func TestRecorderTracksRateLimits(t *testing.T) {
	rec := NewRecorder()
	rec.RecordRateLimit("nbastats.playergamelog", 5*time.Second)
	rec.RecordRateLimit("nbastats.playergamelog", 0)

	if got := rec.RateLimitHits("nbastats.playergamelog"); got != 2 {
		t.Fatalf("expected 2 rate limit hits, got %d", got)
	}
	if got := rec.LastRetryAfter("nbastats.playergamelog"); got != 5*time.Second {
		t.Fatalf("expected last retry-after to be 5s, got %s", got)
	}
}

func TestRecorderCountsCommandsAndReplies(t *testing.T) {
	rec := NewRecorder()
	rec.RecordCommand("today_scores", time.Millisecond, false)
	rec.RecordCommand("today_scores", time.Millisecond, true)
	rec.RecordCommand("top_scorers", time.Millisecond, false)
	rec.RecordReply(nil)
	rec.RecordReply(errors.New("line down"))

	if got := rec.Commands("today_scores"); got != 2 {
		t.Fatalf("expected 2 today_scores commands, got %d", got)
	}
	if got := rec.Commands("unknown"); got != 0 {
		t.Fatalf("expected 0 for unseen kind, got %d", got)
	}
	sent, failed := rec.Replies()
	if sent != 1 || failed != 1 {
		t.Fatalf("expected 1 sent / 1 failed, got %d / %d", sent, failed)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordProviderAttempt("x", time.Millisecond, nil)
	rec.RecordCommand("x", time.Millisecond, false)
	rec.RecordReply(nil)
	if rec.Commands("x") != 0 || rec.ProviderCalls("x") != 0 {
		t.Fatalf("expected zero values from nil recorder")
	}
}
