package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/simukka/ninja-slice/common"
)

// TopSize is the number of entries returned by Top.
const TopSize = 10

var (
	ErrNotLoggedIn   = errors.New("not logged in")
	ErrUnknownMetric = errors.New("unknown metric")
)

// Entry is one ranked leaderboard row.
type Entry struct {
	Rank     int     `json:"rank,omitempty"`
	UserID   string  `json:"userId"`
	Username string  `json:"username"`
	Score    float64 `json:"score"`
}

// Board is today's featured leaderboard.
type Board struct {
	Top           []Entry              `json:"top"`
	Me            *Entry               `json:"me"`
	ChallengeType common.ChallengeType `json:"challengeType"`
}

// Service submits and ranks runs against a Store.
type Service struct {
	store Store
	now   func() time.Time
}

// NewService creates a service. A nil clock uses time.Now.
func NewService(store Store, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{store: store, now: now}
}

// Key returns the sorted set holding metric for the day of t.
func Key(metric common.ChallengeType, t time.Time) (string, error) {
	if !metric.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMetric, metric)
	}
	return "leaderboard:" + string(metric) + ":" + common.DayKey(t), nil
}

// Challenge returns the challenge featured today.
func (s *Service) Challenge() common.Challenge {
	return common.ChallengeFor(s.now())
}

// Count returns the shared counter.
func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.store.Count(ctx)
}

// Submit stores every numeric metric in fields under today's leaderboards and
// records the username. Fields that are missing or not numeric are skipped and
// reported as nil in the returned map.
func (s *Service) Submit(ctx context.Context, userID, username string, fields map[string]any) (map[string]*float64, error) {
	if userID == "" || username == "" {
		return nil, ErrNotLoggedIn
	}

	today := s.now()
	saved := make(map[string]*float64, len(common.Metrics))
	for _, metric := range common.Metrics {
		score, ok := toScore(fields[string(metric)])
		if !ok {
			saved[string(metric)] = nil
			continue
		}
		key, err := Key(metric, today)
		if err != nil {
			return nil, err
		}
		if err := s.store.AddScore(ctx, key, userID, score); err != nil {
			return nil, fmt.Errorf("submit %s: %w", metric, err)
		}
		saved[string(metric)] = lo.ToPtr(score)
	}

	if err := s.store.SetUsername(ctx, userID, username); err != nil {
		return nil, fmt.Errorf("submit: %w", err)
	}
	return saved, nil
}

// toScore converts a decoded JSON value to a score.
func toScore(v any) (float64, bool) {
	var f float64
	switch v := v.(type) {
	case float64:
		f = v
	case int:
		f = float64(v)
	case json.Number:
		n, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = n
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		f = n
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Top ranks today's featured metric. Me is set when userID is not empty; a
// user without a score is ranked after everyone else with score 0.
func (s *Service) Top(ctx context.Context, userID, username string) (*Board, error) {
	today := s.now()
	metric := common.ChallengeFor(today).ID
	key, err := Key(metric, today)
	if err != nil {
		return nil, err
	}

	members, err := s.store.Members(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("top: %w", err)
	}
	names, err := s.store.Usernames(ctx, lo.Map(members, func(m Member, _ int) string { return m.ID }))
	if err != nil {
		return nil, fmt.Errorf("top: %w", err)
	}

	ranked := lo.Map(members, func(m Member, _ int) Entry {
		return Entry{UserID: m.ID, Username: names[m.ID], Score: m.Score}
	})
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	board := &Board{
		Top:           lo.Subset(ranked, 0, TopSize),
		ChallengeType: metric,
	}
	if userID == "" {
		return board, nil
	}

	score, _, err := s.store.Score(ctx, key, userID)
	if err != nil {
		return nil, fmt.Errorf("top: %w", err)
	}
	rank := len(ranked) + 1
	if _, i, ok := lo.FindIndexOf(ranked, func(e Entry) bool { return e.UserID == userID }); ok {
		rank = i + 1
	}
	board.Me = &Entry{Rank: rank, UserID: userID, Username: username, Score: score}
	return board, nil
}
