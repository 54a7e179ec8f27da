package nhl

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xenos72/NHLStatsAnalyzer1/internal/platform/resilience"
	"github.com/Xenos72/NHLStatsAnalyzer1/internal/usecase"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, breaker resilience.CircuitBreakerConfig) (*Client, *atomic.Int32) {
	t.Helper()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(ClientConfig{
		BaseURL:         srv.URL + "/v1",
		SearchURL:       srv.URL + "/api/v1/search/player",
		Timeout:         2 * time.Second,
		RequestInterval: time.Millisecond,
		CircuitBreaker:  breaker,
	})
	return client, &hits
}

func TestClient_SearchPlayers_ShortQueryMakesNoRequest(t *testing.T) {
	client, hits := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}, resilience.CircuitBreakerConfig{})

	got, err := client.SearchPlayers(context.Background(), "mc")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, int32(0), hits.Load())
}

func TestClient_SearchPlayers_MapsAndTruncates(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/search/player", r.URL.Path)
		assert.Equal(t, "en-us", r.URL.Query().Get("culture"))
		assert.Equal(t, "15", r.URL.Query().Get("limit"))
		assert.Equal(t, "mcdavid", r.URL.Query().Get("q"))

		var b strings.Builder
		b.WriteString(`[{"playerId":"8478402","name":"Connor McDavid","positionCode":"C","teamAbbrev":"EDM","active":true},`)
		b.WriteString(`{"playerId":8400001,"name":"Retired McDavid","positionCode":"D","teamAbbrev":null,"active":false}`)
		for i := 0; i < 12; i++ {
			b.WriteString(`,{"playerId":"8500000","name":"Filler","positionCode":"L","teamAbbrev":"TOR"}`)
		}
		b.WriteString(`]`)
		_, _ = w.Write([]byte(b.String()))
	}, resilience.CircuitBreakerConfig{})

	got, err := client.SearchPlayers(context.Background(), " mcdavid ")
	require.NoError(t, err)
	require.Len(t, got, 10)
	assert.Equal(t, int64(8478402), got[0].ID)
	assert.Equal(t, "Connor McDavid", got[0].Name)
	assert.Equal(t, "EDM", got[0].TeamAbbrev)
	assert.True(t, got[0].Active)
	assert.Equal(t, int64(8400001), got[1].ID)
	assert.Empty(t, got[1].TeamAbbrev)
}

func TestClient_GetPlayerDetails(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/player/8478402/landing", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"playerId": 8478402,
			"firstName": {"default": "Connor"},
			"lastName": {"default": "McDavid"},
			"currentTeamAbbrev": "EDM",
			"position": "C",
			"featuredStats": {"season": 20232024},
			"seasonTotals": [
				{"season": 20152016, "leagueAbbrev": "NHL", "gameTypeId": 2, "gamesPlayed": 45},
				{"season": 20142015, "leagueAbbrev": "OHL", "gameTypeId": 2, "gamesPlayed": 47},
				{"season": 20162017, "leagueAbbrev": "NHL", "gameTypeId": 3, "gamesPlayed": 5}
			]
		}`))
	}, resilience.CircuitBreakerConfig{})

	profile, err := client.GetPlayerDetails(context.Background(), 8478402)
	require.NoError(t, err)
	assert.Equal(t, "Connor McDavid", profile.FullName())
	assert.Equal(t, "EDM", profile.TeamAbbrev)
	assert.EqualValues(t, 20232024, profile.CurrentSeason)
	require.Len(t, profile.SeasonTotals, 3)
	assert.EqualValues(t, 20152016, profile.Seasons()[0])
	assert.Len(t, profile.Seasons(), 1)
}

func TestClient_GetGameLog(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/player/8478402/game-log/20232024/2":
			_, _ = w.Write([]byte(`{"gameLog": [
				{"gameId": 2023020005, "gameDate": "2023-10-11", "goals": 0, "assists": 1, "points": 1, "shots": 4, "toi": "21:14", "powerPlayToi": "3:02"},
				{"gameId": 2023020020, "gameDate": "2023-10-14", "goals": 2, "points": 2, "pim": 2}
			]}`))
		default:
			_, _ = w.Write([]byte(`{"seasonId": 20102011}`))
		}
	}, resilience.CircuitBreakerConfig{})

	games, err := client.GetGameLog(context.Background(), 8478402, 20232024)
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, "2023-10-11", *games[0].GameDate)
	assert.Equal(t, "21:14", *games[0].TOI)
	assert.Nil(t, games[0].PIM)
	assert.Nil(t, games[1].Assists)
	assert.Equal(t, 2, *games[1].PIM)

	empty, err := client.GetGameLog(context.Background(), 8478402, 20102011)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestClient_NotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}, resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 1})

	_, err := client.GetPlayerDetails(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, usecase.ErrNotFound), "got %v", err)
	assert.False(t, errors.Is(err, usecase.ErrDependencyUnavailable))

	_, err = client.GetPlayerDetails(context.Background(), 2)
	assert.True(t, errors.Is(err, usecase.ErrNotFound), "404 must not open the breaker, got %v", err)
}

func TestClient_ServerErrorOpensBreaker(t *testing.T) {
	client, hits := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`upstream maintenance`))
	}, resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: time.Minute, HalfOpenMaxReq: 1})

	for i := 0; i < 2; i++ {
		_, err := client.GetGameLog(context.Background(), int64(100+i), 20232024)
		require.Error(t, err)
		assert.True(t, errors.Is(err, usecase.ErrDependencyUnavailable), "got %v", err)
	}
	assert.Equal(t, int32(2), hits.Load())

	_, err := client.GetGameLog(context.Background(), 200, 20232024)
	assert.True(t, errors.Is(err, usecase.ErrDependencyUnavailable), "got %v", err)
	assert.Equal(t, int32(2), hits.Load(), "open breaker must short-circuit")
}

func TestClient_MalformedPayload(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"gameLog": "oops"`))
	}, resilience.CircuitBreakerConfig{})

	_, err := client.GetGameLog(context.Background(), 1, 20232024)
	assert.True(t, errors.Is(err, usecase.ErrDependencyUnavailable), "got %v", err)
}
