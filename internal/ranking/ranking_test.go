package ranking

import (
	"context"
	"errors"
	"testing"

	"nicaris/backoffice/internal/models"
	"nicaris/backoffice/internal/sheet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	rows [][]string
	err  error
}

func (s *stubSource) FetchRows(ctx context.Context) ([][]string, error) {
	return s.rows, s.err
}

func TestRank_OrdersByStreakThenProperties(t *testing.T) {
	captadores := []models.Captador{
		{ID: "1", Name: "María López", Properties: 30, Streak: 10},
		{ID: "2", Name: "Juan Pérez", Properties: 25, Streak: 8},
		{ID: "3", Name: "Ana García", Properties: 40, Streak: 8},
		{ID: "4", Name: "Luis Gómez", Properties: 18, Streak: 5},
	}

	entries := Rank(captadores)
	require.Len(t, entries, 4)
	assert.Equal(t, "1", entries[0].ID)
	// Equal streaks fall back to properties count.
	assert.Equal(t, "3", entries[1].ID)
	assert.Equal(t, "2", entries[2].ID)
	assert.Equal(t, "4", entries[3].ID)

	for i, e := range entries {
		assert.Equal(t, i+1, e.Position)
	}
}

func TestRank_TrophyThreshold(t *testing.T) {
	entries := Rank([]models.Captador{
		{ID: "1", Name: "A", Streak: 8},
		{ID: "2", Name: "B", Streak: 7},
	})
	assert.True(t, entries[0].Trophy)
	assert.False(t, entries[1].Trophy, "a streak of exactly 7 earns no trophy")
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	captadores := []models.Captador{
		{ID: "1", Streak: 1},
		{ID: "2", Streak: 9},
	}
	Rank(captadores)
	assert.Equal(t, "1", captadores[0].ID)
}

func TestInitials(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{name: "María López", expected: "ML"},
		{name: "Michael", expected: "M"},
		{name: "juan carlos pérez", expected: "JC"},
		{name: "", expected: ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Initials(tt.name))
	}
}

func TestBoard_Load(t *testing.T) {
	src := &stubSource{rows: [][]string{
		{"1", "María López", "30", "10", "2023-10-02"},
		{"2", "Juan Pérez", "25", "8", "2023-10-01"},
	}}
	board := NewBoard(src, sheet.NewDecoder(sheet.CaptadorColumns, sheet.MediaConfig{}, nil), nil)

	entries, err := board.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "María López", entries[0].Name)
	assert.Equal(t, "ML", entries[0].Initials)
}

func TestBoard_LoadFetchError(t *testing.T) {
	board := NewBoard(&stubSource{err: errors.New("boom")}, sheet.NewDecoder(sheet.CaptadorColumns, sheet.MediaConfig{}, nil), nil)

	_, err := board.Load(context.Background())
	assert.Error(t, err)
}
