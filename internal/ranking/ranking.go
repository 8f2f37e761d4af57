package ranking

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"nicaris/backoffice/internal/models"
	"nicaris/backoffice/internal/sheet"

	"github.com/sirupsen/logrus"
)

// TrophyStreak is the streak length above which an agent earns the trophy
// badge on the leaderboard.
const TrophyStreak = 7

// Entry is one leaderboard position.
type Entry struct {
	Position int `json:"position"`
	models.Captador
	Initials string `json:"initials"`
	Trophy   bool   `json:"trophy"`
}

// Board loads and orders the captador leaderboard.
type Board struct {
	source  sheet.Source
	decoder *sheet.Decoder
	logger  *logrus.Logger
}

func NewBoard(source sheet.Source, decoder *sheet.Decoder, logger *logrus.Logger) *Board {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}
	return &Board{source: source, decoder: decoder, logger: logger}
}

// Load fetches the leaderboard sheet and returns entries ranked by streak,
// ties broken by total properties.
func (b *Board) Load(ctx context.Context) ([]Entry, error) {
	rows, err := b.source.FetchRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ranking sheet: %w", err)
	}

	captadores := b.decoder.DecodeCaptadores(rows)
	return Rank(captadores), nil
}

// Rank orders agents by streak descending, then properties descending.
// The input is not modified.
func Rank(captadores []models.Captador) []Entry {
	ordered := make([]models.Captador, len(captadores))
	copy(ordered, captadores)

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Streak != ordered[j].Streak {
			return ordered[i].Streak > ordered[j].Streak
		}
		return ordered[i].Properties > ordered[j].Properties
	})

	entries := make([]Entry, len(ordered))
	for i, c := range ordered {
		entries[i] = Entry{
			Position: i + 1,
			Captador: c,
			Initials: Initials(c.Name),
			Trophy:   c.Streak > TrophyStreak,
		}
	}
	return entries
}

// Initials returns up to two uppercase initials for the avatar fallback.
func Initials(fullName string) string {
	var out []rune
	for _, part := range strings.Fields(fullName) {
		out = append(out, []rune(part)[0])
		if len(out) == 2 {
			break
		}
	}
	return strings.ToUpper(string(out))
}
