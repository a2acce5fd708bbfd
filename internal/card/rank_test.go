package card

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/cardpack/internal/locale"
)

func TestNewRank(t *testing.T) {
	assert.Equal(t, Rank{Weight: 9, Name: Nine}, NewRank(Nine))
	assert.Equal(t, 14, NewRank(Ace).Weight)
	assert.Equal(t, Rank{Weight: 12, Name: Queen}, NewRankWithWeight(Queen, 12))
	assert.Equal(t, 0, NewRank("unknown").Weight)
}

func TestRankEquality(t *testing.T) {
	assert.NotEqual(t, NewRankWithWeight(Nine, 3), NewRankWithWeight(Nine, 4))
	assert.NotEqual(t, NewRankWithWeight(Ten, 4), NewRankWithWeight(Nine, 4))
}

func TestRanksFromArray(t *testing.T) {
	assert.Equal(t, []Rank{
		NewRankWithWeight(King, 3),
		NewRankWithWeight(Queen, 2),
	}, RanksFromArray([]Identifier{King, Queen}))

	ranks := RanksFromArray([]Identifier{Ace, Ten, King})
	require.Len(t, ranks, 3)
	assert.Greater(t, ranks[0].Weight, ranks[1].Weight)
	assert.Greater(t, ranks[1].Weight, ranks[2].Weight)

	assert.Empty(t, RanksFromArray(nil))
}

func TestFrenchRanksMatchDefaultWeights(t *testing.T) {
	for _, r := range FrenchRanks() {
		assert.Equal(t, NewRank(r.Name), r, r.Name)
	}
}

func TestGeneratedRanks(t *testing.T) {
	tests := []struct {
		name  string
		ranks []Rank
		want  []Rank
	}{
		{
			name:  "pinochle",
			ranks: PinochleRanks(),
			want: []Rank{
				NewRankWithWeight(Ace, 7),
				NewRankWithWeight(Ten, 6),
				NewRankWithWeight(King, 5),
				NewRankWithWeight(Queen, 4),
				NewRankWithWeight(Jack, 3),
				NewRankWithWeight(Nine, 2),
			},
		},
		{
			name:  "euchre",
			ranks: EuchreRanks(),
			want: []Rank{
				NewRankWithWeight(Ace, 7),
				NewRankWithWeight(King, 6),
				NewRankWithWeight(Queen, 5),
				NewRankWithWeight(Jack, 4),
				NewRankWithWeight(Ten, 3),
				NewRankWithWeight(Nine, 2),
			},
		},
		{
			name:  "skat",
			ranks: SkatRanks(),
			want: []Rank{
				NewRankWithWeight(Daus, 9),
				NewRankWithWeight(King, 8),
				NewRankWithWeight(Ober, 7),
				NewRankWithWeight(Unter, 6),
				NewRankWithWeight(Ten, 5),
				NewRankWithWeight(Nine, 4),
				NewRankWithWeight(Eight, 3),
				NewRankWithWeight(Seven, 2),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ranks)
		})
	}
}

func TestCanastaRanksDeuceHigh(t *testing.T) {
	ranks := CanastaRanks()

	require.Len(t, ranks, 13)
	assert.Equal(t, NewRankWithWeight(Two, 14), ranks[0])
	assert.Equal(t, NewRankWithWeight(Ace, 13), ranks[1])
	assert.Equal(t, NewRankWithWeight(Three, 2), ranks[12])
}

func TestArcanaRanks(t *testing.T) {
	major := MajorArcanaRanks()
	require.Len(t, major, 22)
	assert.Equal(t, NewRankWithWeight(Fool, 23), major[0])
	assert.Equal(t, NewRankWithWeight(World, 2), major[21])

	minor := MinorArcanaRanks()
	require.Len(t, minor, 14)
	assert.Equal(t, King, minor[0].Name)
	assert.Equal(t, Ace, minor[13].Name)
}

func TestRankCompare(t *testing.T) {
	assert.Equal(t, 1, NewRank(Ace).Compare(NewRank(King)))
	assert.Equal(t, -1, NewRankWithWeight(Jack, 5).Compare(NewRankWithWeight(Queen, 5)))
	assert.Equal(t, 0, NewRank(Two).Compare(NewRank(Two)))
}

func TestRankDisplay(t *testing.T) {
	b := locale.Default()

	index, err := NewRank(Queen).Index(b, locale.German)
	require.NoError(t, err)
	assert.Equal(t, "D", index)

	long, err := NewRank(Ace).Long(b, locale.German)
	require.NoError(t, err)
	assert.Equal(t, "Ass", long)

	long, err = NewRank(Ace).Long(b, locale.USEnglish)
	require.NoError(t, err)
	assert.Equal(t, "Ace", long)
}

func TestNewRankFrom(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "core.toml"), []byte("big-joker-weight = 50\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "en-US.toml"), []byte("of-long = \"of\"\n"), 0644))

	b, err := locale.LoadDir(dir, locale.USEnglish)
	require.NoError(t, err)

	assert.Equal(t, NewRankWithWeight(BigJoker, 50), NewRankFrom(b, BigJoker))
	assert.Equal(t, NewRankWithWeight(BigJoker, 16), NewRank(BigJoker))
	assert.Equal(t, 0, NewRankFrom(b, Ace).Weight)

	c := Hundred.NewFrom(b, BigJoker, Spades)
	assert.Equal(t, 450, c.Value)
}
