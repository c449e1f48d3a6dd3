package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBin_Label(t *testing.T) {
	tests := []struct {
		bin  Bin
		want string
	}{
		{bin: Bin{Lower: 24.985, Upper: 30}, want: "(24.985, 30]"},
		{bin: Bin{Lower: -1.5, Upper: 0}, want: "(-1.5, 0]"},
		{bin: Bin{Lower: 0.3333333333, Upper: 0.6666666667}, want: "(0.333333, 0.666667]"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.bin.Label())
		})
	}
}

func TestCategoricalSummary(t *testing.T) {
	s := CategoricalSummary{
		Counts: []ValueCount{
			{Value: "b", Count: 3},
			{Value: "a", Count: 2},
			{Value: "c", Count: 1},
			{Value: "d", Count: 1},
		},
		Missing: 4,
	}

	assert.Equal(t, 4, s.Distinct())
	assert.Equal(t, 7, s.Total())

	most, ok := s.MostFrequent()
	assert.True(t, ok)
	assert.Equal(t, "b", most.Value)

	least, ok := s.LeastFrequent()
	assert.True(t, ok)
	assert.Equal(t, "c", least.Value)
	assert.Equal(t, 1, least.Count)
}

func TestCategoricalSummary_Empty(t *testing.T) {
	var s CategoricalSummary

	assert.Zero(t, s.Distinct())
	assert.Zero(t, s.Total())

	_, ok := s.MostFrequent()
	assert.False(t, ok)
	_, ok = s.LeastFrequent()
	assert.False(t, ok)
}
