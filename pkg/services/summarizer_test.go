package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/queryscribe/queryscribe/pkg/llm"
	"github.com/queryscribe/queryscribe/pkg/models"
)

func TestSummarizer_Summarize(t *testing.T) {
	rows := []models.Row{
		{"name": models.TextValue("a"), "total": models.IntValue(10)},
		{"name": models.TextValue("b"), "total": models.IntValue(20)},
		{"name": models.TextValue("c"), "total": models.FloatValue(15)},
	}

	client := llm.NewMockCompletionClient()
	client.CompleteFunc = func(ctx context.Context, prompt, systemMessage string) (string, error) {
		return "  Total revenue was 45 across three items.  \n", nil
	}

	s := NewSummarizer(5, nil)
	narrative, err := s.Summarize(context.Background(), client, "What is revenue?", "SELECT name, total FROM sales", rows)
	require.NoError(t, err)

	assert.Equal(t, "Total revenue was 45 across three items.", narrative,
		"narrative must be whitespace-trimmed, nothing more")
	assert.Equal(t, 1, client.CompleteCalls)

	prompt := client.Prompts[0]
	assert.Contains(t, prompt, "Row count: 3")
	assert.Contains(t, prompt, "total: min=10.00 max=20.00 avg=15.00")
	assert.NotContains(t, prompt, "name: min=",
		"text columns must not gain statistics")
}

func TestSummarizer_SummarizeError(t *testing.T) {
	client := llm.NewMockCompletionClient()
	client.CompleteFunc = func(ctx context.Context, prompt, systemMessage string) (string, error) {
		return "", errors.New("model unavailable")
	}

	s := NewSummarizer(5, nil)
	_, err := s.Summarize(context.Background(), client, "q", "SELECT 1 FROM t", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "summarize results")
}

func TestComputeColumnStats(t *testing.T) {
	t.Run("nulls excluded from aggregation", func(t *testing.T) {
		rows := []models.Row{
			{"v": models.IntValue(10)},
			{"v": models.NullValue()},
			{"v": models.IntValue(20)},
		}

		stats := computeColumnStats(rows)
		require.Len(t, stats, 1)
		assert.Equal(t, "v", stats[0].Column)
		assert.Equal(t, 2, stats[0].Count)
		assert.Equal(t, 10.0, stats[0].Min)
		assert.Equal(t, 20.0, stats[0].Max)
		assert.Equal(t, 15.0, stats[0].Avg)
	})

	t.Run("numeric sniff uses first non-null value", func(t *testing.T) {
		rows := []models.Row{
			{"v": models.NullValue()},
			{"v": models.FloatValue(1.5)},
			{"v": models.TextValue("surprise")},
		}

		stats := computeColumnStats(rows)
		require.Len(t, stats, 1)
		assert.Equal(t, 1, stats[0].Count, "later non-numeric values are skipped")
	})

	t.Run("text column sniffed first stays out", func(t *testing.T) {
		rows := []models.Row{
			{"v": models.TextValue("abc")},
			{"v": models.IntValue(5)},
		}

		assert.Empty(t, computeColumnStats(rows))
	})

	t.Run("negative values", func(t *testing.T) {
		rows := []models.Row{
			{"v": models.IntValue(-3)},
			{"v": models.IntValue(-7)},
		}

		stats := computeColumnStats(rows)
		require.Len(t, stats, 1)
		assert.Equal(t, -7.0, stats[0].Min)
		assert.Equal(t, -3.0, stats[0].Max)
		assert.Equal(t, -5.0, stats[0].Avg)
	})

	t.Run("empty result", func(t *testing.T) {
		assert.Nil(t, computeColumnStats(nil))
	})
}

func TestFormatSample(t *testing.T) {
	rows := []models.Row{
		{"b": models.IntValue(1), "a": models.TextValue("x")},
		{"b": models.IntValue(2), "a": models.TextValue("y")},
		{"b": models.IntValue(3), "a": models.TextValue("z")},
	}

	t.Run("caps at n", func(t *testing.T) {
		sample := formatSample(rows, 2)
		assert.Contains(t, sample, "1. a=x, b=1")
		assert.Contains(t, sample, "2. a=y, b=2")
		assert.NotContains(t, sample, "3.")
	})

	t.Run("columns sorted", func(t *testing.T) {
		sample := formatSample(rows[:1], 1)
		assert.Equal(t, "  1. a=x, b=1\n", sample)
	})

	t.Run("n larger than rows", func(t *testing.T) {
		sample := formatSample(rows, 10)
		assert.Contains(t, sample, "3. a=z, b=3")
	})

	t.Run("empty rows", func(t *testing.T) {
		assert.Equal(t, "", formatSample(nil, 5))
	})
}
