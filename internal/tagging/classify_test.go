package tagging

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify_Trump(t *testing.T) {
	require.True(t, Classify("Trump announces new rally").Trump)
	require.True(t, Classify("Crowds gather at Mar-a-Lago").Trump)
	require.True(t, Classify("MAGA supporters march").Trump)
	require.True(t, Classify("Card game trumps expectations").Trump) // substring match, as in the legacy tagger
	require.False(t, Classify("Local bakery opens").Trump)
}

func TestClassify_Sports(t *testing.T) {
	require.True(t, Classify("Premier League results").Sports)
	require.True(t, Classify("F1 qualifying in Monza").Sports)
	require.True(t, Classify("Stunning goal in extra time").Sports)
	require.False(t, Classify("Parliament debates budget").Sports)
}

func TestClassify_AI(t *testing.T) {
	require.True(t, Classify("OpenAI releases new model").AI)
	require.True(t, Classify("What AI means for jobs").AI) // bare "ai" at word boundary
	require.True(t, Classify("Advances in machine learning").AI)
	require.False(t, Classify("Air travel rebounds").AI) // "ai" inside a word does not count
}

func TestClassify_AnthropicFlag(t *testing.T) {
	tags := Classify("Anthropic publishes Claude research")
	require.True(t, tags.AI)
	require.True(t, tags.Anthropic)

	tags = Classify("OpenAI model update")
	require.True(t, tags.AI)
	require.False(t, tags.Anthropic)
}

func TestClassify_Empty(t *testing.T) {
	require.Equal(t, Tags{}, Classify(""))
}

func TestClassifyAll_EitherFieldTags(t *testing.T) {
	tags := ClassifyAll("Quiet day in politics", "President Trump responded late on Friday")
	require.True(t, tags.Trump)

	tags = ClassifyAll("Champions League final", "")
	require.True(t, tags.Sports)

	tags = ClassifyAll("Gardening tips", "Best tomatoes this season")
	require.Equal(t, Tags{}, tags)
}
