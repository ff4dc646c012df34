package advisor

import (
	"errors"
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"google.golang.org/genai"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []*genai.Part{{Text: text}}}},
		},
	}
}

func stream(fragments []string, failAfter int, failErr error) iter.Seq2[*genai.GenerateContentResponse, error] {
	return func(yield func(*genai.GenerateContentResponse, error) bool) {
		for i, f := range fragments {
			if failErr != nil && i == failAfter {
				yield(nil, failErr)
				return
			}
			if !yield(textResponse(f), nil) {
				return
			}
		}
	}
}

func TestAccumulateStreamOrder(t *testing.T) {
	var chunks []string
	got, err := accumulateStream(stream([]string{"Hel", "lo", " world"}, -1, nil), func(s string) {
		chunks = append(chunks, s)
	})
	require.NoError(t, err)

	assert.Equal(t, "Hello world", got)
	assert.Equal(t, []string{"Hel", "Hello", "Hello world"}, chunks)
}

func TestAccumulateStreamSkipsEmptyFragments(t *testing.T) {
	var chunks []string
	got, err := accumulateStream(stream([]string{"", "Rain likely", ""}, -1, nil), func(s string) {
		chunks = append(chunks, s)
	})
	require.NoError(t, err)

	assert.Equal(t, "Rain likely", got)
	assert.Equal(t, []string{"Rain likely"}, chunks)
}

func TestAccumulateStreamMidStreamError(t *testing.T) {
	streamErr := errors.New("connection reset")

	var chunks []string
	got, err := accumulateStream(stream([]string{"Partial", " answer"}, 1, streamErr), func(s string) {
		chunks = append(chunks, s)
	})

	require.ErrorIs(t, err, streamErr)
	assert.Equal(t, "Partial", got)
	assert.Equal(t, []string{"Partial"}, chunks)
}

func TestAccumulateStreamNilCallback(t *testing.T) {
	got, err := accumulateStream(stream([]string{"a", "b"}, -1, nil), nil)
	require.NoError(t, err)
	assert.Equal(t, "ab", got)
}
