package advisor

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agriai/internal/locale"
	"agriai/internal/prompt"
)

func TestFailureWrapsCause(t *testing.T) {
	cause := errors.New("status 503")
	err := newFailure(prompt.SoilAnalysis, locale.English, locale.MsgSoilFailed, cause)

	var f *Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, prompt.SoilAnalysis, f.Capability)
	assert.Equal(t, "Sorry, I couldn't analyze the soil image. Please try again.", f.UserMessage)
	assert.ErrorIs(t, err, cause)
}

func TestUserMessage(t *testing.T) {
	cause := errors.New("timeout")
	err := newFailure(prompt.MarketAnalysis, locale.English, locale.MsgMarketFailed, cause)

	assert.Equal(t, "Could not retrieve or parse market analysis data.", UserMessage(err, "fallback"))
	assert.Equal(t, "Could not retrieve or parse market analysis data.",
		UserMessage(fmt.Errorf("wrapped: %w", err), "fallback"))
	assert.Equal(t, "fallback", UserMessage(errors.New("plain"), "fallback"))
}
