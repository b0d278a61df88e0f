package investment

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	mockcore "github.com/launchvest/launchvest/mocks/port/core"
)

var txnIDPattern = regexp.MustCompile(`^TXN-(\d+)-([0-9A-Z]{9})$`)

func TestGenerateTransactionID(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tp := mockcore.NewFixedTimeProvider(now)

	t.Run("matches expected format", func(t *testing.T) {
		id, err := GenerateTransactionID(tp)

		assert.NoError(t, err)
		matches := txnIDPattern.FindStringSubmatch(id)
		assert.NotNil(t, matches, "unexpected format: %s", id)
		assert.Equal(t, "1748779200000", matches[1])
	})

	t.Run("successive calls produce distinct identifiers", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			id, err := GenerateTransactionID(tp)
			assert.NoError(t, err)
			assert.False(t, seen[id], "duplicate identifier: %s", id)
			seen[id] = true
		}
	})
}
