package investment

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	coreport "github.com/launchvest/launchvest/internal/domain/port/core"
)

const txnSuffixLength = 9

// GenerateTransactionID builds a receipt identifier of the form
// TXN-<unix millis>-<9 random base36 characters, uppercased>.
// The random suffix keeps identifiers unique even when two
// transactions land in the same millisecond.
func GenerateTransactionID(timeProvider coreport.TimeProvider) (string, error) {
	millis := timeProvider.Now().UnixMilli()

	suffix, err := randomBase36(txnSuffixLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate transaction id: %w", err)
	}

	return "TXN-" + strconv.FormatInt(millis, 10) + "-" + suffix, nil
}

func randomBase36(length int) (string, error) {
	var sb strings.Builder
	sb.Grow(length)

	max := big.NewInt(36)
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		sb.WriteString(strings.ToUpper(strconv.FormatInt(n.Int64(), 36)))
	}

	return sb.String(), nil
}
