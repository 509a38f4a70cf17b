// internal/pkg/currency/currency_test.go
package currency

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "0 FCFA", Format(0))
	assert.Equal(t, "500 FCFA", Format(500))
}

func TestFormatGroupsThousands(t *testing.T) {
	// French grouping uses a space-class separator between digit groups;
	// the exact code point depends on the CLDR version, so check the
	// digits and grouping count rather than the separator byte.
	got := Format(1250000)

	assert.True(t, strings.HasSuffix(got, Suffix))

	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, strings.TrimSuffix(got, Suffix))
	assert.Equal(t, "1250000", digits)

	// Two separators for a seven-digit amount
	groups := len(strings.FieldsFunc(strings.TrimSuffix(got, Suffix), func(r rune) bool {
		return r < '0' || r > '9'
	}))
	assert.Equal(t, 3, groups)
}

func TestFormatNegative(t *testing.T) {
	got := Format(-500)
	assert.Contains(t, got, "500")
	assert.True(t, strings.HasSuffix(got, Suffix))
}
