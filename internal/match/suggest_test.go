package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	properties := []string{"ID", "UserName", "Email", "CreatedAt", "UserNames"}

	got := Suggest("usr_name", properties, DefaultMinSimilarity, 2)
	assert.Equal(t, []string{"UserName", "UserNames"}, Names(got))
	assert.GreaterOrEqual(t, got[0].Score, got[1].Score)
}

func TestSuggest_NoCloseMatch(t *testing.T) {
	got := Suggest("extra_col", []string{"ID", "Email"}, DefaultMinSimilarity, 3)
	assert.Empty(t, got)
}

func TestSuggest_NoLimit(t *testing.T) {
	got := Suggest("email", []string{"Email", "EMail", "mail"}, 0.5, 0)
	assert.Len(t, got, 3)
	assert.Equal(t, "Email", got[0].Property)
}

func TestNames_Empty(t *testing.T) {
	assert.Empty(t, Names(nil))
}
