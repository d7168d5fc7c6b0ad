package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "chronosdeck/internal/errors"
)

func TestNonEmpty(t *testing.T) {
	assert.NoError(t, NonEmpty("name", "x"))
	assert.Error(t, NonEmpty("name", ""))
	assert.Error(t, NonEmpty("name", "   "))
}

func TestName(t *testing.T) {
	assert.NoError(t, Name("subject name", "Math"))
	assert.Error(t, Name("subject name", ""))
	assert.Error(t, Name("subject name", strings.Repeat("x", MaxNameLength+1)))

	err := Name("subject name", "")
	assert.True(t, apperrors.IsUserError(err))
}

func TestCardField(t *testing.T) {
	assert.NoError(t, CardField("term", "bonjour"))
	assert.Error(t, CardField("term", ""))
	assert.NoError(t, CardField("definition", strings.Repeat("x", MaxCardFieldLength)))
	assert.Error(t, CardField("definition", strings.Repeat("x", MaxCardFieldLength+1)))
}

func TestSubjectSelected(t *testing.T) {
	assert.NoError(t, SubjectSelected("Math"))

	err := SubjectSelected("")
	assert.Error(t, err)
	assert.True(t, apperrors.IsUserError(err))
}

func TestHexColor(t *testing.T) {
	assert.NoError(t, HexColor(""))
	assert.NoError(t, HexColor("#7C3AED"))
	assert.NoError(t, HexColor("#abcdef"))

	assert.Error(t, HexColor("7C3AED"))
	assert.Error(t, HexColor("#7C3AE"))
	assert.Error(t, HexColor("#GGGGGG"))
	assert.Error(t, HexColor("purple"))
}
