package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veridoc/internal/roster"
)

func testRoster() []roster.Profile {
	return []roster.Profile{
		{ID: 1, FullName: "John Doe", Department: "Engineering", EmployeeID: "EMP001", IsActive: true},
		{ID: 2, FullName: "Jane Smith", Department: "Design", EmployeeID: "EMP002", IsActive: true},
		{ID: 3, FullName: "Mike Johnson", Department: "Operations", EmployeeID: "EMP003", IsActive: true},
		{ID: 4, FullName: "Sarah Wilson", Department: "Finance", EmployeeID: "EMP004", IsActive: true},
		{ID: 5, FullName: "David Brown", Department: "Engineering", EmployeeID: "EMP005", IsActive: true},
	}
}

func TestMatch_ExactForEveryRosterEntry(t *testing.T) {
	profiles := testRoster()
	for _, p := range profiles {
		res := Match(p.FullName, profiles)
		require.NotNil(t, res.Matched, "name=%q", p.FullName)
		assert.Equal(t, p.ID, res.Matched.ID, "name=%q", p.FullName)
		assert.Empty(t, res.Suggestions, "name=%q", p.FullName)
	}
}

func TestMatch_ExactIsCaseInsensitive(t *testing.T) {
	res := Match("JOHN DOE", testRoster())
	require.NotNil(t, res.Matched)
	assert.Equal(t, "John Doe", res.Matched.FullName)
}

func TestMatch_StructuredMiddleName(t *testing.T) {
	// Middle name from OCR shouldn't break the match: first and last words
	// still agree.
	res := Match("John Michael Doe", testRoster())
	require.NotNil(t, res.Matched)
	assert.Equal(t, "John Doe", res.Matched.FullName)
}

func TestMatch_SubstringContainment(t *testing.T) {
	profiles := []roster.Profile{
		{ID: 1, FullName: "Cher", IsActive: true},
	}
	res := Match("Cher Sarkisian", profiles)
	require.NotNil(t, res.Matched)
}

func TestMatch_SuggestionsForNearMiss(t *testing.T) {
	res := Match("Jon Doe", testRoster())
	assert.Nil(t, res.Matched)
	require.NotEmpty(t, res.Suggestions)
	assert.Equal(t, "John Doe", res.Suggestions[0])
	assert.Greater(t, res.Scores["John Doe"], 0.6)
}

func TestMatch_SuggestionsCappedAtThree(t *testing.T) {
	profiles := []roster.Profile{
		{ID: 1, FullName: "John Doe", IsActive: true},
		{ID: 2, FullName: "Joan Doe", IsActive: true},
		{ID: 3, FullName: "Jona Doe", IsActive: true},
		{ID: 4, FullName: "Johan Doe", IsActive: true},
	}
	res := Match("Jonn Doe", profiles)
	assert.Nil(t, res.Matched)
	assert.Len(t, res.Suggestions, 3)
}

func TestMatch_SuggestionsRankedDescending(t *testing.T) {
	res := Match("Jon Doe", testRoster())
	for i := 1; i < len(res.Suggestions); i++ {
		assert.GreaterOrEqual(t,
			res.Scores[res.Suggestions[i-1]],
			res.Scores[res.Suggestions[i]])
	}
}

func TestMatch_InactiveProfilesExcluded(t *testing.T) {
	profiles := []roster.Profile{
		{ID: 1, FullName: "John Doe", IsActive: false},
	}
	res := Match("John Doe", profiles)
	assert.Nil(t, res.Matched)
	assert.Empty(t, res.Suggestions)
}

func TestMatch_EmptyCandidate(t *testing.T) {
	res := Match("", testRoster())
	assert.Nil(t, res.Matched)
	assert.Empty(t, res.Suggestions)
}

func TestSimilarity_Identity(t *testing.T) {
	for _, s := range []string{"a", "John Doe", "hello world", "x y z"} {
		assert.InDelta(t, 1.0, Similarity(s, s), 1e-9, "s=%q", s)
	}
}

func TestSimilarity_BothEmpty(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
}

func TestSimilarity_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"John Doe", "Jane Doe"},
		{"kitten", "sitting"},
		{"", "abc"},
		{"Mike Johnson", "Mike Jonson"},
	}
	for _, p := range pairs {
		assert.InDelta(t, Similarity(p[0], p[1]), Similarity(p[1], p[0]), 1e-9, "pair=%v", p)
	}
}

func TestSimilarity_Range(t *testing.T) {
	pairs := [][2]string{
		{"abc", "xyz"},
		{"John Doe", "completely different"},
		{"a", ""},
	}
	for _, p := range pairs {
		s := Similarity(p[0], p[1])
		assert.GreaterOrEqual(t, s, 0.0, "pair=%v", p)
		assert.LessOrEqual(t, s, 1.0, "pair=%v", p)
	}
}

func TestDistance_Classic(t *testing.T) {
	assert.Equal(t, 0, Distance("abc", "abc"))
	assert.Equal(t, 3, Distance("", "abc"))
	assert.Equal(t, 3, Distance("kitten", "sitting"))
	assert.Equal(t, 1, Distance("John", "Jon"))
}

func TestDistance_ZeroIffIdentical(t *testing.T) {
	assert.Equal(t, 0, Distance("hello", "hello"))
	assert.NotEqual(t, 0, Distance("hello", "hellp"))
}

func TestDistance_TriangleInequality(t *testing.T) {
	samples := []string{"", "a", "ab", "John Doe", "Jane Doe", "kitten", "sitting", "Mike"}
	for _, a := range samples {
		for _, b := range samples {
			for _, c := range samples {
				ab := Distance(a, b)
				bc := Distance(b, c)
				ac := Distance(a, c)
				assert.LessOrEqual(t, ac, ab+bc, "a=%q b=%q c=%q", a, b, c)
			}
		}
	}
}
