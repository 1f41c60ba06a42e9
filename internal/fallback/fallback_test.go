package fallback

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constant(name string, value string, err error, calls *[]string) Candidate[string] {
	return Candidate[string]{
		Name: name,
		Try: func() (string, error) {
			*calls = append(*calls, name)
			return value, err
		},
	}
}

func TestFirstStopsAtFirstSuccess(t *testing.T) {
	var calls []string
	res, err := First(
		constant("a", "", errors.New("a failed"), &calls),
		constant("b", "B", nil, &calls),
		constant("c", "C", nil, &calls),
	)
	require.NoError(t, err)
	assert.Equal(t, "B", res.Value)
	assert.Equal(t, "b", res.Name)
	assert.Equal(t, []string{"a", "b"}, calls)
	require.Len(t, res.Failed, 1)
	assert.Equal(t, "a", res.Failed[0].Name)
}

func TestFirstAllFail(t *testing.T) {
	var calls []string
	res, err := First(
		constant("a", "", errors.New("a failed"), &calls),
		constant("b", "", fs.ErrNotExist, &calls),
	)
	require.Error(t, err)
	assert.Equal(t, []string{"a", "b"}, calls)
	assert.Len(t, res.Failed, 2)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "a: a failed")
	assert.Contains(t, err.Error(), "b: ")
}

func TestFirstNoCandidates(t *testing.T) {
	_, err := First[int]()
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestResultErrEmpty(t *testing.T) {
	var r Result[int]
	assert.NoError(t, r.Err())
}
