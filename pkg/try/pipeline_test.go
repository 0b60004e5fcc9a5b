package try_test

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlsverre/tryiter/pkg/try"
	"github.com/carlsverre/tryiter/pkg/try/peek"
	"github.com/carlsverre/tryiter/pkg/try/pipe"
	"github.com/carlsverre/tryiter/pkg/try/term"
)

// Test a full pipeline: validate raw strings, parse them, keep the even
// values and sum them, with failures surfacing at the terminal.
func TestPipeline_EndToEnd(t *testing.T) {
	t.Parallel()

	inputs := []string{"10", "3", "4", "  ", "8"}

	validated := pipe.Filter(try.FromValues(inputs...), func(s string) (bool, error) {
		if strings.TrimSpace(s) == "" {
			return false, errors.New("empty input")
		}
		return true, nil
	})

	parsed := pipe.Map(validated, func(s string) (int, error) {
		return strconv.Atoi(s)
	})

	evens := pipe.Filter(parsed, func(v int) (bool, error) {
		return v%2 == 0, nil
	})

	sum, err := term.Fold(evens, 0, func(acc, v int) (int, error) {
		return acc + v, nil
	})

	// the blank entry fails validation before "8" is ever reached
	assert.EqualError(t, err, "empty input")
	assert.Zero(t, sum)
}

func TestPipeline_CleanInputSumsEvens(t *testing.T) {
	t.Parallel()

	parsed := pipe.Map(try.FromValues("10", "3", "4", "8"), func(s string) (int, error) {
		return strconv.Atoi(s)
	})

	sum, err := term.Fold(
		pipe.Filter(parsed, func(v int) (bool, error) { return v%2 == 0, nil }),
		0,
		func(acc, v int) (int, error) { return acc + v, nil },
	)
	require.NoError(t, err)
	assert.Equal(t, 22, sum)
}

// Test that the first failure surfaces at the same logical position whether
// the sequence is driven directly or through an adapter chain, and that no
// downstream callback runs past it.
func TestPipeline_FailurePositionIsStable(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	items := []try.Result[int]{
		try.Success(1), try.Success(2), try.Fail[int](boom), try.Success(4),
	}

	directPos := -1
	for i, r := range items {
		if r.IsFailure() {
			directPos = i
			break
		}
	}

	var seen []int
	it := pipe.Inspect(
		pipe.Map(try.FromResults(items...), func(v int) (int, error) { return v * 10, nil }),
		func(v int) error {
			seen = append(seen, v)
			return nil
		},
	)

	pulled := 0
	var got error
	for {
		r, ok := it.Next()
		if !ok {
			break
		}
		if r.IsFailure() {
			got = r.Err()
			break
		}
		pulled++
	}

	assert.ErrorIs(t, got, boom)
	assert.Equal(t, directPos, pulled)
	assert.Equal(t, []int{10, 20}, seen)
}

func TestPipeline_PeekThenDrain(t *testing.T) {
	t.Parallel()

	p := peek.Wrap(pipe.Map(try.FromValues(1, 2, 3), func(v int) (string, error) {
		return fmt.Sprintf("v%d", v), nil
	}))

	head, ok := p.Peek()
	require.True(t, ok)
	assert.Equal(t, "v1", head.Value())

	rest, err := term.Collect[string](p)
	require.NoError(t, err)
	assert.Equal(t, []string{"v1", "v2", "v3"}, rest)
}
