package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("board.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "board.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: board.yaml:12: unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("events.yaml", 0, stdErrors.New("empty document"))
	require.Equal(t, "parse error: events.yaml: empty document", err.Error())
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("grid.cols", "must be at most 26", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "grid.cols", validationErr.Field)
	require.Contains(t, err.Error(), "must be at most 26")
}

func TestInputErrorIncludesValue(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("not a number")
	err := NewInputError("rows", "abc", underlying)

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	require.Equal(t, "rows", inputErr.Field)
	require.Equal(t, "abc", inputErr.Value)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, `invalid rows "abc": not a number`, err.Error())

	require.Equal(t, `invalid cell "Q0"`, NewInputError("cell", "Q0", nil).Error())
}
