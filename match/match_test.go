package match

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/sirkon/go-union/union"
)

func clientType() *union.Constructor {
	return union.Create("ClientType").
		Of("Success", func(args ...interface{}) (interface{}, error) {
			return args[0], nil
		}).
		Of("Failure", func(args ...interface{}) (interface{}, error) {
			return args[0], nil
		}).
		Render()
}

func describe(v union.Value, c *union.Constructor) *Matcher[string] {
	return On[string](v).
		Of(c).
		Case("Success", func(p interface{}) string { return "id " + strconv.Itoa(p.(int)) }).
		Case("Failure", func(p interface{}) string { return "error " + p.(string) })
}

func TestExhaustive(t *testing.T) {
	c := clientType()

	res, err := describe(union.Must(c.Invoke("Success", 42)), c).Result()
	require.NoError(t, err)
	assert.Equal(t, "id 42", res)

	res, err = describe(union.Must(c.Invoke("Failure", "timeout")), c).Result()
	require.NoError(t, err)
	assert.Equal(t, "error timeout", res)
}

func TestNonExhaustive(t *testing.T) {
	c := clientType()
	v := union.Must(c.Invoke("Success", 1))

	_, err := On[int](v).Of(c).Case("Success", func(interface{}) int { return 1 }).Result()
	var nonExhaustive *NonExhaustiveError
	require.True(t, errors.As(err, &nonExhaustive))
	assert.Equal(t, []string{"Failure"}, nonExhaustive.Missing)
	assert.Equal(t, "non-exhaustive match on ClientType, missing Failure", err.Error())

	res, err := On[int](v).
		Of(c).
		Case("Failure", func(interface{}) int { return 1 }).
		Default(func(union.Value) int { return 2 }).
		Result()
	require.NoError(t, err)
	assert.Equal(t, 2, res)
}

func TestUnknownCase(t *testing.T) {
	c := clientType()
	v := union.Must(c.Invoke("Success", 1))

	_, err := describe(v, c).
		Case("Pending", func(interface{}) string { return "" }).
		Case("Retry", func(interface{}) string { return "" }).
		Result()
	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	var unknown *UnknownCaseError
	require.True(t, errors.As(errs[1], &unknown))
	assert.Equal(t, "Retry", unknown.Arm)
}

func TestForeignValue(t *testing.T) {
	other := union.Create("Other").Of("Success", nil).Render()
	v := union.Must(other.Invoke("Success"))

	_, err := describe(v, clientType()).Result()
	var foreign *ForeignValueError
	require.True(t, errors.As(err, &foreign))
	assert.Equal(t, "ClientType", foreign.Union)
	assert.Equal(t, "Other", foreign.Value.Union())
}

func TestUnbound(t *testing.T) {
	c := clientType()
	v := union.Must(c.Invoke("Failure", "x"))

	_, err := On[bool](v).Case("Success", func(interface{}) bool { return true }).Result()
	var noMatch *NoMatchError
	require.True(t, errors.As(err, &noMatch))
	assert.Equal(t, &NoMatchError{Union: "ClientType", Arm: "Failure"}, noMatch)

	res, err := On[bool](v).
		Case("Failure", func(interface{}) bool { return false }).
		Case("Failure", func(interface{}) bool { return true }).
		Result()
	require.NoError(t, err)
	assert.True(t, res)
}
