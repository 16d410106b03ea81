package sqlgen_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"spendlens/internal/config"
	"spendlens/internal/port"
	"spendlens/internal/sqlgen"
	"spendlens/mocks"
)

func TestNewGeneratorUnknownProvider(t *testing.T) {
	_, err := sqlgen.NewGenerator(&config.SQLGenProviderConfig{Provider: "nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown sqlgen provider")
}

func TestNewGeneratorUsesRegisteredFactory(t *testing.T) {
	want := new(mocks.MockSQLGenerator)
	sqlgen.RegisterProvider("stub", func(cfg *config.SQLGenProviderConfig) (port.SQLGenerator, error) {
		return want, nil
	})

	got, err := sqlgen.NewGenerator(&config.SQLGenProviderConfig{Provider: "stub"})
	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestFallbackGeneratorFirstSucceeds(t *testing.T) {
	primary := new(mocks.MockSQLGenerator)
	secondary := new(mocks.MockSQLGenerator)
	primary.On("Generate", mock.Anything, "q").
		Return(&port.GenerateOutput{SQL: "SELECT 1", Provider: "vanna"}, nil)

	f := sqlgen.NewFallbackGenerator(
		[]port.SQLGenerator{primary, secondary},
		[]string{"vanna", "openai"},
	)

	out, err := f.Generate(context.Background(), "q")
	require.NoError(t, err)
	assert.Equal(t, "vanna", out.Provider)
	secondary.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestFallbackGeneratorFallsThrough(t *testing.T) {
	primary := new(mocks.MockSQLGenerator)
	secondary := new(mocks.MockSQLGenerator)
	primary.On("Generate", mock.Anything, "q").Return(nil, errors.New("connection refused"))
	secondary.On("Generate", mock.Anything, "q").
		Return(&port.GenerateOutput{SQL: "SELECT 2", Provider: "openai"}, nil)

	f := sqlgen.NewFallbackGenerator(
		[]port.SQLGenerator{primary, secondary},
		[]string{"vanna", "openai"},
	)

	out, err := f.Generate(context.Background(), "q")
	require.NoError(t, err)
	assert.Equal(t, "openai", out.Provider)
}

func TestFallbackGeneratorAllFail(t *testing.T) {
	primary := new(mocks.MockSQLGenerator)
	secondary := new(mocks.MockSQLGenerator)
	primary.On("Generate", mock.Anything, "q").Return(nil, errors.New("first down"))
	secondary.On("Generate", mock.Anything, "q").Return(nil, errors.New("second down"))

	f := sqlgen.NewFallbackGenerator(
		[]port.SQLGenerator{primary, secondary},
		[]string{"vanna", "openai"},
	)

	_, err := f.Generate(context.Background(), "q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all sqlgen providers failed")
	assert.Contains(t, err.Error(), "second down")
}
