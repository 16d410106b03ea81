package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"spendlens/internal/domain"
	"spendlens/internal/port"
	"spendlens/internal/service"
	"spendlens/mocks"
)

func TestAskEmptyQuestion(t *testing.T) {
	svc := service.NewChatService(new(mocks.MockSQLGenerator), new(mocks.MockQueryRunner))

	_, err := svc.Ask(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrEmptyQuestion)
}

func TestAskProviderWithRows(t *testing.T) {
	gen := new(mocks.MockSQLGenerator)
	runner := new(mocks.MockQueryRunner)

	rows := []map[string]interface{}{{"count": 7}}
	gen.On("Generate", mock.Anything, "how many invoices?").
		Return(&port.GenerateOutput{SQL: "SELECT COUNT(*) FROM invoices", Rows: rows, Provider: "vanna"}, nil)

	svc := service.NewChatService(gen, runner)
	answer, err := svc.Ask(context.Background(), "how many invoices?")
	require.NoError(t, err)

	assert.Equal(t, rows, answer.Rows)
	assert.Equal(t, "vanna", answer.Provider)
	runner.AssertNotCalled(t, "RunSelect", mock.Anything, mock.Anything)
}

func TestAskExecutesWhenProviderOnlyGenerates(t *testing.T) {
	gen := new(mocks.MockSQLGenerator)
	runner := new(mocks.MockQueryRunner)

	gen.On("Generate", mock.Anything, "total spend").
		Return(&port.GenerateOutput{SQL: "SELECT SUM(total_amount) FROM invoices", Provider: "openai"}, nil)
	rows := []map[string]interface{}{{"sum": 999.5}}
	runner.On("RunSelect", mock.Anything, "SELECT SUM(total_amount) FROM invoices").Return(rows, nil)

	svc := service.NewChatService(gen, runner)
	answer, err := svc.Ask(context.Background(), "total spend")
	require.NoError(t, err)

	assert.Equal(t, rows, answer.Rows)
	assert.Equal(t, "openai", answer.Provider)
	runner.AssertExpectations(t)
}

func TestAskGeneratorFailure(t *testing.T) {
	gen := new(mocks.MockSQLGenerator)
	gen.On("Generate", mock.Anything, "anything").Return(nil, errors.New("all providers down"))

	svc := service.NewChatService(gen, new(mocks.MockQueryRunner))
	_, err := svc.Ask(context.Background(), "anything")
	assert.ErrorIs(t, err, domain.ErrSQLGenUnavailable)
}

func TestAskExecutionFailure(t *testing.T) {
	gen := new(mocks.MockSQLGenerator)
	runner := new(mocks.MockQueryRunner)

	gen.On("Generate", mock.Anything, "bad").
		Return(&port.GenerateOutput{SQL: "DROP TABLE invoices", Provider: "openai"}, nil)
	runner.On("RunSelect", mock.Anything, "DROP TABLE invoices").Return(nil, domain.ErrUnsafeQuery)

	svc := service.NewChatService(gen, runner)
	_, err := svc.Ask(context.Background(), "bad")
	assert.ErrorIs(t, err, domain.ErrUnsafeQuery)
}

func TestRunSQLEmptyQuery(t *testing.T) {
	svc := service.NewChatService(new(mocks.MockSQLGenerator), new(mocks.MockQueryRunner))

	_, err := svc.RunSQL(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrEmptyQuery)
}

func TestRunSQLCountsRows(t *testing.T) {
	runner := new(mocks.MockQueryRunner)
	rows := []map[string]interface{}{{"id": 1}, {"id": 2}}
	runner.On("RunSelect", mock.Anything, "SELECT id FROM vendors").Return(rows, nil)

	svc := service.NewChatService(new(mocks.MockSQLGenerator), runner)
	result, err := svc.RunSQL(context.Background(), "SELECT id FROM vendors")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
	assert.Equal(t, rows, result.Rows)
}
