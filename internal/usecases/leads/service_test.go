package leads

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novasync/clinic-api/internal/domain"
)

type fakeSheets struct {
	rows [][]string
	err  error
}

func (f *fakeSheets) ReadLeadRange(_ context.Context) ([][]string, error) {
	return f.rows, f.err
}

func TestList_FormatsRowsWithHeaders(t *testing.T) {
	service := NewService(&fakeSheets{rows: [][]string{
		{"Name", "Phone", "Source"},
		{"Alice", "555-0100", "Facebook"},
		{"Bob", "555-0101", "Instagram"},
	}})

	result, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, domain.Lead{
		"id":     1,
		"Name":   "Alice",
		"Phone":  "555-0100",
		"Source": "Facebook",
	}, result[0])
	assert.Equal(t, 2, result[1]["id"])
	assert.Equal(t, "Bob", result[1]["Name"])
}

func TestList_ShortRowsFillMissingColumns(t *testing.T) {
	service := NewService(&fakeSheets{rows: [][]string{
		{"Name", "Phone", "Source"},
		{"Alice"},
	}})

	result, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 1)

	assert.Equal(t, "", result[0]["Phone"])
	assert.Equal(t, "", result[0]["Source"])
}

func TestList_EmptySheet(t *testing.T) {
	service := NewService(&fakeSheets{rows: nil})

	result, err := service.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Lead{}, result)
}

func TestList_HeaderOnlySheet(t *testing.T) {
	service := NewService(&fakeSheets{rows: [][]string{{"Name", "Phone"}}})

	result, err := service.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestList_SheetError(t *testing.T) {
	service := NewService(&fakeSheets{err: errors.New("permission denied")})

	result, err := service.List(context.Background())
	assert.Nil(t, result)
	assert.EqualError(t, err, "permission denied")
}
