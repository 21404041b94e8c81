package paginator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidPerPage(t *testing.T) {
	assert.True(t, ValidPerPage(1))
	assert.True(t, ValidPerPage(50))
	assert.False(t, ValidPerPage(0))
	assert.False(t, ValidPerPage(-10))

	assert.True(t, New(1, 10, 0).IsValidPerPage())
	assert.False(t, New(1, 0, 10).IsValidPerPage())
}

func TestIsValidPage(t *testing.T) {
	p := New(1, 10, 95)

	assert.False(t, p.IsValidPage(0))
	assert.True(t, p.IsValidPage(1))
	assert.True(t, p.IsValidPage(10))
	assert.False(t, p.IsValidPage(11))
	assert.False(t, p.IsValidPage(-2))
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name                 string
		page, perPage, total int
		want                 bool
	}{
		{name: "first page", page: 1, perPage: 10, total: 95, want: true},
		{name: "last page", page: 10, perPage: 10, total: 95, want: true},
		{name: "past the end", page: 11, perPage: 10, total: 95},
		// zero pages means even page 1 is out of range
		{name: "empty result", page: 1, perPage: 10, total: 0},
		{name: "invalid per page", page: 1, perPage: 0, total: 95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.page, tt.perPage, tt.total).IsValid())
		})
	}
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name                 string
		page, perPage, total int
		wantErr              error
		wantMsg              string
	}{
		{name: "valid", page: 2, perPage: 10, total: 95},
		{name: "page past the end", page: 11, perPage: 10, total: 95, wantErr: ErrInvalidPage, wantMsg: "pagination error: invalid page number: 11"},
		{name: "zero per page", page: 1, perPage: 0, total: 95, wantErr: ErrInvalidPerPage, wantMsg: "pagination error: invalid number of records per page: 0"},
		{name: "both invalid reports per page", page: 99, perPage: -1, total: 95, wantErr: ErrInvalidPerPage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.page, tt.perPage, tt.total).Verify()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			require.ErrorIs(t, err, ErrPagination)
			if tt.wantMsg != "" {
				assert.EqualError(t, err, tt.wantMsg)
			}
		})
	}
}

func TestVerify_NotCalledByConstruction(t *testing.T) {
	p := New(50, 0, 10)
	assert.NotNil(t, p)
	assert.True(t, errors.Is(p.Verify(), ErrInvalidPerPage))
}
