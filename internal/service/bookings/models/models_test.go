package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ElizarovAleksey/Banketam.net/internal/domain"
)

func TestParseStartDate(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "RFC 3339 with time",
			raw:      "2025-12-25T19:30:00Z",
			expected: time.Date(2025, 12, 25, 19, 30, 0, 0, time.UTC),
		},
		{
			name:     "date only defaults to 18:00",
			raw:      "25.12.2025",
			expected: time.Date(2025, 12, 25, 18, 0, 0, 0, time.UTC),
		},
		{
			name:    "ISO date without time",
			raw:     "2025-12-25",
			wantErr: true,
		},
		{
			name:    "slashes instead of dots",
			raw:     "25/12/2025",
			wantErr: true,
		},
		{
			name:    "single-digit day",
			raw:     "5.12.2025",
			wantErr: true,
		},
		{
			name:    "empty",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "garbage",
			raw:     "next friday",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStartDate(tt.raw)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidStartDate)
				return
			}

			assert.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "expected %v, got %v", tt.expected, got)
		})
	}
}

func TestAdminListQuery_ToDomainFilter(t *testing.T) {
	t.Run("empty query falls back to defaults", func(t *testing.T) {
		q := &AdminListQuery{}
		filter := q.ToDomainFilter()

		assert.Nil(t, filter.Status)
		assert.Nil(t, filter.VenueID)
		assert.Equal(t, domain.OrderCreatedAtDesc, filter.Order)
		assert.Equal(t, 1, filter.Page)
	})

	t.Run("valid values pass through", func(t *testing.T) {
		q := &AdminListQuery{
			Status: "confirmed",
			Venue:  "3",
			Order:  "startDateTime",
			Page:   "2",
		}
		filter := q.ToDomainFilter()

		assert.NotNil(t, filter.Status)
		assert.Equal(t, domain.StatusConfirmed, *filter.Status)
		assert.NotNil(t, filter.VenueID)
		assert.Equal(t, int64(3), *filter.VenueID)
		assert.Equal(t, domain.OrderStartAsc, filter.Order)
		assert.Equal(t, 2, filter.Page)
	})

	t.Run("invalid values silently replaced by defaults", func(t *testing.T) {
		q := &AdminListQuery{
			Status: "cancelled",
			Venue:  "abc",
			Order:  "created_at; DROP TABLE bookings",
			Page:   "zero",
		}
		filter := q.ToDomainFilter()

		assert.Nil(t, filter.Status)
		assert.Nil(t, filter.VenueID)
		assert.Equal(t, domain.OrderCreatedAtDesc, filter.Order)
		assert.Equal(t, 1, filter.Page)
	})

	t.Run("negative venue and page ignored", func(t *testing.T) {
		q := &AdminListQuery{Venue: "-5", Page: "-1"}
		filter := q.ToDomainFilter()

		assert.Nil(t, filter.VenueID)
		assert.Equal(t, 1, filter.Page)
	})

	t.Run("all six orders from the allow-list", func(t *testing.T) {
		expected := map[string]domain.BookingOrder{
			"createdAt":      domain.OrderCreatedAtAsc,
			"-createdAt":     domain.OrderCreatedAtDesc,
			"startDateTime":  domain.OrderStartAsc,
			"-startDateTime": domain.OrderStartDesc,
			"status":         domain.OrderStatusAsc,
			"-status":        domain.OrderStatusDesc,
		}
		for raw, order := range expected {
			q := &AdminListQuery{Order: raw}
			assert.Equal(t, order, q.ToDomainFilter().Order, "order=%q", raw)
		}
	})
}

func TestNewPageMeta(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		total      int64
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{name: "first page of three", page: 1, total: 25, totalPages: 3, hasNext: true, hasPrev: false},
		{name: "middle page", page: 2, total: 25, totalPages: 3, hasNext: true, hasPrev: true},
		{name: "last page", page: 3, total: 25, totalPages: 3, hasNext: false, hasPrev: true},
		{name: "exactly one full page", page: 1, total: 10, totalPages: 1, hasNext: false, hasPrev: false},
		{name: "empty list", page: 1, total: 0, totalPages: 1, hasNext: false, hasPrev: false},
		{name: "page beyond the end", page: 7, total: 25, totalPages: 3, hasNext: false, hasPrev: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewPageMeta(tt.page, tt.total)

			assert.Equal(t, tt.page, meta.Page)
			assert.Equal(t, domain.BookingPageSize, meta.PageSize)
			assert.Equal(t, tt.total, meta.Total)
			assert.Equal(t, tt.totalPages, meta.TotalPages)
			assert.Equal(t, tt.hasNext, meta.HasNext)
			assert.Equal(t, tt.hasPrev, meta.HasPrev)
		})
	}
}
