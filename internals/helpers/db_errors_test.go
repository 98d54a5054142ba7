// file: internals/helpers/db_errors_test.go
package helper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "pesan duplicate key postgres",
			err:  errors.New(`ERROR: duplicate key value violates unique constraint "uq_bill_number" (SQLSTATE 23505)`),
			want: true,
		},
		{
			name: "sqlstate 23505 saja",
			err:  errors.New("pq: SQLSTATE 23505"),
			want: true,
		},
		{
			name: "unique constraint tanpa duplicate key",
			err:  errors.New(`violates unique constraint "uq_advance_active"`),
			want: true,
		},
		{
			name: "wrapped error tetap kedeteksi",
			err:  fmt.Errorf("persist bill: %w", errors.New("duplicate key value violates unique constraint")),
			want: true,
		},
		{
			name: "error lain bukan unique violation",
			err:  errors.New("connection reset by peer"),
			want: false,
		},
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsUniqueViolation(tc.err))
		})
	}
}
