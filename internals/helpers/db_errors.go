// file: internals/helpers/db_errors.go
package helper

import "strings"

// IsUniqueViolation mendeteksi pelanggaran unique index Postgres.
// Uniqueness (nomor tagihan, tuple advance/partial payment) dijaga oleh
// constraint DB; pre-check hanya untuk pesan yang ramah.
func IsUniqueViolation(err error) bool {
	return err != nil &&
		(strings.Contains(err.Error(), "duplicate key value") ||
			strings.Contains(err.Error(), "unique constraint") ||
			strings.Contains(err.Error(), "SQLSTATE 23505"))
}
