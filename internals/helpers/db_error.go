package helper

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// --- DB error mapping (gorm / pgx / libpq) ---
func MapDBError(err error) (int, string) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound, "record not found"
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return http.StatusConflict, "duplicate record (unique violation)"
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return http.StatusBadRequest, "referenced record not found (foreign key violation)"
	}

	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return pgCode(pgxErr.Code, pgxErr.Message)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pgCode(string(pqErr.Code), pqErr.Message)
	}
	return http.StatusInternalServerError, err.Error()
}

func pgCode(code, message string) (int, string) {
	switch code {
	case "23505":
		return http.StatusConflict, "duplicate record (unique violation)"
	case "23503":
		return http.StatusBadRequest, "referenced record not found (foreign key violation)"
	case "22P02":
		return http.StatusBadRequest, "invalid input syntax"
	default:
		return http.StatusInternalServerError, message
	}
}

// WriteDBError maps err and writes the error envelope; 5xx are logged.
func WriteDBError(c *fiber.Ctx, err error) error {
	code, msg := MapDBError(err)
	if code >= 500 {
		log.Error().Err(err).Str("path", c.Path()).Msg("database error")
	}
	return JsonError(c, code, msg)
}

// FromFiberError mengubah error hasil Transaction (biasanya *fiber.Error)
// menjadi response JSON konsisten.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	return WriteDBError(c, err)
}
