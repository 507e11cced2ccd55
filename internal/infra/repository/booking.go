package repository

import (
	"context"
	"errors"
	"time"

	"github.com/GRAMAPHENIA/resio-sub000/internal/domain/booking"
	"github.com/GRAMAPHENIA/resio-sub000/internal/domain/user"
	"github.com/GRAMAPHENIA/resio-sub000/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingColumns = `id, property_id, contact_name, contact_email, contact_phone,
	start_date, end_date, amount, status, payment_id, user_id, created_at, updated_at`

type BookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return b, nil
}

func (r *BookingRepository) FindByEmail(ctx context.Context, email user.Email) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE contact_email = $1 ORDER BY created_at DESC`,
		email.Value())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings by email", err)
	}
	return scanBookings(rows)
}

func (r *BookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE user_id = $1 ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings by user ID", err)
	}
	return scanBookings(rows)
}

func (r *BookingRepository) FindByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE property_id = $1 ORDER BY start_date`,
		propertyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings by property ID", err)
	}
	return scanBookings(rows)
}

func (r *BookingRepository) FindByStatus(ctx context.Context, status booking.Status) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE status = $1 ORDER BY created_at DESC`,
		status.String())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find bookings by status", err)
	}
	return scanBookings(rows)
}

// FindConflicting applies the coarse half-open overlap prefilter in SQL; the
// exact overlap test stays with the caller.
func (r *BookingRepository) FindConflicting(
	ctx context.Context,
	propertyID uuid.UUID,
	stay booking.DateRange,
	excludeID *uuid.UUID,
) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings
		 WHERE property_id = $1
		   AND start_date < $3
		   AND end_date > $2
		   AND ($4::uuid IS NULL OR id <> $4)`,
		propertyID, stay.Start(), stay.End(), excludeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find conflicting bookings", err)
	}
	return scanBookings(rows)
}

func (r *BookingRepository) Save(ctx context.Context, b *booking.Booking) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO bookings (id, property_id, contact_name, contact_email, contact_phone,
			start_date, end_date, amount, status, payment_id, user_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING `+bookingColumns,
		b.ID(), b.PropertyID(), b.Contact().Name(), b.Contact().Email().Value(), b.Contact().Phone(),
		b.Stay().Start(), b.Stay().End(), b.Amount(), b.Status().String(), b.PaymentID(), b.UserID())

	saved, err := scanBooking(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to save booking", err)
	}
	return saved, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE bookings
		 SET contact_name = $2, contact_email = $3, contact_phone = $4,
		     start_date = $5, end_date = $6, amount = $7, status = $8,
		     payment_id = $9, user_id = $10, updated_at = $11
		 WHERE id = $1
		 RETURNING `+bookingColumns,
		b.ID(), b.Contact().Name(), b.Contact().Email().Value(), b.Contact().Phone(),
		b.Stay().Start(), b.Stay().End(), b.Amount(), b.Status().String(),
		b.PaymentID(), b.UserID(), b.UpdatedAt())

	updated, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update booking", err)
	}
	return updated, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if cmd.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

// CleanupExpired bulk-cancels pending bookings whose hold outlived olderThan.
func (r *BookingRepository) CleanupExpired(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan)
	cmd, err := r.db.Exec(ctx,
		`UPDATE bookings SET status = $1, updated_at = now()
		 WHERE status = $2 AND created_at < $3`,
		booking.StatusCancelled.String(), booking.StatusPending.String(), cutoff)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to cleanup expired bookings", err)
	}
	return cmd.RowsAffected(), nil
}

type bookingRow struct {
	ID           uuid.UUID
	PropertyID   uuid.UUID
	ContactName  string
	ContactEmail string
	ContactPhone *string
	StartDate    time.Time
	EndDate      time.Time
	Amount       int64
	Status       string
	PaymentID    *string
	UserID       *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var r bookingRow
	if err := row.Scan(
		&r.ID, &r.PropertyID, &r.ContactName, &r.ContactEmail, &r.ContactPhone,
		&r.StartDate, &r.EndDate, &r.Amount, &r.Status, &r.PaymentID, &r.UserID,
		&r.CreatedAt, &r.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return r.toDomain()
}

func scanBookings(rows pgx.Rows) ([]*booking.Booking, error) {
	defer rows.Close()

	var result []*booking.Booking
	for rows.Next() {
		var r bookingRow
		if err := rows.Scan(
			&r.ID, &r.PropertyID, &r.ContactName, &r.ContactEmail, &r.ContactPhone,
			&r.StartDate, &r.EndDate, &r.Amount, &r.Status, &r.PaymentID, &r.UserID,
			&r.CreatedAt, &r.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		b, err := r.toDomain()
		if err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return result, nil
}

func (r bookingRow) toDomain() (*booking.Booking, error) {
	email, err := user.NewEmail(r.ContactEmail)
	if err != nil {
		return nil, infra.WrapRepoErr("stored contact email is invalid", err)
	}
	contact, err := booking.NewContactInfo(r.ContactName, email, r.ContactPhone)
	if err != nil {
		return nil, infra.WrapRepoErr("stored contact info is invalid", err)
	}
	stay, err := booking.NewDateRange(r.StartDate, r.EndDate)
	if err != nil {
		return nil, infra.WrapRepoErr("stored date range is invalid", err)
	}
	status, err := booking.NewStatus(r.Status)
	if err != nil {
		return nil, infra.WrapRepoErr("stored status is invalid", err)
	}

	return booking.ReconstructBooking(
		r.ID, r.PropertyID, contact, stay, r.Amount, status,
		r.PaymentID, r.UserID, r.CreatedAt, r.UpdatedAt,
	), nil
}
