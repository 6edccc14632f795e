package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"autonom-backend/internal/domain"
	"autonom-backend/internal/repository"

	"github.com/lib/pq"
)

type vehicleRepository struct {
	db *sql.DB
}

func NewVehicleRepository(db *sql.DB) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

const vehicleColumns = `id, make, model, plate_number, status, mileage_km, notes, last_service_on, created_on`

func (r *vehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	query := `INSERT INTO vehicles (make, model, plate_number, status, mileage_km, notes, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_on`
	err := r.db.QueryRowContext(ctx, query,
		v.Make, v.Model, v.PlateNumber, v.Status, v.MileageKM, v.Notes, time.Now(),
	).Scan(&v.ID, &v.CreatedOn)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		return domain.ErrDuplicatePlate
	}
	return err
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int32) (*domain.Vehicle, error) {
	v := &domain.Vehicle{}
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&v.ID, &v.Make, &v.Model, &v.PlateNumber, &v.Status, &v.MileageKM, &v.Notes, &v.LastService, &v.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *vehicleRepository) List(ctx context.Context) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles ORDER BY created_on DESC`
	return r.queryVehicles(ctx, query)
}

func (r *vehicleRepository) ListByStatus(ctx context.Context, status domain.VehicleStatus) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE status = $1 ORDER BY created_on DESC`
	return r.queryVehicles(ctx, query, status)
}

func (r *vehicleRepository) queryVehicles(ctx context.Context, query string, args ...interface{}) ([]domain.Vehicle, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.Make, &v.Model, &v.PlateNumber, &v.Status, &v.MileageKM, &v.Notes, &v.LastService, &v.CreatedOn); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (r *vehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	query := `UPDATE vehicles SET make=$1, model=$2, plate_number=$3, status=$4, mileage_km=$5, notes=$6, last_service_on=$7 WHERE id=$8`
	_, err := r.db.ExecContext(ctx, query, v.Make, v.Model, v.PlateNumber, v.Status, v.MileageKM, v.Notes, v.LastService, v.ID)
	return err
}

func (r *vehicleRepository) UpdateStatus(ctx context.Context, id int32, status domain.VehicleStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE vehicles SET status=$1 WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *vehicleRepository) CountByStatus(ctx context.Context) (map[domain.VehicleStatus]int32, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, count(*) FROM vehicles GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[domain.VehicleStatus]int32)
	for rows.Next() {
		var status domain.VehicleStatus
		var count int32
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}
