package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresCustomerRepository struct {
	db *pgxpool.Pool
}

func NewPostgresCustomerRepository(db *pgxpool.Pool) *PostgresCustomerRepository {
	return &PostgresCustomerRepository{db: db}
}

func (r *PostgresCustomerRepository) Save(customer *Customer) error {
	if customer.ID == "" {
		customer.ID = uuid.New().String()
	}

	query := `
		INSERT INTO customers (id, name, email, phone, password, role, is_regular)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(context.Background(), query,
		customer.ID, customer.Name, customer.Email, customer.Phone,
		customer.Password, customer.Role, customer.IsRegular,
	)
	return err
}

func (r *PostgresCustomerRepository) ExistsByEmail(email string) (bool, error) {
	query := `SELECT 1 FROM customers WHERE email=$1 LIMIT 1`
	row := r.db.QueryRow(context.Background(), query, email)

	var exists int
	if err := row.Scan(&exists); err != nil {
		return false, nil
	}
	return true, nil
}

func (r *PostgresCustomerRepository) FindByEmail(email string) (*Customer, error) {
	query := `
		SELECT id, name, email, phone, password, role, is_regular
		FROM customers WHERE email=$1
	`
	row := r.db.QueryRow(context.Background(), query, email)

	customer := &Customer{}
	if err := row.Scan(
		&customer.ID, &customer.Name, &customer.Email, &customer.Phone,
		&customer.Password, &customer.Role, &customer.IsRegular,
	); err != nil {
		return nil, errors.New("customer not found")
	}
	return customer, nil
}

func (r *PostgresCustomerRepository) FindByID(id string) (*Customer, error) {
	query := `
		SELECT id, name, email, phone, password, role, is_regular
		FROM customers WHERE id=$1
	`
	row := r.db.QueryRow(context.Background(), query, id)

	customer := &Customer{}
	if err := row.Scan(
		&customer.ID, &customer.Name, &customer.Email, &customer.Phone,
		&customer.Password, &customer.Role, &customer.IsRegular,
	); err != nil {
		return nil, errors.New("customer not found")
	}
	return customer, nil
}

// --------------------------------------------------
// Loyalty flag
// --------------------------------------------------
// Flipped by staff once a customer qualifies as a regular; the engine
// only ever reads it.

func (r *PostgresCustomerRepository) SetRegular(
	ctx context.Context,
	customerID string,
	regular bool,
) error {
	_, err := r.db.Exec(ctx, `
		UPDATE customers
		SET is_regular = $1
		WHERE id = $2
	`, regular, customerID)
	return err
}
