package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tyltyhub/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicateEmail is returned by Create when the unique index on email
// rejects the insert. The constraint is the only duplicate check: concurrent
// submissions with the same email race at the store, not in application code.
var ErrDuplicateEmail = errors.New("email already registered")

// ErrCounterReset wraps a failed id counter reset after ClearAll already
// removed the rows; the deletions stand.
var ErrCounterReset = errors.New("id counter reset failed")

type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

type leadModel struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	NomeCompleto string    `gorm:"column:nome_completo;not null"`
	Email        string    `gorm:"column:email;not null;uniqueIndex"`
	Whatsapp     string    `gorm:"column:whatsapp;not null"`
	DataCadastro time.Time `gorm:"column:data_cadastro"`
	IPAddress    *string   `gorm:"column:ip_address"`
	UserAgent    *string   `gorm:"column:user_agent"`
}

func (leadModel) TableName() string { return "leads" }

// Migrate ensures the leads table and its unique email index exist.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&leadModel{})
}

func toDomainLead(m leadModel) *domain.Lead {
	var ip, ua string
	if m.IPAddress != nil {
		ip = *m.IPAddress
	}
	if m.UserAgent != nil {
		ua = *m.UserAgent
	}

	return &domain.Lead{
		ID:           m.ID,
		NomeCompleto: m.NomeCompleto,
		Email:        m.Email,
		Whatsapp:     m.Whatsapp,
		DataCadastro: m.DataCadastro,
		IPAddress:    ip,
		UserAgent:    ua,
	}
}

func toLeadModel(l *domain.Lead) leadModel {
	var ip, ua *string
	if l.IPAddress != "" {
		v := l.IPAddress
		ip = &v
	}
	if l.UserAgent != "" {
		v := l.UserAgent
		ua = &v
	}

	return leadModel{
		ID:           l.ID,
		NomeCompleto: l.NomeCompleto,
		Email:        l.Email,
		Whatsapp:     l.Whatsapp,
		DataCadastro: l.DataCadastro,
		IPAddress:    ip,
		UserAgent:    ua,
	}
}

// Create inserts the lead atomically and fills in the assigned id and
// timestamp. Returns ErrDuplicateEmail when the email is already stored.
func (r *LeadRepository) Create(ctx context.Context, l *domain.Lead) error {
	m := toLeadModel(l)
	if m.DataCadastro.IsZero() {
		m.DataCadastro = time.Now()
	}

	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		if isUniqueViolation(tx.Error) {
			return ErrDuplicateEmail
		}
		return tx.Error
	}

	*l = *toDomainLead(m)
	return nil
}

// List returns every lead, newest first.
func (r *LeadRepository) List(ctx context.Context) ([]domain.Lead, error) {
	var models []leadModel
	tx := r.db.WithContext(ctx).
		Order("data_cadastro DESC, id DESC").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	leads := make([]domain.Lead, 0, len(models))
	for _, m := range models {
		leads = append(leads, *toDomainLead(m))
	}
	return leads, nil
}

func (r *LeadRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	tx := r.db.WithContext(ctx).Model(&leadModel{}).Count(&total)
	return total, tx.Error
}

// DeleteByID removes at most one lead and returns the rows affected.
// A missing id yields 0, not an error.
func (r *LeadRepository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	tx := r.db.WithContext(ctx).Delete(&leadModel{}, id)
	return tx.RowsAffected, tx.Error
}

// DeleteByEmail removes at most one lead keyed by email; same contract as
// DeleteByID.
func (r *LeadRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("email = ?", strings.TrimSpace(email)).
		Delete(&leadModel{})
	return tx.RowsAffected, tx.Error
}

// ClearAll removes every lead and resets the id counter so the next insert
// gets id 1. The two steps are not atomic: if the counter reset fails the
// deletions stand and the reset error is returned alongside the count.
func (r *LeadRepository) ClearAll(ctx context.Context) (int64, error) {
	db := r.db.WithContext(ctx)

	tx := db.Exec("DELETE FROM leads")
	if tx.Error != nil {
		return 0, tx.Error
	}
	deleted := tx.RowsAffected

	var reset *gorm.DB
	if r.db.Dialector.Name() == "postgres" {
		reset = db.Exec("ALTER SEQUENCE leads_id_seq RESTART WITH 1")
	} else {
		reset = db.Exec("DELETE FROM sqlite_sequence WHERE name = ?", "leads")
	}
	if reset.Error != nil {
		return deleted, fmt.Errorf("%w: %v", ErrCounterReset, reset.Error)
	}
	return deleted, nil
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	// modernc.org/sqlite reports constraint violations by message only.
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
