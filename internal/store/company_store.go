package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jshotsmedia/studio/internal/domain"
)

// CompanyStore holds the singleton public contact record (row id 1).
type CompanyStore struct {
	db *sql.DB
}

func NewCompanyStore(db *sql.DB) *CompanyStore {
	return &CompanyStore{db: db}
}

func (s *CompanyStore) Get(ctx context.Context) (*domain.CompanyInfo, error) {
	info := &domain.CompanyInfo{}
	err := s.db.QueryRowContext(ctx, `
		SELECT phone, email, logo_key FROM company_info WHERE id = 1
	`).Scan(&info.Phone, &info.Email, &info.LogoKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get company info: %w", err)
	}
	return info, nil
}

func (s *CompanyStore) Update(ctx context.Context, phone, email string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE company_info SET phone = ?, email = ? WHERE id = 1
	`, phone, email)
	if err != nil {
		return fmt.Errorf("failed to update company info: %w", err)
	}
	return nil
}

func (s *CompanyStore) SetLogo(ctx context.Context, logoKey string) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE company_info SET logo_key = ? WHERE id = 1
	`, logoKey)
	if err != nil {
		return fmt.Errorf("failed to set company logo: %w", err)
	}
	return nil
}
