package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jshotsmedia/studio/internal/domain"
)

// RosterStore is the single source of truth for the team roster. Every
// surface that shows or edits the team reads and writes through it.
type RosterStore struct {
	db *sql.DB
}

func NewRosterStore(db *sql.DB) *RosterStore {
	return &RosterStore{db: db}
}

func (s *RosterStore) List(ctx context.Context) ([]*domain.TeamMember, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, role, name, description, image, phone_number, contact_context, created_at
		FROM team_members ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	defer rows.Close()

	var members []*domain.TeamMember
	for rows.Next() {
		m := &domain.TeamMember{}
		if err := rows.Scan(&m.ID, &m.Role, &m.Name, &m.Description, &m.Image,
			&m.PhoneNumber, &m.ContactContext, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan team member: %w", err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating team members: %w", err)
	}

	return members, nil
}

func (s *RosterStore) GetByID(ctx context.Context, id int64) (*domain.TeamMember, error) {
	m := &domain.TeamMember{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, role, name, description, image, phone_number, contact_context, created_at
		FROM team_members WHERE id = ?
	`, id).Scan(&m.ID, &m.Role, &m.Name, &m.Description, &m.Image,
		&m.PhoneNumber, &m.ContactContext, &m.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get team member: %w", err)
	}

	return m, nil
}

func (s *RosterStore) Add(ctx context.Context, m *domain.TeamMember) (*domain.TeamMember, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO team_members (role, name, description, image, phone_number, contact_context)
		VALUES (?, ?, ?, ?, ?, ?)
	`, m.Role, m.Name, m.Description, m.Image, m.PhoneNumber, m.ContactContext)
	if err != nil {
		return nil, fmt.Errorf("failed to add team member: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}

// Update edits the inline-editable fields: display name, phone, and role.
func (s *RosterStore) Update(ctx context.Context, id int64, name, phone, role string) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE team_members SET name = ?, phone_number = ?, role = ? WHERE id = ?
	`, name, phone, role, id)
	if err != nil {
		return fmt.Errorf("failed to update team member: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("team member not found")
	}

	return nil
}

func (s *RosterStore) SetImage(ctx context.Context, id int64, image string) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE team_members SET image = ? WHERE id = ?
	`, image, id)
	if err != nil {
		return fmt.Errorf("failed to set team member image: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("team member not found")
	}

	return nil
}
