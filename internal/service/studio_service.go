package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jshotsmedia/studio/internal/domain"
	"github.com/jshotsmedia/studio/internal/mediastore"
)

// rosterRepository is the subset of store.RosterStore that StudioService
// requires.
type rosterRepository interface {
	List(ctx context.Context) ([]*domain.TeamMember, error)
	GetByID(ctx context.Context, id int64) (*domain.TeamMember, error)
	Add(ctx context.Context, m *domain.TeamMember) (*domain.TeamMember, error)
	Update(ctx context.Context, id int64, name, phone, role string) error
	SetImage(ctx context.Context, id int64, image string) error
}

type companyRepository interface {
	Get(ctx context.Context) (*domain.CompanyInfo, error)
	Update(ctx context.Context, phone, email string) error
	SetLogo(ctx context.Context, logoKey string) error
}

type boardRepository interface {
	List(ctx context.Context) ([]*domain.InternalMessage, error)
	Append(ctx context.Context, sender, text string) (*domain.InternalMessage, error)
}

type reviewRepository interface {
	List(ctx context.Context) ([]*domain.Review, error)
	Prepend(ctx context.Context, author string, rating int, text, date string) (*domain.Review, error)
}

// StudioService owns the shared site state: the team roster (one copy,
// edited from both the admin dashboard and the workplace board), the company
// contact record, the private boardroom, and the public reviews.
type StudioService struct {
	roster  rosterRepository
	company companyRepository
	board   boardRepository
	reviews reviewRepository
	media   mediastore.MediaStore
	logger  *slog.Logger
	now     func() time.Time
}

func NewStudioService(
	roster rosterRepository,
	company companyRepository,
	board boardRepository,
	reviews reviewRepository,
	media mediastore.MediaStore,
	logger *slog.Logger,
) *StudioService {
	return &StudioService{
		roster:  roster,
		company: company,
		board:   board,
		reviews: reviews,
		media:   media,
		logger:  logger,
		now:     time.Now,
	}
}

func (s *StudioService) Roster(ctx context.Context) ([]*domain.TeamMember, error) {
	return s.roster.List(ctx)
}

func (s *StudioService) Member(ctx context.Context, id int64) (*domain.TeamMember, error) {
	return s.roster.GetByID(ctx, id)
}

// UpdateMember edits the inline-editable fields of a roster member.
func (s *StudioService) UpdateMember(ctx context.Context, id int64, name, phone, role string) (*domain.TeamMember, error) {
	if err := s.roster.Update(ctx, id, name, phone, role); err != nil {
		return nil, fmt.Errorf("failed to update member: %w", err)
	}
	return s.roster.GetByID(ctx, id)
}

// SetMemberImage commits a staged image and points the member at it.
func (s *StudioService) SetMemberImage(ctx context.Context, id int64, stageKey string) (*domain.TeamMember, error) {
	assetKey, err := s.media.Commit(ctx, stageKey)
	if err != nil {
		return nil, fmt.Errorf("failed to commit member image: %w", err)
	}
	if err := s.roster.SetImage(ctx, id, "/media/"+assetKey); err != nil {
		return nil, fmt.Errorf("failed to set member image: %w", err)
	}
	return s.roster.GetByID(ctx, id)
}

// AddMember appends a new roster member; name and role are required and the
// remaining fields fall back to placeholder values.
func (s *StudioService) AddMember(ctx context.Context, name, role, description, phone string) (*domain.TeamMember, error) {
	name = strings.TrimSpace(name)
	role = strings.TrimSpace(role)
	if name == "" || role == "" {
		return nil, fmt.Errorf("member name and role are required")
	}
	if description == "" {
		description = "New team member"
	}
	if phone == "" {
		phone = "+234 000 000 0000"
	}

	member, err := s.roster.Add(ctx, &domain.TeamMember{
		Role:           role,
		Name:           name,
		Description:    description,
		Image:          fmt.Sprintf("https://picsum.photos/400/500?random=%d", s.now().UnixNano()),
		PhoneNumber:    phone,
		ContactContext: fmt.Sprintf("I would like to contact %s, the %s", name, role),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("team member added", "id", member.ID, "role", member.Role)
	return member, nil
}

func (s *StudioService) Company(ctx context.Context) (*domain.CompanyInfo, error) {
	return s.company.Get(ctx)
}

// UpdateCompany stores the public contact fields as given; there is no
// format validation on either field.
func (s *StudioService) UpdateCompany(ctx context.Context, phone, email string) (*domain.CompanyInfo, error) {
	if err := s.company.Update(ctx, phone, email); err != nil {
		return nil, err
	}
	return s.company.Get(ctx)
}

// SetLogo commits a staged logo image and records it on the company record.
func (s *StudioService) SetLogo(ctx context.Context, stageKey string) (*domain.CompanyInfo, error) {
	assetKey, err := s.media.Commit(ctx, stageKey)
	if err != nil {
		return nil, fmt.Errorf("failed to commit logo: %w", err)
	}
	if err := s.company.SetLogo(ctx, assetKey); err != nil {
		return nil, err
	}
	return s.company.Get(ctx)
}

func (s *StudioService) Board(ctx context.Context) ([]*domain.InternalMessage, error) {
	return s.board.List(ctx)
}

// PostBoard appends a boardroom message under one of the fixed sender
// identities.
func (s *StudioService) PostBoard(ctx context.Context, sender, text string) (*domain.InternalMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("message text is required")
	}
	if !domain.ValidBoardIdentity(sender) {
		return nil, fmt.Errorf("unknown sender identity %q", sender)
	}
	return s.board.Append(ctx, sender, text)
}

// Aligned reports whether a boardroom message renders on the viewer's own
// side. Alignment is a view-time function of the currently selected identity,
// not a property of the message: the same transcript flips sides when the
// viewer switches identity.
func (s *StudioService) Aligned(msg *domain.InternalMessage, identity string) bool {
	return msg.Sender == identity
}

// reviewForm carries the validation rules for a submitted review.
type reviewForm struct {
	Author string `validate:"required"`
	Text   string `validate:"required"`
}

func (s *StudioService) Reviews(ctx context.Context) ([]*domain.Review, error) {
	return s.reviews.List(ctx)
}

// AddReview prepends a review. Author and text are required; a zero rating
// defaults to 5 and out-of-range ratings are clamped to 1..5.
func (s *StudioService) AddReview(ctx context.Context, author string, rating int, text string) (*domain.Review, error) {
	form := reviewForm{Author: strings.TrimSpace(author), Text: strings.TrimSpace(text)}
	if err := validateStruct(form); err != nil {
		return nil, fmt.Errorf("invalid review: %w", err)
	}

	if rating == 0 {
		rating = 5
	}
	if rating < 1 {
		rating = 1
	}
	if rating > 5 {
		rating = 5
	}

	date := s.now().Format("2006-01-02")
	return s.reviews.Prepend(ctx, form.Author, rating, form.Text, date)
}
