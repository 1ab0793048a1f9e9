package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/yukikurage/hiring-platform-api/internal/logger"
	"github.com/yukikurage/hiring-platform-api/internal/models"
	"github.com/yukikurage/hiring-platform-api/internal/notify"
	"github.com/yukikurage/hiring-platform-api/internal/repository"
	"github.com/yukikurage/hiring-platform-api/internal/utils"
)

// OrganizationService provides business logic for organization operations.
type OrganizationService struct {
	orgRepo  repository.OrganizationRepository
	userRepo repository.UserRepository
	inviter  notify.Inviter
	log      *zap.SugaredLogger
}

// NewOrganizationService creates a new OrganizationService.
func NewOrganizationService(
	orgRepo repository.OrganizationRepository,
	userRepo repository.UserRepository,
	inviter notify.Inviter,
) *OrganizationService {
	return &OrganizationService{
		orgRepo:  orgRepo,
		userRepo: userRepo,
		inviter:  inviter,
		log:      logger.WithService("organization"),
	}
}

// CreateOrganizationInput represents parameters to create a new organization.
type CreateOrganizationInput struct {
	Name     string
	Slug     string
	Plan     models.Plan
	Settings map[string]interface{}
}

// OrganizationDetails is an organization with its members and sizes.
type OrganizationDetails struct {
	Organization *models.Organization
	Members      []models.User
	Counts       repository.OrganizationCounts
}

// Create creates an organization and makes the caller its first member in one step.
func (s *OrganizationService) Create(ctx context.Context, p Principal, input CreateOrganizationInput) (*models.Organization, error) {
	if p.Role != models.RoleRecruiter {
		return nil, ErrRecruiterOnly
	}
	if p.OrganizationID != nil {
		return nil, ErrAlreadyHasOrganization
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidOrganizationName
	}
	slug := utils.NormalizeSlug(input.Slug)
	if !utils.ValidSlug(slug) {
		return nil, ErrInvalidSlug
	}
	plan := input.Plan
	if plan == "" {
		plan = models.PlanFree
	}
	if !plan.Valid() {
		return nil, ErrInvalidPlan
	}

	if err := s.ensureSlugFree(ctx, slug, ""); err != nil {
		return nil, err
	}

	org := &models.Organization{
		Name:     name,
		Slug:     slug,
		Plan:     plan,
		Settings: input.Settings,
	}

	if err := s.orgRepo.CreateWithOwner(ctx, org, p.UserID); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrSlugTaken
		case errors.Is(err, repository.ErrAlreadyInOrganization):
			return nil, ErrAlreadyHasOrganization
		case errors.Is(err, repository.ErrLinkOrganizationOwner):
			s.log.Errorw("organization create rolled back",
				"op", "create", "user_id", p.UserID, "slug", slug, "error", err)
			return nil, ErrOrganizationLinkFailed
		default:
			return nil, fmt.Errorf("failed to create organization: %w", err)
		}
	}

	return org, nil
}

// GetByID returns an organization with its members. Non-members other than admins get NotFound.
func (s *OrganizationService) GetByID(ctx context.Context, p Principal, orgID string) (*OrganizationDetails, error) {
	org, err := s.findVisible(ctx, p, orgID)
	if err != nil {
		return nil, err
	}

	members, err := s.orgRepo.ListMembers(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list organization members: %w", err)
	}
	counts, err := s.orgRepo.Counts(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count organization: %w", err)
	}

	return &OrganizationDetails{Organization: org, Members: members, Counts: counts}, nil
}

// GetMine returns the caller's organization.
func (s *OrganizationService) GetMine(ctx context.Context, p Principal) (*OrganizationDetails, error) {
	if p.OrganizationID == nil {
		return nil, ErrOrganizationNotFound
	}
	return s.GetByID(ctx, p, *p.OrganizationID)
}

// ListMembers returns the members of an organization.
func (s *OrganizationService) ListMembers(ctx context.Context, p Principal, orgID string) ([]models.User, error) {
	if _, err := s.findVisible(ctx, p, orgID); err != nil {
		return nil, err
	}

	members, err := s.orgRepo.ListMembers(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list organization members: %w", err)
	}
	return members, nil
}

// UpdateOrganizationInput is a partial patch; nil fields are left unchanged.
type UpdateOrganizationInput struct {
	Name     *string
	Slug     *string
	Plan     *models.Plan
	Settings map[string]interface{}
}

// Update patches an organization. Recruiters must belong to it; admins may update any.
func (s *OrganizationService) Update(ctx context.Context, p Principal, orgID string, input UpdateOrganizationInput) (*models.Organization, error) {
	org, err := s.findManaged(ctx, p, orgID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrInvalidOrganizationName
		}
		org.Name = name
	}
	if input.Slug != nil {
		slug := utils.NormalizeSlug(*input.Slug)
		if !utils.ValidSlug(slug) {
			return nil, ErrInvalidSlug
		}
		if slug != org.Slug {
			if err := s.ensureSlugFree(ctx, slug, org.ID); err != nil {
				return nil, err
			}
		}
		org.Slug = slug
	}
	if input.Plan != nil {
		if !input.Plan.Valid() {
			return nil, ErrInvalidPlan
		}
		org.Plan = *input.Plan
	}
	if input.Settings != nil {
		org.Settings = input.Settings
	}

	if err := s.orgRepo.Update(ctx, org); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}
	return org, nil
}

// Delete removes an organization, its jobs and their applications, and unlinks its members.
func (s *OrganizationService) Delete(ctx context.Context, p Principal, orgID string) error {
	if _, err := s.findManaged(ctx, p, orgID); err != nil {
		return err
	}

	if err := s.orgRepo.Delete(ctx, orgID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrOrganizationNotFound
		}
		s.log.Errorw("organization delete rolled back",
			"op", "delete", "organization_id", orgID, "error", err)
		return fmt.Errorf("failed to delete organization: %w", err)
	}

	s.log.Infow("organization deleted", "organization_id", orgID, "user_id", p.UserID)
	return nil
}

// AddMemberInput identifies the user to add by email.
type AddMemberInput struct {
	Email string
	Role  models.Role
}

// AddMemberResult is either the new member or an invitation notice.
type AddMemberResult struct {
	Member  *models.User
	Invited bool
	Message string
}

// AddMember links a registered user to the organization. An unknown email is not an
// error: an invitation is sent if mail is configured and nothing is stored.
func (s *OrganizationService) AddMember(ctx context.Context, p Principal, orgID string, input AddMemberInput) (*AddMemberResult, error) {
	org, err := s.findForMemberChange(ctx, p, orgID)
	if err != nil {
		return nil, err
	}

	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, ErrEmailRequired
	}
	role, err := grantableRole(input.Role)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("failed to find user: %w", err)
		}
		s.invite(ctx, notify.Invitation{
			Email:            email,
			OrganizationName: org.Name,
			InvitedBy:        p.Email,
			Role:             string(role),
		})
		return &AddMemberResult{
			Invited: true,
			Message: fmt.Sprintf("User %s has not signed up yet. Send Invitation mail.", email),
		}, nil
	}

	if user.OrganizationID != nil {
		if *user.OrganizationID == orgID {
			return nil, ErrAlreadyMember
		}
		return nil, ErrMemberOfAnotherOrg
	}

	if err := s.userRepo.AssignOrganization(ctx, user.ID, orgID, role); err != nil {
		if errors.Is(err, repository.ErrAlreadyInOrganization) {
			return nil, ErrMemberOfAnotherOrg
		}
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	user.OrganizationID = &orgID
	user.Role = role
	return &AddMemberResult{Member: user, Message: "Member added"}, nil
}

func (s *OrganizationService) invite(ctx context.Context, inv notify.Invitation) {
	if s.inviter == nil {
		return
	}
	if err := s.inviter.Invite(ctx, inv); err != nil {
		s.log.Warnw("failed to send invitation",
			"op", "add_member", "organization", inv.OrganizationName, "error", err)
	}
}

// UpdateMemberInput is a partial patch of a member's profile.
type UpdateMemberInput struct {
	Role      *models.Role
	FirstName *string
	LastName  *string
}

// UpdateMember changes a member's role or name.
func (s *OrganizationService) UpdateMember(ctx context.Context, p Principal, orgID, userID string, input UpdateMemberInput) (*models.User, error) {
	if _, err := s.findForMemberChange(ctx, p, orgID); err != nil {
		return nil, err
	}
	member, err := s.findMember(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}

	if input.Role != nil {
		role, err := grantableRole(*input.Role)
		if err != nil {
			return nil, err
		}
		if member.ID == p.UserID && role != member.Role {
			return nil, ErrCannotChangeOwnRole
		}
		member.Role = role
	}
	if input.FirstName != nil {
		member.FirstName = input.FirstName
	}
	if input.LastName != nil {
		member.LastName = input.LastName
	}

	if err := s.userRepo.Update(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to update member: %w", err)
	}
	return member, nil
}

// RemoveMember unlinks a member from the organization. The user record is kept.
func (s *OrganizationService) RemoveMember(ctx context.Context, p Principal, orgID, userID string) error {
	if _, err := s.findForMemberChange(ctx, p, orgID); err != nil {
		return err
	}
	if userID == p.UserID {
		return ErrCannotRemoveYourself
	}
	if _, err := s.findMember(ctx, orgID, userID); err != nil {
		return err
	}

	if err := s.userRepo.ClearOrganization(ctx, userID, orgID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTargetNotMember
		}
		return fmt.Errorf("failed to remove member: %w", err)
	}
	return nil
}

func (s *OrganizationService) find(ctx context.Context, orgID string) (*models.Organization, error) {
	org, err := s.orgRepo.FindByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to find organization: %w", err)
	}
	return org, nil
}

// findVisible hides organizations from callers outside them.
func (s *OrganizationService) findVisible(ctx context.Context, p Principal, orgID string) (*models.Organization, error) {
	org, err := s.find(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if !p.IsAdmin() && !p.InOrganization(orgID) {
		return nil, ErrOrganizationNotFound
	}
	return org, nil
}

func (s *OrganizationService) findManaged(ctx context.Context, p Principal, orgID string) (*models.Organization, error) {
	if !p.HasRole(models.RoleRecruiter, models.RoleAdmin) {
		return nil, ErrOrganizationManagerOnly
	}
	org, err := s.find(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if !p.IsAdmin() && !p.InOrganization(orgID) {
		return nil, ErrNotOrganizationMember
	}
	return org, nil
}

func (s *OrganizationService) findForMemberChange(ctx context.Context, p Principal, orgID string) (*models.Organization, error) {
	if p.Role != models.RoleRecruiter {
		return nil, ErrRecruiterOnly
	}
	org, err := s.find(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if !p.InOrganization(orgID) {
		return nil, ErrNotOrganizationMember
	}
	return org, nil
}

func (s *OrganizationService) findMember(ctx context.Context, orgID, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to find member: %w", err)
	}
	if !user.InOrganization(orgID) {
		return nil, ErrTargetNotMember
	}
	return user, nil
}

func (s *OrganizationService) ensureSlugFree(ctx context.Context, slug, exceptID string) error {
	existing, err := s.orgRepo.FindBySlug(ctx, slug)
	switch {
	case err == nil && existing.ID != exceptID:
		return ErrSlugTaken
	case err == nil, errors.Is(err, repository.ErrNotFound):
		return nil
	default:
		return fmt.Errorf("failed to check slug: %w", err)
	}
}

// grantableRole validates a role a recruiter assigns to a member.
func grantableRole(role models.Role) (models.Role, error) {
	if !role.Valid() {
		return "", ErrInvalidRole
	}
	if role == models.RoleAdmin {
		return "", ErrCannotGrantAdmin
	}
	return role, nil
}
