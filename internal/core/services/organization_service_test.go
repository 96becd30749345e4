package services_test

import (
	"context"
	"testing"

	"github.com/lexfin/lexfin_backend/internal/apperrors"
	"github.com/lexfin/lexfin_backend/internal/core/domain"
	portssvc "github.com/lexfin/lexfin_backend/internal/core/ports/services"
	"github.com/lexfin/lexfin_backend/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type OrganizationServiceTestSuite struct {
	suite.Suite
	mockRepo *MockOrganizationRepository
	service  portssvc.OrganizationSvcFacade
}

func (suite *OrganizationServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockOrganizationRepository)
	suite.service = services.NewOrganizationService(suite.mockRepo)
}

func (suite *OrganizationServiceTestSuite) membership(userID, orgID string, role domain.UserOrganizationRole) *domain.UserOrganization {
	return &domain.UserOrganization{UserID: userID, OrganizationID: orgID, Role: role}
}

func (suite *OrganizationServiceTestSuite) TestCreateOrganization_CreatorBecomesAdmin() {
	ctx := context.Background()
	creatorID := uuid.NewString()

	suite.mockRepo.On("SaveOrganization", ctx, mock.MatchedBy(func(o domain.Organization) bool {
		return o.Name == "Escritório Central" && o.IsActive && o.CreatedBy == creatorID
	})).Return(nil).Once()
	suite.mockRepo.On("AddUserToOrganization", ctx, mock.MatchedBy(func(m domain.UserOrganization) bool {
		return m.UserID == creatorID && m.Role == domain.RoleAdmin
	})).Return(nil).Once()

	org, err := suite.service.CreateOrganization(ctx, "Escritório Central", creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(org)
	suite.Equal("Escritório Central", org.Name)
	suite.True(org.IsActive)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *OrganizationServiceTestSuite) TestAuthorizeUserAction_RoleHierarchy() {
	ctx := context.Background()
	orgID := uuid.NewString()

	adminID := uuid.NewString()
	memberID := uuid.NewString()
	readonlyID := uuid.NewString()

	suite.mockRepo.On("FindUserOrganizationRole", ctx, adminID, orgID).
		Return(suite.membership(adminID, orgID, domain.RoleAdmin), nil)
	suite.mockRepo.On("FindUserOrganizationRole", ctx, memberID, orgID).
		Return(suite.membership(memberID, orgID, domain.RoleMember), nil)
	suite.mockRepo.On("FindUserOrganizationRole", ctx, readonlyID, orgID).
		Return(suite.membership(readonlyID, orgID, domain.RoleReadOnly), nil)

	authorizer := suite.service.(portssvc.OrganizationAuthorizerSvc)

	// Admin satisfies every requirement.
	suite.NoError(authorizer.AuthorizeUserAction(ctx, adminID, orgID, domain.RoleAdmin))
	suite.NoError(authorizer.AuthorizeUserAction(ctx, adminID, orgID, domain.RoleReadOnly))

	// Member satisfies member and readonly requirements but not admin.
	suite.NoError(authorizer.AuthorizeUserAction(ctx, memberID, orgID, domain.RoleMember))
	suite.ErrorIs(authorizer.AuthorizeUserAction(ctx, memberID, orgID, domain.RoleAdmin), apperrors.ErrForbidden)

	// Readonly satisfies only readonly.
	suite.NoError(authorizer.AuthorizeUserAction(ctx, readonlyID, orgID, domain.RoleReadOnly))
	suite.ErrorIs(authorizer.AuthorizeUserAction(ctx, readonlyID, orgID, domain.RoleMember), apperrors.ErrForbidden)
}

func (suite *OrganizationServiceTestSuite) TestAuthorizeUserAction_RemovedMemberIsForbidden() {
	ctx := context.Background()
	orgID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockRepo.On("FindUserOrganizationRole", ctx, userID, orgID).
		Return(suite.membership(userID, orgID, domain.RoleRemoved), nil)

	authorizer := suite.service.(portssvc.OrganizationAuthorizerSvc)
	suite.ErrorIs(authorizer.AuthorizeUserAction(ctx, userID, orgID, domain.RoleReadOnly), apperrors.ErrForbidden)
}

func (suite *OrganizationServiceTestSuite) TestAuthorizeUserAction_NonMemberGetsNotFound() {
	ctx := context.Background()
	orgID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockRepo.On("FindUserOrganizationRole", ctx, userID, orgID).
		Return(nil, apperrors.ErrNotFound)

	authorizer := suite.service.(portssvc.OrganizationAuthorizerSvc)
	suite.ErrorIs(authorizer.AuthorizeUserAction(ctx, userID, orgID, domain.RoleReadOnly), apperrors.ErrNotFound)
}

func (suite *OrganizationServiceTestSuite) TestRemoveUserFromOrganization_AdminCannotRemoveSelf() {
	ctx := context.Background()
	orgID := uuid.NewString()
	adminID := uuid.NewString()

	suite.mockRepo.On("FindUserOrganizationRole", ctx, adminID, orgID).
		Return(suite.membership(adminID, orgID, domain.RoleAdmin), nil)

	err := suite.service.RemoveUserFromOrganization(ctx, adminID, adminID, orgID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateUserOrganizationRole", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrganizationServiceTestSuite) TestRemoveUserFromOrganization_MarksRemoved() {
	ctx := context.Background()
	orgID := uuid.NewString()
	adminID := uuid.NewString()
	targetID := uuid.NewString()

	suite.mockRepo.On("FindUserOrganizationRole", ctx, adminID, orgID).
		Return(suite.membership(adminID, orgID, domain.RoleAdmin), nil)
	suite.mockRepo.On("UpdateUserOrganizationRole", ctx, targetID, orgID, domain.RoleRemoved).
		Return(nil).Once()

	err := suite.service.RemoveUserFromOrganization(ctx, adminID, targetID, orgID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestOrganizationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationServiceTestSuite))
}
