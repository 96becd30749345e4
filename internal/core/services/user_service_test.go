package services_test

import (
	"context"
	"testing"

	"github.com/lexfin/lexfin_backend/internal/apperrors"
	"github.com/lexfin/lexfin_backend/internal/core/domain"
	portssvc "github.com/lexfin/lexfin_backend/internal/core/ports/services"
	"github.com/lexfin/lexfin_backend/internal/core/services"
	"github.com/lexfin/lexfin_backend/internal/dto"
	"github.com/lexfin/lexfin_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

func (suite *UserServiceTestSuite) TestCreateUser_HashesPassword() {
	ctx := context.Background()

	var saved domain.User
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		saved = u
		return u.Email == "ana@escritorio.com" && u.IsActive
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, dto.CreateUserRequest{
		Name:     "Ana",
		Email:    "ana@escritorio.com",
		Password: "segredo-forte",
	})

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.NotEqual("segredo-forte", saved.PasswordHash)
	suite.True(utils.CheckPasswordHash("segredo-forte", saved.PasswordHash))
	suite.Equal(user.UserID, saved.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateEmail() {
	ctx := context.Background()

	suite.mockRepo.On("SaveUser", ctx, mock.Anything).
		Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateUser(ctx, dto.CreateUserRequest{
		Name:     "Ana",
		Email:    "ana@escritorio.com",
		Password: "segredo-forte",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestCreateGoogleUser_LinksExistingEmail() {
	ctx := context.Background()
	existingID := uuid.NewString()

	suite.mockRepo.On("FindUserByGoogleID", ctx, "google-sub-1").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("FindUserByEmail", ctx, "ana@escritorio.com").
		Return(&domain.User{UserID: existingID, Email: "ana@escritorio.com", IsActive: true}, nil).Once()
	suite.mockRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.UserID == existingID && u.GoogleID != nil && *u.GoogleID == "google-sub-1"
	})).Return(nil).Once()

	user, err := suite.service.CreateGoogleUser(ctx, domain.GoogleUserInfo{
		ID:    "google-sub-1",
		Email: "ana@escritorio.com",
		Name:  "Ana",
	})

	suite.Require().NoError(err)
	suite.Equal(existingID, user.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateGoogleUser_ReturnsExistingByGoogleID() {
	ctx := context.Background()
	existingID := uuid.NewString()
	googleID := "google-sub-2"

	suite.mockRepo.On("FindUserByGoogleID", ctx, googleID).
		Return(&domain.User{UserID: existingID, GoogleID: &googleID}, nil).Once()

	user, err := suite.service.CreateGoogleUser(ctx, domain.GoogleUserInfo{ID: googleID, Email: "x@y.com"})

	suite.Require().NoError(err)
	suite.Equal(existingID, user.UserID)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPasswordIsUnauthorized() {
	ctx := context.Background()
	hash, err := utils.HashPassword("senha-certa")
	suite.Require().NoError(err)

	suite.mockRepo.On("FindUserByEmail", ctx, "ana@escritorio.com").
		Return(&domain.User{UserID: uuid.NewString(), Email: "ana@escritorio.com", PasswordHash: hash, IsActive: true}, nil)

	_, err = suite.service.AuthenticateUser(ctx, "ana@escritorio.com", "senha-errada")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	user, err := suite.service.AuthenticateUser(ctx, "ana@escritorio.com", "senha-certa")
	suite.Require().NoError(err)
	suite.Equal("ana@escritorio.com", user.Email)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownEmailIsUnauthorized() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "ghost@escritorio.com").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.AuthenticateUser(ctx, "ghost@escritorio.com", "qualquer")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestUpdateUser_OnlySelf() {
	ctx := context.Background()
	userID := uuid.NewString()
	otherID := uuid.NewString()

	_, err := suite.service.UpdateUser(ctx, userID, dto.UpdateUserRequest{}, otherID)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateUser", mock.Anything, mock.Anything)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
