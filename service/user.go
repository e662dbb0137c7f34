package service

import (
	"context"
	"strings"

	"Vidtube/config"
	"Vidtube/dao"
	"Vidtube/dao/cache"
	"Vidtube/models"
	"Vidtube/pkg/encrypt"
	"Vidtube/pkg/idcodec"
	"Vidtube/pkg/jwt"
	"Vidtube/pkg/log"
	"Vidtube/pkg/media"
	"Vidtube/pkg/response"
	"Vidtube/pkg/snowflake"
	"Vidtube/types"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Register(ctx context.Context, req *types.RegisterRequest, avatarPath, coverPath string) (*types.UserResponse, error)
	Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error)
	Logout(ctx context.Context, uid int64) error
	RefreshToken(ctx context.Context, refreshToken string) (*types.TokenPair, error)
	CurrentUser(ctx context.Context, uid int64) (*types.UserResponse, error)
	ChangePassword(ctx context.Context, uid int64, req *types.ChangePasswordRequest) error
	UpdateAccount(ctx context.Context, uid int64, req *types.UpdateAccountRequest) (*types.UserResponse, error)
	UpdateImage(ctx context.Context, uid int64, folder, localPath string) (*types.UserResponse, error)
	WatchHistory(ctx context.Context, uid int64, q *types.PageQuery) (*types.PageResult[*types.VideoResponse], error)
	ChannelProfile(ctx context.Context, viewerID int64, username string) (*types.ChannelProfile, error)
	// Exists is used by the auth gate to reject tokens of deleted users.
	Exists(ctx context.Context, uid int64) (bool, error)
}

type UserService struct {
	UsersRepo     *dao.Users
	VideoRepo     *dao.VideoDAO
	Subscriptions *dao.SubscriptionDAO
	Sessions      *cache.SessionStorage
	Media         IMediaService
	Jwt           *config.Jwt
}

// Register 注册用户
// Uniqueness is checked before anything is uploaded; a unique-index violation
// that still slips through the race becomes Conflict and the uploads are
// removed again.
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest, avatarPath, coverPath string) (*types.UserResponse, error) {
	fullName := strings.TrimSpace(req.FullName)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.ToLower(strings.TrimSpace(req.Username))
	// passwords are stored exactly as sent, blank ones are refused
	password := req.Password
	if fullName == "" || email == "" || username == "" || strings.TrimSpace(password) == "" {
		return nil, response.InvalidArgument("all fields are required")
	}
	if !strings.Contains(email, "@") {
		return nil, response.InvalidArgument("invalid email")
	}
	if avatarPath == "" {
		return nil, response.InvalidArgument("avatar file is required")
	}

	if err := s.checkAvailable(ctx, username, email); err != nil {
		return nil, err
	}

	avatar, err := s.Media.UploadImage(ctx, avatarPath, media.FolderAvatar)
	if err != nil {
		return nil, err
	}
	var cover *media.Object
	if coverPath != "" {
		cover, err = s.Media.UploadImage(ctx, coverPath, media.FolderCover)
		if err != nil {
			s.Media.Destroy(ctx, avatar.PublicID)
			return nil, err
		}
	}

	hashed, err := encrypt.HashPassword(password)
	if err != nil {
		s.Media.Destroy(ctx, publicIDs(avatar, cover)...)
		return nil, errors.Wrap(err, "hash password")
	}

	user := &models.User{
		ID:             snowflake.GenID(),
		Username:       username,
		Email:          email,
		FullName:       fullName,
		Avatar:         avatar.URL,
		AvatarPublicID: avatar.PublicID,
		Password:       hashed,
	}
	if cover != nil {
		user.CoverImage = cover.URL
		user.CoverImagePublicID = cover.PublicID
	}

	if err := s.UsersRepo.Create(ctx, user); err != nil {
		s.Media.Destroy(ctx, publicIDs(avatar, cover)...)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.Conflict("user with email or username already exists")
		}
		return nil, errors.Wrap(err, "create user")
	}

	created, err := s.UsersRepo.FindById(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "reload user")
	}
	return toUserResponse(created), nil
}

func (s *UserService) checkAvailable(ctx context.Context, username, email string) error {
	taken, err := s.UsersRepo.IsUsernameExist(ctx, username)
	if err != nil {
		return errors.Wrap(err, "check username")
	}
	if !taken {
		taken, err = s.UsersRepo.IsEmailExist(ctx, email)
		if err != nil {
			return errors.Wrap(err, "check email")
		}
	}
	if taken {
		return response.Conflict("user with email or username already exists")
	}
	return nil
}

// Login 登录处理
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error) {
	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if username == "" && email == "" {
		return nil, response.InvalidArgument("username or email is required")
	}
	if req.Password == "" {
		return nil, response.InvalidArgument("password is required")
	}

	user, err := s.UsersRepo.FindByLogin(ctx, username, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NotFound("user does not exist")
	}
	if err != nil {
		return nil, errors.Wrap(err, "find user")
	}
	if !encrypt.VerifyPassword(user.Password, req.Password) {
		return nil, response.Unauthorized("invalid user credentials")
	}

	tokens, err := s.issueTokens(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &types.LoginResponse{User: toUserResponse(user), TokenPair: *tokens}, nil
}

func (s *UserService) Logout(ctx context.Context, uid int64) error {
	if err := s.Sessions.Del(ctx, uid); err != nil {
		return errors.Wrap(err, "delete session")
	}
	return nil
}

// RefreshToken rotates both tokens. The stored session is consumed before new
// tokens are issued, so each refresh token works once.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*types.TokenPair, error) {
	if refreshToken == "" {
		return nil, response.Unauthorized("unauthorized request")
	}
	claims, err := jwt.ParseToken([]byte(s.Jwt.Secret), jwt.TypeRefresh, refreshToken)
	if err != nil {
		return nil, response.Unauthorized("invalid refresh token")
	}

	ok, err := s.Sessions.Consume(ctx, claims.UserID, refreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "consume session")
	}
	if !ok {
		return nil, response.Unauthorized("refresh token is expired or used")
	}
	exists, err := s.Exists(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, response.Unauthorized("invalid refresh token")
	}
	return s.issueTokens(ctx, claims.UserID)
}

func (s *UserService) issueTokens(ctx context.Context, uid int64) (*types.TokenPair, error) {
	secret := []byte(s.Jwt.Secret)
	access, err := jwt.GenerateToken(secret, uid, jwt.TypeAccess, s.Jwt.AccessTTL())
	if err != nil {
		return nil, errors.Wrap(err, "sign access token")
	}
	refresh, err := jwt.GenerateToken(secret, uid, jwt.TypeRefresh, s.Jwt.RefreshTTL())
	if err != nil {
		return nil, errors.Wrap(err, "sign refresh token")
	}
	if err := s.Sessions.Set(ctx, uid, refresh, s.Jwt.RefreshTTL()); err != nil {
		return nil, errors.Wrap(err, "store session")
	}
	return &types.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *UserService) CurrentUser(ctx context.Context, uid int64) (*types.UserResponse, error) {
	user, err := s.find(ctx, uid)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func (s *UserService) ChangePassword(ctx context.Context, uid int64, req *types.ChangePasswordRequest) error {
	if req.OldPassword == "" || strings.TrimSpace(req.NewPassword) == "" {
		return response.InvalidArgument("old and new password are required")
	}
	user, err := s.find(ctx, uid)
	if err != nil {
		return err
	}
	if !encrypt.VerifyPassword(user.Password, req.OldPassword) {
		return response.InvalidArgument("invalid old password")
	}
	hashed, err := encrypt.HashPassword(req.NewPassword)
	if err != nil {
		return errors.Wrap(err, "hash password")
	}
	if _, err := s.UsersRepo.UpdateWhere(ctx, map[string]any{"password": hashed}, "id = ?", uid); err != nil {
		return errors.Wrap(err, "update password")
	}
	// 修改密码后旧的刷新令牌失效
	if err := s.Sessions.Del(ctx, uid); err != nil {
		log.L.Warn("drop session after password change", zap.Int64("uid", uid), zap.Error(err))
	}
	return nil
}

func (s *UserService) UpdateAccount(ctx context.Context, uid int64, req *types.UpdateAccountRequest) (*types.UserResponse, error) {
	fullName := strings.TrimSpace(req.FullName)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if fullName == "" || email == "" {
		return nil, response.InvalidArgument("fullName and email are required")
	}
	if !strings.Contains(email, "@") {
		return nil, response.InvalidArgument("invalid email")
	}

	_, err := s.UsersRepo.UpdateWhere(ctx, map[string]any{"full_name": fullName, "email": email}, "id = ?", uid)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, response.Conflict("email is already in use")
	}
	if err != nil {
		return nil, errors.Wrap(err, "update account")
	}
	return s.CurrentUser(ctx, uid)
}

// UpdateImage replaces the avatar or the cover image. The new file is uploaded
// and saved before the old one is destroyed.
func (s *UserService) UpdateImage(ctx context.Context, uid int64, folder, localPath string) (*types.UserResponse, error) {
	if localPath == "" {
		return nil, response.InvalidArgument("image file is required")
	}
	urlColumn, idColumn := "avatar", "avatar_public_id"
	if folder == media.FolderCover {
		urlColumn, idColumn = "cover_image", "cover_image_public_id"
	}

	user, err := s.find(ctx, uid)
	if err != nil {
		return nil, err
	}
	old := user.AvatarPublicID
	if folder == media.FolderCover {
		old = user.CoverImagePublicID
	}

	obj, err := s.Media.UploadImage(ctx, localPath, folder)
	if err != nil {
		return nil, err
	}
	_, err = s.UsersRepo.UpdateWhere(ctx, map[string]any{urlColumn: obj.URL, idColumn: obj.PublicID}, "id = ?", uid)
	if err != nil {
		s.Media.Destroy(ctx, obj.PublicID)
		return nil, errors.Wrap(err, "update image")
	}
	s.Media.Destroy(ctx, old)
	return s.CurrentUser(ctx, uid)
}

func (s *UserService) WatchHistory(ctx context.Context, uid int64, q *types.PageQuery) (*types.PageResult[*types.VideoResponse], error) {
	spec, err := historyListing.resolve(q)
	if err != nil {
		return nil, err
	}
	scope := func(db *gorm.DB) *gorm.DB {
		return db.Scopes(dao.WatchedBy(uid), dao.VisibleTo(uid))
	}
	items, total, err := s.VideoRepo.Paginate(ctx, scope, spec.Page)
	if err != nil {
		return nil, errors.Wrap(err, "list watch history")
	}
	return videoPage(ctx, s.UsersRepo, items, total, spec)
}

func (s *UserService) ChannelProfile(ctx context.Context, viewerID int64, username string) (*types.ChannelProfile, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, response.InvalidArgument("username is missing")
	}
	user, err := s.UsersRepo.FindByWhere(ctx, "username = ?", username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NotFound("channel does not exist")
	}
	if err != nil {
		return nil, errors.Wrap(err, "find channel")
	}

	subscribers, err := s.Subscriptions.CountSubscribers(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "count subscribers")
	}
	subscribedTo, err := s.Subscriptions.CountSubscribedTo(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "count subscriptions")
	}
	isSubscribed, err := s.Subscriptions.IsSubscribed(ctx, viewerID, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "check subscription")
	}

	return &types.ChannelProfile{
		ID:                        idcodec.Encode(user.ID),
		Username:                  user.Username,
		FullName:                  user.FullName,
		Avatar:                    user.Avatar,
		CoverImage:                user.CoverImage,
		SubscribersCount:          subscribers,
		ChannelsSubscribedToCount: subscribedTo,
		IsSubscribed:              isSubscribed,
		CreatedAt:                 user.CreatedAt,
	}, nil
}

func (s *UserService) Exists(ctx context.Context, uid int64) (bool, error) {
	ok, err := s.UsersRepo.IsExist(ctx, "id = ?", uid)
	if err != nil {
		return false, errors.Wrap(err, "check user")
	}
	return ok, nil
}

func (s *UserService) find(ctx context.Context, uid int64) (*models.User, error) {
	user, err := s.UsersRepo.FindById(ctx, uid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NotFound("user not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "find user")
	}
	return user, nil
}

func publicIDs(objs ...*media.Object) []string {
	ids := make([]string, 0, len(objs))
	for _, o := range objs {
		if o != nil {
			ids = append(ids, o.PublicID)
		}
	}
	return ids
}
