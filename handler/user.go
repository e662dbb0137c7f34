package handler

import (
	"net/http"

	"Vidtube/config"
	"Vidtube/middleware"
	"Vidtube/pkg/context"
	"Vidtube/pkg/media"
	"Vidtube/pkg/response"
	"Vidtube/service"
	"Vidtube/types"

	"github.com/gin-gonic/gin"
)

const refreshTokenCookie = "refreshToken"

type User struct {
	Config      *config.Config
	UserService service.IUserService
	Limiter     *middleware.RateLimiter
}

func (u *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(u.Config.Jwt.Secret), u.UserService)
	limit := u.Limiter.Middleware()

	users := r.Group("/users")
	users.POST("/register", limit, context.Wrap(u.Register))
	users.POST("/login", limit, context.Wrap(u.Login))
	users.POST("/refresh-token", limit, context.Wrap(u.RefreshToken))

	users.POST("/logout", authorize, context.Wrap(u.Logout))
	users.GET("/current-user", authorize, context.Wrap(u.CurrentUser))
	users.POST("/change-password", authorize, context.Wrap(u.ChangePassword))
	users.PATCH("/update-account", authorize, context.Wrap(u.UpdateAccount))
	users.PATCH("/avatar", authorize, context.Wrap(u.UpdateAvatar))
	users.PATCH("/cover-image", authorize, context.Wrap(u.UpdateCoverImage))
	users.GET("/c/:username", authorize, context.Wrap(u.ChannelProfile))
	users.GET("/history", authorize, context.Wrap(u.WatchHistory))
}

// Register 注册 (multipart: avatar 必填, coverImage 选填)
func (u *User) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		return response.InvalidArgument("invalid register form")
	}

	files := newUploads(u.Config.Upload.TempDir)
	defer files.cleanup()
	avatar, err := files.save(c, "avatar")
	if err != nil {
		return err
	}
	cover, err := files.save(c, "coverImage")
	if err != nil {
		return err
	}

	user, err := u.UserService.Register(c.Request.Context(), &req, avatar, cover)
	if err != nil {
		return err
	}
	response.Created(c, user, "User registered successfully")
	return nil
}

func (u *User) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.InvalidArgument("invalid login request")
	}
	res, err := u.UserService.Login(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	u.setTokenCookies(c, &res.TokenPair)
	response.Success(c, res, "User logged in successfully")
	return nil
}

func (u *User) Logout(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	if err := u.UserService.Logout(c.Request.Context(), uid); err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", true, true)
	c.SetCookie(refreshTokenCookie, "", -1, "/", "", true, true)
	response.Success(c, gin.H{}, "User logged out")
	return nil
}

// RefreshToken 刷新令牌，cookie 优先
func (u *User) RefreshToken(c *gin.Context) error {
	token, _ := c.Cookie(refreshTokenCookie)
	if token == "" {
		var req types.RefreshTokenRequest
		_ = c.ShouldBindJSON(&req)
		token = req.RefreshToken
	}
	pair, err := u.UserService.RefreshToken(c.Request.Context(), token)
	if err != nil {
		return err
	}
	u.setTokenCookies(c, pair)
	response.Success(c, pair, "Access token refreshed")
	return nil
}

func (u *User) CurrentUser(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	user, err := u.UserService.CurrentUser(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, user, "Current user fetched successfully")
	return nil
}

func (u *User) ChangePassword(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.InvalidArgument("invalid request body")
	}
	if err := u.UserService.ChangePassword(c.Request.Context(), uid, &req); err != nil {
		return err
	}
	response.Success(c, gin.H{}, "Password changed successfully")
	return nil
}

func (u *User) UpdateAccount(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.InvalidArgument("invalid request body")
	}
	user, err := u.UserService.UpdateAccount(c.Request.Context(), uid, &req)
	if err != nil {
		return err
	}
	response.Success(c, user, "Account details updated successfully")
	return nil
}

func (u *User) UpdateAvatar(c *gin.Context) error {
	return u.updateImage(c, "avatar", media.FolderAvatar, "Avatar updated successfully")
}

func (u *User) UpdateCoverImage(c *gin.Context) error {
	return u.updateImage(c, "coverImage", media.FolderCover, "Cover image updated successfully")
}

func (u *User) updateImage(c *gin.Context, field, folder, msg string) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	files := newUploads(u.Config.Upload.TempDir)
	defer files.cleanup()
	local, err := files.save(c, field)
	if err != nil {
		return err
	}
	user, err := u.UserService.UpdateImage(c.Request.Context(), uid, folder, local)
	if err != nil {
		return err
	}
	response.Success(c, user, msg)
	return nil
}

func (u *User) ChannelProfile(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	profile, err := u.UserService.ChannelProfile(c.Request.Context(), uid, c.Param("username"))
	if err != nil {
		return err
	}
	response.Success(c, profile, "User channel fetched successfully")
	return nil
}

func (u *User) WatchHistory(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var q types.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return response.InvalidArgument("invalid query")
	}
	history, err := u.UserService.WatchHistory(c.Request.Context(), uid, &q)
	if err != nil {
		return err
	}
	response.Success(c, history, "Watch history fetched successfully")
	return nil
}

func (u *User) setTokenCookies(c *gin.Context, pair *types.TokenPair) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.AccessTokenCookie, pair.AccessToken, int(u.Config.Jwt.AccessExpire), "/", "", true, true)
	c.SetCookie(refreshTokenCookie, pair.RefreshToken, int(u.Config.Jwt.RefreshExpire), "/", "", true, true)
}
