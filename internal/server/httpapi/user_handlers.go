package httpapi

import (
	"github.com/gin-gonic/gin"

	"github.com/Dvesiz/Ship-Management-System/internal/server/identity"
	"github.com/Dvesiz/Ship-Management-System/internal/server/models"
	"github.com/Dvesiz/Ship-Management-System/internal/server/repositories/users"
)

type sendCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (s *Server) handleSendCode(c *gin.Context) {
	var req sendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.failValidation(c, err)
		return
	}
	if err := s.users.SendCode(c.Request.Context(), req.Email); err != nil {
		s.fail(c, err)
		return
	}
	ok(c, nil)
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Email    string `json:"email" binding:"required,email"`
	Code     string `json:"code" binding:"required"`
}

func (s *Server) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.failValidation(c, err)
		return
	}
	user, err := s.users.Register(c.Request.Context(), req.Username, req.Password, req.Email, req.Code)
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, user.View())
}

type loginRequest struct {
	Username       string `json:"username" binding:"required"`
	Password       string `json:"password" binding:"required"`
	TurnstileToken string `json:"turnstileToken"`
}

type loginResponse struct {
	Token string          `json:"token"`
	User  models.UserView `json:"user"`
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.failValidation(c, err)
		return
	}
	token, user, err := s.users.Login(c.Request.Context(), req.Username, req.Password, req.TurnstileToken)
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, loginResponse{Token: token, User: user.View()})
}

type loginByEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required"`
}

func (s *Server) handleLoginByEmail(c *gin.Context) {
	var req loginByEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.failValidation(c, err)
		return
	}
	token, user, err := s.users.LoginByEmail(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, loginResponse{Token: token, User: user.View()})
}

type resetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

func (s *Server) handleResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.failValidation(c, err)
		return
	}
	if err := s.users.ResetPassword(c.Request.Context(), req.Email, req.Code, req.NewPassword); err != nil {
		s.fail(c, err)
		return
	}
	ok(c, nil)
}

func (s *Server) handleUserInfo(c *gin.Context) {
	ident, err := identity.FromContext(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	user, err := s.users.GetByID(c.Request.Context(), ident.UserID)
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, user.View())
}

type updateProfileRequest struct {
	Nickname string `json:"nickname"`
	Email    string `json:"email" binding:"omitempty,email"`
	Avatar   string `json:"avatarUrl"`
}

func (s *Server) handleUpdateProfile(c *gin.Context) {
	ident, err := identity.FromContext(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.failValidation(c, err)
		return
	}

	user, err := s.users.GetByID(c.Request.Context(), ident.UserID)
	if err != nil {
		s.fail(c, err)
		return
	}
	if req.Nickname != "" {
		user.Nickname = req.Nickname
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Avatar != "" {
		user.AvatarURL = req.Avatar
	}

	if err := s.users.UpdateProfile(c.Request.Context(), user); err != nil {
		s.fail(c, err)
		return
	}
	ok(c, user.View())
}

type updatePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

func (s *Server) handleUpdatePassword(c *gin.Context) {
	ident, err := identity.FromContext(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	var req updatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.failValidation(c, err)
		return
	}
	if err := s.users.UpdatePassword(c.Request.Context(), ident.UserID, req.OldPassword, req.NewPassword); err != nil {
		s.fail(c, err)
		return
	}
	ok(c, nil)
}

type updateAvatarRequest struct {
	AvatarURL string `json:"avatarUrl" binding:"required"`
}

func (s *Server) handleUpdateAvatar(c *gin.Context) {
	ident, err := identity.FromContext(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	var req updateAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.failValidation(c, err)
		return
	}
	if err := s.users.UpdateAvatar(c.Request.Context(), ident.Username, req.AvatarURL); err != nil {
		s.fail(c, err)
		return
	}
	ok(c, nil)
}

func (s *Server) handleUserSearch(c *gin.Context) {
	views, err := s.users.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, views)
}

func (s *Server) handleUserPage(c *gin.Context) {
	offset, limit := pagination(c)
	page, err := s.users.Page(c.Request.Context(), offset, limit, users.PageFilter{
		UsernameLike: c.Query("username"),
		Role:         c.Query("role"),
	})
	if err != nil {
		s.fail(c, err)
		return
	}

	views := make([]models.UserView, 0, len(page.Items))
	for i := range page.Items {
		views = append(views, page.Items[i].View())
	}
	ok(c, models.Page[models.UserView]{Total: page.Total, Items: views})
}

func (s *Server) handleUserStats(c *gin.Context) {
	stats, err := s.users.Stats(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, stats)
}

func (s *Server) handleUserByID(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		s.failValidation(c, err)
		return
	}
	user, err := s.users.GetByID(c.Request.Context(), id)
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, user.View())
}

type updateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

func (s *Server) handleUpdateRole(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		s.failValidation(c, err)
		return
	}
	var req updateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.failValidation(c, err)
		return
	}
	role, err := models.ParseRole(req.Role)
	if err != nil {
		s.failValidation(c, err)
		return
	}
	if err := s.users.UpdateRole(c.Request.Context(), id, role); err != nil {
		s.fail(c, err)
		return
	}
	ok(c, nil)
}

type adminResetPasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

func (s *Server) handleAdminResetPassword(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		s.failValidation(c, err)
		return
	}
	var req adminResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.failValidation(c, err)
		return
	}
	if err := s.users.ResetUserPassword(c.Request.Context(), id, req.NewPassword); err != nil {
		s.fail(c, err)
		return
	}
	ok(c, nil)
}

func (s *Server) handleDeleteUser(c *gin.Context) {
	ident, err := identity.FromContext(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	id, err := pathID(c)
	if err != nil {
		s.failValidation(c, err)
		return
	}
	if err := s.users.Delete(c.Request.Context(), id, ident.UserID); err != nil {
		s.fail(c, err)
		return
	}
	ok(c, nil)
}

func (s *Server) handleDeleteUsersBatch(c *gin.Context) {
	ident, err := identity.FromContext(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	var req idsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.failValidation(c, err)
		return
	}
	n, err := s.users.DeleteBatch(c.Request.Context(), req.IDs, ident.UserID)
	if err != nil {
		s.fail(c, err)
		return
	}
	ok(c, gin.H{"deleted": n})
}
