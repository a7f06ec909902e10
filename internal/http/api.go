package http

import (
	"net/http"
	"net/url"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"zhejiang-tour/internal/apperror"
	"zhejiang-tour/internal/domain"
	"zhejiang-tour/internal/service"
	"zhejiang-tour/internal/storage"
)

const avatarURLTTL = 24 * time.Hour

// Handler wires HTTP routes to domain services.
type Handler struct {
	auth        service.AuthService
	attractions service.AttractionsService
	theme       service.ThemeService
	media       storage.Service
	bucket      string
	keyPrefix   string
	log         *logrus.Logger
}

func NewHandler(auth service.AuthService, attractions service.AttractionsService, theme service.ThemeService, media storage.Service, bucket, keyPrefix string, log *logrus.Logger) *Handler {
	return &Handler{
		auth:        auth,
		attractions: attractions,
		theme:       theme,
		media:       media,
		bucket:      bucket,
		keyPrefix:   keyPrefix,
		log:         log,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	api := router.Group("/api")
	{
		api.GET("/health", func(ctx *gin.Context) {
			ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
		})

		api.POST("/auth/register", h.register)
		api.POST("/auth/login", h.login)
		api.POST("/auth/logout", h.logout)
		api.GET("/auth/session", h.session)

		api.GET("/attractions", h.listAttractions)
		api.GET("/attractions/:id", h.getAttraction)

		api.GET("/theme", h.getTheme)
		api.POST("/theme/toggle", h.toggleTheme)

		protected := api.Group("", h.requireAuth)
		{
			protected.PUT("/auth/profile", h.updateProfile)
			protected.POST("/auth/password", h.changePassword)
			protected.DELETE("/auth/account", h.deleteAccount)
			protected.GET("/auth/users", h.listUsers)
			protected.POST("/auth/avatar", h.uploadAvatar)

			protected.GET("/favorites", h.listFavorites)
			protected.POST("/favorites/:id", h.toggleFavorite)
			protected.DELETE("/favorites", h.clearFavorites)
		}
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// requireAuth guards protected routes. Anonymous callers get the login entry
// point with the originally requested path preserved, so it can be resumed
// after a successful login.
func (h *Handler) requireAuth(c *gin.Context) {
	if !h.auth.IsLoggedIn() {
		redirect := "/login?redirect=" + url.QueryEscape(c.Request.URL.RequestURI())
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"success":  false,
			"message":  "authentication required",
			"redirect": redirect,
		})
		return
	}
	c.Next()
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type deleteAccountRequest struct {
	Password string `json:"password"`
}

type UserResponse struct {
	ID            string  `json:"id"`
	Username      string  `json:"username"`
	Email         string  `json:"email"`
	Avatar        string  `json:"avatar,omitempty"`
	Bio           string  `json:"bio,omitempty"`
	Location      string  `json:"location,omitempty"`
	Phone         string  `json:"phone,omitempty"`
	CreatedAt     string  `json:"created_at"`
	LastLoginAt   *string `json:"last_login_at,omitempty"`
	UpdatedAt     string  `json:"updated_at,omitempty"`
	LoginAttempts int     `json:"login_attempts"`
	LockedUntil   *string `json:"locked_until,omitempty"`
}

func userToResponse(user *domain.UserRecord) UserResponse {
	resp := UserResponse{
		ID:            user.ID,
		Username:      user.Username,
		Email:         user.Email,
		Avatar:        user.Avatar,
		Bio:           user.Bio,
		Location:      user.Location,
		Phone:         user.Phone,
		CreatedAt:     user.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     user.UpdatedAt,
		LoginAttempts: user.LoginAttempts,
	}
	if user.LastLoginAt != nil {
		v := user.LastLoginAt.Format(time.RFC3339)
		resp.LastLoginAt = &v
	}
	if user.LockedUntil != nil {
		v := user.LockedUntil.Format(time.RFC3339)
		resp.LockedUntil = &v
	}
	return resp
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "registration successful",
		"user":    userToResponse(user),
		"token":   h.auth.Token(),
	})
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	user, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "login successful",
		"user":    userToResponse(user),
		"token":   h.auth.Token(),
	})
}

func (h *Handler) logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context()); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "logged out"})
}

func (h *Handler) session(c *gin.Context) {
	resp := gin.H{
		"success":       true,
		"authenticated": h.auth.IsLoggedIn(),
	}
	if user := h.auth.User(); user != nil {
		resp["user"] = userToResponse(user)
		resp["token"] = h.auth.Token()
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) updateProfile(c *gin.Context) {
	var update domain.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	user, err := h.auth.UpdateProfile(c.Request.Context(), update)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "profile updated",
		"user":    userToResponse(user),
	})
}

func (h *Handler) changePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := h.auth.ChangePassword(c.Request.Context(), req.CurrentPassword, req.NewPassword); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "password changed"})
}

func (h *Handler) deleteAccount(c *gin.Context) {
	var req deleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	user := h.auth.User()
	if err := h.auth.DeleteAccount(c.Request.Context(), req.Password); err != nil {
		h.respondError(c, err)
		return
	}

	var warnings []string
	if user != nil {
		warnings = h.cleanupAvatar(c, user.Avatar)
	}

	resp := gin.H{"success": true, "message": "account deleted"}
	if len(warnings) > 0 {
		resp["warnings"] = warnings
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.auth.AllUsers(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := make([]UserResponse, len(users))
	for i := range users {
		resp[i] = userToResponse(&users[i])
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "users": resp})
}

func (h *Handler) uploadAvatar(c *gin.Context) {
	if h.media == nil || h.bucket == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "media storage not configured"})
		return
	}

	user := h.auth.User()
	if user == nil {
		h.respondError(c, apperror.Precondition("not logged in"))
		return
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "avatar file is required"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "avatar file is unreadable"})
		return
	}
	defer src.Close()

	key := path.Join(strings.Trim(h.keyPrefix, "/"), "avatars", user.ID+strings.ToLower(filepath.Ext(file.Filename)))
	location, err := h.media.UploadObject(c.Request.Context(), h.bucket, key, src, file.Header.Get("Content-Type"))
	if err != nil {
		h.respondError(c, apperror.Internal("avatar upload failed", err))
		return
	}

	updated, err := h.auth.UpdateProfile(c.Request.Context(), domain.ProfileUpdate{Avatar: &location})
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := gin.H{
		"success": true,
		"message": "avatar uploaded",
		"user":    userToResponse(updated),
	}
	if presigned, err := h.media.ObjectURL(c.Request.Context(), h.bucket, key, avatarURLTTL); err == nil {
		resp["url"] = presigned
	} else {
		h.log.Warnf("presign avatar: %v", err)
	}
	c.JSON(http.StatusOK, resp)
}

// cleanupAvatar removes a previously uploaded avatar object after account
// deletion. Best effort only.
func (h *Handler) cleanupAvatar(c *gin.Context, avatar string) []string {
	if h.media == nil || !strings.HasPrefix(avatar, "s3://") {
		return nil
	}
	bucket, key, err := splitObjectLocation(avatar)
	if err != nil || bucket != h.bucket {
		return nil
	}
	if err := h.media.DeleteObject(c.Request.Context(), bucket, key); err != nil {
		h.log.Warnf("delete avatar object: %v", err)
		return []string{"avatar object not removed"}
	}
	return nil
}

func splitObjectLocation(location string) (bucket, key string, err error) {
	rest := strings.TrimPrefix(location, "s3://")
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", apperror.Validation("invalid object location")
	}
	return parts[0], parts[1], nil
}

func (h *Handler) listAttractions(c *gin.Context) {
	attractions, err := h.attractions.Fetch(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, attractions)
}

func (h *Handler) getAttraction(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid attraction id"})
		return
	}

	attraction, err := h.attractions.Get(id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, attraction)
}

func (h *Handler) listFavorites(c *gin.Context) {
	ids, err := h.attractions.FavoriteIDs(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	attractions, err := h.attractions.Favorites(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	if ids == nil {
		ids = []int64{}
	}
	if attractions == nil {
		attractions = []domain.Attraction{}
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "ids": ids, "attractions": attractions})
}

func (h *Handler) toggleFavorite(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid attraction id"})
		return
	}

	favorite, err := h.attractions.ToggleFavorite(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "favorite": favorite})
}

func (h *Handler) clearFavorites(c *gin.Context) {
	if err := h.attractions.ClearFavorites(c.Request.Context()); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "favorites cleared"})
}

func (h *Handler) getTheme(c *gin.Context) {
	dark, err := h.theme.DarkMode(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "dark": dark})
}

func (h *Handler) toggleTheme(c *gin.Context) {
	dark, err := h.theme.Toggle(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "dark": dark})
}

// respondError converts service failures to the {success, message} shape.
// Unexpected failures are logged and surfaced as a generic message, never as
// internals.
func (h *Handler) respondError(c *gin.Context, err error) {
	if appErr := apperror.As(err); appErr != nil {
		if appErr.Kind == apperror.KindInternal {
			h.log.Errorf("internal error: %v", appErr)
			c.JSON(appErr.StatusCode(), gin.H{"success": false, "message": "something went wrong, please try again"})
			return
		}
		c.JSON(appErr.StatusCode(), gin.H{"success": false, "message": appErr.Message})
		return
	}

	h.log.Errorf("unhandled error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "something went wrong, please try again"})
}
