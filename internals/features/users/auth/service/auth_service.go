package service

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"guidanceku_backend/internals/configs"
	authHelper "guidanceku_backend/internals/features/users/auth/helper"
	authModel "guidanceku_backend/internals/features/users/auth/model"
	authRepo "guidanceku_backend/internals/features/users/auth/repository"
	userModel "guidanceku_backend/internals/features/users/user/model"
	helper "guidanceku_backend/internals/helpers"
)

/* ==========================
   REGISTER
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input userModel.UserModel
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := authHelper.ValidateRegisterInput(input.UserName, input.Email, input.Password, input.SecurityAnswer); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := input.Validate(); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// self-registration is always a student account; staff roles are
	// assigned by a counselor afterwards
	input.Role = "student"

	passwordHash, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}
	input.Password = passwordHash

	if err := authRepo.CreateUser(db, &input); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Email is already registered")
		}
		log.Printf("[ERROR] register: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	input.Password = ""
	return helper.JsonCreated(c, "Registration successful", fiber.Map{
		"id":        input.ID,
		"user_name": input.UserName,
		"email":     input.Email,
		"role":      input.Role,
	})
}

/* ==========================
   LOGIN
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	user, err := authRepo.FindUserByEmail(db, strings.TrimSpace(input.Email))
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if err := authHelper.CheckPasswordHash(user.Password, input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}

	access, refresh, err := issueTokenPair(db, c, *user)
	if err != nil {
		log.Printf("[ERROR] issue tokens: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}
	setAuthCookies(c, access, refresh)

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"access_token": access,
		"user": fiber.Map{
			"id":        user.ID,
			"user_name": user.UserName,
			"full_name": user.FullName,
			"email":     user.Email,
			"role":      user.Role,
		},
	})
}

/* ==========================
   LOGIN WITH GOOGLE
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token"`
	}
	if err := c.BodyParser(&input); err != nil || strings.TrimSpace(input.IDToken) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "id_token is required")
	}

	clientID := strings.TrimSpace(configs.GoogleClientID)
	if clientID == "" {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Google login is not configured")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{clientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Failed to decode Google token")
	}

	user, err := authRepo.FindUserByGoogleID(db, claimSet.Sub)
	if err != nil {
		// fall back to matching by email so existing accounts can link
		user, err = authRepo.FindUserByEmail(db, claimSet.Email)
		if err != nil {
			return helper.JsonError(c, fiber.StatusNotFound,
				"No account found for this Google identity, please register first")
		}
		if err := db.Model(user).Update("google_id", claimSet.Sub).Error; err != nil {
			log.Printf("[ERROR] link google id: %v", err)
		}
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}

	access, refresh, err := issueTokenPair(db, c, *user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}
	setAuthCookies(c, access, refresh)

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"access_token": access,
		"user": fiber.Map{
			"id":        user.ID,
			"user_name": user.UserName,
			"email":     user.Email,
			"role":      user.Role,
		},
	})
}

/* ==========================
   REFRESH TOKEN (rotation)
========================== */

func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := helper.GetRefreshTokenFromCookie(c)
	if refreshCookie == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token missing")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (any, error) {
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
	}

	// the stored hash must still exist and be unrevoked
	hash := computeRefreshHash(refreshCookie, refreshSecret)
	var row authModel.RefreshToken
	if err := db.Where("token_hash = ? AND revoked_at IS NULL AND expires_at > ?", hash, nowUTC()).
		First(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token not recognized")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Your account has been deactivated")
	}

	// ROTATE: revoke the old token before issuing new ones
	now := nowUTC()
	if err := db.Model(&row).Update("revoked_at", &now).Error; err != nil {
		log.Printf("[ERROR] revoke refresh token: %v", err)
	}

	access, refresh, err := issueTokenPair(db, c, *user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}
	setAuthCookies(c, access, refresh)

	return helper.JsonOK(c, "Token refreshed", fiber.Map{"access_token": access})
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw != "" {
		entry := authModel.TokenBlacklist{
			Token:     raw,
			ExpiredAt: time.Now().Add(accessTTLDefault),
		}
		if err := db.Create(&entry).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Printf("[ERROR] blacklist token: %v", err)
		}
	}

	// revoke the presented refresh token as well
	if refreshCookie := helper.GetRefreshTokenFromCookie(c); refreshCookie != "" {
		if refreshSecret, err := getRefreshSecret(); err == nil {
			hash := computeRefreshHash(refreshCookie, refreshSecret)
			now := nowUTC()
			if err := db.Model(&authModel.RefreshToken{}).
				Where("token_hash = ? AND revoked_at IS NULL", hash).
				Update("revoked_at", &now).Error; err != nil {
				log.Printf("[ERROR] revoke refresh token: %v", err)
			}
		}
	}

	clearAuthCookies(c)
	return helper.JsonOK(c, "Logout successful", nil)
}

/* ==========================
   PASSWORDS
========================== */

func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}

	if err := authHelper.CheckPasswordHash(user.Password, input.CurrentPassword); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Current password incorrect")
	}
	if len(input.NewPassword) < 8 {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "password must be at least 8 characters")
	}

	newHash, err := authHelper.HashPassword(input.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash new password")
	}
	if err := authRepo.UpdateUserPassword(db, userID, newHash); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return helper.JsonUpdated(c, "Password changed successfully", nil)
}

// CheckSecurityAnswer is step one of the forgot-password flow.
func CheckSecurityAnswer(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Email          string `json:"email"`
		SecurityAnswer string `json:"security_answer"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}

	user, err := authRepo.FindUserByEmail(db, strings.TrimSpace(input.Email))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	if !strings.EqualFold(strings.TrimSpace(user.SecurityAnswer), strings.TrimSpace(input.SecurityAnswer)) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Security answer does not match")
	}

	return helper.JsonOK(c, "Security answer verified", fiber.Map{"email": user.Email})
}

func ResetPassword(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Email          string `json:"email"`
		SecurityAnswer string `json:"security_answer"`
		NewPassword    string `json:"new_password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}

	if err := authHelper.ValidateResetPassword(input.Email, input.NewPassword); err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	user, err := authRepo.FindUserByEmail(db, strings.TrimSpace(input.Email))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	if !strings.EqualFold(strings.TrimSpace(user.SecurityAnswer), strings.TrimSpace(input.SecurityAnswer)) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Security answer does not match")
	}

	hashedPassword, err := authHelper.HashPassword(input.NewPassword)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}
	if err := authRepo.UpdateUserPassword(db, user.ID, hashedPassword); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update password")
	}

	return helper.JsonUpdated(c, "Password reset successfully", nil)
}
