package controller

import (
	"errors"
	"log"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"miescuela_backend/internals/configs"
	authdto "miescuela_backend/internals/features/users/auth/dto"
	authmodel "miescuela_backend/internals/features/users/auth/model"
	usermodel "miescuela_backend/internals/features/users/user/model"
	helper "miescuela_backend/internals/helpers"
)

const (
	accessTokenTTL  = 2 * time.Hour
	refreshTokenTTL = 7 * 24 * time.Hour
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

/* ===================== REGISTER ===================== */
// POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req authdto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	user := usermodel.UserModel{
		UserName: req.UserName,
		FullName: req.FullName,
		Email:    req.Email,
		Role:     req.Role,
	}
	user.SetDefaultValues()
	if err := user.SetPassword(req.Password); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo procesar la contraseña")
	}

	if err := ctrl.DB.Create(&user).Error; err != nil {
		return helper.Error(c, fiber.StatusConflict, "Correo o nombre de usuario ya registrado")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Usuario registrado", authdto.NewUserResponse(user))
}

/* ===================== LOGIN ===================== */
// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req authdto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user usermodel.UserModel
	if err := ctrl.DB.
		Where("email = ? OR user_name = ?", req.Identifier, req.Identifier).
		First(&user).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Credenciales inválidas")
	}
	if !user.CheckPassword(req.Password) {
		return helper.Error(c, fiber.StatusUnauthorized, "Credenciales inválidas")
	}
	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Cuenta desactivada")
	}

	return ctrl.issueTokens(c, user)
}

/* ===================== GOOGLE SIGN-IN ===================== */
// POST /api/auth/google
// Third-party auth path: the frontend obtains a Google ID token, this
// endpoint verifies it and maps it to a local account.
func (ctrl *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var req authdto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Token de Google inválido")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Token de Google ilegible")
	}

	var user usermodel.UserModel
	err = ctrl.DB.Where("google_id = ?", claimSet.Sub).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Second chance: match a pre-provisioned account by email, then link it.
		if err := ctrl.DB.Where("email = ?", claimSet.Email).First(&user).Error; err != nil {
			return helper.Error(c, fiber.StatusForbidden, "Cuenta no registrada en el establecimiento")
		}
		sub := claimSet.Sub
		if err := ctrl.DB.Model(&user).Update("google_id", &sub).Error; err != nil {
			log.Println("[ERROR] linking google_id:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "No se pudo vincular la cuenta de Google")
		}
	} else if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}
	if !user.IsActive {
		return helper.Error(c, fiber.StatusForbidden, "Cuenta desactivada")
	}

	return ctrl.issueTokens(c, user)
}

/* ===================== REFRESH ===================== */
// POST /api/auth/refresh
func (ctrl *AuthController) Refresh(c *fiber.Ctx) error {
	var req authdto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if req.RefreshToken == "" {
		req.RefreshToken = helper.GetRefreshTokenFromCookie(c)
	}
	if req.RefreshToken == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token ausente")
	}

	var stored authmodel.RefreshToken
	if err := ctrl.DB.
		Where("token = ? AND expired_at > ?", req.RefreshToken, time.Now()).
		First(&stored).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Refresh token inválido o expirado")
	}

	var user usermodel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", stored.UserID).Error; err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Usuario no encontrado")
	}

	// Rotation: the used refresh token is retired before new ones are issued.
	if err := ctrl.DB.Delete(&stored).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Error interno")
	}

	return ctrl.issueTokens(c, user)
}

/* ===================== LOGOUT ===================== */
// POST /api/auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw == "" {
		return helper.Error(c, fiber.StatusBadRequest, "No hay sesión que cerrar")
	}

	entry := authmodel.TokenBlacklist{
		Token:     raw,
		ExpiredAt: time.Now().Add(accessTokenTTL),
	}
	if err := ctrl.DB.Create(&entry).Error; err != nil {
		// Already blacklisted counts as logged out.
		log.Println("[WARN] blacklist insert:", err)
	}

	if userID, err := helper.GetUserIDFromToken(c); err == nil {
		ctrl.DB.Where("user_id = ?", userID).Delete(&authmodel.RefreshToken{})
	}

	c.ClearCookie("access_token", "refresh_token")
	return helper.Success(c, "Sesión cerrada", nil)
}

/* ===================== ME ===================== */
// GET /api/u/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	var user usermodel.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Usuario no encontrado")
	}
	return helper.Success(c, "OK", authdto.NewUserResponse(user))
}

/* ===================== TOKEN ISSUANCE ===================== */

func (ctrl *AuthController) issueTokens(c *fiber.Ctx, user usermodel.UserModel) error {
	access, err := makeAccessToken(user)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo emitir el token")
	}

	refresh := uuid.NewString()
	stored := authmodel.RefreshToken{
		UserID:    user.ID,
		Token:     refresh,
		ExpiredAt: time.Now().Add(refreshTokenTTL),
	}
	if err := ctrl.DB.Create(&stored).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo emitir el refresh token")
	}

	return helper.Success(c, "Autenticación exitosa", authdto.AuthResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         authdto.NewUserResponse(user),
	})
}

func makeAccessToken(user usermodel.UserModel) (string, error) {
	claims := jwt.MapClaims{
		"sub":       user.ID.String(),
		"user_name": user.UserName,
		"role":      user.Role,
		"exp":       time.Now().Add(accessTokenTTL).Unix(),
		"iat":       time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
