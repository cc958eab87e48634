package service

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kursusku_backend/internals/configs"
	authDTO "kursusku_backend/internals/features/users/auth/dto"
	authModel "kursusku_backend/internals/features/users/auth/model"
	userModel "kursusku_backend/internals/features/users/user/model"
	helper "kursusku_backend/internals/helpers"
)

var validate = validator.New()

/* ==========================
   REGISTER
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationErrorFrom(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := userModel.UserModel{
		UserName: strings.TrimSpace(req.UserName),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: string(hashed),
	}

	// Duplikat email terdeteksi lewat unique constraint, bukan pre-check
	if err := db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		log.Printf("[ERROR] Gagal membuat user: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mendaftarkan user")
	}

	return helper.JsonCreated(c, "Pendaftaran berhasil", authDTO.ToUserResponse(&user))
}

/* ==========================
   LOGIN (email + password)
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationErrorFrom(c, err)
	}

	var user userModel.UserModel
	if err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	return issueSession(db, c, &user, "Login berhasil")
}

/* ==========================
   LOGIN GOOGLE (ID token)
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	clientID := strings.TrimSpace(configs.GoogleClientID)
	if clientID == "" {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Login Google tidak tersedia")
	}

	var req authDTO.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Permintaan tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationErrorFrom(c, err)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{clientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "ID token Google tidak valid")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Gagal membaca ID token Google")
	}

	email := strings.ToLower(strings.TrimSpace(claimSet.Email))
	sub := strings.TrimSpace(claimSet.Sub)
	if email == "" || sub == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "ID token Google tidak lengkap")
	}

	// Cari by google_id dulu, lalu by email (akun lama), terakhir buat baru
	var user userModel.UserModel
	err = db.Where("google_id = ?", sub).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = db.Where("email = ?", email).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			name := strings.TrimSpace(claimSet.Name)
			if name == "" {
				name = strings.Split(email, "@")[0]
			}
			user = userModel.UserModel{
				UserName: name,
				Email:    email,
				Password: "-", // akun Google tidak punya password lokal
				GoogleID: &sub,
			}
			if err := db.Create(&user).Error; err != nil {
				log.Printf("[ERROR] Gagal membuat user Google: %v", err)
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat akun")
			}
		} else if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencari akun")
		} else if user.GoogleID == nil {
			// tautkan akun lama dengan google_id
			if err := db.Model(&user).Update("google_id", sub).Error; err != nil {
				log.Printf("[ERROR] Gagal menautkan google_id: %v", err)
			}
		}
	} else if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencari akun")
	}

	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	return issueSession(db, c, &user, "Login Google berhasil")
}

/* ==========================
   LOGOUT
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	tokenString := helper.GetRawAccessToken(c)
	if tokenString == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak ditemukan")
	}

	// Ambil exp dari token (best-effort) supaya scheduler tahu kapan boleh dibersihkan
	expiredAt := nowUTC().Add(accessTTLDefault)
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		secret, err := getJWTSecret()
		if err != nil {
			return nil, err
		}
		return []byte(secret), nil
	}); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(exp), 0).UTC()
		}
	}

	entry := authModel.TokenBlacklist{
		Token:     tokenString,
		ExpiredAt: expiredAt,
	}
	if err := db.Create(&entry).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		log.Printf("[ERROR] Gagal blacklist token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal logout")
	}

	// Revoke refresh token aktif (kalau ada di cookie)
	if rt := helper.GetRefreshTokenFromCookie(c); rt != "" {
		if secret, err := getRefreshSecret(); err == nil {
			now := nowUTC()
			db.Model(&authModel.RefreshToken{}).
				Where("token_hash = ? AND revoked_at IS NULL", computeRefreshHash(rt, secret)).
				Update("revoked_at", now)
		}
	}

	clearAuthCookies(c)
	return helper.JsonOK(c, "Logout berhasil", nil)
}

/* ==========================
   REFRESH TOKEN
========================== */

func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refresh := helper.GetRefreshTokenFromCookie(c)
	if refresh == "" {
		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		_ = c.BodyParser(&body)
		refresh = strings.TrimSpace(body.RefreshToken)
	}
	if refresh == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token tidak ditemukan")
	}

	claims, err := parseRefreshClaims(refresh)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	secret, err := getRefreshSecret()
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	// Harus cocok dengan hash tersimpan & belum dicabut/kadaluarsa
	var row authModel.RefreshToken
	if err := db.
		Where("token_hash = ? AND revoked_at IS NULL AND expires_at > ?", computeRefreshHash(refresh, secret), nowUTC()).
		First(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token sudah tidak berlaku")
	}

	idStr, _ := claims["id"].(string)
	var user userModel.UserModel
	if err := db.Where("id = ?", idStr).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User tidak ditemukan")
	}
	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	// Rotasi: cabut refresh lama, terbitkan pasangan baru
	now := nowUTC()
	if err := db.Model(&row).Update("revoked_at", now).Error; err != nil {
		log.Printf("[ERROR] Gagal revoke refresh token lama: %v", err)
	}

	return issueSession(db, c, &user, "Token diperbarui")
}

/* ==========================
   Internal
========================== */

// issueSession menerbitkan access+refresh token, menyimpan hash refresh,
// set cookie, dan menulis response login standar.
func issueSession(db *gorm.DB, c *fiber.Ctx, user *userModel.UserModel, message string) error {
	access, err := IssueAccessToken(user)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	refresh, refreshExp, err := IssueRefreshToken(user)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	secret, err := getRefreshSecret()
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	row := authModel.RefreshToken{
		UserID:    user.ID,
		TokenHash: computeRefreshHash(refresh, secret),
		ExpiresAt: refreshExp,
	}
	if err := db.Create(&row).Error; err != nil {
		log.Printf("[ERROR] Gagal menyimpan refresh token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat sesi")
	}

	setAuthCookies(c, access, refresh, refreshExp)

	return helper.JsonOK(c, message, authDTO.LoginResponse{
		User:         authDTO.ToUserResponse(user),
		AccessToken:  access,
		RefreshToken: refresh,
	})
}

func setAuthCookies(c *fiber.Ctx, access, refresh string, refreshExp time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    access,
		Expires:  nowUTC().Add(accessTTLDefault),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refresh,
		Expires:  refreshExp,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
	})
}

func clearAuthCookies(c *fiber.Ctx) {
	expired := nowUTC().Add(-time.Hour)
	c.Cookie(&fiber.Cookie{Name: "access_token", Value: "", Expires: expired, HTTPOnly: true, Path: "/"})
	c.Cookie(&fiber.Cookie{Name: "refresh_token", Value: "", Expires: expired, HTTPOnly: true, Path: "/"})
}
