package serverutils

import (
	"strings"
	"time"

	"testinesia-be/internal/repository/specification"
	"testinesia-be/internal/repository/unitofwork"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type UserClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Type  string `json:"type"` // plan tier at issue time
	jwt.RegisteredClaims
}

type AdminClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

func GenerateUserToken(secret string, userId uuid.UUID, email, name, planType string) (string, error) {
	claims := UserClaims{
		Email: email,
		Name:  name,
		Type:  planType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userId.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func GenerateAdminToken(secret string, adminId uuid.UUID, email, role string) (string, error) {
	claims := AdminClaims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminId.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(12 * time.Hour)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func bearerToken(ctx *fiber.Ctx) string {
	header := ctx.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// UserAuth validates the JWT and re-checks it against the stored access
// token, so a fresh sign-in invalidates every older session.
func UserAuth(secret string, uowFactory unitofwork.RepositoryFactory) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenString := bearerToken(ctx)
		if tokenString == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Missing or invalid authorization header"))
		}

		claims := &UserClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid or expired token"))
		}

		userId, err := uuid.Parse(claims.Subject)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid token claims"))
		}

		uow := uowFactory.NewUnitOfWork(ctx.Context())
		user, err := uow.UserRepository().FindOne(ctx.Context(), specification.ByID{ID: userId})
		if err != nil || user == nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Account not found"))
		}
		if user.AccessToken == nil || *user.AccessToken != tokenString {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Session expired, please sign in again"))
		}

		ctx.Locals("user_id", userId.String())
		ctx.Locals("user_email", user.Email)
		return ctx.Next()
	}
}

// AdminAuth validates admin JWTs; pass roles to restrict further (empty
// means any admin role).
func AdminAuth(secret string, uowFactory unitofwork.RepositoryFactory, roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(ctx *fiber.Ctx) error {
		tokenString := bearerToken(ctx)
		if tokenString == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Missing or invalid authorization header"))
		}

		claims := &AdminClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid or expired token"))
		}

		adminId, err := uuid.Parse(claims.Subject)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid token claims"))
		}

		uow := uowFactory.NewUnitOfWork(ctx.Context())
		admin, err := uow.AdminRepository().FindOne(ctx.Context(), specification.ByID{ID: adminId})
		if err != nil || admin == nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Account not found"))
		}
		if admin.AccessToken == nil || *admin.AccessToken != tokenString {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Session expired, please sign in again"))
		}

		if len(allowed) > 0 {
			if _, ok := allowed[string(admin.Role)]; !ok {
				return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(403, "Access denied"))
			}
		}

		ctx.Locals("admin_id", adminId.String())
		ctx.Locals("admin_role", string(admin.Role))
		return ctx.Next()
	}
}
