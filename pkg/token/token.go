package token

import (
	"fmt"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/hertz-contrib/jwt"

	"ContainerIQ/config"
	"ContainerIQ/pkg/errors"
)

const (
	IdentityKey = "uid"

	claimType        = "type"
	tokenTypeRefresh = "refresh"
)

// sharedGenerator 由 Init 装配，middleware 和本包共用同一份
var sharedGenerator *jwt.HertzJWTMiddleware

func Init() error {
	var err error
	sharedGenerator, err = jwt.New(&jwt.HertzJWTMiddleware{
		Key:         []byte(config.Cfg.JWTSecret),
		Timeout:     accessTTL(),
		MaxRefresh:  refreshTTL(),
		IdentityKey: IdentityKey,
		TimeFunc:    time.Now,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize token generator: %w", err)
	}

	return nil
}

// GetGenerator 获取共享的 token 生成器（供 middleware 使用）
func GetGenerator() *jwt.HertzJWTMiddleware {
	return sharedGenerator
}

func accessTTL() time.Duration {
	return time.Duration(config.Cfg.JWTExpireMinutes) * time.Minute
}

func refreshTTL() time.Duration {
	return time.Duration(config.Cfg.JWTRefreshDays) * 24 * time.Hour
}

func sign(claims jwtv5.MapClaims) (string, error) {
	return jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims).
		SignedString([]byte(config.Cfg.JWTSecret))
}

// GenerateTokenPair 签发一对 access / refresh token，expiresIn 是 access token 的剩余秒数
func GenerateTokenPair(userID string) (accessToken, refreshToken string, expiresIn int, err error) {
	if sharedGenerator == nil {
		return "", "", 0, errors.ErrTokenGeneratorNotInitialized
	}

	now := time.Now()
	accessExpiry := now.Add(accessTTL())

	accessToken, err = sign(jwtv5.MapClaims{
		IdentityKey: userID,
		"iat":       now.Unix(),
		"exp":       accessExpiry.Unix(),
	})
	if err != nil {
		return "", "", 0, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err = sign(jwtv5.MapClaims{
		IdentityKey: userID,
		claimType:   tokenTypeRefresh,
		"iat":       now.Unix(),
		"exp":       now.Add(refreshTTL()).Unix(),
	})
	if err != nil {
		return "", "", 0, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	expiresIn = int(time.Until(accessExpiry).Seconds())
	if expiresIn < 0 {
		expiresIn = 0
	}

	return accessToken, refreshToken, expiresIn, nil
}

// ValidateRefreshToken 校验 refresh token 的签名和类型，返回其中的用户 ID
func ValidateRefreshToken(tokenString string) (userID string, err error) {
	parsed, err := jwtv5.ParseWithClaims(tokenString, jwtv5.MapClaims{}, func(t *jwtv5.Token) (interface{}, error) {
		if t.Method != jwtv5.SigningMethodHS256 {
			return nil, fmt.Errorf("%w: %v, expected HS256", errors.ErrUnexpectedSigningMethod, t.Header["alg"])
		}
		return []byte(config.Cfg.JWTSecret), nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}
	if !parsed.Valid {
		return "", errors.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwtv5.MapClaims)
	if !ok {
		return "", errors.ErrInvalidTokenClaims
	}
	if typ, _ := claims[claimType].(string); typ != tokenTypeRefresh {
		return "", errors.ErrInvalidTokenType
	}

	switch uid := claims[IdentityKey].(type) {
	case string:
		return uid, nil
	case float64:
		// 早期签发的 token 里 uid 是数字
		return fmt.Sprintf("%.0f", uid), nil
	default:
		return "", errors.ErrUserIDNotFound
	}
}
